package block

import "time"

// LegacyEpochOffset is the number of seconds between 1904-01-01 and
// 1970-01-01, both UTC.
const LegacyEpochOffset = 2082844800

// legacyDateLayout matches the C library ctime format without the newline.
const legacyDateLayout = time.ANSIC

// LegacyToUnix converts a stored 1904-based timestamp to Unix seconds.
func LegacyToUnix(stored uint32) int64 {
	return int64(stored) - LegacyEpochOffset
}

// UnixToLegacy converts Unix seconds back to a stored 1904-based value.
// The conversion wraps modulo 2^32, so UnixToLegacy(LegacyToUnix(v)) == v
// for every v.
func UnixToLegacy(unix int64) uint32 {
	return uint32(unix + LegacyEpochOffset)
}

// LegacyTime returns the stored timestamp as a UTC time.
func LegacyTime(stored uint32) time.Time {
	return time.Unix(LegacyToUnix(stored), 0).UTC()
}

// Time returns the file timestamp as a UTC time.
func (f *FileTime) Time() time.Time {
	return LegacyTime(f.Stored)
}

// Time returns the GPS fix timestamp as a UTC time.
func (g *GPS) Time() time.Time {
	return LegacyTime(g.Stored)
}
