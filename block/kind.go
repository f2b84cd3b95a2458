package block

// Kind identifies a known block type.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindRoot
	KindHead
	KindBody
	KindEnd
	KindSignature
	KindFileTime
	KindRxLoss
	KindConstants
	KindOpaque
	KindSweep
	KindBinFormat
	KindReceiverTag
	KindGPS
	KindIndex
	KindScaling
	KindAntennaSamples
	KindInterleavedSamples
)

var kindNames = [...]string{
	KindUnknown:            "Unknown",
	KindRoot:               "Root",
	KindHead:               "Head",
	KindBody:               "Body",
	KindEnd:                "End",
	KindSignature:          "Signature",
	KindFileTime:           "FileTime",
	KindRxLoss:             "RxLoss",
	KindConstants:          "Constants",
	KindOpaque:             "Opaque",
	KindSweep:              "Sweep",
	KindBinFormat:          "BinFormat",
	KindReceiverTag:        "ReceiverTag",
	KindGPS:                "GPS",
	KindIndex:              "Index",
	KindScaling:            "Scaling",
	KindAntennaSamples:     "AntennaSamples",
	KindInterleavedSamples: "InterleavedSamples",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Unknown"
}

// IsContainer reports whether blocks of this kind hold child blocks.
func (k Kind) IsContainer() bool {
	switch k {
	case KindRoot, KindHead, KindBody, KindEnd:
		return true
	default:
		return false
	}
}
