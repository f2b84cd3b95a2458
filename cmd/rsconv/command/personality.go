package command

import (
	"path/filepath"
	"strings"
)

const (
	cliName        = "rsconv"
	cliDescription = "converts CODAR SeaSonde Range Series files to and from text"

	dumpName = "rsdump"
	genName  = "rsgen"
)

// PersonalityArgs maps the program name and arguments to rsconv arguments.
//
// Installed as rsdump the program behaves like "rsconv dump", with the
// legacy -h flag selecting header-only output. Installed as rsgen it
// behaves like "rsconv gen".
func PersonalityArgs(argv0 string, args []string) []string {
	name := strings.TrimSuffix(filepath.Base(argv0), ".exe")

	switch name {
	case dumpName:
		out := make([]string, 0, len(args)+1)
		out = append(out, "dump")
		for _, a := range args {
			if a == "-h" {
				a = "--header-only"
			}
			out = append(out, a)
		}

		return out
	case genName:
		return append([]string{"gen"}, args...)
	default:
		return args
	}
}
