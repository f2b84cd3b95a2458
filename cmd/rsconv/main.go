// rsconv converts CODAR SeaSonde Range Series files to and from text.
//
// The binary can also be installed under the names rsdump and rsgen, in
// which case it behaves like "rsconv dump" and "rsconv gen".
package main

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/arloliu/rsconv/cmd/rsconv/command"
)

func main() {
	MustStart()
}

func Start() error {
	root := command.NewRootCommand(newVersionCommand())
	root.SetArgs(command.PersonalityArgs(os.Args[0], os.Args[1:]))

	return root.Execute()
}

func MustStart() {
	if err := Start(); err != nil {
		_, _ = color.New(color.FgRed).Fprintf(os.Stderr, "%s error: %s\n", filepath.Base(os.Args[0]), err)
		os.Exit(1)
	}
}
