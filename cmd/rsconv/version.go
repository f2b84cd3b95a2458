package main

import (
	"runtime"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

// Set through -ldflags at build time.
var (
	Version   = "dev"
	GitCommit string
	BuildDate string
	GoVersion = runtime.Version()
	Platform  = runtime.GOOS + "/" + runtime.GOARCH
)

func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "get rsconv version info",
		Run: func(cmd *cobra.Command, args []string) {
			t := table.NewWriter()
			t.AppendRow(table.Row{"Version", Version})
			t.AppendRow(table.Row{"Platform", Platform})
			t.AppendRow(table.Row{"GitCommit", GitCommit})
			t.AppendRow(table.Row{"BuildDate", BuildDate})
			t.AppendRow(table.Row{"GoVersion", GoVersion})
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 1, Align: text.AlignCenter},
				{Number: 2, Align: text.AlignLeft},
			})
			t.SetOutputMirror(cmd.OutOrStdout())
			t.Render()
		},
	}

	return cmd
}
