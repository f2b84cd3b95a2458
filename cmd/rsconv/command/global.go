package command

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/rsconv/endian"
	"github.com/arloliu/rsconv/internal/log"
)

type GlobalFlags struct {
	Debug    bool
	LogLevel string
}

var globalFlags GlobalFlags

// NewRootCommand creates the rsconv command tree. extra commands, such as
// the version command built by main, are added after the built-in ones.
func NewRootCommand(extra ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
	}

	cmd.PersistentFlags().BoolVar(&globalFlags.Debug, "debug", false, "enable debug diagnostics on stderr")
	cmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "",
		"diagnostic level: debug, info, warn or error (default from "+log.EnvLogLevel+")")

	cmd.AddCommand(
		newDumpCommand(),
		newGenCommand(),
		newVerifyCommand(),
		newTreeCommand(),
	)
	cmd.AddCommand(extra...)

	return cmd
}

func configureLogging() {
	switch {
	case globalFlags.Debug:
		log.SetLogLevel("debug")
	case globalFlags.LogLevel != "":
		log.SetLogLevel(globalFlags.LogLevel)
	}

	log.Debug("starting", log.Fields{
		"host_order": endian.Name(endian.CheckEndianness()),
		"wire_order": endian.Name(endian.GetWireEngine()),
	})
}
