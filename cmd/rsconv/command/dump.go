package command

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/arloliu/rsconv"
)

func newDumpCommand() *cobra.Command {
	var (
		headerOnly bool
		decompress string
	)

	cmd := &cobra.Command{
		Use:   "dump [flags] infile [outfile]",
		Short: "write the text form of a binary Range Series file",
		Long: "Processes CODAR SeaSonde RangeSeries data files.\n" +
			"Reads a binary infile and writes its text form to outfile, or to stdout.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readBinary(args[0], decompress)
			if err != nil {
				return err
			}

			var text bytes.Buffer
			if err := rsconv.Dump(&text, data, headerOnly); err != nil {
				return err
			}

			var out string
			if len(args) > 1 {
				out = args[1]
			}

			return writeOutput(cmd.OutOrStdout(), out, text.Bytes())
		},
	}

	cmd.Flags().BoolVarP(&headerOnly, "header-only", "H", false, "stop before the BODY block")
	cmd.Flags().StringVar(&decompress, "decompress", decompressAuto, "input compression: auto, none, zstd, s2 or lz4")

	return cmd
}
