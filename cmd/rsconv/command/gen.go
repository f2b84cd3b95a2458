package command

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/arloliu/rsconv"
	"github.com/arloliu/rsconv/compress"
	"github.com/arloliu/rsconv/format"
	"github.com/arloliu/rsconv/internal/log"
)

func newGenCommand() *cobra.Command {
	var compression string

	cmd := &cobra.Command{
		Use:   "gen [flags] infile outfile",
		Short: "write the binary Range Series file described by a text file",
		Long: "Processes CODAR SeaSonde RangeSeries data files.\n" +
			"Reads an ascii text infile and writes a binary version to outfile.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]

			var (
				codec compress.Codec
				ct    format.CompressionType
				err   error
			)
			if compression != "" {
				codec, ct, err = compress.CodecByName(compression)
			} else {
				ct = compress.ForPath(out)
				codec, err = compress.CreateCodec(ct)
			}
			if err != nil {
				return err
			}

			f, err := os.Open(in)
			if err != nil {
				return errors.Wrapf(err, "cannot open input file '%s'", in)
			}
			defer f.Close()

			var bin bytes.Buffer
			if err := rsconv.Generate(&bin, f); err != nil {
				return err
			}

			data, err := codec.Compress(bin.Bytes())
			if err != nil {
				return errors.Wrapf(err, "%s compression", ct)
			}
			log.Info("generated binary", log.Fields{
				"file":        out,
				"bytes":       bin.Len(),
				"written":     len(data),
				"compression": ct.String(),
			})

			return writeOutput(cmd.OutOrStdout(), out, data)
		},
	}

	cmd.Flags().StringVar(&compression, "compress", "", "output compression: none, zstd, s2 or lz4 (default from the outfile extension)")

	return cmd
}
