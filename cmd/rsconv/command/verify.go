package command

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/rsconv"
	"github.com/arloliu/rsconv/errs"
	"github.com/arloliu/rsconv/internal/hash"
)

type verifyResult struct {
	file   string
	report rsconv.VerifyReport
}

func newVerifyCommand() *cobra.Command {
	var (
		decompress string
		jobs       int
	)

	cmd := &cobra.Command{
		Use:   "verify [flags] infile...",
		Short: "check that binary files survive conversion to text and back",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]verifyResult, len(args))

			var g errgroup.Group
			g.SetLimit(jobs)
			for i, file := range args {
				g.Go(func() error {
					data, err := readBinary(file, decompress)
					if err != nil {
						return err
					}
					report, err := rsconv.Verify(data)
					if err != nil && !errors.Is(err, errs.ErrRoundTripMismatch) {
						return errors.Wrapf(err, "file '%s'", file)
					}
					results[i] = verifyResult{file: file, report: report}

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			return renderVerify(cmd, results)
		},
	}

	cmd.Flags().StringVar(&decompress, "decompress", decompressAuto, "input compression: auto, none, zstd, s2 or lz4")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "number of files verified concurrently")

	return cmd
}

func renderVerify(cmd *cobra.Command, results []verifyResult) error {
	pass := color.New(color.FgGreen).SprintFunc()
	fail := color.New(color.FgRed).SprintFunc()

	t := table.NewWriter()
	t.AppendHeader(table.Row{"File", "Bytes", "Input xxHash64", "Regenerated xxHash64", "Text Bytes", "Result"})

	failed := 0
	for _, r := range results {
		result := pass("identical")
		if !r.report.Match {
			failed++
			result = fail(fmt.Sprintf("differs at offset %d", r.report.FirstDiff))
		}
		t.AppendRow(table.Row{
			r.file,
			r.report.InputSize,
			hash.Format(r.report.InputDigest),
			hash.Format(r.report.OutputDigest),
			r.report.TextSize,
			result,
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})
	t.SetOutputMirror(cmd.OutOrStdout())
	t.Render()

	if failed > 0 {
		return errors.Wrapf(errs.ErrRoundTripMismatch, "%d of %d files", failed, len(results))
	}

	return nil
}
