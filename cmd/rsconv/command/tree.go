package command

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/arloliu/rsconv"
	"github.com/arloliu/rsconv/block"
)

func newTreeCommand() *cobra.Command {
	var decompress string

	cmd := &cobra.Command{
		Use:   "tree [flags] infile",
		Short: "show the block tree of a binary file with declared and computed sizes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readBinary(args[0], decompress)
			if err != nil {
				return err
			}
			seq, err := rsconv.Decode(data)
			if err != nil {
				return err
			}

			tree := block.BuildTree(seq)
			w := cmd.OutOrStdout()

			t := table.NewWriter()
			t.AppendHeader(table.Row{"#", "Block", "Kind", "Declared", "Span"})
			tree.Walk(func(i int, n *block.Node) {
				blk := &seq[i]
				t.AppendRow(table.Row{
					i,
					strings.Repeat("  ", n.Depth) + blk.Code.String(),
					block.KindOf(blk.Code).String(),
					blk.Size,
					tree.Span(i),
				})
			})
			t.SetColumnConfigs([]table.ColumnConfig{
				{Number: 2, Align: text.AlignLeft},
				{Number: 4, Align: text.AlignRight},
				{Number: 5, Align: text.AlignRight},
			})
			t.SetOutputMirror(w)
			t.Render()

			mismatches, err := tree.Check()
			if err != nil {
				return err
			}
			for _, m := range mismatches {
				_, _ = color.New(color.FgYellow).Fprintf(w, "%s at #%d declares %d bytes, sizing rules give %d\n",
					m.Code.Quote(), m.Index, m.Declared, m.Computed)
			}
			if len(mismatches) == 0 {
				_, _ = color.New(color.FgGreen).Fprintln(w, "container sizes consistent")
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&decompress, "decompress", decompressAuto, "input compression: auto, none, zstd, s2 or lz4")

	return cmd
}
