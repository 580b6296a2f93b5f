package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit/pkg/deck"
	"github.com/slidekit/slidekit/pkg/slide"
	"github.com/slidekit/slidekit/pkg/table"
)

func newSwapCmd() *cobra.Command {
	var selectIDs []string
	var byColumns, keepFormatting, dryRun bool

	cmd := &cobra.Command{
		Use:   "swap [deck] [a] [b]",
		Short: "Swap the content of two table rows or columns",
		Long: `Swap exchanges the content of rows (or, with --columns, columns) a and b
of a table. Indices are 1-based. The target table is the one selected via
--select, or the deck's only table. Swaps touching merged cells are
rejected outright; nothing is half-swapped.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			b, err := strconv.Atoi(args[2])
			if err != nil {
				return err
			}

			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}
			var sel slide.Selection
			if len(selectIDs) > 0 {
				if sel, err = d.Select(selectIDs...); err != nil {
					return err
				}
			}

			swapper := table.NewSwapper(loggerFromContext(cmd.Context()))
			var msg string
			if byColumns {
				msg, err = swapper.SwapColumns(sel, d.Page(), a, b, keepFormatting)
			} else {
				msg, err = swapper.SwapRows(sel, d.Page(), a, b, keepFormatting)
			}
			if err != nil {
				return err
			}
			printSuccess("%s", msg)

			if dryRun {
				printDetail("dry run, deck not saved")
				return nil
			}
			if err := d.Save(args[0]); err != nil {
				return err
			}
			printFile(args[0])
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&selectIDs, "select", "s", nil, "selection containing the target table")
	cmd.Flags().BoolVar(&byColumns, "columns", false, "swap columns instead of rows")
	cmd.Flags().BoolVar(&keepFormatting, "keep-formatting", false, "move run styles, fills, and alignment with the text")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report the result without saving the deck")
	return cmd
}
