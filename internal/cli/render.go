package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit/pkg/deck"
)

func newRenderCmd() *cobra.Command {
	var output string
	var labels, grid bool

	cmd := &cobra.Command{
		Use:   "render [deck]",
		Short: "Render an SVG preview of a deck",
		Long: `Render draws the deck's objects as rectangles and its tables as outlined
grids into an SVG file, for eyeballing the result of a layout operation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("Loaded deck %s: %s", args[0], d)

			var opts []deck.SVGOption
			if labels {
				opts = append(opts, deck.WithLabels())
			}
			if grid {
				opts = append(opts, deck.WithGrid())
			}
			data := deck.RenderSVG(d, opts...)

			path := output
			if path == "" {
				path = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".svg"
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}

			printSuccess("rendered %s", d)
			printFile(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: deck name with .svg)")
	cmd.Flags().BoolVar(&labels, "labels", true, "draw object ids")
	cmd.Flags().BoolVar(&grid, "grid", true, "draw table cell lines")
	return cmd
}
