package cli

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit/pkg/deck"
	"github.com/slidekit/slidekit/pkg/engine"
	"github.com/slidekit/slidekit/pkg/slide"
)

// opOpts holds the flags shared by every layout operation command.
type opOpts struct {
	selectIDs []string // selection, in order; empty selects the whole deck
	anchorID  string   // explicit anchor, bypassing the persisted pin
	dryRun    bool     // report without saving
	store     storeOpts
}

// register adds the shared flags to cmd.
func (o *opOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&o.selectIDs, "select", "s", nil, "object ids to operate on, in selection order (default: whole deck)")
	cmd.Flags().StringVar(&o.anchorID, "anchor", "", "anchor object id for this run (default: the persisted pin)")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "report the result without saving the deck")
	o.store.register(cmd)
}

// runOp loads the deck, resolves the selection and anchor pin, runs fn, and
// saves the deck back unless --dry-run was given. Failed elements in the
// report downgrade the status line to a warning but are not an error; the
// operation completed for the rest of the selection.
func runOp(ctx context.Context, path string, opts *opOpts, fn func(sel slide.Selection, anchorID string) (*engine.Report, error)) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	d, err := deck.Load(path)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded deck %s: %s", path, d)

	sel, err := d.Select(opts.selectIDs...)
	if err != nil {
		return err
	}

	anchorID := opts.anchorID
	if anchorID == "" {
		anchorID, err = persistedAnchor(ctx, &opts.store, d.DocID, path)
		if err != nil {
			return err
		}
	}

	report, err := fn(sel, anchorID)
	if err != nil {
		return err
	}

	if report.Failed > 0 {
		printWarning("%s", report.Message)
	} else {
		printSuccess("%s", report.Message)
	}

	if opts.dryRun {
		printDetail("dry run, deck not saved")
	} else {
		if err := d.Save(path); err != nil {
			return err
		}
		printFile(path)
	}

	prog.done(report.Message)
	return nil
}

// persistedAnchor looks up the document's pinned anchor id, if any.
func persistedAnchor(ctx context.Context, store *storeOpts, declaredDocID, path string) (string, error) {
	s, closeStore, err := store.open(ctx)
	if err != nil {
		return "", err
	}
	defer closeStore()

	id, ok, err := s.Get(ctx, docIDFor(declaredDocID, path))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return id, nil
}

// newEngine builds the layout engine with the context logger.
func newEngine(ctx context.Context) *engine.Engine {
	return engine.New(loggerFromContext(ctx))
}

func newAlignCmd() *cobra.Command {
	var opts opOpts

	cmd := &cobra.Command{
		Use:   "align [deck] [edge]",
		Short: "Align selected objects to an anchor edge or center",
		Long: `Align moves every selected object so the given edge or center line
coincides with the anchor's. Edges: left, right, top, bottom, center-x,
center-y. The anchor itself never moves.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			edge, err := engine.ParseEdge(args[1])
			if err != nil {
				return err
			}
			return runOp(cmd.Context(), args[0], &opts, func(sel slide.Selection, anchorID string) (*engine.Report, error) {
				return newEngine(cmd.Context()).Align(sel, anchorID, edge)
			})
		},
	}

	opts.register(cmd)
	return cmd
}

func newDistributeCmd() *cobra.Command {
	var opts opOpts

	cmd := &cobra.Command{
		Use:   "distribute [deck] [axis]",
		Short: "Distribute selected objects with equal gaps",
		Long: `Distribute keeps the outermost objects fixed and spaces the rest so
every gap along the axis is equal. Axes: horizontal, vertical. Needs at
least three selected objects.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := engine.ParseAxis(args[1])
			if err != nil {
				return err
			}
			return runOp(cmd.Context(), args[0], &opts, func(sel slide.Selection, _ string) (*engine.Report, error) {
				return newEngine(cmd.Context()).Distribute(sel, axis)
			})
		},
	}

	opts.register(cmd)
	return cmd
}

func newDockCmd() *cobra.Command {
	var opts opOpts

	cmd := &cobra.Command{
		Use:   "dock [deck] [side]",
		Short: "Abut selected objects against an anchor side",
		Long: `Dock moves every selected object flush against the anchor's side with
zero gap. Sides: left, right, top, bottom. Multiple docked objects stack
on the same spot.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := engine.ParseSide(args[1])
			if err != nil {
				return err
			}
			return runOp(cmd.Context(), args[0], &opts, func(sel slide.Selection, anchorID string) (*engine.Report, error) {
				return newEngine(cmd.Context()).Dock(sel, anchorID, side)
			})
		},
	}

	opts.register(cmd)
	return cmd
}

func newMatchCmd() *cobra.Command {
	var opts opOpts

	cmd := &cobra.Command{
		Use:   "match [deck] [dimension]",
		Short: "Match selected objects' size to the anchor",
		Long:  `Match copies the anchor's width, height, or both onto every selected object. Dimensions: width, height, both.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dim, err := engine.ParseDimension(args[1])
			if err != nil {
				return err
			}
			return runOp(cmd.Context(), args[0], &opts, func(sel slide.Selection, anchorID string) (*engine.Report, error) {
				return newEngine(cmd.Context()).Match(sel, anchorID, dim)
			})
		},
	}

	opts.register(cmd)
	return cmd
}

func newStretchCmd() *cobra.Command {
	var opts opOpts

	cmd := &cobra.Command{
		Use:   "stretch [deck] [side]",
		Short: "Stretch selected objects to an anchor edge",
		Long: `Stretch extends each selected object so its side reaches the anchor's
matching edge, keeping the opposite side fixed. Objects whose new size
would not be positive are skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := engine.ParseSide(args[1])
			if err != nil {
				return err
			}
			return runOp(cmd.Context(), args[0], &opts, func(sel slide.Selection, anchorID string) (*engine.Report, error) {
				return newEngine(cmd.Context()).Stretch(sel, anchorID, side)
			})
		},
	}

	opts.register(cmd)
	return cmd
}

func newFillCmd() *cobra.Command {
	var opts opOpts

	cmd := &cobra.Command{
		Use:   "fill [deck] [side]",
		Short: "Grow selected objects across the gap to the anchor",
		Long: `Fill extends each selected object that has an open gap between it and
the anchor on the given side, closing the gap exactly. Objects that touch
or overlap the anchor are left alone; if nothing qualifies, the command
reports "no gaps found".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			side, err := engine.ParseSide(args[1])
			if err != nil {
				return err
			}
			return runOp(cmd.Context(), args[0], &opts, func(sel slide.Selection, anchorID string) (*engine.Report, error) {
				return newEngine(cmd.Context()).Fill(sel, anchorID, side)
			})
		},
	}

	opts.register(cmd)
	return cmd
}

func newResizeCmd() *cobra.Command {
	var opts opOpts

	cmd := &cobra.Command{
		Use:   "resize [deck] [percent]",
		Short: "Scale selected objects by a percentage",
		Long:  `Resize multiplies each selected object's width and height by percent/100, keeping its top-left corner. Percent must be positive; 100 is a no-op.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			percent, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return err
			}
			return runOp(cmd.Context(), args[0], &opts, func(sel slide.Selection, _ string) (*engine.Report, error) {
				return newEngine(cmd.Context()).MagicResize(sel, percent)
			})
		},
	}

	opts.register(cmd)
	return cmd
}

func newArrangeCmd() *cobra.Command {
	var opts opOpts
	var rows, cols int
	var spacing float64

	cmd := &cobra.Command{
		Use:   "arrange [deck]",
		Short: "Arrange selected objects in a grid",
		Long: `Arrange places the selected objects into a column-driven grid inside
their current combined bounds. The column count wins: the row count grows
to fit the selection regardless of --rows.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd.Context(), args[0], &opts, func(sel slide.Selection, _ string) (*engine.Report, error) {
				return newEngine(cmd.Context()).Arrange(sel, rows, cols, spacing)
			})
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "requested row count (advisory; columns win)")
	cmd.Flags().IntVar(&cols, "cols", 0, "column count (0 places everything in one row)")
	cmd.Flags().Float64Var(&spacing, "spacing", 0, "gap between grid cells")
	opts.register(cmd)
	return cmd
}
