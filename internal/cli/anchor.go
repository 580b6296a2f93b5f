package cli

import (
	"github.com/spf13/cobra"

	"github.com/slidekit/slidekit/pkg/deck"
)

func newAnchorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anchor",
		Short: "Manage the document's pinned anchor",
		Long: `Anchor-relative operations (align, dock, match, stretch, fill) transform
against one reference object. Pinning an anchor persists that choice per
document; without a pin, the last selected object is used. Pins are
last-writer-wins: collaborators overwrite each other silently.`,
	}

	cmd.AddCommand(newAnchorGetCmd())
	cmd.AddCommand(newAnchorSetCmd())
	cmd.AddCommand(newAnchorClearCmd())
	return cmd
}

func newAnchorGetCmd() *cobra.Command {
	var store storeOpts

	cmd := &cobra.Command{
		Use:   "get [deck]",
		Short: "Show the pinned anchor, if any",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}
			s, closeStore, err := store.open(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			id, ok, err := s.Get(ctx, docIDFor(d.DocID, args[0]))
			if err != nil {
				return err
			}
			if !ok {
				printInfo("no anchor pinned (operations fall back to the last selected object)")
				return nil
			}
			printKeyValue("anchor", id)
			if _, err := d.Select(id); err != nil {
				printWarning("pinned object %q is not in the deck; operations will fall back", id)
			}
			return nil
		},
	}

	store.register(cmd)
	return cmd
}

func newAnchorSetCmd() *cobra.Command {
	var store storeOpts

	cmd := &cobra.Command{
		Use:   "set [deck] [object-id]",
		Short: "Pin an object as the document's anchor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}
			if _, err := d.Select(args[1]); err != nil {
				return err
			}
			s, closeStore, err := store.open(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := s.Set(ctx, docIDFor(d.DocID, args[0]), args[1]); err != nil {
				return err
			}
			printSuccess("pinned %s as anchor", args[1])
			return nil
		},
	}

	store.register(cmd)
	return cmd
}

func newAnchorClearCmd() *cobra.Command {
	var store storeOpts

	cmd := &cobra.Command{
		Use:   "clear [deck]",
		Short: "Remove the document's pinned anchor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := deck.Load(args[0])
			if err != nil {
				return err
			}
			s, closeStore, err := store.open(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := s.Clear(ctx, docIDFor(d.DocID, args[0])); err != nil {
				return err
			}
			printSuccess("anchor cleared")
			return nil
		},
	}

	store.register(cmd)
	return cmd
}
