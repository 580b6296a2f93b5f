// Package anchor resolves and persists the reference object ("anchor") that
// layout operations transform against.
//
// Every alignment, docking, and size transform needs one distinguished
// object to hold still while the rest of the selection moves. Users can pin
// an anchor explicitly; the pinned object id is persisted per document in a
// Store so it survives across operations, sessions, and collaborators.
//
// # Storage backends
//
// The Store interface has four implementations:
//   - memory: in-memory map for tests and single-process use
//   - file: JSON files in a directory for CLI usage
//   - redis: Redis-backed store for multi-collaborator deployments
//   - mongo: anchor ids kept alongside documents in a deck database
//
// The anchor id is a single scalar with last-writer-wins semantics: two
// collaborators pinning anchors near-simultaneously race, and the loser's
// choice is silently overwritten. No locking is performed.
package anchor

import (
	"context"

	"github.com/slidekit/slidekit/pkg/slide"
)

// Store persists one anchor object id per document.
//
// Implementations must treat the value as an opaque scalar; the engine
// never validates that a stored id still refers to a live object, it simply
// falls back when the id no longer matches anything in the selection.
type Store interface {
	// Get returns the persisted anchor id for the document.
	// The second return is false when no anchor is pinned.
	Get(ctx context.Context, docID string) (string, bool, error)

	// Set pins objectID as the document's anchor, replacing any previous pin.
	Set(ctx context.Context, docID, objectID string) error

	// Clear removes the document's pinned anchor, if any.
	Clear(ctx context.Context, docID string) error
}

// Resolve picks the reference object for a transform.
//
// If anchorID matches an object in the selection, that object wins
// regardless of its position in the list. Otherwise the last selected
// object is returned. The fallback is intentionally order-dependent:
// selection order carries no semantic meaning, and the crude rule keeps the
// system simple while nudging users toward pinning anchors explicitly.
//
// Resolve returns nil for an empty selection; callers enforce minimum
// selection sizes before invoking.
func Resolve(sel slide.Selection, anchorID string) slide.Object {
	if len(sel) == 0 {
		return nil
	}
	if anchorID != "" {
		if o := sel.ByID(anchorID); o != nil {
			return o
		}
	}
	return sel[len(sel)-1]
}
