// Package engine implements the geometric transforms of the layout core:
// alignment, distribution, docking, size matching, stretching, gap filling,
// proportional scaling, and grid arrangement.
//
// # Operation model
//
// Every operation is synchronous and runs to completion: it reads a
// consistent view of the selection once, issues one host mutation per
// geometry change, and returns a Report summarizing what happened. A
// mutation failure on one object never aborts the rest of the batch; the
// failure is counted and processing continues. Precondition failures
// (selection too small, invalid numeric input) are returned as structured
// errors before any mutation is issued.
//
// Operations that transform relative to a reference object accept the
// persisted anchor id and resolve it per [anchor.Resolve]; the resolved
// anchor itself is never mutated. Distribution and grid arrangement operate
// on the whole selection without a distinguished anchor.
//
// # Usage
//
//	eng := engine.New(logger)
//	report, err := eng.Align(selection, anchorID, engine.EdgeLeft)
//	if err != nil {
//	    return errors.UserMessage(err) // precondition failure, nothing mutated
//	}
//	fmt.Println(report) // "aligned 3 objects"
package engine

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/slidekit/slidekit/pkg/slide"
)

// Engine executes layout operations against host-owned slide objects.
//
// The Engine is stateless: it holds only a logger, and the same Engine can
// serve any number of sequential operations. It performs no locking and no
// background work.
type Engine struct {
	logger *log.Logger
}

// New creates an engine.
// If logger is nil, log.Default() is used.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{logger: logger}
}

// Report aggregates the per-object outcomes of one operation.
//
// Done counts objects successfully mutated, Failed counts objects whose
// host setters were rejected. Message is the human-readable summary shown
// to the user.
type Report struct {
	Done    int
	Failed  int
	Message string
}

// String returns the human-readable summary.
func (r *Report) String() string { return r.Message }

// tally folds per-object mutation results into success/failure counts.
// Expected per-object incompatibilities are counted, not raised.
type tally struct {
	done   int
	failed int
}

// add records the outcome of one object's mutation.
func (t *tally) add(err error) {
	if err != nil {
		t.failed++
	} else {
		t.done++
	}
}

// report builds the final summary, e.g. "aligned 3 objects (1 failed)".
func (t *tally) report(verb string) *Report {
	msg := fmt.Sprintf("%s %d %s", verb, t.done, plural(t.done))
	if t.failed > 0 {
		msg += fmt.Sprintf(" (%d failed)", t.failed)
	}
	return &Report{Done: t.done, Failed: t.failed, Message: msg}
}

// plural returns the noun for n objects.
func plural(n int) string {
	if n == 1 {
		return "object"
	}
	return "objects"
}

// firstErr returns the first non-nil error, or nil.
// Used to fold multi-setter mutations into one per-object outcome.
func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// lead returns an object's leading coordinate on the given axis.
func lead(o slide.Object, ax Axis) float64 {
	if ax == AxisHorizontal {
		return o.Left()
	}
	return o.Top()
}

// extent returns an object's size on the given axis.
func extent(o slide.Object, ax Axis) float64 {
	if ax == AxisHorizontal {
		return o.Width()
	}
	return o.Height()
}

// setLead moves an object's leading edge on the given axis.
func setLead(o slide.Object, ax Axis, v float64) error {
	if ax == AxisHorizontal {
		return o.SetLeft(v)
	}
	return o.SetTop(v)
}
