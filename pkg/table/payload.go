package table

import (
	"github.com/slidekit/slidekit/pkg/errors"
)

// CellPayload is the full captured content and style state of one cell:
// plain text, run style spans, paragraph style spans, fill, and content
// alignment. A payload is self-contained and can be applied to any cell,
// transplanting everything that was explicitly set and nothing more.
//
// Span offsets are character offsets into Text at capture time, so a
// payload stays coherent even after the source cell is overwritten.
type CellPayload struct {
	Text       string
	Runs       []RunSpan
	Paragraphs []ParagraphSpan
	Fill       Fill
	Alignment  ContentAlignment
}

// Capture snapshots a cell's content and formatting.
// The cell is not mutated.
func Capture(c Cell) CellPayload {
	runs := c.Runs()
	paragraphs := c.Paragraphs()
	p := CellPayload{
		Text:       c.Text(),
		Runs:       make([]RunSpan, len(runs)),
		Paragraphs: make([]ParagraphSpan, len(paragraphs)),
		Fill:       c.Fill(),
		Alignment:  c.ContentAlignment(),
	}
	copy(p.Runs, runs)
	copy(p.Paragraphs, paragraphs)
	return p
}

// Apply writes a payload into a cell: text first, then run styles,
// paragraph styles, fill, and content alignment. Unset attributes are
// skipped by the host mutators, so destination defaults survive.
//
// Apply is not atomic; it is only used after all payloads of a swap have
// been captured, so a failure cannot corrupt the data being swapped.
func Apply(c Cell, p CellPayload) error {
	if err := c.SetText(p.Text); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "set cell text")
	}
	for _, span := range p.Runs {
		if err := c.ApplyRunStyle(span); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "apply run style [%d,%d)", span.Start, span.End)
		}
	}
	for _, span := range p.Paragraphs {
		if err := c.ApplyParagraphStyle(span); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "apply paragraph style [%d,%d)", span.Start, span.End)
		}
	}
	if err := c.SetFill(p.Fill); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "set cell fill")
	}
	if p.Alignment != ContentAlignUnset {
		if err := c.SetContentAlignment(p.Alignment); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "set content alignment")
		}
	}
	return nil
}
