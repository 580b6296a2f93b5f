package table

// ColorKind discriminates the closed set of color representations a style
// snapshot can carry.
type ColorKind int

// Color kinds.
const (
	// ColorNone marks an attribute with no explicit color. It is recorded
	// as-is and never reapplied.
	ColorNone ColorKind = iota
	// ColorRGB is a literal color, hex-encoded as "RRGGBB".
	ColorRGB
	// ColorTheme references a named color of the document theme.
	ColorTheme
)

// ColorSpec is a closed tagged union over the color representations.
// Exactly one of Hex or Theme is meaningful, selected by Kind; both are
// empty for ColorNone. Capture and apply paths match exhaustively on Kind
// instead of null-checking individual fields.
type ColorSpec struct {
	Kind  ColorKind
	Hex   string
	Theme string
}

// RGB returns a literal color spec.
func RGB(hex string) ColorSpec { return ColorSpec{Kind: ColorRGB, Hex: hex} }

// Theme returns a theme-reference color spec.
func Theme(id string) ColorSpec { return ColorSpec{Kind: ColorTheme, Theme: id} }

// IsSet reports whether the spec carries an explicit color.
func (c ColorSpec) IsSet() bool { return c.Kind != ColorNone }

// RunStyle is a flat record of optional character-level attributes.
// A nil pointer (or ColorNone) means the attribute was not explicitly set
// at capture time; apply paths skip unset attributes so destination
// defaults survive a transplant.
type RunStyle struct {
	Bold           *bool
	Italic         *bool
	Underline      *bool
	Strikethrough  *bool
	SmallCaps      *bool
	FontFamily     *string
	FontSize       *float64
	FontWeight     *int
	BaselineOffset *float64
	Foreground     ColorSpec
	Background     ColorSpec
	Link           *string
}

// ParagraphAlignment is the horizontal alignment of a paragraph.
type ParagraphAlignment int

// Paragraph alignments.
const (
	ParagraphAlignStart ParagraphAlignment = iota
	ParagraphAlignCenter
	ParagraphAlignEnd
	ParagraphAlignJustify
)

// ParagraphStyle is a flat record of optional paragraph-level attributes,
// with the same unset semantics as RunStyle.
type ParagraphStyle struct {
	LineSpacing     *float64
	SpaceAbove      *float64
	SpaceBelow      *float64
	IndentStart     *float64
	IndentEnd       *float64
	IndentFirstLine *float64
	Alignment       *ParagraphAlignment
}

// RunSpan is a run style over a half-open character range [Start, End) of
// the cell's plain text at capture time.
type RunSpan struct {
	Start int
	End   int
	Style RunStyle
}

// ParagraphSpan is a paragraph style over a half-open character range
// [Start, End) of the cell's plain text at capture time.
type ParagraphSpan struct {
	Start int
	End   int
	Style ParagraphStyle
}
