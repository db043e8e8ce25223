package inline

// ItemPosition addresses a point in the item list: the item at Index, with
// Offset runes of it already consumed (text items only).
type ItemPosition struct {
	Index  int
	Offset int
}

// ItemRange is a half-open span of the item list.
type ItemRange struct {
	Start, End ItemPosition
}

// IsEmpty reports whether the range spans no content.
func (r ItemRange) IsEmpty() bool {
	return r.Start.Index == r.End.Index && r.Start.Offset == r.End.Offset
}

// FloatOutcome reports what happened to floats while building the line.
type FloatOutcome struct {
	// Placed lists floats positioned during this line.
	Placed []PlacedFloat
	// Suspended lists floats that did not fit and carry over, in encounter
	// order.
	Suspended []Item
	// Constrained reports which line edges placed floats pushed in.
	Constrained ConstrainedSides
}

// ContentGeometry is the committed content's horizontal extent.
type ContentGeometry struct {
	// LogicalLeft is the content's offset from the line's left edge after
	// alignment.
	LogicalLeft float64
	// LogicalWidth is the content width after trimming and justification.
	LogicalWidth float64
	// OverflowWidth is the measured width of content moving to the next
	// line when the line broke inside a text item; next-line layout uses
	// it as the partial item's leading width. Only valid when HasOverflow.
	OverflowWidth float64
	HasOverflow   bool
}

// LogicalRight returns the content's right edge.
func (g ContentGeometry) LogicalRight() float64 { return g.LogicalLeft + g.LogicalWidth }

// HangingContent reports content allowed past the line edge.
type HangingContent struct {
	// Width hangs past the line-end edge.
	Width        float64
	IsWhitespace bool
	// PunctuationStartWidth hangs before the line-start edge.
	PunctuationStartWidth float64
}

// LineLayoutResult is the outcome of laying out one line.
type LineLayoutResult struct {
	// Range is the item span the line consumed, including partially
	// consumed leading/trailing text items.
	Range ItemRange

	// Runs is the committed content in logical order.
	Runs []LineRun

	Floats  FloatOutcome
	Content ContentGeometry

	// LineRect is the final float-constrained line rectangle.
	LineRect Rect

	// VisualOrder maps visual positions to indices into Runs; empty when
	// the line needs no reordering.
	VisualOrder   []int32
	BaseDirection Direction

	Hanging HangingContent

	// Ruby holds alignment offsets when the line contains ruby content.
	Ruby RubyOffsets

	IsFirstLine bool
	// IsLastLine reports whether this is the last line with inline
	// content.
	IsLastLine bool
	// EndsWithForcedBreak reports whether a forced break closed the line.
	EndsWithForcedBreak bool

	// SkipHeight, when set, is the vertical distance to move down before
	// retrying: the line placed no content because a carried-over float
	// could not be placed.
	SkipHeight    float64
	HasSkipHeight bool
}

// PreviousLine carries the inter-line state from the previous layout call.
type PreviousLine struct {
	LineIndex int
	// EndsWithLineBreak is true when the previous line was closed by a
	// forced break, starting a new unicode paragraph.
	EndsWithLineBreak   bool
	InlineBaseDirection Direction
	// SuspendedFloats are floats the previous line could not place, in
	// encounter order.
	SuspendedFloats []Item
	// OverflowWidth is the previous line's measured width for the content
	// spilling into this line (see ContentGeometry.OverflowWidth).
	OverflowWidth    float64
	HasOverflowWidth bool
}
