package inline

// ShapingBoundary marks a run's position inside a cross-run shaping range.
// Runs in a range were measured together by the shaper; a break landing
// inside the range invalidates the shared measurement.
type ShapingBoundary uint8

const (
	// ShapingBoundaryNone: the run was measured on its own.
	ShapingBoundaryNone ShapingBoundary = iota
	// ShapingBoundaryStart opens a shaping range.
	ShapingBoundaryStart
	// ShapingBoundaryMiddle continues a shaping range.
	ShapingBoundaryMiddle
	// ShapingBoundaryEnd closes a shaping range.
	ShapingBoundaryEnd
)

// String returns the string representation of the shaping boundary.
func (s ShapingBoundary) String() string {
	switch s {
	case ShapingBoundaryNone:
		return "None"
	case ShapingBoundaryStart:
		return "Start"
	case ShapingBoundaryMiddle:
		return "Middle"
	case ShapingBoundaryEnd:
		return "End"
	default:
		return unknownStr
	}
}

// Run is one measured item inside a ContinuousContent sequence.
type Run struct {
	Item  Item
	Style *Style

	// ContentWidth is the run's measured width. Word-spacing at a word
	// separator is not part of the width; it travels as SpacingOffset.
	ContentWidth float64

	// SpacingOffset shifts the run's position (word-spacing). It widens the
	// line but not the run.
	SpacingOffset float64

	// TextSpacingAdjustment is the width correction applied when the run
	// was re-measured as part of a shaping range.
	TextSpacingAdjustment float64

	ShapingBoundary ShapingBoundary
}

// ContinuousContent accumulates the unbreakable-by-default run sequence
// between two soft wrap opportunities, together with the aggregates the
// fitter reads.
type ContinuousContent struct {
	runs         []Run
	logicalWidth float64

	// minimumRequiredWidth, when set, is a width the content may not be
	// split below (ruby bases narrower than their annotation).
	minimumRequiredWidth    float64
	hasMinimumRequiredWidth bool

	// hangingContentWidth is the portion of logicalWidth allowed to
	// overflow the line edge (hangable punctuation, preserved trailing
	// whitespace under a hanging white-space value).
	hangingContentWidth float64

	// trailingSoftHyphenWidth is set when the last text run ends with a
	// soft hyphen; it is the width the visible hyphen would add.
	trailingSoftHyphenWidth    float64
	hasTrailingSoftHyphenWidth bool
}

// Runs returns the accumulated runs. The slice is owned by the receiver.
func (c *ContinuousContent) Runs() []Run { return c.runs }

// IsEmpty reports whether no runs have been accumulated.
func (c *ContinuousContent) IsEmpty() bool { return len(c.runs) == 0 }

// LogicalWidth returns the aggregate width including spacing offsets.
func (c *ContinuousContent) LogicalWidth() float64 { return c.logicalWidth }

// NonHangingWidth returns the width that must fit on the line.
func (c *ContinuousContent) NonHangingWidth() float64 {
	return c.logicalWidth - c.hangingContentWidth
}

// MinimumRequiredWidth returns the unsplittable minimum width, if any.
func (c *ContinuousContent) MinimumRequiredWidth() (float64, bool) {
	return c.minimumRequiredWidth, c.hasMinimumRequiredWidth
}

// HangingContentWidth returns the width allowed to overflow the line edge.
func (c *ContinuousContent) HangingContentWidth() float64 { return c.hangingContentWidth }

// TrailingSoftHyphenWidth returns the width a visible hyphen would add when
// the content ends at a soft hyphen.
func (c *ContinuousContent) TrailingSoftHyphenWidth() (float64, bool) {
	return c.trailingSoftHyphenWidth, c.hasTrailingSoftHyphenWidth
}

func (c *ContinuousContent) reset() {
	c.runs = c.runs[:0]
	c.logicalWidth = 0
	c.minimumRequiredWidth = 0
	c.hasMinimumRequiredWidth = false
	c.hangingContentWidth = 0
	c.trailingSoftHyphenWidth = 0
	c.hasTrailingSoftHyphenWidth = false
}

// append adds a measured run. Trailing soft-hyphen state follows the last
// text run.
func (c *ContinuousContent) append(run Run) {
	c.logicalWidth += run.SpacingOffset + run.ContentWidth
	if run.Item.IsText() {
		c.trailingSoftHyphenWidth = 0
		c.hasTrailingSoftHyphenWidth = false
	}
	c.runs = append(c.runs, run)
}

// appendTextRun adds a text run, tracking the trailing soft hyphen.
func (c *ContinuousContent) appendTextRun(run Run, hyphenWidth float64) {
	c.append(run)
	if run.Item.TrailingSoftHyphen {
		c.trailingSoftHyphenWidth = hyphenWidth
		c.hasTrailingSoftHyphenWidth = true
	}
}

// setMinimumRequiredWidth raises the unsplittable minimum width.
func (c *ContinuousContent) setMinimumRequiredWidth(w float64) {
	if !c.hasMinimumRequiredWidth || w > c.minimumRequiredWidth {
		c.minimumRequiredWidth = w
		c.hasMinimumRequiredWidth = true
	}
}

// setHangingContentWidth records the width allowed to hang past the edge.
func (c *ContinuousContent) setHangingContentWidth(w float64) {
	c.hangingContentWidth = w
}

// setRunWidth replaces run i's content width, keeping the aggregate in sync.
// Used when a shaping pass re-measures runs in context.
func (c *ContinuousContent) setRunWidth(i int, w float64) {
	c.logicalWidth += w - c.runs[i].ContentWidth
	c.runs[i].TextSpacingAdjustment = c.runs[i].ContentWidth - w
	c.runs[i].ContentWidth = w
}

// hasTextContent reports whether any run is a text run.
func (c *ContinuousContent) hasTextContent() bool {
	for i := range c.runs {
		if c.runs[i].Item.IsText() {
			return true
		}
	}
	return false
}

// isFullyCollapsible reports whether every run is collapsible whitespace:
// content that gets trimmed if the line ends after it.
func (c *ContinuousContent) isFullyCollapsible() bool {
	if len(c.runs) == 0 {
		return false
	}
	for i := range c.runs {
		item := c.runs[i].Item
		if !item.IsText() || !item.Whitespace || !item.Style.WhiteSpace.Collapses() {
			return false
		}
	}
	return true
}
