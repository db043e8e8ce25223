package inline

import "strings"

// LineRun is one item committed to the line, positioned in logical
// coordinates relative to the line's content left edge.
type LineRun struct {
	// Item is the committed item; text items split across lines appear here
	// already sliced.
	Item  Item
	Style *Style

	LogicalLeft  float64
	LogicalWidth float64

	BidiLevel       uint8
	ShapingBoundary ShapingBoundary

	// HasHyphen marks a text run that renders a hyphen at its end because
	// the line broke there. The hyphen width is part of LogicalWidth.
	HasHyphen bool
}

// LogicalRight returns the run's right edge.
func (r *LineRun) LogicalRight() float64 { return r.LogicalLeft + r.LogicalWidth }

// Line accumulates committed runs for the line under construction. The
// builder appends whole candidates, then finalizes trailing content
// (trimming, hanging, bidi level resets) before closing the line.
type Line struct {
	runs                []LineRun
	contentLogicalRight float64

	trimmableTrailingWidth  float64
	trailingSoftHyphenWidth float64
	hasTrailingSoftHyphen   bool

	hangingTrailingWidth        float64
	hangingTrailingIsWhitespace bool
	hangablePunctuationStart    float64

	hasContent          bool
	needsBidiReordering bool

	// openBoxes are inline boxes whose start edge is on this line (or a
	// previous one) with no end edge yet. clonedEndDecorationWidth is the
	// end decoration those of them with cloned decoration would repeat if
	// the line broke here.
	openBoxes                []*Box
	clonedEndDecorationWidth float64
}

// initialize resets the line. spanningBoxes are inline boxes opened on
// previous lines; they re-seed as zero-width opaque runs so bidi
// reordering and run ownership stay consistent across the break.
func (l *Line) initialize(spanningBoxes []*Box) {
	l.runs = l.runs[:0]
	l.contentLogicalRight = 0
	l.trimmableTrailingWidth = 0
	l.trailingSoftHyphenWidth = 0
	l.hasTrailingSoftHyphen = false
	l.hangingTrailingWidth = 0
	l.hangingTrailingIsWhitespace = false
	l.hangablePunctuationStart = 0
	l.hasContent = false
	l.needsBidiReordering = false
	l.openBoxes = l.openBoxes[:0]
	l.clonedEndDecorationWidth = 0
	for _, box := range spanningBoxes {
		l.openBoxes = append(l.openBoxes, box)
		if box.Style.BoxDecorationBreak == BoxDecorationBreakClone {
			l.clonedEndDecorationWidth += box.MarginBorderPaddingEnd
		}
		item := NewInlineBoxStart(box).WithBidiLevel(OpaqueBidiLevel)
		l.runs = append(l.runs, LineRun{Item: item, Style: box.Style, BidiLevel: OpaqueBidiLevel})
	}
}

// Runs returns the committed runs. The slice is owned by the line.
func (l *Line) Runs() []LineRun { return l.runs }

// ContentLogicalRight returns the right edge of the committed content.
func (l *Line) ContentLogicalRight() float64 { return l.contentLogicalRight }

// ContentLogicalWidth returns the committed content width.
func (l *Line) ContentLogicalWidth() float64 { return l.contentLogicalRight }

// TrimmableTrailingWidth returns the width of trailing collapsible
// whitespace.
func (l *Line) TrimmableTrailingWidth() float64 { return l.trimmableTrailingWidth }

// HasContent reports whether any in-flow content is committed.
func (l *Line) HasContent() bool { return l.hasContent }

// OpenBoxes returns the inline boxes still open at the current position.
func (l *Line) OpenBoxes() []*Box { return l.openBoxes }

// ClonedEndDecorationWidth returns the decoration width a break at the
// current position would add for open boxes with cloned decoration.
func (l *Line) ClonedEndDecorationWidth() float64 { return l.clonedEndDecorationWidth }

// TrailingSoftHyphenWidth returns the pending soft hyphen width, if any.
func (l *Line) TrailingSoftHyphenWidth() (float64, bool) {
	return l.trailingSoftHyphenWidth, l.hasTrailingSoftHyphen
}

// HangingTrailingWidth returns the width of trailing content hanging past
// the line edge, and whether that content is whitespace.
func (l *Line) HangingTrailingWidth() (float64, bool) {
	return l.hangingTrailingWidth, l.hangingTrailingIsWhitespace
}

// HangablePunctuationStartWidth returns the width of leading punctuation
// hanging before the line start edge.
func (l *Line) HangablePunctuationStartWidth() float64 { return l.hangablePunctuationStart }

// NeedsBidiReordering reports whether any committed run carries an explicit
// embedding level.
func (l *Line) NeedsBidiReordering() bool { return l.needsBidiReordering }

func (l *Line) setHangablePunctuationStart(w float64) { l.hangablePunctuationStart = w }

// append commits one measured run. hyphenWidth is the style's hyphen width
// for text runs ending in a soft hyphen.
func (l *Line) append(run Run, hyphenWidth float64) {
	lr := LineRun{
		Item:            run.Item,
		Style:           run.Style,
		LogicalLeft:     l.contentLogicalRight + run.SpacingOffset,
		LogicalWidth:    run.ContentWidth,
		BidiLevel:       run.Item.BidiLevel,
		ShapingBoundary: run.ShapingBoundary,
	}
	l.runs = append(l.runs, lr)
	l.contentLogicalRight += run.SpacingOffset + run.ContentWidth
	if run.Item.BidiLevel != DefaultBidiLevel && run.Item.BidiLevel != OpaqueBidiLevel {
		l.needsBidiReordering = true
	}

	switch run.Item.Kind {
	case ItemText:
		if run.Item.Whitespace && run.Item.Style.WhiteSpace.Collapses() {
			l.trimmableTrailingWidth += run.SpacingOffset + run.ContentWidth
		} else {
			l.trimmableTrailingWidth = 0
			l.hasContent = true
		}
		if run.Item.TrailingSoftHyphen {
			l.trailingSoftHyphenWidth = hyphenWidth
			l.hasTrailingSoftHyphen = true
		} else {
			l.trailingSoftHyphenWidth = 0
			l.hasTrailingSoftHyphen = false
		}
	case ItemInlineBoxStart:
		l.openBoxes = append(l.openBoxes, run.Item.Box)
		if run.Item.Box.Style.BoxDecorationBreak == BoxDecorationBreakClone {
			l.clonedEndDecorationWidth += run.Item.Box.MarginBorderPaddingEnd
		}
		if run.ContentWidth > 0 {
			l.hasContent = true
		}
	case ItemInlineBoxEnd:
		l.closeBox(run.Item.Box)
		if run.ContentWidth > 0 {
			l.hasContent = true
		}
	case ItemAtomicBox:
		l.trimmableTrailingWidth = 0
		l.hasContent = true
	case ItemForcedBreak:
		l.hasContent = true
	case ItemSoftBreak, ItemOpaque:
		// Zero-width bookkeeping runs.
	default:
		assert(false, "unexpected item kind on line: "+run.Item.Kind.String())
	}
}

func (l *Line) closeBox(box *Box) {
	for i := len(l.openBoxes) - 1; i >= 0; i-- {
		if l.openBoxes[i] == box {
			l.openBoxes = append(l.openBoxes[:i], l.openBoxes[i+1:]...)
			if box.Style.BoxDecorationBreak == BoxDecorationBreakClone {
				l.clonedEndDecorationWidth -= box.MarginBorderPaddingEnd
			}
			return
		}
	}
	assert(false, "inline box end without matching start")
}

// addTrailingHyphen renders a hyphen after the last committed text run.
func (l *Line) addTrailingHyphen(hyphenWidth float64) {
	for i := len(l.runs) - 1; i >= 0; i-- {
		if !l.runs[i].Item.IsText() {
			continue
		}
		l.runs[i].HasHyphen = true
		l.runs[i].LogicalWidth += hyphenWidth
		l.contentLogicalRight += hyphenWidth
		l.trailingSoftHyphenWidth = 0
		l.hasTrailingSoftHyphen = false
		return
	}
	assert(false, "trailing hyphen with no text run on the line")
}

// lastRunIsTrimmableBoxStart reports whether the line ends in collapsible
// whitespace followed by an inline box start, the pattern that invalidates
// the wrap opportunity the whitespace appeared to offer.
func (l *Line) lastRunIsTrimmableBoxStart() bool {
	if l.trimmableTrailingWidth == 0 {
		return false
	}
	for i := len(l.runs) - 1; i >= 0; i-- {
		switch l.runs[i].Item.Kind {
		case ItemInlineBoxStart:
			return true
		case ItemOpaque, ItemSoftBreak:
			continue
		default:
			return false
		}
	}
	return false
}

// trimTrailingWhitespace removes trailing collapsible whitespace. The runs
// stay committed (range coverage is unaffected); only their width vanishes.
func (l *Line) trimTrailingWhitespace() {
	if l.trimmableTrailingWidth == 0 {
		return
	}
	trimmed := 0.0
	for i := len(l.runs) - 1; i >= 0 && trimmed < l.trimmableTrailingWidth; i-- {
		run := &l.runs[i]
		if run.LogicalWidth == 0 && !run.Item.IsText() {
			continue
		}
		if !run.Item.IsText() || !run.Item.Whitespace || !run.Item.Style.WhiteSpace.Collapses() {
			break
		}
		trimmed += run.LogicalRight() - l.runLogicalLeftWithSpacing(i)
		run.LogicalWidth = 0
		run.LogicalLeft = l.runLogicalLeftWithSpacing(i)
	}
	l.contentLogicalRight -= trimmed
	l.trimmableTrailingWidth = 0
}

// runLogicalLeftWithSpacing returns run i's left edge with its word-spacing
// offset removed, i.e. the previous content's right edge.
func (l *Line) runLogicalLeftWithSpacing(i int) float64 {
	if i == 0 {
		return 0
	}
	return l.runs[i-1].LogicalRight()
}

// trimOverflowingNonBreakingSpace removes trailing no-break spaces while
// the content overflows the available width (legacy web behavior).
func (l *Line) trimOverflowingNonBreakingSpace(availableWidth float64) {
	for i := len(l.runs) - 1; i >= 0 && l.contentLogicalRight > availableWidth; i-- {
		run := &l.runs[i]
		if run.LogicalWidth == 0 && !run.Item.IsText() {
			continue
		}
		if !run.Item.IsText() || strings.Trim(run.Item.Text, "\u00a0") != "" {
			return
		}
		l.contentLogicalRight -= run.LogicalWidth
		run.LogicalWidth = 0
	}
}

// hangTrailingWhitespace marks trailing preserved whitespace as hanging: it
// keeps its position but stops counting against the available width.
func (l *Line) hangTrailingWhitespace() {
	hanging := 0.0
	for i := len(l.runs) - 1; i >= 0; i-- {
		run := &l.runs[i]
		if run.LogicalWidth == 0 && !run.Item.IsText() {
			continue
		}
		if !run.Item.IsText() || !run.Item.Whitespace || !run.Item.Style.HangsTrailingWhitespace() {
			break
		}
		hanging += run.LogicalWidth
	}
	if hanging > 0 {
		l.hangingTrailingWidth = hanging
		l.hangingTrailingIsWhitespace = true
	}
}

// hangTrailingPunctuation marks the line's trailing punctuation as hanging.
func (l *Line) hangTrailingPunctuation(w float64) {
	if w > 0 {
		l.hangingTrailingWidth = w
		l.hangingTrailingIsWhitespace = false
	}
}

// removeOverflowingOutOfFlowContent drops trailing out-of-flow opaque runs
// when the line overflows, so they take their static position on the next
// line instead. Returns the number of runs removed.
func (l *Line) removeOverflowingOutOfFlowContent(availableWidth float64) int {
	if l.contentLogicalRight <= availableWidth {
		return 0
	}
	removed := 0
	for len(l.runs) > 0 {
		last := l.runs[len(l.runs)-1]
		if last.Item.Kind != ItemOpaque || last.Item.Box == nil || !last.Item.Box.OutOfFlow {
			break
		}
		l.runs = l.runs[:len(l.runs)-1]
		removed++
	}
	return removed
}

// resetTrailingWhitespaceBidiLevel forces trailing whitespace to the
// paragraph level, per UBA rule L1.
func (l *Line) resetTrailingWhitespaceBidiLevel(paragraphLevel uint8) {
	for i := len(l.runs) - 1; i >= 0; i-- {
		run := &l.runs[i]
		if run.BidiLevel == OpaqueBidiLevel {
			continue
		}
		if !run.Item.IsText() || !run.Item.Whitespace {
			return
		}
		run.BidiLevel = paragraphLevel
	}
}
