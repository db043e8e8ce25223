package inline

import "unicode"

// LineCandidate is the measured content between two soft wrap
// opportunities, ready for the fitter. A float is always its own candidate.
type LineCandidate struct {
	Content ContinuousContent

	// FloatItemIndex is the item index when the candidate is a float,
	// -1 otherwise.
	FloatItemIndex int

	// HasTrailingForcedBreak marks a candidate closed by a mandatory break.
	HasTrailingForcedBreak bool

	// HasTrailingSoftWrapOpportunity reports whether the position after
	// this candidate is a usable soft wrap opportunity.
	HasTrailingSoftWrapOpportunity bool

	// HangablePunctuationStart is the width of leading punctuation that
	// may hang before the line start edge.
	HangablePunctuationStart float64

	// runItemIndex maps Content run positions back to item list indices.
	runItemIndex []int
}

func (c *LineCandidate) reset() {
	c.Content.reset()
	c.FloatItemIndex = -1
	c.HasTrailingForcedBreak = false
	c.HasTrailingSoftWrapOpportunity = false
	c.HangablePunctuationStart = 0
	c.runItemIndex = c.runItemIndex[:0]
}

// itemIndexOfRun returns the item index a content run came from.
func (c *LineCandidate) itemIndexOfRun(runIndex int) int {
	return c.runItemIndex[runIndex]
}

// candidateContentForLine fills the candidate with the content between
// start and the next soft wrap opportunity and returns that opportunity's
// item index. Runs are measured as they are collected; cross-run shaping
// ranges replace the individual measurements afterwards.
func (b *LineBuilder) candidateContentForLine(candidate *LineCandidate, start ItemPosition, rangeEnd int, lineIsEmpty bool) int {
	candidate.reset()
	next := b.nextWrapOpportunity(start.Index, rangeEnd)
	if b.items[start.Index].Kind == ItemFloat {
		candidate.FloatItemIndex = start.Index
		return next
	}

	contentRight := b.line.ContentLogicalRight()
	for i := start.Index; i < next; i++ {
		item := b.items[i]
		leadingPartial := i == start.Index && start.Offset > 0
		if leadingPartial {
			item = item.right(start.Offset)
		}
		switch item.Kind {
		case ItemText:
			width := 0.0
			if leadingPartial && b.previousLine != nil && b.previousLine.HasOverflowWidth {
				// The previous line already measured this remainder.
				width = b.previousLine.OverflowWidth
			} else {
				width = b.metrics.ItemWidth(item, contentRight, b.isFirstLine)
			}
			spacing := 0.0
			if item.WordSeparator {
				spacing = b.metrics.WordSpacing(item.Style)
			}
			run := Run{Item: item, Style: item.Style, ContentWidth: width, SpacingOffset: spacing}
			candidate.Content.appendTextRun(run, b.metrics.HyphenWidth(item.Style))
			contentRight += spacing + width
		case ItemInlineBoxStart, ItemInlineBoxEnd, ItemAtomicBox:
			width := b.metrics.ItemWidth(item, contentRight, b.isFirstLine)
			candidate.Content.append(Run{Item: item, Style: item.Style, ContentWidth: width})
			contentRight += width
			if item.Kind == ItemInlineBoxStart && item.Box.RubyBase && item.Box.AnnotationWidth > 0 {
				candidate.Content.setMinimumRequiredWidth(item.Box.AnnotationWidth)
			}
		case ItemForcedBreak:
			candidate.Content.append(Run{Item: item, Style: item.Style})
			candidate.HasTrailingForcedBreak = true
		case ItemSoftBreak, ItemOpaque:
			candidate.Content.append(Run{Item: item, Style: item.Style})
		default:
			assert(false, "float inside an inline candidate")
		}
		candidate.runItemIndex = append(candidate.runItemIndex, i)
	}

	b.applyShapingRanges(&candidate.Content)
	b.computeHangingContent(candidate, lineIsEmpty, next == rangeEnd)

	candidate.HasTrailingSoftWrapOpportunity = next < rangeEnd &&
		!candidate.HasTrailingForcedBreak &&
		b.items[next].Kind != ItemFloat
	return next
}

// computeHangingContent detects hangable punctuation and overflowing
// preserved trailing whitespace in the candidate.
func (b *LineBuilder) computeHangingContent(candidate *LineCandidate, lineIsEmpty, isEndOfContent bool) {
	runs := candidate.Content.Runs()

	// Leading punctuation hangs when this candidate opens the line.
	if lineIsEmpty && b.rootStyle.HangingPunctuation&HangFirst != 0 {
		if i := firstTextRunIndex(runs); i >= 0 {
			first := []rune(runs[i].Item.Text)
			if len(first) > 0 && isOpeningPunctuation(first[0]) {
				candidate.HangablePunctuationStart = b.metrics.ItemWidth(runs[i].Item.left(1), 0, b.isFirstLine)
			}
		}
	}

	hanging := 0.0
	// Trailing punctuation hangs at the very end of the content.
	if isEndOfContent && b.rootStyle.HangingPunctuation&(HangLast|HangAllowEnd|HangForceEnd) != 0 {
		if i := lastTextRunIndex(runs); i >= 0 {
			text := []rune(runs[i].Item.Text)
			if len(text) > 0 && isTrailingHangablePunctuation(text[len(text)-1], b.rootStyle.HangingPunctuation) {
				rest := runs[i].Item.left(len(text) - 1)
				hanging = runs[i].ContentWidth - b.metrics.ItemWidth(rest, 0, b.isFirstLine)
			}
		}
	}
	// Preserved trailing whitespace hangs instead of forcing a wrap.
	for i := len(runs) - 1; i >= 0; i-- {
		run := &runs[i]
		if !run.Item.IsText() {
			break
		}
		if !run.Item.Whitespace || !run.Style.HangsTrailingWhitespace() {
			break
		}
		hanging += run.ContentWidth + run.SpacingOffset
	}
	if hanging > 0 {
		candidate.Content.setHangingContentWidth(hanging)
	}
}

func firstTextRunIndex(runs []Run) int {
	for i := range runs {
		if runs[i].Item.IsText() {
			return i
		}
	}
	return -1
}

func lastTextRunIndex(runs []Run) int {
	for i := len(runs) - 1; i >= 0; i-- {
		if runs[i].Item.IsText() {
			return i
		}
	}
	return -1
}

// isOpeningPunctuation covers opening brackets and quotes.
func isOpeningPunctuation(r rune) bool {
	return unicode.In(r, unicode.Ps, unicode.Pi) || r == '"' || r == '\''
}

// isTrailingHangablePunctuation classifies line-end hangable characters:
// closers and quotes for hanging-punctuation: last, stops and commas for
// allow-end / force-end.
func isTrailingHangablePunctuation(r rune, hp HangingPunctuation) bool {
	if hp&HangLast != 0 && (unicode.In(r, unicode.Pe, unicode.Pf) || r == '"' || r == '\'') {
		return true
	}
	if hp&(HangAllowEnd|HangForceEnd) != 0 {
		switch r {
		case '.', ',', '、', '。', '，', '．', '：', '；':
			return true
		}
	}
	return false
}
