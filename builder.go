package inline

// Options configures a LineBuilder. The zero value is not usable on its
// own: at least one of Metrics or Shaper must be set (DefaultOptions sets a
// Shaper).
type Options struct {
	// Metrics measures items. When nil, a ShaperMetrics wrapping Shaper is
	// used.
	Metrics Metrics
	// Shaper measures text in context for shaping ranges, and backs the
	// default Metrics.
	Shaper Shaper
	// Reorderer computes bidi visual order. Defaults to DefaultReorderer.
	Reorderer Reorderer
	// FloatContext positions floats. Defaults to a fresh ExclusionSpace.
	FloatContext FloatContext
	// Hyphenator locates hyphens:auto break points. Nil disables
	// auto-hyphenation.
	Hyphenator Hyphenator
	// RubyAligner computes ruby offsets for lines with ruby bases. Nil
	// leaves ruby content unadjusted.
	RubyAligner RubyAligner
	// DisableHyphenation turns auto-hyphenation off even when a
	// Hyphenator is present (callers enforcing hyphenated-line limits).
	DisableHyphenation bool
}

// DefaultOptions returns Options with the package's default collaborators.
func DefaultOptions() Options {
	return Options{
		Shaper:       NewHarfbuzzShaper(),
		Reorderer:    DefaultReorderer{},
		FloatContext: NewExclusionSpace(),
	}
}

type placedFloatRecord struct {
	float     PlacedFloat
	itemIndex int
}

// suspendedFloatRecord remembers where a suspended float came from so a
// line revert can drop suspensions past the rebuilt range. Carried floats
// predate the line's range and use index -1.
type suspendedFloatRecord struct {
	item      Item
	itemIndex int
}

// LineBuilder produces lines from an inline item list, one Layout call per
// line. It is not safe for concurrent use.
type LineBuilder struct {
	items     []Item
	breaks    *lineBreaks
	rootStyle *Style

	metrics   Metrics
	shaper    Shaper
	reorderer Reorderer
	floats    FloatContext
	ruby      RubyAligner
	breaker   *ContentBreaker

	// Per-line state, reset by initialize.
	line                        Line
	candidate                   LineCandidate
	layoutRange                 ItemRange
	previousLine                *PreviousLine
	isFirstLine                 bool
	initialRect                 Rect
	lineRect                    Rect
	lineMarginStart             float64
	constrained                 ConstrainedSides
	contentIsConstrainedByFloat bool
	placedFloats                []placedFloatRecord
	suspendedFloats             []suspendedFloatRecord
	wrapOpportunities           []int
	committedEnd                ItemPosition
	endsWithForcedBreak         bool
	overflowWidth               float64
	hasOverflowWidth            bool
	spanningBoxes               []*Box
}

// NewLineBuilder creates a builder over items. paragraph is the full
// logical-order text the text items slice into; it drives soft wrap
// scanning and plaintext base-direction detection. rootStyle supplies the
// block-level properties (direction, alignment, indentation); nil means
// defaults.
func NewLineBuilder(items []Item, paragraph string, rootStyle *Style, opts Options) (*LineBuilder, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItemList
	}
	if opts.Metrics == nil && opts.Shaper == nil {
		return nil, ErrNoMetrics
	}
	if rootStyle == nil {
		rootStyle = DefaultStyle()
	}
	if opts.Metrics == nil {
		opts.Metrics = NewShaperMetrics(opts.Shaper, rootStyle)
	}
	if opts.Reorderer == nil {
		opts.Reorderer = DefaultReorderer{}
	}
	if opts.FloatContext == nil {
		opts.FloatContext = NewExclusionSpace()
	}
	breaker := NewContentBreaker(opts.Metrics, opts.Hyphenator)
	breaker.hyphenationDisabled = opts.DisableHyphenation
	return &LineBuilder{
		items:     items,
		breaks:    newLineBreaks([]rune(paragraph)),
		rootStyle: rootStyle,
		metrics:   opts.Metrics,
		shaper:    opts.Shaper,
		reorderer: opts.Reorderer,
		floats:    opts.FloatContext,
		ruby:      opts.RubyAligner,
		breaker:   breaker,
	}, nil
}

// Layout lays out one line: as much of layoutRange as fits in initialRect
// once floats are accounted for. previous is nil for the first line.
func (b *LineBuilder) Layout(initialRect Rect, layoutRange ItemRange, previous *PreviousLine) (LineLayoutResult, error) {
	if layoutRange.Start.Index < 0 || layoutRange.End.Index > len(b.items) ||
		layoutRange.Start.Index >= layoutRange.End.Index {
		return LineLayoutResult{}, ErrRangeOutOfBounds
	}
	b.initialize(initialRect, layoutRange, previous)
	if !b.placeCarriedFloats() {
		return b.emptyLineWithSkip(), nil
	}
	b.placeInlineAndFloatContent()
	return b.closeLine(), nil
}

func (b *LineBuilder) initialize(initialRect Rect, layoutRange ItemRange, previous *PreviousLine) {
	b.layoutRange = layoutRange
	b.previousLine = previous
	b.isFirstLine = previous == nil
	b.initialRect = initialRect
	b.lineMarginStart = b.metrics.TextIndent(initialRect.Width, b.isFirstLine,
		previous != nil && previous.EndsWithLineBreak)
	b.lineRect, b.constrained = b.floats.AvoidingRect(initialRect, b.lineMarginStart)
	b.contentIsConstrainedByFloat = b.constrained.IsConstrained()
	b.spanningBoxes = b.openBoxesBefore(layoutRange.Start.Index, b.spanningBoxes[:0])
	b.line.initialize(b.spanningBoxes)
	b.placedFloats = b.placedFloats[:0]
	b.suspendedFloats = b.suspendedFloats[:0]
	b.wrapOpportunities = b.wrapOpportunities[:0]
	b.committedEnd = layoutRange.Start
	b.endsWithForcedBreak = false
	b.overflowWidth, b.hasOverflowWidth = 0, false
}

// openBoxesBefore reconstructs the inline boxes still open at item index,
// i.e. the boxes spanning into this line.
func (b *LineBuilder) openBoxesBefore(index int, buf []*Box) []*Box {
	for i := 0; i < index; i++ {
		switch b.items[i].Kind {
		case ItemInlineBoxStart:
			buf = append(buf, b.items[i].Box)
		case ItemInlineBoxEnd:
			for j := len(buf) - 1; j >= 0; j-- {
				if buf[j] == b.items[i].Box {
					buf = append(buf[:j], buf[j+1:]...)
					break
				}
			}
		}
	}
	return buf
}

// placeCarriedFloats drains the previous line's suspended floats in order.
// Reports false when the first carried float cannot be placed, which aborts
// the line: the caller must move down by the result's SkipHeight and retry.
func (b *LineBuilder) placeCarriedFloats() bool {
	if b.previousLine == nil {
		return true
	}
	carried := b.previousLine.SuspendedFloats
	for i := range carried {
		// Only the first carried float may over-constrain the line, and
		// only while nothing constrains it yet.
		mayOverConstrain := i == 0 && !b.contentIsConstrainedByFloat
		if b.tryPlaceFloat(carried[i], -1, mayOverConstrain) {
			continue
		}
		if i == 0 {
			for _, item := range carried {
				b.suspendedFloats = append(b.suspendedFloats, suspendedFloatRecord{item, -1})
			}
			return false
		}
		// Later floats may not be placed above an earlier one; once one
		// fails the rest stay suspended.
		for _, item := range carried[i:] {
			b.suspendedFloats = append(b.suspendedFloats, suspendedFloatRecord{item, -1})
		}
		break
	}
	return true
}

// emptyLineWithSkip reports a line that placed nothing because a carried
// float did not fit; SkipHeight tells the caller where to retry.
func (b *LineBuilder) emptyLineWithSkip() LineLayoutResult {
	skip := b.initialRect.Height
	if bottom, ok := b.floats.NextFloatBottom(b.lineRect.Top); ok {
		skip = bottom - b.lineRect.Top
	}
	Logger().Debug("inline: line aborted for carried float", "skip", skip)
	return LineLayoutResult{
		Range:         ItemRange{Start: b.layoutRange.Start, End: b.layoutRange.Start},
		LineRect:      b.lineRect,
		Floats:        FloatOutcome{Suspended: b.suspendedFloatList(), Constrained: b.constrained},
		BaseDirection: b.rootStyle.Direction,
		IsFirstLine:   b.isFirstLine,
		SkipHeight:    skip,
		HasSkipHeight: true,
	}
}

// placeInlineAndFloatContent is the candidate loop: collect content up to
// the next wrap opportunity, fit it, dispatch on the fitter's verdict,
// interleaving float placement.
func (b *LineBuilder) placeInlineAndFloatContent() {
	current := b.layoutRange.Start
	end := b.layoutRange.End.Index
	for current.Index < end {
		next := b.candidateContentForLine(&b.candidate, current, end, !b.line.HasContent())
		if b.candidate.FloatItemIndex >= 0 {
			b.handleFloatItem(b.candidate.FloatItemIndex)
			current = ItemPosition{Index: next}
			b.committedEnd = current
			continue
		}
		b.probeCandidateRect()
		if b.processResult(b.fitCandidate(), &current, next) {
			return
		}
	}
}

func (b *LineBuilder) handleFloatItem(index int) {
	item := b.items[index]
	if len(b.suspendedFloats) > 0 {
		// A float never rises above an earlier suspended one.
		b.suspendedFloats = append(b.suspendedFloats, suspendedFloatRecord{item, index})
		return
	}
	if !b.tryPlaceFloat(item, index, false) {
		Logger().Debug("inline: float suspended", "item", index)
		b.suspendedFloats = append(b.suspendedFloats, suspendedFloatRecord{item, index})
	}
}

// tryPlaceFloat positions and places one float. Placement fails when the
// float would shrink the line below its committed content, unless
// mayOverConstrain permits squeezing an empty, unconstrained line.
func (b *LineBuilder) tryPlaceFloat(item Item, itemIndex int, mayOverConstrain bool) bool {
	box := item.Box
	if box == nil || box.Float == nil {
		assert(false, "float item without float geometry")
		return false
	}
	pos := b.floats.PositionForFloat(box, b.lineRect, b.initialRect.Width)
	// A float crowded past the containing block edge by other floats does
	// not fit at this vertical position. An over-wide float with the edge to
	// itself still places; only crowding fails.
	g := box.Float
	if g.Side == FloatLeft && pos.X > 0 && pos.X+g.MarginBoxWidth > b.initialRect.Width {
		return false
	}
	if g.Side == FloatRight && pos.X < 0 && pos.X < b.initialRect.Width-g.MarginBoxWidth {
		return false
	}
	pf := PlacedFloat{Box: box, Rect: Rect{
		Top: pos.Y, Left: pos.X,
		Width: box.Float.MarginBoxWidth, Height: box.Float.MarginBoxHeight,
	}}
	clearedBelow := pf.Rect.Top >= b.lineRect.Bottom() && pf.Rect.Top > b.lineRect.Top
	b.floats.Place(pf)
	if clearedBelow {
		// The float ended up past this line; it cannot constrain it.
		b.placedFloats = append(b.placedFloats, placedFloatRecord{pf, itemIndex})
		return true
	}
	newRect, sides := b.floats.AvoidingRect(b.floatProbeRect(b.lineRect.Height), b.lineMarginStart)
	committed := b.line.ContentLogicalRight() - b.line.TrimmableTrailingWidth()
	contentFits := committed <= newRect.Width-b.lineMarginStart
	if !contentFits && !(mayOverConstrain && !b.line.HasContent()) {
		b.floats.Remove(box)
		return false
	}
	b.lineRect = newRect
	b.constrained.Start = b.constrained.Start || sides.Start
	b.constrained.End = b.constrained.End || sides.End
	b.contentIsConstrainedByFloat = b.contentIsConstrainedByFloat || sides.IsConstrained()
	b.placedFloats = append(b.placedFloats, placedFloatRecord{pf, itemIndex})
	return true
}

// probeCandidateRect re-runs float avoidance when the candidate is taller
// than the current line rect: a taller line may clear or hit different
// floats. The probed rect is only adopted while it cannot invalidate
// already committed content.
func (b *LineBuilder) probeCandidateRect() {
	h := b.lineRect.Height
	for _, run := range b.candidate.Content.Runs() {
		if run.Item.Kind == ItemAtomicBox && run.Item.Box.MarginBoxHeight > h {
			h = run.Item.Box.MarginBoxHeight
		}
	}
	if h <= b.lineRect.Height || b.floats.IsEmpty() {
		if h > b.lineRect.Height {
			b.lineRect.Height = h
		}
		return
	}
	newRect, sides := b.floats.AvoidingRect(b.floatProbeRect(h), b.lineMarginStart)
	if !b.line.HasContent() || newRect.Width >= b.lineRect.Width {
		b.lineRect = newRect
		b.constrained.Start = b.constrained.Start || sides.Start
		b.constrained.End = b.constrained.End || sides.End
		b.contentIsConstrainedByFloat = b.contentIsConstrainedByFloat || sides.IsConstrained()
	}
}

// floatProbeRect is the full-width rect used to re-run float avoidance at
// the line's vertical position with a prospective height.
func (b *LineBuilder) floatProbeRect(h float64) Rect {
	probe := b.initialRect.WithHeight(h)
	probe.Top = b.lineRect.Top
	return probe
}

// availableWidth is the space left for new content.
func (b *LineBuilder) availableWidth() float64 {
	return b.lineRect.Width - b.lineMarginStart - b.line.ContentLogicalRight()
}

func (b *LineBuilder) fitCandidate() BreakResult {
	st := LineStatus{
		ContentLogicalRight:    b.line.ContentLogicalRight(),
		AvailableWidth:         b.availableWidth(),
		TrimmableTrailingWidth: b.line.TrimmableTrailingWidth(),
		HasContent:             b.line.HasContent() || b.contentIsConstrainedByFloat,
		HasWrapOpportunity:     len(b.wrapOpportunities) > 0,
		FirstLine:              b.isFirstLine,
	}
	if w, ok := b.line.TrailingSoftHyphenWidth(); ok {
		st.TrailingSoftHyphenWidth, st.HasTrailingSoftHyphen = w, true
	}
	if b.needsClonedDecorationHandling() {
		return b.breaker.ProcessWithClonedDecorationEnd(&b.candidate.Content, st, b.clonedEndWidthAt)
	}
	return b.breaker.Process(&b.candidate.Content, st)
}

func (b *LineBuilder) needsClonedDecorationHandling() bool {
	if b.line.ClonedEndDecorationWidth() > 0 {
		return true
	}
	for _, run := range b.candidate.Content.Runs() {
		if run.Item.Kind == ItemInlineBoxStart &&
			run.Item.Box.Style.BoxDecorationBreak == BoxDecorationBreakClone {
			return true
		}
	}
	return false
}

// clonedEndWidthAt reports the cloned end decoration a break at the given
// position would add: open boxes on the line plus boxes the candidate opens
// (and does not close) before the break.
func (b *LineBuilder) clonedEndWidthAt(tc TrailingContent) float64 {
	w := b.line.ClonedEndDecorationWidth()
	runs := b.candidate.Content.Runs()
	for i := 0; i <= tc.RunIndex && i < len(runs); i++ {
		box := runs[i].Item.Box
		if box == nil || box.Style.BoxDecorationBreak != BoxDecorationBreakClone {
			continue
		}
		switch runs[i].Item.Kind {
		case ItemInlineBoxStart:
			w += box.MarginBorderPaddingEnd
		case ItemInlineBoxEnd:
			w -= box.MarginBorderPaddingEnd
		}
	}
	return w
}

// processResult applies the fitter's verdict. Returns true when the line is
// complete.
func (b *LineBuilder) processResult(result BreakResult, current *ItemPosition, next int) bool {
	switch result.Action {
	case ActionKeep:
		b.commitCandidate(nil)
		*current = ItemPosition{Index: next}
		b.committedEnd = *current
		if b.candidate.HasTrailingForcedBreak {
			b.endsWithForcedBreak = true
			return true
		}
		if b.candidate.HasTrailingSoftWrapOpportunity && b.line.HasContent() {
			b.wrapOpportunities = append(b.wrapOpportunities, next-1)
		}
		return result.EndOfLine

	case ActionBreak:
		tc := result.Trailing
		if tc == nil {
			assert(false, "break action without trailing content")
			return true
		}
		// Snapshot before commit; a shaped-range collapse rewrites widths.
		brokenRun := b.candidate.Content.Runs()[tc.RunIndex]
		b.commitCandidate(tc)
		if tc.NeedsHyphen {
			b.line.addTrailingHyphen(tc.HyphenWidth)
		}
		itemIdx := b.candidate.itemIndexOfRun(tc.RunIndex)
		if tc.Partial != nil {
			offset := tc.Partial.RuneLength
			if itemIdx == b.layoutRange.Start.Index {
				offset += b.layoutRange.Start.Offset
			}
			b.committedEnd = ItemPosition{Index: itemIdx, Offset: offset}
			// The remainder's width is already known unless contextual
			// shaping was involved; carry it so the next line skips the
			// re-measure.
			if rem := brokenRun.ContentWidth - tc.Partial.Width; rem > 0 &&
				brokenRun.ShapingBoundary == ShapingBoundaryNone && !tc.NeedsHyphen {
				b.overflowWidth, b.hasOverflowWidth = rem, true
			}
		} else {
			b.committedEnd = ItemPosition{Index: itemIdx + 1}
		}
		return true

	case ActionWrapWithHyphen:
		if w, ok := b.line.TrailingSoftHyphenWidth(); ok {
			b.line.addTrailingHyphen(w)
		} else {
			assert(false, "wrap-with-hyphen without a trailing soft hyphen")
		}
		return true

	case ActionRevertToLastWrapOpportunity:
		b.revertToWrapOpportunity(len(b.wrapOpportunities) - 1)
		return true

	case ActionRevertToLastNonOverflowingWrapOpportunity:
		b.revertToNonOverflowingWrapOpportunity()
		return true

	case ActionWrap:
		if b.line.lastRunIsTrimmableBoxStart() && len(b.wrapOpportunities) > 0 {
			// The whitespace before the trailing box start collapses at a
			// line end, which would strand the box start; move the break
			// back instead.
			b.revertToWrapOpportunity(len(b.wrapOpportunities) - 1)
		}
		return true

	default:
		assert(false, "unknown break action")
		return true
	}
}

// commitCandidate appends the candidate's runs to the line, up to tc when
// the fit was partial.
func (b *LineBuilder) commitCandidate(tc *TrailingContent) {
	content := &b.candidate.Content
	if tc != nil && b.breakLandsInShapedRange(tc) {
		partialLen := 0
		if tc.Partial != nil {
			partialLen = tc.Partial.RuneLength
		}
		b.collapseShapingRange(content, tc.RunIndex, partialLen, b.isFirstLine)
	}
	if !b.line.HasContent() && b.candidate.HangablePunctuationStart > 0 {
		b.line.setHangablePunctuationStart(b.candidate.HangablePunctuationStart)
	}
	for i := range content.Runs() {
		run := content.Runs()[i]
		if tc != nil {
			if i > tc.RunIndex {
				break
			}
			if i == tc.RunIndex && tc.Partial != nil {
				partial := Run{
					Item:          run.Item.left(tc.Partial.RuneLength),
					Style:         run.Style,
					ContentWidth:  tc.Partial.Width,
					SpacingOffset: run.SpacingOffset,
				}
				b.line.append(partial, 0)
				break
			}
		}
		hyphenWidth := 0.0
		if run.Item.TrailingSoftHyphen {
			hyphenWidth = b.metrics.HyphenWidth(run.Style)
		}
		b.line.append(run, hyphenWidth)
	}
}

func (b *LineBuilder) breakLandsInShapedRange(tc *TrailingContent) bool {
	runs := b.candidate.Content.Runs()
	return tc.RunIndex < len(runs) && runs[tc.RunIndex].ShapingBoundary != ShapingBoundaryNone
}

// revertToWrapOpportunity rebuilds the line so it ends at wrap opportunity
// k; the used opportunity is consumed.
func (b *LineBuilder) revertToWrapOpportunity(k int) {
	if k < 0 || k >= len(b.wrapOpportunities) {
		assert(false, "revert without a wrap opportunity")
		return
	}
	lastItem := b.wrapOpportunities[k]
	b.wrapOpportunities = b.wrapOpportunities[:k]
	b.rebuildLine(lastItem)
	Logger().Debug("inline: reverted to wrap opportunity", "lastItem", lastItem)
}

// revertToNonOverflowingWrapOpportunity walks wrap opportunities from the
// most recent one back until the rebuilt line, including any pending soft
// hyphen, fits.
func (b *LineBuilder) revertToNonOverflowingWrapOpportunity() {
	avail := b.lineRect.Width - b.lineMarginStart
	for k := len(b.wrapOpportunities) - 1; k >= 0; k-- {
		b.rebuildLine(b.wrapOpportunities[k])
		width := b.line.ContentLogicalRight() - b.line.TrimmableTrailingWidth()
		if w, ok := b.line.TrailingSoftHyphenWidth(); ok {
			width += w
		}
		if width <= avail || k == 0 {
			b.wrapOpportunities = b.wrapOpportunities[:k]
			if w, ok := b.line.TrailingSoftHyphenWidth(); ok {
				b.line.addTrailingHyphen(w)
			}
			return
		}
	}
	assert(false, "revert without a wrap opportunity")
}

// rebuildLine replays the committed range up to and including lastItem.
// Floats placed or suspended past the new end are forgotten so a later line
// processes them exactly once; floats within the range stay put and are
// skipped on replay.
func (b *LineBuilder) rebuildLine(lastItem int) {
	kept := b.placedFloats[:0]
	for _, rec := range b.placedFloats {
		if rec.itemIndex > lastItem {
			b.floats.Remove(rec.float.Box)
			continue
		}
		kept = append(kept, rec)
	}
	b.placedFloats = kept

	keptSuspended := b.suspendedFloats[:0]
	for _, rec := range b.suspendedFloats {
		if rec.itemIndex > lastItem {
			continue
		}
		keptSuspended = append(keptSuspended, rec)
	}
	b.suspendedFloats = keptSuspended

	b.line.initialize(b.spanningBoxes)
	current := b.layoutRange.Start
	for current.Index <= lastItem {
		next := b.candidateContentForLine(&b.candidate, current, lastItem+1, !b.line.HasContent())
		if b.candidate.FloatItemIndex < 0 {
			b.commitCandidate(nil)
		}
		current = ItemPosition{Index: next}
	}
	b.committedEnd = ItemPosition{Index: lastItem + 1}
	b.overflowWidth, b.hasOverflowWidth = 0, false
}

// closeLine finalizes trailing content, bidi, and alignment, and assembles
// the result.
func (b *LineBuilder) closeLine() LineLayoutResult {
	avail := b.lineRect.Width - b.lineMarginStart

	// line-break: after-white-space keeps trailing whitespace unless it
	// overflows.
	if b.rootStyle.LineBreak != LineBreakAfterWhiteSpace ||
		b.line.ContentLogicalRight() > avail {
		b.line.trimTrailingWhitespace()
	}
	b.line.trimOverflowingNonBreakingSpace(avail)
	b.line.hangTrailingWhitespace()
	isLastLine := b.committedEnd.Index >= b.layoutRange.End.Index
	if isLastLine && b.rootStyle.HangingPunctuation&(HangLast|HangAllowEnd|HangForceEnd) != 0 {
		b.line.hangTrailingPunctuation(b.trailingPunctuationWidth())
	}
	if removed := b.line.removeOverflowingOutOfFlowContent(avail); removed > 0 {
		b.committedEnd = ItemPosition{Index: b.committedEnd.Index - removed}
		isLastLine = b.committedEnd.Index >= b.layoutRange.End.Index
	}

	baseDirection := b.inlineBaseDirection(b.previousLine, b.committedText())
	paragraphLevel := uint8(0)
	if baseDirection == DirectionRTL {
		paragraphLevel = 1
	}
	b.line.resetTrailingWhitespaceBidiLevel(paragraphLevel)

	runs := append([]LineRun(nil), b.line.Runs()...)
	var visualOrder []int32
	if b.line.NeedsBidiReordering() {
		visualOrder = b.visualOrder(runs, paragraphLevel)
	}

	contentWidth := b.line.ContentLogicalWidth()
	hangingWidth, hangingIsWhitespace := b.line.HangingTrailingWidth()
	alignAsLast := isLastLine || b.endsWithForcedBreak
	offset := horizontalAlignmentOffset(b.rootStyle, contentWidth, avail, hangingWidth, alignAsLast, baseDirection)
	if usedTextAlign(b.rootStyle, alignAsLast) == TextAlignJustify {
		contentWidth += applyJustification(runs, b.rootStyle, avail-(contentWidth-hangingWidth), hangingWidth)
	}

	var ruby RubyOffsets
	if b.ruby != nil && lineHasRubyContent(runs) {
		ruby = b.ruby.Align(runs, avail)
	}

	return LineLayoutResult{
		Range: ItemRange{Start: b.layoutRange.Start, End: b.committedEnd},
		Runs:  runs,
		Floats: FloatOutcome{
			Placed:      b.placedFloatList(),
			Suspended:   b.suspendedFloatList(),
			Constrained: b.constrained,
		},
		Content: ContentGeometry{
			LogicalLeft:   b.lineMarginStart + offset,
			LogicalWidth:  contentWidth,
			OverflowWidth: b.overflowWidth,
			HasOverflow:   b.hasOverflowWidth,
		},
		LineRect:      b.lineRect,
		VisualOrder:   visualOrder,
		BaseDirection: baseDirection,
		Hanging: HangingContent{
			Width:                 hangingWidth,
			IsWhitespace:          hangingIsWhitespace,
			PunctuationStartWidth: b.line.HangablePunctuationStartWidth(),
		},
		Ruby:                ruby,
		IsFirstLine:         b.isFirstLine,
		IsLastLine:          isLastLine,
		EndsWithForcedBreak: b.endsWithForcedBreak,
	}
}

func (b *LineBuilder) committedText() string {
	text := ""
	for _, run := range b.line.Runs() {
		if run.Item.IsText() {
			text += run.Item.Text
		}
	}
	return text
}

func (b *LineBuilder) placedFloatList() []PlacedFloat {
	if len(b.placedFloats) == 0 {
		return nil
	}
	out := make([]PlacedFloat, len(b.placedFloats))
	for i, rec := range b.placedFloats {
		out[i] = rec.float
	}
	return out
}

func (b *LineBuilder) suspendedFloatList() []Item {
	if len(b.suspendedFloats) == 0 {
		return nil
	}
	out := make([]Item, len(b.suspendedFloats))
	for i, rec := range b.suspendedFloats {
		out[i] = rec.item
	}
	return out
}

func lineHasRubyContent(runs []LineRun) bool {
	for i := range runs {
		if runs[i].Item.Box != nil && runs[i].Item.Box.RubyBase {
			return true
		}
	}
	return false
}

// trailingPunctuationWidth measures the width of the line's last character
// when it is hangable punctuation.
func (b *LineBuilder) trailingPunctuationWidth() float64 {
	runs := b.line.Runs()
	for i := len(runs) - 1; i >= 0; i-- {
		run := &runs[i]
		if run.LogicalWidth == 0 && !run.Item.IsText() {
			continue
		}
		if !run.Item.IsText() || run.HasHyphen {
			return 0
		}
		text := []rune(run.Item.Text)
		if len(text) == 0 || !isTrailingHangablePunctuation(text[len(text)-1], b.rootStyle.HangingPunctuation) {
			return 0
		}
		return run.LogicalWidth - b.metrics.ItemWidth(run.Item.left(len(text)-1), 0, b.isFirstLine)
	}
	return 0
}
