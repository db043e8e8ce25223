package inline

// Action is the fitter's verdict on a candidate against the current line.
type Action uint8

const (
	// ActionKeep commits the candidate as-is; the line stays open.
	ActionKeep Action = iota
	// ActionBreak commits the candidate partially at the position named by
	// the trailing content descriptor and closes the line.
	ActionBreak
	// ActionWrapWithHyphen closes the line at its trailing soft hyphen; the
	// hyphen becomes visible and the candidate moves to the next line.
	ActionWrapWithHyphen
	// ActionRevertToLastWrapOpportunity rebuilds the line up to the most
	// recent wrap opportunity and closes it there.
	ActionRevertToLastWrapOpportunity
	// ActionRevertToLastNonOverflowingWrapOpportunity rebuilds the line up
	// to the most recent wrap opportunity whose pending soft hyphen fits.
	ActionRevertToLastNonOverflowingWrapOpportunity
	// ActionWrap moves the whole candidate to the next line.
	ActionWrap
)

// String returns the string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionKeep:
		return "Keep"
	case ActionBreak:
		return "Break"
	case ActionWrapWithHyphen:
		return "WrapWithHyphen"
	case ActionRevertToLastWrapOpportunity:
		return "RevertToLastWrapOpportunity"
	case ActionRevertToLastNonOverflowingWrapOpportunity:
		return "RevertToLastNonOverflowingWrapOpportunity"
	case ActionWrap:
		return "Wrap"
	default:
		return unknownStr
	}
}

// LineStatus is the fitter's view of the line under construction.
type LineStatus struct {
	// ContentLogicalRight is the right edge of the committed content.
	ContentLogicalRight float64
	// AvailableWidth is the remaining space on the line.
	AvailableWidth float64
	// TrimmableTrailingWidth is the width of trailing collapsible
	// whitespace that would vanish if the line ended here.
	TrimmableTrailingWidth float64
	// TrailingSoftHyphenWidth is set when the line's last committed text
	// run ends with a soft hyphen.
	TrailingSoftHyphenWidth float64
	HasTrailingSoftHyphen   bool
	// HasContent reports whether the line already has content or is
	// constrained by a float. Overflow is only permitted on lines without
	// either.
	HasContent bool
	// HasWrapOpportunity reports whether an earlier wrap opportunity was
	// recorded on this line, making a revert possible.
	HasWrapOpportunity bool
	// FirstLine selects first-line styling for measurements.
	FirstLine bool
}

// PartialRun describes a break inside a text run.
type PartialRun struct {
	// RuneLength is the number of runes committed to the line.
	RuneLength int
	// Width is the measured width of the committed prefix.
	Width float64
}

// TrailingContent names where a Break action splits the candidate: runs
// before RunIndex commit whole, the run at RunIndex commits per Partial
// (whole when nil), the rest moves to the next line.
type TrailingContent struct {
	RunIndex int
	Partial  *PartialRun
	// NeedsHyphen is set when the break point renders a hyphen
	// (soft hyphen or auto-hyphenation); HyphenWidth is its width.
	NeedsHyphen bool
	HyphenWidth float64
}

// BreakResult is the fitter's decision.
type BreakResult struct {
	Action Action
	// EndOfLine reports whether the line is complete after applying the
	// action.
	EndOfLine bool
	// Trailing is set for ActionBreak.
	Trailing *TrailingContent
}

// ContentBreaker decides how candidate content fits the line under
// construction. It is a pure decision component: it measures prefixes
// through the Metrics collaborator but never mutates the line.
type ContentBreaker struct {
	metrics             Metrics
	hyphenator          Hyphenator
	hyphenationDisabled bool
}

// NewContentBreaker creates a fitter. hyphenator may be nil, which disables
// auto-hyphenation.
func NewContentBreaker(metrics Metrics, hyphenator Hyphenator) *ContentBreaker {
	return &ContentBreaker{metrics: metrics, hyphenator: hyphenator}
}

// Process decides how content fits given the line status.
func (b *ContentBreaker) Process(content *ContinuousContent, st LineStatus) BreakResult {
	// A minimum required width that cannot be honored moves the whole
	// candidate to the next line, as long as this line has visual weight.
	if min, ok := content.MinimumRequiredWidth(); ok && min > st.AvailableWidth && st.HasContent {
		return BreakResult{Action: ActionWrap, EndOfLine: true}
	}
	if content.NonHangingWidth() <= st.AvailableWidth {
		return BreakResult{Action: ActionKeep}
	}
	// Overflowing content made of nothing but collapsible whitespace gets
	// trimmed if the line ends here; keep it when trimming the line's own
	// trailing whitespace would make room.
	if content.isFullyCollapsible() &&
		content.LogicalWidth() <= st.AvailableWidth+st.TrimmableTrailingWidth {
		return BreakResult{Action: ActionKeep}
	}

	if trailing, ok := b.tryBreakInside(content, st); ok {
		return BreakResult{Action: ActionBreak, EndOfLine: true, Trailing: trailing}
	}

	if !st.HasContent {
		// First content on the line is allowed to overflow; wrapping here
		// would produce an empty line and no progress.
		return BreakResult{Action: ActionKeep}
	}
	if st.HasTrailingSoftHyphen {
		if st.HasWrapOpportunity && st.TrailingSoftHyphenWidth > st.AvailableWidth {
			return BreakResult{Action: ActionRevertToLastNonOverflowingWrapOpportunity, EndOfLine: true}
		}
		return BreakResult{Action: ActionWrapWithHyphen, EndOfLine: true}
	}
	if st.HasWrapOpportunity && b.leadingRunCollapsesAway(content) {
		// The wrap opportunity in front of this candidate was carried by
		// collapsible whitespace; once that collapses the candidate cannot
		// start a line, so the break has to move further back.
		return BreakResult{Action: ActionRevertToLastWrapOpportunity, EndOfLine: true}
	}
	return BreakResult{Action: ActionWrap, EndOfLine: true}
}

// ProcessWithClonedDecorationEnd runs Process while reserving room for the
// cloned end decoration of inline boxes still open at the prospective break.
// clonedEndWidth reports, for a break position, the decoration width the
// break would add to this line. The reservation depends on the break
// position, so the decision is retried with a growing reservation until it
// stabilizes.
func (b *ContentBreaker) ProcessWithClonedDecorationEnd(content *ContinuousContent, st LineStatus, clonedEndWidth func(TrailingContent) float64) BreakResult {
	reserve := 0.0
	for i := 0; i < len(content.Runs())+1; i++ {
		adjusted := st
		adjusted.AvailableWidth -= reserve
		result := b.Process(content, adjusted)
		if result.Action != ActionBreak {
			return result
		}
		need := clonedEndWidth(*result.Trailing)
		if need <= reserve {
			return result
		}
		reserve = need
	}
	// The reservation never stabilized; give up on breaking inside.
	if !st.HasContent {
		return BreakResult{Action: ActionKeep}
	}
	return BreakResult{Action: ActionWrap, EndOfLine: true}
}

// leadingRunCollapsesAway reports whether the candidate starts with
// whitespace that collapses at a line start.
func (b *ContentBreaker) leadingRunCollapsesAway(content *ContinuousContent) bool {
	runs := content.Runs()
	if len(runs) == 0 {
		return false
	}
	first := runs[0].Item
	return first.IsText() && first.Whitespace && first.Style.WhiteSpace.Collapses()
}

// tryBreakInside searches the candidate for the rightmost break position
// that fits. Run boundaries inside a candidate are not wrap opportunities;
// a break can only land at a soft hyphen, at an auto-hyphenation point, or
// anywhere when the style permits arbitrary breaking.
func (b *ContentBreaker) tryBreakInside(content *ContinuousContent, st LineStatus) (*TrailingContent, bool) {
	avail := st.AvailableWidth
	minWidth, hasMin := content.MinimumRequiredWidth()

	var best *TrailingContent
	accumulated := 0.0
	for i := range content.Runs() {
		run := &content.Runs()[i]
		runLeft := accumulated + run.SpacingOffset
		if runLeft > avail && best != nil {
			break
		}
		if run.Item.IsText() && !run.Item.Whitespace {
			if tc := b.breakTextRun(run, i, runLeft, avail, st); tc != nil {
				if !hasMin || runLeft+tc.breakWidth() >= minWidth {
					best = tc
				}
			}
		}
		accumulated = runLeft + run.ContentWidth
		// A soft hyphen at a run boundary is a legitimate break point when
		// the hyphen itself still fits.
		if run.Item.TrailingSoftHyphen && i < len(content.Runs())-1 {
			hyphenWidth := b.metrics.HyphenWidth(run.Style)
			if accumulated+hyphenWidth <= avail && (!hasMin || accumulated >= minWidth) {
				best = &TrailingContent{RunIndex: i, NeedsHyphen: true, HyphenWidth: hyphenWidth}
			}
		}
	}
	if best != nil && !b.commitsAnything(best, content) {
		best = nil
	}
	if best == nil && !st.HasContent {
		// Guarantee forward progress under arbitrary breaking: an empty
		// line takes at least one rune.
		if tc := b.forcedSingleRune(content, st); tc != nil {
			best = tc
		}
	}
	return best, best != nil
}

// breakWidth is the committed width inside the run at the break point.
func (tc *TrailingContent) breakWidth() float64 {
	if tc.Partial != nil {
		return tc.Partial.Width
	}
	return 0
}

// commitsAnything reports whether the break position leaves any content on
// the line.
func (b *ContentBreaker) commitsAnything(tc *TrailingContent, content *ContinuousContent) bool {
	if tc.RunIndex > 0 || tc.Partial == nil {
		return true
	}
	return tc.Partial.RuneLength > 0
}

// breakTextRun finds the longest committed prefix of a text run under the
// run's breaking policy. Returns nil when no prefix fits.
func (b *ContentBreaker) breakTextRun(run *Run, runIndex int, runLeft, avail float64, st LineStatus) *TrailingContent {
	runeCount := run.Item.RuneCount()
	if runeCount < 2 {
		return nil
	}
	if b.canBreakAnywhere(run.Style, st) {
		n, w := b.longestFittingPrefix(run.Item, runeCount-1, avail-runLeft, st)
		if n == 0 {
			return nil
		}
		return &TrailingContent{RunIndex: runIndex, Partial: &PartialRun{RuneLength: n, Width: w}}
	}
	if run.Style.Hyphens == HyphensAuto && b.hyphenator != nil && !b.hyphenationDisabled {
		return b.hyphenatedBreak(run, runIndex, runLeft, avail, st)
	}
	return nil
}

// canBreakAnywhere reports whether the style allows breaking between any
// two runes. overflow-wrap: break-word only unlocks arbitrary breaks when
// the line offers no other wrap opportunity.
func (b *ContentBreaker) canBreakAnywhere(style *Style, st LineStatus) bool {
	if style.WordBreak == WordBreakBreakAll || style.OverflowWrap == OverflowWrapAnywhere || style.LineBreak == LineBreakAnywhere {
		return true
	}
	return style.OverflowWrap == OverflowWrapBreakWord && !st.HasWrapOpportunity
}

// longestFittingPrefix binary-searches the longest prefix of at most max
// runes whose width fits. Prefix widths are monotonic in rune count.
func (b *ContentBreaker) longestFittingPrefix(item Item, max int, avail float64, st LineStatus) (int, float64) {
	lo, hi := 0, max
	bestWidth := 0.0
	for lo < hi {
		mid := (lo + hi + 1) / 2
		w := b.metrics.ItemWidth(item.left(mid), 0, st.FirstLine)
		if w <= avail {
			lo = mid
			bestWidth = w
		} else {
			hi = mid - 1
		}
	}
	return lo, bestWidth
}

// hyphenatedBreak finds the last auto-hyphenation point whose prefix plus
// hyphen fits.
func (b *ContentBreaker) hyphenatedBreak(run *Run, runIndex int, runLeft, avail float64, st LineStatus) *TrailingContent {
	hyphenWidth := b.metrics.HyphenWidth(run.Style)
	runeCount := run.Item.RuneCount()
	// Upper bound for the prefix: whatever fits with the hyphen attached.
	limit, _ := b.longestFittingPrefix(run.Item, runeCount-1, avail-runLeft-hyphenWidth, st)
	if limit == 0 {
		return nil
	}
	pos := b.hyphenator.LastHyphenLocation(run.Item.Text, limit+1, run.Style)
	if pos <= 0 {
		return nil
	}
	w := b.metrics.ItemWidth(run.Item.left(pos), 0, st.FirstLine)
	if runLeft+w+hyphenWidth > avail {
		return nil
	}
	return &TrailingContent{
		RunIndex:    runIndex,
		Partial:     &PartialRun{RuneLength: pos, Width: w},
		NeedsHyphen: true,
		HyphenWidth: hyphenWidth,
	}
}

// forcedSingleRune commits one rune of the first breakable text run to keep
// an empty line from stalling.
func (b *ContentBreaker) forcedSingleRune(content *ContinuousContent, st LineStatus) *TrailingContent {
	for i := range content.Runs() {
		run := &content.Runs()[i]
		if !run.Item.IsText() || run.Item.Whitespace || run.Item.RuneCount() < 2 {
			continue
		}
		if !b.canBreakAnywhere(run.Style, st) {
			return nil
		}
		w := b.metrics.ItemWidth(run.Item.left(1), 0, st.FirstLine)
		return &TrailingContent{RunIndex: i, Partial: &PartialRun{RuneLength: 1, Width: w}}
	}
	return nil
}
