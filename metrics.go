package inline

// Metrics supplies all width measurements the core needs. Implementations
// must be deterministic: the same item measured twice yields the same
// width, and text prefix widths are monotonic in rune count.
type Metrics interface {
	// ItemWidth measures one item. contentLogicalRight is the position the
	// item would start at (position-dependent measurement such as tab
	// stops); firstLine selects first-line styling.
	ItemWidth(item Item, contentLogicalRight float64, firstLine bool) float64

	// WordSpacing returns the extra spacing applied at a word separator.
	WordSpacing(style *Style) float64

	// HyphenWidth returns the width of the hyphen string for the style.
	HyphenWidth(style *Style) float64

	// TextIndent returns the line's start margin. availableWidth resolves
	// percentage indents; firstLine and previousLineEndsWithBreak decide
	// whether the indent applies.
	TextIndent(availableWidth float64, firstLine, previousLineEndsWithBreak bool) float64
}

// ShaperMetrics is the default Metrics: text widths come from a Shaper,
// box widths from the resolved box geometry, and indentation from the root
// style.
type ShaperMetrics struct {
	shaper Shaper
	root   *Style
}

// NewShaperMetrics creates a ShaperMetrics measuring through shaper, with
// root supplying text-indent resolution.
func NewShaperMetrics(shaper Shaper, root *Style) *ShaperMetrics {
	return &ShaperMetrics{shaper: shaper, root: root}
}

// ItemWidth implements the Metrics interface.
func (m *ShaperMetrics) ItemWidth(item Item, contentLogicalRight float64, firstLine bool) float64 {
	switch item.Kind {
	case ItemText:
		dir := DirectionLTR
		if item.BidiLevel != DefaultBidiLevel && item.BidiLevel != OpaqueBidiLevel && item.BidiLevel%2 == 1 {
			dir = DirectionRTL
		}
		total := 0.0
		for _, a := range m.shaper.Advances(item.Text, item.Style, dir) {
			total += a
		}
		return total
	case ItemInlineBoxStart:
		return item.Box.MarginBorderPaddingStart
	case ItemInlineBoxEnd:
		return item.Box.MarginBorderPaddingEnd
	case ItemAtomicBox:
		return item.Box.MarginBoxWidth
	default:
		return 0
	}
}

// WordSpacing implements the Metrics interface.
func (m *ShaperMetrics) WordSpacing(style *Style) float64 {
	return style.WordSpacing
}

// HyphenWidth implements the Metrics interface.
func (m *ShaperMetrics) HyphenWidth(style *Style) float64 {
	total := 0.0
	for _, a := range m.shaper.Advances("-", style, DirectionLTR) {
		total += a
	}
	return total
}

// TextIndent implements the Metrics interface. text-indent: each-line
// re-applies the indent after forced breaks; hanging inverts which lines
// are indented.
func (m *ShaperMetrics) TextIndent(availableWidth float64, firstLine, previousLineEndsWithBreak bool) float64 {
	applies := firstLine || (m.root.TextIndentEachLine && previousLineEndsWithBreak)
	if m.root.TextIndentHanging {
		applies = !applies
	}
	if !applies {
		return 0
	}
	return m.root.TextIndent
}

// Hyphenator locates hyphenation opportunities for hyphens: auto.
type Hyphenator interface {
	// LastHyphenLocation returns the rune index of the last valid
	// hyphenation point strictly before the given index, or 0 when none
	// exists.
	LastHyphenLocation(text string, before int, style *Style) int
}
