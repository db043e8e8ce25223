package inline

// RubyOffsets carries the alignment adjustments for ruby content on a line.
type RubyOffsets struct {
	// BaseOffsets shifts each ruby base box by the given amount.
	BaseOffsets map[*Box]float64
	// AnnotationOffset shifts the line's annotation boxes as a group.
	AnnotationOffset float64
}

// RubyAligner computes ruby alignment for lines containing ruby bases. The
// core only stores the offsets alongside the line; interpreting them is the
// caller's concern.
type RubyAligner interface {
	Align(runs []LineRun, availableWidth float64) RubyOffsets
}

// usedTextAlign resolves the alignment that applies to this line, folding
// text-align-last into text-align on the last line (and on lines ended by a
// forced break, which behave as last lines for alignment).
func usedTextAlign(style *Style, isLastLine bool) TextAlign {
	if !isLastLine {
		return style.TextAlign
	}
	switch style.TextAlignLast {
	case TextAlignLastAuto:
		if style.TextAlign == TextAlignJustify {
			return TextAlignStart
		}
		return style.TextAlign
	case TextAlignLastStart:
		return TextAlignStart
	case TextAlignLastEnd:
		return TextAlignEnd
	case TextAlignLastLeft:
		return TextAlignLeft
	case TextAlignLastRight:
		return TextAlignRight
	case TextAlignLastCenter:
		return TextAlignCenter
	case TextAlignLastJustify:
		return TextAlignJustify
	default:
		return style.TextAlign
	}
}

// horizontalAlignmentOffset returns how far the content shifts from the
// line's left edge. Hanging content does not consume alignment space.
func horizontalAlignmentOffset(style *Style, contentWidth, lineWidth, hangingWidth float64, isLastLine bool, baseDirection Direction) float64 {
	extra := lineWidth - (contentWidth - hangingWidth)
	if extra <= 0 {
		return 0
	}
	align := usedTextAlign(style, isLastLine)
	// Map direction-relative values.
	switch align {
	case TextAlignStart:
		if baseDirection == DirectionRTL {
			align = TextAlignRight
		} else {
			align = TextAlignLeft
		}
	case TextAlignEnd:
		if baseDirection == DirectionRTL {
			align = TextAlignLeft
		} else {
			align = TextAlignRight
		}
	}
	switch align {
	case TextAlignRight:
		return extra
	case TextAlignCenter:
		return extra / 2
	default:
		// Left, and Justify which distributes space instead of shifting.
		return 0
	}
}

// applyJustification widens expansion opportunities so the content fills
// the line. With text-justify: inter-word, spaces at word separators
// expand; with inter-character, every text run expands in proportion to
// its rune count. Returns the distributed width.
func applyJustification(runs []LineRun, style *Style, extra float64, hangingTrailingWidth float64) float64 {
	if extra <= 0 || style.TextJustify == TextJustifyNone {
		return 0
	}
	last := lastContentRunIndex(runs, hangingTrailingWidth)
	if last < 0 {
		return 0
	}

	interCharacter := style.TextJustify == TextJustifyInterCharacter
	weights := make([]float64, len(runs))
	total := 0.0
	for i := 0; i <= last; i++ {
		run := &runs[i]
		if !run.Item.IsText() || run.LogicalWidth == 0 {
			continue
		}
		switch {
		case interCharacter:
			weights[i] = float64(run.Item.RuneCount())
		case run.Item.WordSeparator:
			weights[i] = 1
		}
		total += weights[i]
	}
	if total == 0 {
		return 0
	}

	shift := 0.0
	for i := range runs {
		runs[i].LogicalLeft += shift
		if i <= last && weights[i] > 0 {
			grow := extra * weights[i] / total
			runs[i].LogicalWidth += grow
			shift += grow
		}
	}
	return shift
}

// lastContentRunIndex finds the last run that participates in
// justification; trailing hanging whitespace stays put.
func lastContentRunIndex(runs []LineRun, hangingTrailingWidth float64) int {
	for i := len(runs) - 1; i >= 0; i-- {
		run := &runs[i]
		if run.LogicalWidth == 0 {
			continue
		}
		if hangingTrailingWidth > 0 && run.Item.IsText() && run.Item.Whitespace {
			continue
		}
		return i
	}
	return -1
}
