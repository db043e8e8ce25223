package inline

import "golang.org/x/text/unicode/bidi"

// Reorderer computes visual order from resolved embedding levels.
type Reorderer interface {
	// ReorderVisual returns the permutation for the given levels: entry i
	// is the logical index of the run at visual position i (UBA rule L2).
	// The result length must equal len(levels).
	ReorderVisual(levels []uint8) []int32
}

// DefaultReorderer implements rule L2 of the Unicode Bidirectional
// Algorithm directly: from the highest level down to the lowest odd level,
// every maximal sequence at or above that level reverses.
type DefaultReorderer struct{}

// ReorderVisual implements the Reorderer interface.
func (DefaultReorderer) ReorderVisual(levels []uint8) []int32 {
	order := make([]int32, len(levels))
	for i := range order {
		order[i] = int32(i)
	}
	maxLevel, minOdd := 0, -1
	for _, l := range levels {
		if int(l) > maxLevel {
			maxLevel = int(l)
		}
		if l%2 == 1 && (minOdd == -1 || int(l) < minOdd) {
			minOdd = int(l)
		}
	}
	if minOdd == -1 {
		return order
	}
	for level := maxLevel; level >= minOdd; level-- {
		for i := 0; i < len(order); {
			if int(levels[order[i]]) < level {
				i++
				continue
			}
			j := i
			for j < len(order) && int(levels[order[j]]) >= level {
				j++
			}
			for lo, hi := i, j-1; lo < hi; lo, hi = lo+1, hi-1 {
				order[lo], order[hi] = order[hi], order[lo]
			}
			i = j
		}
	}
	return order
}

// visualOrder computes the visual ordering of the line's runs. Opaque runs
// are excluded from the reorder input and reinserted at their logical
// positions; levels beyond the algorithm's range are a caller defect and
// degrade to the paragraph level.
func (b *LineBuilder) visualOrder(runs []LineRun, paragraphLevel uint8) []int32 {
	levels := make([]uint8, 0, len(runs))
	logical := make([]int32, 0, len(runs))
	var opaque []int32
	for i := range runs {
		level := runs[i].BidiLevel
		if level == OpaqueBidiLevel {
			opaque = append(opaque, int32(i))
			continue
		}
		if level == DefaultBidiLevel {
			level = paragraphLevel
		}
		if level > maxExplicitBidiLevel+1 {
			assert(false, "bidi level out of range")
			level = paragraphLevel
		}
		levels = append(levels, level)
		logical = append(logical, int32(i))
	}

	permutation := b.reorderer.ReorderVisual(levels)
	if len(permutation) != len(levels) {
		Logger().Warn("inline: reorderer permutation length mismatch, keeping logical order",
			"want", len(levels), "got", len(permutation))
		permutation = make([]int32, len(levels))
		for i := range permutation {
			permutation[i] = int32(i)
		}
	}

	order := make([]int32, 0, len(runs))
	for _, v := range permutation {
		order = append(order, logical[v])
	}
	// Opaque runs return to their original positions.
	for _, pos := range opaque {
		order = append(order, 0)
		copy(order[pos+1:], order[pos:])
		order[pos] = pos
	}
	return order
}

// inlineBaseDirection resolves the line's base direction. With
// unicode-bidi: plaintext the first strong character decides; a line
// continuing a paragraph (no forced break before it) inherits the previous
// line's direction.
func (b *LineBuilder) inlineBaseDirection(previous *PreviousLine, lineText string) Direction {
	if b.rootStyle.UnicodeBidi != UnicodeBidiPlaintext {
		return b.rootStyle.Direction
	}
	if previous != nil && !previous.EndsWithLineBreak {
		return previous.InlineBaseDirection
	}
	return firstStrongDirection(lineText)
}

// firstStrongDirection scans for the first strong bidi character.
func firstStrongDirection(text string) Direction {
	for len(text) > 0 {
		props, size := bidi.LookupString(text)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
		if size == 0 {
			break
		}
		text = text[size:]
	}
	return DirectionLTR
}
