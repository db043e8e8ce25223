package inline

import "github.com/go-text/typesetting/segmenter"

// lineBreaks holds the paragraph's UAX#14 soft wrap positions.
// canBreakBefore[i] reports whether a line may break before paragraph rune i.
type lineBreaks struct {
	canBreakBefore []bool
}

func newLineBreaks(paragraph []rune) *lineBreaks {
	lb := &lineBreaks{canBreakBefore: make([]bool, len(paragraph)+1)}
	if len(paragraph) == 0 {
		return lb
	}
	var seg segmenter.Segmenter
	seg.Init(paragraph)
	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		end := line.Offset + len(line.Text)
		if end < len(paragraph) {
			lb.canBreakBefore[end] = true
		}
	}
	return lb
}

// nextWrapOpportunity returns the index of the first item at or after start
// that begins the next candidate. Box boundaries and opaque items are never
// wrap opportunities themselves: when a break is allowed between two content
// items with boundaries in between, the opportunity sits right after the
// first content item so the boundaries travel with the next candidate.
func (b *LineBuilder) nextWrapOpportunity(start, end int) int {
	if b.items[start].Kind == ItemFloat {
		// Floats are their own candidate.
		return start + 1
	}
	prevContent := -1
	for i := start; i < end; i++ {
		switch b.items[i].Kind {
		case ItemForcedBreak, ItemSoftBreak:
			// The break item travels with this candidate.
			return i + 1
		case ItemFloat:
			return i
		case ItemInlineBoxStart, ItemInlineBoxEnd, ItemOpaque:
			continue
		}
		if prevContent != -1 && b.isBreakableBetween(prevContent, i) {
			return prevContent + 1
		}
		prevContent = i
	}
	return end
}

// isBreakableBetween reports whether a soft wrap opportunity exists between
// content items p and c (text or atomic boxes, possibly with box boundaries
// in between).
func (b *LineBuilder) isBreakableBetween(p, c int) bool {
	prev, cur := &b.items[p], &b.items[c]
	if !prev.Style.WrapsText() && !cur.Style.WrapsText() {
		return false
	}
	// Atomic boxes allow breaks on both sides.
	if prev.Kind == ItemAtomicBox || cur.Kind == ItemAtomicBox {
		return true
	}
	if !b.breaks.canBreakBefore[cur.Start] {
		return false
	}
	// word-break: keep-all suppresses intra-script breaks that are not
	// whitespace driven.
	if prev.Style.WordBreak == WordBreakKeepAll && cur.Style.WordBreak == WordBreakKeepAll &&
		!prev.Whitespace && !cur.Whitespace {
		return false
	}
	return true
}
