package inline

import "strings"

const (
	// maxExplicitBidiLevel is the highest explicit embedding level the
	// Unicode Bidirectional Algorithm produces.
	maxExplicitBidiLevel = 125

	// DefaultBidiLevel marks content that simply follows the paragraph
	// direction. A line containing only default-level runs skips visual
	// reordering entirely.
	DefaultBidiLevel uint8 = 0xfe

	// OpaqueBidiLevel marks runs that are invisible to reordering: they are
	// excluded from the reorder input and reinserted at their original
	// positions afterwards (out-of-flow boxes, re-seeded box boundaries).
	OpaqueBidiLevel uint8 = 0xff
)

// softHyphen is U+00AD, an invisible break opportunity that renders as a
// hyphen only when a line actually breaks at it.
const softHyphen = '­'

// ItemKind discriminates the inline item union.
type ItemKind uint8

const (
	// ItemText is a run of text with uniform style and bidi level.
	ItemText ItemKind = iota
	// ItemInlineBoxStart marks the opening edge of a non-atomic inline box.
	ItemInlineBoxStart
	// ItemInlineBoxEnd marks the closing edge of a non-atomic inline box.
	ItemInlineBoxEnd
	// ItemAtomicBox is an atomic inline-level box (image, inline-block).
	ItemAtomicBox
	// ItemForcedBreak is a mandatory line break (<br>).
	ItemForcedBreak
	// ItemSoftBreak is an explicit soft wrap opportunity (<wbr>); it has no
	// width and no content.
	ItemSoftBreak
	// ItemFloat is a floated box travelling in the inline item list.
	ItemFloat
	// ItemOpaque is content with no inline size or breaking behavior
	// (out-of-flow boxes waiting for a static position).
	ItemOpaque
)

// String returns the string representation of the item kind.
func (k ItemKind) String() string {
	switch k {
	case ItemText:
		return "Text"
	case ItemInlineBoxStart:
		return "InlineBoxStart"
	case ItemInlineBoxEnd:
		return "InlineBoxEnd"
	case ItemAtomicBox:
		return "AtomicBox"
	case ItemForcedBreak:
		return "ForcedBreak"
	case ItemSoftBreak:
		return "SoftBreak"
	case ItemFloat:
		return "Float"
	case ItemOpaque:
		return "Opaque"
	default:
		return unknownStr
	}
}

// Box is the layout identity of a non-text inline-level box. Inline box
// start/end item pairs share one Box; atomic boxes, floats and opaque items
// each carry their own.
type Box struct {
	Style *Style

	// MarginBorderPaddingStart and MarginBorderPaddingEnd are the resolved
	// decoration extents at the box's start and end edges. For an inline box
	// these attach to the start/end items; for an atomic box they are
	// already folded into MarginBoxWidth.
	MarginBorderPaddingStart float64
	MarginBorderPaddingEnd   float64

	// MarginBoxWidth and MarginBoxHeight size atomic boxes and floats.
	MarginBoxWidth  float64
	MarginBoxHeight float64

	// Float is set when the box is floated.
	Float *FloatGeometry

	// OutOfFlow marks opaque boxes positioned outside normal flow.
	OutOfFlow bool

	// RubyBase marks an inline box that is a ruby base. AnnotationWidth is
	// the width of its annotation box; a base narrower than its annotation
	// must not be split from it.
	RubyBase        bool
	AnnotationWidth float64
}

// HasDecoration reports whether either edge of the box carries margin,
// border or padding.
func (b *Box) HasDecoration() bool {
	return b.MarginBorderPaddingStart != 0 || b.MarginBorderPaddingEnd != 0
}

// Item is one entry of the inline item list. The zero value is not valid;
// use the constructors.
//
// Items are value types: the builder splits text items across lines by
// copying and re-slicing, never mutating the caller's list.
type Item struct {
	Kind  ItemKind
	Style *Style

	// Box is the owning box for every non-text kind; nil for text and
	// break items.
	Box *Box

	// Text run fields. Text holds the run's content; Start is its rune
	// offset into the paragraph text the builder was constructed with.
	Text  string
	Start int

	// Whitespace marks a run consisting entirely of collapsible space.
	Whitespace bool
	// WordSeparator marks a run that begins with a word separator, where
	// word-spacing applies.
	WordSeparator bool
	// TrailingSoftHyphen marks a run ending in U+00AD.
	TrailingSoftHyphen bool

	// BidiLevel is the run's resolved embedding level, or DefaultBidiLevel /
	// OpaqueBidiLevel.
	BidiLevel uint8
}

// NewTextItem creates a text run item. Whitespace, word-separator and
// soft-hyphen flags are derived from the content and style.
func NewTextItem(text string, start int, style *Style) Item {
	ws := text != "" && strings.Trim(text, " \t") == ""
	return Item{
		Kind:               ItemText,
		Style:              style,
		Text:               text,
		Start:              start,
		Whitespace:         ws,
		WordSeparator:      ws && text[0] == ' ',
		TrailingSoftHyphen: style.Hyphens != HyphensNone && strings.HasSuffix(text, string(softHyphen)),
		BidiLevel:          DefaultBidiLevel,
	}
}

// NewInlineBoxStart creates the opening edge item for box.
func NewInlineBoxStart(box *Box) Item {
	return Item{Kind: ItemInlineBoxStart, Style: box.Style, Box: box, BidiLevel: DefaultBidiLevel}
}

// NewInlineBoxEnd creates the closing edge item for box.
func NewInlineBoxEnd(box *Box) Item {
	return Item{Kind: ItemInlineBoxEnd, Style: box.Style, Box: box, BidiLevel: DefaultBidiLevel}
}

// NewAtomicBox creates an atomic inline-level box item.
func NewAtomicBox(box *Box) Item {
	return Item{Kind: ItemAtomicBox, Style: box.Style, Box: box, BidiLevel: DefaultBidiLevel}
}

// NewForcedBreak creates a mandatory break item.
func NewForcedBreak(style *Style) Item {
	return Item{Kind: ItemForcedBreak, Style: style, BidiLevel: DefaultBidiLevel}
}

// NewSoftBreakOpportunity creates an explicit soft wrap opportunity item.
func NewSoftBreakOpportunity(style *Style) Item {
	return Item{Kind: ItemSoftBreak, Style: style, BidiLevel: DefaultBidiLevel}
}

// NewFloatItem creates a float item. box.Float must be set.
func NewFloatItem(box *Box) Item {
	return Item{Kind: ItemFloat, Style: box.Style, Box: box, BidiLevel: DefaultBidiLevel}
}

// NewOpaqueItem creates an opaque item for box.
func NewOpaqueItem(box *Box) Item {
	return Item{Kind: ItemOpaque, Style: box.Style, Box: box, BidiLevel: OpaqueBidiLevel}
}

// WithBidiLevel returns a copy of the item at the given embedding level.
func (it Item) WithBidiLevel(level uint8) Item {
	it.BidiLevel = level
	return it
}

// IsText reports whether the item is a text run.
func (it Item) IsText() bool { return it.Kind == ItemText }

// RuneCount returns the number of runes in a text item's content.
func (it Item) RuneCount() int {
	n := 0
	for range it.Text {
		n++
	}
	return n
}

// left returns the item's first runeLen runes as a standalone text item.
func (it Item) left(runeLen int) Item {
	r := []rune(it.Text)
	it.Text = string(r[:runeLen])
	it.TrailingSoftHyphen = it.Style.Hyphens != HyphensNone && runeLen > 0 && r[runeLen-1] == softHyphen
	return it
}

// right returns the remainder of the item after its first runeLen runes.
func (it Item) right(runeLen int) Item {
	r := []rune(it.Text)
	it.Text = string(r[runeLen:])
	it.Start += runeLen
	if it.Whitespace && it.Text != "" {
		it.WordSeparator = it.Text[0] == ' '
	}
	return it
}

// endsWithSoftHyphenAt reports whether a break after runeLen runes lands on
// a soft hyphen.
func (it Item) endsWithSoftHyphenAt(runeLen int) bool {
	if it.Style.Hyphens == HyphensNone {
		return false
	}
	r := []rune(it.Text)
	return runeLen > 0 && runeLen <= len(r) && r[runeLen-1] == softHyphen
}
