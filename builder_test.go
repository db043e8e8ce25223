package inline

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// wordItems builds the item list for "ab cd ef ghij": alternating word and
// space items with paragraph offsets.
func wordItems(style *Style) ([]Item, string) {
	paragraph := "ab cd ef ghij"
	items := []Item{
		NewTextItem("ab", 0, style),
		NewTextItem(" ", 2, style),
		NewTextItem("cd", 3, style),
		NewTextItem(" ", 5, style),
		NewTextItem("ef", 6, style),
		NewTextItem(" ", 8, style),
		NewTextItem("ghij", 9, style),
	}
	return items, paragraph
}

func fullRange(items []Item) ItemRange {
	return ItemRange{End: ItemPosition{Index: len(items)}}
}

func lineRect(width float64) Rect {
	return Rect{Width: width, Height: 10}
}

// TestNewLineBuilderValidation tests constructor error cases.
func TestNewLineBuilderValidation(t *testing.T) {
	style := DefaultStyle()

	_, err := NewLineBuilder(nil, "", style, DefaultOptions())
	if !errors.Is(err, ErrEmptyItemList) {
		t.Errorf("empty items: error = %v, want ErrEmptyItemList", err)
	}

	_, err = NewLineBuilder([]Item{NewTextItem("a", 0, style)}, "a", style, Options{})
	if !errors.Is(err, ErrNoMetrics) {
		t.Errorf("no metrics: error = %v, want ErrNoMetrics", err)
	}
}

// TestLayoutRangeValidation tests that out-of-bounds ranges are rejected.
func TestLayoutRangeValidation(t *testing.T) {
	style := DefaultStyle()
	items, paragraph := wordItems(style)
	b := newTestBuilder(t, items, paragraph, style, Options{})

	tests := []struct {
		name string
		r    ItemRange
	}{
		{"end past items", ItemRange{End: ItemPosition{Index: len(items) + 1}}},
		{"negative start", ItemRange{Start: ItemPosition{Index: -1}, End: ItemPosition{Index: 1}}},
		{"empty range", ItemRange{Start: ItemPosition{Index: 2}, End: ItemPosition{Index: 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Layout(lineRect(100), tt.r, nil); !errors.Is(err, ErrRangeOutOfBounds) {
				t.Errorf("Layout() error = %v, want ErrRangeOutOfBounds", err)
			}
		})
	}
}

// TestLayoutSimpleWrap tests wrapping "ab cd ef ghij" at width 100: three
// words fit, the trailing space trims, "ghij" moves to the second line.
func TestLayoutSimpleWrap(t *testing.T) {
	style := DefaultStyle()
	items, paragraph := wordItems(style)
	b := newTestBuilder(t, items, paragraph, style, Options{})

	first, err := b.Layout(lineRect(100), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if diff := cmp.Diff(ItemRange{End: ItemPosition{Index: 6}}, first.Range); diff != "" {
		t.Errorf("first line range mismatch (-want +got):\n%s", diff)
	}
	if len(first.Runs) != 6 {
		t.Fatalf("first line runs = %d, want 6", len(first.Runs))
	}
	if first.Content.LogicalWidth != 80 {
		t.Errorf("first line width = %v, want 80 (trailing space trimmed)", first.Content.LogicalWidth)
	}
	if got := first.Runs[5]; got.LogicalWidth != 0 {
		t.Errorf("trimmed space width = %v, want 0", got.LogicalWidth)
	}
	if first.IsLastLine || !first.IsFirstLine {
		t.Errorf("first/last flags = %v/%v, want true/false", first.IsFirstLine, first.IsLastLine)
	}

	second, err := b.Layout(lineRect(100), ItemRange{Start: first.Range.End, End: ItemPosition{Index: len(items)}},
		&PreviousLine{LineIndex: 0})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if second.Content.LogicalWidth != 40 {
		t.Errorf("second line width = %v, want 40", second.Content.LogicalWidth)
	}
	if !second.IsLastLine || second.IsFirstLine {
		t.Errorf("first/last flags = %v/%v, want false/true", second.IsFirstLine, second.IsLastLine)
	}
}

// TestLayoutEverythingFits tests a single line consuming the whole range.
func TestLayoutEverythingFits(t *testing.T) {
	style := DefaultStyle()
	items, paragraph := wordItems(style)
	b := newTestBuilder(t, items, paragraph, style, Options{})

	result, err := b.Layout(lineRect(200), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if result.Range.End.Index != len(items) {
		t.Errorf("range end = %d, want %d", result.Range.End.Index, len(items))
	}
	if !result.IsLastLine {
		t.Errorf("IsLastLine = false, want true")
	}
	if result.Content.LogicalWidth != 130 {
		t.Errorf("content width = %v, want 130", result.Content.LogicalWidth)
	}
}

// TestLayoutForcedBreak tests that a forced break closes the line and is
// consumed by it.
func TestLayoutForcedBreak(t *testing.T) {
	style := DefaultStyle()
	items := []Item{
		NewTextItem("ab", 0, style),
		NewForcedBreak(style),
		NewTextItem("cd", 3, style),
	}
	b := newTestBuilder(t, items, "ab\ncd", style, Options{})

	first, err := b.Layout(lineRect(100), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if !first.EndsWithForcedBreak {
		t.Errorf("EndsWithForcedBreak = false, want true")
	}
	if first.Range.End.Index != 2 {
		t.Errorf("range end = %d, want 2", first.Range.End.Index)
	}
	if first.IsLastLine {
		t.Errorf("IsLastLine = true, want false")
	}

	second, err := b.Layout(lineRect(100), ItemRange{Start: first.Range.End, End: ItemPosition{Index: 3}},
		&PreviousLine{EndsWithLineBreak: true})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if second.Content.LogicalWidth != 20 || !second.IsLastLine {
		t.Errorf("second line = (%v, %v), want (20, last)", second.Content.LogicalWidth, second.IsLastLine)
	}
}

// TestLayoutBreakAnywhere tests an arbitrary break inside a long word and
// the overflow width carried to the next line.
func TestLayoutBreakAnywhere(t *testing.T) {
	style := DefaultStyle()
	style.WordBreak = WordBreakBreakAll
	items := []Item{NewTextItem("abcdefghijkl", 0, style)}
	b := newTestBuilder(t, items, "abcdefghijkl", style, Options{})

	first, err := b.Layout(lineRect(100), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if diff := cmp.Diff(ItemRange{End: ItemPosition{Index: 0, Offset: 10}}, first.Range); diff != "" {
		t.Errorf("range mismatch (-want +got):\n%s", diff)
	}
	if first.Content.LogicalWidth != 100 {
		t.Errorf("content width = %v, want 100", first.Content.LogicalWidth)
	}
	if !first.Content.HasOverflow || first.Content.OverflowWidth != 20 {
		t.Errorf("overflow = (%v, %v), want (true, 20)", first.Content.HasOverflow, first.Content.OverflowWidth)
	}

	second, err := b.Layout(lineRect(100), ItemRange{Start: first.Range.End, End: ItemPosition{Index: 1}},
		&PreviousLine{OverflowWidth: first.Content.OverflowWidth, HasOverflowWidth: true})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if second.Content.LogicalWidth != 20 {
		t.Errorf("second line width = %v, want 20", second.Content.LogicalWidth)
	}
	if len(second.Runs) != 1 || second.Runs[0].Item.Text != "kl" {
		t.Errorf("second line runs = %+v, want single run \"kl\"", second.Runs)
	}
}

// TestLayoutSoftHyphenWrap tests a line closed at a soft hyphen: the hyphen
// becomes visible and widens the run, even past the available width when no
// earlier opportunity fits.
func TestLayoutSoftHyphenWrap(t *testing.T) {
	style := DefaultStyle()
	items := []Item{
		NewTextItem("abcd­", 0, style),
		NewTextItem("efghi", 5, style),
	}
	paragraph := "abcd­efghi"

	tests := []struct {
		name  string
		width float64
	}{
		{"hyphen fits", 65},
		{"hyphen overflows", 55},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(t, items, paragraph, style, Options{})
			result, err := b.Layout(lineRect(tt.width), fullRange(items), nil)
			if err != nil {
				t.Fatalf("Layout() error = %v", err)
			}
			if result.Range.End.Index != 1 {
				t.Errorf("range end = %d, want 1", result.Range.End.Index)
			}
			if !result.Runs[0].HasHyphen {
				t.Errorf("HasHyphen = false, want true")
			}
			if result.Content.LogicalWidth != 60 {
				t.Errorf("content width = %v, want 60 (50 + hyphen)", result.Content.LogicalWidth)
			}
		})
	}
}

// TestLayoutTextIndent tests that the first line starts at the indent and
// loses that much space.
func TestLayoutTextIndent(t *testing.T) {
	style := DefaultStyle()
	style.TextIndent = 20
	items, paragraph := wordItems(style)
	b := newTestBuilder(t, items, paragraph, style, Options{})

	first, err := b.Layout(lineRect(100), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if first.Content.LogicalLeft != 20 {
		t.Errorf("content left = %v, want 20", first.Content.LogicalLeft)
	}
	if first.Range.End.Index != 4 {
		t.Errorf("range end = %d, want 4 (only two words fit)", first.Range.End.Index)
	}

	second, err := b.Layout(lineRect(100), ItemRange{Start: first.Range.End, End: ItemPosition{Index: len(items)}},
		&PreviousLine{})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if second.Content.LogicalLeft != 0 {
		t.Errorf("second line left = %v, want 0", second.Content.LogicalLeft)
	}
}

// TestLayoutFloatPlacement tests that a float narrows the line and the
// following content uses the reduced width.
func TestLayoutFloatPlacement(t *testing.T) {
	style := DefaultStyle()
	floatBox := &Box{Style: style, Float: &FloatGeometry{Side: FloatLeft, MarginBoxWidth: 40, MarginBoxHeight: 50}}
	items := []Item{
		NewTextItem("ab", 0, style),
		NewTextItem(" ", 2, style),
		NewFloatItem(floatBox),
		NewTextItem("cd", 3, style),
	}
	b := newTestBuilder(t, items, "ab cd", style, Options{})

	result, err := b.Layout(lineRect(100), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if len(result.Floats.Placed) != 1 {
		t.Fatalf("placed floats = %d, want 1", len(result.Floats.Placed))
	}
	if diff := cmp.Diff(Rect{Width: 40, Height: 50}, result.Floats.Placed[0].Rect); diff != "" {
		t.Errorf("float rect mismatch (-want +got):\n%s", diff)
	}
	if !result.Floats.Constrained.Start {
		t.Errorf("Constrained.Start = false, want true")
	}
	if result.LineRect.Width != 60 {
		t.Errorf("line rect width = %v, want 60", result.LineRect.Width)
	}
	if result.Content.LogicalWidth != 50 {
		t.Errorf("content width = %v, want 50", result.Content.LogicalWidth)
	}
}

// TestLayoutFloatSuspension tests that a float shrinking the line below its
// committed content is suspended, then placed by the next line.
func TestLayoutFloatSuspension(t *testing.T) {
	style := DefaultStyle()
	floatBox := &Box{Style: style, Float: &FloatGeometry{Side: FloatLeft, MarginBoxWidth: 40, MarginBoxHeight: 50}}
	items := []Item{
		NewTextItem("ab", 0, style),
		NewTextItem(" ", 2, style),
		NewTextItem("cd", 3, style),
		NewTextItem(" ", 5, style),
		NewTextItem("ef", 6, style),
		NewTextItem(" ", 8, style),
		NewFloatItem(floatBox),
		NewTextItem("gh", 9, style),
	}
	b := newTestBuilder(t, items, "ab cd ef gh", style, Options{})

	first, err := b.Layout(lineRect(100), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if len(first.Floats.Placed) != 0 || len(first.Floats.Suspended) != 1 {
		t.Fatalf("floats = (%d placed, %d suspended), want (0, 1)",
			len(first.Floats.Placed), len(first.Floats.Suspended))
	}
	if first.Range.End.Index != 7 {
		t.Errorf("range end = %d, want 7 (float consumed, text wrapped)", first.Range.End.Index)
	}

	second, err := b.Layout(lineRect(100), ItemRange{Start: first.Range.End, End: ItemPosition{Index: len(items)}},
		&PreviousLine{SuspendedFloats: first.Floats.Suspended})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if len(second.Floats.Placed) != 1 || len(second.Floats.Suspended) != 0 {
		t.Fatalf("floats = (%d placed, %d suspended), want (1, 0)",
			len(second.Floats.Placed), len(second.Floats.Suspended))
	}
	if second.LineRect.Width != 60 {
		t.Errorf("second line rect width = %v, want 60", second.LineRect.Width)
	}
}

// TestLayoutRevertDropsSuspendedFloat tests that a line revert forgets a
// float suspended past the revert point: the float's item moves wholly to
// the next line instead of being both carried and re-encountered there.
func TestLayoutRevertDropsSuspendedFloat(t *testing.T) {
	style := DefaultStyle()
	floatBox := &Box{Style: style, Float: &FloatGeometry{Side: FloatLeft, MarginBoxWidth: 50, MarginBoxHeight: 40}}
	items := []Item{
		NewTextItem("abcdefg", 0, style),
		NewTextItem(" ", 7, style),
		NewTextItem("hi­", 8, style),
		NewFloatItem(floatBox),
		NewTextItem("jk", 11, style),
	}
	b := newTestBuilder(t, items, "abcdefg hi­jk", style, Options{})

	// The float suspends beside the committed text, then the pending soft
	// hyphen overflows and the line reverts to the opportunity after the
	// space, before the float's item.
	first, err := b.Layout(lineRect(115), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if first.Range.End.Index != 2 {
		t.Fatalf("range end = %d, want 2 (reverted past the float)", first.Range.End.Index)
	}
	if len(first.Floats.Placed) != 0 || len(first.Floats.Suspended) != 0 {
		t.Fatalf("floats = (%d placed, %d suspended), want (0, 0)",
			len(first.Floats.Placed), len(first.Floats.Suspended))
	}

	second, err := b.Layout(lineRect(115), ItemRange{Start: first.Range.End, End: ItemPosition{Index: len(items)}},
		&PreviousLine{SuspendedFloats: first.Floats.Suspended})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if len(second.Floats.Placed) != 1 || len(second.Floats.Suspended) != 0 {
		t.Fatalf("floats = (%d placed, %d suspended), want (1, 0)",
			len(second.Floats.Placed), len(second.Floats.Suspended))
	}
	if second.LineRect.Width != 65 {
		t.Errorf("second line rect width = %v, want 65", second.LineRect.Width)
	}
	if second.Range.End.Index != len(items) {
		t.Errorf("second range end = %d, want %d", second.Range.End.Index, len(items))
	}
}

// TestLayoutCarriedFloatAbort tests the empty result with a skip height
// when the first carried float cannot be placed beside existing floats.
func TestLayoutCarriedFloatAbort(t *testing.T) {
	style := DefaultStyle()
	existing := &Box{Style: style, Float: &FloatGeometry{Side: FloatLeft, MarginBoxWidth: 80, MarginBoxHeight: 30}}
	space := NewExclusionSpace()
	space.Place(PlacedFloat{Box: existing, Rect: Rect{Width: 80, Height: 30}})

	carried := &Box{Style: style, Float: &FloatGeometry{Side: FloatLeft, MarginBoxWidth: 50, MarginBoxHeight: 20}}
	items := []Item{NewTextItem("ab", 0, style)}
	b := newTestBuilder(t, items, "ab", style, Options{FloatContext: space})

	result, err := b.Layout(lineRect(100), fullRange(items),
		&PreviousLine{SuspendedFloats: []Item{NewFloatItem(carried)}})
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if !result.HasSkipHeight || result.SkipHeight != 30 {
		t.Fatalf("skip = (%v, %v), want (true, 30)", result.HasSkipHeight, result.SkipHeight)
	}
	if !result.Range.IsEmpty() {
		t.Errorf("range = %+v, want empty", result.Range)
	}
	if len(result.Floats.Suspended) != 1 {
		t.Errorf("suspended = %d, want 1 (float stays carried)", len(result.Floats.Suspended))
	}
}

// TestLayoutPreservedTrailingWhitespaceHangs tests that pre-wrap trailing
// whitespace hangs instead of counting against the line.
func TestLayoutPreservedTrailingWhitespaceHangs(t *testing.T) {
	style := DefaultStyle()
	style.WhiteSpace = WhiteSpacePreWrap
	items := []Item{
		NewTextItem("ab", 0, style),
		NewTextItem("   ", 2, style),
	}
	b := newTestBuilder(t, items, "ab   ", style, Options{})

	result, err := b.Layout(lineRect(30), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if result.Range.End.Index != 2 {
		t.Errorf("range end = %d, want 2", result.Range.End.Index)
	}
	if result.Content.LogicalWidth != 50 {
		t.Errorf("content width = %v, want 50 (whitespace keeps its width)", result.Content.LogicalWidth)
	}
	if result.Hanging.Width != 30 || !result.Hanging.IsWhitespace {
		t.Errorf("hanging = (%v, %v), want (30, whitespace)", result.Hanging.Width, result.Hanging.IsWhitespace)
	}
}

// TestLayoutHangingPunctuation tests leading and trailing hangable
// punctuation.
func TestLayoutHangingPunctuation(t *testing.T) {
	t.Run("trailing", func(t *testing.T) {
		style := DefaultStyle()
		style.HangingPunctuation = HangAllowEnd
		items := []Item{NewTextItem("abc.", 0, style)}
		b := newTestBuilder(t, items, "abc.", style, Options{})

		result, err := b.Layout(lineRect(100), fullRange(items), nil)
		if err != nil {
			t.Fatalf("Layout() error = %v", err)
		}
		if result.Hanging.Width != 10 || result.Hanging.IsWhitespace {
			t.Errorf("hanging = (%v, %v), want (10, punctuation)", result.Hanging.Width, result.Hanging.IsWhitespace)
		}
	})

	t.Run("leading", func(t *testing.T) {
		style := DefaultStyle()
		style.HangingPunctuation = HangFirst
		items := []Item{NewTextItem("“ab", 0, style)}
		b := newTestBuilder(t, items, "“ab", style, Options{})

		result, err := b.Layout(lineRect(100), fullRange(items), nil)
		if err != nil {
			t.Fatalf("Layout() error = %v", err)
		}
		if result.Hanging.PunctuationStartWidth != 10 {
			t.Errorf("punctuation start width = %v, want 10", result.Hanging.PunctuationStartWidth)
		}
	})
}

// TestLayoutJustify tests inter-word justification on a non-last line.
func TestLayoutJustify(t *testing.T) {
	style := DefaultStyle()
	style.TextAlign = TextAlignJustify
	style.TextJustify = TextJustifyInterWord
	items := []Item{
		NewTextItem("ab", 0, style),
		NewTextItem(" ", 2, style),
		NewTextItem("cd", 3, style),
		NewTextItem(" ", 5, style),
		NewTextItem("efghij", 6, style),
	}
	b := newTestBuilder(t, items, "ab cd efghij", style, Options{})

	result, err := b.Layout(lineRect(70), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if result.Range.End.Index != 4 {
		t.Fatalf("range end = %d, want 4", result.Range.End.Index)
	}
	if result.Content.LogicalWidth != 70 {
		t.Errorf("justified width = %v, want 70", result.Content.LogicalWidth)
	}
	// The single expansion opportunity is the inner space; "cd" moves right
	// by the distributed 20 units.
	if got := result.Runs[2].LogicalLeft; got != 50 {
		t.Errorf("second word left = %v, want 50", got)
	}
}

// TestLayoutBidiReordering tests visual reordering of explicit embedding
// levels and opaque run reinsertion.
func TestLayoutBidiReordering(t *testing.T) {
	style := DefaultStyle()
	items := []Item{
		NewTextItem("ab", 0, style).WithBidiLevel(0),
		NewTextItem("cd", 2, style).WithBidiLevel(1),
		NewTextItem("ef", 4, style).WithBidiLevel(1),
	}
	b := newTestBuilder(t, items, "abcdef", style, Options{})

	result, err := b.Layout(lineRect(100), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if diff := cmp.Diff([]int32{0, 2, 1}, result.VisualOrder); diff != "" {
		t.Errorf("visual order mismatch (-want +got):\n%s", diff)
	}
}

// TestLayoutNoBidiReorderingByDefault tests that default-level lines skip
// reordering entirely.
func TestLayoutNoBidiReorderingByDefault(t *testing.T) {
	style := DefaultStyle()
	items, paragraph := wordItems(style)
	b := newTestBuilder(t, items, paragraph, style, Options{})

	result, err := b.Layout(lineRect(200), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if result.VisualOrder != nil {
		t.Errorf("visual order = %v, want nil", result.VisualOrder)
	}
}

// TestLayoutPlaintextBaseDirection tests unicode-bidi: plaintext deriving
// the base direction from the first strong character.
func TestLayoutPlaintextBaseDirection(t *testing.T) {
	style := DefaultStyle()
	style.UnicodeBidi = UnicodeBidiPlaintext
	items := []Item{NewTextItem("שלום", 0, style)}
	b := newTestBuilder(t, items, "שלום", style, Options{})

	result, err := b.Layout(lineRect(100), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if result.BaseDirection != DirectionRTL {
		t.Errorf("base direction = %v, want RTL", result.BaseDirection)
	}
	// text-align: start follows the base direction.
	if result.Content.LogicalLeft != 60 {
		t.Errorf("content left = %v, want 60", result.Content.LogicalLeft)
	}
}

// TestLayoutOutOfFlowOverflowStrip tests that trailing out-of-flow content
// on an overflowing line moves to the next line.
func TestLayoutOutOfFlowOverflowStrip(t *testing.T) {
	style := DefaultStyle()
	items := []Item{
		NewTextItem("abcdefghijkl", 0, style),
		NewOpaqueItem(&Box{Style: style, OutOfFlow: true}),
	}
	b := newTestBuilder(t, items, "abcdefghijkl", style, Options{})

	result, err := b.Layout(lineRect(100), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if result.Range.End.Index != 1 {
		t.Errorf("range end = %d, want 1 (opaque item pushed to next line)", result.Range.End.Index)
	}
	if len(result.Runs) != 1 {
		t.Errorf("runs = %d, want 1", len(result.Runs))
	}
}

// stubRubyAligner returns a fixed annotation offset.
type stubRubyAligner struct{}

func (stubRubyAligner) Align(runs []LineRun, availableWidth float64) RubyOffsets {
	return RubyOffsets{AnnotationOffset: 7}
}

// TestLayoutRubyAlignment tests that lines with ruby bases go through the
// ruby aligner and annotation width acts as a minimum.
func TestLayoutRubyAlignment(t *testing.T) {
	style := DefaultStyle()
	base := &Box{Style: style, RubyBase: true, AnnotationWidth: 30}
	items := []Item{
		NewInlineBoxStart(base),
		NewTextItem("ab", 0, style),
		NewInlineBoxEnd(base),
	}
	b := newTestBuilder(t, items, "ab", style, Options{RubyAligner: stubRubyAligner{}})

	result, err := b.Layout(lineRect(100), fullRange(items), nil)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	if result.Ruby.AnnotationOffset != 7 {
		t.Errorf("annotation offset = %v, want 7", result.Ruby.AnnotationOffset)
	}
}

// BenchmarkLayout measures laying out a paragraph of short words.
func BenchmarkLayout(b *testing.B) {
	style := DefaultStyle()
	paragraph := ""
	var items []Item
	for i := 0; i < 40; i++ {
		items = append(items, NewTextItem("word", len(paragraph), style))
		paragraph += "word"
		items = append(items, NewTextItem(" ", len(paragraph), style))
		paragraph += " "
	}
	builder, err := NewLineBuilder(items, paragraph, style, Options{Shaper: fixedShaper{perRune: 10}})
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		start := ItemPosition{}
		var previous *PreviousLine
		for start.Index < len(items) {
			result, err := builder.Layout(lineRect(200), ItemRange{Start: start, End: ItemPosition{Index: len(items)}}, previous)
			if err != nil {
				b.Fatal(err)
			}
			if result.Range.End == start {
				b.Fatal("no progress")
			}
			start = result.Range.End
			previous = &PreviousLine{EndsWithLineBreak: result.EndsWithForcedBreak}
		}
	}
}
