package inline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// TestReorderVisual tests rule L2 reversal on resolved levels.
func TestReorderVisual(t *testing.T) {
	tests := []struct {
		name   string
		levels []uint8
		want   []int32
	}{
		{"empty", nil, []int32{}},
		{"all base level", []uint8{0, 0, 0}, []int32{0, 1, 2}},
		{"rtl pair reverses", []uint8{1, 1}, []int32{1, 0}},
		{"rtl island", []uint8{0, 1, 1, 0}, []int32{0, 2, 1, 3}},
		{"embedded ltr keeps order", []uint8{2, 2}, []int32{0, 1}},
		{"nested levels", []uint8{0, 1, 2}, []int32{0, 2, 1}},
		{"rtl paragraph with ltr run", []uint8{1, 2, 1}, []int32{2, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultReorderer{}.ReorderVisual(tt.levels)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ReorderVisual(%v) mismatch (-want +got):\n%s", tt.levels, diff)
			}
		})
	}
}

// TestVisualOrderOpaqueReinsertion tests that opaque runs skip reordering
// and return to their logical positions.
func TestVisualOrderOpaqueReinsertion(t *testing.T) {
	style := DefaultStyle()
	items := []Item{NewTextItem("a", 0, style)}
	b := newTestBuilder(t, items, "a", style, Options{})

	runs := []LineRun{
		{BidiLevel: 1},
		{BidiLevel: OpaqueBidiLevel},
		{BidiLevel: 1},
	}
	got := b.visualOrder(runs, 0)
	want := []int32{2, 1, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visualOrder() mismatch (-want +got):\n%s", diff)
	}
}

// TestVisualOrderDefaultLevels tests that default-level runs take the
// paragraph level.
func TestVisualOrderDefaultLevels(t *testing.T) {
	style := DefaultStyle()
	items := []Item{NewTextItem("a", 0, style)}
	b := newTestBuilder(t, items, "a", style, Options{})

	runs := []LineRun{
		{BidiLevel: DefaultBidiLevel},
		{BidiLevel: DefaultBidiLevel},
	}
	if got := b.visualOrder(runs, 1); got[0] != 1 || got[1] != 0 {
		t.Errorf("visualOrder() = %v, want [1 0]", got)
	}
	if got := b.visualOrder(runs, 0); got[0] != 0 || got[1] != 1 {
		t.Errorf("visualOrder() = %v, want [0 1]", got)
	}
}

// TestFirstStrongDirection tests first-strong detection.
func TestFirstStrongDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"latin", "abc", DirectionLTR},
		{"hebrew", "שלום", DirectionRTL},
		{"arabic", "مرحبا", DirectionRTL},
		{"neutral then hebrew", "123 אב", DirectionRTL},
		{"neutral only", "123", DirectionLTR},
		{"empty", "", DirectionLTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstStrongDirection(tt.text); got != tt.want {
				t.Errorf("firstStrongDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

// TestInlineBaseDirection tests base-direction resolution against the root
// style and the previous line.
func TestInlineBaseDirection(t *testing.T) {
	style := DefaultStyle()
	items := []Item{NewTextItem("a", 0, style)}

	t.Run("non-plaintext follows root", func(t *testing.T) {
		root := DefaultStyle()
		root.Direction = DirectionRTL
		b := newTestBuilder(t, items, "a", root, Options{})
		if got := b.inlineBaseDirection(nil, "abc"); got != DirectionRTL {
			t.Errorf("= %v, want RTL", got)
		}
	})

	t.Run("plaintext first line uses first strong", func(t *testing.T) {
		root := DefaultStyle()
		root.UnicodeBidi = UnicodeBidiPlaintext
		b := newTestBuilder(t, items, "a", root, Options{})
		if got := b.inlineBaseDirection(nil, "שלום"); got != DirectionRTL {
			t.Errorf("= %v, want RTL", got)
		}
	})

	t.Run("plaintext continuation inherits", func(t *testing.T) {
		root := DefaultStyle()
		root.UnicodeBidi = UnicodeBidiPlaintext
		b := newTestBuilder(t, items, "a", root, Options{})
		prev := &PreviousLine{InlineBaseDirection: DirectionRTL}
		if got := b.inlineBaseDirection(prev, "abc"); got != DirectionRTL {
			t.Errorf("= %v, want RTL (inherited)", got)
		}
	})

	t.Run("plaintext after forced break redetects", func(t *testing.T) {
		root := DefaultStyle()
		root.UnicodeBidi = UnicodeBidiPlaintext
		b := newTestBuilder(t, items, "a", root, Options{})
		prev := &PreviousLine{InlineBaseDirection: DirectionRTL, EndsWithLineBreak: true}
		if got := b.inlineBaseDirection(prev, "abc"); got != DirectionLTR {
			t.Errorf("= %v, want LTR (redetected)", got)
		}
	})
}
