package inline

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Shaper measures text in context. The line breaker mostly measures items
// one by one, but content whose advance depends on its neighbors (cursive
// scripts, mandatory ligatures) must be measured across run boundaries; the
// Shaper supplies those contextual measurements.
type Shaper interface {
	// Advances returns per-rune advances for text rendered with style in
	// the given direction. The returned slice length must equal the text's
	// rune count; any other length is treated as a contract violation and
	// the caller keeps its per-run measurements.
	Advances(text string, style *Style, dir Direction) []float64
}

// HarfbuzzShaper is the default Shaper, backed by go-text/typesetting's
// HarfBuzz implementation.
//
// HarfbuzzShaper is safe for concurrent use. The underlying
// shaping.HarfbuzzShaper has internal mutable state and is NOT safe for
// concurrent use, so instances are pooled via sync.Pool.
type HarfbuzzShaper struct {
	pool sync.Pool
}

// NewHarfbuzzShaper creates a HarfbuzzShaper.
func NewHarfbuzzShaper() *HarfbuzzShaper {
	return &HarfbuzzShaper{
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Advances implements the Shaper interface. Styles without a Face yield nil,
// which callers treat the same as a measurement failure.
func (s *HarfbuzzShaper) Advances(text string, style *Style, dir Direction) []float64 {
	if text == "" || style == nil || style.Face == nil {
		return nil
	}
	runes := []rune(text)

	d := di.DirectionLTR
	if dir == DirectionRTL {
		d = di.DirectionRTL
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: d,
		Face:      style.Face,
		Size:      floatToFixed(style.FontSize),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.pool.Put(hb)

	// Fold glyph advances back onto runes by cluster. Ligatures attribute
	// their whole advance to the cluster's first rune; the remaining runes
	// of the cluster measure zero, which keeps prefix widths monotonic.
	advances := make([]float64, len(runes))
	for _, g := range output.Glyphs {
		ci := g.TextIndex()
		if ci >= 0 && ci < len(advances) {
			advances[ci] += fixedToFloat(g.Advance)
		}
	}
	return advances
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Candidate runs are uniform by construction, so a
// single script per measurement call suffices.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// shapingEligible reports whether a run can participate in a cross-run
// shaping range.
func shapingEligible(run *Run) bool {
	return run.Item.IsText() && !run.Item.Whitespace && run.Style.NeedsComplexShaping
}

// shapingTransparent reports whether a run sits invisibly inside a shaping
// range: box boundaries without decoration that do not isolate, and opaque
// items. Decoration or isolation breaks the range.
func shapingTransparent(run *Run) bool {
	switch run.Item.Kind {
	case ItemInlineBoxStart, ItemInlineBoxEnd:
		return !run.Item.Box.HasDecoration() && run.Style.UnicodeBidi != UnicodeBidiIsolate
	case ItemOpaque:
		return true
	default:
		return false
	}
}

// applyShapingRanges finds run sequences that must be measured together,
// marks their boundaries, and replaces their individual measurements with
// the shaper's contextual ones.
func (b *LineBuilder) applyShapingRanges(content *ContinuousContent) {
	runs := content.Runs()
	for i := 0; i < len(runs); {
		if !shapingEligible(&runs[i]) {
			i++
			continue
		}
		textRuns := []int{i}
		last := i
		for j := i + 1; j < len(runs); j++ {
			if shapingTransparent(&runs[j]) {
				continue
			}
			if !shapingEligible(&runs[j]) ||
				runs[j].Style.FontID != runs[i].Style.FontID ||
				runs[j].Item.BidiLevel != runs[i].Item.BidiLevel {
				break
			}
			textRuns = append(textRuns, j)
			last = j
		}
		if len(textRuns) < 2 {
			i++
			continue
		}
		b.shapeRange(content, textRuns, last)
		i = last + 1
	}
}

// shapeRange measures the text runs of one range together and distributes
// the result per run. On an advance-count mismatch the range is dropped and
// the individual measurements stand.
func (b *LineBuilder) shapeRange(content *ContinuousContent, textRuns []int, last int) {
	runs := content.Runs()
	combined := ""
	runeCounts := make([]int, len(textRuns))
	total := 0
	for k, idx := range textRuns {
		combined += runs[idx].Item.Text
		runeCounts[k] = runs[idx].Item.RuneCount()
		total += runeCounts[k]
	}
	dir := DirectionLTR
	if runs[textRuns[0]].Item.BidiLevel%2 == 1 {
		dir = DirectionRTL
	}
	advances := b.shaper.Advances(combined, runs[textRuns[0]].Style, dir)
	if len(advances) != total {
		Logger().Warn("inline: shaper advance count mismatch, keeping per-run measurements",
			"want", total, "got", len(advances))
		return
	}
	first := textRuns[0]
	offset := 0
	for k, idx := range textRuns {
		w := 0.0
		for _, a := range advances[offset : offset+runeCounts[k]] {
			w += a
		}
		offset += runeCounts[k]
		content.setRunWidth(idx, w)
		switch {
		case idx == first:
			content.runs[idx].ShapingBoundary = ShapingBoundaryStart
		case idx == last:
			content.runs[idx].ShapingBoundary = ShapingBoundaryEnd
		default:
			content.runs[idx].ShapingBoundary = ShapingBoundaryMiddle
		}
	}
	// Transparent runs inside the range are marked too, so a later break
	// can tell it landed inside shaped content.
	for idx := first + 1; idx < last; idx++ {
		if content.runs[idx].ShapingBoundary == ShapingBoundaryNone {
			content.runs[idx].ShapingBoundary = ShapingBoundaryMiddle
		}
	}
}

// collapseShapingRange undoes contextual measurement for the candidate runs
// committed by a mid-range break: each run goes back to its standalone
// width and loses its boundary marker.
func (b *LineBuilder) collapseShapingRange(content *ContinuousContent, upTo int, partialLen int, firstLine bool) {
	runs := content.Runs()
	for i := 0; i <= upTo && i < len(runs); i++ {
		if runs[i].ShapingBoundary == ShapingBoundaryNone {
			continue
		}
		item := runs[i].Item
		if i == upTo && partialLen > 0 {
			item = item.left(partialLen)
		}
		if item.IsText() {
			content.setRunWidth(i, b.metrics.ItemWidth(item, 0, firstLine))
		}
		content.runs[i].TextSpacingAdjustment = 0
		content.runs[i].ShapingBoundary = ShapingBoundaryNone
	}
}
