package inline

import "github.com/go-text/typesetting/font"

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies inline base direction.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// WhiteSpace controls whitespace collapsing and wrapping, following the
// CSS white-space shorthand values.
type WhiteSpace int

const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNoWrap
	WhiteSpacePre
	WhiteSpacePreWrap
	WhiteSpacePreLine
	WhiteSpaceBreakSpaces
)

// String returns the string representation of the white-space value.
func (w WhiteSpace) String() string {
	switch w {
	case WhiteSpaceNormal:
		return "Normal"
	case WhiteSpaceNoWrap:
		return "NoWrap"
	case WhiteSpacePre:
		return "Pre"
	case WhiteSpacePreWrap:
		return "PreWrap"
	case WhiteSpacePreLine:
		return "PreLine"
	case WhiteSpaceBreakSpaces:
		return "BreakSpaces"
	default:
		return unknownStr
	}
}

// Collapses reports whether consecutive whitespace collapses to one space.
func (w WhiteSpace) Collapses() bool {
	return w == WhiteSpaceNormal || w == WhiteSpaceNoWrap || w == WhiteSpacePreLine
}

// Wraps reports whether soft wrapping is allowed.
func (w WhiteSpace) Wraps() bool {
	switch w {
	case WhiteSpaceNormal, WhiteSpacePreWrap, WhiteSpacePreLine, WhiteSpaceBreakSpaces:
		return true
	default:
		return false
	}
}

// WordBreak follows the CSS word-break property.
type WordBreak int

const (
	WordBreakNormal WordBreak = iota
	WordBreakBreakAll
	WordBreakKeepAll
)

// String returns the string representation of the word-break value.
func (w WordBreak) String() string {
	switch w {
	case WordBreakNormal:
		return "Normal"
	case WordBreakBreakAll:
		return "BreakAll"
	case WordBreakKeepAll:
		return "KeepAll"
	default:
		return unknownStr
	}
}

// OverflowWrap follows the CSS overflow-wrap property.
type OverflowWrap int

const (
	OverflowWrapNormal OverflowWrap = iota
	OverflowWrapBreakWord
	OverflowWrapAnywhere
)

// String returns the string representation of the overflow-wrap value.
func (o OverflowWrap) String() string {
	switch o {
	case OverflowWrapNormal:
		return "Normal"
	case OverflowWrapBreakWord:
		return "BreakWord"
	case OverflowWrapAnywhere:
		return "Anywhere"
	default:
		return unknownStr
	}
}

// LineBreakMode follows the CSS line-break property, plus the legacy
// after-white-space value that only affects trailing whitespace trimming.
type LineBreakMode int

const (
	LineBreakAuto LineBreakMode = iota
	LineBreakLoose
	LineBreakNormal
	LineBreakStrict
	LineBreakAnywhere
	LineBreakAfterWhiteSpace
)

// String returns the string representation of the line-break value.
func (l LineBreakMode) String() string {
	switch l {
	case LineBreakAuto:
		return "Auto"
	case LineBreakLoose:
		return "Loose"
	case LineBreakNormal:
		return "Normal"
	case LineBreakStrict:
		return "Strict"
	case LineBreakAnywhere:
		return "Anywhere"
	case LineBreakAfterWhiteSpace:
		return "AfterWhiteSpace"
	default:
		return unknownStr
	}
}

// Hyphens follows the CSS hyphens property.
type Hyphens int

const (
	HyphensManual Hyphens = iota
	HyphensNone
	HyphensAuto
)

// String returns the string representation of the hyphens value.
func (h Hyphens) String() string {
	switch h {
	case HyphensManual:
		return "Manual"
	case HyphensNone:
		return "None"
	case HyphensAuto:
		return "Auto"
	default:
		return unknownStr
	}
}

// TextAlign follows the CSS text-align property.
type TextAlign int

const (
	TextAlignStart TextAlign = iota
	TextAlignEnd
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
)

// String returns the string representation of the text-align value.
func (a TextAlign) String() string {
	switch a {
	case TextAlignStart:
		return "Start"
	case TextAlignEnd:
		return "End"
	case TextAlignLeft:
		return "Left"
	case TextAlignRight:
		return "Right"
	case TextAlignCenter:
		return "Center"
	case TextAlignJustify:
		return "Justify"
	default:
		return unknownStr
	}
}

// TextAlignLast follows the CSS text-align-last property.
type TextAlignLast int

const (
	TextAlignLastAuto TextAlignLast = iota
	TextAlignLastStart
	TextAlignLastEnd
	TextAlignLastLeft
	TextAlignLastRight
	TextAlignLastCenter
	TextAlignLastJustify
)

// String returns the string representation of the text-align-last value.
func (a TextAlignLast) String() string {
	switch a {
	case TextAlignLastAuto:
		return "Auto"
	case TextAlignLastStart:
		return "Start"
	case TextAlignLastEnd:
		return "End"
	case TextAlignLastLeft:
		return "Left"
	case TextAlignLastRight:
		return "Right"
	case TextAlignLastCenter:
		return "Center"
	case TextAlignLastJustify:
		return "Justify"
	default:
		return unknownStr
	}
}

// TextJustify follows the CSS text-justify property.
type TextJustify int

const (
	TextJustifyAuto TextJustify = iota
	TextJustifyInterWord
	TextJustifyInterCharacter
	TextJustifyNone
)

// String returns the string representation of the text-justify value.
func (t TextJustify) String() string {
	switch t {
	case TextJustifyAuto:
		return "Auto"
	case TextJustifyInterWord:
		return "InterWord"
	case TextJustifyInterCharacter:
		return "InterCharacter"
	case TextJustifyNone:
		return "None"
	default:
		return unknownStr
	}
}

// BoxDecorationBreak follows the CSS box-decoration-break property. With
// Clone, an inline box broken across lines repeats its border and padding
// on every fragment, which widens content already committed to the line
// whenever a break lands inside the box.
type BoxDecorationBreak int

const (
	BoxDecorationBreakSlice BoxDecorationBreak = iota
	BoxDecorationBreakClone
)

// String returns the string representation of the box-decoration-break value.
func (b BoxDecorationBreak) String() string {
	switch b {
	case BoxDecorationBreakSlice:
		return "Slice"
	case BoxDecorationBreakClone:
		return "Clone"
	default:
		return unknownStr
	}
}

// UnicodeBidi follows the CSS unicode-bidi property, reduced to the values
// that change line-level behavior.
type UnicodeBidi int

const (
	UnicodeBidiNormal UnicodeBidi = iota
	UnicodeBidiIsolate
	UnicodeBidiPlaintext
)

// String returns the string representation of the unicode-bidi value.
func (u UnicodeBidi) String() string {
	switch u {
	case UnicodeBidiNormal:
		return "Normal"
	case UnicodeBidiIsolate:
		return "Isolate"
	case UnicodeBidiPlaintext:
		return "Plaintext"
	default:
		return unknownStr
	}
}

// HangingPunctuation is a bitmask following the CSS hanging-punctuation
// property.
type HangingPunctuation int

const (
	HangFirst HangingPunctuation = 1 << iota
	HangLast
	HangAllowEnd
	HangForceEnd
)

// Style carries the resolved style properties the line-breaking core reads.
// Upstream item construction resolves the cascade; a Style here is shared by
// every item generated from the same element.
type Style struct {
	Direction          Direction
	WhiteSpace         WhiteSpace
	WordBreak          WordBreak
	OverflowWrap       OverflowWrap
	LineBreak          LineBreakMode
	Hyphens            Hyphens
	TextAlign          TextAlign
	TextAlignLast      TextAlignLast
	TextJustify        TextJustify
	UnicodeBidi        UnicodeBidi
	BoxDecorationBreak BoxDecorationBreak
	HangingPunctuation HangingPunctuation

	// TextIndent is the resolved first-line indentation in logical units.
	// Only read on the root style.
	TextIndent float64
	// TextIndentEachLine applies TextIndent to every line, not just the
	// first.
	TextIndentEachLine bool
	// TextIndentHanging inverts which lines are indented.
	TextIndentHanging bool

	// WordSpacing is added at each word separator as a position offset; it
	// never widens the separator run itself.
	WordSpacing float64

	// Face is the shaping face for this style's font, used by the default
	// shaper and metrics. May be nil when a custom Metrics collaborator
	// supplies all widths.
	Face *font.Face
	// FontSize in logical units, for shaping with Face.
	FontSize float64
	// FontID identifies the resolved font. Two runs may share a shaping
	// range only when their FontIDs match.
	FontID int

	// NeedsComplexShaping marks content whose advance depends on its
	// neighbors (cursive scripts, mandatory ligatures). Only such content
	// participates in cross-run shaping ranges.
	NeedsComplexShaping bool
}

// DefaultStyle returns a Style with every property at its initial value.
func DefaultStyle() *Style {
	return &Style{}
}

// WrapsText reports whether soft wrapping is allowed for content with this
// style.
func (s *Style) WrapsText() bool {
	return s.WhiteSpace.Wraps()
}

// HangsTrailingWhitespace reports whether overflowing preserved trailing
// whitespace hangs past the line edge instead of wrapping.
func (s *Style) HangsTrailingWhitespace() bool {
	return s.WhiteSpace == WhiteSpacePreWrap || s.WhiteSpace == WhiteSpaceBreakSpaces
}
