// Package inline implements the line-breaking core of an inline formatting
// context: it consumes a pre-resolved list of inline items (text runs, inline
// box boundaries, atomic boxes, floats, breaks) and produces one line of
// content at a time, honoring CSS line-breaking semantics.
//
// The entry point is [LineBuilder]. Each call to [LineBuilder.Layout] places
// as much content as fits between the current position and the end of the
// item range, interleaving float placement, and returns a [LineLayoutResult]
// describing the committed runs, geometry, float outcome, and visual order.
//
// The core is split the way the work divides:
//
//   - candidate construction walks the item list up to the next soft wrap
//     opportunity and measures it ([LineCandidate]),
//   - fitting is a pure decision function over the candidate and the current
//     line state ([ContentBreaker]),
//   - line accumulation owns committed runs and trailing-content bookkeeping
//     ([Line]),
//   - [LineBuilder] drives the loop and handles reverts, floats, and
//     finalization.
//
// Measurement, shaping, bidi reordering, float positioning, hyphenation and
// ruby alignment are collaborator interfaces ([Metrics], [Shaper],
// [Reorderer], [FloatContext], [Hyphenator], [RubyAligner]); defaults are
// provided where a self-contained implementation exists.
//
// The package produces no log output by default. Call [SetLogger] to enable
// diagnostics.
package inline
