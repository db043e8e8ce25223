package inline

import "errors"

// Sentinel errors for the inline package.
var (
	// ErrNoMetrics is returned when a LineBuilder is constructed without a
	// Metrics collaborator.
	ErrNoMetrics = errors.New("inline: metrics collaborator is required")

	// ErrEmptyItemList is returned when a LineBuilder is constructed with no
	// inline items.
	ErrEmptyItemList = errors.New("inline: item list cannot be empty")

	// ErrRangeOutOfBounds is returned when a layout range does not fall
	// within the builder's item list.
	ErrRangeOutOfBounds = errors.New("inline: layout range out of bounds")
)

// debugAssertions enables internal consistency checks. The checks guard
// against caller defects (malformed item lists, out-of-range bidi levels);
// with assertions off the same conditions degrade to a safe fallback and a
// warning log instead.
const debugAssertions = false

// assert panics with msg when debugAssertions is on and cond is false.
// Release builds log and continue; callers must still handle the condition.
func assert(cond bool, msg string) {
	if debugAssertions && !cond {
		panic("inline: assertion failed: " + msg)
	}
	if !cond {
		Logger().Warn("inline: internal inconsistency", "detail", msg)
	}
}
