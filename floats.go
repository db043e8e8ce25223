package inline

// FloatSide names which edge a float box is pushed toward.
type FloatSide uint8

const (
	FloatLeft FloatSide = iota
	FloatRight
)

// String returns the string representation of the float side.
func (f FloatSide) String() string {
	switch f {
	case FloatLeft:
		return "Left"
	case FloatRight:
		return "Right"
	default:
		return unknownStr
	}
}

// Clear follows the CSS clear property.
type Clear uint8

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

// String returns the string representation of the clear value.
func (c Clear) String() string {
	switch c {
	case ClearNone:
		return "None"
	case ClearLeft:
		return "Left"
	case ClearRight:
		return "Right"
	case ClearBoth:
		return "Both"
	default:
		return unknownStr
	}
}

// FloatGeometry carries the resolved geometry of a floated box.
type FloatGeometry struct {
	Side  FloatSide
	Clear Clear
	// MarginBoxWidth and MarginBoxHeight duplicate the owning Box's margin
	// box; floats are placed by their margin box.
	MarginBoxWidth  float64
	MarginBoxHeight float64
}

// PlacedFloat is a float that has been positioned.
type PlacedFloat struct {
	Box  *Box
	Rect Rect
}

// ConstrainedSides reports which line edges a float pushed in.
type ConstrainedSides struct {
	Start, End bool
}

// IsConstrained reports whether either side is constrained.
func (c ConstrainedSides) IsConstrained() bool { return c.Start || c.End }

// FloatContext positions floats and reports how placed floats constrain
// line boxes. The zero-dependency default is [ExclusionSpace]; callers with
// their own float machinery implement this interface.
type FloatContext interface {
	// IsEmpty reports whether no floats are placed.
	IsEmpty() bool

	// AvoidingRect shrinks rect horizontally to avoid placed floats.
	// marginStart is the line's start margin (text-indent): a float whose
	// intrusion stays within the margin does not constrain the line.
	AvoidingRect(rect Rect, marginStart float64) (Rect, ConstrainedSides)

	// PositionForFloat returns the margin-box top-left for box, placed at
	// or below lineRect.Top inside a containing block of the given width.
	PositionForFloat(box *Box, lineRect Rect, containingBlockWidth float64) Point

	// Place records a positioned float.
	Place(f PlacedFloat)

	// Remove forgets a previously placed float; line reverts unwind float
	// placement through it. Reports whether the float was present.
	Remove(box *Box) bool

	// NextFloatBottom returns the lowest float bottom edge strictly below
	// top: the next vertical position where float constraints can change.
	NextFloatBottom(top float64) (float64, bool)
}

// ExclusionSpace is the default FloatContext: a flat list of placed float
// rects queried by vertical band.
type ExclusionSpace struct {
	floats []PlacedFloat
}

// NewExclusionSpace creates an empty exclusion space.
func NewExclusionSpace() *ExclusionSpace {
	return &ExclusionSpace{}
}

// IsEmpty implements FloatContext.
func (s *ExclusionSpace) IsEmpty() bool { return len(s.floats) == 0 }

// Place implements FloatContext.
func (s *ExclusionSpace) Place(f PlacedFloat) {
	s.floats = append(s.floats, f)
}

// Remove implements FloatContext.
func (s *ExclusionSpace) Remove(box *Box) bool {
	for i := len(s.floats) - 1; i >= 0; i-- {
		if s.floats[i].Box == box {
			s.floats = append(s.floats[:i], s.floats[i+1:]...)
			return true
		}
	}
	return false
}

// NextFloatBottom implements FloatContext.
func (s *ExclusionSpace) NextFloatBottom(top float64) (float64, bool) {
	bottom, found := 0.0, false
	for i := range s.floats {
		b := s.floats[i].Rect.Bottom()
		if b > top && (!found || b < bottom) {
			bottom, found = b, true
		}
	}
	return bottom, found
}

// AvoidingRect implements FloatContext.
func (s *ExclusionSpace) AvoidingRect(rect Rect, marginStart float64) (Rect, ConstrainedSides) {
	left := rect.Left
	right := rect.Right()
	var sides ConstrainedSides
	for i := range s.floats {
		f := &s.floats[i]
		if !f.Rect.IntersectsVertically(rect.Top, rect.Bottom()) {
			continue
		}
		if f.Box.Float.Side == FloatLeft {
			if f.Rect.Right() > left+marginStart {
				left = f.Rect.Right() - marginStart
				sides.Start = true
			}
		} else {
			if f.Rect.Left < right {
				right = f.Rect.Left
				sides.End = true
			}
		}
	}
	if right < left {
		right = left
	}
	return Rect{Top: rect.Top, Left: left, Width: right - left, Height: rect.Height}, sides
}

// PositionForFloat implements FloatContext.
func (s *ExclusionSpace) PositionForFloat(box *Box, lineRect Rect, containingBlockWidth float64) Point {
	g := box.Float
	top := lineRect.Top
	if g.Clear != ClearNone {
		top = max(top, s.clearancePosition(g.Clear))
	}
	if g.Side == FloatLeft {
		x := 0.0
		for i := range s.floats {
			f := &s.floats[i]
			if f.Box.Float.Side != FloatLeft || !f.Rect.IntersectsVertically(top, top+g.MarginBoxHeight) {
				continue
			}
			x = max(x, f.Rect.Right())
		}
		return Point{X: x, Y: top}
	}
	x := containingBlockWidth - g.MarginBoxWidth
	for i := range s.floats {
		f := &s.floats[i]
		if f.Box.Float.Side != FloatRight || !f.Rect.IntersectsVertically(top, top+g.MarginBoxHeight) {
			continue
		}
		x = min(x, f.Rect.Left-g.MarginBoxWidth)
	}
	return Point{X: x, Y: top}
}

// clearancePosition returns the lowest bottom edge among floats the clear
// value applies to.
func (s *ExclusionSpace) clearancePosition(clear Clear) float64 {
	bottom := 0.0
	for i := range s.floats {
		f := &s.floats[i]
		side := f.Box.Float.Side
		applies := clear == ClearBoth ||
			(clear == ClearLeft && side == FloatLeft) ||
			(clear == ClearRight && side == FloatRight)
		if applies {
			bottom = max(bottom, f.Rect.Bottom())
		}
	}
	return bottom
}
