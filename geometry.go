package inline

// Point is a position in the inline formatting context's coordinate space,
// in logical units (X grows toward line-end, Y grows toward block-end).
type Point struct {
	X, Y float64
}

// Rect is a logical rectangle. Top/Left name the block-start and line-start
// edges; Width and Height are extents, never negative.
type Rect struct {
	Top, Left     float64
	Width, Height float64
}

// Right returns the line-end edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the block-end edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// WithHeight returns a copy of r with the given height.
func (r Rect) WithHeight(h float64) Rect {
	r.Height = h
	return r
}

// IntersectsVertically reports whether the vertical span [top, bottom)
// overlaps r.
func (r Rect) IntersectsVertically(top, bottom float64) bool {
	return top < r.Bottom() && bottom > r.Top
}
