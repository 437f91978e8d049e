package kernel

import "math"

// Point2 is a point in the Euclidean plane.
type Point2 struct {
	X float64
	Y float64
}

// BoundingBox is an axis-aligned rectangle: Xl..Xr horizontally,
// Yb..Yt vertically. A box with Xl > Xr is empty.
type BoundingBox struct {
	Xl, Xr, Yb, Yt float64
}

// NewBoundingBox returns the box spanning xl..xr, yb..yt.
func NewBoundingBox(xl, xr, yb, yt float64) BoundingBox {
	return BoundingBox{xl, xr, yb, yt}
}

// EmptyBoundingBox returns the identity element for Expand.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
}

func (b BoundingBox) IsEmpty() bool {
	return b.Xl > b.Xr || b.Yb > b.Yt
}

// Expand grows the box to cover p.
func (b BoundingBox) Expand(p Point2) BoundingBox {
	return BoundingBox{
		Xl: math.Min(b.Xl, p.X),
		Xr: math.Max(b.Xr, p.X),
		Yb: math.Min(b.Yb, p.Y),
		Yt: math.Max(b.Yt, p.Y),
	}
}

func (b BoundingBox) Width() float64  { return b.Xr - b.Xl }
func (b BoundingBox) Height() float64 { return b.Yt - b.Yb }
