package kernel

import "math/big"

// Side classifies a point against a directed line.
type Side int

const (
	NegativeSide Side = -1 // strictly to the right of a->b
	OnBoundary   Side = 0  // exactly on the line through a and b
	PositiveSide Side = 1  // strictly to the left of a->b
)

func (s Side) String() string {
	switch s {
	case NegativeSide:
		return "negative"
	case PositiveSide:
		return "positive"
	default:
		return "on-boundary"
	}
}

// ccwErrBound is the relative error bound for the float evaluation of the
// 2x2 orientation determinant: (3 + 16*eps)*eps with eps = 2^-53. When the
// computed determinant is smaller in magnitude than this bound times the
// magnitude of the terms, the sign cannot be trusted and the predicate
// escalates to exact arithmetic.
const ccwErrBound = 3.3306690738754716e-16

// OrientedSide reports on which side of the directed line a->b the point p
// lies. The result is exact: the fast float path is used only when a
// conservative error bound certifies its sign, otherwise the determinant is
// re-evaluated in rational arithmetic.
func OrientedSide(a, b, p Point2) Side {
	detLeft := (a.X - p.X) * (b.Y - p.Y)
	detRight := (a.Y - p.Y) * (b.X - p.X)
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return sign(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return sign(det)
		}
		detSum = -detLeft - detRight
	default:
		// detLeft == 0, so det == -detRight and is computed exactly
		return sign(det)
	}

	errBound := ccwErrBound * detSum
	if det >= errBound || -det >= errBound {
		return sign(det)
	}

	return orientExact(a, b, p)
}

func sign(det float64) Side {
	switch {
	case det > 0:
		return PositiveSide
	case det < 0:
		return NegativeSide
	default:
		return OnBoundary
	}
}

// orientExact evaluates the orientation determinant with big.Rat. Every
// float64 is representable as a rational, so the sign is exact.
func orientExact(a, b, p Point2) Side {
	ax, ay := new(big.Rat).SetFloat64(a.X), new(big.Rat).SetFloat64(a.Y)
	bx, by := new(big.Rat).SetFloat64(b.X), new(big.Rat).SetFloat64(b.Y)
	px, py := new(big.Rat).SetFloat64(p.X), new(big.Rat).SetFloat64(p.Y)

	left := new(big.Rat).Mul(ax.Sub(ax, px), by.Sub(by, py))
	right := new(big.Rat).Mul(ay.Sub(ay, py), bx.Sub(bx, px))

	return Side(left.Sub(left, right).Sign())
}

// Adaptive is the default exact kernel. The zero value is ready to use.
type Adaptive struct{}

func (Adaptive) OrientedSide(a, b, p Point2) Side {
	return OrientedSide(a, b, p)
}
