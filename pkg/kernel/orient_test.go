package kernel

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientedSideBasic(t *testing.T) {
	a := Point2{X: 0, Y: 0}
	b := Point2{X: 1, Y: 0}

	assert.Equal(t, PositiveSide, OrientedSide(a, b, Point2{X: 0.5, Y: 1}))
	assert.Equal(t, NegativeSide, OrientedSide(a, b, Point2{X: 0.5, Y: -1}))
	assert.Equal(t, OnBoundary, OrientedSide(a, b, Point2{X: 0.5, Y: 0}))
	assert.Equal(t, OnBoundary, OrientedSide(a, b, Point2{X: 2, Y: 0}), "collinear beyond the segment is still on the line")
}

func TestOrientedSideCollinearExact(t *testing.T) {
	// 0.1, 0.2, 0.3 are not round in binary, but the three points still
	// have pairwise equal coordinates, so they lie exactly on y = x.
	a := Point2{X: 0.1, Y: 0.1}
	b := Point2{X: 0.2, Y: 0.2}
	p := Point2{X: 0.3, Y: 0.3}

	assert.Equal(t, OnBoundary, OrientedSide(a, b, p))
}

func TestOrientedSideNearDegenerate(t *testing.T) {
	// One ulp off the diagonal: the float determinant is below the filter
	// threshold and the exact fallback has to decide the sign.
	a := Point2{X: 12, Y: 12}
	b := Point2{X: 36, Y: 36}

	below := Point2{X: math.Nextafter(24, 25), Y: 24}
	above := Point2{X: 24, Y: math.Nextafter(24, 25)}
	on := Point2{X: 24, Y: 24}

	assert.Equal(t, NegativeSide, OrientedSide(a, b, below))
	assert.Equal(t, PositiveSide, OrientedSide(a, b, above))
	assert.Equal(t, OnBoundary, OrientedSide(a, b, on))
}

func TestOrientedSideAntisymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		a := Point2{X: rng.Float64(), Y: rng.Float64()}
		b := Point2{X: rng.Float64(), Y: rng.Float64()}
		p := Point2{X: rng.Float64(), Y: rng.Float64()}

		assert.Equal(t, OrientedSide(a, b, p), -OrientedSide(b, a, p))
	}
}

func TestBoundingBoxExpand(t *testing.T) {
	bbox := EmptyBoundingBox()
	assert.True(t, bbox.IsEmpty())

	bbox = bbox.Expand(Point2{X: 1, Y: 2})
	bbox = bbox.Expand(Point2{X: -3, Y: 5})

	assert.False(t, bbox.IsEmpty())
	assert.Equal(t, NewBoundingBox(-3, 1, 2, 5), bbox)
	assert.Equal(t, 4.0, bbox.Width())
	assert.Equal(t, 3.0, bbox.Height())
}
