package trimesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-trimesh/pkg/kernel"
)

func TestLocateSingleTriangle(t *testing.T) {
	m, nodes, hes, f := singleTriangle(t)

	loc := m.Locate(kernel.Point2{X: 0.25, Y: 0.25})
	assert.Equal(t, InFace, loc.Kind)
	assert.Equal(t, f, loc.Face)

	loc = m.Locate(kernel.Point2{X: 0.5, Y: 0})
	assert.Equal(t, OnEdge, loc.Kind)
	assert.Equal(t, hes[0].Edge(), loc.Edge)

	loc = m.Locate(kernel.Point2{X: 1, Y: 0})
	assert.Equal(t, OnNode, loc.Kind)
	assert.Equal(t, nodes[1], loc.Node)

	loc = m.Locate(kernel.Point2{X: 2, Y: 0})
	assert.Equal(t, OutsideMesh, loc.Kind)
	assert.False(t, loc.Edge.IsNil())
	assert.True(t, m.IsBoundary(loc.Edge.Halfedge(0)) || m.IsBoundary(loc.Edge.Halfedge(1)))
}

func TestLocateEmptyMesh(t *testing.T) {
	m := New(nil, nil)

	loc := m.Locate(kernel.Point2{X: 0, Y: 0})
	assert.Equal(t, OutsideMesh, loc.Kind)
}

func TestLocateOnCenterNode(t *testing.T) {
	m, _, center := squareWithCenter(t)

	loc := m.Locate(kernel.Point2{X: 0.5, Y: 0.5})
	assert.Equal(t, OnNode, loc.Kind)
	assert.Equal(t, center, loc.Node)
}

func TestLocateFromAnyStartFace(t *testing.T) {
	m, _, _ := squareWithCenter(t)
	p := kernel.Point2{X: 0.8, Y: 0.1}

	want := m.Locate(p)
	require.Equal(t, InFace, want.Kind)

	// the walk must converge to the same face from every start
	for f := range m.Faces() {
		loc := m.LocateFrom(p, f)
		assert.Equal(t, InFace, loc.Kind)
		assert.Equal(t, want.Face, loc.Face)
	}
}

func TestLocateOutsideFromInterior(t *testing.T) {
	m, _, _ := squareWithCenter(t)

	loc := m.Locate(kernel.Point2{X: -3, Y: 0.5})
	assert.Equal(t, OutsideMesh, loc.Kind)
	require.False(t, loc.Edge.IsNil())
	assert.True(t, m.IsBoundary(loc.Edge.Halfedge(0)) || m.IsBoundary(loc.Edge.Halfedge(1)))
}

func TestLocateAfterRefinement(t *testing.T) {
	m, _, _, f := singleTriangle(t)

	n, err := m.SplitFace(f, kernel.Point2{X: 0.25, Y: 0.25})
	require.NoError(t, err)
	require.NoError(t, m.Check())

	loc := m.Locate(kernel.Point2{X: 0.25, Y: 0.25})
	assert.Equal(t, OnNode, loc.Kind)
	assert.Equal(t, n, loc.Node)

	loc = m.Locate(kernel.Point2{X: 0.1, Y: 0.05})
	assert.Equal(t, InFace, loc.Kind)
	assert.Equal(t, loc.Face, m.locateScan(kernel.Point2{X: 0.1, Y: 0.05}).Face)
}

func TestLocateScanMatchesWalk(t *testing.T) {
	m, _, _ := squareWithCenter(t)

	points := []kernel.Point2{
		{X: 0.1, Y: 0.5},
		{X: 0.9, Y: 0.5},
		{X: 0.5, Y: 0.1},
		{X: 0.5, Y: 0.9},
	}
	for _, p := range points {
		walk := m.Locate(p)
		scan := m.locateScan(p)
		assert.Equal(t, walk.Kind, scan.Kind, "point %v", p)
		assert.Equal(t, walk.Face, scan.Face, "point %v", p)
	}
}
