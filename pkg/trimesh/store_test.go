package trimesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreHandleStability(t *testing.T) {
	var s store

	n1 := s.newNode()
	n2 := s.newNode()
	n3 := s.newNode()
	require.Equal(t, 3, s.numNodes)

	s.deleteNode(n2)
	require.Equal(t, 2, s.numNodes)

	// handles of live nodes survive unrelated deletions and allocations
	for i := 0; i < 10; i++ {
		s.newNode()
	}
	assert.NotPanics(t, func() { s.node(n1) })
	assert.NotPanics(t, func() { s.node(n3) })
}

func TestStoreSlotReuse(t *testing.T) {
	var s store

	n1 := s.newNode()
	s.deleteNode(n1)
	n2 := s.newNode()

	// the slot is recycled, the old handle is not
	assert.Equal(t, n1.idx, n2.idx)
	assert.NotEqual(t, n1, n2)
	assert.NotPanics(t, func() { s.node(n2) })
	assert.Panics(t, func() { s.node(n1) })
}

func TestStoreStaleHandlePanics(t *testing.T) {
	var s store

	n := s.newNode()
	e := s.newEdge()
	f := s.newFace()

	s.deleteNode(n)
	s.deleteEdge(e)
	s.deleteFace(f)

	assert.Panics(t, func() { s.node(n) })
	assert.Panics(t, func() { s.edge(e) })
	assert.Panics(t, func() { s.face(f) })
	assert.Panics(t, func() { s.he(e.Halfedge(0)) })
}

func TestStoreNilHandlePanics(t *testing.T) {
	var s store

	assert.Panics(t, func() { s.node(NodeHandle{}) })
	assert.Panics(t, func() { s.edge(EdgeHandle{}) })
	assert.Panics(t, func() { s.face(FaceHandle{}) })
}

func TestNewEdgeStub(t *testing.T) {
	var s store

	e := s.newEdge()
	he1 := e.Halfedge(0)
	he2 := e.Halfedge(1)

	assert.Equal(t, he2, he1.Pair())
	assert.Equal(t, he1, he2.Pair())
	assert.NotEqual(t, he1, he1.Pair())
	assert.Equal(t, he1, he1.Pair().Pair())

	// stub linkage: each dart cycles through its pair
	assert.Equal(t, he2, s.he(he1).next)
	assert.Equal(t, he2, s.he(he1).prev)
	assert.Equal(t, he1, s.he(he2).next)
	assert.Equal(t, he1, s.he(he2).prev)

	assert.True(t, s.he(he1).origin.IsNil())
	assert.True(t, s.he(he1).face.IsNil())
	assert.True(t, s.he(he2).origin.IsNil())
	assert.True(t, s.he(he2).face.IsNil())
}

func TestNilHandles(t *testing.T) {
	assert.True(t, NodeHandle{}.IsNil())
	assert.True(t, EdgeHandle{}.IsNil())
	assert.True(t, FaceHandle{}.IsNil())
	assert.True(t, HalfedgeHandle{}.IsNil())

	var s store
	assert.False(t, s.newNode().IsNil())
	assert.False(t, s.newEdge().IsNil())
	assert.False(t, s.newFace().IsNil())
}
