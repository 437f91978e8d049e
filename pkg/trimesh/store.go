package trimesh

import (
	"fmt"

	"github.com/0x0FACED/go-trimesh/pkg/kernel"
)

// The store keeps every entity in flat slices and hands out generational
// handles. Deleting an entity bumps the slot generation and pushes the slot
// onto a free list, so allocation and deallocation are O(1) and handles stay
// valid until their entity is deleted. A stale handle panics on
// dereference instead of silently reading recycled memory.

type nodeRec struct {
	gen   int32
	alive bool
	pos   kernel.Point2
	he    HalfedgeHandle // outgoing; nil when the node is isolated
	data  any
}

type halfedgeRec struct {
	origin NodeHandle
	next   HalfedgeHandle
	prev   HalfedgeHandle
	face   FaceHandle // nil for boundary halfedges
}

type edgeRec struct {
	gen   int32
	alive bool
	he    [2]halfedgeRec
	data  any
}

type faceRec struct {
	gen   int32
	alive bool
	he    HalfedgeHandle
	data  any
}

type store struct {
	nodes []nodeRec
	edges []edgeRec
	faces []faceRec

	freeNodes []int32
	freeEdges []int32
	freeFaces []int32

	numNodes int
	numEdges int
	numFaces int
}

func (s *store) newNode() NodeHandle {
	var idx int32
	if n := len(s.freeNodes); n > 0 {
		idx = s.freeNodes[n-1]
		s.freeNodes = s.freeNodes[:n-1]
	} else {
		idx = int32(len(s.nodes))
		s.nodes = append(s.nodes, nodeRec{})
	}
	rec := &s.nodes[idx]
	rec.gen++
	rec.alive = true
	rec.pos = kernel.Point2{}
	rec.he = HalfedgeHandle{}
	rec.data = nil
	s.numNodes++
	return NodeHandle{idx: idx, gen: rec.gen}
}

// newEdge allocates an edge with both halfedges pre-linked as a stub:
// each dart's next and prev point at its pair, origins and faces are nil.
func (s *store) newEdge() EdgeHandle {
	var idx int32
	if n := len(s.freeEdges); n > 0 {
		idx = s.freeEdges[n-1]
		s.freeEdges = s.freeEdges[:n-1]
	} else {
		idx = int32(len(s.edges))
		s.edges = append(s.edges, edgeRec{})
	}
	rec := &s.edges[idx]
	rec.gen++
	rec.alive = true
	h := EdgeHandle{idx: idx, gen: rec.gen}
	he1 := HalfedgeHandle{edge: h, side: 0}
	he2 := HalfedgeHandle{edge: h, side: 1}
	rec.he[0] = halfedgeRec{next: he2, prev: he2}
	rec.he[1] = halfedgeRec{next: he1, prev: he1}
	rec.data = nil
	s.numEdges++
	return h
}

func (s *store) newFace() FaceHandle {
	var idx int32
	if n := len(s.freeFaces); n > 0 {
		idx = s.freeFaces[n-1]
		s.freeFaces = s.freeFaces[:n-1]
	} else {
		idx = int32(len(s.faces))
		s.faces = append(s.faces, faceRec{})
	}
	rec := &s.faces[idx]
	rec.gen++
	rec.alive = true
	rec.he = HalfedgeHandle{}
	rec.data = nil
	s.numFaces++
	return FaceHandle{idx: idx, gen: rec.gen}
}

func (s *store) deleteNode(h NodeHandle) {
	rec := s.node(h)
	rec.gen++
	rec.alive = false
	rec.data = nil
	s.freeNodes = append(s.freeNodes, h.idx)
	s.numNodes--
}

func (s *store) deleteEdge(h EdgeHandle) {
	rec := s.edge(h)
	rec.gen++
	rec.alive = false
	rec.data = nil
	s.freeEdges = append(s.freeEdges, h.idx)
	s.numEdges--
}

func (s *store) deleteFace(h FaceHandle) {
	rec := s.face(h)
	rec.gen++
	rec.alive = false
	rec.data = nil
	s.freeFaces = append(s.freeFaces, h.idx)
	s.numFaces--
}

func (s *store) node(h NodeHandle) *nodeRec {
	if h.IsNil() || int(h.idx) >= len(s.nodes) {
		panic(fmt.Sprintf("trimesh: invalid node handle %v", h))
	}
	rec := &s.nodes[h.idx]
	if !rec.alive || rec.gen != h.gen {
		panic(fmt.Sprintf("trimesh: use of deleted node %v", h))
	}
	return rec
}

func (s *store) edge(h EdgeHandle) *edgeRec {
	if h.IsNil() || int(h.idx) >= len(s.edges) {
		panic(fmt.Sprintf("trimesh: invalid edge handle %v", h))
	}
	rec := &s.edges[h.idx]
	if !rec.alive || rec.gen != h.gen {
		panic(fmt.Sprintf("trimesh: use of deleted edge %v", h))
	}
	return rec
}

func (s *store) face(h FaceHandle) *faceRec {
	if h.IsNil() || int(h.idx) >= len(s.faces) {
		panic(fmt.Sprintf("trimesh: invalid face handle %v", h))
	}
	rec := &s.faces[h.idx]
	if !rec.alive || rec.gen != h.gen {
		panic(fmt.Sprintf("trimesh: use of deleted face %v", h))
	}
	return rec
}

func (s *store) he(h HalfedgeHandle) *halfedgeRec {
	return &s.edge(h.edge).he[h.side]
}
