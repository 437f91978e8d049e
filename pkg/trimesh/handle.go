package trimesh

import "fmt"

// Handles are stable references into the mesh store. The zero value of every
// handle kind is the nil handle. A handle carries the generation of the slot
// it was created for, so dereferencing a handle after its entity has been
// deleted is detected and panics.

type NodeHandle struct {
	idx int32
	gen int32
}

type EdgeHandle struct {
	idx int32
	gen int32
}

type FaceHandle struct {
	idx int32
	gen int32
}

// HalfedgeHandle names one of the two oriented darts of an edge. The pair
// relation is implicit: the other dart of the same edge. That makes the
// pair involution (h.Pair().Pair() == h, h.Pair() != h) hold by
// construction.
type HalfedgeHandle struct {
	edge EdgeHandle
	side uint8 // 0 or 1
}

func (h NodeHandle) IsNil() bool { return h.gen == 0 }
func (h EdgeHandle) IsNil() bool { return h.gen == 0 }
func (h FaceHandle) IsNil() bool { return h.gen == 0 }

func (h HalfedgeHandle) IsNil() bool { return h.edge.IsNil() }

// Pair returns the oppositely oriented halfedge of the same edge.
func (h HalfedgeHandle) Pair() HalfedgeHandle {
	return HalfedgeHandle{edge: h.edge, side: h.side ^ 1}
}

// Edge returns the edge the halfedge belongs to.
func (h HalfedgeHandle) Edge() EdgeHandle { return h.edge }

// Halfedge returns the dart of e with the given side (0 for he1, 1 for he2).
func (e EdgeHandle) Halfedge(side int) HalfedgeHandle {
	if side != 0 && side != 1 {
		panic(fmt.Sprintf("trimesh: halfedge side out of range: %d", side))
	}
	return HalfedgeHandle{edge: e, side: uint8(side)}
}

func (h NodeHandle) String() string { return fmt.Sprintf("n%d@%d", h.idx, h.gen) }
func (h EdgeHandle) String() string { return fmt.Sprintf("e%d@%d", h.idx, h.gen) }
func (h FaceHandle) String() string { return fmt.Sprintf("f%d@%d", h.idx, h.gen) }

func (h HalfedgeHandle) String() string {
	return fmt.Sprintf("h%d.%d@%d", h.edge.idx, h.side, h.edge.gen)
}
