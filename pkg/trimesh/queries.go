package trimesh

import (
	"fmt"
	"iter"

	"github.com/0x0FACED/go-trimesh/pkg/kernel"
)

// Read accessors. All of them panic on a stale handle.

// Position returns the position of n.
func (m *Mesh) Position(n NodeHandle) kernel.Point2 { return m.node(n).pos }

// NodeHalfedge returns an outgoing halfedge of n, nil when n is isolated.
func (m *Mesh) NodeHalfedge(n NodeHandle) HalfedgeHandle { return m.node(n).he }

// IsIsolated reports whether n has no incident edges.
func (m *Mesh) IsIsolated(n NodeHandle) bool { return m.node(n).he.IsNil() }

// Origin returns the node h originates at.
func (m *Mesh) Origin(h HalfedgeHandle) NodeHandle { return m.he(h).origin }

// Target returns the node h points at, i.e. the origin of its pair.
func (m *Mesh) Target(h HalfedgeHandle) NodeHandle { return m.he(h.Pair()).origin }

// Next returns the successor of h in its face (or boundary) cycle.
func (m *Mesh) Next(h HalfedgeHandle) HalfedgeHandle { return m.he(h).next }

// Prev returns the predecessor of h in its face (or boundary) cycle.
func (m *Mesh) Prev(h HalfedgeHandle) HalfedgeHandle { return m.he(h).prev }

// FaceOf returns the face incident to h, nil for a boundary halfedge.
func (m *Mesh) FaceOf(h HalfedgeHandle) FaceHandle { return m.he(h).face }

// IsBoundary reports whether h faces the unbounded outer region.
func (m *Mesh) IsBoundary(h HalfedgeHandle) bool { return m.he(h).face.IsNil() }

// FaceHalfedge returns a halfedge on the boundary of f.
func (m *Mesh) FaceHalfedge(f FaceHandle) HalfedgeHandle { return m.face(f).he }

// Client payload slots.

func (m *Mesh) NodeData(n NodeHandle) any       { return m.node(n).data }
func (m *Mesh) SetNodeData(n NodeHandle, d any) { m.node(n).data = d }
func (m *Mesh) EdgeData(e EdgeHandle) any       { return m.edge(e).data }
func (m *Mesh) SetEdgeData(e EdgeHandle, d any) { m.edge(e).data = d }
func (m *Mesh) FaceData(f FaceHandle) any       { return m.face(f).data }
func (m *Mesh) SetFaceData(f FaceHandle, d any) { m.face(f).data = d }

// Entity counts.

func (m *Mesh) NumNodes() int { return m.numNodes }
func (m *Mesh) NumEdges() int { return m.numEdges }
func (m *Mesh) NumFaces() int { return m.numFaces }

// Nodes enumerates the live nodes in storage order. The order is stable as
// long as the mesh is not mutated.
func (m *Mesh) Nodes() iter.Seq[NodeHandle] {
	return func(yield func(NodeHandle) bool) {
		for i := range m.nodes {
			if rec := &m.nodes[i]; rec.alive {
				if !yield(NodeHandle{idx: int32(i), gen: rec.gen}) {
					return
				}
			}
		}
	}
}

// Edges enumerates the live edges in storage order.
func (m *Mesh) Edges() iter.Seq[EdgeHandle] {
	return func(yield func(EdgeHandle) bool) {
		for i := range m.edges {
			if rec := &m.edges[i]; rec.alive {
				if !yield(EdgeHandle{idx: int32(i), gen: rec.gen}) {
					return
				}
			}
		}
	}
}

// Faces enumerates the live faces in storage order.
func (m *Mesh) Faces() iter.Seq[FaceHandle] {
	return func(yield func(FaceHandle) bool) {
		for i := range m.faces {
			if rec := &m.faces[i]; rec.alive {
				if !yield(FaceHandle{idx: int32(i), gen: rec.gen}) {
					return
				}
			}
		}
	}
}

// BoundingBox reduces the node positions into an axis-aligned box. For a
// mesh with no nodes the empty box is returned.
func (m *Mesh) BoundingBox() kernel.BoundingBox {
	bbox := kernel.EmptyBoundingBox()
	for n := range m.Nodes() {
		bbox = bbox.Expand(m.node(n).pos)
	}
	return bbox
}

// BoundaryHalfedge returns some halfedge facing the outer region, or the
// nil handle when every halfedge is interior (or the mesh has no edges).
func (m *Mesh) BoundaryHalfedge() HalfedgeHandle {
	for e := range m.Edges() {
		if m.he(e.Halfedge(0)).face.IsNil() {
			return e.Halfedge(0)
		}
		if m.he(e.Halfedge(1)).face.IsNil() {
			return e.Halfedge(1)
		}
	}
	return HalfedgeHandle{}
}

// Degree counts the edges incident to n.
func (m *Mesh) Degree(n NodeHandle) int {
	start := m.node(n).he
	if start.IsNil() {
		return 0
	}
	deg := 0
	h := start
	for {
		deg++
		h = m.he(h.Pair()).next
		if h == start {
			return deg
		}
	}
}

// Check validates the half-edge invariants over the whole mesh and returns
// the first violation found, nil if the mesh is consistent.
func (m *Mesh) Check() error {
	for e := range m.Edges() {
		for side := 0; side < 2; side++ {
			h := e.Halfedge(side)
			next := m.he(h).next
			prev := m.he(h).prev
			if m.he(next).prev != h {
				return fmt.Errorf("halfedge %v: next.prev mismatch", h)
			}
			if m.he(prev).next != h {
				return fmt.Errorf("halfedge %v: prev.next mismatch", h)
			}
			if m.he(next).origin != m.he(h.Pair()).origin {
				return fmt.Errorf("halfedge %v: next.origin != pair.origin", h)
			}
			if f := m.he(h).face; !f.IsNil() {
				if m.he(next).face != f {
					return fmt.Errorf("halfedge %v: face not shared with next", h)
				}
				third := m.he(m.he(next).next).next
				if third != h {
					return fmt.Errorf("halfedge %v: face cycle is not a triangle", h)
				}
			}
		}
	}

	for n := range m.Nodes() {
		he := m.node(n).he
		if he.IsNil() {
			continue
		}
		if m.he(he).origin != n {
			return fmt.Errorf("node %v: halfedge does not originate here", n)
		}
	}

	for f := range m.Faces() {
		he := m.face(f).he
		if m.he(he).face != f {
			return fmt.Errorf("face %v: halfedge points at another face", f)
		}
	}

	return nil
}
