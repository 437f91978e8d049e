package trimesh

import (
	"fmt"

	"github.com/0x0FACED/go-trimesh/pkg/kernel"
	"github.com/0x0FACED/go-trimesh/pkg/logger"
	"go.uber.org/zap"
)

// Kernel decides on which side of the directed line a->b a point lies.
// Results must be exact for collinearity decisions.
type Kernel interface {
	OrientedSide(a, b, p kernel.Point2) kernel.Side
}

// Mesh is a planar, orientable, manifold triangulation kept in a half-edge
// data structure. Faces are triangles; the unbounded outer region is
// represented by boundary halfedges with a nil face. The mesh is not safe
// for concurrent mutation.
type Mesh struct {
	store

	kern Kernel

	Logger *logger.ZapLogger
}

// New creates an empty mesh. A nil kernel defaults to the exact adaptive
// kernel; a nil logger disables logging.
func New(k Kernel, log *logger.ZapLogger) *Mesh {
	if k == nil {
		k = kernel.Adaptive{}
	}
	return &Mesh{kern: k, Logger: log}
}

func (m *Mesh) debug(msg string, fields ...zap.Field) {
	if m.Logger != nil {
		m.Logger.Debug(msg, fields...)
	}
}

func (m *Mesh) logError(msg string, fields ...zap.Field) {
	if m.Logger != nil {
		m.Logger.Error(msg, fields...)
	}
}

// AddNode creates an isolated node at p.
func (m *Mesh) AddNode(p kernel.Point2) NodeHandle {
	n := m.newNode()
	m.node(n).pos = p
	m.debug("[mesh] add node", zap.Stringer("node", n), zap.Any("pos", p))
	return n
}

// RemoveNode removes every edge incident to n, then deletes n.
func (m *Mesh) RemoveNode(n NodeHandle) {
	next := m.node(n).he
	for !m.node(n).he.IsNil() {
		cur := next
		next = m.he(cur.Pair()).next
		m.RemoveEdge(cur.Edge())
	}
	m.debug("[mesh] remove node", zap.Stringer("node", n))
	m.deleteNode(n)
}

// AddEdge creates an edge between n1 and n2 and splices it into the local
// cycles at both endpoints. On success the returned halfedge originates at
// n1. When an endpoint is completely surrounded by faces the attachment
// fails with ErrNonManifoldVertex; if the failing endpoint is n2, the edge
// stays attached at n1. The mesh is altered but remains consistent, and
// it is up to the caller to remove the dangling edge if that is not
// acceptable. AddEdge panics when n1 == n2.
func (m *Mesh) AddEdge(n1, n2 NodeHandle) (HalfedgeHandle, error) {
	if n1 == n2 {
		panic(fmt.Sprintf("trimesh: self-loop edge at %v", n1))
	}

	e := m.newEdge()
	he1 := e.Halfedge(0)
	he2 := e.Halfedge(1)

	if err := m.attachHalfedgeToNode(he1, n1); err != nil {
		// nothing spliced yet, the stub can be thrown away
		m.deleteEdge(e)
		m.logError("[mesh] add edge failed", zap.Stringer("n1", n1), zap.Error(err))
		return HalfedgeHandle{}, fmt.Errorf("attach edge at %v: %w", n1, err)
	}
	if err := m.attachHalfedgeToNode(he2, n2); err != nil {
		m.logError("[mesh] add edge failed", zap.Stringer("n2", n2), zap.Error(err))
		return HalfedgeHandle{}, fmt.Errorf("attach edge at %v: %w", n2, err)
	}

	m.debug("[mesh] add edge", zap.Stringer("edge", e), zap.Stringer("n1", n1), zap.Stringer("n2", n2))
	return he1, nil
}

// RemoveEdge removes the faces incident to e, detaches both halfedges from
// their origins and deletes the edge.
func (m *Mesh) RemoveEdge(e EdgeHandle) {
	he1 := e.Halfedge(0)
	he2 := e.Halfedge(1)

	if f := m.he(he1).face; !f.IsNil() {
		m.RemoveFace(f)
	}
	if f := m.he(he2).face; !f.IsNil() {
		m.RemoveFace(f)
	}

	m.detachEdge(he1)
	m.detachEdge(he2)

	m.debug("[mesh] remove edge", zap.Stringer("edge", e))
	m.deleteEdge(e)
}

// AddFace closes a triangle over three boundary halfedges that form a
// chain: he1 ends where he2 starts, he2 ends where he3 starts, he3 ends
// where he1 starts. The local fans are reordered as needed; when that
// would create a non-manifold mesh, AddFace fails with ErrFaceNonManifold.
// Splices performed before a failure are not rolled back; the mesh stays
// consistent but the fan order around the involved nodes may have changed.
func (m *Mesh) AddFace(he1, he2, he3 HalfedgeHandle) (FaceHandle, error) {
	if !m.he(he1).face.IsNil() || !m.he(he2).face.IsNil() || !m.he(he3).face.IsNil() {
		return FaceHandle{}, ErrFaceNotFree
	}

	if m.he(he1.Pair()).origin != m.he(he2).origin ||
		m.he(he2.Pair()).origin != m.he(he3).origin ||
		m.he(he3.Pair()).origin != m.he(he1).origin {
		return FaceHandle{}, ErrFaceNotChain
	}

	if m.makeAdjacent(he1, he2) != nil ||
		m.makeAdjacent(he2, he3) != nil ||
		m.makeAdjacent(he3, he1) != nil {
		m.logError("[mesh] add face failed", zap.Error(ErrFaceNonManifold))
		return FaceHandle{}, ErrFaceNonManifold
	}

	f := m.newFace()
	m.face(f).he = he1
	m.he(he1).face = f
	m.he(he2).face = f
	m.he(he3).face = f

	m.debug("[mesh] add face", zap.Stringer("face", f))
	return f, nil
}

// RemoveFace detaches f from its three halfedges and deletes it. The
// halfedges become boundary; their next/prev links are untouched, so the
// triangle cycle persists as part of the outer region.
func (m *Mesh) RemoveFace(f FaceHandle) {
	he := m.face(f).he
	m.he(he).face = FaceHandle{}
	m.he(m.he(he).next).face = FaceHandle{}
	m.he(m.he(he).prev).face = FaceHandle{}
	m.debug("[mesh] remove face", zap.Stringer("face", f))
	m.deleteFace(f)
}

// SplitEdge replaces e with a new node at p connected to both former
// endpoints, rebuilding the triangles on each side that had a face: a
// split of an interior edge turns 2 faces into 4, a split of a boundary
// edge turns 1 into 2. Returns the new node.
func (m *Mesh) SplitEdge(e EdgeHandle, p kernel.Point2) (NodeHandle, error) {
	h1 := e.Halfedge(0)
	h2 := e.Halfedge(1)
	n1 := m.he(h1).origin
	n2 := m.he(h2).origin

	var h5, h6, h7, h8 HalfedgeHandle
	var n3, n4 NodeHandle
	hasF1 := !m.he(h1).face.IsNil()
	hasF2 := !m.he(h2).face.IsNil()

	if hasF1 {
		h5 = m.he(h1).next
		h6 = m.he(h1).prev
		n3 = m.he(h6).origin
	}
	if hasF2 {
		h7 = m.he(h2).next
		h8 = m.he(h2).prev
		n4 = m.he(h8).origin
	}

	m.RemoveEdge(e)
	nNew := m.AddNode(p)

	h1, err := m.AddEdge(nNew, n1)
	if err != nil {
		return NodeHandle{}, err
	}
	h2, err = m.AddEdge(nNew, n2)
	if err != nil {
		return NodeHandle{}, err
	}

	if hasF1 {
		h3, err := m.AddEdge(nNew, n3)
		if err != nil {
			return NodeHandle{}, err
		}
		if _, err := m.AddFace(h2, h5, h3.Pair()); err != nil {
			return NodeHandle{}, err
		}
		if _, err := m.AddFace(h3, h6, h1.Pair()); err != nil {
			return NodeHandle{}, err
		}
	}
	if hasF2 {
		h4, err := m.AddEdge(nNew, n4)
		if err != nil {
			return NodeHandle{}, err
		}
		if _, err := m.AddFace(h1, h7, h4.Pair()); err != nil {
			return NodeHandle{}, err
		}
		if _, err := m.AddFace(h4, h8, h2.Pair()); err != nil {
			return NodeHandle{}, err
		}
	}

	m.debug("[mesh] split edge", zap.Stringer("node", nNew))
	return nNew, nil
}

// SplitFace replaces f with three triangles sharing a new node at p.
// Returns the new node.
func (m *Mesh) SplitFace(f FaceHandle, p kernel.Point2) (NodeHandle, error) {
	h1 := m.face(f).he
	h2 := m.he(h1).next
	h3 := m.he(h1).prev

	m.RemoveFace(f)
	nNew := m.AddNode(p)

	h4, err := m.AddEdge(nNew, m.he(h1).origin)
	if err != nil {
		return NodeHandle{}, err
	}
	h5, err := m.AddEdge(nNew, m.he(h2).origin)
	if err != nil {
		return NodeHandle{}, err
	}
	h6, err := m.AddEdge(nNew, m.he(h3).origin)
	if err != nil {
		return NodeHandle{}, err
	}

	if _, err := m.AddFace(h4, h1, h5.Pair()); err != nil {
		return NodeHandle{}, err
	}
	if _, err := m.AddFace(h5, h2, h6.Pair()); err != nil {
		return NodeHandle{}, err
	}
	if _, err := m.AddFace(h6, h3, h4.Pair()); err != nil {
		return NodeHandle{}, err
	}

	m.debug("[mesh] split face", zap.Stringer("node", nNew))
	return nNew, nil
}
