package trimesh

import "github.com/0x0FACED/go-trimesh/pkg/kernel"

// LocationKind classifies the result of a point-location query.
type LocationKind int

const (
	InFace LocationKind = iota
	OnEdge
	OnNode
	OutsideMesh
)

func (k LocationKind) String() string {
	switch k {
	case InFace:
		return "in-face"
	case OnEdge:
		return "on-edge"
	case OnNode:
		return "on-node"
	default:
		return "outside-mesh"
	}
}

// Location is the result of Locate: the kind plus the handle it refers to.
// Only the handle matching the kind is set (Edge is also set for
// OutsideMesh when the walk crossed a boundary edge).
type Location struct {
	Kind LocationKind
	Face FaceHandle
	Node NodeHandle
	Edge EdgeHandle
}

// Locate finds where p lies relative to the mesh, starting the walk at an
// arbitrary face. On a mesh with no faces it reports OutsideMesh.
func (m *Mesh) Locate(p kernel.Point2) Location {
	for f := range m.Faces() {
		return m.LocateFrom(p, f)
	}
	return Location{Kind: OutsideMesh}
}

// LocateFrom runs a visibility walk from start: it repeatedly tests p
// against the directed edges of the current triangle and crosses any edge
// that has p strictly on its right. A query collinear with an edge but
// outside its extent crosses that edge like a right-side result. The walk
// is guaranteed to terminate only on Delaunay-like meshes, so after a
// number of steps proportional to the face count it falls back to scanning
// all faces.
func (m *Mesh) LocateFrom(p kernel.Point2, start FaceHandle) Location {
	heStart := m.face(start).he
	he := heStart

	maxSteps := 4*(m.numFaces+1) + 16
	for steps := 0; steps < maxSteps; steps++ {
		a := m.node(m.he(he).origin).pos
		b := m.node(m.he(he.Pair()).origin).pos

		switch m.kern.OrientedSide(a, b, p) {
		case kernel.PositiveSide:
			he = m.he(he).next
			if he == heStart {
				return Location{Kind: InFace, Face: m.he(he).face}
			}
			continue

		case kernel.OnBoundary:
			if (min(a.X, b.X) < p.X && p.X < max(a.X, b.X)) ||
				(min(a.Y, b.Y) < p.Y && p.Y < max(a.Y, b.Y)) {
				return Location{Kind: OnEdge, Edge: he.Edge()}
			}
			if p == a {
				return Location{Kind: OnNode, Node: m.he(he).origin}
			}
			if p == b {
				return Location{Kind: OnNode, Node: m.he(he.Pair()).origin}
			}
			// collinear but beyond the edge: cross it
		}

		if m.he(he.Pair()).face.IsNil() {
			return Location{Kind: OutsideMesh, Edge: he.Edge()}
		}
		he = he.Pair()
		heStart = he
		he = m.he(he).next
	}

	return m.locateScan(p)
}

// locateScan classifies p against every face in turn. Used as the
// termination fallback for degenerate walks; for an outside point it
// cannot name a crossed boundary edge, so Location.Edge stays nil.
func (m *Mesh) locateScan(p kernel.Point2) Location {
	for f := range m.Faces() {
		h1 := m.face(f).he
		h2 := m.he(h1).next
		h3 := m.he(h2).next

		inside := true
		var onHe HalfedgeHandle
		for _, h := range [3]HalfedgeHandle{h1, h2, h3} {
			a := m.node(m.he(h).origin).pos
			b := m.node(m.he(h.Pair()).origin).pos
			switch m.kern.OrientedSide(a, b, p) {
			case kernel.NegativeSide:
				inside = false
			case kernel.OnBoundary:
				if p == a {
					return Location{Kind: OnNode, Node: m.he(h).origin}
				}
				if p == b {
					return Location{Kind: OnNode, Node: m.he(h.Pair()).origin}
				}
				onHe = h
			}
			if !inside {
				break
			}
		}
		if !inside {
			continue
		}
		if !onHe.IsNil() {
			return Location{Kind: OnEdge, Edge: onHe.Edge()}
		}
		return Location{Kind: InFace, Face: f}
	}
	return Location{Kind: OutsideMesh}
}
