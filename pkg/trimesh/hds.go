package trimesh

// Connectivity core: the low-level splicing operations the facade is built
// from. Every helper either keeps the half-edge invariants intact or
// returns ErrNonManifoldVertex and leaves the already performed splices in
// place (the mesh stays internally consistent either way).

// attachHalfedgeToNode sets he's origin to n and splices he into the local
// cycle at n. For an isolated node the edge stub becomes the whole cycle;
// otherwise he is inserted into a boundary gap of the fan. Fails when the
// fan has no gap, i.e. n is completely surrounded by faces.
func (m *Mesh) attachHalfedgeToNode(he HalfedgeHandle, n NodeHandle) error {
	m.he(he).origin = n

	nr := m.node(n)
	if nr.he.IsNil() {
		nr.he = he
		pair := he.Pair()
		m.he(he).prev = pair
		m.he(pair).next = he
		return nil
	}

	freeIn, err := m.findFreeIncident(n)
	if err != nil {
		return err
	}
	freeOut := m.he(freeIn).next

	m.he(freeIn).next = he
	m.he(he).prev = freeIn
	pair := he.Pair()
	m.he(pair).next = freeOut
	m.he(freeOut).prev = pair
	return nil
}

// findFreeIncident walks the incoming halfedges around n and returns the
// first boundary one. n must not be isolated.
func (m *Mesh) findFreeIncident(n NodeHandle) (HalfedgeHandle, error) {
	start := m.node(n).he.Pair()
	h := start
	for {
		if m.he(h).face.IsNil() {
			return h, nil
		}
		h = m.he(h).next.Pair()
		if h == start {
			return HalfedgeHandle{}, ErrNonManifoldVertex
		}
	}
}

// findFreeIncidentBetween walks the incoming halfedges from h1 (exclusive
// of h2) and returns the first boundary one. h1 and h2 must point at the
// same node.
func (m *Mesh) findFreeIncidentBetween(h1, h2 HalfedgeHandle) (HalfedgeHandle, error) {
	for {
		if m.he(h1).face.IsNil() {
			return h1, nil
		}
		h1 = m.he(h1).next.Pair()
		if h1 == h2 {
			return HalfedgeHandle{}, ErrNonManifoldVertex
		}
	}
}

// makeAdjacent rearranges the fan at out's origin so that in.next == out,
// the precondition for closing a face over them. The cycle hanging off out
// is relocated into a free gap of the fan.
func (m *Mesh) makeAdjacent(in, out HalfedgeHandle) error {
	if m.he(in).next == out {
		return nil
	}

	b := m.he(in).next
	d := m.he(out).prev

	g, err := m.findFreeIncidentBetween(out.Pair(), in)
	if err != nil {
		return err
	}
	h := m.he(g).next

	m.he(in).next = out
	m.he(out).prev = in
	m.he(g).next = b
	m.he(b).prev = g
	m.he(d).next = h
	m.he(h).prev = d
	return nil
}

// detachEdge splices he out of the cycle at its origin. If the origin's
// representative halfedge is he, it is promoted to the next outgoing
// halfedge, or cleared when he was the last incident edge.
func (m *Mesh) detachEdge(he HalfedgeHandle) {
	nr := m.node(m.he(he).origin)
	pairNext := m.he(he.Pair()).next

	if nr.he == he {
		if pairNext != he {
			nr.he = pairNext
		} else {
			nr.he = HalfedgeHandle{}
		}
	}

	prev := m.he(he).prev
	m.he(prev).next = pairNext
	m.he(pairNext).prev = prev
}
