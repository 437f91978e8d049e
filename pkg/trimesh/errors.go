package trimesh

import (
	"errors"
	"fmt"
)

// Sentinel errors for topological operations.
var (
	// ErrNonManifoldVertex is returned when an operation would create a
	// non-manifold vertex: the local fan around the node has no free
	// (boundary) halfedge left to splice into.
	ErrNonManifoldVertex = errors.New("trimesh: non-manifold vertex")

	// ErrFaceNotFree is returned by AddFace when one of the halfedges
	// already has an incident face.
	ErrFaceNotFree = errors.New("trimesh: halfedges are not free, cannot add face")

	// ErrFaceNotChain is returned by AddFace when the three halfedges do
	// not form a closed chain.
	ErrFaceNotChain = errors.New("trimesh: halfedges do not form a chain, cannot add face")

	// ErrFaceNonManifold is returned by AddFace when reordering the local
	// fans to close the triangle would create a non-manifold mesh. It wraps
	// ErrNonManifoldVertex.
	ErrFaceNonManifold = fmt.Errorf("trimesh: cannot add face: %w", ErrNonManifoldVertex)
)
