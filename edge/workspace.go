// Package edge - the reusable Jacobian workspace.
//
// A Workspace is one contiguous float64 allocation holding the two
// endpoint Jacobian blocks of a binary edge, with *mat.Dense views
// sharing that backing storage. Sizing (UpdateSize) and allocation
// (Allocate) are separate steps: sizing is cheap and repeatable,
// allocation reserves the buffer for the negotiated extents. Once
// allocated, the layout is stable until the next UpdateSize.
package edge

import "gonum.org/v1/gonum/mat"

// Workspace holds the Jacobian blocks for an edge's two endpoints,
// packed contiguously: endpoint 0 first, endpoint 1 second, each block
// row-major with Dim(edge) rows and Dim(endpoint) columns.
type Workspace struct {
	errDim    int
	locals    [2]int
	buf       []float64
	blocks    [2]*mat.Dense
	allocated bool
}

// NewWorkspace returns an unsized, unallocated workspace.
func NewWorkspace() *Workspace { return &Workspace{} }

// UpdateSize negotiates buffer extents from the edge's error dimension
// and the local dimensions of its two bound endpoints. It stores the
// extents only; no allocation happens here. A previously allocated
// buffer is invalidated and must be re-Allocated.
// Returns ErrVertexNotSet when an endpoint slot is unbound.
// Complexity: O(1).
func (w *Workspace) UpdateSize(e BinaryEdge) error {
	var dims [2]int
	for slot := 0; slot < 2; slot++ {
		v := e.Vertex(slot)
		if v == nil {
			return ErrVertexNotSet
		}
		dims[slot] = v.Dim()
	}
	w.errDim = e.Dim()
	w.locals = dims
	w.allocated = false
	w.blocks[0], w.blocks[1] = nil, nil
	return nil
}

// Allocate reserves the contiguous buffer for the negotiated extents
// and builds the per-endpoint matrix views into it.
// Returns ErrWorkspaceNotSized before any successful UpdateSize.
// Complexity: O(errDim·(dim0+dim1)).
func (w *Workspace) Allocate() error {
	if w.errDim == 0 {
		return ErrWorkspaceNotSized
	}
	n0 := w.errDim * w.locals[0]
	n1 := w.errDim * w.locals[1]
	w.buf = make([]float64, n0+n1)
	w.blocks[0] = mat.NewDense(w.errDim, w.locals[0], w.buf[:n0])
	w.blocks[1] = mat.NewDense(w.errDim, w.locals[1], w.buf[n0:])
	w.allocated = true
	return nil
}

// WorkspaceForVertex returns the flat slice backing the Jacobian block
// of the given endpoint. The slice aliases the workspace buffer;
// writing its len(slice) entries fills exactly that block.
func (w *Workspace) WorkspaceForVertex(slot int) ([]float64, error) {
	if slot < 0 || slot > 1 {
		return nil, ErrVertexSlot
	}
	if !w.allocated {
		return nil, ErrWorkspaceNotAllocated
	}
	n0 := w.errDim * w.locals[0]
	if slot == 0 {
		return w.buf[:n0], nil
	}
	return w.buf[n0:], nil
}

// BlockForVertex returns the dense matrix view of one endpoint block,
// sharing storage with the workspace buffer.
func (w *Workspace) BlockForVertex(slot int) (*mat.Dense, error) {
	if slot < 0 || slot > 1 {
		return nil, ErrVertexSlot
	}
	if !w.allocated {
		return nil, ErrWorkspaceNotAllocated
	}
	return w.blocks[slot], nil
}

// CopyFrom bulk-copies the entire buffer of src into w. Both
// workspaces must be allocated with identical extents; otherwise
// ErrWorkspaceSizeMismatch (or ErrWorkspaceNotAllocated).
// Complexity: O(len(buffer)).
func (w *Workspace) CopyFrom(src *Workspace) error {
	if !w.allocated || !src.allocated {
		return ErrWorkspaceNotAllocated
	}
	if w.errDim != src.errDim || w.locals != src.locals {
		return ErrWorkspaceSizeMismatch
	}
	copy(w.buf, src.buf)
	return nil
}
