// Package edge - the binary edge contract and its shared machinery.
package edge

import "gonum.org/v1/gonum/mat"

// numericStep is the central-difference perturbation applied to each
// local coordinate during numeric linearization. Small enough that the
// truncation term vanishes below the verification tolerance, large
// enough that float64 cancellation stays well under it.
const numericStep = 1e-9

// BinaryEdge is the linearization contract every binary edge variant
// implements: residual computation plus analytic and numeric Jacobian
// paths sharing one workspace layout.
type BinaryEdge interface {
	// Dim is the fixed error dimension of the edge variant.
	Dim() int
	// Vertex returns the endpoint bound to slot, or nil.
	Vertex(slot int) Vertex
	// SetVertex binds an endpoint; the vertex variant must match the
	// edge's declared endpoint type.
	SetVertex(slot int, v Vertex) error
	// Information returns the information (weight) matrix Ω.
	Information() *mat.Dense
	// SetInformation overwrites Ω; it must be Dim×Dim.
	SetInformation(omega mat.Matrix) error
	// ComputeError returns the measurement residual at the current
	// endpoint estimates, length Dim.
	ComputeError() ([]float64, error)
	// Chi2 returns eᵀ·Ω·e at the current estimates.
	Chi2() (float64, error)
	// LinearizeOplus writes the analytic Jacobian blocks into ws and
	// binds ws as the edge's workspace.
	LinearizeOplus(ws *Workspace) error
	// LinearizeNumeric overwrites the bound workspace with central
	// finite differences of ComputeError.
	LinearizeNumeric() error
}

// baseBinaryEdge carries the bookkeeping every edge variant shares:
// endpoint slots, the information matrix, and the bound workspace.
// Concrete edges embed it and keep measurement and error semantics to
// themselves.
type baseBinaryEdge struct {
	dim      int
	vertices [2]Vertex
	omega    *mat.Dense
	jac      *Workspace
}

// newBaseBinaryEdge initializes the slot bookkeeping with an identity
// information matrix of the given error dimension.
func newBaseBinaryEdge(dim int) baseBinaryEdge {
	omega := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		omega.Set(i, i, 1)
	}
	return baseBinaryEdge{dim: dim, omega: omega}
}

// Dim returns the error dimension.
func (b *baseBinaryEdge) Dim() int { return b.dim }

// Vertex returns the endpoint bound to slot, or nil when the slot is
// out of range or unbound.
func (b *baseBinaryEdge) Vertex(slot int) Vertex {
	if slot < 0 || slot > 1 {
		return nil
	}
	return b.vertices[slot]
}

// bindVertex stores v in slot after the concrete edge checked its type.
func (b *baseBinaryEdge) bindVertex(slot int, v Vertex) error {
	if slot < 0 || slot > 1 {
		return ErrVertexSlot
	}
	if v == nil {
		return ErrNilVertex
	}
	b.vertices[slot] = v
	return nil
}

// vertexPair returns both endpoints, or ErrVertexNotSet if either slot
// is unbound.
func (b *baseBinaryEdge) vertexPair() (Vertex, Vertex, error) {
	if b.vertices[0] == nil || b.vertices[1] == nil {
		return nil, nil, ErrVertexNotSet
	}
	return b.vertices[0], b.vertices[1], nil
}

// Information returns Ω.
func (b *baseBinaryEdge) Information() *mat.Dense { return b.omega }

// SetInformation overwrites Ω, copying omega. ErrDimensionMismatch
// unless omega is Dim×Dim.
func (b *baseBinaryEdge) SetInformation(omega mat.Matrix) error {
	r, c := omega.Dims()
	if r != b.dim || c != b.dim {
		return ErrDimensionMismatch
	}
	w := mat.NewDense(b.dim, b.dim, nil)
	w.Copy(omega)
	b.omega = w
	return nil
}

// bindWorkspace validates ws against the edge layout and stores it as
// the target of a later LinearizeNumeric.
func (b *baseBinaryEdge) bindWorkspace(ws *Workspace) error {
	if ws == nil || !ws.allocated {
		return ErrWorkspaceNotAllocated
	}
	v0, v1, err := b.vertexPair()
	if err != nil {
		return err
	}
	if ws.errDim != b.dim || ws.locals[0] != v0.Dim() || ws.locals[1] != v1.Dim() {
		return ErrWorkspaceSizeMismatch
	}
	b.jac = ws
	return nil
}

// chi2 computes eᵀ·Ω·e for the concrete edge e.
func (b *baseBinaryEdge) chi2(e BinaryEdge) (float64, error) {
	res, err := e.ComputeError()
	if err != nil {
		return 0, err
	}
	ev := mat.NewVecDense(b.dim, res)
	return mat.Inner(ev, b.omega, ev), nil
}

// linearizeNumeric fills the bound workspace with central differences
// of e.ComputeError: each local coordinate m of each endpoint is
// perturbed by ±numericStep through the vertex Oplus operator (with
// Push/Pop restoring the estimate), and the scaled residual difference
// becomes column m of that endpoint's Jacobian block.
// Complexity: O((dim0+dim1)·cost(ComputeError)).
func (b *baseBinaryEdge) linearizeNumeric(e BinaryEdge) error {
	if b.jac == nil {
		return ErrWorkspaceNotBound
	}
	v0, v1, err := b.vertexPair()
	if err != nil {
		return err
	}
	scale := 1 / (2 * numericStep)
	for slot, v := range [2]Vertex{v0, v1} {
		block, berr := b.jac.BlockForVertex(slot)
		if berr != nil {
			return berr
		}
		d := v.Dim()
		delta := make([]float64, d)
		for m := 0; m < d; m++ {
			delta[m] = numericStep
			plus, perr := b.perturbedError(e, v, delta)
			if perr != nil {
				return perr
			}
			delta[m] = -numericStep
			minus, merr := b.perturbedError(e, v, delta)
			if merr != nil {
				return merr
			}
			delta[m] = 0
			for row := 0; row < b.dim; row++ {
				block.Set(row, m, (plus[row]-minus[row])*scale)
			}
		}
	}
	return nil
}

// perturbedError evaluates e.ComputeError with v displaced by delta,
// restoring the original estimate before returning.
func (b *baseBinaryEdge) perturbedError(e BinaryEdge, v Vertex, delta []float64) ([]float64, error) {
	v.Push()
	defer func() { _ = v.Pop() }() // stack is non-empty here
	if err := v.Oplus(delta); err != nil {
		return nil, err
	}
	return e.ComputeError()
}
