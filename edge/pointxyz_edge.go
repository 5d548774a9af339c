// Package edge - the point-point edge.
package edge

import "gonum.org/v1/gonum/mat"

// PointErrorDim is the error dimension of EdgePointXYZ.
const PointErrorDim = 3

// EdgePointXYZ is a binary edge between two VertexPointXYZ endpoints
// measuring their offset: error = (xj − xi) − z. Both Jacobian blocks
// are constant: −I for endpoint 0 and I for endpoint 1.
type EdgePointXYZ struct {
	baseBinaryEdge
	meas    *mat.VecDense
	hasMeas bool
}

// NewEdgePointXYZ returns an edge with unbound endpoints, no
// measurement and identity information.
func NewEdgePointXYZ() *EdgePointXYZ {
	return &EdgePointXYZ{baseBinaryEdge: newBaseBinaryEdge(PointErrorDim)}
}

// SetVertex binds a *VertexPointXYZ endpoint to slot ∈ {0, 1}.
func (e *EdgePointXYZ) SetVertex(slot int, v Vertex) error {
	if v != nil {
		if _, ok := v.(*VertexPointXYZ); !ok {
			return ErrVertexType
		}
	}
	return e.bindVertex(slot, v)
}

// SetMeasurement stores the offset measurement, copying z.
func (e *EdgePointXYZ) SetMeasurement(z mat.Vector) {
	m := mat.NewVecDense(3, nil)
	m.CopyVec(z)
	e.meas = m
	e.hasMeas = true
}

// Measurement returns the stored measurement.
func (e *EdgePointXYZ) Measurement() *mat.VecDense { return e.meas }

// ComputeError returns (xj − xi) − z, length 3.
func (e *EdgePointXYZ) ComputeError() ([]float64, error) {
	xi, xj, err := e.endpoints()
	if err != nil {
		return nil, err
	}
	out := make([]float64, PointErrorDim)
	for r := 0; r < PointErrorDim; r++ {
		out[r] = xj.Estimate().AtVec(r) - xi.Estimate().AtVec(r) - e.meas.AtVec(r)
	}
	return out, nil
}

// Chi2 returns eᵀ·Ω·e at the current estimates.
func (e *EdgePointXYZ) Chi2() (float64, error) { return e.chi2(e) }

// LinearizeNumeric overwrites the bound workspace with central
// differences of ComputeError.
func (e *EdgePointXYZ) LinearizeNumeric() error { return e.linearizeNumeric(e) }

// LinearizeOplus writes the constant blocks −I and I into ws and binds
// ws to the edge.
func (e *EdgePointXYZ) LinearizeOplus(ws *Workspace) error {
	if _, _, err := e.endpoints(); err != nil {
		return err
	}
	if err := e.bindWorkspace(ws); err != nil {
		return err
	}
	ji, _ := ws.BlockForVertex(0)
	jj, _ := ws.BlockForVertex(1)
	ji.Zero()
	jj.Zero()
	for d := 0; d < PointErrorDim; d++ {
		ji.Set(d, d, -1)
		jj.Set(d, d, 1)
	}
	return nil
}

// endpoints returns the two typed endpoints, checking binding and
// measurement preconditions.
func (e *EdgePointXYZ) endpoints() (*VertexPointXYZ, *VertexPointXYZ, error) {
	v0, v1, err := e.vertexPair()
	if err != nil {
		return nil, nil, err
	}
	if !e.hasMeas {
		return nil, nil, ErrNoMeasurement
	}
	return v0.(*VertexPointXYZ), v1.(*VertexPointXYZ), nil
}

var _ BinaryEdge = (*EdgePointXYZ)(nil)
