// Package edge - manifold vertex variants.
//
// A vertex owns a typed estimate and exposes the capability interface
// the numeric differentiation path needs: local dimension, manifold
// increment, and an estimate snapshot stack. Oplus of the zero vector
// leaves the estimate unchanged and Oplus is locally invertible near
// zero — properties the finite-difference path relies on.
package edge

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlslam/se3"
)

// Local (tangent-space) dimensions of the vertex variants.
const (
	// SE3LocalDim is the tangent dimension of a rigid pose:
	// 3 translation + 3 quaternion-vector coordinates.
	SE3LocalDim = 6
	// PointLocalDim is the tangent dimension of a 3D point.
	PointLocalDim = 3
)

// Vertex is the capability interface of one manifold variable.
// Implementations are not safe for concurrent use.
type Vertex interface {
	// ID returns the vertex identifier.
	ID() int
	// SetID assigns the vertex identifier.
	SetID(id int)
	// Dim is the local (tangent) dimension of the variable.
	Dim() int
	// Oplus applies a local increment to the current estimate.
	// len(delta) must equal Dim; otherwise ErrDimensionMismatch.
	Oplus(delta []float64) error
	// Push snapshots the current estimate onto an internal stack.
	Push()
	// Pop restores the most recently pushed estimate.
	Pop() error
}

// VertexSE3 is a rigid 3D pose variable. Its estimate is an
// se3.Isometry; increments compose on the right through the MQT chart.
type VertexSE3 struct {
	id    int
	est   se3.Isometry
	stack []se3.Isometry
}

// NewVertexSE3 returns a pose vertex with the identity estimate.
func NewVertexSE3(id int) *VertexSE3 {
	return &VertexSE3{id: id, est: se3.Identity()}
}

// ID returns the vertex identifier.
func (v *VertexSE3) ID() int { return v.id }

// SetID assigns the vertex identifier.
func (v *VertexSE3) SetID(id int) { v.id = id }

// Dim returns SE3LocalDim.
func (v *VertexSE3) Dim() int { return SE3LocalDim }

// Estimate returns the current pose. Isometry values are immutable;
// the caller may hold the result across SetEstimate calls.
func (v *VertexSE3) Estimate() se3.Isometry { return v.est }

// SetEstimate overwrites the current pose.
func (v *VertexSE3) SetEstimate(x se3.Isometry) { v.est = x }

// Oplus applies the manifold increment x ← x·D(δ) with δ in MQT form.
func (v *VertexSE3) Oplus(delta []float64) error {
	if len(delta) != SE3LocalDim {
		return ErrDimensionMismatch
	}
	var d [6]float64
	copy(d[:], delta)
	v.est = v.est.Oplus(d)
	return nil
}

// Push snapshots the current estimate.
func (v *VertexSE3) Push() { v.stack = append(v.stack, v.est) }

// Pop restores the most recently pushed estimate.
func (v *VertexSE3) Pop() error {
	n := len(v.stack)
	if n == 0 {
		return ErrEmptyStack
	}
	v.est = v.stack[n-1]
	v.stack = v.stack[:n-1]
	return nil
}

// VertexPointXYZ is a 3D point variable; its increment is plain
// vector addition (the tangent space is the ambient space).
type VertexPointXYZ struct {
	id    int
	est   *mat.VecDense
	stack []*mat.VecDense
}

// NewVertexPointXYZ returns a point vertex with the zero estimate.
func NewVertexPointXYZ(id int) *VertexPointXYZ {
	return &VertexPointXYZ{id: id, est: mat.NewVecDense(3, nil)}
}

// ID returns the vertex identifier.
func (v *VertexPointXYZ) ID() int { return v.id }

// SetID assigns the vertex identifier.
func (v *VertexPointXYZ) SetID(id int) { v.id = id }

// Dim returns PointLocalDim.
func (v *VertexPointXYZ) Dim() int { return PointLocalDim }

// Estimate returns the current point. The vertex treats estimates as
// immutable; mutate only through SetEstimate or Oplus.
func (v *VertexPointXYZ) Estimate() *mat.VecDense { return v.est }

// SetEstimate overwrites the current point, copying p.
func (v *VertexPointXYZ) SetEstimate(p mat.Vector) {
	est := mat.NewVecDense(3, nil)
	est.CopyVec(p)
	v.est = est
}

// Oplus adds delta to the current estimate.
func (v *VertexPointXYZ) Oplus(delta []float64) error {
	if len(delta) != PointLocalDim {
		return ErrDimensionMismatch
	}
	est := mat.NewVecDense(3, nil)
	est.AddVec(v.est, mat.NewVecDense(3, delta))
	v.est = est
	return nil
}

// Push snapshots the current estimate.
func (v *VertexPointXYZ) Push() { v.stack = append(v.stack, v.est) }

// Pop restores the most recently pushed estimate.
func (v *VertexPointXYZ) Pop() error {
	n := len(v.stack)
	if n == 0 {
		return ErrEmptyStack
	}
	v.est = v.stack[n-1]
	v.stack = v.stack[:n-1]
	return nil
}

var (
	_ Vertex = (*VertexSE3)(nil)
	_ Vertex = (*VertexPointXYZ)(nil)
)
