package edge

import "errors"

var (
	// ErrVertexSlot indicates an endpoint slot outside {0, 1}.
	ErrVertexSlot = errors.New("edge: vertex slot out of range")
	// ErrNilVertex indicates a nil vertex passed to SetVertex.
	ErrNilVertex = errors.New("edge: nil vertex")
	// ErrVertexType indicates a vertex whose variant does not match the
	// edge's declared endpoint type.
	ErrVertexType = errors.New("edge: vertex type mismatch for slot")
	// ErrVertexNotSet indicates linearization or error computation was
	// requested before both endpoint slots were bound.
	ErrVertexNotSet = errors.New("edge: endpoint vertex not bound")
	// ErrNoMeasurement indicates the edge measurement was never set.
	ErrNoMeasurement = errors.New("edge: measurement not set")
	// ErrDimensionMismatch indicates an operand of the wrong size
	// (information matrix, increment vector).
	ErrDimensionMismatch = errors.New("edge: dimension mismatch")
	// ErrEmptyStack indicates Pop on a vertex without a pushed estimate.
	ErrEmptyStack = errors.New("edge: estimate stack is empty")

	// ErrWorkspaceNotSized indicates Allocate before UpdateSize.
	ErrWorkspaceNotSized = errors.New("edge: workspace not sized")
	// ErrWorkspaceNotAllocated indicates block access before Allocate.
	ErrWorkspaceNotAllocated = errors.New("edge: workspace not allocated")
	// ErrWorkspaceSizeMismatch indicates a bulk copy between workspaces
	// of different extents.
	ErrWorkspaceSizeMismatch = errors.New("edge: workspace size mismatch")
	// ErrWorkspaceNotBound indicates LinearizeNumeric before any
	// LinearizeOplus bound a workspace to the edge.
	ErrWorkspaceNotBound = errors.New("edge: no workspace bound for numeric linearization")
)
