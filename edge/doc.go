// Package edge defines the binary-edge linearization contract of a
// pose graph: manifold vertices, reusable Jacobian workspaces, and
// edges that compute measurement residuals together with analytic and
// numeric Jacobian blocks.
//
// 🚀 What is edge?
//
//	The per-edge derivative machinery of lvlslam:
//	  • Vertex — the manifold-variable capability interface: local
//	    dimension, Oplus increment, Push/Pop estimate snapshots
//	  • VertexSE3 / VertexPointXYZ — rigid pose (local dim 6) and
//	    3D point (local dim 3) variables
//	  • Workspace — one contiguous allocation holding both endpoint
//	    Jacobian blocks, size-negotiated per edge type
//	  • EdgeSE3 / EdgePointXYZ — pose-pose and point-point residuals
//	    with closed-form Jacobians
//
// ⚙️ Linearization contract:
//
//	LinearizeOplus(ws) writes the analytic Jacobian blocks into ws and
//	binds ws to the edge; a following LinearizeNumeric() overwrites the
//	bound workspace with central finite differences of ComputeError,
//	perturbing each local coordinate through the vertex Oplus operator.
//	The two paths share one workspace layout, so entries correspond
//	one-to-one.
//
// All contract violations (unbound endpoint, missing measurement,
// unsized workspace) surface as sentinel errors from errors.go — never
// as silently wrong numbers.
package edge
