package verify_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlslam/edge"
	"github.com/katalvlaran/lvlslam/verify"
)

// BenchmarkEdgeSE3Linearization measures one analytic+numeric
// linearization pair of the pose-pose edge at a fixed randomized
// configuration — the hot path of a verification run.
func BenchmarkEdgeSE3Linearization(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	v0 := edge.NewVertexSE3(0)
	v1 := edge.NewVertexSE3(1)
	v0.SetEstimate(verify.RandomIsometry(rng))
	v1.SetEstimate(verify.RandomIsometry(rng))

	e := edge.NewEdgeSE3()
	if err := e.SetVertex(0, v0); err != nil {
		b.Fatal(err)
	}
	if err := e.SetVertex(1, v1); err != nil {
		b.Fatal(err)
	}
	e.SetMeasurement(verify.RandomIsometry(rng))

	ws := edge.NewWorkspace()
	if err := ws.UpdateSize(e); err != nil {
		b.Fatal(err)
	}
	if err := ws.Allocate(); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := e.LinearizeOplus(ws); err != nil {
			b.Fatal(err)
		}
		if err := e.LinearizeNumeric(); err != nil {
			b.Fatal(err)
		}
	}
}
