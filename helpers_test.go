package qgame

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func mustObject(t *testing.T, name string, initial int, opts ...ObjectOption) *QuantumObject {
	t.Helper()

	obj, err := NewQuantumObject(name, initial, opts...)
	if err != nil {
		t.Fatalf("NewQuantumObject(%s): %v", name, err)
	}
	return obj
}

func mustWorld(t *testing.T, objects ...*QuantumObject) *QuantumWorld {
	t.Helper()

	cfg := NewConfig()
	cfg.Seed = 42

	world, err := NewQuantumWorld(cfg, objects...)
	if err != nil {
		t.Fatalf("NewQuantumWorld: %v", err)
	}
	return world
}

// shouldHaveProbabilities compares a distribution within a small tolerance.
func shouldHaveProbabilities(actual interface{}, expected ...interface{}) string {
	got := actual.([]float64)
	want := expected[0].([]float64)

	if msg := ShouldHaveLength(got, len(want)); msg != "" {
		return msg
	}

	for i := range want {
		if msg := ShouldAlmostEqual(got[i], want[i], 1e-9); msg != "" {
			return msg
		}
	}
	return ""
}
