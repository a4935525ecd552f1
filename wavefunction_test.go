package qgame

import (
	"math/rand/v2"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSampleIndex(t *testing.T) {
	Convey("Given a distribution with zero-weight outcomes", t, func() {
		probs := []float64{0, 0.25, 0, 0.75}
		rng := rand.New(rand.NewPCG(7, 7))

		Convey("Then only weighted indices are drawn, in rough proportion", func() {
			counts := make([]int, len(probs))
			for range 4000 {
				counts[sampleIndex(probs, rng)]++
			}

			So(counts[0], ShouldEqual, 0)
			So(counts[2], ShouldEqual, 0)
			So(float64(counts[3])/4000, ShouldAlmostEqual, 0.75, 0.05)
		})
	})

	Convey("Given two generators with the same seed", t, func() {
		probs := []float64{0.5, 0.5}
		a := rand.New(rand.NewPCG(1, 2))
		b := rand.New(rand.NewPCG(1, 2))

		Convey("Then they draw the same sequence", func() {
			for range 32 {
				So(sampleIndex(probs, a), ShouldEqual, sampleIndex(probs, b))
			}
		})
	})
}
