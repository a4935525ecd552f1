package qgame

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestGates(t *testing.T) {
	Convey("Given a world with two qubits and a qutrit", t, func() {
		a := mustObject(t, "a", 0)
		b := mustObject(t, "b", 1)
		c := mustObject(t, "c", 0, WithStates(3))
		world := mustWorld(t, a, b, c)

		Convey("When applying X to a qubit holding 0", func() {
			So(world.Add(X(a.Qid)), ShouldBeNil)

			Convey("Then it should read 1", func() {
				probs, err := world.Probabilities(a)
				So(err, ShouldBeNil)
				So(probs, shouldHaveProbabilities, []float64{0, 1})
			})
		})

		Convey("When applying H", func() {
			So(world.Add(H(a.Qid)), ShouldBeNil)

			Convey("Then the qubit should be evenly split", func() {
				probs, _ := world.Probabilities(a)
				So(probs, shouldHaveProbabilities, []float64{0.5, 0.5})
			})

			Convey("Then a second H should undo the first", func() {
				So(world.Add(H(a.Qid)), ShouldBeNil)
				probs, _ := world.Probabilities(a)
				So(probs, shouldHaveProbabilities, []float64{1, 0})
			})
		})

		Convey("When applying H to the qutrit", func() {
			So(world.Add(H(c.Qid)), ShouldBeNil)

			Convey("Then every value should be equally likely", func() {
				probs, _ := world.Probabilities(c)
				So(probs, shouldHaveProbabilities, []float64{1.0 / 3, 1.0 / 3, 1.0 / 3})
			})
		})

		Convey("When shifting the qutrit by 2 and then by 2 again", func() {
			So(world.Add(Shift(c.Qid, 2)), ShouldBeNil)
			probs, _ := world.Probabilities(c)
			So(probs, shouldHaveProbabilities, []float64{0, 0, 1})

			So(world.Add(Shift(c.Qid, 2)), ShouldBeNil)

			Convey("Then it should wrap around", func() {
				probs, _ := world.Probabilities(c)
				So(probs, shouldHaveProbabilities, []float64{0, 1, 0})
			})
		})

		Convey("When swapping the qubits", func() {
			So(world.Add(Swap(a.Qid, b.Qid)), ShouldBeNil)

			Convey("Then their values should be exchanged", func() {
				pa, _ := world.Probabilities(a)
				pb, _ := world.Probabilities(b)
				So(pa, shouldHaveProbabilities, []float64{0, 1})
				So(pb, shouldHaveProbabilities, []float64{1, 0})
			})
		})

		Convey("When half swapping a 1 into a 0", func() {
			So(world.Add(SqrtISwap(b.Qid, a.Qid)), ShouldBeNil)

			Convey("Then both qubits should be evenly split", func() {
				pa, _ := world.Probabilities(a)
				pb, _ := world.Probabilities(b)
				So(pa, shouldHaveProbabilities, []float64{0.5, 0.5})
				So(pb, shouldHaveProbabilities, []float64{0.5, 0.5})
			})
		})

		Convey("When applying a half X rotation", func() {
			So(world.Add(XPow(a.Qid, 0.5)), ShouldBeNil)

			Convey("Then the qubit should be evenly split", func() {
				probs, _ := world.Probabilities(a)
				So(probs, shouldHaveProbabilities, []float64{0.5, 0.5})
			})
		})

		Convey("When applying a phase", func() {
			So(world.Add(H(a.Qid), ZPow(a.Qid, 1), H(a.Qid)), ShouldBeNil)

			Convey("Then interference should flip the qubit", func() {
				probs, _ := world.Probabilities(a)
				So(probs, shouldHaveProbabilities, []float64{0, 1})
			})
		})

		Convey("When a controlled X has a control holding 1", func() {
			So(world.Add(X(a.Qid).ControlledBy(b.Qid)), ShouldBeNil)

			Convey("Then the target should flip", func() {
				probs, _ := world.Probabilities(a)
				So(probs, shouldHaveProbabilities, []float64{0, 1})
			})
		})

		Convey("When a controlled X waits for the qutrit to read 2", func() {
			op := X(a.Qid).ControlledByValues([]*Qid{c.Qid}, []int{2})
			So(world.Add(op), ShouldBeNil)

			Convey("Then nothing should happen while it reads 0", func() {
				probs, _ := world.Probabilities(a)
				So(probs, shouldHaveProbabilities, []float64{1, 0})
			})
		})
	})
}

func TestOperationValidation(t *testing.T) {
	Convey("Given some qids", t, func() {
		a := NewQid("a", 2)
		b := NewQid("b", 2)
		c := NewQid("c", 3)

		Convey("Then operations should render like a circuit listing", func() {
			So(X(a).String(), ShouldEqual, "X(a)")
			So(X(a).ControlledBy(b).String(), ShouldEqual, "C(b)X(a)")
			So(X(a).ControlledByValues([]*Qid{c}, []int{2}).String(), ShouldEqual, "C(c=2)X(a)")
			So(Swap(a, b).String(), ShouldEqual, "Swap(a,b)")
		})

		Convey("Then ControlledBy should not alias the original", func() {
			op := X(a)
			controlled := op.ControlledBy(b)
			So(op.Controls, ShouldBeEmpty)
			So(controlled.Controls, ShouldHaveLength, 1)
		})

		Convey("Then an operation using a qid twice should be rejected", func() {
			So(errors.Is(X(a).ControlledBy(a).validate(), ErrInvalidOperation), ShouldBeTrue)
		})

		Convey("Then a control value outside the dimension should be rejected", func() {
			op := X(a).ControlledByValues([]*Qid{c}, []int{3})
			So(errors.Is(op.validate(), ErrInvalidOperation), ShouldBeTrue)
		})

		Convey("Then a matrix of the wrong size should be rejected", func() {
			op := Operation{Name: "Bad", Matrix: [][]complex128{{1}}, Targets: []*Qid{a}}
			So(errors.Is(op.validate(), ErrInvalidOperation), ShouldBeTrue)
		})
	})
}
