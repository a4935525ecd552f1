package qgame

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLedger(t *testing.T) {
	Convey("Given an empty ledger", t, func() {
		var l ledger
		q := NewQid("q", 2)

		Convey("When appending frames", func() {
			first := l.append([]Operation{X(q)}, nil)
			second := l.append(nil, []Measurement{{Qid: q, Value: 1}})

			Convey("Then they should be numbered in order", func() {
				So(first.Sequence, ShouldEqual, 0)
				So(second.Sequence, ShouldEqual, 1)
				So(l.frames, ShouldHaveLength, 2)
				So(spew.Sdump(l.frames[1]), ShouldContainSubstring, "Measurements")
			})

			Convey("Then since should return the tail", func() {
				So(l.since(0), ShouldHaveLength, 2)
				So(l.since(1), ShouldHaveLength, 1)
				So(l.since(99), ShouldBeEmpty)
			})

			Convey("Then dropping should remove the newest frame", func() {
				dropped, ok := l.dropLast()
				So(ok, ShouldBeTrue)
				So(dropped.Sequence, ShouldEqual, 1)
				So(l.frames, ShouldHaveLength, 1)

				next := l.append(nil, nil)
				So(next.Sequence, ShouldEqual, 2)
			})
		})

		Convey("When dropping from an empty ledger", func() {
			_, ok := l.dropLast()
			So(ok, ShouldBeFalse)
		})
	})
}
