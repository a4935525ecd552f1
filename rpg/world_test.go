package rpg

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/theapemachine/qgame"
)

func loadTestWorld(t *testing.T) *World {
	t.Helper()

	f, err := os.Open("testdata/world.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	w, err := LoadWorld(f)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func quantumWorld(t *testing.T) *qgame.QuantumWorld {
	t.Helper()

	cfg := qgame.NewConfig()
	cfg.Seed = 3

	q, err := qgame.NewQuantumWorld(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return q
}

func TestParseDirection(t *testing.T) {
	Convey("Given direction input", t, func() {
		Convey("Then full names should parse", func() {
			d, ok := ParseDirection("north")
			So(ok, ShouldBeTrue)
			So(d, ShouldEqual, North)
		})

		Convey("Then prefixes and mixed case should parse", func() {
			d, ok := ParseDirection("E")
			So(ok, ShouldBeTrue)
			So(d, ShouldEqual, East)

			d, ok = ParseDirection("Do")
			So(ok, ShouldBeTrue)
			So(d, ShouldEqual, Down)
		})

		Convey("Then unknown or empty input should not parse", func() {
			_, ok := ParseDirection("sideways")
			So(ok, ShouldBeFalse)

			_, ok = ParseDirection("")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestLocation(t *testing.T) {
	Convey("Given a location with several exits", t, func() {
		rat := &Encounter{Name: "rat"}
		loc := &Location{
			Label:       "room",
			Title:       "A room",
			Description: "It is dark.",
			Exits:       map[Direction]string{Down: "cellar", North: "hall", West: "yard"},
			Encounters:  []*Encounter{rat},
		}

		Convey("Then printing should list exits in compass order", func() {
			So(loc.Print(), ShouldEqual, "A room\n\nIt is dark.\nExits: north, west, down.\n")
		})

		Convey("Then removing an encounter should only work once", func() {
			So(loc.RemoveEncounter(rat), ShouldBeTrue)
			So(loc.Encounters, ShouldBeEmpty)
			So(loc.RemoveEncounter(rat), ShouldBeFalse)
		})
	})
}

func TestWorld(t *testing.T) {
	Convey("Given a world loaded from YAML", t, func() {
		w := loadTestWorld(t)

		Convey("Then the player should start at the first location", func() {
			So(w.Current.Label, ShouldEqual, "hut")
		})

		Convey("When moving along an exit", func() {
			loc := w.Move(East)

			Convey("Then the player should arrive", func() {
				So(loc, ShouldNotBeNil)
				So(loc.Label, ShouldEqual, "path")
				So(w.Current, ShouldEqual, loc)
				So(loc.Print(), ShouldEndWith, "Exits: north, west, up.\n")
			})
		})

		Convey("When moving where there is no exit", func() {
			loc := w.Move(North)

			Convey("Then the player should stay put", func() {
				So(loc, ShouldBeNil)
				So(w.Current.Label, ShouldEqual, "hut")
			})
		})

		Convey("Then reachability should follow the exits", func() {
			So(w.Reachable(), ShouldResemble, []string{"hut", "path", "tower", "ledge"})
			So(w.Unreachable(), ShouldResemble, []string{"cave"})
		})
	})

	Convey("Given broken location lists", t, func() {
		Convey("Then an empty world should be rejected", func() {
			_, err := NewWorld(nil)
			So(err, ShouldEqual, ErrNoLocations)
		})

		Convey("Then duplicate labels should be rejected", func() {
			_, err := NewWorld([]*Location{{Label: "a"}, {Label: "a"}})
			So(errors.Is(err, ErrDuplicateLocation), ShouldBeTrue)
		})

		Convey("Then exits to nowhere should be rejected", func() {
			_, err := NewWorld([]*Location{{Label: "a", Exits: map[Direction]string{North: "b"}}})
			So(errors.Is(err, ErrUnknownLocation), ShouldBeTrue)
		})

		Convey("Then unknown directions should be rejected", func() {
			_, err := LoadWorld(strings.NewReader("locations:\n  - label: a\n    exits:\n      sideways: a\n"))
			So(errors.Is(err, ErrInvalidDirection), ShouldBeTrue)
		})

		Convey("Then malformed YAML should be rejected", func() {
			_, err := LoadWorld(strings.NewReader("locations: ["))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestEncounters(t *testing.T) {
	Convey("Given a location with certain and impossible encounters", t, func() {
		w := loadTestWorld(t)
		w.Move(East)
		q := quantumWorld(t)

		Convey("When exploring", func() {
			e, err := w.Explore(q)

			Convey("Then the certain encounter should happen", func() {
				So(err, ShouldBeNil)
				So(e, ShouldNotBeNil)
				So(e.Name, ShouldEqual, "sure-thing")
			})
		})

		Convey("When rolling encounters repeatedly", func() {
			sure, never := w.Current.Encounters[0], w.Current.Encounters[1]

			for i := 0; i < 10; i++ {
				hit, err := sure.Trigger(q)
				So(err, ShouldBeNil)
				So(hit, ShouldBeTrue)

				hit, err = never.Trigger(q)
				So(err, ShouldBeNil)
				So(hit, ShouldBeFalse)
			}

			Convey("Then each encounter should reuse a single qubit", func() {
				So(q.Objects(), ShouldHaveLength, 2)
			})
		})

		Convey("When an encounter is rolled on a second world", func() {
			e := w.Current.Encounters[0]
			_, err := e.Trigger(q)
			So(err, ShouldBeNil)

			_, err = e.Trigger(quantumWorld(t))
			So(errors.Is(err, ErrWrongWorld), ShouldBeTrue)
		})

		Convey("When a probability is out of range", func() {
			_, err := (&Encounter{Name: "odd", Probability: 1.5}).Trigger(q)
			So(errors.Is(err, ErrInvalidProbability), ShouldBeTrue)
		})
	})

	Convey("Given an even encounter", t, func() {
		coin := &Encounter{Name: "coin", Probability: 0.5}
		q := quantumWorld(t)

		Convey("Then it should happen about half the time", func() {
			hits := 0
			for i := 0; i < 400; i++ {
				hit, err := coin.Trigger(q)
				So(err, ShouldBeNil)
				if hit {
					hits++
				}
			}
			So(hits, ShouldBeBetween, 140, 260)
		})
	})
}

func TestSaveRestore(t *testing.T) {
	Convey("Given a world with some progress", t, func() {
		w := loadTestWorld(t)
		w.Move(East)
		w.Current.RemoveEncounter(w.Current.Encounters[0])

		var buf bytes.Buffer
		So(w.Save(&buf), ShouldBeNil)

		Convey("When restoring into a fresh copy of the world", func() {
			fresh := loadTestWorld(t)
			So(fresh.Restore(&buf), ShouldBeNil)

			Convey("Then the player should be where they were", func() {
				So(fresh.Current.Label, ShouldEqual, "path")
			})

			Convey("Then removed encounters should stay removed", func() {
				encounters := fresh.Location("path").Encounters
				So(encounters, ShouldHaveLength, 1)
				So(encounters[0].Name, ShouldEqual, "never")
			})
		})

		Convey("When restoring into a world missing the saved location", func() {
			other, err := NewWorld([]*Location{{Label: "elsewhere"}})
			So(err, ShouldBeNil)

			err = other.Restore(&buf)
			So(errors.Is(err, ErrUnknownLocation), ShouldBeTrue)
			So(other.Current.Label, ShouldEqual, "elsewhere")
		})

		Convey("When the save is garbage", func() {
			So(w.Restore(strings.NewReader("\xc1")), ShouldNotBeNil)
		})
	})
}
