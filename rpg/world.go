package rpg

import (
	"fmt"
	"io"

	"github.com/eapache/queue"
	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qgame"
	"gopkg.in/yaml.v3"
)

/*
World is a set of connected locations that can be traversed. The first
location is where the player starts.
*/
type World struct {
	Current *Location

	locations map[string]*Location
	order     []string
}

// NewWorld links the locations together. Every exit has to lead to one of
// the given locations.
func NewWorld(locations []*Location) (*World, error) {
	if len(locations) == 0 {
		return nil, ErrNoLocations
	}

	w := &World{
		Current:   locations[0],
		locations: make(map[string]*Location, len(locations)),
	}

	for _, loc := range locations {
		if _, exists := w.locations[loc.Label]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLocation, loc.Label)
		}
		w.locations[loc.Label] = loc
		w.order = append(w.order, loc.Label)
	}

	for _, loc := range locations {
		for dir, label := range loc.Exits {
			if !dir.valid() {
				return nil, fmt.Errorf("%w: %q in %s", ErrInvalidDirection, dir, loc.Label)
			}
			if _, ok := w.locations[label]; !ok {
				return nil, fmt.Errorf("%w: %s leads %s to %s", ErrUnknownLocation, loc.Label, dir, label)
			}
		}
	}

	if unreachable := w.Unreachable(); len(unreachable) > 0 {
		errnie.Info("rpg.NewWorld - unreachable locations %v", unreachable)
	}

	return w, nil
}

type worldFile struct {
	Locations []*Location `yaml:"locations"`
}

// LoadWorld reads a world from YAML.
func LoadWorld(r io.Reader) (*World, error) {
	var file worldFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding world: %w", err)
	}

	return NewWorld(file.Locations)
}

// Location returns the location with the given label, or nil.
func (w *World) Location(label string) *Location {
	return w.locations[label]
}

// Move goes to the location in the given direction. When there is nothing
// that way the player stays put and Move returns nil.
func (w *World) Move(dir Direction) *Location {
	label, ok := w.Current.Exits[dir]
	if !ok {
		return nil
	}

	w.Current = w.locations[label]
	return w.Current
}

// Reachable lists the labels that can be walked to from the start, in
// breadth-first order.
func (w *World) Reachable() []string {
	start := w.order[0]
	seen := map[string]bool{start: true}
	out := []string{}

	pending := queue.New()
	pending.Add(start)

	for pending.Length() > 0 {
		label := pending.Remove().(string)
		out = append(out, label)

		loc := w.locations[label]
		for _, dir := range Directions {
			next, ok := loc.Exits[dir]
			if !ok || seen[next] {
				continue
			}
			seen[next] = true
			pending.Add(next)
		}
	}

	return out
}

// Unreachable lists the labels that cannot be walked to from the start.
func (w *World) Unreachable() []string {
	seen := make(map[string]bool)
	for _, label := range w.Reachable() {
		seen[label] = true
	}

	var out []string
	for _, label := range w.order {
		if !seen[label] {
			out = append(out, label)
		}
	}
	return out
}

// Explore rolls every encounter at the current location in order and
// returns the first one that happens, or nil.
func (w *World) Explore(q *qgame.QuantumWorld) (*Encounter, error) {
	for _, e := range w.Current.Encounters {
		hit, err := e.Trigger(q)
		if err != nil {
			return nil, err
		}
		if hit {
			return e, nil
		}
	}
	return nil, nil
}
