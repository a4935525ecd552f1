package rpg

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// GameState is what a save file holds: where the player is and which
// encounters are still waiting at each location.
type GameState struct {
	Current    string              `msgpack:"current"`
	Encounters map[string][]string `msgpack:"encounters"`
}

// State captures the progress made in the world.
func (w *World) State() GameState {
	state := GameState{
		Current:    w.Current.Label,
		Encounters: make(map[string][]string, len(w.locations)),
	}

	for label, loc := range w.locations {
		names := make([]string, 0, len(loc.Encounters))
		for _, e := range loc.Encounters {
			names = append(names, e.Name)
		}
		state.Encounters[label] = names
	}

	return state
}

// Save writes the game state as msgpack.
func (w *World) Save(out io.Writer) error {
	return msgpack.NewEncoder(out).Encode(w.State())
}

/*
Restore reads a game state written by Save. The player is moved to the
saved location and encounters that were already removed are removed again.
Locations missing from the save are left as they are.
*/
func (w *World) Restore(in io.Reader) error {
	var state GameState
	if err := msgpack.NewDecoder(in).Decode(&state); err != nil {
		return fmt.Errorf("decoding save: %w", err)
	}

	current, ok := w.locations[state.Current]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLocation, state.Current)
	}

	for label := range state.Encounters {
		if _, ok := w.locations[label]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownLocation, label)
		}
	}

	for label, names := range state.Encounters {
		loc := w.locations[label]
		keep := make(map[string]bool, len(names))
		for _, name := range names {
			keep[name] = true
		}

		remaining := loc.Encounters[:0]
		for _, e := range loc.Encounters {
			if keep[e.Name] {
				remaining = append(remaining, e)
			}
		}
		loc.Encounters = remaining
	}

	w.Current = current
	return nil
}
