package rpg

import (
	"fmt"
	"strings"
)

/*
Location is a place in the world.

Label identifies the location so other locations can refer to it. Exits
maps each direction to the label of the adjacent location, and Encounters
are the things that may happen here.
*/
type Location struct {
	Label       string               `yaml:"label"`
	Title       string               `yaml:"title"`
	Description string               `yaml:"description,omitempty"`
	Exits       map[Direction]string `yaml:"exits,omitempty"`
	Encounters  []*Encounter         `yaml:"encounters,omitempty"`
}

func (l *Location) exits() string {
	var names []string
	for _, d := range Directions {
		if _, ok := l.Exits[d]; ok {
			names = append(names, string(d))
		}
	}
	return strings.Join(names, ", ") + "."
}

// RemoveEncounter drops an encounter once it has played out.
func (l *Location) RemoveEncounter(e *Encounter) bool {
	for i, candidate := range l.Encounters {
		if candidate == e {
			l.Encounters = append(l.Encounters[:i], l.Encounters[i+1:]...)
			return true
		}
	}
	return false
}

// Print describes the location the way the player sees it.
func (l *Location) Print() string {
	return fmt.Sprintf("%s\n\n%s\nExits: %s\n", l.Title, l.Description, l.exits())
}
