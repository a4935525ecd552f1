package rpg

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/theapemachine/qgame"
)

/*
Encounter is something that may happen at a location. Whether it happens is
decided by a qubit rotated so that it reads 1 with the given probability.
*/
type Encounter struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description,omitempty"`
	Probability float64 `yaml:"probability"`

	object *qgame.QuantumObject
}

/*
Trigger rolls the encounter on the quantum world. The encounter keeps one
qubit per world: it is measured and reset to 0 before every roll, so the
world does not grow with the number of rolls.
*/
func (e *Encounter) Trigger(world *qgame.QuantumWorld) (bool, error) {
	if e.Probability < 0 || e.Probability > 1 {
		return false, fmt.Errorf("%w: %s has %v", ErrInvalidProbability, e.Name, e.Probability)
	}

	if err := e.reset(world); err != nil {
		return false, err
	}

	fraction := 2 * math.Asin(math.Sqrt(e.Probability)) / math.Pi
	if err := qgame.Apply(qgame.FlipFraction(fraction), e.object); err != nil {
		return false, err
	}

	values, err := world.Pop(e.object)
	if err != nil {
		return false, err
	}
	return values[0] == 1, nil
}

func (e *Encounter) reset(world *qgame.QuantumWorld) error {
	if e.object == nil {
		obj, err := qgame.NewQuantumObject(fmt.Sprintf("encounter-%s-%s", e.Name, uuid.NewString()), 0)
		if err != nil {
			return err
		}

		if err := world.AddObject(obj); err != nil {
			return err
		}
		e.object = obj
		return nil
	}

	if e.object.Board != qgame.Board(world) {
		return fmt.Errorf("%w: %s", ErrWrongWorld, e.Name)
	}

	values, err := world.Pop(e.object)
	if err != nil {
		return err
	}

	if values[0] == 1 {
		return qgame.Apply(qgame.Flip(), e.object)
	}
	return nil
}
