package qgame

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/theapemachine/errnie"
)

/*
QuantumWorld is the shared board that quantum objects live on. It owns the
simulated state of every object added to it, applies operations as they
arrive and keeps a ledger of every change so the last effect can be undone.

Reading the world comes in two flavours:
  - Peek samples readings without disturbing the state.
  - Pop measures objects and collapses the state onto the outcome.
*/
type QuantumWorld struct {
	mu sync.RWMutex

	config  *Config
	rng     *rand.Rand
	objects []*QuantumObject
	byName  map[string]*QuantumObject
	index   map[*Qid]int
	state   *StateVector
	ledger  ledger
	metrics *Metrics
}

// NewQuantumWorld returns a world holding the given objects. A nil config
// uses NewConfig.
func NewQuantumWorld(config *Config, objects ...*QuantumObject) (*QuantumWorld, error) {
	if config == nil {
		config = NewConfig()
	}

	errnie.Info("NewQuantumWorld - objects %d, maxStateSize %d", len(objects), config.MaxStateSize)

	world := &QuantumWorld{
		config:  config,
		rng:     config.rng(),
		byName:  make(map[string]*QuantumObject),
		index:   make(map[*Qid]int),
		state:   newStateVector(nil, nil),
		metrics: newMetrics(),
	}

	for _, obj := range objects {
		if err := world.AddObject(obj); err != nil {
			return nil, err
		}
	}

	return world, nil
}

// AddObject places an object on this world in its initial state.
func (world *QuantumWorld) AddObject(obj *QuantumObject) error {
	world.mu.Lock()
	defer world.mu.Unlock()

	if _, exists := world.byName[obj.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateObject, obj.Name)
	}

	if obj.Board != nil {
		return fmt.Errorf("%w: %s is already on a board", ErrDuplicateObject, obj.Name)
	}

	if size := world.state.sizeWith(obj.NumStates); size > world.config.MaxStateSize {
		return fmt.Errorf("%w: adding %s needs %d amplitudes", ErrStateTooLarge, obj.Name, size)
	}

	world.index[obj.Qid] = len(world.objects)
	world.objects = append(world.objects, obj)
	world.byName[obj.Name] = obj
	world.state.addQid(obj.NumStates, obj.InitialState)
	obj.Board = world

	world.metrics.recordObject(len(world.state.Vector))
	return nil
}

// Get returns the object with the given name, or nil.
func (world *QuantumWorld) Get(name string) *QuantumObject {
	world.mu.RLock()
	defer world.mu.RUnlock()

	return world.byName[name]
}

// Objects returns the objects in the order they were added.
func (world *QuantumWorld) Objects() []*QuantumObject {
	world.mu.RLock()
	defer world.mu.RUnlock()

	return append([]*QuantumObject{}, world.objects...)
}

// Add validates and applies the operations as a single undoable frame.
func (world *QuantumWorld) Add(ops ...Operation) error {
	world.mu.Lock()
	defer world.mu.Unlock()

	for _, op := range ops {
		if err := world.check(op); err != nil {
			return err
		}
	}

	for _, op := range ops {
		world.applyOp(op)
	}

	world.ledger.append(ops, nil)
	world.metrics.recordFrame(len(ops), len(world.state.Vector))
	return nil
}

func (world *QuantumWorld) check(op Operation) error {
	if err := op.validate(); err != nil {
		return err
	}

	for _, q := range op.Qids() {
		if _, ok := world.index[q]; !ok {
			return fmt.Errorf("%w: %s in %s", ErrUnknownObject, q.Name, op)
		}
	}

	return nil
}

func (world *QuantumWorld) applyOp(op Operation) {
	targets := make([]int, len(op.Targets))
	for i, q := range op.Targets {
		targets[i] = world.index[q]
	}

	controls := make([]int, len(op.Controls))
	for i, q := range op.Controls {
		controls[i] = world.index[q]
	}

	world.state.apply(op.Matrix, targets, controls, op.ControlValues)
}

func (world *QuantumWorld) positions(objects []*QuantumObject) ([]int, error) {
	if objects == nil {
		objects = world.objects
	}

	out := make([]int, len(objects))
	for i, obj := range objects {
		if obj == nil {
			return nil, fmt.Errorf("%w: nil object", ErrUnknownObject)
		}

		pos, ok := world.index[obj.Qid]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownObject, obj.Name)
		}
		out[i] = pos
	}
	return out, nil
}

// Probabilities returns the chance of reading each value of obj.
func (world *QuantumWorld) Probabilities(obj *QuantumObject) ([]float64, error) {
	world.mu.RLock()
	defer world.mu.RUnlock()

	pos, err := world.positions([]*QuantumObject{obj})
	if err != nil {
		return nil, err
	}

	return world.state.marginal(pos[0]), nil
}

/*
Peek samples count joint readings of the objects without collapsing the
state. Each reading holds one value per object, in the order given. A nil
objects slice reads every object in the world.
*/
func (world *QuantumWorld) Peek(objects []*QuantumObject, count int) ([][]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("cannot take %d samples", count)
	}

	world.mu.Lock()
	defer world.mu.Unlock()

	pos, err := world.positions(objects)
	if err != nil {
		return nil, err
	}

	world.metrics.recordPeek(count)
	return world.state.sample(pos, count, world.rng), nil
}

// Pop measures the objects one after another, collapsing the state onto
// what was seen. The outcomes are recorded as one undoable frame.
func (world *QuantumWorld) Pop(objects ...*QuantumObject) ([]int, error) {
	world.mu.Lock()
	defer world.mu.Unlock()

	pos, err := world.positions(objects)
	if err != nil {
		return nil, err
	}

	if objects == nil {
		objects = world.objects
	}

	values := make([]int, len(pos))
	measurements := make([]Measurement, len(pos))
	for i, p := range pos {
		values[i] = world.state.Measure(p, world.rng)
		measurements[i] = Measurement{Qid: objects[i].Qid, Value: values[i]}
	}

	world.ledger.append(nil, measurements)
	world.metrics.recordPop()
	errnie.Info("QuantumWorld.Pop - %v = %v", objects, values)

	return values, nil
}

// UndoLastEffect removes the most recent frame and rebuilds the state from
// the remaining history.
func (world *QuantumWorld) UndoLastEffect() error {
	world.mu.Lock()
	defer world.mu.Unlock()

	if _, ok := world.ledger.dropLast(); !ok {
		return ErrNothingToUndo
	}

	start := time.Now()
	if err := world.replay(); err != nil {
		return err
	}

	world.metrics.recordUndo(time.Since(start))
	return nil
}

func (world *QuantumWorld) replay() error {
	dims := make([]int, len(world.objects))
	initial := make([]int, len(world.objects))
	for i, obj := range world.objects {
		dims[i] = obj.NumStates
		initial[i] = obj.InitialState
	}

	world.state = newStateVector(dims, initial)

	for _, frame := range world.ledger.frames {
		for _, op := range frame.Operations {
			world.applyOp(op)
		}

		for _, m := range frame.Measurements {
			if err := world.state.collapse(world.index[m.Qid], m.Value); err != nil {
				return err
			}
		}
	}

	return nil
}

// History returns every frame from sequence number since onwards.
func (world *QuantumWorld) History(since uint64) []Frame {
	world.mu.RLock()
	defer world.mu.RUnlock()

	return world.ledger.since(since)
}

// Metrics returns the world's counters; read them with ExportMetrics.
func (world *QuantumWorld) Metrics() *Metrics {
	return world.metrics
}
