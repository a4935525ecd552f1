package chess

import (
	"fmt"

	"github.com/theapemachine/qgame"
)

// certainty is how close to 0 or 1 an occupancy probability must be to
// count as settled.
const certainty = 1e-9

// object returns the occupancy qubit of a square, creating it from the
// square's classical contents the first time it is needed.
func (b *Board) object(sq Square) (*qgame.QuantumObject, error) {
	if obj, ok := b.quantum[sq]; ok {
		return obj, nil
	}

	initial := 0
	if !b.At(sq).IsEmpty() {
		initial = 1
	}

	obj, err := qgame.NewQuantumObject(sq.String(), initial)
	if err != nil {
		return nil, err
	}

	if err := b.world.AddObject(obj); err != nil {
		return nil, err
	}

	b.quantum[sq] = obj
	return obj, nil
}

// IsQuantum reports whether a square is tracked by an occupancy qubit.
func (b *Board) IsQuantum(sq Square) bool {
	_, ok := b.quantum[sq]
	return ok
}

// Probability returns the chance that the square's piece is really there.
func (b *Board) Probability(sq Square) (float64, error) {
	obj, ok := b.quantum[sq]
	if !ok {
		if b.At(sq).IsEmpty() {
			return 0, nil
		}
		return 1, nil
	}

	probs, err := b.world.Probabilities(obj)
	if err != nil {
		return 0, err
	}
	return probs[1], nil
}

/*
Jump moves the piece on src to dst. When neither square is quantum this is
an ordinary move and may capture an enemy piece. Otherwise the occupancy of
the two squares is swapped, which carries any superposition along, and dst
must be empty.
*/
func (b *Board) Jump(src, dst Square) error {
	piece, err := b.movable(src, dst)
	if err != nil {
		return err
	}

	target := b.At(dst)
	if !b.IsQuantum(src) && !b.IsQuantum(dst) {
		if !target.IsEmpty() && target.Color == piece.Color {
			return fmt.Errorf("%w: %s", ErrOccupied, dst)
		}
		b.squares[dst.Row][dst.Col] = piece
		b.squares[src.Row][src.Col] = Piece{}
		return nil
	}

	if !target.IsEmpty() {
		return fmt.Errorf("%w: %s", ErrOccupied, dst)
	}

	return b.quantumMove(qgame.Move(), piece, src, dst)
}

/*
SplitJump moves the piece on src to both first and second at once. The
piece leaves src and ends up on either destination with equal probability.
*/
func (b *Board) SplitJump(src, first, second Square) error {
	piece, err := b.movable(src, first)
	if err != nil {
		return err
	}

	if first == second {
		return fmt.Errorf("%w: split onto %s twice", ErrOccupied, first)
	}

	for _, dst := range []Square{first, second} {
		if !dst.valid() {
			return fmt.Errorf("%w: %s", ErrInvalidSquare, dst)
		}
		if dst == src || !b.At(dst).IsEmpty() {
			return fmt.Errorf("%w: %s", ErrOccupied, dst)
		}
	}

	return b.quantumMove(qgame.Split(), piece, src, first, second)
}

/*
Slide moves the piece on src along a rank or file to dst. A classical piece
in the way blocks the move. Pieces in the way that may or may not be there
make the move conditional: it happens only in the branches where every one
of them is absent.
*/
func (b *Board) Slide(src, dst Square) error {
	piece, err := b.movable(src, dst)
	if err != nil {
		return err
	}

	path, err := between(src, dst)
	if err != nil {
		return err
	}

	var blockers []*qgame.QuantumObject
	for _, sq := range path {
		if b.At(sq).IsEmpty() {
			continue
		}

		obj, ok := b.quantum[sq]
		if !ok {
			return fmt.Errorf("%w: %s", ErrBlocked, sq)
		}

		p, err := b.Probability(sq)
		if err != nil {
			return err
		}
		if p >= 1-certainty {
			return fmt.Errorf("%w: %s", ErrBlocked, sq)
		}
		if p > certainty {
			blockers = append(blockers, obj)
		}
	}

	if len(blockers) == 0 {
		return b.Jump(src, dst)
	}

	if !b.At(dst).IsEmpty() {
		return fmt.Errorf("%w: %s", ErrOccupied, dst)
	}

	absent := make([]int, len(blockers))
	return b.quantumMove(qgame.If(blockers...).Equals(absent...).Then(qgame.Move()), piece, src, dst)
}

// Measure observes a square and settles whether its piece is there.
func (b *Board) Measure(sq Square) (bool, error) {
	obj, ok := b.quantum[sq]
	if !ok {
		return !b.At(sq).IsEmpty(), nil
	}

	values, err := b.world.Pop(obj)
	if err != nil {
		return false, err
	}

	if err := b.refresh(); err != nil {
		return false, err
	}
	return values[0] == 1, nil
}

func (b *Board) movable(src, dst Square) (Piece, error) {
	if !src.valid() {
		return Piece{}, fmt.Errorf("%w: %s", ErrInvalidSquare, src)
	}
	if !dst.valid() {
		return Piece{}, fmt.Errorf("%w: %s", ErrInvalidSquare, dst)
	}
	if src == dst {
		return Piece{}, fmt.Errorf("%w: %s", ErrOccupied, dst)
	}

	piece := b.At(src)
	if piece.IsEmpty() {
		return Piece{}, fmt.Errorf("%w: %s", ErrNoPiece, src)
	}
	return piece, nil
}

func (b *Board) quantumMove(effect qgame.Effect, piece Piece, squares ...Square) error {
	objects := make([]*qgame.QuantumObject, len(squares))
	for i, sq := range squares {
		obj, err := b.object(sq)
		if err != nil {
			return err
		}
		objects[i] = obj
	}

	if err := qgame.Apply(effect, objects...); err != nil {
		return err
	}

	for _, sq := range squares[1:] {
		b.squares[sq.Row][sq.Col] = piece
	}
	return b.refresh()
}

// refresh clears the pieces of quantum squares that can no longer hold them.
func (b *Board) refresh() error {
	for sq := range b.quantum {
		p, err := b.Probability(sq)
		if err != nil {
			return err
		}
		if p < certainty {
			b.squares[sq.Row][sq.Col] = Piece{}
		}
	}
	return nil
}
