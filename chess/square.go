package chess

import "fmt"

const (
	Cols = 9
	Rows = 10
)

// Square addresses a board cell. Columns a-i run left to right, rows 0-9
// top to bottom as the board is printed.
type Square struct {
	Col int
	Row int
}

// ParseSquare reads squares such as "a0" or "i9".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}

	sq := Square{Col: int(s[0] - 'a'), Row: int(s[1] - '0')}
	if !sq.valid() {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}

func (sq Square) valid() bool {
	return sq.Col >= 0 && sq.Col < Cols && sq.Row >= 0 && sq.Row < Rows
}

func (sq Square) String() string {
	return fmt.Sprintf("%c%d", 'a'+sq.Col, sq.Row)
}

// between lists the squares strictly between from and to, which must share
// a row or a column.
func between(from, to Square) ([]Square, error) {
	if from.Row != to.Row && from.Col != to.Col {
		return nil, fmt.Errorf("%w: %s to %s", ErrNotInLine, from, to)
	}

	dc, dr := sign(to.Col-from.Col), sign(to.Row-from.Row)
	var path []Square
	for sq := (Square{from.Col + dc, from.Row + dr}); sq != to; sq = (Square{sq.Col + dc, sq.Row + dr}) {
		path = append(path, sq)
	}
	return path, nil
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
