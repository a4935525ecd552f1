package chess

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/theapemachine/errnie"
	"github.com/theapemachine/qgame"
	"golang.org/x/text/width"
)

// DefaultFEN is the opening position. The first rank in a FEN string is
// the bottom row of the printed board.
const DefaultFEN = "RHEAKAEHR/9/1C5C1/P1P1P1P1P/9/9/p1p1p1p1p/1c5c1/9/rheakaehr w---1"

/*
Board is a Chinese chess board whose pieces can be moved into
superposition. Squares start out classical. The first quantum move that
touches a square gives it an occupancy qubit in the board's quantum world,
and from then on that qubit decides whether the square's piece is there.
*/
type Board struct {
	SideToMove Color

	squares [Rows][Cols]Piece
	config  *qgame.Config
	world   *qgame.QuantumWorld
	quantum map[Square]*qgame.QuantumObject
}

// Option configures a board.
type Option func(*Board)

// WithConfig sets the configuration of the board's quantum world.
func WithConfig(cfg *qgame.Config) Option {
	return func(b *Board) {
		b.config = cfg
	}
}

// NewBoard returns a board in the opening position.
func NewBoard(opts ...Option) *Board {
	b, err := Parse(DefaultFEN, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

/*
Parse reads a board from FEN. Ranks are separated by "/", digits stand for
runs of empty squares and every rank must be 9 squares wide. An optional
second field starting with "w" or "b" sets red or black to move.
*/
func Parse(fen string, opts ...Option) (*Board, error) {
	b := &Board{
		SideToMove: Red,
		config:     qgame.NewConfig(),
		quantum:    make(map[Square]*qgame.QuantumObject),
	}

	for _, opt := range opts {
		opt(b)
	}

	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidFEN)
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != Rows {
		return nil, fmt.Errorf("%w: %d ranks, want %d", ErrInvalidFEN, len(ranks), Rows)
	}

	for i, rank := range ranks {
		row := Rows - 1 - i
		col := 0

		for _, r := range rank {
			if r >= '0' && r <= '9' {
				col += int(r - '0')
				continue
			}

			piece, err := PieceFromFEN(r)
			if err != nil {
				return nil, err
			}

			if col >= Cols {
				return nil, fmt.Errorf("%w: rank %q is too wide", ErrInvalidFEN, rank)
			}
			b.squares[row][col] = piece
			col++
		}

		if col != Cols {
			return nil, fmt.Errorf("%w: rank %q has %d columns", ErrInvalidFEN, rank, col)
		}
	}

	if len(fields) > 1 {
		switch fields[1][0] {
		case 'w':
			b.SideToMove = Red
		case 'b':
			b.SideToMove = Black
		default:
			return nil, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
		}
	}

	world, err := qgame.NewQuantumWorld(b.config)
	if err != nil {
		return nil, err
	}
	b.world = world

	errnie.Info("chess.Parse - %s to move", b.SideToMove)
	return b, nil
}

// At returns the piece shown on a square.
func (b *Board) At(sq Square) Piece {
	return b.squares[sq.Row][sq.Col]
}

// World returns the quantum world backing the board.
func (b *Board) World() *qgame.QuantumWorld {
	return b.world
}

/*
Render prints the board with column letters above and below and row numbers
on both sides. Squares whose piece is in superposition are shown as if the
piece were there. Wide Chinese symbols take up two columns, so they are not
followed by padding.
*/
func (b *Board) Render(lang Language) string {
	var sb strings.Builder

	header := "  a b c d e f g h i\n"
	sb.WriteString("\n")
	sb.WriteString(header)

	for row := 0; row < Rows; row++ {
		fmt.Fprintf(&sb, "%d ", row)
		for col := 0; col < Cols; col++ {
			sb.WriteString(cell(b.squares[row][col].Symbol(lang)))
		}
		fmt.Fprintf(&sb, " %d\n", row)
	}

	sb.WriteString(header)
	return sb.String()
}

func (b *Board) String() string {
	return b.Render(EN)
}

func cell(symbol string) string {
	r, _ := utf8.DecodeRuneInString(symbol)

	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return symbol
	default:
		return symbol + " "
	}
}
