package chess

import (
	"fmt"
	"unicode"
)

// Color is the side a piece plays for. Lowercase FEN letters are red.
type Color int

const (
	NoColor Color = iota
	Red
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Type is the kind of a piece.
type Type int

const (
	Empty Type = iota
	Rook
	Horse
	Elephant
	Advisor
	King
	Cannon
	Pawn
)

// Language selects the symbols used to render pieces.
type Language int

const (
	EN Language = iota
	ZH
)

var letters = map[Type]rune{
	Rook:     'r',
	Horse:    'h',
	Elephant: 'e',
	Advisor:  'a',
	King:     'k',
	Cannon:   'c',
	Pawn:     'p',
}

var chinese = map[Color]map[Type]string{
	Red: {
		Rook:     "車",
		Horse:    "馬",
		Elephant: "相",
		Advisor:  "仕",
		King:     "帥",
		Cannon:   "砲",
		Pawn:     "卒",
	},
	Black: {
		Rook:     "车",
		Horse:    "马",
		Elephant: "象",
		Advisor:  "士",
		King:     "将",
		Cannon:   "炮",
		Pawn:     "兵",
	},
}

// Piece is what sits on a square. The zero value is an empty square.
type Piece struct {
	Type  Type
	Color Color
}

// PieceFromFEN maps a FEN letter to a piece.
func PieceFromFEN(r rune) (Piece, error) {
	lower := unicode.ToLower(r)
	for t, letter := range letters {
		if letter != lower {
			continue
		}

		if unicode.IsLower(r) {
			return Piece{Type: t, Color: Red}, nil
		}
		return Piece{Type: t, Color: Black}, nil
	}

	return Piece{}, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, r)
}

func (p Piece) IsEmpty() bool {
	return p.Type == Empty
}

// Symbol renders the piece in the given language. Empty squares are ".".
func (p Piece) Symbol(lang Language) string {
	if p.IsEmpty() {
		return "."
	}

	if lang == ZH {
		return chinese[p.Color][p.Type]
	}

	letter := letters[p.Type]
	if p.Color == Black {
		letter = unicode.ToUpper(letter)
	}
	return string(letter)
}
