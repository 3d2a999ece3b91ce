package square

import (
	"errors"

	"golang.org/x/exp/constraints"
)

const (
	// Size is the number of files and ranks on the board.
	Size Square = 8

	// Total is the number of squares on the board.
	Total = Size * Size

	// NoSquare marks the absence of a square.
	NoSquare Square = -1
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square indexes the board with little-endian rank-file mapping: a1=0, b1=1, ..., h8=63.
type Square int8

//nolint:revive
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 8*iota + 0, 8*iota + 1, 8*iota + 2, 8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
)

const (
	FileA Square = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 Square = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// New returns the square on the given file and rank, both zero-based.
func New(file, rank Square) (Square, error) {
	if file < 0 || Size <= file || rank < 0 || Size <= rank {
		return NoSquare, ErrInvalidNotation
	}
	return Size*rank + file, nil
}

// FromNotation parses algebraic notation such as "e4".
func FromNotation(n string) (Square, error) {
	x, y, err := notationToXY(n)
	if err != nil {
		return NoSquare, err
	}
	return Size*y + x, nil
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) IsValid() bool {
	return 0 <= s && s < Total
}

func (s Square) Notation() string {
	if !s.IsValid() {
		return "-"
	}
	return s.File().NotationComponentX() + s.Rank().NotationComponentY()
}

// File returns the zero-based file, 0 for the a-file.
func (s Square) File() Square {
	return s % Size
}

// Rank returns the zero-based rank, 0 for the first rank.
func (s Square) Rank() Square {
	return s / Size
}

// Diagonal identifies the a1-h8 direction diagonal through s.
func (s Square) Diagonal() Square {
	return s.File() - s.Rank()
}

// AntiDiagonal identifies the a8-h1 direction diagonal through s.
func (s Square) AntiDiagonal() Square {
	return s.File() + s.Rank()
}

// Distance returns the Chebyshev (king move) distance between two squares.
func Distance(a, b Square) Square {
	return max(abs(a.File()-b.File()), abs(a.Rank()-b.Rank()))
}

func (s Square) NotationComponentX() string {
	if s < 0 || Size <= s {
		return ""
	}
	return string(rune('a' + s))
}

func (s Square) NotationComponentY() string {
	if s < 0 || Size <= s {
		return ""
	}
	return string(rune('1' + s))
}

func notationToXY(n string) (Square, Square, error) {
	if len(n) != 2 {
		return 0, 0, ErrInvalidNotation
	}
	x, err := notationToX(n[0])
	if err != nil {
		return 0, 0, err
	}
	y, err := notationToY(n[1])
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func notationToX(x byte) (Square, error) {
	if x < 'a' || 'h' < x {
		return 0, ErrInvalidNotation
	}
	return Square(x - 'a'), nil
}

func notationToY(y byte) (Square, error) {
	if y < '1' || '8' < y {
		return 0, ErrInvalidNotation
	}
	return Square(y - '1'), nil
}

func max[T constraints.Ordered](x1, x2 T) T {
	if x1 > x2 {
		return x1
	}
	return x2
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return x * -1
	}
	return x
}
