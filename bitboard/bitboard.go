package bitboard

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/quintessence/square"
)

// Bitboard is a set of squares, bit i set means square i is a member.
// Little-endian rank-file (LERF) mapping.
type Bitboard uint64

const (
	Empty Bitboard = 0
	Full  Bitboard = ^Empty

	FileA Bitboard = 0x_01_01_01_01_01_01_01_01
	FileB Bitboard = FileA << 1
	FileC Bitboard = FileA << 2
	FileD Bitboard = FileA << 3
	FileE Bitboard = FileA << 4
	FileF Bitboard = FileA << 5
	FileG Bitboard = FileA << 6
	FileH Bitboard = FileA << 7

	Rank1 Bitboard = 0x_00_00_00_00_00_00_00_FF
	Rank2 Bitboard = Rank1 << (8 * 1)
	Rank3 Bitboard = Rank1 << (8 * 2)
	Rank4 Bitboard = Rank1 << (8 * 3)
	Rank5 Bitboard = Rank1 << (8 * 4)
	Rank6 Bitboard = Rank1 << (8 * 5)
	Rank7 Bitboard = Rank1 << (8 * 6)
	Rank8 Bitboard = Rank1 << (8 * 7)
)

var (
	maskFile = [square.Size]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}
	maskRank = [square.Size]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}
)

// Cell returns the singleton bitboard of sq.
func Cell(sq square.Square) Bitboard {
	return 1 << uint(sq)
}

// File returns the mask of the zero-based file f.
func File(f square.Square) Bitboard {
	return maskFile[f]
}

// Rank returns the mask of the zero-based rank r.
func Rank(r square.Square) Bitboard {
	return maskRank[r]
}

// FromSquares builds a bitboard holding every given square.
func FromSquares(sqs ...square.Square) Bitboard {
	var bb Bitboard
	for _, sq := range sqs {
		bb.Set(sq)
	}
	return bb
}

func (bb *Bitboard) Set(sq square.Square) {
	*bb |= Cell(sq)
}

func (bb *Bitboard) Unset(sq square.Square) {
	*bb &^= Cell(sq)
}

func (bb Bitboard) Has(sq square.Square) bool {
	return bb&Cell(sq) != 0
}

// LS1B returns the least significant set bit, or square.NoSquare if bb is empty.
func (bb Bitboard) LS1B() square.Square {
	if bb == 0 {
		return square.NoSquare
	}
	return square.Square(bits.TrailingZeros64(uint64(bb)))
}

// PopLS1B clears the least significant set bit and returns it.
func (bb *Bitboard) PopLS1B() square.Square {
	sq := bb.LS1B()
	*bb &= *bb - 1
	return sq
}

func (bb Bitboard) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bb)))
}

// Squares lists the members of bb in ascending order.
func (bb Bitboard) Squares() []square.Square {
	sqs := make([]square.Square, 0, bb.BitCount())
	for bb != 0 {
		sqs = append(sqs, bb.PopLS1B())
	}
	return sqs
}

// Reverse reverses the bit order, mapping a1 to h8 and h1 to a8.
func (bb Bitboard) Reverse() Bitboard {
	return Bitboard(bits.Reverse64(uint64(bb)))
}

func (bb Bitboard) String() string {
	return fmt.Sprintf("0x%016X", uint64(bb))
}

func (bb Bitboard) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := square.Size - 1; y >= 0; y-- {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		for x := square.Square(0); x < square.Size; x++ {
			if bb.Has(y*square.Size + x) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := square.Square(0); x < square.Size; x++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", x.NotationComponentX()))
	}
	return builder.String()
}
