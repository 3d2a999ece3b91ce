package attack

import (
	"sync"

	"github.com/daystram/quintessence/bitboard"
	"github.com/daystram/quintessence/piece"
	"github.com/daystram/quintessence/square"
)

var (
	defaultTables *Tables
	defaultOnce   sync.Once

	knightPaths = [8][2]bitboard.Direction{
		{bitboard.North, bitboard.NorthEast},
		{bitboard.North, bitboard.NorthWest},
		{bitboard.South, bitboard.SouthEast},
		{bitboard.South, bitboard.SouthWest},
		{bitboard.East, bitboard.NorthEast},
		{bitboard.East, bitboard.SouthEast},
		{bitboard.West, bitboard.NorthWest},
		{bitboard.West, bitboard.SouthWest},
	}
	pawnDirections = [2 + 1][2]bitboard.Direction{
		piece.SideWhite: {bitboard.NorthWest, bitboard.NorthEast},
		piece.SideBlack: {bitboard.SouthWest, bitboard.SouthEast},
	}
)

// Tables holds the precomputed attack and line geometry for every square.
// A Tables value is never mutated once built and may be shared freely.
type Tables struct {
	king   [square.Total]bitboard.Bitboard
	knight [square.Total]bitboard.Bitboard
	pawn   [2 + 1][square.Total]bitboard.Bitboard
	masks  [square.Total]squareMask
}

type squareMask struct {
	bit   bitboard.Bitboard
	lines [4]bitboard.Bitboard // indexed by Slider, origin excluded
}

// Default returns the process-wide tables, building them on first use.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = NewTables()
	})
	return defaultTables
}

// NewTables builds a fresh set of tables.
func NewTables() *Tables {
	t := &Tables{}
	t.initLeapers()
	t.initLines()
	return t
}

func (t *Tables) initLeapers() {
	for sq := square.Square(0); sq < square.Total; sq++ {
		cell := bitboard.Cell(sq)

		mask := bitboard.Bitboard(0)
		for _, d := range bitboard.Directions {
			mask |= bitboard.Shift(cell, d)
		}
		t.king[sq] = mask

		mask = 0
		for _, path := range knightPaths {
			mask |= bitboard.ShiftPath(cell, path[:]...)
		}
		t.knight[sq] = mask

		for _, s := range piece.Sides {
			mask = 0
			for _, d := range pawnDirections[s] {
				mask |= bitboard.Shift(cell, d)
			}
			t.pawn[s][sq] = mask
		}
	}
}

func (t *Tables) initLines() {
	for sq := square.Square(0); sq < square.Total; sq++ {
		m := &t.masks[sq]
		m.bit = bitboard.Cell(sq)
		for other := square.Square(0); other < square.Total; other++ {
			if other == sq {
				continue
			}
			if other.File() == sq.File() {
				m.lines[SliderFile].Set(other)
			}
			if other.Rank() == sq.Rank() {
				m.lines[SliderRank].Set(other)
			}
			if other.Diagonal() == sq.Diagonal() {
				m.lines[SliderDiagonal].Set(other)
			}
			if other.AntiDiagonal() == sq.AntiDiagonal() {
				m.lines[SliderAntiDiagonal].Set(other)
			}
		}
	}
}

// Line returns the squares sharing axis a with sq, sq itself excluded.
func (t *Tables) Line(a Slider, sq square.Square) bitboard.Bitboard {
	return t.masks[sq].lines[a]
}

func (t *Tables) King(sq square.Square) bitboard.Bitboard {
	return t.king[sq]
}

func (t *Tables) Knight(sq square.Square) bitboard.Bitboard {
	return t.knight[sq]
}

// Pawn returns the diagonal capture squares of a pawn; pushes are not included.
func (t *Tables) Pawn(s piece.Side, sq square.Square) bitboard.Bitboard {
	return t.pawn[s][sq]
}
