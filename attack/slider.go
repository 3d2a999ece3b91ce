package attack

import (
	"github.com/daystram/quintessence/bitboard"
	"github.com/daystram/quintessence/square"
)

// Slider is a line axis a sliding piece moves along.
type Slider uint8

const (
	SliderFile Slider = iota
	SliderRank
	SliderDiagonal
	SliderAntiDiagonal
)

// Sliders lists all four axes.
var Sliders = [4]Slider{SliderFile, SliderRank, SliderDiagonal, SliderAntiDiagonal}

func (a Slider) String() string {
	switch a {
	case SliderFile:
		return "File"
	case SliderRank:
		return "Rank"
	case SliderDiagonal:
		return "Diagonal"
	case SliderAntiDiagonal:
		return "AntiDiagonal"
	default:
		return ""
	}
}

// Slide returns the squares visible from sq along axis a, up to and including
// the first occupant in both directions. Uses Hyperbola Quintessence:
// (o-r) ^ rev(rev(o)-rev(r)) over the line, with o excluding the origin.
func (t *Tables) Slide(a Slider, sq square.Square, occupied bitboard.Bitboard) bitboard.Bitboard {
	m := &t.masks[sq]
	line := m.lines[a]
	forward := occupied & line
	reverse := forward.Reverse()
	forward -= m.bit
	reverse -= m.bit.Reverse()
	return (forward ^ reverse.Reverse()) & line
}

func (t *Tables) Rook(sq square.Square, occupied bitboard.Bitboard) bitboard.Bitboard {
	return t.Slide(SliderFile, sq, occupied) | t.Slide(SliderRank, sq, occupied)
}

func (t *Tables) Bishop(sq square.Square, occupied bitboard.Bitboard) bitboard.Bitboard {
	return t.Slide(SliderDiagonal, sq, occupied) | t.Slide(SliderAntiDiagonal, sq, occupied)
}

func (t *Tables) Queen(sq square.Square, occupied bitboard.Bitboard) bitboard.Bitboard {
	return t.Rook(sq, occupied) | t.Bishop(sq, occupied)
}
