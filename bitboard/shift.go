package bitboard

// Direction is a compass step expressed as a signed bit offset.
type Direction int8

const (
	North     Direction = 8
	South     Direction = -8
	East      Direction = 1
	West      Direction = -1
	NorthEast Direction = North + East
	NorthWest Direction = North + West
	SouthEast Direction = South + East
	SouthWest Direction = South + West
)

// Directions lists all eight compass steps.
var Directions = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	case NorthEast:
		return "NE"
	case NorthWest:
		return "NW"
	case SouthEast:
		return "SE"
	case SouthWest:
		return "SW"
	default:
		return ""
	}
}

// Shift moves every member of bb one step towards d.
// Bits that would wrap onto the opposite edge file are cleared.
func Shift(bb Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return ShiftN(bb)
	case NorthEast:
		return ShiftNE(bb)
	case East:
		return ShiftE(bb)
	case SouthEast:
		return ShiftSE(bb)
	case South:
		return ShiftS(bb)
	case SouthWest:
		return ShiftSW(bb)
	case West:
		return ShiftW(bb)
	case NorthWest:
		return ShiftNW(bb)
	default:
		return 0
	}
}

// ShiftPath applies each step in order, masking after every step, so a
// compound move is dropped as soon as any leg leaves the board.
func ShiftPath(bb Bitboard, ds ...Direction) Bitboard {
	for _, d := range ds {
		bb = Shift(bb, d)
	}
	return bb
}

func ShiftN(bb Bitboard) Bitboard {
	return bb << 8
}

func ShiftNE(bb Bitboard) Bitboard {
	return (bb << 9) &^ FileA
}

func ShiftE(bb Bitboard) Bitboard {
	return (bb << 1) &^ FileA
}

func ShiftSE(bb Bitboard) Bitboard {
	return (bb >> 7) &^ FileA
}

func ShiftS(bb Bitboard) Bitboard {
	return bb >> 8
}

func ShiftSW(bb Bitboard) Bitboard {
	return (bb >> 9) &^ FileH
}

func ShiftW(bb Bitboard) Bitboard {
	return (bb >> 1) &^ FileH
}

func ShiftNW(bb Bitboard) Bitboard {
	return (bb << 7) &^ FileH
}
