package piece

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceKnight
	PieceBishop
	PieceRook
	PieceQueen
	PieceKing
)

// Pieces lists every piece type in ascending order.
var Pieces = [6]Piece{PiecePawn, PieceKnight, PieceBishop, PieceRook, PieceQueen, PieceKing}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceKnight:
		return "Knight"
	case PieceBishop:
		return "Bishop"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// IsSlider reports whether the piece attacks along lines blocked by occupants.
func (p Piece) IsSlider() bool {
	switch p {
	case PieceBishop, PieceRook, PieceQueen:
		return true
	default:
		return false
	}
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceKnight:
		sym = 'N'
	case PieceBishop:
		sym = 'B'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceKnight:
			return "♘"
		case PieceBishop:
			return "♗"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceKnight:
			return "♞"
		case PieceBishop:
			return "♝"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// FromFEN decodes a FEN piece letter; uppercase is White, lowercase is Black.
func FromFEN(c byte) (Side, Piece, bool) {
	switch c {
	case 'P':
		return SideWhite, PiecePawn, true
	case 'N':
		return SideWhite, PieceKnight, true
	case 'B':
		return SideWhite, PieceBishop, true
	case 'R':
		return SideWhite, PieceRook, true
	case 'Q':
		return SideWhite, PieceQueen, true
	case 'K':
		return SideWhite, PieceKing, true
	case 'p':
		return SideBlack, PiecePawn, true
	case 'n':
		return SideBlack, PieceKnight, true
	case 'b':
		return SideBlack, PieceBishop, true
	case 'r':
		return SideBlack, PieceRook, true
	case 'q':
		return SideBlack, PieceQueen, true
	case 'k':
		return SideBlack, PieceKing, true
	default:
		return SideUnknown, PieceUnknown, false
	}
}
