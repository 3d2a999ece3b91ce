package board

import (
	"strings"

	"github.com/daystram/quintessence/piece"
)

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteRight
	CastleDirectionWhiteLeft
	CastleDirectionBlackRight
	CastleDirectionBlackLeft
)

var maskCastleRights = [4 + 1]CastleRights{
	CastleDirectionWhiteRight: 0b1000,
	CastleDirectionWhiteLeft:  0b0100,
	CastleDirectionBlackRight: 0b0010,
	CastleDirectionBlackLeft:  0b0001,
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteRight:
		return "White 0-0"
	case CastleDirectionWhiteLeft:
		return "White 0-0-0"
	case CastleDirectionBlackRight:
		return "Black 0-0"
	case CastleDirectionBlackLeft:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionWhiteLeft
}

func (d CastleDirection) IsRight() bool {
	return d == CastleDirectionWhiteRight || d == CastleDirectionBlackRight
}

// CastlingTypes holds the king-side and queen-side rights of one side.
type CastlingTypes struct {
	KingSide  bool
	QueenSide bool
}

// CastleRights is a set of castle directions. The zero value grants nothing.
type CastleRights uint8

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return d != CastleDirectionUnknown && c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s piece.Side) bool {
	t := c.Types(s)
	return t.KingSide || t.QueenSide
}

func (c CastleRights) Types(s piece.Side) CastlingTypes {
	switch s {
	case piece.SideWhite:
		return CastlingTypes{
			KingSide:  c.IsAllowed(CastleDirectionWhiteRight),
			QueenSide: c.IsAllowed(CastleDirectionWhiteLeft),
		}
	case piece.SideBlack:
		return CastlingTypes{
			KingSide:  c.IsAllowed(CastleDirectionBlackRight),
			QueenSide: c.IsAllowed(CastleDirectionBlackLeft),
		}
	default:
		return CastlingTypes{}
	}
}

// String returns the FEN castling field.
func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	builder := strings.Builder{}
	if c.IsAllowed(CastleDirectionWhiteRight) {
		_, _ = builder.WriteRune('K')
	}
	if c.IsAllowed(CastleDirectionWhiteLeft) {
		_, _ = builder.WriteRune('Q')
	}
	if c.IsAllowed(CastleDirectionBlackRight) {
		_, _ = builder.WriteRune('k')
	}
	if c.IsAllowed(CastleDirectionBlackLeft) {
		_, _ = builder.WriteRune('q')
	}
	return builder.String()
}
