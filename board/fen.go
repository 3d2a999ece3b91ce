package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/quintessence/piece"
	"github.com/daystram/quintessence/square"
)

const fenSegments = 6

// ParseFEN decodes a six-field FEN string. On error no Position is returned.
func ParseFEN(fen string) (*Position, error) {
	segments := strings.Fields(fen)
	if len(segments) != fenSegments {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedInput, fenSegments, len(segments))
	}

	p := &Position{
		enPassant: square.NoSquare,
	}
	if err := p.parsePlacement(segments[0]); err != nil {
		return nil, err
	}

	switch segments[1] {
	case "w":
		p.turn = piece.SideWhite
	case "b":
		p.turn = piece.SideBlack
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, segments[1])
	}

	castleRights, err := parseCastleRights(segments[2])
	if err != nil {
		return nil, err
	}
	p.castleRights = castleRights

	if segments[3] != "-" {
		sq, err := square.FromNotation(segments[3])
		if err != nil {
			return nil, fmt.Errorf("%w: en passant %q: %v", ErrInvalidCoordinate, segments[3], err)
		}
		p.enPassant = sq
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: half move clock %q", ErrInvalidNumber, segments[4])
	}
	p.halfMoveClock = uint16(halfMoveClock)

	fullMoveNumber, err := strconv.ParseUint(segments[5], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: full move number %q", ErrInvalidNumber, segments[5])
	}
	p.fullMoveNumber = uint16(fullMoveNumber)

	return p, nil
}

func (p *Position) parsePlacement(placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != int(square.Size) {
		return fmt.Errorf("%w: expected %d ranks, got %d", ErrMalformedInput, square.Size, len(rows))
	}
	for i, row := range rows {
		y := square.Size - square.Square(i) - 1
		x := square.Square(0)
		for j := 0; j < len(row); j++ {
			cell := row[j]
			if '1' <= cell && cell <= '8' {
				x += square.Square(cell - '0')
				if x > square.Size {
					return fmt.Errorf("%w: rank %d overflows at '%c'", ErrMalformedInput, y+1, cell)
				}
				continue
			}
			s, pc, ok := piece.FromFEN(cell)
			if !ok {
				return fmt.Errorf("%w: rank %d symbol '%c'", ErrInvalidCharacter, y+1, cell)
			}
			if x >= square.Size {
				return fmt.Errorf("%w: rank %d overflows at '%c'", ErrMalformedInput, y+1, cell)
			}
			p.place(s, pc, y*square.Size+x)
			x++
		}
		if x != square.Size {
			return fmt.Errorf("%w: rank %d has %d files", ErrMalformedInput, y+1, x)
		}
	}
	return nil
}

func parseCastleRights(field string) (CastleRights, error) {
	var c CastleRights
	if field == "-" {
		return c, nil
	}
	if len(field) > 4 {
		return 0, fmt.Errorf("%w: castling rights %q", ErrMalformedInput, field)
	}
	for _, e := range field {
		switch e {
		case 'K':
			c.Set(CastleDirectionWhiteRight, true)
		case 'Q':
			c.Set(CastleDirectionWhiteLeft, true)
		case 'k':
			c.Set(CastleDirectionBlackRight, true)
		case 'q':
			c.Set(CastleDirectionBlackLeft, true)
		default:
			return 0, fmt.Errorf("%w: castling rights symbol '%c'", ErrInvalidCharacter, e)
		}
	}
	return c, nil
}

// FEN encodes the position back into a six-field FEN string.
func (p *Position) FEN() string {
	builder := strings.Builder{}
	var skip uint8
	for y := square.Size - 1; y >= 0; y-- {
		for x := square.Square(0); x < square.Size; x++ {
			for skip = 0; x < square.Size && !p.occupied.Has(y*square.Size+x); x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < square.Size {
				s, pc := p.PieceAt(y*square.Size + x)
				_, _ = builder.WriteString(pc.SymbolFEN(s))
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if p.turn == piece.SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	_, _ = builder.WriteString(p.castleRights.String())
	_, _ = builder.WriteRune(' ')
	_, _ = builder.WriteString(p.enPassant.Notation())

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", p.halfMoveClock, p.fullMoveNumber))

	return builder.String()
}
