package board

import (
	"github.com/daystram/quintessence/bitboard"
	"github.com/daystram/quintessence/piece"
	"github.com/daystram/quintessence/square"
)

const (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Position is a decoded FEN. It is never modified after decoding.
type Position struct {
	// grid data
	pieces   [2 + 1][6 + 1]bitboard.Bitboard
	sides    [2 + 1]bitboard.Bitboard
	occupied bitboard.Bitboard

	// meta
	turn           piece.Side
	castleRights   CastleRights
	enPassant      square.Square
	halfMoveClock  uint16
	fullMoveNumber uint16
}

type positionConfig struct {
	fen string
}

type PositionOption func(*positionConfig)

func WithFEN(fen string) PositionOption {
	return func(cfg *positionConfig) {
		cfg.fen = fen
	}
}

// NewPosition decodes the configured FEN, the starting position by default.
func NewPosition(opts ...PositionOption) (*Position, error) {
	cfg := &positionConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	return ParseFEN(cfg.fen)
}

// Bitboard returns the squares holding piece p of side s.
func (p *Position) Bitboard(s piece.Side, pc piece.Piece) bitboard.Bitboard {
	return p.pieces[s][pc]
}

// Occupancy returns the squares holding any piece of side s.
func (p *Position) Occupancy(s piece.Side) bitboard.Bitboard {
	return p.sides[s]
}

// Occupied returns the squares holding any piece.
func (p *Position) Occupied() bitboard.Bitboard {
	return p.occupied
}

func (p *Position) Turn() piece.Side {
	return p.turn
}

func (p *Position) CastleRights() CastleRights {
	return p.castleRights
}

// HasCastlingRights reports whether either side may still castle.
func (p *Position) HasCastlingRights() bool {
	return p.castleRights != 0
}

func (p *Position) CastlingRights(s piece.Side) CastlingTypes {
	return p.castleRights.Types(s)
}

// EnPassant returns the en-passant target square, if any.
func (p *Position) EnPassant() (square.Square, bool) {
	return p.enPassant, p.enPassant != square.NoSquare
}

func (p *Position) HalfMoveClock() uint16 {
	return p.halfMoveClock
}

func (p *Position) FullMoveNumber() uint16 {
	return p.fullMoveNumber
}

// PieceAt returns the side and piece on sq, or unknowns for an empty square.
func (p *Position) PieceAt(sq square.Square) (piece.Side, piece.Piece) {
	if !p.occupied.Has(sq) {
		return piece.SideUnknown, piece.PieceUnknown
	}
	for _, s := range piece.Sides {
		if !p.sides[s].Has(sq) {
			continue
		}
		for _, pc := range piece.Pieces {
			if p.pieces[s][pc].Has(sq) {
				return s, pc
			}
		}
	}
	return piece.SideUnknown, piece.PieceUnknown
}

// King returns the king square of side s, or square.NoSquare if it has none.
func (p *Position) King(s piece.Side) square.Square {
	return p.pieces[s][piece.PieceKing].LS1B()
}

func (p *Position) place(s piece.Side, pc piece.Piece, sq square.Square) {
	p.pieces[s][pc].Set(sq)
	p.sides[s].Set(sq)
	p.occupied.Set(sq)
}
