// Package attack computes the squares attacked by a piece from precomputed
// leaper tables and occupancy-aware slider lines.
package attack

import (
	"github.com/daystram/quintessence/bitboard"
	"github.com/daystram/quintessence/piece"
	"github.com/daystram/quintessence/square"
)

// Attacks returns every square the piece on sq sees, given both occupancies.
// Squares held by own pieces are included; callers that want capture targets
// only must clear them with &^ own.
func (t *Tables) Attacks(p piece.Piece, s piece.Side, sq square.Square, own, opponent bitboard.Bitboard) bitboard.Bitboard {
	occupied := own | opponent
	switch p {
	case piece.PiecePawn:
		return t.Pawn(s, sq)
	case piece.PieceKnight:
		return t.Knight(sq)
	case piece.PieceBishop:
		return t.Bishop(sq, occupied)
	case piece.PieceRook:
		return t.Rook(sq, occupied)
	case piece.PieceQueen:
		return t.Queen(sq, occupied)
	case piece.PieceKing:
		return t.King(sq)
	default:
		return 0
	}
}
