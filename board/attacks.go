package board

import (
	"github.com/daystram/quintessence/attack"
	"github.com/daystram/quintessence/bitboard"
	"github.com/daystram/quintessence/piece"
	"github.com/daystram/quintessence/square"
)

// AttacksFrom returns the raw attack set of the piece standing on sq.
func (p *Position) AttacksFrom(t *attack.Tables, sq square.Square) bitboard.Bitboard {
	s, pc := p.PieceAt(sq)
	if pc == piece.PieceUnknown {
		return 0
	}
	return t.Attacks(pc, s, sq, p.sides[s], p.sides[s.Opposite()])
}

// AttackedBy returns every square attacked by at least one piece of side s.
func (p *Position) AttackedBy(t *attack.Tables, s piece.Side) bitboard.Bitboard {
	attackBM := bitboard.Bitboard(0)
	own, opponent := p.sides[s], p.sides[s.Opposite()]
	for _, pc := range piece.Pieces {
		for bm := p.pieces[s][pc]; bm != 0; {
			attackBM |= t.Attacks(pc, s, bm.PopLS1B(), own, opponent)
		}
	}
	return attackBM
}

func (p *Position) IsAttacked(t *attack.Tables, sq square.Square, by piece.Side) bool {
	return p.AttackedBy(t, by).Has(sq)
}

// InCheck reports whether the king of side s is attacked. A side without a
// king is never in check.
func (p *Position) InCheck(t *attack.Tables, s piece.Side) bool {
	king := p.King(s)
	if king == square.NoSquare {
		return false
	}
	return p.IsAttacked(t, king, s.Opposite())
}
