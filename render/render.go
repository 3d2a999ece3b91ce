// Package render draws positions and attack sets for humans. It only reads
// from the values it is given.
package render

import (
	"fmt"
	"strings"

	"github.com/daystram/quintessence/bitboard"
	"github.com/daystram/quintessence/board"
	"github.com/daystram/quintessence/piece"
	"github.com/daystram/quintessence/square"
)

const (
	DefaultCellSize = 45
)

type config struct {
	cellSize    int
	highlight   bitboard.Bitboard
	coordinates bool
	color       bool
}

type Option func(*config)

// WithHighlight marks the given squares, typically an attack set.
func WithHighlight(bb bitboard.Bitboard) Option {
	return func(cfg *config) {
		cfg.highlight = bb
	}
}

// WithCellSize sets the SVG square size in pixels.
func WithCellSize(size int) Option {
	return func(cfg *config) {
		if size > 0 {
			cfg.cellSize = size
		}
	}
}

func WithCoordinates(enabled bool) Option {
	return func(cfg *config) {
		cfg.coordinates = enabled
	}
}

// WithColor forces terminal colors on or off regardless of the output device.
func WithColor(enabled bool) Option {
	return func(cfg *config) {
		cfg.color = enabled
	}
}

func newConfig(opts []Option) *config {
	cfg := &config{
		cellSize:    DefaultCellSize,
		coordinates: true,
		color:       true,
	}
	for _, f := range opts {
		f(cfg)
	}
	return cfg
}

// Text draws p as an ASCII grid with FEN symbols. Highlighted empty squares
// show '*', highlighted pieces are wrapped in '*'.
func Text(p *board.Position, opts ...Option) string {
	cfg := newConfig(opts)
	builder := strings.Builder{}
	for y := square.Size - 1; y >= 0; y-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		if cfg.coordinates {
			_, _ = builder.WriteString(fmt.Sprintf(" %d |", y+1))
		} else {
			_, _ = builder.WriteString("   |")
		}
		for x := square.Square(0); x < square.Size; x++ {
			sq := y*square.Size + x
			s, pc := p.PieceAt(sq)
			sym := pc.SymbolFEN(s)
			marked := cfg.highlight.Has(sq)
			switch {
			case sym == "" && marked:
				_, _ = builder.WriteString(" * |")
			case sym == "":
				_, _ = builder.WriteString("   |")
			case marked:
				_, _ = builder.WriteString(fmt.Sprintf("*%s*|", sym))
			default:
				_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
			}
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+")
	if cfg.coordinates {
		_, _ = builder.WriteString("\n   ")
		for x := square.Square(0); x < square.Size; x++ {
			_, _ = builder.WriteString(fmt.Sprintf("  %s ", x.NotationComponentX()))
		}
	}
	return builder.String()
}

// Summary lists the non-board fields of p, one per line.
func Summary(p *board.Position) string {
	ep := "-"
	if sq, ok := p.EnPassant(); ok {
		ep = sq.Notation()
	}
	return fmt.Sprintf("turn: %s\ncast: %s\nenps: %s\nhalf: %4d\nfull: %4d",
		p.Turn(), p.CastleRights(), ep, p.HalfMoveClock(), p.FullMoveNumber())
}

func isLight(sq square.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}

func glyph(s piece.Side, pc piece.Piece) string {
	if pc == piece.PieceUnknown {
		return " "
	}
	return pc.SymbolUnicode(s)
}
