package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/quintessence/board"
	"github.com/daystram/quintessence/square"
)

type palette struct {
	light, dark, highlight, label *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		// decided per call instead of by the color.NoColor terminal probe
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		light:     mk(color.FgBlack, color.BgHiWhite),
		dark:      mk(color.FgBlack, color.BgGreen),
		highlight: mk(color.FgBlack, color.BgHiRed),
		label:     mk(color.Bold),
	}
}

// Terminal draws p with unicode glyphs on colored squares.
func Terminal(p *board.Position, opts ...Option) string {
	cfg := newConfig(opts)
	pal := newPalette(cfg.color)

	builder := strings.Builder{}
	for y := square.Size - 1; y >= 0; y-- {
		if cfg.coordinates {
			_, _ = builder.WriteString(pal.label.Sprint(" " + y.NotationComponentY() + " "))
		}
		for x := square.Square(0); x < square.Size; x++ {
			sq := y*square.Size + x
			c := pal.dark
			switch {
			case cfg.highlight.Has(sq):
				c = pal.highlight
			case isLight(sq):
				c = pal.light
			}
			_, _ = builder.WriteString(c.Sprint(" " + glyph(p.PieceAt(sq)) + " "))
		}
		_, _ = builder.WriteString("\n")
	}
	if cfg.coordinates {
		_, _ = builder.WriteString("   ")
		for x := square.Square(0); x < square.Size; x++ {
			_, _ = builder.WriteString(pal.label.Sprint(" " + x.NotationComponentX() + " "))
		}
	}
	return builder.String()
}
