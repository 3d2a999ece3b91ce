package render

import (
	"bufio"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/daystram/quintessence/board"
	"github.com/daystram/quintessence/piece"
	"github.com/daystram/quintessence/square"
)

const (
	svgFillLight     = "fill:#eeeed2"
	svgFillDark      = "fill:#769656"
	svgFillHighlight = "fill:#d9534f;fill-opacity:0.55"
	svgFontFamily    = "font-family:'DejaVu Sans',sans-serif"
)

// SVG writes p as a standalone SVG document, a1 at the bottom left.
// Highlighted squares carry a translucent marker.
func SVG(w io.Writer, p *board.Position, opts ...Option) error {
	cfg := newConfig(opts)
	cell := cfg.cellSize
	margin := 0
	if cfg.coordinates {
		margin = cell / 2
	}
	size := int(square.Size)*cell + margin

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(size, size)
	for y := square.Size - 1; y >= 0; y-- {
		for x := square.Square(0); x < square.Size; x++ {
			sq := y*square.Size + x
			left, top := margin+int(x)*cell, int(square.Size-1-y)*cell

			fill := svgFillDark
			if isLight(sq) {
				fill = svgFillLight
			}
			canvas.Rect(left, top, cell, cell, fill)
			if cfg.highlight.Has(sq) {
				canvas.Circle(left+cell/2, top+cell/2, cell/3, svgFillHighlight)
			}
			if s, pc := p.PieceAt(sq); pc != piece.PieceUnknown {
				canvas.Text(left+cell/2, top+cell*4/5, pc.SymbolUnicode(s),
					fmt.Sprintf("text-anchor:middle;font-size:%dpx;%s", cell*4/5, svgFontFamily))
			}
		}
	}
	if cfg.coordinates {
		style := fmt.Sprintf("text-anchor:middle;font-size:%dpx;%s", cell/3, svgFontFamily)
		for i := square.Square(0); i < square.Size; i++ {
			canvas.Text(margin/2, int(square.Size-1-i)*cell+cell/2+cell/8, i.NotationComponentY(), style)
			canvas.Text(margin+int(i)*cell+cell/2, int(square.Size)*cell+margin*2/3, i.NotationComponentX(), style)
		}
	}
	canvas.End()
	return bw.Flush()
}
