package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/daystram/quintessence/attack"
	"github.com/daystram/quintessence/bitboard"
	"github.com/daystram/quintessence/board"
	"github.com/daystram/quintessence/piece"
	"github.com/daystram/quintessence/render"
	"github.com/daystram/quintessence/square"
)

type showOptions struct {
	square  string
	side    string
	svgPath string
	color   bool
}

func show(w io.Writer, fen string, opts showOptions) error {
	p, err := board.NewPosition(board.WithFEN(fen))
	if err != nil {
		return err
	}
	highlight, err := highlightFor(p, opts.square, opts.side)
	if err != nil {
		return err
	}

	renderOpts := []render.Option{
		render.WithHighlight(highlight),
		render.WithColor(opts.color),
	}
	_, _ = fmt.Fprintln(w, render.Terminal(p, renderOpts...))
	_, _ = fmt.Fprintln(w, render.Summary(p))
	_, _ = fmt.Fprintf(w, "fen:  %s\n", p.FEN())
	if highlight != bitboard.Empty {
		_, _ = fmt.Fprintf(w, "hits: %d %s\n", highlight.BitCount(), highlight)
	}

	if opts.svgPath == "" {
		return nil
	}
	file, err := os.Create(opts.svgPath)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := render.SVG(file, p, renderOpts...); err != nil {
		return err
	}
	log.Printf("board written to %s\n", opts.svgPath)
	return nil
}

func highlightFor(p *board.Position, sq, side string) (bitboard.Bitboard, error) {
	t := attack.Default()
	highlight := bitboard.Empty
	if sq != "" {
		from, err := square.FromNotation(sq)
		if err != nil {
			return 0, err
		}
		highlight |= p.AttacksFrom(t, from)
	}
	switch side {
	case "":
	case "w":
		highlight |= p.AttackedBy(t, piece.SideWhite)
	case "b":
		highlight |= p.AttackedBy(t, piece.SideBlack)
	default:
		return 0, fmt.Errorf("invalid side %q", side)
	}
	return highlight, nil
}
