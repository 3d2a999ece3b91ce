package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/daystram/quintessence/bitboard"
	"github.com/daystram/quintessence/board"
	"github.com/daystram/quintessence/square"
)

func mustParse(t *testing.T, fen string) *board.Position {
	t.Helper()
	p, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	return p
}

func TestText(t *testing.T) {
	t.Parallel()
	p := mustParse(t, "4k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
	got := Text(p, WithHighlight(bitboard.FromSquares(square.A1, square.A2)))
	want := strings.Join([]string{
		"   +---+---+---+---+---+---+---+---+",
		" 8 |   |   |   |   | k |   |   |   |",
		"   +---+---+---+---+---+---+---+---+",
		" 7 |   |   |   |   |   |   |   |   |",
		"   +---+---+---+---+---+---+---+---+",
		" 6 |   |   |   |   |   |   |   |   |",
		"   +---+---+---+---+---+---+---+---+",
		" 5 |   |   |   |   |   |   |   |   |",
		"   +---+---+---+---+---+---+---+---+",
		" 4 |   |   |   |   |   |   |   |   |",
		"   +---+---+---+---+---+---+---+---+",
		" 3 |   |   |   |   |   |   |   |   |",
		"   +---+---+---+---+---+---+---+---+",
		" 2 | * |   |   |   |   |   |   |   |",
		"   +---+---+---+---+---+---+---+---+",
		" 1 |*R*|   |   |   | K |   |   |   |",
		"   +---+---+---+---+---+---+---+---+",
		"     a   b   c   d   e   f   g   h ",
	}, "\n")
	if got != want {
		t.Errorf("unexpected text:\n%s\nwant:\n%s", got, want)
	}
}

func TestTextWithoutCoordinates(t *testing.T) {
	t.Parallel()
	p := mustParse(t, board.DefaultStartingPositionFEN)
	got := Text(p, WithCoordinates(false))
	if strings.ContainsAny(got, "12345678") {
		t.Errorf("unexpected coordinates:\n%s", got)
	}
	if n := strings.Count(got, "\n"); n != 16 {
		t.Errorf("unexpected line count: got=%d want=%d", n+1, 17)
	}
}

func TestTerminal(t *testing.T) {
	t.Parallel()
	p := mustParse(t, board.DefaultStartingPositionFEN)
	plain := Terminal(p, WithColor(false))
	if strings.Contains(plain, "\x1b[") {
		t.Errorf("unexpected escape codes:\n%q", plain)
	}
	lines := strings.Split(plain, "\n")
	if len(lines) != 9 {
		t.Fatalf("unexpected line count: got=%d want=%d", len(lines), 9)
	}
	if want := " 8  ♜  ♞  ♝  ♛  ♚  ♝  ♞  ♜ "; lines[0] != want {
		t.Errorf("unexpected top rank: got=%q want=%q", lines[0], want)
	}
	if want := "    a  b  c  d  e  f  g  h "; lines[8] != want {
		t.Errorf("unexpected file labels: got=%q want=%q", lines[8], want)
	}

	colored := Terminal(p, WithColor(true))
	if !strings.Contains(colored, "\x1b[") {
		t.Errorf("missing escape codes:\n%q", colored)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()
	p := mustParse(t, "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2")
	want := "turn: White\ncast: KQkq\nenps: c6\nhalf:    0\nfull:    2"
	if got := Summary(p); got != want {
		t.Errorf("unexpected summary: got=%q want=%q", got, want)
	}
}

func TestSVG(t *testing.T) {
	t.Parallel()
	p := mustParse(t, board.DefaultStartingPositionFEN)
	tests := []struct {
		name        string
		opts        []Option
		wantSize    string
		wantCircles int
		wantTexts   int
	}{
		{
			name:      "default",
			wantSize:  `width="382" height="382"`,
			wantTexts: 32 + 16,
		},
		{
			name:        "highlight without coordinates",
			opts:        []Option{WithCoordinates(false), WithCellSize(10), WithHighlight(bitboard.Rank3)},
			wantSize:    `width="80" height="80"`,
			wantCircles: 8,
			wantTexts:   32,
		},
		{
			name:      "non-positive cell size ignored",
			opts:      []Option{WithCellSize(0)},
			wantSize:  `width="382" height="382"`,
			wantTexts: 32 + 16,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			if err := SVG(buf, p, tt.opts...); err != nil {
				t.Fatal("unexpected error:", err)
			}
			got := buf.String()
			if !strings.Contains(got, tt.wantSize) {
				t.Errorf("missing %s in:\n%s", tt.wantSize, got)
			}
			if n := strings.Count(got, "<rect"); n != 64 {
				t.Errorf("unexpected rect count: got=%d want=%d", n, 64)
			}
			if n := strings.Count(got, "<circle"); n != tt.wantCircles {
				t.Errorf("unexpected circle count: got=%d want=%d", n, tt.wantCircles)
			}
			if n := strings.Count(got, "<text"); n != tt.wantTexts {
				t.Errorf("unexpected text count: got=%d want=%d", n, tt.wantTexts)
			}
			if !strings.HasSuffix(strings.TrimSpace(got), "</svg>") {
				t.Errorf("unterminated svg:\n%s", got)
			}
		})
	}
}
