package bench

import (
	"errors"
	"strings"
	"testing"

	"github.com/daystram/quintessence/attack"
	"github.com/daystram/quintessence/board"
)

func mustParse(t *testing.T, fens ...string) []*board.Position {
	t.Helper()
	positions := make([]*board.Position, 0, len(fens))
	for _, fen := range fens {
		p, err := board.ParseFEN(fen)
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		positions = append(positions, p)
	}
	return positions
}

func drain(out chan string) (func() []string, chan struct{}) {
	lines := make([]string, 0)
	done := make(chan struct{})
	go func() {
		for line := range out {
			lines = append(lines, line)
		}
		close(done)
	}()
	return func() []string { return lines }, done
}

func TestRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		fens        []string
		iterations  int
		parallel    bool
		verbose     bool
		wantSquares uint64
		wantChecks  uint64
		wantLines   int
	}{
		{
			name:        "starting position",
			fens:        []string{board.DefaultStartingPositionFEN},
			iterations:  1,
			wantSquares: 44,
			wantLines:   1,
		},
		{
			name:        "iterations accumulate",
			fens:        []string{board.DefaultStartingPositionFEN},
			iterations:  3,
			wantSquares: 132,
			wantLines:   1,
		},
		{
			name:        "zero iterations run once",
			fens:        []string{board.DefaultStartingPositionFEN},
			wantSquares: 44,
			wantLines:   1,
		},
		{
			name: "parallel verbose",
			fens: []string{
				board.DefaultStartingPositionFEN,
				"4k3/8/8/8/8/8/8/4RK2 b - - 0 1",
			},
			iterations: 2,
			parallel:   true,
			verbose:    true,
			// White: e1 rook e2-e8 a1-d1 f1, f1 king adds e1 f2 g1 g2
			// Black: e8 king d8 f8 d7 e7 f7
			wantSquares: 2 * (44 + 16 + 5),
			wantChecks:  2,
			wantLines:   3,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out := make(chan string)
			lines, done := drain(out)
			res, err := Run(Config{
				Positions:  mustParse(t, tt.fens...),
				Iterations: tt.iterations,
				Parallel:   tt.parallel,
				Verbose:    tt.verbose,
			}, out)
			close(out)
			<-done
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if res.Squares != tt.wantSquares {
				t.Errorf("unexpected squares: got=%d want=%d", res.Squares, tt.wantSquares)
			}
			if res.Checks != tt.wantChecks {
				t.Errorf("unexpected checks: got=%d want=%d", res.Checks, tt.wantChecks)
			}
			got := lines()
			if len(got) != tt.wantLines {
				t.Fatalf("unexpected line count: got=%d want=%d", len(got), tt.wantLines)
			}
			if !strings.HasPrefix(got[len(got)-1], "it=") {
				t.Errorf("unexpected summary: %s", got[len(got)-1])
			}
		})
	}
}

func TestRunNoPositions(t *testing.T) {
	t.Parallel()
	if _, err := Run(Config{}, make(chan string, 1)); !errors.Is(err, ErrNoPositions) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrNoPositions)
	}
}

func BenchmarkMeasure(b *testing.B) {
	p, err := board.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatal("unexpected error:", err)
	}
	tables := attack.Default()
	res := &Result{}
	positions := []*board.Position{p}
	for i := 0; i < b.N; i++ {
		runSerial(tables, positions, false, nil, res)
	}
}
