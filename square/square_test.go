package square

import (
	"errors"
	"testing"
)

func TestFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Square
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     Square(28),
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     Square(63),
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     Square(0),
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 7",
			notation: "E4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 8",
			notation: "e44",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
			if got.Notation() != tt.notation {
				t.Errorf("unexpected notation: got=%s want=%s", got.Notation(), tt.notation)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	for file := Square(-1); file <= Size; file++ {
		for rank := Square(-1); rank <= Size; rank++ {
			sq, err := New(file, rank)
			inside := 0 <= file && file < Size && 0 <= rank && rank < Size
			if !inside {
				if !errors.Is(err, ErrInvalidNotation) {
					t.Errorf("file=%d rank=%d: unexpected error: got=%v want=%v", file, rank, err, ErrInvalidNotation)
				}
				continue
			}
			if err != nil {
				t.Fatalf("file=%d rank=%d: unexpected error: %v", file, rank, err)
			}
			if sq.File() != file || sq.Rank() != rank {
				t.Errorf("unexpected components: got=(%d,%d) want=(%d,%d)", sq.File(), sq.Rank(), file, rank)
			}
		}
	}
}

func TestNamedSquares(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sq   Square
		want string
	}{
		{A1, "a1"}, {H1, "h1"}, {E1, "e1"}, {A2, "a2"},
		{D4, "d4"}, {E5, "e5"}, {A8, "a8"}, {E8, "e8"}, {H8, "h8"},
		{NoSquare, "-"},
	}
	for _, tt := range tests {
		if got := tt.sq.String(); got != tt.want {
			t.Errorf("unexpected notation: got=%s want=%s", got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b Square
		want Square
	}{
		{A1, A1, 0},
		{A1, B2, 1},
		{A1, H8, 7},
		{H1, A8, 7},
		{E4, G5, 2},
		{D4, D8, 4},
		{C3, B1, 2},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%s, %s): got=%d want=%d", tt.a, tt.b, got, tt.want)
		}
		if got := Distance(tt.b, tt.a); got != tt.want {
			t.Errorf("Distance(%s, %s): got=%d want=%d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestDiagonals(t *testing.T) {
	t.Parallel()
	if A1.Diagonal() != H8.Diagonal() || A1.Diagonal() != D4.Diagonal() {
		t.Errorf("a1, d4 and h8 should share a diagonal")
	}
	if A8.AntiDiagonal() != H1.AntiDiagonal() || A8.AntiDiagonal() != D5.AntiDiagonal() {
		t.Errorf("a8, d5 and h1 should share an anti-diagonal")
	}
	if A1.Diagonal() == B1.Diagonal() {
		t.Errorf("a1 and b1 should not share a diagonal")
	}
}
