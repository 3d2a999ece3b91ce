// Package bench measures attack generation over a set of positions.
package bench

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/quintessence/attack"
	"github.com/daystram/quintessence/board"
	"github.com/daystram/quintessence/piece"
)

var ErrNoPositions = errors.New("no positions to run")

type Config struct {
	Positions  []*board.Position
	Iterations int
	Parallel   bool
	Verbose    bool
}

type Result struct {
	Positions uint64
	// Attacked squares summed over both sides of every position and iteration.
	Squares uint64
	Checks  uint64
	Elapsed time.Duration
}

// Run computes the attacked squares of both sides for every position,
// Iterations times over. Progress and the summary line are sent to out.
func Run(cfg Config, out chan string) (Result, error) {
	if len(cfg.Positions) == 0 {
		return Result{}, ErrNoPositions
	}
	if cfg.Iterations < 1 {
		cfg.Iterations = 1
	}

	var run runFunc
	if cfg.Parallel {
		run = runParallel
	} else {
		run = runSerial
	}

	var res Result
	tables := attack.Default()
	start := time.Now()
	for i := 0; i < cfg.Iterations; i++ {
		run(tables, cfg.Positions, cfg.Verbose && i == 0, out, &res)
	}
	res.Elapsed = time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("it=%d positions=%d squares=%d chk=%d rate=%dp/s (%.3fs elapsed)",
			cfg.Iterations, res.Positions, res.Squares, res.Checks,
			int(float64(res.Positions)/res.Elapsed.Seconds()), res.Elapsed.Seconds())
	return res, nil
}

type runFunc func(t *attack.Tables, positions []*board.Position, verbose bool, out chan string, res *Result)

func runSerial(t *attack.Tables, positions []*board.Position, verbose bool, out chan string, res *Result) {
	for i, p := range positions {
		squares, checks := measure(t, p)
		res.Positions++
		res.Squares += squares
		res.Checks += checks
		if verbose {
			out <- fmt.Sprintf("%d: %s: %d", i+1, p.FEN(), squares)
		}
	}
}

func runParallel(t *attack.Tables, positions []*board.Position, verbose bool, out chan string, res *Result) {
	var wg sync.WaitGroup
	for i, p := range positions {
		i, p := i, p
		wg.Add(1)
		go func() {
			defer wg.Done()
			squares, checks := measure(t, p)
			atomic.AddUint64(&res.Positions, 1)
			atomic.AddUint64(&res.Squares, squares)
			atomic.AddUint64(&res.Checks, checks)
			if verbose {
				out <- fmt.Sprintf("%d: %s: %d", i+1, p.FEN(), squares)
			}
		}()
	}
	wg.Wait()
}

func measure(t *attack.Tables, p *board.Position) (uint64, uint64) {
	var squares, checks uint64
	for _, s := range piece.Sides {
		squares += uint64(p.AttackedBy(t, s).BitCount())
		if p.InCheck(t, s) {
			checks++
		}
	}
	return squares, checks
}
