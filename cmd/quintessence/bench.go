package main

import (
	"log"

	"github.com/daystram/quintessence/bench"
	"github.com/daystram/quintessence/board"
	"github.com/daystram/quintessence/suite"
)

func runBench(fen, suitePath string, iterations int, parallel, verbose bool) error {
	var positions []*board.Position
	if suitePath != "" {
		src, err := suite.FromPath(suitePath)
		if err != nil {
			return err
		}
		positions, err = suite.ReadAll(src)
		if err != nil {
			return err
		}
		log.Printf("loaded %d positions (%s) from %s\n", len(positions), src.BytesRead(), suitePath)
	} else {
		p, err := board.ParseFEN(fen)
		if err != nil {
			return err
		}
		positions = append(positions, p)
	}

	out := make(chan string)
	done := make(chan struct{})
	go func() {
		for line := range out {
			log.Println(line)
		}
		close(done)
	}()
	_, err := bench.Run(bench.Config{
		Positions:  positions,
		Iterations: iterations,
		Parallel:   parallel,
		Verbose:    verbose,
	}, out)
	close(out)
	<-done
	return err
}
