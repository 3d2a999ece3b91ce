package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/daystram/quintessence/board"
)

const (
	exitOK = iota
	exitErr
)

var (
	profileMode = flag.String("profile", "", "write a profile to the working directory: cpu or mem")

	showSquare = flag.String("square", "", "highlight the attacks of the piece on this square")
	showSide   = flag.String("side", "", "highlight every square attacked by this side: w or b")
	showSVG    = flag.String("svg", "", "also write the board as SVG to this path")
	showColor  = flag.Bool("color", true, "use terminal colors")

	benchRun        = flag.Bool("bench", false, "run bench mode")
	benchSuite      = flag.String("bench.suite", "", "FEN/EPD suite for bench mode (.fen, .epd, .txt, .zst, .bz2)")
	benchIterations = flag.Int("bench.iterations", 1000, "passes over the suite in bench mode")
	benchParallel   = flag.Bool("bench.parallel", false, "measure positions concurrently in bench mode")
	benchVerbose    = flag.Bool("bench.verbose", false, "print every position of the first pass in bench mode")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		log.Printf("unknown profile mode %q, profiling disabled\n", *profileMode)
	}

	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *benchRun {
		return runBench(fen, *benchSuite, *benchIterations, *benchParallel, *benchVerbose)
	}
	return show(os.Stdout, fen, showOptions{
		square:  *showSquare,
		side:    *showSide,
		svgPath: *showSVG,
		color:   *showColor,
	})
}
