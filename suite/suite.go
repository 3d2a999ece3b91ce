package suite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/quintessence/board"
)

// Normalize turns a suite line into a six-field FEN. Blank and '#' lines
// report false. EPD operations are dropped and missing clocks become "0 1".
func Normalize(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	head, _, _ := strings.Cut(line, ";")
	fields := strings.Fields(head)
	if len(fields) < 4 {
		return line, true
	}
	if len(fields) >= 6 && isNumber(fields[4]) && isNumber(fields[5]) {
		return strings.Join(fields[:6], " "), true
	}
	return strings.Join(fields[:4], " ") + " 0 1", true
}

// ReadAll opens src, decodes every position and closes it again.
func ReadAll(src Source) ([]*board.Position, error) {
	if err := src.Open(); err != nil {
		return nil, err
	}
	defer src.Close()

	positions := make([]*board.Position, 0)
	for n := 1; src.Scan(); n++ {
		fen, ok := Normalize(src.Text())
		if !ok {
			continue
		}
		p, err := board.ParseFEN(fen)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		positions = append(positions, p)
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	return positions, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseUint(s, 10, 16)
	return err == nil
}
