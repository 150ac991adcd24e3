package circuit

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/circuitpilot/racepilot/geometry"
)

// cellChars maps the host's single-character grid encoding to TerrainCell.
var cellChars = map[rune]TerrainCell{
	'.': Track,
	'#': Wall,
	'~': Sand,
	'=': Finish,
	'1': Start,
	'2': Start,
	'3': Start,
}

// ParseRows decodes the line-oriented grid encoding into a Circuit, plus
// the grid position of each numbered start cell ('1', '2', '3'), keyed
// by pilot index. Reading the circuit from the input stream is left to
// the caller; ParseRows is the reference decoder for the host's text
// protocol, and the one test fixtures in this repo build on.
//
// Complexity: O(Width*Height) time and memory.
func ParseRows(lines []string) (*Circuit, map[int]geometry.Vector, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, nil, ErrEmptyGrid
	}
	width := len([]rune(lines[0]))
	rows := make([][]TerrainCell, len(lines))
	starts := make(map[int]geometry.Vector)

	for y, line := range lines {
		runes := []rune(line)
		if len(runes) != width {
			return nil, nil, ErrNonRectangular
		}
		row := make([]TerrainCell, width)
		for x, ch := range runes {
			cell, ok := cellChars[ch]
			if !ok {
				return nil, nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownCellChar, ch, x, y)
			}
			row[x] = cell
			if ch >= '1' && ch <= '3' {
				starts[int(ch-'0')] = geometry.Vector{X: x, Y: y}
			}
		}
		rows[y] = row
	}

	c, err := New(rows)
	if err != nil {
		return nil, nil, err
	}
	if err := c.Validate(starts); err != nil {
		return nil, nil, err
	}

	return c, starts, nil
}

// Load reads a circuit from r, one row per line. Blank lines are skipped
// so trailing newlines in a fixture file do not trip ErrNonRectangular.
func Load(r io.Reader) (*Circuit, map[int]geometry.Vector, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return ParseRows(lines)
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*Circuit, map[int]geometry.Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return Load(f)
}
