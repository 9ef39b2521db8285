// Package dial simulates a safe dial: a pointer over positions 0..Size-1
// that rotates left or right, counting how often it lands on or passes 0.
package dial

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/aocgo/aoc2025"
)

type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ErrBadDirection is returned when a move's direction is neither Left nor
// Right.
var ErrBadDirection = errors.New("bad direction")

// Move is a single rotation.
type Move struct {
	Dir    Direction
	Clicks int
}

func (m Move) String() string {
	return fmt.Sprintf("%v%d", m.Dir, m.Clicks)
}

// ParseMove parses a move of the form L68 or R14.
func ParseMove(s string) (Move, error) {
	if len(s) < 2 {
		return Move{}, aoc.ParseErrorf(0, s, "want [L|R]<clicks>")
	}
	var m Move
	switch s[0] {
	case 'L':
		m.Dir = Left
	case 'R':
		m.Dir = Right
	default:
		return Move{}, aoc.ParseErrorf(0, s, "%w %q", ErrBadDirection, s[0])
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil {
		return Move{}, &aoc.ParseError{Input: s, Err: err}
	}
	if n < 0 {
		return Move{}, aoc.ParseErrorf(0, s, "negative clicks")
	}
	m.Clicks = n
	return m, nil
}

// ParseMoves parses one move per line. Blank lines are skipped.
func ParseMoves(lines []string) ([]Move, error) {
	moves := make([]Move, 0, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		m, err := ParseMove(line)
		if err != nil {
			var pe *aoc.ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Dial is the state of the dial. The zero value is not usable; see New.
type Dial struct {
	Size int
	Pos  int // always in [0, Size)

	Landings int // rotations that ended on 0
	Passes   int // times the pointer pointed at 0, during or at the end of a rotation
}

// New returns a dial of the given size pointing at start.
func New(start, size int) Dial {
	if size <= 0 {
		panic("dial: non-positive size")
	}
	return Dial{Size: size, Pos: mod(start, size)}
}

// Apply returns the dial after rotating it by m.
func (d Dial) Apply(m Move) (Dial, error) {
	if m.Dir != Left && m.Dir != Right {
		return d, fmt.Errorf("%w: %v", ErrBadDirection, m.Dir)
	}
	if m.Clicks < 0 {
		return d, aoc.DomainErrorf("dial", "negative clicks in %v", m)
	}
	r := m.Clicks % d.Size
	d.Passes += m.Clicks / d.Size
	switch m.Dir {
	case Left:
		if r >= d.Pos && d.Pos != 0 {
			d.Passes++
		}
		d.Pos = mod(d.Pos-r, d.Size)
	case Right:
		// r < Size, so starting on 0 never counts here.
		if r >= d.Size-d.Pos {
			d.Passes++
		}
		d.Pos = mod(d.Pos+r, d.Size)
	}
	if d.Pos == 0 {
		d.Landings++
	}
	return d, nil
}

// Run applies moves in order.
func Run(d Dial, moves []Move) (Dial, error) {
	for i, m := range moves {
		var err error
		if d, err = d.Apply(m); err != nil {
			return d, fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return d, nil
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
