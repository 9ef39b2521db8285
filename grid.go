package aoc

import (
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if len(g) == 0 || p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// ParseGrid builds a grid from lines, mapping each rune through cell. All
// lines must have the same length.
func ParseGrid[T any](lines []string, cell func(rune) (T, error)) (Grid[T], error) {
	g := make(Grid[T], 0, len(lines))
	for y, line := range lines {
		row := make([]T, 0, len(line))
		for _, r := range line {
			v, err := cell(r)
			if err != nil {
				return nil, &ParseError{Line: y + 1, Input: line, Err: err}
			}
			row = append(row, v)
		}
		if y > 0 && len(row) != len(g[0]) {
			return nil, ParseErrorf(y+1, line, "row has %d cells; want %d", len(row), len(g[0]))
		}
		g = append(g, row)
	}
	return g, nil
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a digest of the grid's contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

func (g Grid[T]) TransposeInto(out Grid[T]) {
	size := g.Size()
	for x := 0; x < size.X; x++ {
		for y := 0; y < size.Y; y++ {
			out[x][y] = g[y][x]
		}
	}
}

func (g Grid[T]) Transpose() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.Y, size.X)
	g.TransposeInto(out)
	return out
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Clone returns a deep copy of g.
func (g Grid[T]) Clone() Grid[T] {
	size := g.Size()
	out := MakeGrid[T](size.X, size.Y)
	for y := range g {
		copy(out[y], g[y])
	}
	return out
}

// ForEach calls f for every cell in row-major order.
func (g Grid[T]) ForEach(f func(Pt, T)) {
	for y, row := range g {
		for x, v := range row {
			f(Pt{x, y}, v)
		}
	}
}

// CountNeighbors returns how many in-bounds 8-neighbours of p satisfy match.
// Cells outside the grid are not counted.
func (g Grid[T]) CountNeighbors(p Pt, match func(T) bool) int {
	n := 0
	p.ForNeighbors(func(q Pt) bool {
		if v, ok := g.AtOk(q); ok && match(v) {
			n++
		}
		return true
	})
	return n
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
