// Package gridroll counts paper rolls a forklift can reach. A roll is
// reachable when fewer than four of its eight neighbours hold rolls.
package gridroll

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aocgo/aoc2025"
)

const (
	rollRune  = '@'
	emptyRune = '.'

	// crowded is the neighbour count at which a roll becomes unreachable.
	crowded = 4
)

// Parse reads a map of rolls (@) and empty floor (.).
func Parse(lines []string) (aoc.Grid[bool], error) {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return aoc.ParseGrid(lines, func(r rune) (bool, error) {
		switch r {
		case rollRune:
			return true, nil
		case emptyRune:
			return false, nil
		}
		return false, fmt.Errorf("unexpected %q", r)
	})
}

func isRoll(v bool) bool { return v }

// reachable returns the rolls with fewer than crowded neighbouring rolls.
func reachable(g aoc.Grid[bool]) []aoc.Pt {
	var out []aoc.Pt
	g.ForEach(func(p aoc.Pt, roll bool) {
		if roll && g.CountNeighbors(p, isRoll) < crowded {
			out = append(out, p)
		}
	})
	return out
}

// Accessible returns how many rolls are reachable right now. g is not
// modified.
func Accessible(g aoc.Grid[bool]) int {
	return len(reachable(g))
}

// Remove repeatedly removes every reachable roll until none remain
// reachable and returns the number removed. Each pass decides from the
// grid as it was at the start of the pass, then removes all at once.
func Remove(g aoc.Grid[bool]) int {
	removed := 0
	for pass := 1; ; pass++ {
		rm := reachable(g)
		if len(rm) == 0 {
			if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
				slog.Debug("gridroll: fixpoint", "passes", pass-1, "removed", removed, "hash", g.Hash())
			}
			return removed
		}
		for _, p := range rm {
			g.Set(p, false)
		}
		removed += len(rm)
	}
}

// RemoveIncremental returns the same count as Remove. Instead of
// rescanning the grid each pass, it keeps a neighbour count per roll and
// only revisits the neighbours of rolls removed in the previous pass.
func RemoveIncremental(g aoc.Grid[bool]) int {
	size := g.Size()
	counts := aoc.MakeGrid[int](size.X, size.Y)
	queued := aoc.MakeGrid[bool](size.X, size.Y)
	var first []aoc.Pt
	g.ForEach(func(p aoc.Pt, roll bool) {
		if !roll {
			return
		}
		n := g.CountNeighbors(p, isRoll)
		counts.Set(p, n)
		if n < crowded {
			first = append(first, p)
			queued.Set(p, true)
		}
	})
	q := aoc.NewQueue(first...)

	removed := 0
	for q.Len() > 0 {
		pass := q.Drain()
		for _, p := range pass {
			g.Set(p, false)
		}
		removed += len(pass)
		for _, p := range pass {
			p.ForNeighbors(func(n aoc.Pt) bool {
				if roll, ok := g.AtOk(n); !ok || !roll {
					return true
				}
				c := counts.At(n) - 1
				counts.Set(n, c)
				if c < crowded && !queued.At(n) {
					q.Push(n)
					queued.Set(n, true)
				}
				return true
			})
		}
	}
	return removed
}
