package main

import (
	_ "embed"

	"github.com/aocgo/aoc2025"
	"github.com/aocgo/aoc2025/columnar"
	"github.com/aocgo/aoc2025/dial"
	"github.com/aocgo/aoc2025/freshness"
	"github.com/aocgo/aoc2025/gridroll"
	"github.com/aocgo/aoc2025/invalidid"
	"github.com/aocgo/aoc2025/joltage"
)

//go:embed days.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) dial() (dial.Dial, error) {
	moves, err := dial.ParseMoves(s.Lines())
	if err != nil {
		return dial.Dial{}, err
	}
	d, err := dial.Run(dial.New(50, 100), moves)
	s.Debugf("dial stopped at %d after %d moves", d.Pos, len(moves))
	return d, err
}

/*
want=3

L68
L30
R48
L5
R60
L55
L1
L99
R14
L82
*/
func (s solver) D1p1() any {
	d, err := s.dial()
	if err != nil {
		return err
	}
	return d.Landings
}

// want=6
func (s solver) D1p2() any {
	d, err := s.dial()
	if err != nil {
		return err
	}
	return d.Passes
}

func (s solver) ranges(find invalidid.Strategy) any {
	ranges, err := invalidid.ParseRanges(string(s.Input()))
	if err != nil {
		return err
	}
	return invalidid.Sum(ranges, find)
}

/*
want=1227775554

11-22,95-115,998-1012,1188511880-1188511890,222220-222224,1698522-1698528,446443-446449,38593856-38593862,565653-565659,824824821-824824827,2121212118-2121212124
*/
func (s solver) D2p1() any {
	return s.ranges(invalidid.ScanTwice)
}

// want=4174379265
func (s solver) D2p2() any {
	return s.ranges(invalidid.GenerateRepeats)
}

func (s solver) joltage(n int) any {
	banks, err := joltage.ParseBanks(s.Lines())
	if err != nil {
		return err
	}
	total, err := joltage.Total(banks, n)
	if err != nil {
		return err
	}
	return total
}

/*
want=357

987654321111111
811111111111119
234234234234278
818181911112111
*/
func (s solver) D3p1() any {
	return s.joltage(2)
}

// want=3121910778619
func (s solver) D3p2() any {
	return s.joltage(12)
}

/*
want=13

..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
*/
func (s solver) D4p1() any {
	g, err := gridroll.Parse(s.Lines())
	if err != nil {
		return err
	}
	return gridroll.Accessible(g)
}

// want=43
func (s solver) D4p2() any {
	g, err := gridroll.Parse(s.Lines())
	if err != nil {
		return err
	}
	return gridroll.RemoveIncremental(g)
}

func (s solver) fresh() (*freshness.Set, []int, error) {
	ivs, items, err := freshness.Parse(s.Lines())
	if err != nil {
		return nil, nil, err
	}
	set, err := freshness.Build(ivs)
	if err != nil {
		return nil, nil, err
	}
	s.Debugf("%d ranges merged into %d", len(ivs), len(set.Intervals()))
	return set, items, nil
}

/*
want=3

3-5
10-14
16-20
12-18

1
5
8
11
17
32
*/
func (s solver) D5p1() any {
	set, items, err := s.fresh()
	if err != nil {
		return err
	}
	return set.CountFresh(items)
}

// want=14
func (s solver) D5p2() any {
	set, _, err := s.fresh()
	if err != nil {
		return err
	}
	return set.Coverage()
}

/*
want=4277556

123 328  51 64
 45 64  387 23
  6 98  215 314
*   +   *   +
*/
func (s solver) D6p1() any {
	rows, ops, err := columnar.ParseHorizontal(s.Lines())
	if err != nil {
		return err
	}
	res, err := columnar.Horizontal(rows, ops)
	if err != nil {
		return err
	}
	return aoc.Sum(res...)
}

// want=3263827
func (s solver) D6p2() any {
	cols, ops, err := columnar.ParseVertical(s.Lines())
	if err != nil {
		return err
	}
	res, err := columnar.Vertical(cols, ops)
	if err != nil {
		return err
	}
	return aoc.Sum(res...)
}
