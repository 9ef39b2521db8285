// Package freshness tracks which ingredient IDs fall in the fresh ranges
// of the inventory database.
package freshness

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aocgo/aoc2025"
)

// Interval is a closed range of IDs.
type Interval struct {
	Lo, Hi int
}

func (iv Interval) String() string { return fmt.Sprintf("%d-%d", iv.Lo, iv.Hi) }

// Len returns the number of IDs in iv.
func (iv Interval) Len() int { return iv.Hi - iv.Lo + 1 }

// Parse reads the database: lo-hi lines are fresh ranges and bare
// integers are available IDs. Blank lines are skipped. Repeated IDs are
// reported once.
func Parse(lines []string) ([]Interval, []int, error) {
	var (
		ivs   []Interval
		items []int
		seen  = make(map[int]bool)
	)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if lo, hi, ok := strings.Cut(line, "-"); ok {
			iv, err := parseInterval(lo, hi)
			if err != nil {
				return nil, nil, &aoc.ParseError{Line: i + 1, Input: line, Err: err}
			}
			ivs = append(ivs, iv)
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, nil, &aoc.ParseError{Line: i + 1, Input: line, Err: err}
		}
		if !seen[n] {
			seen[n] = true
			items = append(items, n)
		}
	}
	return ivs, items, nil
}

func parseInterval(lo, hi string) (Interval, error) {
	var iv Interval
	var err error
	if iv.Lo, err = strconv.Atoi(lo); err != nil {
		return iv, err
	}
	if iv.Hi, err = strconv.Atoi(hi); err != nil {
		return iv, err
	}
	if iv.Lo > iv.Hi {
		return iv, fmt.Errorf("low end %d above high end %d", iv.Lo, iv.Hi)
	}
	return iv, nil
}

// Set is a union of intervals, stored sorted and merged. It is read-only
// once built.
type Set struct {
	ivs      []Interval
	coverage int
}

// Build merges ivs into a Set. Overlapping intervals and intervals that
// touch end to end (such as 1-5 and 6-10) become one.
func Build(ivs []Interval) (*Set, error) {
	sorted := slices.Clone(ivs)
	for _, iv := range sorted {
		if iv.Lo > iv.Hi {
			return nil, aoc.DomainErrorf("freshness", "interval %v is empty", iv)
		}
	}
	slices.SortFunc(sorted, func(a, b Interval) int {
		if c := cmp.Compare(a.Lo, b.Lo); c != 0 {
			return c
		}
		return cmp.Compare(a.Hi, b.Hi)
	})
	s := &Set{}
	for _, iv := range sorted {
		if n := len(s.ivs); n > 0 && touches(s.ivs[n-1], iv) {
			last := &s.ivs[n-1]
			last.Hi = max(last.Hi, iv.Hi)
			continue
		}
		s.ivs = append(s.ivs, iv)
	}
	for _, iv := range s.ivs {
		s.coverage += iv.Len()
	}
	return s, nil
}

// touches reports whether b, which starts no earlier than a, overlaps a or
// begins right after it. It avoids computing a.Hi+1, which overflows at
// math.MaxInt.
func touches(a, b Interval) bool {
	return b.Lo <= a.Hi || b.Lo-a.Hi == 1
}

// Intervals returns the merged intervals in ascending order.
func (s *Set) Intervals() []Interval {
	return slices.Clone(s.ivs)
}

// Contains reports whether x is in any interval.
func (s *Set) Contains(x int) bool {
	// First interval ending at or after x.
	i, _ := slices.BinarySearchFunc(s.ivs, x, func(iv Interval, x int) int {
		if iv.Hi < x {
			return -1
		}
		return 1
	})
	return i < len(s.ivs) && s.ivs[i].Lo <= x
}

// Coverage returns how many distinct IDs the set contains.
func (s *Set) Coverage() int {
	return s.coverage
}

// CountFresh returns how many of items are in the set.
func (s *Set) CountFresh(items []int) int {
	n := 0
	for _, x := range items {
		if s.Contains(x) {
			n++
		}
	}
	return n
}
