// Package invalidid finds product IDs made of a digit sequence repeated
// two or more times, such as 55, 123123 or 1212121212.
package invalidid

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/aocgo/aoc2025"
)

// Range is a closed interval of IDs.
type Range struct {
	Lo, Hi int
}

func (r Range) String() string { return fmt.Sprintf("%d-%d", r.Lo, r.Hi) }

// ParseRanges parses a comma-separated list of lo-hi ranges.
func ParseRanges(line string) ([]Range, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}
	var out []Range
	for _, f := range strings.Split(line, ",") {
		f = strings.TrimSpace(f)
		lo, hi, ok := strings.Cut(f, "-")
		if !ok {
			return nil, aoc.ParseErrorf(0, f, "want lo-hi")
		}
		var r Range
		var err error
		if r.Lo, err = strconv.Atoi(lo); err != nil {
			return nil, &aoc.ParseError{Input: f, Err: err}
		}
		if r.Hi, err = strconv.Atoi(hi); err != nil {
			return nil, &aoc.ParseError{Input: f, Err: err}
		}
		if r.Lo > r.Hi {
			return nil, aoc.ParseErrorf(0, f, "low end above high end")
		}
		out = append(out, r)
	}
	return out, nil
}

// A Strategy returns the invalid IDs in a range in ascending order.
type Strategy func(Range) []int

// ScanTwice checks every ID in r and returns those whose decimal form is
// some sequence written exactly twice.
func ScanTwice(r Range) []int {
	var out []int
	for v := r.Lo; v <= r.Hi; v++ {
		s := strconv.Itoa(v)
		if len(s)%2 != 0 {
			continue
		}
		if half := len(s) / 2; s[:half] == s[half:] {
			out = append(out, v)
		}
	}
	return out
}

// GenerateTwice returns the same IDs as ScanTwice by constructing them
// from their repeated halves rather than scanning the range.
func GenerateTwice(r Range) []int {
	return generate(r, func(numLen, unitLen int) bool { return numLen == 2*unitLen })
}

// GenerateRepeats returns the IDs in r whose decimal form is some sequence
// written two or more times.
func GenerateRepeats(r Range) []int {
	return generate(r, func(numLen, unitLen int) bool { return true })
}

// generate builds candidates unit × (1 + 10^u + 10^2u + ...) for every
// digit length in r and every unit length u dividing it that keep accepts.
// Units never start with 0.
func generate(r Range, keep func(numLen, unitLen int) bool) []int {
	if r.Hi < 1 {
		return nil
	}
	seen := make(map[int]bool)
	lo := max(r.Lo, 1)
	for numLen := aoc.NumDigits(lo); numLen <= aoc.NumDigits(r.Hi); numLen++ {
		for unitLen := 1; unitLen <= numLen/2; unitLen++ {
			if numLen%unitLen != 0 || !keep(numLen, unitLen) {
				continue
			}
			m := multiplier(unitLen, numLen/unitLen)
			first := max(aoc.Pow10(unitLen-1), ceilDiv(r.Lo, m))
			last := min(aoc.Pow10(unitLen)-1, r.Hi/m)
			for u := first; u <= last; u++ {
				seen[u*m] = true
			}
		}
	}
	out := make([]int, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// multiplier returns 1 + 10^unitLen + ... + 10^((repeats-1)*unitLen).
func multiplier(unitLen, repeats int) int {
	step := aoc.Pow10(unitLen)
	m := 0
	for i := 0; i < repeats; i++ {
		m = m*step + 1
	}
	return m
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Sum adds up the invalid IDs of every range. An ID in two overlapping
// ranges counts twice.
func Sum(ranges []Range, find Strategy) int {
	total := 0
	for _, r := range ranges {
		total += aoc.Sum(find(r)...)
	}
	return total
}
