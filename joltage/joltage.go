// Package joltage picks the largest number that can be formed by turning
// on n batteries of a bank, keeping the batteries in their original order.
package joltage

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aocgo/aoc2025"
)

// maxDigits is the longest selection that fits in an int.
const maxDigits = 18

// Bank is a row of battery ratings, one digit each.
type Bank []int

// ParseBank parses a line of digits.
func ParseBank(line string) (Bank, error) {
	d, err := aoc.ParseDigits(line)
	if err != nil {
		return nil, &aoc.ParseError{Input: line, Err: err}
	}
	return Bank(d), nil
}

// ParseBanks parses one bank per line. Blank lines are skipped.
func ParseBanks(lines []string) ([]Bank, error) {
	var out []Bank
	for i, line := range lines {
		if line == "" {
			continue
		}
		b, err := ParseBank(line)
		if err != nil {
			var pe *aoc.ParseError
			if errors.As(err, &pe) {
				pe.Line = i + 1
			}
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (b Bank) check(op string, n int) error {
	switch {
	case n < 1:
		return aoc.DomainErrorf(op, "selection length %d; want at least 1", n)
	case n > len(b):
		return aoc.DomainErrorf(op, "selection length %d exceeds bank length %d", n, len(b))
	case n > maxDigits:
		return aoc.DomainErrorf(op, "selection length %d exceeds %d digits", n, maxDigits)
	}
	return nil
}

// Pair returns the largest two-digit selection. The first occurrence of
// the largest digit is always used: if anything follows it, it leads and
// the largest later digit follows; otherwise it is last and the largest
// earlier digit leads.
func (b Bank) Pair() (int, error) {
	if err := b.check("pair", 2); err != nil {
		return 0, err
	}
	hi, ix := aoc.Max([]int(b))
	if ix < len(b)-1 {
		next, _ := aoc.Max([]int(b[ix+1:]))
		return 10*hi + next, nil
	}
	prev, _ := aoc.Max([]int(b[:ix]))
	return 10*prev + hi, nil
}

// Greedy returns the largest n-digit selection by growing it one digit at
// a time: each step activates whichever remaining position yields the
// largest number when merged, in index order, with those already active.
// Ties go to the lowest index. It costs O(n²·len(b)).
func (b Bank) Greedy(n int) (int, error) {
	if err := b.check("greedy", n); err != nil {
		return 0, err
	}
	inactive := make([]int, len(b))
	for i := range inactive {
		inactive[i] = i
	}
	var active []int
	best := -1
	for step := 0; step < n; step++ {
		best = -1
		bestAt := -1
		for j, ix := range inactive {
			if v := b.value(active, ix); v > best {
				best, bestAt = v, j
			}
		}
		active = append(active, inactive[bestAt])
		slices.Sort(active)
		inactive = slices.Delete(inactive, bestAt, bestAt+1)
	}
	return best, nil
}

// value returns the number formed by the digits at the sorted indexes
// active plus extra.
func (b Bank) value(active []int, extra int) int {
	v := 0
	placed := false
	for _, ix := range active {
		if !placed && extra < ix {
			v = v*10 + b[extra]
			placed = true
		}
		v = v*10 + b[ix]
	}
	if !placed {
		v = v*10 + b[extra]
	}
	return v
}

// Max returns the same selection as Greedy in O(len(b)) using a
// monotonic stack: a digit evicts smaller digits before it while there
// are still digits to spare.
func (b Bank) Max(n int) (int, error) {
	if err := b.check("max", n); err != nil {
		return 0, err
	}
	drop := len(b) - n
	var st aoc.Stack[int]
	for _, d := range b {
		for drop > 0 {
			top, ok := st.Peek()
			if !ok || top >= d {
				break
			}
			st.Pop()
			drop--
		}
		st.Push(d)
	}
	v := 0
	for _, d := range st.Bottom(n) {
		v = v*10 + d
	}
	return v, nil
}

// Total sums the selection of length n over every bank, using Pair when
// n is 2 and Max otherwise.
func Total(banks []Bank, n int) (int, error) {
	total := 0
	for i, b := range banks {
		var v int
		var err error
		if n == 2 {
			v, err = b.Pair()
		} else {
			v, err = b.Max(n)
		}
		if err != nil {
			return 0, fmt.Errorf("bank %d: %w", i+1, err)
		}
		total += v
	}
	return total, nil
}
