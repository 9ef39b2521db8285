package aoc

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Digits returns the individual digits of the string.
func Digits(line string) []int {
	return MustGet(ParseDigits(line))
}

// ParseDigits returns the individual digits of the string, or an error
// naming the first rune that is not a decimal digit.
func ParseDigits(line string) ([]int, error) {
	in := make([]int, 0, len(line))
	for _, c := range line {
		d, err := ParseDigit(c)
		if err != nil {
			return nil, err
		}
		in = append(in, d)
	}
	return in, nil
}

// ParseDigit returns the digit value of the rune.
func ParseDigit(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, fmt.Errorf("not a digit: %q", r)
	}
	return int(r - '0'), nil
}

// NumDigits returns the number of decimal digits in n. NumDigits(0) is 1.
func NumDigits[T constraints.Integer](n T) int {
	if n < 0 {
		n = -n
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// Pow10 returns 10**n.
func Pow10(n int) int {
	v := 1
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Product returns the product of the numbers. The product of no numbers is 1.
func Product[T Number](nums ...T) T {
	var p T = 1
	for _, v := range nums {
		p *= v
	}
	return p
}

// Max returns the largest value and the index of its first occurrence.
// It returns -1 for an empty slice.
func Max[T constraints.Ordered](s []T) (T, int) {
	var best T
	ix := -1
	for i, v := range s {
		if ix == -1 || v > best {
			best, ix = v, i
		}
	}
	return best, ix
}

// Int returns the int value of the string.
func Int(s string) int {
	return MustGet(strconv.Atoi(strings.TrimSpace(s)))
}
