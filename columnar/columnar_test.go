package columnar

import (
	"errors"
	"strings"
	"testing"

	"github.com/aocgo/aoc2025"
	"github.com/google/go-cmp/cmp"
)

// Trailing spaces matter here: every line is as wide as the sheet.
var sample = strings.Join([]string{
	"123 328  51 64 ",
	" 45 64  387 23 ",
	"  6 98  215 314",
	"*   +   *   +  ",
	"",
}, "\n")

func TestHorizontalSample(t *testing.T) {
	rows, ops, err := ParseHorizontal(strings.Split(sample, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Horizontal(rows, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{33210, 490, 4243455, 401}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Horizontal mismatch (-want +got):\n%s", diff)
	}
	if s := aoc.Sum(got...); s != 4277556 {
		t.Errorf("sum = %d; want 4277556", s)
	}
}

func TestVerticalSample(t *testing.T) {
	cols, ops, err := ParseVertical(strings.Split(sample, "\n"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := Vertical(cols, ops)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{8544, 625, 3253600, 1058}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Vertical mismatch (-want +got):\n%s", diff)
	}
	if s := aoc.Sum(got...); s != 3263827 {
		t.Errorf("sum = %d; want 3263827", s)
	}
}

func TestVerticalRaggedLines(t *testing.T) {
	// Same sheet with trailing spaces stripped, as an editor would.
	var lines []string
	for _, l := range strings.Split(sample, "\n") {
		lines = append(lines, strings.TrimRight(l, " "))
	}
	cols, ops, err := ParseVertical(lines)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Vertical(cols, ops)
	if err != nil {
		t.Fatal(err)
	}
	if s := aoc.Sum(got...); s != 3263827 {
		t.Errorf("sum = %d; want 3263827", s)
	}
}

func TestHorizontal(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		ops  []Op
		want []int
	}{
		{
			name: "sum and product",
			rows: [][]int{{1, 2}, {3, 4}},
			ops:  []Op{Sum, Product},
			want: []int{4, 8},
		},
		{
			name: "single row",
			rows: [][]int{{7, 9}},
			ops:  []Op{Product, Sum},
			want: []int{7, 9},
		},
		{
			name: "no rows",
			ops:  []Op{Sum, Product},
			want: []int{0, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Horizontal(tt.rows, tt.ops)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Horizontal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVerticalSeparators(t *testing.T) {
	lines := []string{
		"1  2",
		"3  4",
		"+  *",
	}
	cols, ops, err := ParseVertical(lines)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Vertical(cols, ops)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{13, 24}, got); diff != "" {
		t.Errorf("two blank columns should end one problem (-want +got):\n%s", diff)
	}
}

func TestBadOperatorLine(t *testing.T) {
	_, _, err := ParseHorizontal([]string{"1 2", "3 4", "+ /", ""})
	var pe *aoc.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("ParseHorizontal = %v; want ParseError", err)
	}
	if pe.Line != 3 {
		t.Errorf("ParseError.Line = %d; want 3", pe.Line)
	}
}

func TestErrors(t *testing.T) {
	if _, err := ParseOps("+ - *"); !aoc.IsParseError(err) {
		t.Errorf("ParseOps with '-' = %v; want ParseError", err)
	}
	if _, _, err := ParseHorizontal([]string{"1 2", "3", "+ +"}); !aoc.IsParseError(err) {
		t.Errorf("ragged rows = %v; want ParseError", err)
	}
	if _, _, err := ParseHorizontal([]string{"1 x", "+ +"}); !aoc.IsParseError(err) {
		t.Errorf("non-number = %v; want ParseError", err)
	}
	if _, _, err := ParseHorizontal(nil); !aoc.IsParseError(err) {
		t.Errorf("empty sheet = %v; want ParseError", err)
	}
	if _, err := Horizontal([][]int{{1, 2}}, []Op{Sum}); !aoc.IsDomainError(err) {
		t.Errorf("too few operators = %v; want DomainError", err)
	}

	cols, ops, err := ParseVertical([]string{"1 2", "+"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Vertical(cols, ops); !aoc.IsDomainError(err) {
		t.Errorf("problem without operator = %v; want DomainError", err)
	}
	cols, ops, err = ParseVertical([]string{"1", "+ *"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Vertical(cols, ops); !aoc.IsDomainError(err) {
		t.Errorf("unused operator = %v; want DomainError", err)
	}
	if _, err := Op(9).Apply([]int{1}); !aoc.IsDomainError(err) {
		t.Errorf("unknown op = %v; want DomainError", err)
	}
}
