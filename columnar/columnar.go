// Package columnar solves worksheets of arithmetic problems laid out in
// columns, each problem a list of numbers reduced by one operator.
package columnar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aocgo/aoc2025"
)

// Op is a reduction applied to a problem's numbers.
type Op int

const (
	Sum Op = iota
	Product
)

func (o Op) String() string {
	switch o {
	case Sum:
		return "+"
	case Product:
		return "*"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Apply reduces vals with o.
func (o Op) Apply(vals []int) (int, error) {
	switch o {
	case Sum:
		return aoc.Sum(vals...), nil
	case Product:
		return aoc.Product(vals...), nil
	}
	return 0, aoc.DomainErrorf("columnar", "unknown operator %v", o)
}

// ParseOps reads the operator row. Spaces between operators are ignored.
func ParseOps(line string) ([]Op, error) {
	var ops []Op
	for _, r := range line {
		switch r {
		case '+':
			ops = append(ops, Sum)
		case '*':
			ops = append(ops, Product)
		case ' ', '\t':
		default:
			return nil, aoc.ParseErrorf(0, line, "unknown operator %q", r)
		}
	}
	return ops, nil
}

// splitSheet separates the number rows from the final operator row,
// ignoring trailing blank lines.
func splitSheet(lines []string) ([]string, []Op, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, nil, aoc.ParseErrorf(0, "", "empty worksheet")
	}
	last := len(lines) - 1
	ops, err := ParseOps(lines[last])
	if err != nil {
		var pe *aoc.ParseError
		if errors.As(err, &pe) {
			pe.Line = last + 1
		}
		return nil, nil, err
	}
	return lines[:last], ops, nil
}

// ParseHorizontal reads a worksheet whose problems are the columns of a
// table of whitespace-separated numbers, one row per line.
func ParseHorizontal(lines []string) ([][]int, []Op, error) {
	numLines, ops, err := splitSheet(lines)
	if err != nil {
		return nil, nil, err
	}
	var rows [][]int
	for i, line := range numLines {
		fields := strings.Fields(line)
		row := make([]int, len(fields))
		for j, f := range fields {
			if row[j], err = strconv.Atoi(f); err != nil {
				return nil, nil, &aoc.ParseError{Line: i + 1, Input: line, Err: err}
			}
		}
		if i > 0 && len(row) != len(rows[0]) {
			return nil, nil, aoc.ParseErrorf(i+1, line, "row has %d numbers; want %d", len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	return rows, ops, nil
}

// Horizontal returns the result of each column of rows reduced by the
// matching operator.
func Horizontal(rows [][]int, ops []Op) ([]int, error) {
	width := len(ops)
	if len(rows) > 0 && len(rows[0]) != width {
		return nil, aoc.DomainErrorf("columnar", "%d columns but %d operators", len(rows[0]), width)
	}
	out := make([]int, width)
	col := make([]int, len(rows))
	for x, op := range ops {
		for y, row := range rows {
			if len(row) != width {
				return nil, aoc.DomainErrorf("columnar", "row %d has %d columns; want %d", y+1, len(row), width)
			}
			col[y] = row[x]
		}
		v, err := op.Apply(col)
		if err != nil {
			return nil, err
		}
		out[x] = v
	}
	return out, nil
}

// ParseVertical reads a worksheet whose numbers are written top to
// bottom, one digit per row. The returned grid is transposed so that
// each row holds one column of the sheet. Lines are padded with spaces
// to the widest line.
func ParseVertical(lines []string) (aoc.Grid[rune], []Op, error) {
	numLines, ops, err := splitSheet(lines)
	if err != nil {
		return nil, nil, err
	}
	width := 0
	for _, line := range numLines {
		width = max(width, len([]rune(line)))
	}
	sheet := aoc.MakeGrid[rune](width, len(numLines))
	for y, line := range numLines {
		row := []rune(line)
		for x := range sheet[y] {
			if x < len(row) {
				sheet[y][x] = row[x]
			} else {
				sheet[y][x] = ' '
			}
		}
	}
	return sheet.Transpose(), ops, nil
}

// Vertical reads each column of the sheet as one number. A blank column
// ends the current problem, which is reduced with the next operator in
// ops; consecutive blank columns end at most one problem.
func Vertical(cols aoc.Grid[rune], ops []Op) ([]int, error) {
	var (
		out  []int
		vals []int
		next int
	)
	finish := func() error {
		if len(vals) == 0 {
			return nil
		}
		if next >= len(ops) {
			return aoc.DomainErrorf("columnar", "problem %d has no operator", next+1)
		}
		v, err := ops[next].Apply(vals)
		if err != nil {
			return err
		}
		out = append(out, v)
		next++
		vals = vals[:0]
		return nil
	}
	for x, col := range cols {
		s := strings.TrimSpace(string(col))
		if s == "" {
			if err := finish(); err != nil {
				return nil, err
			}
			continue
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, aoc.ParseErrorf(0, s, "column %d: %w", x+1, err)
		}
		vals = append(vals, n)
	}
	if err := finish(); err != nil {
		return nil, err
	}
	if next != len(ops) {
		return nil, aoc.DomainErrorf("columnar", "%d problems but %d operators", next, len(ops))
	}
	return out, nil
}
