// Package aoc runs Advent of Code solvers against their embedded samples
// and real inputs, and holds the small helpers the solvers share.
// (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"log/slog"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/rs/xid"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "solver.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Answer is one part's result.
type Answer struct {
	Run     string
	Year    int
	Day     int
	Part    string
	Sample  bool
	Value   string
	Elapsed time.Duration
	At      time.Time
}

// Recorder keeps a history of answers.
type Recorder interface {
	Record(ctx context.Context, a Answer) error
	// Last returns the most recent non-sample answer for the part.
	Last(ctx context.Context, year, day int, part string) (Answer, bool, error)
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	ctx     context.Context
	log     *slog.Logger
	inputs  *InputStore
	solver  partSolver
	samples map[string]sample
	input   []byte
}

// Input returns the sample input in sample mode and the real input
// otherwise. The real input is read once per day.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		p.input = MustGet(p.inputs.Input(p.ctx, p.year, p.day.day))
	}
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// Lines returns the input split into lines without line terminators.
// Leading and trailing spaces within a line are kept.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, strings.TrimSuffix(line, "\r"))
	})
	return lines
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debug(fmt.Sprintf(format, args...), "part", p.solver.Part, "sample", p.SampleMode)
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}. The methods
// must have the signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("extractMethods: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("method %s has type %v; want func() any", mn, v.Method(i).Type())
		}
		day, part := matches[1], matches[2]
		d := Int(day)
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: part,
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// Options controls a Run.
type Options struct {
	Year       int
	Day        int    // 0 runs every registered day
	Part       string // empty runs every part
	OnlySample bool
	SkipSample bool

	Inputs   *InputStore
	Recorder Recorder     // optional
	Out      io.Writer    // defaults to os.Stdout
	Logger   *slog.Logger // defaults to slog.Default()
}

// ErrSampleMismatch is returned by Run when a part's sample answer is wrong.
var ErrSampleMismatch = errors.New("sample answer mismatch")

type runner struct {
	Options
	ctx     context.Context
	run     string
	samples map[string]sample
}

func (r *runner) runDay(slvr any, day day) error {
	p := Puzzle{
		year:    r.Year,
		day:     day,
		ctx:     r.ctx,
		log:     r.Logger.With("day", day.day),
		inputs:  r.Inputs,
		samples: r.samples,
	}
	fmt.Fprintln(r.Out, "Running day", day.day)
	sr := reflect.ValueOf(slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if r.Part != "" && ps.Part != r.Part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && r.OnlySample {
				continue
			} else if sm && r.SkipSample {
				continue
			}
			if _, ok := r.samples[ps.Name]; sm && !ok {
				fmt.Fprintf(r.Out, "part %s: ⚠️ no sample\n", ps.Part)
				continue
			}
			p.SampleMode = sm
			if !sm && p.input == nil {
				// Prime the input.
				in, err := r.Inputs.Input(r.ctx, r.Year, day.day)
				if err != nil {
					return fmt.Errorf("day %d input: %w", day.day, err)
				}
				p.input = in
			}
			t0 := time.Now()
			got := ps.fn()
			elapsed := time.Since(t0)
			if err, ok := got.(error); ok {
				fmt.Fprintf(r.Out, "part %s: ❌ %v\n", ps.Part, err)
				return fmt.Errorf("day %d part %s: %w", day.day, ps.Part, err)
			}
			a := Answer{
				Run:     r.run,
				Year:    r.Year,
				Day:     day.day,
				Part:    ps.Part,
				Sample:  sm,
				Value:   fmt.Sprint(got),
				Elapsed: elapsed,
				At:      time.Now(),
			}
			if sm {
				sample := p.Sample()
				if a.Value != sample.want {
					fmt.Fprintf(r.Out, "part %s: %v ❌; want %v\n", ps.Part, got, sample.want)
					return fmt.Errorf("day %d part %s: %w: got %v, want %v", day.day, ps.Part, ErrSampleMismatch, got, sample.want)
				}
				fmt.Fprintf(r.Out, "part %s sample: %v ✅ (%v) \n", ps.Part, got, elapsed.Round(time.Microsecond))
			} else {
				fmt.Fprintf(r.Out, "part %s: %v (took %v)%s \n", ps.Part, got, elapsed.Round(time.Microsecond), r.changed(a))
			}
			if err := r.record(a); err != nil {
				return err
			}
		}
	}
	return nil
}

// changed returns a note when a real answer differs from the last one
// recorded for the same part.
func (r *runner) changed(a Answer) string {
	if r.Recorder == nil {
		return ""
	}
	prev, ok, err := r.Recorder.Last(r.ctx, a.Year, a.Day, a.Part)
	if err != nil {
		r.Logger.Warn("reading answer history", "err", err)
		return ""
	}
	if !ok || prev.Value == a.Value {
		return ""
	}
	return fmt.Sprintf(" ⚠️ was %v", prev.Value)
}

func (r *runner) record(a Answer) error {
	if r.Recorder == nil {
		return nil
	}
	if err := r.Recorder.Record(r.ctx, a); err != nil {
		return fmt.Errorf("recording answer: %w", err)
	}
	return nil
}

// Run runs the D{day}p{part} methods of slvr, a pointer to a struct
// embedding *Puzzle. src is the Go source declaring those methods; their
// doc comments carry the samples.
func Run(ctx context.Context, src []byte, slvr any, opts Options) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	r := &runner{
		Options: opts,
		ctx:     ctx,
		run:     xid.New().String(),
		samples: samples,
	}
	if r.Out == nil {
		r.Out = os.Stdout
	}
	if r.Logger == nil {
		r.Logger = slog.Default()
	}
	r.Logger = r.Logger.With("run", r.run)

	if r.Day != 0 {
		day, ok := days[r.Day]
		if !ok {
			return fmt.Errorf("no day %d", r.Day)
		}
		return r.runDay(slvr, day)
	}

	var errs []error
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		if err := r.runDay(slvr, days[day]); err != nil {
			r.Logger.Error("day failed", "day", day, "err", err)
			errs = append(errs, err)
		}
		fmt.Fprintln(r.Out)
	}
	return errors.Join(errs...)
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
