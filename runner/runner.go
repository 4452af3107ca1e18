// Package runner drives puzzle solvers. A solver is a struct embedding
// *Puzzle whose methods are named D{day}p{part}; each method's doc
// comment may carry a sample answer and input:
//
//	/*
//	want=4
//
//	.....
//	.S-7.
//	*/
//	func (s solver) D10p1() any
//
// The runner checks every part against its sample before running it on
// the real input.
package runner

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/maisem/gridsearch"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// ErrSampleMismatch is returned when a part disagrees with its sample.
var ErrSampleMismatch = errors.New("runner: sample answer mismatch")

// Puzzle is the per-part context handed to a solver.
type Puzzle struct {
	day        int
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte
	cfg     *Config
	log     *logrus.Entry
	debug   bool
	render  func(title, text string)
}

// Input returns the sample input in sample mode and the real input
// otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		s, _ := p.Sample()
		return []byte(s.input)
	}
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// ForLinesY calls onLine for each line of input. The y value is the row
// number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Lines returns the non-empty lines of input.
func (p *Puzzle) Lines() []string {
	var out []string
	p.ForLines(func(line string) {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	})
	return out
}

// Runes parses the input as a grid of runes.
func (p *Puzzle) Runes() (*gridsearch.Grid[rune], error) {
	return gridsearch.ParseRunes(p.Lines())
}

func (p *Puzzle) Config() *Config { return p.cfg }

// Log returns a logger tagged with the running day, part and mode.
func (p *Puzzle) Log() *logrus.Entry { return p.log }

// Debugf logs at debug level. It is silent unless the runner was started
// with Debug, and only fires on samples so real inputs stay quiet.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.debug && p.SampleMode {
		p.log.Debugf(format, args...)
	}
}

// Show hands a rendered grid to the runner's render hook, if any.
func (p *Puzzle) Show(title, text string) {
	if p.render != nil {
		p.render(title, text)
	}
}

// Sample returns the sample attached to the running part.
func (p *Puzzle) Sample() (sample, bool) {
	s, ok := p.samples[p.solver.Name]
	return s, ok
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

// extractMethods collects the methods of x named D{day}p{part}. x must be
// a pointer to a struct and every matching method must have the
// signature func() any.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("runner: got %T; want pointer to struct", x)
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
			return nil, fmt.Errorf("runner: method %s has type %v; want func() any", mn, v.Method(i).Type())
		}
		d, err := strconv.Atoi(matches[1])
		if err != nil {
			return nil, fmt.Errorf("runner: method %s: %w", mn, err)
		}
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
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
	// Day selects a single day. Zero or negative runs every day.
	Day int
	// Part selects a single part. Empty runs every part.
	Part       string
	OnlySample bool
	SkipSample bool
	Debug      bool
	// InputDir holds real inputs named <day>.input. Days without an input
	// file only run their samples.
	InputDir string
	Config   *Config
	Logger   *logrus.Logger
	// Out receives one result line per part.
	Out io.Writer
	// OnRender receives grids passed to Puzzle.Show.
	OnRender func(title, text string)
}

// Run registers the D{day}p{part} methods of solver, whose source is
// src, and runs the selected days.
func Run(src []byte, solver any, opts Options) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(solver)
	if err != nil {
		return err
	}
	if opts.Config == nil {
		opts.Config = &Config{}
		if err := opts.Config.validate(); err != nil {
			return err
		}
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
		opts.Logger.SetOutput(io.Discard)
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	if opts.Day > 0 {
		d, ok := days[opts.Day]
		if !ok {
			return fmt.Errorf("runner: no day %d", opts.Day)
		}
		return runDay(solver, d, samples, opts)
	}
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var errs []error
	for _, d := range dayNums {
		if err := runDay(solver, days[d], samples, opts); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func readInput(dir string, day int) ([]byte, bool, error) {
	b, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("%d.input", day)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func runDay(slvr any, d day, samples map[string]sample, opts Options) error {
	log := opts.Logger.WithField("day", d.day)
	input, haveInput, err := readInput(opts.InputDir, d.day)
	if err != nil {
		return fmt.Errorf("day %d: %w", d.day, err)
	}
	p := &Puzzle{
		day:     d.day,
		samples: samples,
		input:   input,
		cfg:     opts.Config,
		debug:   opts.Debug,
		render:  opts.OnRender,
	}
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	log.Info("running day")
	for _, ps := range d.parts {
		if opts.Part != "" && ps.Part != opts.Part {
			continue
		}
		p.solver = ps
		for _, sm := range []bool{true, false} {
			if !sm && opts.OnlySample {
				continue
			} else if sm && opts.SkipSample {
				continue
			}
			plog := log.WithFields(logrus.Fields{"part": ps.Part, "sample": sm})
			if !sm && !haveInput {
				plog.Warnf("no input file %d.input in %q; skipping", d.day, opts.InputDir)
				continue
			}
			want, ok := p.Sample()
			if sm && !ok {
				plog.Warn("no sample")
				continue
			}
			p.SampleMode = sm
			p.log = plog

			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if err, ok := got.(error); ok {
				return fmt.Errorf("day %d part %s: %w", d.day, ps.Part, err)
			}
			plog = plog.WithField("took", took)
			if sm {
				if fmt.Sprint(got) != want.want {
					fmt.Fprintf(opts.Out, "day %d part %s sample: %v ❌; want %v\n", d.day, ps.Part, got, want.want)
					return fmt.Errorf("%w: day %d part %s: got %v, want %v", ErrSampleMismatch, d.day, ps.Part, got, want.want)
				}
				plog.Info("sample ok")
				fmt.Fprintf(opts.Out, "day %d part %s sample: %v ✅ (%v)\n", d.day, ps.Part, got, took)
			} else {
				plog.WithField("answer", got).Info("solved")
				fmt.Fprintf(opts.Out, "day %d part %s: %v (took %v)\n", d.day, ps.Part, got, took)
			}
		}
	}
	return nil
}
