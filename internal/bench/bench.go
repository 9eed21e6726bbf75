// Package bench measures index construction and pattern queries, reporting time and heap usage.
package bench

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"sort"
	"sync/atomic"
	"time"

	"github.com/viniciusth/stringology"

	"github.com/nuclio/errors"
	"github.com/nuclio/logger"
)

type Variant struct {
	Name   string
	Config func(*stringology.IndexBuilder) *stringology.IndexBuilder
}

var Variants = map[string]Variant{
	"full":   {Name: "full", Config: func(b *stringology.IndexBuilder) *stringology.IndexBuilder { return b }},
	"no_nsv": {Name: "no_nsv", Config: func(b *stringology.IndexBuilder) *stringology.IndexBuilder { return b.SkipNearestSmaller() }},
}

// VariantNames returns the variant names in a stable order.
func VariantNames() []string {
	names := make([]string, 0, len(Variants))
	for name := range Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Config struct {
	Variant       Variant
	PatternLength int
	Queries       int
	Runs          int
}

// Measurement is one run: build and query durations, with peak and retained heap bytes of each phase.
type Measurement struct {
	Variant    string
	Length     int
	BuildTime  time.Duration
	BuildPeak  uint64
	BuildAlloc uint64
	QueryTime  time.Duration
	QueryPeak  uint64
	QueryAlloc uint64
	Matches    int
}

// Header is the CSV header matching Measurement.WriteCSV.
const Header = "variant,length,pattern_length,queries,build_ns,build_peak,build_alloc,query_ns,query_peak,query_alloc,matches"

type Runner struct {
	logger logger.Logger
	config Config
}

func NewRunner(parentLogger logger.Logger, config Config) (*Runner, error) {
	if config.Variant.Config == nil {
		return nil, errors.New("Variant must be set")
	}
	if config.PatternLength <= 0 || config.Queries <= 0 || config.Runs <= 0 {
		return nil, errors.Errorf("Pattern length, queries and runs must be positive, got %d, %d, %d",
			config.PatternLength, config.Queries, config.Runs)
	}
	return &Runner{
		logger: parentLogger,
		config: config,
	}, nil
}

// Run indexes the sentinel terminated text once per run and queries it with substrings sampled from it.
func (r *Runner) Run(text []byte) ([]Measurement, error) {
	n := len(text) - 1
	if n < r.config.PatternLength {
		return nil, errors.Errorf("Text of length %d is shorter than the pattern length %d", n, r.config.PatternLength)
	}

	var measurements []Measurement
	for run := 0; run < r.config.Runs; run++ {
		random := rand.New(rand.NewSource(int64(run)))

		buildTime, buildPeak, buildAlloc, index, err := measureBuild(text, r.config.Variant.Config)
		if err != nil {
			return nil, errors.Wrap(err, "Failed to build index")
		}

		patterns := make([][]byte, r.config.Queries)
		for i := range patterns {
			start := random.Intn(n - r.config.PatternLength + 1)
			patterns[i] = text[start : start+r.config.PatternLength]
		}

		queryTime, queryPeak, queryAlloc, matches := measureQuery(index, patterns)

		r.logger.DebugWith("Finished run",
			"run", run,
			"variant", r.config.Variant.Name,
			"build", buildTime.String(),
			"query", queryTime.String())

		measurements = append(measurements, Measurement{
			Variant:    r.config.Variant.Name,
			Length:     n,
			BuildTime:  buildTime,
			BuildPeak:  buildPeak,
			BuildAlloc: buildAlloc,
			QueryTime:  queryTime,
			QueryPeak:  queryPeak,
			QueryAlloc: queryAlloc,
			Matches:    matches,
		})
	}
	return measurements, nil
}

func (r *Runner) WriteCSV(output io.Writer, measurement Measurement) {
	fmt.Fprintf(output, "%s,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d\n", // nolint: errcheck
		measurement.Variant, measurement.Length, r.config.PatternLength, r.config.Queries,
		measurement.BuildTime.Nanoseconds(), measurement.BuildPeak, measurement.BuildAlloc,
		measurement.QueryTime.Nanoseconds(), measurement.QueryPeak, measurement.QueryAlloc,
		measurement.Matches)
}

type memMonitor struct {
	maxAlloc atomic.Uint64
	stop     chan struct{}
	done     chan struct{}
}

func newMemMonitor() *memMonitor {
	mm := &memMonitor{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go func() {
		defer close(mm.done)
		for {
			mm.sample()
			select {
			case <-mm.stop:
				return
			case <-time.After(10 * time.Millisecond):
			}
		}
	}()
	return mm
}

func (mm *memMonitor) sample() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	if m.Alloc > mm.maxAlloc.Load() {
		mm.maxAlloc.Store(m.Alloc)
	}
}

// Stop samples one last time and returns the peak heap allocation seen.
func (mm *memMonitor) Stop() uint64 {
	close(mm.stop)
	<-mm.done
	mm.sample()
	return mm.maxAlloc.Load()
}

func getCurrentAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func measureBuild(text []byte,
	config func(*stringology.IndexBuilder) *stringology.IndexBuilder) (time.Duration, uint64, uint64, *stringology.Index, error) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	index, err := config(stringology.NewBuilder(text)).Build()
	dur := time.Since(start)
	peak := mm.Stop()
	if err != nil {
		return 0, 0, 0, nil, err
	}
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, index, nil
}

func measureQuery(index *stringology.Index, patterns [][]byte) (time.Duration, uint64, uint64, int) {
	runtime.GC()
	mm := newMemMonitor()
	start := time.Now()
	matches := 0
	for _, p := range patterns {
		matches += index.Count(p)
	}
	dur := time.Since(start)
	peak := mm.Stop()
	runtime.GC()
	alloc := getCurrentAlloc()
	return dur, peak, alloc, matches
}
