// Package stats records request latencies for the --stats report.
package stats

import (
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	minLatencyUs = 1
	maxLatencyUs = 60_000_000
)

// Recorder collects per-fetch outcomes. It satisfies http.Observer.
type Recorder struct {
	mu sync.Mutex

	total  atomic.Int64
	errors atomic.Int64

	// Latency histogram (in microseconds for precision)
	histogram *hdrhistogram.Histogram

	perName map[string]*nameStats
	order   []string

	startTime time.Time
}

type nameStats struct {
	total     int64
	errors    int64
	histogram *hdrhistogram.Histogram
}

func newHistogram() *hdrhistogram.Histogram {
	// 1us to 60s range, 3 significant digits
	return hdrhistogram.New(minLatencyUs, maxLatencyUs, 3)
}

func NewRecorder() *Recorder {
	return &Recorder{
		histogram: newHistogram(),
		perName:   make(map[string]*nameStats),
		startTime: time.Now(),
	}
}

func clampLatency(d time.Duration) int64 {
	us := d.Microseconds()
	if us < minLatencyUs {
		us = minLatencyUs
	}
	if us > maxLatencyUs {
		us = maxLatencyUs
	}
	return us
}

// Record records one request result under name (usually the URL).
func (r *Recorder) Record(name string, duration time.Duration, err error) {
	r.total.Add(1)
	if err != nil {
		r.errors.Add(1)
	}

	latencyUs := clampLatency(duration)

	r.mu.Lock()
	defer r.mu.Unlock()

	_ = r.histogram.RecordValue(latencyUs)

	if name == "" {
		return
	}
	ns, ok := r.perName[name]
	if !ok {
		ns = &nameStats{histogram: newHistogram()}
		r.perName[name] = ns
		r.order = append(r.order, name)
	}
	ns.total++
	if err != nil {
		ns.errors++
	}
	_ = ns.histogram.RecordValue(latencyUs)
}

// Summary is a point-in-time view of a Recorder.
type Summary struct {
	Elapsed time.Duration
	Total   int64
	Errors  int64

	Min  time.Duration
	Max  time.Duration
	Mean time.Duration
	P50  time.Duration
	P95  time.Duration
	P99  time.Duration

	// Per-name breakdown in first-recorded order
	Breakdown []NameSummary
}

type NameSummary struct {
	Name   string
	Total  int64
	Errors int64
	Mean   time.Duration
	P95    time.Duration
}

func us(v int64) time.Duration {
	return time.Duration(v) * time.Microsecond
}

func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{
		Elapsed: time.Since(r.startTime),
		Total:   r.total.Load(),
		Errors:  r.errors.Load(),
	}
	if s.Total == 0 {
		return s
	}

	s.Min = us(r.histogram.Min())
	s.Max = us(r.histogram.Max())
	s.Mean = us(int64(r.histogram.Mean()))
	s.P50 = us(r.histogram.ValueAtQuantile(50))
	s.P95 = us(r.histogram.ValueAtQuantile(95))
	s.P99 = us(r.histogram.ValueAtQuantile(99))

	for _, name := range r.order {
		ns := r.perName[name]
		s.Breakdown = append(s.Breakdown, NameSummary{
			Name:   name,
			Total:  ns.total,
			Errors: ns.errors,
			Mean:   us(int64(ns.histogram.Mean())),
			P95:    us(ns.histogram.ValueAtQuantile(95)),
		})
	}

	return s
}

// Rows renders the summary as a table for the output formatters.
func (s Summary) Rows() [][]string {
	rows := [][]string{
		{"metric", "value"},
		{"requests", strconv.FormatInt(s.Total, 10)},
		{"errors", strconv.FormatInt(s.Errors, 10)},
	}
	if s.Total == 0 {
		return rows
	}

	rows = append(rows,
		[]string{"min", s.Min.String()},
		[]string{"mean", s.Mean.String()},
		[]string{"p50", s.P50.String()},
		[]string{"p95", s.P95.String()},
		[]string{"p99", s.P99.String()},
		[]string{"max", s.Max.String()},
	)
	return rows
}

// Slowest returns the breakdown sorted by descending mean latency.
func (s Summary) Slowest() []NameSummary {
	out := make([]NameSummary, len(s.Breakdown))
	copy(out, s.Breakdown)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Mean > out[j].Mean
	})
	return out
}
