package stats

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderRecord(t *testing.T) {
	r := NewRecorder()

	r.Record("a", 100*time.Millisecond, nil)
	r.Record("a", 150*time.Millisecond, nil)
	r.Record("b", 200*time.Millisecond, nil)
	r.Record("a", 50*time.Millisecond, errors.New("boom"))

	s := r.Summary()
	assert.Equal(t, int64(4), s.Total)
	assert.Equal(t, int64(1), s.Errors)
	assert.InDelta(t, float64(50*time.Millisecond), float64(s.Min), float64(time.Millisecond))
	assert.InDelta(t, float64(200*time.Millisecond), float64(s.Max), float64(time.Millisecond))
	assert.InDelta(t, float64(125*time.Millisecond), float64(s.Mean), float64(time.Millisecond))
}

func TestRecorderBreakdownOrder(t *testing.T) {
	r := NewRecorder()

	r.Record("second", time.Millisecond, nil)
	r.Record("first", 10*time.Millisecond, errors.New("x"))
	r.Record("second", time.Millisecond, nil)
	r.Record("", time.Millisecond, nil)

	s := r.Summary()
	require.Len(t, s.Breakdown, 2)
	assert.Equal(t, "second", s.Breakdown[0].Name)
	assert.Equal(t, int64(2), s.Breakdown[0].Total)
	assert.Equal(t, "first", s.Breakdown[1].Name)
	assert.Equal(t, int64(1), s.Breakdown[1].Errors)
	assert.Equal(t, int64(4), s.Total)

	slowest := s.Slowest()
	assert.Equal(t, "first", slowest[0].Name)
	assert.Equal(t, "second", s.Breakdown[0].Name)
}

func TestRecorderClampsLatency(t *testing.T) {
	r := NewRecorder()

	r.Record("fast", 0, nil)
	r.Record("slow", 2*time.Minute, nil)

	s := r.Summary()
	assert.Equal(t, time.Microsecond, s.Min)
	assert.InDelta(t, float64(time.Minute), float64(s.Max), float64(100*time.Millisecond))
}

func TestRecorderConcurrent(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Record("u", time.Millisecond, nil)
			}
		}()
	}
	wg.Wait()

	s := r.Summary()
	assert.Equal(t, int64(800), s.Total)
	assert.Equal(t, int64(800), s.Breakdown[0].Total)
}

func TestSummaryRows(t *testing.T) {
	empty := NewRecorder().Summary()
	assert.Equal(t, [][]string{{"metric", "value"}, {"requests", "0"}, {"errors", "0"}}, empty.Rows())

	r := NewRecorder()
	r.Record("u", 5*time.Millisecond, nil)
	rows := r.Summary().Rows()

	require.Len(t, rows, 9)
	assert.Equal(t, []string{"requests", "1"}, rows[1])
	assert.Equal(t, "p95", rows[6][0])
}
