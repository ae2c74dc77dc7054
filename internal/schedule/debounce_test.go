package schedule

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var runs atomic.Int32
	for i := 0; i < 10; i++ {
		d.Trigger(func() { runs.Add(1) })
	}

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestDebouncerLastWriteWins(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	var got atomic.Int32
	d.Trigger(func() { got.Store(1) })
	d.Trigger(func() { got.Store(2) })

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(2), got.Load())
}

func TestDebouncerFlushRunsImmediately(t *testing.T) {
	d := NewDebouncer(time.Hour)
	defer d.Stop()

	ran := false
	d.Trigger(func() { ran = true })
	d.Flush()

	assert.True(t, ran)
}

func TestDebouncerFlushWithoutPendingIsNoop(t *testing.T) {
	d := NewDebouncer(time.Millisecond)
	d.Flush()
	d.Stop()
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var runs atomic.Int32
	d.Trigger(func() { runs.Add(1) })
	d.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, runs.Load())

	// Triggers after Stop are ignored.
	d.Trigger(func() { runs.Add(1) })
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, runs.Load())
}
