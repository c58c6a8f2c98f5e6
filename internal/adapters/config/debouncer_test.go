package config

import (
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		d := newDebouncer(100*time.Millisecond, func() { calls.Add(1) })

		for range 5 {
			d.Trigger()
			time.Sleep(30 * time.Millisecond)
		}
		synctest.Wait()
		assert.Equal(t, int32(0), calls.Load())

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		d := newDebouncer(50*time.Millisecond, func() { calls.Add(1) })

		d.Trigger()
		time.Sleep(60 * time.Millisecond)
		d.Trigger()
		time.Sleep(60 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, int32(2), calls.Load())
	})
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls atomic.Int32
		d := newDebouncer(50*time.Millisecond, func() { calls.Add(1) })

		d.Trigger()
		d.Stop()
		d.Trigger()
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, int32(0), calls.Load())
	})
}
