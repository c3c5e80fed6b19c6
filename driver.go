// driver.go - real-time pacing driver for System
//
// The core itself is pull-shaped and single-threaded (spec.md §5: "no
// background tasks... sample generation is pull-shaped"). RealtimeDriver
// is the one place a concurrency primitive is legitimate: a host that
// wants the core to run continuously at the real PAL rate, rather than
// being stepped frame-by-frame by its own loop, hands it to this driver.
// Paced admission uses golang.org/x/sync/semaphore the way the teacher's
// goroutine-driven CPU.Execute() uses atomic signal lines for control
// flow - here the semaphore is the throttle instead of a raw sleep loop,
// so a caller can adjust how many frames are allowed to run ahead.
package c64

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
)

const palFrameHz = 50.125

// RealtimeDriver runs a System continuously, pacing frames to the PAL
// refresh rate and admitting at most maxAhead frames of slack before a
// caller has called Drain.
type RealtimeDriver struct {
	sys      *System
	sem      *semaphore.Weighted
	stopping chan struct{}
	stopped  chan struct{}
}

// NewRealtimeDriver wires a driver around sys. maxAhead bounds how many
// completed frames may queue up before the driver stalls waiting for the
// host to call Drain.
func NewRealtimeDriver(sys *System, maxAhead int64) *RealtimeDriver {
	return &RealtimeDriver{
		sys:      sys,
		sem:      semaphore.NewWeighted(maxAhead),
		stopping: make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Run drives frames continuously until Stop is called or ctx is done. It
// blocks, so callers run it in its own goroutine.
func (d *RealtimeDriver) Run(ctx context.Context) {
	defer close(d.stopped)
	ticker := time.NewTicker(time.Duration(float64(time.Second) / palFrameHz))
	defer ticker.Stop()

	for {
		select {
		case <-d.stopping:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if d.sem.Acquire(ctx, 1) != nil {
				return
			}
			d.sys.RunFrame()
		}
	}
}

// Drain releases one unit of frame-ahead slack, letting Run produce the
// next frame once its ticker fires again; callers invoke this after
// consuming a completed frame's Framebuffer/AudioBuffer.
func (d *RealtimeDriver) Drain() {
	d.sem.Release(1)
}

// Stop requests Run to return; it does not block waiting for Run to exit.
func (d *RealtimeDriver) Stop() {
	close(d.stopping)
}

// Wait blocks until Run has returned.
func (d *RealtimeDriver) Wait() {
	<-d.stopped
}
