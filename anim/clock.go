// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/clock.go
// Summary: Frame clock delivering animation ticks to a dispatch loop.
// Usage: Run in a goroutine; Wake after input events that may start animations.

package anim

import "time"

// DefaultInterval is roughly 60 frames per second.
const DefaultInterval = 16 * time.Millisecond

// FrameFunc handles one tick and reports whether more frames are needed.
type FrameFunc func(p *Params) bool

// Clock drives animations at a fixed interval. It goes idle as soon as the
// frame function reports no running animations and stays idle until Wake,
// so an idle UI costs nothing.
type Clock struct {
	interval time.Duration
	wake     chan struct{}
	stop     chan struct{}
}

func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Clock{
		interval: interval,
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
	}
}

// Wake resumes ticking. Call after any event that may have started an
// animation. Safe from any goroutine; coalesces repeated calls.
func (c *Clock) Wake() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// Stop terminates Run. Idempotent.
func (c *Clock) Stop() {
	select {
	case <-c.stop:
	default:
		close(c.stop)
	}
}

// Run blocks, delivering ticks to frame until Stop is called.
func (c *Clock) Run(frame FrameFunc) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	last := time.Now()
	active := true
	for {
		if !active {
			select {
			case <-c.stop:
				return
			case <-c.wake:
				active = true
				last = time.Now()
			}
			continue
		}
		select {
		case <-c.stop:
			return
		case <-c.wake:
		case now := <-ticker.C:
			active = frame(&Params{Elapsed: now.Sub(last)})
			last = now
		}
	}
}
