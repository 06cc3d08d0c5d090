// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/animator.go
// Summary: Frame-driven single-value animator.
// Usage: Widgets ease a float toward a target, stepped by an external clock.

package anim

import "time"

// Params is the payload of one frame tick.
type Params struct {
	// Elapsed is the time since the previous tick.
	Elapsed time.Duration
}

// Animatable consumes frame ticks delivered by an external clock.
// OnFrame must not block; it is called synchronously from the dispatch loop.
type Animatable interface {
	OnFrame(p *Params)
}

// Animator eases the value it points at toward a target over a duration.
// The zero-duration animator jumps straight to the target. Once the value
// reaches the target, OnFrame is a no-op until the animator is replaced.
//
// The pointed-at value is written only by OnFrame; callers that need to
// reset it (for instance, a visual perturbation) write it themselves and
// then install a fresh animator.
type Animator struct {
	value    *float32
	from     float32
	to       float32
	duration time.Duration
	elapsed  time.Duration
	easing   EasingFunc
}

// NewAnimator returns an animator at rest at the value's current position.
func NewAnimator(value *float32) *Animator {
	return &Animator{value: value, from: *value, to: *value, easing: Linear}
}

// NewAnimatorTo returns an animator easing from the value's current
// position toward target. A nil easing defaults to Smoothstep.
func NewAnimatorTo(value *float32, target float32, duration time.Duration, easing EasingFunc) *Animator {
	if easing == nil {
		easing = Smoothstep
	}
	a := &Animator{
		value:    value,
		from:     *value,
		to:       target,
		duration: duration,
		easing:   easing,
	}
	if duration <= 0 {
		*value = target
	}
	return a
}

// To returns the animator's current target.
func (a *Animator) To() float32 { return a.to }

// Done reports whether the value has reached the target.
func (a *Animator) Done() bool { return *a.value == a.to }

// OnFrame advances the value by the tick's elapsed time. The value moves
// monotonically toward the target and never overshoots; the final frame
// lands on the target exactly.
func (a *Animator) OnFrame(p *Params) {
	if *a.value == a.to {
		return
	}
	a.elapsed += p.Elapsed
	if a.duration <= 0 || a.elapsed >= a.duration {
		*a.value = a.to
		return
	}
	t := float32(a.elapsed) / float32(a.duration)
	*a.value = a.from + (a.to-a.from)*a.easing(t)
}
