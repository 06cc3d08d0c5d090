// Copyright © 2025 Glint contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: anim/easing.go
// Summary: Easing functions for widget animations.
// Usage: Passed to Animator to shape value transitions.

package anim

// EasingFunc maps normalized progress [0,1] to an eased value [0,1].
type EasingFunc func(t float32) float32

// Common easing functions
var (
	// Linear - no easing, constant speed
	Linear EasingFunc = func(t float32) float32 { return t }

	// Smoothstep - smooth S-curve, accelerates then decelerates
	Smoothstep EasingFunc = func(t float32) float32 {
		return t * t * (3.0 - 2.0*t)
	}

	// Smootherstep - S-curve with zero derivatives at 0 and 1
	Smootherstep EasingFunc = func(t float32) float32 {
		return t * t * t * (t*(t*6.0-15.0) + 10.0)
	}

	// InQuad - quadratic ease-in (slow start, accelerating)
	InQuad EasingFunc = func(t float32) float32 {
		return t * t
	}

	// OutQuad - quadratic ease-out (fast start, decelerating)
	OutQuad EasingFunc = func(t float32) float32 {
		return t * (2.0 - t)
	}

	// InOutQuad - quadratic ease-in-out
	InOutQuad EasingFunc = func(t float32) float32 {
		if t < 0.5 {
			return 2.0 * t * t
		}
		return -1.0 + (4.0-2.0*t)*t
	}

	// InCubic - cubic ease-in
	InCubic EasingFunc = func(t float32) float32 {
		return t * t * t
	}

	// OutCubic - cubic ease-out
	OutCubic EasingFunc = func(t float32) float32 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}

	// InOutCubic - cubic ease-in-out
	InOutCubic EasingFunc = func(t float32) float32 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		t1 := 2.0*t - 2.0
		return 1.0 + t1*t1*t1*0.5
	}
)
