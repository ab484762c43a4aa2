package main

import (
	"errors"
)

var ErrStepMismatch = errors.New("intersecting ranges must have the same step")

// Range is the half-open interval [Low, High). A Range with High <= Low
// carries no values.
type Range struct {
	Low, High int64
}

func RangeOf(start, length int64) Range {
	return Range{start, start + length}
}

func (r Range) Len() int64 {
	if r.High <= r.Low {
		return 0
	}
	return r.High - r.Low
}

func (r Range) Empty() bool {
	return r.High <= r.Low
}

func (r Range) Contains(v int64) bool {
	return v >= r.Low && v < r.High
}

// Shift moves r by delta.
func (r Range) Shift(delta int64) Range {
	return Range{r.Low + delta, r.High + delta}
}

// Intersect returns the common part of r and o. ok is false when they
// share no value, including when either is empty or they only touch.
func (r Range) Intersect(o Range) (x Range, ok bool) {
	x.Low, x.High = r.Low, r.High
	if o.Low > x.Low {
		x.Low = o.Low
	}
	if o.High < x.High {
		x.High = o.High
	}
	if x.High <= x.Low {
		return Range{}, false
	}
	return x, true
}

// SteppedRange is a Range visiting every Step-th value from Low.
type SteppedRange struct {
	Range
	Step int64
}

func (r SteppedRange) Intersect(o SteppedRange) (SteppedRange, bool, error) {
	if r.Step != o.Step {
		return SteppedRange{}, false, ErrStepMismatch
	}
	if r.Step > 1 && mod(r.Low, r.Step) != mod(o.Low, o.Step) {
		return SteppedRange{}, false, nil
	}
	x, ok := r.Range.Intersect(o.Range)
	if !ok {
		return SteppedRange{}, false, nil
	}
	return SteppedRange{x, r.Step}, true, nil
}

func mod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
