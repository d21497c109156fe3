package core

import "math"

// Interval is a closed range of real values. Callers keep Min <= Max;
// an interval with Min > Max contains nothing.
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval spanning [min, max]
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval returns [+Inf, -Inf], which contains no value
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// UniverseInterval returns [-Inf, +Inf]
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether min <= v <= max
func (i Interval) Contains(v float64) bool {
	return i.Min <= v && v <= i.Max
}

// Surrounds reports whether min < v < max; both endpoints are excluded
func (i Interval) Surrounds(v float64) bool {
	return i.Min < v && v < i.Max
}

// Clamp limits v to the interval
func (i Interval) Clamp(v float64) float64 {
	if v < i.Min {
		return i.Min
	}
	if v > i.Max {
		return i.Max
	}
	return v
}

// WithMax returns a copy of the interval with a new upper bound
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}
