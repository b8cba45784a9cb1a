// Package timeseries provides observation series data structures and operations.
package timeseries

import (
	"errors"
	"math"
	"sort"
)

// Series represents an observed signal as paired (x, y) observations,
// where X is the independent time variable and Y the observed signal.
// Pairs correspond by index; X need not be sorted, though relaxation
// data is conventionally monotonic in time.
type Series struct {
	X    []float64
	Y    []float64
	Name string
}

// New creates an observation series from paired x and y values.
func New(x, y []float64) (*Series, error) {
	if len(x) != len(y) {
		return nil, errors.New("x and y must have the same length")
	}
	return &Series{
		X: x,
		Y: y,
	}, nil
}

// FromY creates an observation series from signal values alone, with
// x = 0, 1, 2, ... (unit sampling intervals).
func FromY(y []float64) *Series {
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	return &Series{
		X: x,
		Y: y,
	}
}

// Len returns the number of observations.
func (s *Series) Len() int {
	return len(s.Y)
}

// MeanY calculates the arithmetic mean of the observed signal.
func (s *Series) MeanY() float64 {
	if len(s.Y) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Y {
		sum += v
	}
	return sum / float64(len(s.Y))
}

// VarianceY calculates the sample variance of the observed signal.
func (s *Series) VarianceY() float64 {
	if len(s.Y) < 2 {
		return 0
	}
	mean := s.MeanY()
	sumSq := 0.0
	for _, v := range s.Y {
		diff := v - mean
		sumSq += diff * diff
	}
	return sumSq / float64(len(s.Y)-1)
}

// StdY calculates the standard deviation of the observed signal.
func (s *Series) StdY() float64 {
	return math.Sqrt(s.VarianceY())
}

// MinY returns the minimum observed signal value.
func (s *Series) MinY() float64 {
	if len(s.Y) == 0 {
		return math.NaN()
	}
	min := s.Y[0]
	for _, v := range s.Y[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// MaxY returns the maximum observed signal value.
func (s *Series) MaxY() float64 {
	if len(s.Y) == 0 {
		return math.NaN()
	}
	max := s.Y[0]
	for _, v := range s.Y[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// MedianY returns the median observed signal value.
func (s *Series) MedianY() float64 {
	if len(s.Y) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(s.Y))
	copy(sorted, s.Y)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Span returns the minimum and maximum of the time variable.
func (s *Series) Span() (min, max float64) {
	if len(s.X) == 0 {
		return math.NaN(), math.NaN()
	}
	min, max = s.X[0], s.X[0]
	for _, v := range s.X[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// IsMonotonic reports whether the time variable is non-decreasing.
func (s *Series) IsMonotonic() bool {
	for i := 1; i < len(s.X); i++ {
		if s.X[i] < s.X[i-1] {
			return false
		}
	}
	return true
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Y) {
		end = len(s.Y)
	}
	if start >= end {
		return &Series{X: []float64{}, Y: []float64{}}
	}

	x := make([]float64, end-start)
	copy(x, s.X[start:end])
	y := make([]float64, end-start)
	copy(y, s.Y[start:end])

	return &Series{
		X:    x,
		Y:    y,
		Name: s.Name,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	x := make([]float64, len(s.X))
	copy(x, s.X)
	y := make([]float64, len(s.Y))
	copy(y, s.Y)

	return &Series{
		X:    x,
		Y:    y,
		Name: s.Name,
	}
}
