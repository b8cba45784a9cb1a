package timeseries

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 2, 3, 4, 5}

	s, err := New(x, y)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if s.Len() != 5 {
		t.Errorf("Expected length 5, got %d", s.Len())
	}
	for i := range y {
		if s.X[i] != x[i] || s.Y[i] != y[i] {
			t.Errorf("Pair at index %d: expected (%f, %f), got (%f, %f)", i, x[i], y[i], s.X[i], s.Y[i])
		}
	}
}

func TestNewLengthMismatch(t *testing.T) {
	if _, err := New([]float64{0, 1}, []float64{1}); err == nil {
		t.Error("Expected error for mismatched lengths")
	}
}

func TestFromY(t *testing.T) {
	s := FromY([]float64{10, 20, 30})
	if s.Len() != 3 {
		t.Errorf("Expected length 3, got %d", s.Len())
	}
	for i, want := range []float64{0, 1, 2} {
		if s.X[i] != want {
			t.Errorf("Expected x=%f at index %d, got %f", want, i, s.X[i])
		}
	}
}

func TestMeanY(t *testing.T) {
	tests := []struct {
		name     string
		y        []float64
		expected float64
	}{
		{"simple", []float64{1, 2, 3, 4, 5}, 3.0},
		{"single", []float64{5}, 5.0},
		{"negative", []float64{-1, -2, -3}, -2.0},
		{"mixed", []float64{-1, 0, 1}, 0.0},
		{"empty", []float64{}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromY(tt.y)
			result := s.MeanY()
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("Expected mean %f, got %f", tt.expected, result)
			}
		})
	}
}

func TestVarianceY(t *testing.T) {
	s := FromY([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := 4.571428571428571

	result := s.VarianceY()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected variance %f, got %f", expected, result)
	}
}

func TestStdY(t *testing.T) {
	s := FromY([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	expected := math.Sqrt(4.571428571428571)

	result := s.StdY()
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Expected std %f, got %f", expected, result)
	}
}

func TestMinMaxY(t *testing.T) {
	s := FromY([]float64{3, 1, 4, 1, 5, 9, 2, 6})
	if s.MinY() != 1 {
		t.Errorf("Expected min 1, got %f", s.MinY())
	}
	if s.MaxY() != 9 {
		t.Errorf("Expected max 9, got %f", s.MaxY())
	}

	empty := FromY(nil)
	if !math.IsNaN(empty.MinY()) || !math.IsNaN(empty.MaxY()) {
		t.Error("Expected NaN min/max for empty series")
	}
}

func TestMedianY(t *testing.T) {
	odd := FromY([]float64{3, 1, 2})
	if odd.MedianY() != 2 {
		t.Errorf("Expected median 2, got %f", odd.MedianY())
	}

	even := FromY([]float64{4, 1, 3, 2})
	if even.MedianY() != 2.5 {
		t.Errorf("Expected median 2.5, got %f", even.MedianY())
	}
}

func TestSpan(t *testing.T) {
	s, _ := New([]float64{2, 0, 5, 3}, []float64{1, 1, 1, 1})
	min, max := s.Span()
	if min != 0 || max != 5 {
		t.Errorf("Expected span [0, 5], got [%f, %f]", min, max)
	}
}

func TestIsMonotonic(t *testing.T) {
	sorted, _ := New([]float64{0, 1, 1, 2}, []float64{1, 2, 3, 4})
	if !sorted.IsMonotonic() {
		t.Error("Expected non-decreasing x to be monotonic")
	}

	unsorted, _ := New([]float64{0, 2, 1}, []float64{1, 2, 3})
	if unsorted.IsMonotonic() {
		t.Error("Expected unsorted x to be non-monotonic")
	}
}

func TestSlice(t *testing.T) {
	s, _ := New([]float64{0, 1, 2, 3, 4}, []float64{10, 11, 12, 13, 14})

	sub := s.Slice(1, 3)
	if sub.Len() != 2 {
		t.Fatalf("Expected length 2, got %d", sub.Len())
	}
	if sub.X[0] != 1 || sub.Y[0] != 11 {
		t.Errorf("Expected pair (1, 11), got (%f, %f)", sub.X[0], sub.Y[0])
	}

	// Out-of-range bounds are clamped
	if s.Slice(-5, 100).Len() != 5 {
		t.Error("Expected clamped slice to cover the full series")
	}
	if s.Slice(3, 2).Len() != 0 {
		t.Error("Expected empty slice for inverted bounds")
	}
}

func TestCopy(t *testing.T) {
	s, _ := New([]float64{0, 1}, []float64{5, 6})
	c := s.Copy()

	c.Y[0] = 99
	if s.Y[0] != 5 {
		t.Error("Copy should not share backing arrays")
	}
}
