package summary

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	s := Calculate([]float64{1, -1, 1, -1})

	if s.Length != 4 {
		t.Fatalf("Length = %d, want 4", s.Length)
	}
	if s.Mean != 0 {
		t.Fatalf("Mean = %v, want 0", s.Mean)
	}
	if s.RMS != 1 {
		t.Fatalf("RMS = %v, want 1", s.RMS)
	}
	if s.Min != -1 || s.MinPos != 1 {
		t.Fatalf("Min = %v at %d, want -1 at 1", s.Min, s.MinPos)
	}
	if s.Max != 1 || s.MaxPos != 0 {
		t.Fatalf("Max = %v at %d, want 1 at 0", s.Max, s.MaxPos)
	}
	if s.Range != 2 {
		t.Fatalf("Range = %v, want 2", s.Range)
	}
	if math.Abs(s.Variance-1) > 1e-12 || math.Abs(s.StdDev-1) > 1e-12 {
		t.Fatalf("Variance = %v StdDev = %v, want 1", s.Variance, s.StdDev)
	}
}

func TestCalculateConstant(t *testing.T) {
	s := Calculate([]float64{4, 4, 4})
	if s.Mean != 4 || s.Variance != 0 || s.Range != 0 {
		t.Fatalf("unexpected stats for constant input: %+v", s)
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 {
		t.Fatalf("Length = %d, want 0", s.Length)
	}
}

func TestCalculateMatchesTwoPass(t *testing.T) {
	in := []float64{2.5, -1.25, 3, 0.75, -2, 4.5}
	s := Calculate(in)

	var mean float64
	for _, v := range in {
		mean += v
	}
	mean /= float64(len(in))

	var m2 float64
	for _, v := range in {
		d := v - mean
		m2 += d * d
	}
	wantVar := m2 / float64(len(in))

	if math.Abs(s.Mean-mean) > 1e-12 {
		t.Fatalf("Mean = %v, want %v", s.Mean, mean)
	}
	if math.Abs(s.Variance-wantVar) > 1e-12 {
		t.Fatalf("Variance = %v, want %v", s.Variance, wantVar)
	}
}
