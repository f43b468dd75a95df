package spectrum

import (
	"math"
	"testing"
)

func TestGenerateWindowEndpoints(t *testing.T) {
	// Periodic form: first coefficient is the window minimum.
	hann := generateWindow(WindowHann, 8)
	if math.Abs(hann[0]) > 1e-15 {
		t.Fatalf("hann[0] = %v, want 0", hann[0])
	}
	if math.Abs(hann[4]-1) > 1e-15 {
		t.Fatalf("hann[4] = %v, want 1", hann[4])
	}

	hamming := generateWindow(WindowHamming, 8)
	if math.Abs(hamming[0]-0.08) > 1e-12 {
		t.Fatalf("hamming[0] = %v, want 0.08", hamming[0])
	}

	rect := generateWindow(WindowRectangular, 4)
	for i, v := range rect {
		if v != 1 {
			t.Fatalf("rect[%d] = %v, want 1", i, v)
		}
	}
}

func TestCoherentGain(t *testing.T) {
	if g := coherentGain(generateWindow(WindowRectangular, 16)); math.Abs(g-1) > 1e-15 {
		t.Fatalf("rectangular gain = %v, want 1", g)
	}
	// Periodic Hann sums to exactly N/2.
	if g := coherentGain(generateWindow(WindowHann, 16)); math.Abs(g-0.5) > 1e-12 {
		t.Fatalf("hann gain = %v, want 0.5", g)
	}
	if g := coherentGain(nil); g != 1 {
		t.Fatalf("empty gain = %v, want 1", g)
	}
}

func TestWindowByName(t *testing.T) {
	tests := []struct {
		name   string
		want   Window
		wantOK bool
	}{
		{name: "", want: WindowRectangular, wantOK: true},
		{name: "rectangular", want: WindowRectangular, wantOK: true},
		{name: "hann", want: WindowHann, wantOK: true},
		{name: "hamming", want: WindowHamming, wantOK: true},
		{name: "blackman", want: WindowBlackman, wantOK: true},
		{name: "kaiser", wantOK: false},
	}

	for _, tt := range tests {
		got, ok := WindowByName(tt.name)
		if ok != tt.wantOK {
			t.Fatalf("WindowByName(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
		}
		if ok && got != tt.want {
			t.Fatalf("WindowByName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestWindowString(t *testing.T) {
	if WindowHann.String() != "hann" || WindowRectangular.String() != "rectangular" {
		t.Fatal("unexpected window names")
	}
}
