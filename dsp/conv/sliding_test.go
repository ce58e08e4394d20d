package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-viscoconv/internal/testutil"
)

// kernel10 is 1..10 so reversed and shifted windows are easy to read.
var kernel10 = testutil.Ramp(1, 10)

func TestSlidingPaddedLayout(t *testing.T) {
	s, err := NewSliding(kernel10)
	if err != nil {
		t.Fatal(err)
	}

	padded := s.Padded()
	if len(padded) != 30 {
		t.Fatalf("len = %d, want 30", len(padded))
	}
	for i := 0; i < 10; i++ {
		if padded[i] != 0 || padded[20+i] != 0 {
			t.Fatalf("padding not zero at %d/%d: %v %v", i, 20+i, padded[i], padded[20+i])
		}
	}
	want := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	testutil.RequireSliceNearlyEqual(t, padded[10:20], want, 0)

	if s.Len() != 10 || s.Frames() != 20 {
		t.Fatalf("Len() = %d, Frames() = %d", s.Len(), s.Frames())
	}
}

func TestSlidingWindow(t *testing.T) {
	s, err := NewSliding(kernel10)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		i    int
		want []float64
	}{
		{name: "first frame", i: 1, want: []float64{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{name: "half", i: 5, want: []float64{5, 4, 3, 2, 1, 0, 0, 0, 0, 0}},
		{name: "last frame", i: 9, want: []float64{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}},
		{name: "full overlap", i: 10, want: []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}},
		{name: "sliding off", i: 15, want: []float64{0, 0, 0, 0, 0, 10, 9, 8, 7, 6}},
		{name: "empty", i: 0, want: make([]float64, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.Window(tt.i)
			testutil.RequireSliceNearlyEqual(t, w, tt.want, 0)

			// Window aliases padded[2N-i : 3N-i].
			if &w[0] != &s.Padded()[20-tt.i] {
				t.Fatal("window does not alias the padded array")
			}
		})
	}
}

func TestSlidingWindowPanics(t *testing.T) {
	s, err := NewSliding(kernel10)
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 21} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Window(%d) did not panic", i)
				}
			}()
			s.Window(i)
		}()
	}
}

func TestSlidingOverlapIsConvolution(t *testing.T) {
	kernel := testutil.DeterministicNoise(11, 1, 16)
	sig := testutil.DeterministicNoise(12, 1, 16)
	s, err := NewSliding(kernel)
	if err != nil {
		t.Fatal(err)
	}

	full, err := Direct(kernel, sig)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < s.Frames(); i++ {
		testutil.RequireNearlyEqual(t, "overlap", s.Overlap(sig, i), full[i-1], 1e-12)
	}
}

func TestSlidingProduct(t *testing.T) {
	s, err := NewSliding(kernel10)
	if err != nil {
		t.Fatal(err)
	}

	sig := testutil.DC(2, 10)
	dst := make([]float64, 10)
	if err := s.ProductTo(dst, sig, 3); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, dst, []float64{6, 4, 2, 0, 0, 0, 0, 0, 0, 0}, 0)

	if err := s.ProductTo(dst[:3], sig, 3); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	win := make([]float64, 10)
	if err := s.WindowTo(win, 2); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, win, []float64{2, 1, 0, 0, 0, 0, 0, 0, 0, 0}, 0)
	if err := s.WindowTo(win[:1], 2); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestNewSlidingEmpty(t *testing.T) {
	if _, err := NewSliding(nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("expected ErrEmptyKernel, got %v", err)
	}
}
