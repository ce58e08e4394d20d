package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d", cap(out), cap(buf))
	}
}

func TestCopyInto(t *testing.T) {
	dst := make([]float64, 2)

	n := CopyInto(dst, []float64{1, 2, 3})
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	if dst[0] != 1 || dst[1] != 2 {
		t.Fatalf("unexpected dst: %#v", dst)
	}
}

func TestZero(t *testing.T) {
	buf := []float64{1, 2, 3}
	Zero(buf)

	for i, v := range buf {
		if v != 0 {
			t.Fatalf("buf[%d] = %v, want 0", i, v)
		}
	}
}

func TestReverse(t *testing.T) {
	src := []float64{1, 2, 3, 4}
	got := Reverse(src)
	want := []float64{4, 3, 2, 1}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Reverse()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if src[0] != 1 {
		t.Fatal("Reverse must not modify its input")
	}
}

func TestReverseInPlace(t *testing.T) {
	for _, n := range []int{0, 1, 2, 5} {
		buf := make([]float64, n)
		for i := range buf {
			buf[i] = float64(i)
		}
		ReverseInPlace(buf)
		for i := range buf {
			if buf[i] != float64(n-1-i) {
				t.Fatalf("n=%d: buf[%d] = %v, want %v", n, i, buf[i], n-1-i)
			}
		}
	}
}

func TestZeroPad(t *testing.T) {
	got := ZeroPad([]float64{7, 8}, 2, 3)
	want := []float64{0, 0, 7, 8, 0, 0, 0}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ZeroPad()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if n := len(ZeroPad([]float64{1}, -1, -4)); n != 1 {
		t.Fatalf("negative pads: len = %d, want 1", n)
	}
}

func TestScaled(t *testing.T) {
	got := Scaled([]float64{1, -2}, 2)
	if got[0] != 2 || got[1] != -4 {
		t.Fatalf("Scaled() = %v, want [2 -4]", got)
	}
}
