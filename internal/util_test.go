package internal

import "testing"

func TestMask(t *testing.T) {
	cases := []struct {
		nbit int
		want uint64
	}{
		{1, 0x1},
		{12, 0xfff},
		{20, 0xfffff},
		{63, 1<<63 - 1},
		{64, ^uint64(0)},
	}
	for _, c := range cases {
		if got := Mask(c.nbit); got != c.want {
			t.Errorf("Mask(%d) = %#x, want %#x", c.nbit, got, c.want)
		}
	}
}

func TestMaskOutOfRange(t *testing.T) {
	for _, nbit := range []int{0, 65, -3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Mask(%d) did not panic", nbit)
				}
			}()
			Mask(nbit)
		}()
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{7, 2, 3},
		{6, 2, 3},
		{0, 3, 0},
		{-1, 2, -1},
		{-2, 2, -1},
		{-3, 2, -2},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestAbsSign(t *testing.T) {
	if Abs(-4) != 4 || Abs(4) != 4 || Abs(0) != 0 {
		t.Error("Abs")
	}
	if Sign(-4) != -1 || Sign(9) != 1 || Sign(0) != 0 {
		t.Error("Sign")
	}
}
