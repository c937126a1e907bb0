package mathx

import "testing"

func TestBetween(t *testing.T) {
	cases := []struct {
		v, lo, hi uint16
		want      bool
	}{
		{1700, 1700, 2100, true},
		{2100, 1700, 2100, true},
		{1699, 1700, 2100, false},
		{2101, 1700, 2100, false},
		{1900, 2100, 1700, true}, // swapped bounds
	}
	for _, c := range cases {
		if got := Between(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Between(%d, %d, %d) = %v, want %v", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestAbsDiff(t *testing.T) {
	if got := AbsDiff[uint16](4095, 1900); got != 2195 {
		t.Fatalf("AbsDiff(4095,1900)=%d", got)
	}
	if got := AbsDiff[uint16](0, 2000); got != 2000 {
		t.Fatalf("AbsDiff(0,2000)=%d", got)
	}
	if got := AbsDiff(-3, 4); got != 7 {
		t.Fatalf("AbsDiff(-3,4)=%d", got)
	}
}

func TestSatSub(t *testing.T) {
	if got := SatSub[uint16](100, 200); got != 0 {
		t.Fatalf("SatSub(100,200)=%d", got)
	}
	if got := SatSub[uint16](1900, 200); got != 1700 {
		t.Fatalf("SatSub(1900,200)=%d", got)
	}
}
