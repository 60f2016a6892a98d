package cprs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLengthCodes(t *testing.T) {
	want := []code{
		{extraBits: 1, correction: 3, base: 0},
		{extraBits: 1, correction: 3, base: 2},
		{extraBits: 3, correction: 5, base: 4},
		{extraBits: 8, correction: 10, base: 12},
	}
	if diff := cmp.Diff(want, lengthCodes, cmp.AllowUnexported(code{})); diff != "" {
		t.Fatalf("length codes (-want +got):\n%s", diff)
	}
}

func TestDistanceCodes(t *testing.T) {
	if len(distanceCodes) != distanceClasses {
		t.Fatalf("got %d distance codes", len(distanceCodes))
	}

	// Classes tile the distance range without gaps.
	var next uint32
	for i, c := range distanceCodes {
		if c.base != next {
			t.Fatalf("class %d: base=%d want %d", i, c.base, next)
		}
		next = c.base + c.mask() + 1
	}
	if last := distanceCodes[distanceClasses-1]; last.base+last.mask() < terminalDistance {
		t.Fatalf("last class cannot reach terminal distance: max=%#x", last.base+last.mask())
	}
}

func TestLengthBonus(t *testing.T) {
	for i, c := range distanceCodes {
		want := uint32(2)
		if i >= 9 {
			want = 3
		}
		if got := c.lengthBonus(); got != want {
			t.Errorf("class %d: bonus=%d want %d", i, got, want)
		}
	}
}
