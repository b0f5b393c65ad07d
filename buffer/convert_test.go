package buffer

import "testing"

func TestConvert_OffsetAndPos(t *testing.T) {
	b := New("ab\nπテ\n", Options{})

	cases := []struct {
		off int
		pos Pos
	}{
		{off: 0, pos: Pos{Row: 0, Col: 0}},
		{off: 2, pos: Pos{Row: 0, Col: 2}},
		{off: 3, pos: Pos{Row: 1, Col: 0}},
		{off: 5, pos: Pos{Row: 1, Col: 2}},
		{off: 6, pos: Pos{Row: 2, Col: 0}},
	}
	for _, tc := range cases {
		if got := b.PosFromOffset(tc.off); got != tc.pos {
			t.Fatalf("PosFromOffset(%d)=%v, want %v", tc.off, got, tc.pos)
		}
		if got := b.OffsetFromPos(tc.pos); got != tc.off {
			t.Fatalf("OffsetFromPos(%v)=%d, want %d", tc.pos, got, tc.off)
		}
		if got := PosInText(b.Text(), tc.off); got != tc.pos {
			t.Fatalf("PosInText(%d)=%v, want %v", tc.off, got, tc.pos)
		}
	}
}

func TestConvert_Clamps(t *testing.T) {
	b := New("ab\nc", Options{})
	if got, want := b.PosFromOffset(-3), (Pos{}); got != want {
		t.Fatalf("PosFromOffset(-3)=%v, want %v", got, want)
	}
	if got, want := b.PosFromOffset(99), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("PosFromOffset(99)=%v, want %v", got, want)
	}
	if got, want := b.OffsetFromPos(Pos{Row: 0, Col: 99}), 2; got != want {
		t.Fatalf("OffsetFromPos(0,99)=%d, want %d", got, want)
	}
}
