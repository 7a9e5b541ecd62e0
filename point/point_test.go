package point

import "testing"

func TestStrictlyDominates(t *testing.T) {
	p := Point{1, 1, 1}
	q := Point{2, 2, 2}
	if !p.StrictlyDominates(q) {
		t.Fatalf("expected %v to strictly dominate %v", p, q)
	}
	if q.StrictlyDominates(p) {
		t.Fatalf("did not expect %v to strictly dominate %v", q, p)
	}
	eq := Point{1, 2, 1}
	if eq.StrictlyDominates(q) {
		t.Fatalf("equal coordinate must not count as strict domination")
	}
}

func TestBumpedByConvertsStrictToNonStrict(t *testing.T) {
	p := Point{1, 1}
	q := Point{2, 2}
	if !p.BumpedBy(1).Dominates(q) {
		t.Fatalf("bumped p should non-strictly dominate q")
	}
	// Original must be untouched.
	if p[0] != 1 || p[1] != 1 {
		t.Fatalf("BumpedBy must not mutate receiver, got %v", p)
	}
}

func TestFullCmpHighToLow(t *testing.T) {
	p := Point{5, 1}
	q := Point{5, 2}
	if p.FullCmp(q) >= 0 {
		t.Fatalf("expected p < q by highest-dim-first comparison")
	}
}

func TestSentinelAllBefore(t *testing.T) {
	s := Sentinel(3)
	for _, c := range s {
		if c != Before {
			t.Fatalf("sentinel coordinate not Before: %v", s)
		}
	}
}

func TestInRangeSemiOpen(t *testing.T) {
	min := Point{0, 0}
	max := Point{5, 5}
	if !(Point{0, 4}).InRange(min, max) {
		t.Fatalf("expected in-range at low boundary")
	}
	if (Point{5, 4}).InRange(min, max) {
		t.Fatalf("max bound is exclusive")
	}
}
