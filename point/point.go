// Package point implements the d-dimensional integer points that the
// dominance index and the MLCS engine operate on.
//
// Ported from original_source/src/point.{h,c}. The C side represents a
// point as a bare int* (sometimes with a leading multiplicity int living
// just before it, inside the ORA). Here that is two distinct value types:
// Point itself, and ora.record's separate weight field — no overloaded
// leading slot.
package point

// Before marks "before the first position" of a Dyn-String.
const Before = -1

// None marks "no such occurrence" / "beyond the last position".
const None = -2

// Point is a d-element vector of signed integers. Coordinate -1 is the
// Before sentinel, -2 is the None sentinel.
type Point []int

// New allocates a zero-valued point of the given dimension.
func New(dim int) Point {
	return make(Point, dim)
}

// Sentinel returns the all-Before point used as PF[0]'s single member.
func Sentinel(dim int) Point {
	p := make(Point, dim)
	for i := range p {
		p[i] = Before
	}
	return p
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)
	return q
}

// Get returns coordinate k.
func (p Point) Get(k int) int {
	return p[k]
}

// Cmp compares only coordinate k of p and q.
func (p Point) Cmp(q Point, k int) int {
	return p[k] - q[k]
}

// FullCmp compares p and q lexicographically from the highest dimension
// down to dimension 0.
func (p Point) FullCmp(q Point) int {
	for k := len(p) - 1; k >= 0; k-- {
		if d := p[k] - q[k]; d != 0 {
			return d
		}
	}
	return 0
}

// Equals reports whether every coordinate of p and q is equal.
func (p Point) Equals(q Point) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// BumpedBy returns a new point with every coordinate shifted by k. Used to
// convert between strict and non-strict dominance (k = +1 is "plusPlus",
// k = -1 is "minusMinus") without mutating the receiver.
func (p Point) BumpedBy(k int) Point {
	q := make(Point, len(p))
	for i, v := range p {
		q[i] = v + k
	}
	return q
}

// StrictlyDominates reports whether p[i] < q[i] for every coordinate i.
func (p Point) StrictlyDominates(q Point) bool {
	for i := range p {
		if p[i] >= q[i] {
			return false
		}
	}
	return true
}

// Dominates reports whether p[i] <= q[i] for every coordinate i
// (non-strict dominance).
func (p Point) Dominates(q Point) bool {
	for i := range p {
		if p[i] > q[i] {
			return false
		}
	}
	return true
}

// Sum returns the sum of p's coordinates.
func (p Point) Sum() int {
	s := 0
	for _, v := range p {
		s += v
	}
	return s
}

// InRange reports whether min[k] <= p[k] < max[k] for every coordinate k —
// the semi-open range test used by rangeCollect.
func (p Point) InRange(min, max Point) bool {
	for i := range p {
		if p[i] < min[i] || p[i] >= max[i] {
			return false
		}
	}
	return true
}
