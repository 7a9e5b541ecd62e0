// Package ora implements the OR-Array: the flat, linear-scan bag of
// weighted points that an OR-Tree falls back to once a subtree's weight
// drops below the configured cutoff.
//
// Ported from original_source/src/ora.{h,c}. The C struct stores records
// as a flat []int of (w, x_1..x_d) tuples; here each record is a Go
// struct, and the "teleport" drain returns a sorted []WeightedPoint
// instead of writing through an output-pointer array.
package ora

import (
	"sort"

	"mlcs/internal/errutil"
	"mlcs/point"
)

// WeightedPoint pairs a point with its multiplicity, the unit teleport and
// build operate on.
type WeightedPoint struct {
	W int
	P point.Point
}

type record struct {
	w int
	p point.Point
}

// Array is the flat weighted-point bag.
type Array struct {
	dim    int
	weight int
	recs   []record
}

// New allocates an empty OR-Array over dim dimensions.
func New(dim int) *Array {
	errutil.Assert(dim > 0, "ora: dimension must be positive")
	return &Array{dim: dim}
}

// Build constructs an Array directly from a slice of weighted points,
// coalescing none of them (the caller is expected to have already merged
// duplicates, as teleport's output guarantees).
func Build(dim int, pts []WeightedPoint) *Array {
	a := New(dim)
	a.recs = make([]record, len(pts))
	for i, wp := range pts {
		a.recs[i] = record{w: wp.W, p: wp.P}
		a.weight += wp.W
	}
	return a
}

// Dim returns the array's dimension.
func (a *Array) Dim() int { return a.dim }

// Weight returns the total multiplicity stored in the array.
func (a *Array) Weight() int { return a.weight }

// Occupancy returns the number of distinct points stored.
func (a *Array) Occupancy() int { return len(a.recs) }

func (a *Array) find(p point.Point) int {
	for i := range a.recs {
		if a.recs[i].p.Equals(p) {
			return i
		}
	}
	return -1
}

// Insert adds w to p's multiplicity, creating the record if p is new.
func (a *Array) Insert(p point.Point, w int) {
	if i := a.find(p); i >= 0 {
		a.recs[i].w += w
	} else {
		a.recs = append(a.recs, record{w: w, p: p.Clone()})
	}
	a.weight += w
}

// Delete decrements p's multiplicity by one, removing the record if it
// reaches zero. It returns true if the whole array became empty — the
// caller must then null the slot it lives in.
func (a *Array) Delete(p point.Point) bool {
	i := a.find(p)
	errutil.Assert(i >= 0, "ora: deleting non-present point %v", p)

	a.recs[i].w--
	a.weight--
	if a.recs[i].w == 0 {
		last := len(a.recs) - 1
		a.recs[i] = a.recs[last]
		a.recs = a.recs[:last]
	}
	return a.weight == 0
}

// ContainsQ reports whether p is stored (ignoring multiplicity).
func (a *Array) ContainsQ(p point.Point) bool {
	return a.find(p) >= 0
}

// CountQ returns the summed multiplicity of every stored point that
// strictly dominates c (every coordinate strictly less than c's).
func (a *Array) CountQ(c point.Point) int {
	total := 0
	for _, r := range a.recs {
		if r.p.StrictlyDominates(c) {
			total += r.w
		}
	}
	return total
}

// Collect returns one copy per stored point with every coordinate
// greater than or equal to c (c.Dominates(p): c non-strictly dominates
// p).
func (a *Array) Collect(c point.Point) []point.Point {
	var out []point.Point
	for _, r := range a.recs {
		if c.Dominates(r.p) {
			out = append(out, r.p.Clone())
		}
	}
	return out
}

// DominatedCollect returns one copy per stored point with every
// coordinate non-strictly less than or equal to c.
func (a *Array) DominatedCollect(c point.Point) []point.Point {
	var out []point.Point
	for _, r := range a.recs {
		if r.p.Dominates(c) {
			out = append(out, r.p.Clone())
		}
	}
	return out
}

// RangeCollect returns one copy per stored point p with
// min[k] <= p[k] < max[k] for every coordinate k.
func (a *Array) RangeCollect(min, max point.Point) []point.Point {
	var out []point.Point
	for _, r := range a.recs {
		if r.p.InRange(min, max) {
			out = append(out, r.p.Clone())
		}
	}
	return out
}

// Teleport drains every point into a flat weighted-point slice sorted by
// the last dimension, suitable for ort.buildBalanced, and empties the
// array.
func (a *Array) Teleport() []WeightedPoint {
	out := make([]WeightedPoint, len(a.recs))
	for i, r := range a.recs {
		out[i] = WeightedPoint{W: r.w, P: r.p}
	}
	last := a.dim - 1
	sort.Slice(out, func(i, j int) bool {
		return out[i].P[last] < out[j].P[last]
	})
	a.recs = nil
	a.weight = 0
	return out
}
