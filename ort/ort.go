// Package ort implements the OR-Tree: the weight-balanced, cascaded
// multidimensional dominance index that each Pareto front of the MLCS
// engine is built from.
//
// Ported from original_source/src/ort.{h,c}. Two deliberate deviations
// from the C layout, both called out in spec.md §9's design notes:
//
//   - Leaves are a tagged union (node.isLeaf + node.leaf), not a
//     sign-flipped weight field.
//   - Every tree node carries a full representative Point (node.rep),
//     not just the scalar split value the C node stores. The C side
//     reconstructs a full point on the fly during traversal by threading
//     a "current common point" accumulator (its hp argument) through the
//     recursion, because its nodes are flat int arrays; a Go node has no
//     such memory-layout pressure, so collect/dominatedCollect/range
//     just read node.rep directly at the dimension-0 base case instead
//     of rebuilding the high dimensions from the call stack.
package ort

import (
	"github.com/dgryski/go-radixsort"
	"golang.org/x/exp/rand"

	"mlcs/internal/errutil"
	"mlcs/ora"
	"mlcs/point"
)

// BalanceFactor is the compile-time weight-balance constant β of spec.md
// §4.3 (must be >= 4/3). Configure (below) offers a flexible surface
// but the live path always uses this constant, mirroring the C
// reference, whose main has its configure() call commented out.
const BalanceFactor = 1.5

// DefaultCutoffParam is the "cutoff" empirical parameter spec.md §4.3
// describes (roughly binomial(cutoff+dim-1, dim-1)/dim positions before a
// subtree is represented as a flat ORA instead of a tree).
const DefaultCutoffParam = 8

// rangeBias shifts signed coordinates (including the -1/-2 sentinels)
// into an unsigned, order-preserving domain for the radix sort below.
const rangeBias = 1 << 20

// node is either a tree-internal node (isLeaf == false) or a cutoff leaf
// backed by an OR-Array (isLeaf == true, leaf != nil).
type node struct {
	weight int
	isLeaf bool
	leaf   *ora.Array

	// Tree-internal fields.
	rep         point.Point // a representative point sharing this node's prefix
	key         int         // == rep[dim], duplicated here for cheap comparisons
	own         int         // multiplicity of rep, meaningful only when dim == 0
	left, right *node       // BST on the current dimension
	equal       *node       // points with coordinate == key, recursed to dim-1
	lower       *node       // every point in this subtree, recursed to dim-1
}

func nodeWeight(n *node) int {
	if n == nil {
		return 0
	}
	return n.weight
}

// Tree is a d-dimensional weight-balanced orthogonal dominance index.
type Tree struct {
	dim         int
	cutoffParam int
	beta        float64
	root        *node
	rng         *rand.Rand

	cutoffCache []int
}

// New allocates an empty OR-Tree over dim dimensions, using the default
// balance factor, cutoff parameter, and a process-seeded RNG.
func New(dim int) *Tree {
	return NewSeeded(dim, uint64(rand.Int63()))
}

// NewSeeded allocates an empty OR-Tree with an explicit RNG seed, for
// deterministic tests (spec.md §5's determinism note).
func NewSeeded(dim int, seed uint64) *Tree {
	errutil.Assert(dim > 0, "ort: dimension must be positive")
	return &Tree{
		dim:         dim,
		cutoffParam: DefaultCutoffParam,
		beta:        BalanceFactor,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

// Configure overrides the balance and cutoff parameters of a tree. Kept
// for API completeness per spec.md §9's Open Question; New/NewSeeded
// never call it — the live path always uses BalanceFactor and
// DefaultCutoffParam.
func (t *Tree) Configure(maxN, maxDim int, alpha float64, cutoff int) {
	_ = maxN
	_ = maxDim
	t.beta = alpha
	t.cutoffParam = cutoff
	t.cutoffCache = nil
}

// Weight returns the total multiplicity stored in the tree.
func (t *Tree) Weight() int {
	return nodeWeight(t.root)
}

// Dim returns the tree's dimensionality.
func (t *Tree) Dim() int { return t.dim }

func (t *Tree) cutoff(dim int) int {
	if t.cutoffCache == nil {
		t.cutoffCache = make([]int, t.dim)
	}
	if dim < len(t.cutoffCache) && t.cutoffCache[dim] != 0 {
		return t.cutoffCache[dim]
	}
	localDims := dim + 1
	v := binomial(t.cutoffParam+localDims-1, localDims-1) / localDims
	if v < 2 {
		v = 2
	}
	if dim < len(t.cutoffCache) {
		t.cutoffCache[dim] = v
	}
	return v
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1
	for i := 0; i < k; i++ {
		r = r * (n - i) / (i + 1)
	}
	return r
}

// ---- queries ----

// CountQ returns the number of stored points that strictly dominate c.
func (t *Tree) CountQ(c point.Point) int {
	return t.countQ(t.root, c, t.dim-1)
}

func (t *Tree) countQ(n *node, c point.Point, dim int) int {
	total := 0
	for n != nil {
		if n.isLeaf {
			total += n.leaf.CountQ(c)
			break
		}
		if n.key < c[dim] {
			if dim == 0 {
				total += n.own
				total += nodeWeight(n.left)
			} else {
				if n.left != nil {
					if n.left.isLeaf {
						total += n.left.leaf.CountQ(c)
					} else {
						total += t.countQ(n.left.lower, c, dim-1)
					}
				}
				total += t.countQ(n.equal, c, dim-1)
			}
			n = n.right
		} else {
			n = n.left
		}
	}
	return total
}

// ContainsQ reports whether p is stored in the tree.
func (t *Tree) ContainsQ(p point.Point) bool {
	return t.containsQ(t.root, p, t.dim-1)
}

func (t *Tree) containsQ(n *node, p point.Point, dim int) bool {
	for n != nil {
		if n.isLeaf {
			return n.leaf.ContainsQ(p)
		}
		switch {
		case p[dim] < n.key:
			n = n.left
		case p[dim] > n.key:
			n = n.right
		default:
			if dim == 0 {
				return n.own > 0
			}
			n = n.equal
			dim--
		}
	}
	return false
}

// Collect returns one copy per stored point with every coordinate
// non-strictly greater than or equal to c.
func (t *Tree) Collect(c point.Point) []point.Point {
	var out []point.Point
	t.collect(t.root, c, t.dim-1, &out)
	return out
}

func (t *Tree) collect(n *node, c point.Point, dim int, out *[]point.Point) {
	if n == nil {
		return
	}
	if n.isLeaf {
		*out = append(*out, n.leaf.Collect(c)...)
		return
	}
	if n.key >= c[dim] {
		t.collect(n.left, c, dim, out)
		if dim == 0 {
			if n.own > 0 {
				*out = append(*out, n.rep.Clone())
			}
		} else {
			t.collect(n.equal, c, dim-1, out)
		}
	}
	t.collect(n.right, c, dim, out)
}

// DominatedCollect returns one copy per stored point with every
// coordinate non-strictly less than or equal to c.
func (t *Tree) DominatedCollect(c point.Point) []point.Point {
	var out []point.Point
	t.dominatedCollect(t.root, c, t.dim-1, &out)
	return out
}

func (t *Tree) dominatedCollect(n *node, c point.Point, dim int, out *[]point.Point) {
	if n == nil {
		return
	}
	if n.isLeaf {
		*out = append(*out, n.leaf.DominatedCollect(c)...)
		return
	}
	if n.key <= c[dim] {
		t.dominatedCollect(n.right, c, dim, out)
		if dim == 0 {
			if n.own > 0 {
				*out = append(*out, n.rep.Clone())
			}
		} else {
			t.dominatedCollect(n.equal, c, dim-1, out)
		}
	}
	t.dominatedCollect(n.left, c, dim, out)
}

// RangeCollect returns one copy per stored point p with
// min[k] <= p[k] < max[k] for every coordinate k.
func (t *Tree) RangeCollect(min, max point.Point) []point.Point {
	var out []point.Point
	t.rangeCollect(t.root, min, max, t.dim-1, &out)
	return out
}

func (t *Tree) rangeCollect(n *node, min, max point.Point, dim int, out *[]point.Point) {
	if n == nil {
		return
	}
	if n.isLeaf {
		*out = append(*out, n.leaf.RangeCollect(min, max)...)
		return
	}
	if n.key >= min[dim] {
		t.rangeCollect(n.left, min, max, dim, out)
	}
	if n.key >= min[dim] && n.key < max[dim] {
		if dim == 0 {
			if n.own > 0 {
				*out = append(*out, n.rep.Clone())
			}
		} else {
			t.rangeCollect(n.equal, min, max, dim-1, out)
		}
	}
	if n.key < max[dim] {
		t.rangeCollect(n.right, min, max, dim, out)
	}
}

// ---- mutation ----

// Insert adds p to the tree. p must not already be present.
func (t *Tree) Insert(p point.Point) {
	errutil.Assert(len(p) == t.dim, "ort: point dimension mismatch")
	t.root = t.insert(t.root, p, t.dim-1)
}

func (t *Tree) insert(n *node, p point.Point, dim int) *node {
	if n == nil {
		leaf := ora.New(dim + 1)
		leaf.Insert(p, 1)
		return &node{isLeaf: true, leaf: leaf, weight: 1}
	}
	if n.isLeaf {
		n.leaf.Insert(p, 1)
		n.weight++
		if n.leaf.Occupancy() > t.cutoff(dim) {
			pts := n.leaf.Teleport()
			return t.buildBalanced(pts, dim)
		}
		return n
	}

	if dim > 0 {
		n.lower = t.insert(n.lower, p, dim-1)
	}

	switch {
	case p[dim] < n.key:
		n.left = t.insert(n.left, p, dim)
	case p[dim] > n.key:
		n.right = t.insert(n.right, p, dim)
	default:
		if dim == 0 {
			n.own++
		} else {
			n.equal = t.insert(n.equal, p, dim-1)
		}
	}
	n.weight++

	return t.maybeRebuild(n, dim)
}

// Delete removes p from the tree. p must be present.
func (t *Tree) Delete(p point.Point) {
	errutil.Assert(len(p) == t.dim, "ort: point dimension mismatch")
	t.root = t.delete(t.root, p, t.dim-1)
}

func (t *Tree) delete(n *node, p point.Point, dim int) *node {
	errutil.Assert(n != nil, "ort: deleting from empty subtree")

	if n.isLeaf {
		if n.leaf.Delete(p) {
			return nil
		}
		n.weight--
		return n
	}

	if dim > 0 {
		n.lower = t.delete(n.lower, p, dim-1)
	}

	switch {
	case p[dim] < n.key:
		n.left = t.delete(n.left, p, dim)
	case p[dim] > n.key:
		n.right = t.delete(n.right, p, dim)
	default:
		if dim == 0 {
			n.own--
		} else {
			n.equal = t.delete(n.equal, p, dim-1)
		}
	}
	n.weight--

	if n.weight == 0 {
		return nil
	}
	return t.maybeRebuild(n, dim)
}

// maybeRebuild flattens and rebalances n if it has dropped to/under the
// dimension's cutoff, or if a weight-balance violation (spec.md §4.3) is
// detected on either child.
func (t *Tree) maybeRebuild(n *node, dim int) *node {
	if n.weight <= t.cutoff(dim) || t.violates(n.left, n.weight) || t.violates(n.right, n.weight) {
		pts := t.teleport(n, dim)
		return t.buildBalanced(pts, dim)
	}
	return n
}

func (t *Tree) violates(c *node, parentW int) bool {
	if c == nil {
		return false
	}
	return float64(1+nodeWeight(c)) >= t.beta*float64(1+parentW)
}

// teleport flattens a subtree's points (ignoring the redundant lower
// cascade) into a flat weighted-point buffer for rebuilding.
func (t *Tree) teleport(n *node, dim int) []ora.WeightedPoint {
	var out []ora.WeightedPoint
	t.teleportInto(n, &out)
	return out
}

func (t *Tree) teleportInto(n *node, out *[]ora.WeightedPoint) {
	if n == nil {
		return
	}
	if n.isLeaf {
		*out = append(*out, n.leaf.Teleport()...)
		return
	}
	t.teleportInto(n.left, out)
	if n.own > 0 {
		*out = append(*out, ora.WeightedPoint{W: n.own, P: n.rep})
	}
	t.teleportInto(n.equal, out)
	t.teleportInto(n.right, out)
}

// buildBalanced picks the weighted median on the current dimension and
// recursively partitions, following the "accumulated-prefix array
// available" branch of spec.md §4.3's rebuild method: the buffer is
// radix-sorted on the current dimension (github.com/dgryski/go-radixsort)
// and the median is found by binary search over the prefix sums, rather
// than the unsorted median-of-three quickselect branch — teleport always
// hands buildBalanced a freshly-flattened, not-yet-sorted buffer, so the
// sort step is paid once per rebuild and the weighted median search after
// it is then a pure binary search.
func (t *Tree) buildBalanced(pts []ora.WeightedPoint, dim int) *node {
	if len(pts) <= t.cutoff(dim) {
		leaf := ora.Build(dim+1, pts)
		w := 0
		for _, p := range pts {
			w += p.W
		}
		return &node{isLeaf: true, leaf: leaf, weight: w}
	}

	radixSortByDim(pts, dim)

	total := 0
	prefix := make([]int, len(pts)+1)
	for i, p := range pts {
		total += p.W
		prefix[i+1] = total
	}
	mid := total / 2

	// Binary search the weighted median, then widen to the full
	// equal-key tie band.
	lo, hi := 0, len(pts)
	for lo < hi {
		m := (lo + hi) / 2
		if prefix[m+1] <= mid {
			lo = m + 1
		} else {
			hi = m
		}
	}
	if lo == len(pts) {
		lo = len(pts) - 1
	}
	key := pts[lo].P[dim]
	lo2, hi2 := lo, lo
	for lo2 > 0 && pts[lo2-1].P[dim] == key {
		lo2--
	}
	for hi2+1 < len(pts) && pts[hi2+1].P[dim] == key {
		hi2++
	}

	left := pts[:lo2]
	equalPts := pts[lo2 : hi2+1]
	right := pts[hi2+1:]

	repIdx := lo2
	if hi2 > lo2 {
		repIdx = lo2 + t.rng.Intn(hi2-lo2+1)
	}
	rep := pts[repIdx].P

	root := &node{key: key, rep: rep, weight: total}
	if dim == 0 {
		root.own = total - sumWeights(left) - sumWeights(right)
	} else {
		root.equal = t.buildBalanced(cloneWP(equalPts), dim-1)
		root.lower = t.buildBalanced(cloneWP(pts), dim-1)
	}
	if len(left) > 0 {
		root.left = t.buildBalanced(left, dim)
	}
	if len(right) > 0 {
		root.right = t.buildBalanced(right, dim)
	}
	return root
}

func sumWeights(pts []ora.WeightedPoint) int {
	s := 0
	for _, p := range pts {
		s += p.W
	}
	return s
}

func cloneWP(pts []ora.WeightedPoint) []ora.WeightedPoint {
	out := make([]ora.WeightedPoint, len(pts))
	copy(out, pts)
	return out
}

// radixSortByDim sorts pts in place by their coordinate at dim, using an
// unsigned-integer radix sort over a (key, original-index) encoding so
// that equal-key runs end up contiguous and easy to widen afterward.
func radixSortByDim(pts []ora.WeightedPoint, dim int) {
	n := len(pts)
	if n < 2 {
		return
	}
	keys := make([]uint64, n)
	for i, wp := range pts {
		k := uint64(uint32(wp.P[dim] + rangeBias))
		keys[i] = (k << 32) | uint64(uint32(i))
	}
	radixsort.Uint64s(keys)

	sorted := make([]ora.WeightedPoint, n)
	for i, k := range keys {
		idx := uint32(k & 0xffffffff)
		sorted[i] = pts[idx]
	}
	copy(pts, sorted)
}
