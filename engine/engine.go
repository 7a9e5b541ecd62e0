// Package engine implements the incremental Multiple Longest Common
// Subsequence data structure: a stack of Pareto fronts (one ORT per
// rank) kept consistent as each of d strings is edited by Append or Pop.
//
// Ported from original_source/src/mlcs.c. The manual pointHash "CleanM"
// register that mlcs.c's uncover() feeds is pure C memory-lifetime
// bookkeeping (its own comment calls it "Frees all the points
// involved") with no bearing on the algorithm's result, so it has no Go
// counterpart here; the local "H" register inside the same function is
// a real once-per-slice-point dedup and is kept, backed by
// internal/pointhash.
package engine

import (
	"fmt"
	"log"

	"github.com/mitchellh/colorstring"

	"mlcs/dynstring"
	"mlcs/internal/errutil"
	"mlcs/internal/pointhash"
	"mlcs/ort"
	"mlcs/point"
)

// Engine holds dim dynamically-edited strings and the Pareto-front stack
// of their running MLCS.
type Engine struct {
	dim    int
	zeros  int
	s      []*dynstring.String
	lambda int
	pf     []*ort.Tree
}

// New allocates an engine over dim empty strings drawn from an alphabet
// of size sigma. dim must be at least 2.
func New(dim, sigma int) *Engine {
	errutil.Assert(dim > 1, "engine: MLCS requires at least two strings")

	e := &Engine{dim: dim, zeros: dim}
	e.s = make([]*dynstring.String, dim)
	for i := range e.s {
		e.s[i] = dynstring.New(sigma)
	}
	e.pf = make([]*ort.Tree, 1, 4)
	e.pf[0] = ort.New(dim)
	e.pf[0].Insert(point.Sentinel(dim))
	return e
}

// Dim returns the number of strings.
func (e *Engine) Dim() int { return e.dim }

// MLCSSize returns the length of the current MLCS.
func (e *Engine) MLCSSize() int { return e.lambda }

// PullString returns string t for read access (position queries, length,
// contents) — never mutate it directly; use Append/Pop.
func (e *Engine) PullString(t int) *dynstring.String { return e.s[t] }

func (e *Engine) ensurePF(idx int) {
	for len(e.pf) <= idx {
		e.pf = append(e.pf, nil)
	}
	if e.pf[idx] == nil {
		e.pf[idx] = ort.New(e.dim)
	}
}

// Append extends string j with letter c, updating every Pareto front
// that can grow a step because of the new character.
func (e *Engine) Append(j int, c byte) {
	S := e.s[j]
	if S.Size() == 0 {
		e.zeros--
	}

	if e.zeros == 0 {
		dim := e.dim
		e.ensurePF(e.lambda + 1)

		z := point.New(dim)
		f := point.New(dim)
		for i := 0; i < dim; i++ {
			z[i] = point.Before
			f[i] = e.s[i].Last(c)
		}
		z[j] = e.s[j].Last(c)
		f[j] = S.End()

		for r := 0; r <= e.lambda; r++ {
			T := e.pf[r].RangeCollect(z, f)
			if len(T) == 0 {
				continue
			}

			tempP := ort.New(dim)
			for _, t := range T {
				p := point.New(dim)
				exclude := false
				for i := 0; !exclude && i < dim; i++ {
					p[i] = e.s[i].Ceil(c, t[i]+1)
					if i == j {
						p[i] = S.End()
						exclude = t[i] == p[i]
					} else {
						exclude = p[i] == point.None
					}
				}
				if exclude {
					continue
				}

				bp := p.BumpedBy(1)
				if e.pf[r+1].CountQ(bp) > 0 {
					continue
				}
				if tempP.CountQ(bp) > 0 {
					continue
				}
				tempP.Insert(p)
			}

			for _, t := range tempP.Collect(z) {
				bt := t.BumpedBy(1)
				if tempP.CountQ(bt) > 1 {
					continue
				}
				e.pf[r+1].Insert(t)
			}
		}

		if e.pf[e.lambda+1].Weight() > 0 {
			e.lambda++
		}
	}

	S.Append(c)

	if errutil.Debug() {
		e.CheckMLCS()
	}
}

// Pop removes the first letter of string j, retracting every Pareto
// front it had supported.
func (e *Engine) Pop(j int) {
	S := e.s[j]
	if S.Size() == 1 {
		e.zeros++
	}

	if e.lambda > 0 {
		dim := e.dim

		Q := new(pointFIFO)
		M := new(pointFIFO)

		c := S.FirstLetter()
		p := point.New(dim)
		valid := true
		for i := 0; valid && i < dim; i++ {
			p[i] = e.s[i].Ceil(c, 0)
			valid = p[i] >= 0
		}
		if valid {
			Q.push(p)
			Q.mark()
		}
		r := 1

		for !Q.empty() {
			if Q.markingTrue() {
				cleanCovered(M, e.pf[r])
				r++
				Q.mark()
			}

			cur := Q.top()
			cc := S.Letter(cur[j])

			plI := point.New(dim)
			pprev := point.New(dim)
			for i := 0; i < dim; i++ {
				plI[i] = e.s[i].Last(cc)
				pprev[i] = e.s[i].Floor(cc, cur[i]-1)
			}
			e.uncover(Q, M, cc, r, j, pprev, cur, plI)

			var T []point.Point
			if r+1 < len(e.pf) && e.pf[r+1] != nil {
				T = e.pf[r+1].Collect(cur)
			}

			e.pf[r].Delete(cur)

			for _, t := range T {
				if e.pf[r].CountQ(t) == 0 {
					Q.push(t)
					M.push(t)
					e.pf[r].Insert(t)
				}
			}

			Q.popFront()
		}
		cleanCovered(M, e.pf[r])

		if e.pf[e.lambda].Weight() == 0 {
			e.lambda--
		}
	}

	S.PopFront()

	if errutil.Debug() {
		e.CheckMLCS()
	}
}

// uncover reinstates points that were only hidden behind the point being
// removed — mirrors mlcs.c's uncover(), with baseTop = the point under
// removal and baseBot = its per-letter last-occurrence point.
func (e *Engine) uncover(Q, M *pointFIFO, c byte, r, j int, pprev, baseTop, baseBot point.Point) {
	dim := e.dim

	if r == 1 {
		if baseBot[j] > baseTop[j] {
			p := baseTop.Clone()
			p[j] = e.s[j].Ceil(c, p[j]+1)

			bp := p.BumpedBy(1)
			insertQ := e.pf[1].CountQ(bp) == 1

			if insertQ {
				e.pf[1].Insert(p)
				M.push(p)
			}
		}
		return
	}

	H := pointhash.New(dim)
	for i := 0; i < dim; i++ {
		h := baseBot[i]
		baseBot[i] = baseTop[i]

		slice := e.pf[r-1].RangeCollect(pprev, baseBot)
		for _, s := range slice {
			if H.Contains(s) {
				continue
			}
			H.Insert(s)

			p := point.New(dim)
			for l := 0; l < dim; l++ {
				p[l] = e.s[l].Ceil(c, s[l]+1)
			}

			allEqual := true
			for l := 0; allEqual && l < dim; l++ {
				allEqual = baseTop[l] == p[l]
			}
			insertQ := !allEqual

			bp := p.BumpedBy(1)
			insertQ = insertQ && e.pf[r].CountQ(bp) == 1

			if insertQ {
				e.pf[r].Insert(p)
				M.push(p)
			}
		}
		baseBot[i] = h
	}
}

// cleanCovered re-verifies minimality of every point uncover queued in M,
// deleting the ones a later insert made non-minimal.
func cleanCovered(M *pointFIFO, t *ort.Tree) {
	for !M.empty() {
		p := M.top()
		bp := p.BumpedBy(1)
		if t.CountQ(bp) > 1 {
			t.Delete(p)
		}
		M.popFront()
	}
}

// pointFIFO is a grow-only FIFO of points with a single mark, used to
// detect rank-frontier transitions while walking a pop(). Unlike the
// ring-buffered queue of original_source/src/pointQueue.c, this is
// discarded after a single Pop call, so a plain growing slice with an
// output cursor is the idiomatic Go shape — no shrink-on-drain dance is
// worth its complexity for scratch space that never outlives one call.
type pointFIFO struct {
	items  []point.Point
	out    int
	markAt int
}

func (q *pointFIFO) push(p point.Point) { q.items = append(q.items, p) }
func (q *pointFIFO) empty() bool        { return q.out == len(q.items) }
func (q *pointFIFO) mark()              { q.markAt = len(q.items) }
func (q *pointFIFO) markingTrue() bool  { return q.markAt == q.out }
func (q *pointFIFO) top() point.Point   { return q.items[q.out] }
func (q *pointFIFO) popFront()          { q.out++ }

// PrintMLCS dumps every Pareto front to the log, colorized by rank, for
// interactive debugging — mirrors mlcs.c's printMLCS.
func (e *Engine) PrintMLCS() {
	z := point.Sentinel(e.dim)
	for i := 0; i <= e.lambda; i++ {
		pts := e.pf[i].Collect(z)
		line := colorstring.Color(fmt.Sprintf("[cyan]@ %d[reset] : ", i))
		for _, p := range pts {
			line += fmt.Sprintf("(%v) ", []int(p))
		}
		log.Println(line)
	}
}

// CheckMLCS asserts, front by front, that every stored point is both
// justified (dominated by something in the previous front) and minimal
// (no other point in the same front also strictly dominates it once
// nudged past its own coordinates). Panics via errutil on violation;
// only meaningful when MLCS_DEBUG=1.
func (e *Engine) CheckMLCS() {
	z := point.Sentinel(e.dim)
	for i := 1; i <= e.lambda; i++ {
		T := e.pf[i].Collect(z)
		errutil.BugOn(len(T) == 0, "empty Pareto front at rank %d", i)
		for _, t := range T {
			errutil.BugOn(e.pf[i-1].CountQ(t) <= 0, "unjustified point %v in rank %d", t, i)
			bt := t.BumpedBy(1)
			errutil.BugOnNotEq(1, e.pf[i].CountQ(bt))
		}
	}
}
