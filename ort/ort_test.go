package ort

import (
	"math/rand"
	"testing"

	"mlcs/point"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertContainsDeleteRoundTrip(t *testing.T) {
	tr := NewSeeded(2, 42)
	pts := []point.Point{
		{1, 1}, {2, 5}, {3, 2}, {4, 8}, {0, 9}, {7, 3}, {6, 6},
	}
	for _, p := range pts {
		tr.Insert(p)
	}
	require.Equal(t, len(pts), tr.Weight())
	for _, p := range pts {
		assert.True(t, tr.ContainsQ(p), "expected %v present", p)
	}

	for _, p := range pts {
		tr.Delete(p)
		assert.False(t, tr.ContainsQ(p))
	}
	assert.Equal(t, 0, tr.Weight())
}

func TestCountQMatchesCollectCardinality(t *testing.T) {
	tr := NewSeeded(3, 7)
	rng := rand.New(rand.NewSource(1))
	var pts []point.Point
	for i := 0; i < 60; i++ {
		p := point.Point{rng.Intn(20), rng.Intn(20), rng.Intn(20)}
		if tr.ContainsQ(p) {
			continue
		}
		tr.Insert(p)
		pts = append(pts, p)
	}

	for i := 0; i < 10; i++ {
		c := point.Point{rng.Intn(20), rng.Intn(20), rng.Intn(20)}
		want := 0
		for _, p := range pts {
			if p.StrictlyDominates(c) {
				want++
			}
		}
		assert.Equal(t, want, tr.CountQ(c), "mismatch at query %v", c)
	}
}

func TestRebuildCrossesCutoffBoundary(t *testing.T) {
	tr := NewSeeded(2, 3)
	n := tr.cutoff(1)*3 + 5
	for i := 0; i < n; i++ {
		tr.Insert(point.Point{i, n - i})
	}
	require.Equal(t, n, tr.Weight())
	for i := 0; i < n; i++ {
		assert.True(t, tr.ContainsQ(point.Point{i, n - i}))
	}
	// Delete half, forcing rebuild-on-shrink, verify survivors remain.
	for i := 0; i < n/2; i++ {
		tr.Delete(point.Point{i, n - i})
	}
	for i := n / 2; i < n; i++ {
		assert.True(t, tr.ContainsQ(point.Point{i, n - i}))
	}
}

func TestDominatedCollectAndRangeCollect(t *testing.T) {
	tr := NewSeeded(2, 99)
	tr.Insert(point.Point{1, 1})
	tr.Insert(point.Point{2, 2})
	tr.Insert(point.Point{5, 5})

	dom := tr.DominatedCollect(point.Point{2, 2})
	assert.Len(t, dom, 2)

	rg := tr.RangeCollect(point.Point{0, 0}, point.Point{3, 3})
	assert.Len(t, rg, 2)
}
