package ora

import (
	"testing"

	"mlcs/point"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertCoalescesDuplicates(t *testing.T) {
	a := New(2)
	a.Insert(point.Point{1, 2}, 1)
	a.Insert(point.Point{1, 2}, 3)
	require.Equal(t, 1, a.Occupancy())
	assert.Equal(t, 4, a.Weight())
}

func TestDeleteReportsEmptied(t *testing.T) {
	a := New(2)
	a.Insert(point.Point{0, 0}, 1)
	emptied := a.Delete(point.Point{0, 0})
	assert.True(t, emptied)
	assert.Equal(t, 0, a.Weight())
}

func TestCountQStrictDominance(t *testing.T) {
	a := New(2)
	a.Insert(point.Point{1, 1}, 1)
	a.Insert(point.Point{3, 3}, 1)
	assert.Equal(t, 1, a.CountQ(point.Point{2, 2}))
	assert.Equal(t, 2, a.CountQ(point.Point{4, 4}))
	assert.Equal(t, 0, a.CountQ(point.Point{1, 1}))
}

func TestRangeCollectSemiOpen(t *testing.T) {
	a := New(1)
	a.Insert(point.Point{0}, 1)
	a.Insert(point.Point{5}, 1)
	a.Insert(point.Point{9}, 1)
	got := a.RangeCollect(point.Point{0}, point.Point{9})
	assert.Len(t, got, 2)
}

func TestTeleportSortsByLastDim(t *testing.T) {
	a := New(2)
	a.Insert(point.Point{9, 3}, 1)
	a.Insert(point.Point{1, 1}, 1)
	a.Insert(point.Point{5, 2}, 1)
	out := a.Teleport()
	require.Len(t, out, 3)
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1].P[1], out[i].P[1])
	}
	assert.Equal(t, 0, a.Weight())
	assert.Equal(t, 0, a.Occupancy())
}
