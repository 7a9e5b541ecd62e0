package pointhash

import (
	"testing"

	"mlcs/point"

	"github.com/stretchr/testify/assert"
)

func TestInsertContainsDelete(t *testing.T) {
	s := New(2)
	pts := []point.Point{{1, 1}, {2, 3}, {5, 5}, {0, 9}}
	for _, p := range pts {
		s.Insert(p)
	}
	assert.Equal(t, len(pts), s.Len())
	for _, p := range pts {
		assert.True(t, s.Contains(p))
	}

	s.Delete(pts[1])
	assert.False(t, s.Contains(pts[1]))
	assert.True(t, s.Contains(pts[0]))
	assert.True(t, s.Contains(pts[2]))
	assert.True(t, s.Contains(pts[3]))
}

func TestGrowsPastInitialTable(t *testing.T) {
	s := New(1)
	for i := 0; i < 200; i++ {
		s.Insert(point.Point{i})
	}
	assert.Equal(t, 200, s.Len())
	for i := 0; i < 200; i++ {
		assert.True(t, s.Contains(point.Point{i}))
	}
}
