package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMap() *Map {
	return NewMap(1000, 600,
		[]Rect{{X: 400, Y: 0, W: 40, H: 400}},
		[]Site{{Name: "A", Rect: Rect{X: 100, Y: 100, W: 100, H: 80}}},
	)
}

func TestRectContainsIsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(30, 30))
	assert.False(t, r.Contains(30.01, 20))

	cx, cy := r.Center()
	assert.Equal(t, 20.0, cx)
	assert.Equal(t, 20.0, cy)
}

func TestNewMapRejectsEmptySize(t *testing.T) {
	assert.Panics(t, func() { NewMap(0, 100, nil, nil) })
}

func TestMapBoundsAndClamp(t *testing.T) {
	m := testMap()
	assert.True(t, m.InBounds(1000, 600))
	assert.False(t, m.InBounds(-1, 10))

	x, y := m.Clamp(-5, 700)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 600.0, y)
}

func TestSiteAt(t *testing.T) {
	m := testMap()
	site, ok := m.SiteAt(150, 150)
	require.True(t, ok)
	assert.Equal(t, "A", site.Name)

	_, ok = m.SiteAt(500, 500)
	assert.False(t, ok)

	again, _ := m.SiteAt(100, 100)
	assert.Same(t, site, again, "points to the map's own site")
}

func TestSegmentClear(t *testing.T) {
	m := testMap()
	assert.False(t, m.SegmentClear(100, 200, 700, 200, 20), "wall crosses the segment")
	assert.True(t, m.SegmentClear(100, 500, 700, 500, 20), "segment passes below the wall")
	assert.True(t, m.InWall(420, 100))
}
