// pkg/arena/map.go
package arena

// Map: статическая карта матча с границами, стенами и сайтами.
// После создания только читается.
type Map struct {
	Width  float64
	Height float64
	Walls  []Rect
	Sites  []Site
}

func NewMap(width, height float64, walls []Rect, sites []Site) *Map {
	if width <= 0 || height <= 0 {
		panic("map size must be positive")
	}
	return &Map{
		Width:  width,
		Height: height,
		Walls:  append([]Rect(nil), walls...),
		Sites:  append([]Site(nil), sites...),
	}
}

// InBounds проверяет, что точка внутри [0,W]×[0,H]
func (m *Map) InBounds(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= m.Width && y <= m.Height
}

// Clamp прижимает точку к границам карты
func (m *Map) Clamp(x, y float64) (float64, float64) {
	return clamp(x, 0, m.Width), clamp(y, 0, m.Height)
}

// InWall возвращает true, если точка лежит внутри любой стены
func (m *Map) InWall(x, y float64) bool {
	for _, w := range m.Walls {
		if w.Contains(x, y) {
			return true
		}
	}
	return false
}

// SiteAt возвращает первый сайт, содержащий точку
func (m *Map) SiteAt(x, y float64) (*Site, bool) {
	for i := range m.Sites {
		if m.Sites[i].Contains(x, y) {
			return &m.Sites[i], true
		}
	}
	return nil, false
}

// SegmentClear проверяет отрезок на пересечение со стенами, проверяя
// samples равномерно расположенных точек (начало отрезка не проверяется).
func (m *Map) SegmentClear(ax, ay, bx, by float64, samples int) bool {
	if samples < 1 {
		samples = 1
	}
	for i := 1; i <= samples; i++ {
		t := float64(i) / float64(samples)
		if m.InWall(lerp(ax, bx, t), lerp(ay, by, t)) {
			return false
		}
	}
	return true
}
