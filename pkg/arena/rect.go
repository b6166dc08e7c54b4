// pkg/arena/rect.go
package arena

// Rect: осевой прямоугольник в мировых координатах
type Rect struct {
	X, Y float64
	W, H float64
}

// Contains проверяет попадание точки, границы включительно
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && y >= r.Y && x <= r.X+r.W && y <= r.Y+r.H
}

// Center возвращает центр прямоугольника
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Site: именованная зона установки спайка
type Site struct {
	Name string
	Rect
}
