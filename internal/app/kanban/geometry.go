package kanban

import "math"

// Point is a pointer position in board coordinates, as reported by the
// client on every drag-move tick.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned droppable region.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Droppable is a region the dragged card may land on: either a card
// (decimal task id) or a column (column name).
type Droppable struct {
	ID   string `json:"id"`
	Rect Rect   `json:"rect"`
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

func (r Rect) Area() float64 {
	return r.Width * r.Height
}

func (r Rect) corners() [4]Point {
	return [4]Point{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X, r.Y + r.Height},
		{r.X + r.Width, r.Y + r.Height},
	}
}

// nearestCornerDistance is the distance from p to the closest corner of r.
func nearestCornerDistance(p Point, r Rect) float64 {
	best := math.Inf(1)
	for _, c := range r.corners() {
		d := math.Hypot(p.X-c.X, p.Y-c.Y)
		if d < best {
			best = d
		}
	}
	return best
}
