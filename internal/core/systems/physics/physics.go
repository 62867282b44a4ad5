package physics

// Lightweight 2D geometry shared by the arena engine.
// Boxes are axis aligned and anchored at their top-left corner.

// Vec2 is a 2D point or displacement.
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{X: -v.X, Y: -v.Y} }

// Size is a width/height pair.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Area returns Width*Height.
func (s Size) Area() float64 { return s.Width * s.Height }

// Rect is an axis-aligned box spanning [Min, Max).
type Rect struct {
	Min Vec2 `json:"min" yaml:"min"`
	Max Vec2 `json:"max" yaml:"max"`
}

// RectAt builds the box of the given size anchored at pos.
func RectAt(pos Vec2, size Size) Rect {
	return Rect{Min: pos, Max: Vec2{X: pos.X + size.Width, Y: pos.Y + size.Height}}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Empty reports whether the rect has no interior.
func (r Rect) Empty() bool { return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y }

// Overlaps reports strict intersection. Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X &&
		r.Max.X > o.Min.X &&
		r.Min.Y < o.Max.Y &&
		r.Max.Y > o.Min.Y
}

// InsideX reports whether the horizontal span of r lies within [0, width].
func (r Rect) InsideX(width float64) bool { return r.Min.X >= 0 && r.Max.X <= width }

// InsideY reports whether the vertical span of r lies within [0, height].
func (r Rect) InsideY(height float64) bool { return r.Min.Y >= 0 && r.Max.Y <= height }
