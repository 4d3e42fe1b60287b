package core

import "math"

// Vec is a point or direction in continuous world space.
// X grows to the right and Y grows downward, like screen rows.
type Vec struct {
	X, Y float64
}

// V is a convenience constructor for Vec.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromAngle returns a vector of the given length pointing at angle
// degrees, where 0 points right and 90 points up the screen.
func FromAngle(degrees, length float64) Vec {
	rad := degrees * math.Pi / 180
	return Vec{X: math.Cos(rad) * length, Y: -math.Sin(rad) * length}
}

// RotateAround rotates p around origin by the given angle in degrees,
// counter-clockwise as seen on screen.
func RotateAround(p, origin Vec, degrees float64) Vec {
	rad := degrees * math.Pi / 180
	s, c := math.Sin(rad), math.Cos(rad)
	d := p.Sub(origin)
	// Screen Y points down, so a visual counter-clockwise turn negates s.
	return Vec{
		X: origin.X + d.X*c + d.Y*s,
		Y: origin.Y - d.X*s + d.Y*c,
	}
}

// PointInPolygon reports whether p lies inside the polygon using the
// even-odd ray casting rule. Polygons with fewer than three vertices
// contain nothing.
func PointInPolygon(p Vec, poly []Vec) bool {
	n := len(poly)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < xCross {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Wrap folds v into [0, max) so objects leaving one edge re-enter at the other.
func Wrap(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	return v
}
