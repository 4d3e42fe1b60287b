package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-classics/internal/config"
	"github.com/vovakirdan/tui-classics/internal/core"
)

// Size is an asteroid size class.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// String returns the size name.
func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return "unknown"
	}
}

// class returns the config entry for a size.
func class(f config.AsteroidsField, s Size) config.AsteroidClass {
	switch s {
	case SizeSmall:
		return f.Small
	case SizeMedium:
		return f.Medium
	default:
		return f.Large
	}
}

// Ship is the player's triangle. Rotation is in degrees, 90 pointing up.
type Ship struct {
	Pos      core.Vec
	Vel      core.Vec
	Rotation float64
	Scale    float64
	Alive    bool

	cooldown     float64 // Seconds until the next shot
	invulnerable float64 // Seconds of remaining grace
}

// NewShip places a ship at pos, pointing up.
func NewShip(pos core.Vec, scale float64) *Ship {
	return &Ship{Pos: pos, Rotation: 90, Scale: scale, Alive: true}
}

// Points returns the nose and the two fins in world space.
func (s *Ship) Points() []core.Vec {
	nose := s.Pos.Add(core.V(s.Scale, 0))
	right := s.Pos.Add(core.V(-s.Scale, s.Scale*0.8))
	left := s.Pos.Add(core.V(-s.Scale, -s.Scale*0.8))
	return []core.Vec{
		core.RotateAround(nose, s.Pos, s.Rotation),
		core.RotateAround(right, s.Pos, s.Rotation),
		core.RotateAround(left, s.Pos, s.Rotation),
	}
}

// Nose returns the tip of the ship, where bullets spawn.
func (s *Ship) Nose() core.Vec {
	return s.Points()[0]
}

// Rotate turns the ship by degrees, positive counter-clockwise.
func (s *Ship) Rotate(degrees float64) {
	s.Rotation = math.Mod(s.Rotation+degrees+360, 360)
}

// Thrust adds an impulse along the ship's heading.
func (s *Ship) Thrust(amount float64) {
	s.Vel = s.Vel.Add(core.FromAngle(s.Rotation, amount))
}

// Invulnerable reports whether the ship is in its respawn grace period.
func (s *Ship) Invulnerable() bool {
	return s.invulnerable > 0
}

// update applies drag, the speed limit, movement and wrap.
func (s *Ship) update(dt float64, cfg config.AsteroidsShip, w, h float64) {
	if s.cooldown > 0 {
		s.cooldown -= dt
	}
	if s.invulnerable > 0 {
		s.invulnerable -= dt
	}

	s.Vel = s.Vel.Scale(math.Max(0, 1-cfg.Drag*dt))
	if speed := s.Vel.Len(); cfg.MaxSpeed > 0 && speed > cfg.MaxSpeed {
		s.Vel = s.Vel.Scale(cfg.MaxSpeed / speed)
	}

	s.Pos = s.Pos.Add(s.Vel.Scale(dt))
	s.Pos = core.V(core.Wrap(s.Pos.X, w), core.Wrap(s.Pos.Y, h))
}

// Asteroid is a rock drifting in a straight line.
type Asteroid struct {
	Pos      core.Vec
	Dir      core.Vec // Unit heading; speed comes from the size class
	Rotation float64
	Size     Size
	Scale    float64
	Alive    bool
}

// Points returns the nine-vertex outline in world space.
func (a *Asteroid) Points() []core.Vec {
	s := a.Scale
	offsets := [...]core.Vec{
		{X: -s / 2, Y: -s},
		{X: s / 2, Y: -s},
		{X: s, Y: 0},
		{X: s / 2, Y: s / 2},
		{X: s / 2, Y: s},
		{X: 0, Y: s},
		{X: -s / 2, Y: s / 2},
		{X: -s, Y: s / 4},
		{X: -s, Y: 0},
	}
	pts := make([]core.Vec, len(offsets))
	for i, o := range offsets {
		pts[i] = core.RotateAround(a.Pos.Add(o), a.Pos, a.Rotation)
	}
	return pts
}

// Contains reports whether p lies inside the outline.
func (a *Asteroid) Contains(p core.Vec) bool {
	return core.PointInPolygon(p, a.Points())
}

// update moves the asteroid. It re-enters from the opposite edge once
// fully outside the world.
func (a *Asteroid) update(dt, speed, w, h float64) {
	a.Pos = a.Pos.Add(a.Dir.Scale(speed * dt))
	a.Pos = core.V(wrapPadded(a.Pos.X, w, a.Scale), wrapPadded(a.Pos.Y, h, a.Scale))
}

// Bullet is a shot fired from the ship's nose.
type Bullet struct {
	Pos   core.Vec
	Vel   core.Vec
	Life  float64 // Seconds left
	Alive bool
}

// update moves the bullet and expires it. Without wrap a bullet leaving
// the world dies.
func (b *Bullet) update(dt float64, wrap bool, w, h float64) {
	b.Life -= dt
	if b.Life <= 0 {
		b.Alive = false
		return
	}

	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	if wrap {
		b.Pos = core.V(core.Wrap(b.Pos.X, w), core.Wrap(b.Pos.Y, h))
		return
	}
	if b.Pos.X < 0 || b.Pos.X >= w || b.Pos.Y < 0 || b.Pos.Y >= h {
		b.Alive = false
	}
}

// wrapPadded wraps v over [-pad, max+pad).
func wrapPadded(v, max, pad float64) float64 {
	return core.Wrap(v+pad, max+2*pad) - pad
}
