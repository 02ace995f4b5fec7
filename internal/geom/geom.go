// Package geom provides the 2D vector math and circle-collision helpers
// shared by entities, skills and effects.
package geom

import "math"

// Vec2 is a plain 2D vector. Methods return new values, nothing mutates.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in v's direction, or the zero vector
// when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec2) float64 { return a.Sub(b).Len() }

// AngleDiff returns the absolute wrap-aware difference between two angles,
// always in [0, pi].
func AngleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return math.Abs(d)
}

// AngleInSweep reports whether angle lies inside the arc [start,
// start+sweep) extending counter-clockwise. The end of the sweep is
// exclusive.
func AngleInSweep(angle, start, sweep float64) bool {
	rel := math.Mod(angle-start, 2*math.Pi)
	if rel < 0 {
		rel += 2 * math.Pi
	}
	return rel < sweep
}

// Body is anything with a position and a collision circle. Entities,
// projectiles and summons all satisfy it.
type Body interface {
	Position() Vec2
	SetPosition(Vec2)
	CollisionRadius() float64
}

// Overlaps reports whether the collision circles of two bodies intersect.
func Overlaps(a, b Body) bool {
	return Dist(a.Position(), b.Position()) <= a.CollisionRadius()+b.CollisionRadius()
}

// ResolveOverlap pushes two overlapping bodies apart symmetrically, each by
// half the penetration depth. Coincident centers separate along +X.
func ResolveOverlap(a, b Body) {
	pa, pb := a.Position(), b.Position()
	d := Dist(pa, pb)
	min := a.CollisionRadius() + b.CollisionRadius()
	if d >= min {
		return
	}
	dir := pb.Sub(pa).Normalize()
	if dir == (Vec2{}) {
		dir = Vec2{1, 0}
	}
	push := (min - d) / 2
	a.SetPosition(pa.Sub(dir.Scale(push)))
	b.SetPosition(pb.Add(dir.Scale(push)))
}

// ResolveOverlapPinned pushes only free out of pinned; pinned never moves.
func ResolveOverlapPinned(pinned, free Body) {
	pp, pf := pinned.Position(), free.Position()
	d := Dist(pp, pf)
	min := pinned.CollisionRadius() + free.CollisionRadius()
	if d >= min {
		return
	}
	dir := pf.Sub(pp).Normalize()
	if dir == (Vec2{}) {
		dir = Vec2{1, 0}
	}
	free.SetPosition(pf.Add(dir.Scale(min - d)))
}

// ClosestIndex scans n positions via at and returns the index nearest to
// origin along with the distance. Ties keep the first index seen. Returns
// -1 when n is zero.
func ClosestIndex(origin Vec2, n int, at func(int) Vec2) (int, float64) {
	best := -1
	bestDist := math.Inf(1)
	for i := 0; i < n; i++ {
		if d := Dist(origin, at(i)); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

// Rect is an axis-aligned bounding box used for the playfield.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether p lies inside the rect (inclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// ClampPoint returns p moved to the nearest point inside the rect.
func (r Rect) ClampPoint(p Vec2) Vec2 {
	return Vec2{
		X: math.Max(r.MinX, math.Min(r.MaxX, p.X)),
		Y: math.Max(r.MinY, math.Min(r.MaxY, p.Y)),
	}
}

// Shrink returns the rect inset by m on every side.
func (r Rect) Shrink(m float64) Rect {
	return Rect{r.MinX + m, r.MinY + m, r.MaxX - m, r.MaxY - m}
}
