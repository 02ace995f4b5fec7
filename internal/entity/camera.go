package entity

import "go-incantato/internal/geom"

// Camera keeps the view centered on a target, clamped to the world rect.
type Camera struct {
	Pos           geom.Vec2
	Width, Height float64
}

func NewCamera(w, h float64) Camera {
	return Camera{Width: w, Height: h}
}

// Follow centers the camera on target without leaving world.
func (c *Camera) Follow(target geom.Vec2, world geom.Rect) {
	c.Pos = geom.Vec2{X: target.X - c.Width/2, Y: target.Y - c.Height/2}
	maxX := world.MaxX - c.Width
	maxY := world.MaxY - c.Height
	if maxX < world.MinX {
		maxX = world.MinX
	}
	if maxY < world.MinY {
		maxY = world.MinY
	}
	c.Pos = geom.Rect{MinX: world.MinX, MinY: world.MinY, MaxX: maxX, MaxY: maxY}.ClampPoint(c.Pos)
}

// Offset translates a world point into screen space.
func (c *Camera) Offset(p geom.Vec2) geom.Vec2 {
	return p.Sub(c.Pos)
}
