// Package effect holds the short-lived visuals spawned by combat:
// explosions, heal bursts, slash arcs, chain links and dash afterimages.
// Effects are pure presentation; damage is applied when they are spawned.
package effect

import (
	"image/color"

	"go-incantato/internal/geom"
)

type Kind int

const (
	KindExplosion Kind = iota
	KindHeal
	KindSlash
	KindLink
	KindAfterimage
)

// Effect is a fixed-duration visual. Update returns false once expired and
// the owner drops it at the end of the frame.
type Effect struct {
	Kind     Kind
	Pos      geom.Vec2
	Color    color.RGBA
	Radius   float64
	Duration float64

	// slash arcs
	StartAngle float64
	SweepAngle float64

	// chain links
	End geom.Vec2

	elapsed float64
	Active  bool
}

// Lifetimes come from the combat config; constructors never hardcode them.

func NewExplosion(pos geom.Vec2, radius, duration float64, c color.RGBA) *Effect {
	return &Effect{Kind: KindExplosion, Pos: pos, Radius: radius, Color: c, Duration: duration, Active: true}
}

func NewHeal(pos geom.Vec2, duration float64, c color.RGBA) *Effect {
	return &Effect{Kind: KindHeal, Pos: pos, Radius: 18, Color: c, Duration: duration, Active: true}
}

func NewSlash(pos geom.Vec2, radius, startAngle, sweepAngle, duration float64, c color.RGBA) *Effect {
	return &Effect{
		Kind: KindSlash, Pos: pos, Radius: radius, Color: c, Duration: duration,
		StartAngle: startAngle, SweepAngle: sweepAngle, Active: true,
	}
}

func NewLink(from, to geom.Vec2, duration float64, c color.RGBA) *Effect {
	return &Effect{Kind: KindLink, Pos: from, End: to, Color: c, Duration: duration, Active: true}
}

func NewAfterimage(pos geom.Vec2, radius, duration float64, c color.RGBA) *Effect {
	return &Effect{Kind: KindAfterimage, Pos: pos, Radius: radius, Color: c, Duration: duration, Active: true}
}

// Update advances the effect and reports whether it is still live. Heal
// bursts drift upward as they fade.
func (e *Effect) Update(dt float64) bool {
	if !e.Active {
		return false
	}
	e.elapsed += dt
	if e.Kind == KindHeal {
		e.Pos.Y -= 30 * dt
	}
	if e.elapsed >= e.Duration {
		e.Active = false
	}
	return e.Active
}

// Progress returns lifetime completion in [0, 1].
func (e *Effect) Progress() float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := e.elapsed / e.Duration
	if p > 1 {
		return 1
	}
	return p
}

// Alpha returns the fade-out alpha for drawing, full at spawn, zero at expiry.
func (e *Effect) Alpha() uint8 {
	return uint8(255 * (1 - e.Progress()))
}
