// Package entity defines the record types for everything that lives on
// the playfield: the player, hostiles, and the bodies spawned by skills.
package entity

import (
	"image/color"
	"math"

	"go-incantato/internal/geom"
)

// Kind tags what an entity is; behavior dispatch keys off it instead of
// embedding or type switches.
type Kind int

const (
	KindPlayer Kind = iota
	KindHostile
	KindProjectile
	KindSummon
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindHostile:
		return "hostile"
	case KindProjectile:
		return "projectile"
	case KindSummon:
		return "summon"
	}
	return "unknown"
}

// State is the coarse animation/logic state derived each frame.
type State int

const (
	StateIdle State = iota
	StateMoving
	StateAttacking
	StateDead
)

// Entity is the shared record for every body in the simulation. Velocity
// is an intent set during the frame and consumed by Update.
type Entity struct {
	Pos    geom.Vec2
	Vel    geom.Vec2
	Facing geom.Vec2

	Radius float64
	Speed  float64

	Health    float64
	MaxHealth float64

	Kind  Kind
	State State
	Alive bool

	Color color.RGBA

	attackTimer float64
}

// New returns a live entity at pos with full health.
func New(kind Kind, pos geom.Vec2, radius, speed, maxHealth float64) *Entity {
	return &Entity{
		Pos:       pos,
		Facing:    geom.Vec2{X: 1, Y: 0},
		Radius:    radius,
		Speed:     speed,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Kind:      kind,
		Alive:     true,
	}
}

func (e *Entity) Position() geom.Vec2      { return e.Pos }
func (e *Entity) SetPosition(p geom.Vec2)  { e.Pos = p }
func (e *Entity) CollisionRadius() float64 { return e.Radius }

// Move sets this frame's movement intent toward dir at the entity's speed.
// dir need not be normalized. A zero dir clears the intent and keeps the
// previous facing.
func (e *Entity) Move(dir geom.Vec2) {
	n := dir.Normalize()
	if n == (geom.Vec2{}) {
		e.Vel = geom.Vec2{}
		return
	}
	e.Facing = n
	e.Vel = n.Scale(e.Speed)
}

// TakeDamage applies amount to health, clamping at zero. Death fires at
// most once; the return value reports whether this call killed the entity.
func (e *Entity) TakeDamage(amount float64) bool {
	if amount <= 0 || !e.Alive {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		e.Alive = false
		e.State = StateDead
		return true
	}
	return false
}

// Heal restores health up to the maximum. Dead entities stay dead.
func (e *Entity) Heal(amount float64) {
	if !e.Alive || amount <= 0 {
		return
	}
	e.Health = math.Min(e.MaxHealth, e.Health+amount)
}

// Attack deals damage to target unconditionally; range and cooldown checks
// belong to the caller.
func (e *Entity) Attack(target *Entity, damage float64) bool {
	e.MarkAttacking(0.3)
	return target.TakeDamage(damage)
}

// DistanceTo returns the center distance to other.
func (e *Entity) DistanceTo(other *Entity) float64 {
	return geom.Dist(e.Pos, other.Pos)
}

// DirectionTo returns the unit vector toward other, or the zero vector when
// the centers coincide.
func (e *Entity) DirectionTo(other *Entity) geom.Vec2 {
	return other.Pos.Sub(e.Pos).Normalize()
}

// MarkAttacking holds the attacking state for d seconds.
func (e *Entity) MarkAttacking(d float64) {
	if d > e.attackTimer {
		e.attackTimer = d
	}
}

// Update derives the frame state, applies the movement intent, then clears
// it so stale velocity never carries into the next frame.
func (e *Entity) Update(dt float64) {
	if !e.Alive {
		e.State = StateDead
		return
	}
	if e.attackTimer > 0 {
		e.attackTimer -= dt
		e.State = StateAttacking
	} else if e.Vel != (geom.Vec2{}) {
		e.State = StateMoving
	} else {
		e.State = StateIdle
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	e.Vel = geom.Vec2{}
}

// ClampTo keeps the entity's circle fully inside bounds.
func (e *Entity) ClampTo(bounds geom.Rect) {
	e.Pos = bounds.Shrink(e.Radius).ClampPoint(e.Pos)
}
