package entity

import (
	"go-incantato/internal/config"
	"go-incantato/internal/geom"
)

// Target is what a hostile can chase and hit: the player or a summon.
type Target interface {
	Position() geom.Vec2
	CollisionRadius() float64
	TakeDamage(amount float64) bool
}

// Hostile is a wave enemy. It seeks the nearest target and lands discrete
// hits gated by its own attack cooldown.
type Hostile struct {
	Entity
	Damage       float64
	AttackRadius float64

	attackCooldown float64
	attackTimer    float64
}

// NewHostile builds a hostile at pos with the given scaled health.
func NewHostile(cfg *config.Config, pos geom.Vec2, health float64) *Hostile {
	h := &Hostile{
		Entity:         *New(KindHostile, pos, cfg.Enemy.Radius, cfg.Enemy.BaseSpeed, health),
		Damage:         cfg.Enemy.Damage,
		AttackRadius:   cfg.Enemy.AttackRadius,
		attackCooldown: cfg.Enemy.AttackCooldown,
	}
	h.Color = config.EnemyColor
	return h
}

// Update picks the nearest target, moves toward it, and attacks when the
// effective distance (center distance minus both radii) is within the
// attack radius and the cooldown has elapsed.
func (h *Hostile) Update(dt float64, targets []Target) {
	if h.attackTimer > 0 {
		h.attackTimer -= dt
	}
	if !h.Alive || len(targets) == 0 {
		h.Entity.Update(dt)
		return
	}

	i, dist := geom.ClosestIndex(h.Pos, len(targets), func(i int) geom.Vec2 {
		return targets[i].Position()
	})
	t := targets[i]

	effective := dist - h.Radius - t.CollisionRadius()
	if effective <= h.AttackRadius {
		h.Move(geom.Vec2{})
		if h.attackTimer <= 0 {
			t.TakeDamage(h.Damage)
			h.attackTimer = h.attackCooldown
			h.MarkAttacking(0.3)
		}
	} else {
		h.Move(t.Position().Sub(h.Pos))
	}
	h.Entity.Update(dt)
}
