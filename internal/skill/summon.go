package skill

import (
	"math"

	"go-incantato/internal/entity"
	"go-incantato/internal/geom"
)

// Summon is a spawned ally. It seeks the nearest hostile inside its attack
// radius and lands discrete hits on contact, gated by its own cooldown.
// It expires by duration or dies when hostiles chew it down.
type Summon struct {
	entity.Entity
	Def *Definition

	Damage       float64
	AttackRadius float64
	Duration     float64

	elapsed        float64
	attackCooldown float64
	attackTimer    float64
}

// NewSummon spawns a summon owned by the caster's deck. A non-positive
// duration means the summon persists until killed.
func NewSummon(def *Definition, pos geom.Vec2, radius, health, attackCooldown float64) *Summon {
	dur := def.Duration
	if dur <= 0 {
		dur = math.Inf(1)
	}
	s := &Summon{
		Entity:         *entity.New(entity.KindSummon, pos, radius, def.Speed, health),
		Def:            def,
		Damage:         def.Damage,
		AttackRadius:   def.Radius,
		Duration:       dur,
		attackCooldown: attackCooldown,
	}
	s.Color = def.Color
	return s
}

// Update returns false once the summon expired or died.
func (s *Summon) Update(dt float64, hostiles []*entity.Hostile, bounds geom.Rect) bool {
	if !s.Alive {
		return false
	}
	s.elapsed += dt
	if s.elapsed >= s.Duration {
		s.Alive = false
		return false
	}
	if s.attackTimer > 0 {
		s.attackTimer -= dt
	}

	live := hostiles[:0:0]
	for _, h := range hostiles {
		if h.Alive {
			live = append(live, h)
		}
	}
	if len(live) > 0 {
		i, dist := geom.ClosestIndex(s.Pos, len(live), func(i int) geom.Vec2 {
			return live[i].Pos
		})
		h := live[i]
		if dist <= s.AttackRadius {
			if dist <= s.Radius+h.Radius {
				if s.attackTimer <= 0 {
					s.Attack(&h.Entity, s.Damage)
					s.attackTimer = s.attackCooldown
				}
			} else {
				s.Move(h.Pos.Sub(s.Pos))
			}
		}
	}

	s.Entity.Update(dt)
	s.ClampTo(bounds)
	return s.Alive
}
