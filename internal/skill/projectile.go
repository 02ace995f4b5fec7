package skill

import (
	"go-incantato/internal/effect"
	"go-incantato/internal/entity"
	"go-incantato/internal/geom"
)

// Projectile flies straight and detonates exactly once: on first overlap
// with a hostile, on duration expiry, or on leaving the playfield.
type Projectile struct {
	entity.Entity
	Def *Definition

	Damage          float64
	ExplosionRadius float64
	ExplosionDamage float64
	Duration        float64

	dir        geom.Vec2
	elapsed    float64
	exploded   bool
	effectTime float64
}

// NewProjectile spawns a projectile at pos heading toward target.
// effectTime is the lifetime of the blast effect it leaves behind.
func NewProjectile(def *Definition, pos, target geom.Vec2, radius, effectTime float64) *Projectile {
	dir := target.Sub(pos).Normalize()
	if dir == (geom.Vec2{}) {
		dir = geom.Vec2{X: 1, Y: 0}
	}
	p := &Projectile{
		Entity:          *entity.New(entity.KindProjectile, pos, radius, def.Speed, 1),
		Def:             def,
		Damage:          def.Damage,
		ExplosionRadius: def.ExplosionRadius,
		ExplosionDamage: def.ExplosionDamage,
		Duration:        def.Duration,
		dir:             dir,
		effectTime:      effectTime,
	}
	p.Facing = dir
	p.Color = def.Color
	return p
}

// Update advances the projectile. It returns a detonation effect when the
// projectile exploded this frame, nil otherwise. After detonating the
// projectile is dead and the deck drops it at end of frame.
func (p *Projectile) Update(dt float64, hostiles []*entity.Hostile, bounds geom.Rect) *effect.Effect {
	if p.exploded || !p.Alive {
		return nil
	}
	p.elapsed += dt
	p.Move(p.dir)
	p.Entity.Update(dt)

	for _, h := range hostiles {
		if !h.Alive {
			continue
		}
		if geom.Dist(p.Pos, h.Pos) <= p.Radius+h.Radius {
			// direct hit damage lands on the struck hostile, the blast
			// covers everything else in reach
			h.TakeDamage(p.Damage)
			return p.Detonate(hostiles)
		}
	}
	if p.elapsed >= p.Duration || !bounds.Contains(p.Pos) {
		return p.Detonate(hostiles)
	}
	return nil
}

// Detonate applies explosion damage to every hostile within the explosion
// radius (plus the hostile's own radius) and returns the blast effect.
// Calling it again is a no-op.
func (p *Projectile) Detonate(hostiles []*entity.Hostile) *effect.Effect {
	if p.exploded {
		return nil
	}
	p.exploded = true
	p.Alive = false

	for _, h := range hostiles {
		if !h.Alive {
			continue
		}
		if geom.Dist(p.Pos, h.Pos) <= p.ExplosionRadius+h.Radius {
			h.TakeDamage(p.ExplosionDamage)
		}
	}
	return effect.NewExplosion(p.Pos, p.ExplosionRadius, p.effectTime, p.Def.Color)
}

// Exploded reports whether the projectile has already detonated.
func (p *Projectile) Exploded() bool { return p.exploded }
