package skill

import (
	"fmt"

	"go-incantato/internal/effect"
	"go-incantato/internal/entity"
	"go-incantato/internal/geom"
)

// Context carries everything an activation may read. The engine never
// mutates the hostile slice itself, only the hostiles it damages.
type Context struct {
	Caster   *entity.Player
	Target   geom.Vec2
	Hostiles []*entity.Hostile
	Summons  []*Summon
	Bounds   geom.Rect
	Now      float64

	// spawn tuning, owned by the deck
	ProjectileRadius      float64
	ProjectileSpawnOffset float64
	SummonSpawnOffset     float64
	SummonRadius          float64
	SummonHealth          float64
	SummonAttackCooldown  float64
	SlashSweep            float64

	// effect lifetimes from the combat config
	ExplosionEffectTime float64
	HealEffectTime      float64
	SlashEffectTime     float64
	LinkEffectTime      float64
}

// Result is what one activation produced. Empty results are valid: a
// targeting skill on an empty field succeeds and produces nothing.
type Result struct {
	Projectiles []*Projectile
	Summons     []*Summon
	Effects     []*effect.Effect
	Hits        int
}

type activateFunc func(*Definition, *Context) Result

// behavior dispatch is a lookup table keyed by the type tag
var activators = map[Type]activateFunc{
	TypeProjectile: activateProjectile,
	TypeSummon:     activateSummon,
	TypeAOE:        activateAOE,
	TypeSlash:      activateSlash,
	TypeChain:      activateChain,
	TypeHeal:       activateHeal,
}

// Activate runs the behavior for def. The only error is an unknown type
// tag, which means the catalog validation was bypassed.
func Activate(def *Definition, ctx *Context) (Result, error) {
	fn, ok := activators[def.Type]
	if !ok {
		return Result{}, fmt.Errorf("skill %q: %w %v", def.Name, ErrUnknownSkillType, def.Type)
	}
	return fn(def, ctx), nil
}

// spawnPoint offsets the caster position toward the aim point so spawned
// bodies do not materialize inside the caster's circle.
func spawnPoint(caster geom.Vec2, target geom.Vec2, offset float64) geom.Vec2 {
	dir := target.Sub(caster).Normalize()
	if dir == (geom.Vec2{}) {
		dir = geom.Vec2{X: 1, Y: 0}
	}
	return caster.Add(dir.Scale(offset))
}

func activateProjectile(def *Definition, ctx *Context) Result {
	pos := spawnPoint(ctx.Caster.Pos, ctx.Target, ctx.ProjectileSpawnOffset)
	return Result{Projectiles: []*Projectile{NewProjectile(def, pos, ctx.Target, ctx.ProjectileRadius, ctx.ExplosionEffectTime)}}
}

func activateSummon(def *Definition, ctx *Context) Result {
	pos := spawnPoint(ctx.Caster.Pos, ctx.Target, ctx.SummonSpawnOffset)
	s := NewSummon(def, pos, ctx.SummonRadius, ctx.SummonHealth, ctx.SummonAttackCooldown)
	s.ClampTo(ctx.Bounds)
	return Result{Summons: []*Summon{s}}
}

func activateAOE(def *Definition, ctx *Context) Result {
	res := Result{}
	for _, h := range ctx.Hostiles {
		if !h.Alive {
			continue
		}
		if geom.Dist(ctx.Target, h.Pos) <= def.Radius+h.Radius {
			h.TakeDamage(def.Damage)
			res.Hits++
		}
	}
	// the blast ring expands to the full radius over the decay window
	dur := ctx.ExplosionEffectTime
	if def.Duration > 0 {
		dur = def.Duration
	}
	res.Effects = append(res.Effects, effect.NewExplosion(ctx.Target, def.Radius, dur, def.Color))
	return res
}

func activateSlash(def *Definition, ctx *Context) Result {
	res := Result{}
	aim := ctx.Target.Sub(ctx.Caster.Pos)
	if aim == (geom.Vec2{}) {
		aim = ctx.Caster.Facing
	}
	start := aim.Angle() - ctx.SlashSweep/2
	for _, h := range ctx.Hostiles {
		if !h.Alive {
			continue
		}
		if geom.Dist(ctx.Caster.Pos, h.Pos) > def.Radius+h.Radius {
			continue
		}
		angle := h.Pos.Sub(ctx.Caster.Pos).Angle()
		if geom.AngleInSweep(angle, start, ctx.SlashSweep) {
			h.TakeDamage(def.Damage)
			res.Hits++
		}
	}
	res.Effects = append(res.Effects, effect.NewSlash(ctx.Caster.Pos, def.Radius, start, ctx.SlashSweep, ctx.SlashEffectTime, def.Color))
	return res
}

func activateChain(def *Definition, ctx *Context) Result {
	res := Result{}
	maxTargets := def.MaxTargets
	if maxTargets <= 0 {
		maxTargets = 1
	}

	candidates := make([]*entity.Hostile, 0, len(ctx.Hostiles))
	for _, h := range ctx.Hostiles {
		if h.Alive {
			candidates = append(candidates, h)
		}
	}
	if len(candidates) == 0 {
		return res
	}

	hit := make(map[*entity.Hostile]bool, maxTargets)
	from := ctx.Target
	linkFrom := ctx.Caster.Pos
	for res.Hits < maxTargets {
		var next *entity.Hostile
		var best float64
		first := res.Hits == 0
		for _, h := range candidates {
			if hit[h] {
				continue
			}
			d := geom.Dist(from, h.Pos)
			// the first jump reaches the nearest hostile to the aim point
			// regardless of chain range; ties keep the first encountered
			if first {
				if next == nil || d < best {
					next, best = h, d
				}
			} else if d <= def.ChainRange && (next == nil || d < best) {
				next, best = h, d
			}
		}
		if next == nil {
			break
		}
		next.TakeDamage(def.Damage)
		hit[next] = true
		res.Hits++
		res.Effects = append(res.Effects, effect.NewLink(linkFrom, next.Pos, ctx.LinkEffectTime, def.Color))
		linkFrom, from = next.Pos, next.Pos
	}
	return res
}

func activateHeal(def *Definition, ctx *Context) Result {
	res := Result{}
	ctx.Caster.Heal(def.HealAmount)
	res.Effects = append(res.Effects, effect.NewHeal(ctx.Target, ctx.HealEffectTime, def.Color))
	if def.HealSummons {
		for _, s := range ctx.Summons {
			if s.Alive && geom.Dist(ctx.Caster.Pos, s.Pos) <= def.Radius {
				s.Heal(def.HealAmount)
				res.Effects = append(res.Effects, effect.NewHeal(s.Pos, ctx.HealEffectTime, def.Color))
			}
		}
	}
	return res
}
