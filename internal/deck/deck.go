// Package deck owns the four equipped skills and every entity or effect
// they spawn. The pools are mutated only here, and only at frame
// boundaries: updates iterate a stable view, removals and spawned effects
// land at the end of the frame.
package deck

import (
	"errors"
	"fmt"

	"go-incantato/internal/config"
	"go-incantato/internal/effect"
	"go-incantato/internal/entity"
	"go-incantato/internal/geom"
	"go-incantato/internal/skill"
)

// SlotCount is the fixed deck size. Decks never resize after creation.
const SlotCount = config.SkillSlots

// Activation rejections the caller can tell apart.
var (
	ErrInvalidSkillIndex   = errors.New("deck: skill index out of range")
	ErrOnCooldown          = errors.New("deck: skill on cooldown")
	ErrInsufficientStamina = errors.New("deck: not enough stamina")
)

// Deck holds the equipped skills plus the pools of spawned bodies and
// effects. All mutation happens on the single update goroutine.
type Deck struct {
	skills [SlotCount]*skill.Skill

	projectiles []*skill.Projectile
	summons     []*skill.Summon
	effects     []*effect.Effect

	// effects produced mid-update, merged at end of frame
	pendingEffects []*effect.Effect

	summonLimit int
	bounds      geom.Rect
	combat      config.CombatConfig
}

// New builds a deck from exactly SlotCount definitions.
func New(defs []*skill.Definition, cfg *config.Config, bounds geom.Rect) (*Deck, error) {
	if len(defs) != SlotCount {
		return nil, fmt.Errorf("deck: need exactly %d skills, got %d", SlotCount, len(defs))
	}
	d := &Deck{
		summonLimit: cfg.Player.SummonLimit,
		bounds:      bounds,
		combat:      cfg.Combat,
	}
	for i, def := range defs {
		d.skills[i] = skill.NewSkill(def)
	}
	return d, nil
}

// Skill returns the equipped skill at index, nil when out of range.
func (d *Deck) Skill(index int) *skill.Skill {
	if index < 0 || index >= SlotCount {
		return nil
	}
	return d.skills[index]
}

func (d *Deck) Projectiles() []*skill.Projectile { return d.projectiles }
func (d *Deck) Summons() []*skill.Summon         { return d.summons }
func (d *Deck) Effects() []*effect.Effect        { return d.effects }

// AddEffect queues an externally produced effect (dash afterimages,
// contact explosions from the collision pass) into the pool.
func (d *Deck) AddEffect(fx *effect.Effect) {
	if fx != nil {
		d.effects = append(d.effects, fx)
	}
}

// UseSkill attempts to activate slot index at the aim point. The returned
// error identifies the rejection; nil means the activation ran, even if it
// found nothing to hit. Cooldown is consumed on every successful
// activation, targets or not.
func (d *Deck) UseSkill(index int, target geom.Vec2, hostiles []*entity.Hostile, now float64, owner *entity.Player) error {
	if index < 0 || index >= SlotCount {
		return ErrInvalidSkillIndex
	}
	s := d.skills[index]
	if !s.IsOffCooldown(now) {
		return ErrOnCooldown
	}
	if s.Def.StaminaCost > 0 && owner.Stamina < s.Def.StaminaCost {
		return ErrInsufficientStamina
	}

	ctx := &skill.Context{
		Caster:                owner,
		Target:                target,
		Hostiles:              hostiles,
		Summons:               d.summons,
		Bounds:                d.bounds,
		Now:                   now,
		ProjectileRadius:      d.combat.ProjectileRadius,
		ProjectileSpawnOffset: d.combat.ProjectileSpawnOffset,
		SummonSpawnOffset:     d.combat.SummonSpawnOffset,
		SummonRadius:          d.combat.SummonRadius,
		SummonHealth:          d.combat.SummonHealth,
		SummonAttackCooldown:  d.combat.SummonAttackCooldown,
		SlashSweep:            d.combat.SlashSweepAngle,
		ExplosionEffectTime:   d.combat.ExplosionEffectTime,
		HealEffectTime:        d.combat.HealEffectTime,
		SlashEffectTime:       d.combat.SlashEffectTime,
		LinkEffectTime:        d.combat.LinkEffectTime,
	}
	res, err := skill.Activate(s.Def, ctx)
	if err != nil {
		// an unknown type tag slipped past catalog validation
		return err
	}

	if s.Def.StaminaCost > 0 {
		owner.SpendStamina(s.Def.StaminaCost)
	}
	s.TriggerCooldown(now)
	owner.MarkAttacking(d.combat.CastActionTime)

	d.projectiles = append(d.projectiles, res.Projectiles...)
	for _, sm := range res.Summons {
		d.addSummon(sm)
	}
	d.effects = append(d.effects, res.Effects...)
	return nil
}

// addSummon enforces the summon cap: the oldest summon dies to make room.
func (d *Deck) addSummon(s *skill.Summon) {
	if d.summonLimit > 0 && len(d.summons) >= d.summonLimit {
		d.summons[0].TakeDamage(d.summons[0].Health)
		d.summons = d.summons[1:]
	}
	d.summons = append(d.summons, s)
}

// Update advances every pooled object by dt. Expired objects leave the
// pools at the end of the frame; effects spawned during the pass (a
// projectile detonating) join the pool afterwards so the current collision
// pass never sees them.
func (d *Deck) Update(dt float64, hostiles []*entity.Hostile) {
	for _, p := range d.projectiles {
		if fx := p.Update(dt, hostiles, d.bounds); fx != nil {
			d.pendingEffects = append(d.pendingEffects, fx)
		}
	}
	for _, s := range d.summons {
		s.Update(dt, hostiles, d.bounds)
	}
	for _, fx := range d.effects {
		fx.Update(dt)
	}

	// end-of-frame compaction
	liveP := d.projectiles[:0]
	for _, p := range d.projectiles {
		if p.Alive && !p.Exploded() {
			liveP = append(liveP, p)
		}
	}
	d.projectiles = liveP

	liveS := d.summons[:0]
	for _, s := range d.summons {
		if s.Alive {
			liveS = append(liveS, s)
		}
	}
	d.summons = liveS

	liveF := d.effects[:0]
	for _, fx := range d.effects {
		if fx.Active {
			liveF = append(liveF, fx)
		}
	}
	d.effects = append(liveF, d.pendingEffects...)
	d.pendingEffects = nil
}

// LiveSummonTargets returns the summons as hostile-attackable targets.
func (d *Deck) LiveSummonTargets() []entity.Target {
	targets := make([]entity.Target, 0, len(d.summons))
	for _, s := range d.summons {
		if s.Alive {
			targets = append(targets, s)
		}
	}
	return targets
}

// Reset drops every pooled object, keeping the equipped skills. Used at
// wave transitions and on restart.
func (d *Deck) Reset() {
	d.projectiles = nil
	d.summons = nil
	d.effects = nil
	d.pendingEffects = nil
}
