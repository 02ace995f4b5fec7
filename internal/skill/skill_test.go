package skill

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"go-incantato/internal/config"
	"go-incantato/internal/entity"
	"go-incantato/internal/geom"
)

var testBounds = geom.Rect{MaxX: config.ScreenWidth, MaxY: config.ScreenHeight}

func testContext(caster *entity.Player, target geom.Vec2, hostiles []*entity.Hostile) *Context {
	cfg := config.Default()
	return &Context{
		Caster:                caster,
		Target:                target,
		Hostiles:              hostiles,
		Bounds:                testBounds,
		ProjectileRadius:      cfg.Combat.ProjectileRadius,
		ProjectileSpawnOffset: cfg.Combat.ProjectileSpawnOffset,
		SummonSpawnOffset:     cfg.Combat.SummonSpawnOffset,
		SummonRadius:          cfg.Combat.SummonRadius,
		SummonHealth:          cfg.Combat.SummonHealth,
		SummonAttackCooldown:  cfg.Combat.SummonAttackCooldown,
		SlashSweep:            cfg.Combat.SlashSweepAngle,
		ExplosionEffectTime:   cfg.Combat.ExplosionEffectTime,
		HealEffectTime:        cfg.Combat.HealEffectTime,
		SlashEffectTime:       cfg.Combat.SlashEffectTime,
		LinkEffectTime:        cfg.Combat.LinkEffectTime,
	}
}

func makePlayer(pos geom.Vec2) *entity.Player {
	return entity.NewPlayer(config.Default(), "tester", pos)
}

func makeHostile(pos geom.Vec2, health float64) *entity.Hostile {
	return entity.NewHostile(config.Default(), pos, health)
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("projectile")
	require.NoError(t, err)
	require.Equal(t, TypeProjectile, typ)

	typ, err = ParseType("CHAIN")
	require.NoError(t, err)
	require.Equal(t, TypeChain, typ)

	_, err = ParseType("BEAM")
	require.ErrorIs(t, err, ErrUnknownSkillType)
}

func TestCooldownWindow(t *testing.T) {
	s := NewSkill(&Definition{Name: "Ember", Cooldown: 2})
	require.True(t, s.IsOffCooldown(0), "usable at game time zero")

	s.TriggerCooldown(10)
	require.False(t, s.IsOffCooldown(10))
	require.False(t, s.IsOffCooldown(11.9))
	require.True(t, s.IsOffCooldown(12))
	require.InDelta(t, 1.0, s.CooldownRemaining(11), 1e-9)
	require.Equal(t, 0.0, s.CooldownRemaining(15))
}

func TestActivateUnknownType(t *testing.T) {
	def := &Definition{Name: "broken", Type: Type(99)}
	_, err := Activate(def, testContext(makePlayer(geom.Vec2{}), geom.Vec2{}, nil))
	require.ErrorIs(t, err, ErrUnknownSkillType)
}

func TestProjectileDetonatesOnceBeforeExpiry(t *testing.T) {
	def := &Definition{
		Name: "Ember Bolt", Type: TypeProjectile,
		Damage: 10, Speed: 50, Duration: 3,
		ExplosionRadius: 20, ExplosionDamage: 5,
		Color: color.RGBA{255, 80, 0, 255},
	}
	h := makeHostile(geom.Vec2{X: 40, Y: 0}, 50)
	h.Radius = 5
	hostiles := []*entity.Hostile{h}

	p := NewProjectile(def, geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 100, Y: 0}, 5, 0.3)

	var detonations int
	elapsed := 0.0
	dt := 0.016
	for elapsed < def.Duration && detonations == 0 {
		if fx := p.Update(dt, hostiles, testBounds); fx != nil {
			detonations++
		}
		elapsed += dt
	}
	require.Equal(t, 1, detonations)
	require.Less(t, elapsed, 1.0, "impact lands well before the 3s expiry")
	require.True(t, p.Exploded())
	require.Less(t, h.Health, 50.0)

	// exhausted projectiles never fire again
	require.Nil(t, p.Update(dt, hostiles, testBounds))
	require.Nil(t, p.Detonate(hostiles))
}

func TestProjectileExpiresWithoutTargets(t *testing.T) {
	def := &Definition{Name: "Ember Bolt", Type: TypeProjectile, Speed: 10, Duration: 0.5, ExplosionRadius: 20}
	p := NewProjectile(def, geom.Vec2{X: 600, Y: 300}, geom.Vec2{X: 700, Y: 300}, 5, 0.3)
	var fxCount int
	for i := 0; i < 40; i++ {
		if fx := p.Update(0.016, nil, testBounds); fx != nil {
			fxCount++
		}
	}
	require.Equal(t, 1, fxCount, "expiry detonation still emits one effect")
}

func TestProjectileDetonatesLeavingBounds(t *testing.T) {
	def := &Definition{Name: "Ember Bolt", Type: TypeProjectile, Speed: 1000, Duration: 30}
	p := NewProjectile(def, geom.Vec2{X: 1270, Y: 300}, geom.Vec2{X: 2000, Y: 300}, 5, 0.3)
	var fx int
	for i := 0; i < 10 && fx == 0; i++ {
		if p.Update(0.016, nil, testBounds) != nil {
			fx++
		}
	}
	require.Equal(t, 1, fx)
}

func TestExplosionDamagesArea(t *testing.T) {
	def := &Definition{Name: "Ember Bolt", Type: TypeProjectile, Damage: 10, Speed: 50, Duration: 3, ExplosionRadius: 30, ExplosionDamage: 5}
	inBlast := makeHostile(geom.Vec2{X: 20, Y: 0}, 50)
	outside := makeHostile(geom.Vec2{X: 200, Y: 0}, 50)
	p := NewProjectile(def, geom.Vec2{}, geom.Vec2{X: 100, Y: 0}, 5, 0.3)
	fx := p.Detonate([]*entity.Hostile{inBlast, outside})
	require.NotNil(t, fx)
	require.InDelta(t, 45.0, inBlast.Health, 1e-9)
	require.InDelta(t, 50.0, outside.Health, 1e-9)
}

func TestSummonExpiresByDuration(t *testing.T) {
	def := &Definition{Name: "Bramble Guard", Type: TypeSummon, Duration: 1, Radius: 200, Speed: 60}
	s := NewSummon(def, geom.Vec2{X: 100, Y: 100}, 12, 50, 1.25)
	require.True(t, s.Update(0.5, nil, testBounds))
	require.False(t, s.Update(0.6, nil, testBounds))
	require.False(t, s.Alive)
}

func TestSummonInfiniteDuration(t *testing.T) {
	def := &Definition{Name: "Bramble Guard", Type: TypeSummon, Duration: 0, Radius: 200, Speed: 60}
	s := NewSummon(def, geom.Vec2{}, 12, 50, 1.25)
	require.True(t, math.IsInf(s.Duration, 1))
	require.True(t, s.Update(1000, nil, testBounds))
}

func TestSummonAttacksWithCooldown(t *testing.T) {
	def := &Definition{Name: "Bramble Guard", Type: TypeSummon, Damage: 8, Duration: 60, Radius: 200, Speed: 60}
	s := NewSummon(def, geom.Vec2{}, 12, 50, 1.25)
	h := makeHostile(geom.Vec2{X: 20, Y: 0}, 50)

	s.Update(0.016, []*entity.Hostile{h}, testBounds)
	require.InDelta(t, 42.0, h.Health, 1e-9)

	// second frame is inside the cooldown window
	s.Update(0.016, []*entity.Hostile{h}, testBounds)
	require.InDelta(t, 42.0, h.Health, 1e-9)

	s.Update(1.3, []*entity.Hostile{h}, testBounds)
	require.InDelta(t, 34.0, h.Health, 1e-9)
}

func TestSummonIgnoresHostilesBeyondAttackRadius(t *testing.T) {
	def := &Definition{Name: "Bramble Guard", Type: TypeSummon, Damage: 8, Duration: 60, Radius: 50, Speed: 60}
	s := NewSummon(def, geom.Vec2{X: 100, Y: 100}, 12, 50, 1.25)
	h := makeHostile(geom.Vec2{X: 500, Y: 100}, 50)
	s.Update(1.0, []*entity.Hostile{h}, testBounds)
	require.Equal(t, geom.Vec2{X: 100, Y: 100}, s.Pos, "no pursuit outside attack radius")
}

func TestAOEDamagesWithinRadius(t *testing.T) {
	def := &Definition{Name: "Gale Burst", Type: TypeAOE, Damage: 15, Radius: 60, Duration: 0.5}
	in := makeHostile(geom.Vec2{X: 320, Y: 300}, 50)
	out := makeHostile(geom.Vec2{X: 600, Y: 300}, 50)
	ctx := testContext(makePlayer(geom.Vec2{X: 100, Y: 300}), geom.Vec2{X: 300, Y: 300}, []*entity.Hostile{in, out})

	res, err := Activate(def, ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Hits)
	require.InDelta(t, 35.0, in.Health, 1e-9)
	require.InDelta(t, 50.0, out.Health, 1e-9)
	require.Len(t, res.Effects, 1)
}

func TestSlashHitsOnlyInsideArc(t *testing.T) {
	def := &Definition{Name: "Crescent Cut", Type: TypeSlash, Damage: 20, Radius: 100}
	caster := makePlayer(geom.Vec2{X: 300, Y: 300})
	ahead := makeHostile(geom.Vec2{X: 370, Y: 300}, 50)   // straight along the aim
	behind := makeHostile(geom.Vec2{X: 230, Y: 300}, 50)  // opposite direction
	side := makeHostile(geom.Vec2{X: 300, Y: 370}, 50)    // 90 degrees off, outside a 60 degree arc
	far := makeHostile(geom.Vec2{X: 900, Y: 300}, 50)     // in the arc but out of range
	ctx := testContext(caster, geom.Vec2{X: 500, Y: 300}, []*entity.Hostile{ahead, behind, side, far})

	res, err := Activate(def, ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Hits)
	require.InDelta(t, 30.0, ahead.Health, 1e-9)
	require.InDelta(t, 50.0, behind.Health, 1e-9)
	require.InDelta(t, 50.0, side.Health, 1e-9)
	require.InDelta(t, 50.0, far.Health, 1e-9)
	require.Len(t, res.Effects, 1, "one arc effect per swing")
}

func TestChainRespectsMaxTargetsAndRange(t *testing.T) {
	def := &Definition{Name: "Arc Lash", Type: TypeChain, Damage: 12, ChainRange: 150, MaxTargets: 3}
	hostiles := []*entity.Hostile{
		makeHostile(geom.Vec2{X: 400, Y: 300}, 50),
		makeHostile(geom.Vec2{X: 480, Y: 300}, 50),
		makeHostile(geom.Vec2{X: 560, Y: 300}, 50),
		makeHostile(geom.Vec2{X: 640, Y: 300}, 50),
		makeHostile(geom.Vec2{X: 720, Y: 300}, 50),
	}
	ctx := testContext(makePlayer(geom.Vec2{X: 300, Y: 300}), geom.Vec2{X: 410, Y: 300}, hostiles)

	res, err := Activate(def, ctx)
	require.NoError(t, err)
	require.Equal(t, 3, res.Hits)
	require.Len(t, res.Effects, 3, "one link per hit")

	var hit int
	for _, h := range hostiles {
		if h.Health < 50 {
			hit++
		}
	}
	require.Equal(t, 3, hit)
	// the chain walks outward from the aim point
	require.Less(t, hostiles[0].Health, 50.0)
	require.Less(t, hostiles[1].Health, 50.0)
	require.Less(t, hostiles[2].Health, 50.0)
}

func TestChainStopsWhenRangeBreaks(t *testing.T) {
	def := &Definition{Name: "Arc Lash", Type: TypeChain, Damage: 12, ChainRange: 100, MaxTargets: 5}
	near := makeHostile(geom.Vec2{X: 400, Y: 300}, 50)
	farAway := makeHostile(geom.Vec2{X: 900, Y: 300}, 50)
	ctx := testContext(makePlayer(geom.Vec2{X: 300, Y: 300}), geom.Vec2{X: 400, Y: 300}, []*entity.Hostile{near, farAway})

	res, err := Activate(def, ctx)
	require.NoError(t, err)
	require.Equal(t, 1, res.Hits)
	require.InDelta(t, 50.0, farAway.Health, 1e-9)
}

func TestEffectLifetimesComeFromContext(t *testing.T) {
	caster := makePlayer(geom.Vec2{X: 300, Y: 300})
	ctx := testContext(caster, geom.Vec2{X: 400, Y: 300}, nil)
	ctx.SlashEffectTime = 1.5
	ctx.HealEffectTime = 2.5

	res, err := Activate(&Definition{Name: "Crescent Cut", Type: TypeSlash, Radius: 100}, ctx)
	require.NoError(t, err)
	require.InDelta(t, 1.5, res.Effects[0].Duration, 1e-9)

	res, err = Activate(&Definition{Name: "Verdant Mend", Type: TypeHeal, HealAmount: 10}, ctx)
	require.NoError(t, err)
	require.InDelta(t, 2.5, res.Effects[0].Duration, 1e-9)
}

func TestChainTieKeepsFirstEncountered(t *testing.T) {
	def := &Definition{Name: "Arc Lash", Type: TypeChain, Damage: 12, ChainRange: 100, MaxTargets: 2}
	origin := makeHostile(geom.Vec2{X: 400, Y: 300}, 50)
	// equidistant second-jump candidates, 80px above and below the first hit
	up := makeHostile(geom.Vec2{X: 400, Y: 220}, 50)
	down := makeHostile(geom.Vec2{X: 400, Y: 380}, 50)
	ctx := testContext(makePlayer(geom.Vec2{X: 300, Y: 300}), geom.Vec2{X: 400, Y: 300}, []*entity.Hostile{origin, up, down})

	res, err := Activate(def, ctx)
	require.NoError(t, err)
	require.Equal(t, 2, res.Hits)
	require.Less(t, up.Health, 50.0)
	require.InDelta(t, 50.0, down.Health, 1e-9)
}

func TestChainWithNoHostilesSucceedsSilently(t *testing.T) {
	def := &Definition{Name: "Arc Lash", Type: TypeChain, Damage: 12, ChainRange: 100, MaxTargets: 5}
	res, err := Activate(def, testContext(makePlayer(geom.Vec2{}), geom.Vec2{X: 50, Y: 50}, nil))
	require.NoError(t, err)
	require.Equal(t, 0, res.Hits)
	require.Empty(t, res.Effects)
}

func TestHealRestoresCasterAndSummons(t *testing.T) {
	def := &Definition{Name: "Verdant Mend", Type: TypeHeal, HealAmount: 25, HealSummons: true, Radius: 120}
	caster := makePlayer(geom.Vec2{X: 300, Y: 300})
	caster.TakeDamage(40)

	sDef := &Definition{Name: "Bramble Guard", Type: TypeSummon, Duration: 60}
	inRange := NewSummon(sDef, geom.Vec2{X: 350, Y: 300}, 12, 50, 1.25)
	inRange.TakeDamage(20)
	outRange := NewSummon(sDef, geom.Vec2{X: 900, Y: 300}, 12, 50, 1.25)
	outRange.TakeDamage(20)

	ctx := testContext(caster, geom.Vec2{X: 300, Y: 300}, nil)
	ctx.Summons = []*Summon{inRange, outRange}

	res, err := Activate(def, ctx)
	require.NoError(t, err)
	require.InDelta(t, 85.0, caster.Health, 1e-9)
	require.InDelta(t, 50.0, inRange.Health, 1e-9)
	require.InDelta(t, 30.0, outRange.Health, 1e-9)
	require.Len(t, res.Effects, 2)
}

func TestProjectileSpawnOffset(t *testing.T) {
	def := &Definition{Name: "Ember Bolt", Type: TypeProjectile, Speed: 50, Duration: 3}
	caster := makePlayer(geom.Vec2{X: 100, Y: 100})
	ctx := testContext(caster, geom.Vec2{X: 200, Y: 100}, nil)

	res, err := Activate(def, ctx)
	require.NoError(t, err)
	require.Len(t, res.Projectiles, 1)
	require.InDelta(t, 100+ctx.ProjectileSpawnOffset, res.Projectiles[0].Pos.X, 1e-9)
}
