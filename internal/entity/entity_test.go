package entity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go-incantato/internal/config"
	"go-incantato/internal/geom"
)

func TestTakeDamageKillsOnce(t *testing.T) {
	e := New(KindHostile, geom.Vec2{}, 10, 50, 30)
	require.False(t, e.TakeDamage(10))
	require.InDelta(t, 20.0, e.Health, 1e-9)

	require.True(t, e.TakeDamage(25), "lethal hit reports the kill")
	require.Equal(t, 0.0, e.Health)
	require.False(t, e.Alive)
	require.Equal(t, StateDead, e.State)

	require.False(t, e.TakeDamage(5), "dead entities soak nothing")
}

func TestTakeDamageIgnoresNonPositive(t *testing.T) {
	e := New(KindHostile, geom.Vec2{}, 10, 50, 30)
	require.False(t, e.TakeDamage(0))
	require.False(t, e.TakeDamage(-4))
	require.InDelta(t, 30.0, e.Health, 1e-9)
}

func TestHealClampsAndSkipsDead(t *testing.T) {
	e := New(KindPlayer, geom.Vec2{}, 10, 50, 100)
	e.TakeDamage(30)
	e.Heal(50)
	require.InDelta(t, 100.0, e.Health, 1e-9)

	e.TakeDamage(200)
	e.Heal(50)
	require.Equal(t, 0.0, e.Health)
	require.False(t, e.Alive)
}

func TestMoveConsumesVelocity(t *testing.T) {
	e := New(KindHostile, geom.Vec2{}, 10, 100, 30)
	e.Move(geom.Vec2{X: 1, Y: 0})
	e.Update(0.5)
	require.InDelta(t, 50.0, e.Pos.X, 1e-9)
	require.Equal(t, StateMoving, e.State)

	// no new intent: the entity idles in place
	e.Update(0.5)
	require.InDelta(t, 50.0, e.Pos.X, 1e-9)
	require.Equal(t, StateIdle, e.State)
}

func TestMoveZeroKeepsFacing(t *testing.T) {
	e := New(KindHostile, geom.Vec2{}, 10, 100, 30)
	e.Move(geom.Vec2{X: 0, Y: 1})
	e.Move(geom.Vec2{})
	require.Equal(t, geom.Vec2{X: 0, Y: 1}, e.Facing)
	require.Equal(t, geom.Vec2{}, e.Vel)
}

func TestDirectionToCoincident(t *testing.T) {
	a := New(KindPlayer, geom.Vec2{X: 5, Y: 5}, 10, 50, 30)
	b := New(KindHostile, geom.Vec2{X: 5, Y: 5}, 10, 50, 30)
	require.Equal(t, geom.Vec2{}, a.DirectionTo(b))
}

func TestClampTo(t *testing.T) {
	e := New(KindPlayer, geom.Vec2{X: -50, Y: 400}, 21, 50, 100)
	e.ClampTo(geom.Rect{MinX: 0, MinY: 0, MaxX: 1280, MaxY: 720})
	require.InDelta(t, 21.0, e.Pos.X, 1e-9)
	require.InDelta(t, 400.0, e.Pos.Y, 1e-9)
}

func TestPlayerSprintDrainsStamina(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg, "tester", geom.Vec2{X: 100, Y: 100})
	p.MoveInput(geom.Vec2{X: 1, Y: 0}, true, 1.0)
	require.InDelta(t, cfg.Player.MaxStamina-cfg.Player.SprintDrain, p.Stamina, 1e-9)
	require.Equal(t, cfg.Player.SprintSpeed, p.Speed)

	p.MoveInput(geom.Vec2{X: 1, Y: 0}, false, 1.0)
	require.Equal(t, cfg.Player.WalkSpeed, p.Speed)
}

func TestPlayerStaminaDepletionLocksRegen(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg, "tester", geom.Vec2{})
	p.Stamina = 1
	p.MoveInput(geom.Vec2{X: 1, Y: 0}, true, 1.0)
	require.Equal(t, 0.0, p.Stamina)
	require.True(t, p.StaminaLocked())

	p.UpdateStamina(0.5)
	require.Equal(t, 0.0, p.Stamina, "no regen while locked")

	p.UpdateStamina(cfg.Player.StaminaCooldown)
	p.UpdateStamina(1.0)
	require.InDelta(t, cfg.Player.StaminaRegen, p.Stamina, 1e-9)
}

func TestPlayerDash(t *testing.T) {
	cfg := config.Default()
	bounds := geom.Rect{MaxX: config.ScreenWidth, MaxY: config.ScreenHeight}
	p := NewPlayer(cfg, "tester", geom.Vec2{X: 200, Y: 200})

	require.True(t, p.Dash(geom.Vec2{X: 1, Y: 0}, bounds))
	require.InDelta(t, 200+cfg.Player.DashDistance, p.Pos.X, 1e-9)
	require.InDelta(t, cfg.Player.MaxStamina-cfg.Player.DashCost, p.Stamina, 1e-9)

	p.Stamina = cfg.Player.DashCost - 1
	require.False(t, p.Dash(geom.Vec2{X: 1, Y: 0}, bounds), "not enough stamina")
}

func TestPlayerSpendStamina(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg, "tester", geom.Vec2{})
	require.True(t, p.SpendStamina(40))
	require.InDelta(t, cfg.Player.MaxStamina-40, p.Stamina, 1e-9)
	require.False(t, p.SpendStamina(p.Stamina+1))
}

func TestHostileAttacksNearestTarget(t *testing.T) {
	cfg := config.Default()
	h := NewHostile(cfg, geom.Vec2{X: 0, Y: 0}, 50)
	near := New(KindSummon, geom.Vec2{X: 60, Y: 0}, 12, 0, 50)
	far := New(KindPlayer, geom.Vec2{X: 500, Y: 0}, 21, 0, 100)

	h.Update(0.016, []Target{far, near})
	require.InDelta(t, 50-cfg.Enemy.Damage, near.Health, 1e-9, "nearest target takes the hit")
	require.InDelta(t, 100.0, far.Health, 1e-9)

	// cooldown blocks the immediate follow-up
	h.Update(0.016, []Target{far, near})
	require.InDelta(t, 50-cfg.Enemy.Damage, near.Health, 1e-9)
}

func TestHostileChasesWhenOutOfRange(t *testing.T) {
	cfg := config.Default()
	h := NewHostile(cfg, geom.Vec2{X: 0, Y: 0}, 50)
	target := New(KindPlayer, geom.Vec2{X: 1000, Y: 0}, 21, 0, 100)

	h.Update(1.0, []Target{target})
	require.InDelta(t, cfg.Enemy.BaseSpeed, h.Pos.X, 1e-9)
	require.InDelta(t, 100.0, target.Health, 1e-9, "too far to land a hit")
}

func TestCameraFollowClamps(t *testing.T) {
	world := geom.Rect{MaxX: 2000, MaxY: 1000}
	c := NewCamera(1280, 720)

	c.Follow(geom.Vec2{X: 0, Y: 0}, world)
	require.Equal(t, geom.Vec2{}, c.Pos)

	c.Follow(geom.Vec2{X: 2000, Y: 1000}, world)
	require.Equal(t, geom.Vec2{X: 720, Y: 280}, c.Pos)

	c.Follow(geom.Vec2{X: 1000, Y: 500}, world)
	require.Equal(t, geom.Vec2{X: 360, Y: 140}, c.Pos)
	require.Equal(t, geom.Vec2{X: 640, Y: 360}, c.Offset(geom.Vec2{X: 1000, Y: 500}))
}
