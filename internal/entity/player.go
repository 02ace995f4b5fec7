package entity

import (
	"go-incantato/internal/config"
	"go-incantato/internal/geom"
)

// Player wraps the base entity with the stamina economy and the camera.
type Player struct {
	Entity
	Name string

	WalkSpeed   float64
	SprintSpeed float64

	Stamina      float64
	MaxStamina   float64
	staminaRegen float64
	sprintDrain  float64
	dashCost     float64
	dashDistance float64

	// after stamina hits zero, regen pauses for this long
	staminaCooldown float64
	regenLock       float64

	Camera Camera
}

// NewPlayer builds the player from config at pos.
func NewPlayer(cfg *config.Config, name string, pos geom.Vec2) *Player {
	p := &Player{
		Entity:          *New(KindPlayer, pos, cfg.Player.Radius, cfg.Player.WalkSpeed, cfg.Player.MaxHealth),
		Name:            name,
		WalkSpeed:       cfg.Player.WalkSpeed,
		SprintSpeed:     cfg.Player.SprintSpeed,
		Stamina:         cfg.Player.MaxStamina,
		MaxStamina:      cfg.Player.MaxStamina,
		staminaRegen:    cfg.Player.StaminaRegen,
		sprintDrain:     cfg.Player.SprintDrain,
		dashCost:        cfg.Player.DashCost,
		dashDistance:    cfg.Player.DashDistance,
		staminaCooldown: cfg.Player.StaminaCooldown,
	}
	p.Color = config.PlayerColor
	return p
}

// MoveInput applies the frame's movement intent. Sprinting drains stamina
// and falls back to walking once it runs dry.
func (p *Player) MoveInput(dir geom.Vec2, sprint bool, dt float64) {
	p.Speed = p.WalkSpeed
	if sprint && dir != (geom.Vec2{}) && p.Stamina > 0 && p.regenLock <= 0 {
		p.Speed = p.SprintSpeed
		p.drain(p.sprintDrain * dt)
	}
	p.Move(dir)
}

// Dash teleports the player along dir when stamina allows. Returns true
// when the dash happened so callers can spawn the afterimage trail.
func (p *Player) Dash(dir geom.Vec2, bounds geom.Rect) bool {
	n := dir.Normalize()
	if n == (geom.Vec2{}) {
		n = p.Facing
	}
	if p.Stamina < p.dashCost || p.regenLock > 0 {
		return false
	}
	p.drain(p.dashCost)
	p.Pos = p.Pos.Add(n.Scale(p.dashDistance))
	p.ClampTo(bounds)
	p.Facing = n
	return true
}

// SpendStamina consumes cost if available and reports whether it did.
func (p *Player) SpendStamina(cost float64) bool {
	if cost <= 0 {
		return true
	}
	if p.Stamina < cost {
		return false
	}
	p.drain(cost)
	return true
}

func (p *Player) drain(amount float64) {
	p.Stamina -= amount
	if p.Stamina <= 0 {
		p.Stamina = 0
		p.regenLock = p.staminaCooldown
	}
}

// UpdateStamina ticks regeneration. Fully depleting stamina locks regen for
// the configured cooldown.
func (p *Player) UpdateStamina(dt float64) {
	if p.regenLock > 0 {
		p.regenLock -= dt
		return
	}
	if p.Stamina < p.MaxStamina {
		p.Stamina += p.staminaRegen * dt
		if p.Stamina > p.MaxStamina {
			p.Stamina = p.MaxStamina
		}
	}
}

// StaminaLocked reports whether regen is paused after full depletion.
func (p *Player) StaminaLocked() bool { return p.regenLock > 0 }
