// Package game runs the combat session: one player against escalating
// waves. Each frame follows a fixed order: decode input, attempt skill
// activation, advance bodies and effects, resolve collisions, then drop
// the dead at the end of the frame.
package game

import (
	"errors"

	"go.uber.org/zap"

	"go-incantato/internal/config"
	"go-incantato/internal/deck"
	"go-incantato/internal/effect"
	"go-incantato/internal/entity"
	"go-incantato/internal/event"
	"go-incantato/internal/geom"
	"go-incantato/internal/input"
	"go-incantato/internal/skill"
	"go-incantato/internal/utils"
	"go-incantato/internal/wave"
)

// Game owns the live session state. It is single-threaded: all mutation
// happens inside Update.
type Game struct {
	cfg        *config.Config
	log        *zap.Logger
	dispatcher *event.Dispatcher
	bounds     geom.Rect

	Player   *entity.Player
	Deck     *deck.Deck
	Spawner  *wave.Spawner
	Hostiles []*entity.Hostile

	now          float64
	kills        int
	wavesCleared int
	over         bool
}

// New assembles a session with the four selected skills and spawns wave 1.
func New(cfg *config.Config, log *zap.Logger, dispatcher *event.Dispatcher, rng *utils.PRNGService, defs []*skill.Definition, playerName string) (*Game, error) {
	bounds := geom.Rect{MaxX: config.ScreenWidth, MaxY: config.ScreenHeight}
	player := entity.NewPlayer(cfg, playerName, geom.Vec2{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2})
	player.Camera = entity.NewCamera(config.ScreenWidth, config.ScreenHeight)

	d, err := deck.New(defs, cfg, bounds)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		log:        log,
		dispatcher: dispatcher,
		bounds:     bounds,
		Player:     player,
		Deck:       d,
		Spawner:    wave.NewSpawner(cfg, rng, bounds),
	}
	g.startWave(1)
	return g, nil
}

// Now returns the session clock in seconds. It starts at zero and only
// advances while the session updates.
func (g *Game) Now() float64 { return g.now }

// Over reports whether the player died.
func (g *Game) Over() bool { return g.over }

func (g *Game) Kills() int        { return g.kills }
func (g *Game) WavesCleared() int { return g.wavesCleared }

func (g *Game) startWave(n int) {
	// leftover projectiles and summons do not carry across waves
	g.Deck.Reset()
	g.Hostiles = g.Spawner.SpawnWave(n, g.Player.Pos, g.now)
	g.dispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: event.WavePayload{
		Wave:    n,
		Spawned: len(g.Hostiles),
	}})
	g.log.Info("wave started", zap.Int("wave", n), zap.Int("hostiles", len(g.Hostiles)))
}

// Update advances the session by dt using the frame's decoded input.
func (g *Game) Update(dt float64, in input.Frame) {
	if g.over {
		return
	}
	g.now += dt

	// aim arrives in screen space, the simulation runs in world space
	aim := in.Aim.Add(g.Player.Camera.Pos)

	// skill activation
	if in.SkillPressed >= 0 {
		g.useSkill(in.SkillPressed, aim)
	}
	if in.Dash {
		if g.Player.Dash(in.Move, g.bounds) {
			g.Deck.AddEffect(effect.NewAfterimage(g.Player.Pos, g.Player.Radius, g.cfg.Combat.AfterimageEffectTime, g.Player.Color))
		}
	}

	// advance
	g.Player.MoveInput(in.Move, in.Sprint, dt)
	g.Player.Update(dt)
	g.Player.UpdateStamina(dt)
	g.Player.ClampTo(g.bounds)
	g.Player.Camera.Follow(g.Player.Pos, g.bounds)

	g.Deck.Update(dt, g.Hostiles)

	targets := append(g.Deck.LiveSummonTargets(), g.Player)
	for _, h := range g.Hostiles {
		h.Update(dt, targets)
	}

	// collisions and contact damage
	wave.CheckCollisions(g.Player, g.Deck, g.Hostiles)

	// end of frame: drop the dead, then check wave and session state
	g.compactHostiles()

	if !g.Player.Alive {
		g.finish()
		return
	}
	if len(g.Hostiles) == 0 {
		g.endWave()
	}
}

func (g *Game) useSkill(slot int, aim geom.Vec2) {
	err := g.Deck.UseSkill(slot, aim, g.Hostiles, g.now, g.Player)
	switch {
	case err == nil:
		s := g.Deck.Skill(slot)
		g.Spawner.RecordSkillUse(s.Def.Name)
		g.dispatcher.Dispatch(event.Event{Type: event.SkillUsed, Data: event.SkillPayload{
			Name: s.Def.Name,
			Slot: slot,
		}})
	case errors.Is(err, deck.ErrOnCooldown), errors.Is(err, deck.ErrInsufficientStamina):
		// normal gameplay rejections, nothing to do
	default:
		g.log.Warn("skill activation failed", zap.Int("slot", slot), zap.Error(err))
	}
}

func (g *Game) compactHostiles() {
	live := g.Hostiles[:0]
	for _, h := range g.Hostiles {
		if h.Alive {
			live = append(live, h)
			continue
		}
		g.kills++
		g.dispatcher.Dispatch(event.Event{Type: event.HostileKilled})
	}
	g.Hostiles = live
}

func (g *Game) endWave() {
	snap := g.Spawner.Snapshot(0, g.now, g.Player)
	g.wavesCleared++
	g.dispatcher.Dispatch(event.Event{Type: event.WaveEnded, Data: event.WavePayload{
		Wave:          snap.Wave,
		PlayerName:    g.Player.Name,
		PlayerHealth:  snap.PlayerHealth,
		PlayerStamina: snap.PlayerStamina,
		Spawned:       snap.Spawned,
		Remaining:     snap.Remaining,
		Duration:      snap.Duration,
		SkillUsage:    snap.SkillUsage,
	}})
	g.startWave(g.Spawner.Wave() + 1)
}

func (g *Game) finish() {
	g.over = true
	g.dispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: event.SessionPayload{
		PlayerName:    g.Player.Name,
		WavesCleared:  g.wavesCleared,
		HostileKills:  g.kills,
		Duration:      g.now,
		PlayerHealth:  g.Player.Health,
		PlayerStamina: g.Player.Stamina,
	}})
	g.log.Info("session over",
		zap.String("player", g.Player.Name),
		zap.Int("waves", g.wavesCleared),
		zap.Int("kills", g.kills),
	)
}
