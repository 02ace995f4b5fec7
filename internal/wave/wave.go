// Package wave scales and spawns hostile batches and runs the per-frame
// collision pass between the player, summons, projectiles and hostiles.
package wave

import (
	"go-incantato/internal/config"
	"go-incantato/internal/deck"
	"go-incantato/internal/entity"
	"go-incantato/internal/geom"
	"go-incantato/internal/utils"
)

// Spawner computes per-wave hostile counts and strength and tracks the
// counters persisted at wave end.
type Spawner struct {
	cfg    *config.Config
	rng    *utils.PRNGService
	bounds geom.Rect

	wave       int
	spawned    int
	skillUsage map[string]int
	waveStart  float64
}

func NewSpawner(cfg *config.Config, rng *utils.PRNGService, bounds geom.Rect) *Spawner {
	return &Spawner{
		cfg:        cfg,
		rng:        rng,
		bounds:     bounds,
		skillUsage: make(map[string]int),
	}
}

// CountFor returns the hostile count for a wave. Monotonically
// non-decreasing in the wave number.
func (s *Spawner) CountFor(wave int) int {
	return s.cfg.Wave.BaseCount + s.cfg.Wave.CountPerWave*wave
}

// HealthFor returns per-hostile health for a wave, scaled up from the base.
func (s *Spawner) HealthFor(wave int) float64 {
	return s.cfg.Enemy.BaseHealth * (1 + float64(wave)*s.cfg.Wave.HealthMultiplier)
}

// SpawnWave instantiates wave's hostiles inside the playfield, each at
// least MinSpawnDistance away from the player, and resets the per-wave
// counters.
func (s *Spawner) SpawnWave(wave int, playerPos geom.Vec2, now float64) []*entity.Hostile {
	s.wave = wave
	s.skillUsage = make(map[string]int)
	s.waveStart = now

	count := s.CountFor(wave)
	health := s.HealthFor(wave)
	area := s.bounds.Shrink(s.cfg.Wave.SpawnMargin)

	hostiles := make([]*entity.Hostile, 0, count)
	for len(hostiles) < count {
		pos := geom.Vec2{
			X: s.rng.Range(area.MinX, area.MaxX),
			Y: s.rng.Range(area.MinY, area.MaxY),
		}
		if geom.Dist(pos, playerPos) < s.cfg.Wave.MinSpawnDistance {
			continue
		}
		hostiles = append(hostiles, entity.NewHostile(s.cfg, pos, health))
	}
	s.spawned = count
	return hostiles
}

// RecordSkillUse bumps the per-wave usage counter for name.
func (s *Spawner) RecordSkillUse(name string) {
	s.skillUsage[name]++
}

// Snapshot is the read-only wave state handed to the stats collector.
type Snapshot struct {
	Wave          int
	Spawned       int
	Remaining     int
	Duration      float64
	SkillUsage    map[string]int
	PlayerHealth  float64
	PlayerStamina float64
}

// Snapshot captures the current wave counters. The usage map is copied so
// the collector can hold it past the wave reset.
func (s *Spawner) Snapshot(remaining int, now float64, player *entity.Player) Snapshot {
	usage := make(map[string]int, len(s.skillUsage))
	for k, v := range s.skillUsage {
		usage[k] = v
	}
	return Snapshot{
		Wave:          s.wave,
		Spawned:       s.spawned,
		Remaining:     remaining,
		Duration:      now - s.waveStart,
		SkillUsage:    usage,
		PlayerHealth:  player.Health,
		PlayerStamina: player.Stamina,
	}
}

// Wave returns the current wave number.
func (s *Spawner) Wave() int { return s.wave }

// CheckCollisions runs the frame's contact pass: the first hostile
// overlapping a projectile detonates it, hostiles get pushed out of the
// player (the player never moves), and summons and hostiles shove each
// other apart symmetrically.
func CheckCollisions(player *entity.Player, d *deck.Deck, hostiles []*entity.Hostile) {
	for _, p := range d.Projectiles() {
		if p.Exploded() {
			continue
		}
		for _, h := range hostiles {
			if !h.Alive {
				continue
			}
			if geom.Dist(p.Pos, h.Pos) <= p.Radius+h.Radius {
				h.TakeDamage(p.Damage)
				if fx := p.Detonate(hostiles); fx != nil {
					d.AddEffect(fx)
				}
				break
			}
		}
	}

	for _, h := range hostiles {
		if !h.Alive {
			continue
		}
		if geom.Dist(player.Pos, h.Pos) < player.Radius+h.Radius {
			geom.ResolveOverlapPinned(player, h)
		}
		for _, sm := range d.Summons() {
			if !sm.Alive {
				continue
			}
			if geom.Dist(sm.Pos, h.Pos) < sm.Radius+h.Radius {
				geom.ResolveOverlap(sm, h)
			}
		}
	}
}
