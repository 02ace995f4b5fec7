// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	MaxDeltaTime = 0.06

	SkillSlots = 4
)

// Config is the immutable numeric tuning for a whole session. It is built once
// at startup (defaults, optionally overridden from a YAML file) and passed by
// reference into the game; nothing mutates it afterwards.
type Config struct {
	Player PlayerConfig `yaml:"player"`
	Enemy  EnemyConfig  `yaml:"enemy"`
	Wave   WaveConfig   `yaml:"wave"`
	Combat CombatConfig `yaml:"combat"`
	Paths  PathsConfig  `yaml:"paths"`
}

type PlayerConfig struct {
	Radius          float64 `yaml:"radius"`
	MaxHealth       float64 `yaml:"max_health"`
	WalkSpeed       float64 `yaml:"walk_speed"`
	SprintSpeed     float64 `yaml:"sprint_speed"`
	MaxStamina      float64 `yaml:"max_stamina"`
	StaminaRegen    float64 `yaml:"stamina_regen"`
	SprintDrain     float64 `yaml:"sprint_drain"`
	DashCost        float64 `yaml:"dash_cost"`
	DashDistance    float64 `yaml:"dash_distance"`
	StaminaCooldown float64 `yaml:"stamina_cooldown"`
	SummonLimit     int     `yaml:"summon_limit"`
}

type EnemyConfig struct {
	Radius         float64 `yaml:"radius"`
	BaseHealth     float64 `yaml:"base_health"`
	BaseSpeed      float64 `yaml:"base_speed"`
	Damage         float64 `yaml:"damage"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	AttackRadius   float64 `yaml:"attack_radius"`
}

type WaveConfig struct {
	BaseCount        int     `yaml:"base_count"`
	CountPerWave     int     `yaml:"count_per_wave"`
	HealthMultiplier float64 `yaml:"health_multiplier"` // extra HP fraction per wave
	SpawnMargin      float64 `yaml:"spawn_margin"`
	MinSpawnDistance float64 `yaml:"min_spawn_distance"`
}

type CombatConfig struct {
	ProjectileRadius      float64 `yaml:"projectile_radius"`
	ProjectileSpawnOffset float64 `yaml:"projectile_spawn_offset"`
	SummonSpawnOffset     float64 `yaml:"summon_spawn_offset"`
	SummonRadius          float64 `yaml:"summon_radius"`
	SummonHealth          float64 `yaml:"summon_health"`
	SummonAttackCooldown  float64 `yaml:"summon_attack_cooldown"`
	SlashSweepAngle       float64 `yaml:"slash_sweep_angle"` // radians
	CastActionTime        float64 `yaml:"cast_action_time"`

	// effect lifetimes, seconds
	ExplosionEffectTime  float64 `yaml:"explosion_effect_time"`
	HealEffectTime       float64 `yaml:"heal_effect_time"`
	SlashEffectTime      float64 `yaml:"slash_effect_time"`
	LinkEffectTime       float64 `yaml:"link_effect_time"`
	AfterimageEffectTime float64 `yaml:"afterimage_effect_time"`
}

type PathsConfig struct {
	Skills   string `yaml:"skills"`
	GamesLog string `yaml:"games_log"`
	WavesLog string `yaml:"waves_log"`
	Font     string `yaml:"font"`
}

// Default returns the tuning the game ships with.
func Default() *Config {
	return &Config{
		Player: PlayerConfig{
			Radius:          21,
			MaxHealth:       100,
			WalkSpeed:       90,
			SprintSpeed:     180,
			MaxStamina:      100,
			StaminaRegen:    15,
			SprintDrain:     20,
			DashCost:        30,
			DashDistance:    128,
			StaminaCooldown: 2.5,
			SummonLimit:     5,
		},
		Enemy: EnemyConfig{
			Radius:         21,
			BaseHealth:     50,
			BaseSpeed:      105,
			Damage:         5,
			AttackCooldown: 1.25,
			AttackRadius:   96,
		},
		Wave: WaveConfig{
			BaseCount:        5,
			CountPerWave:     1,
			HealthMultiplier: 0.1,
			SpawnMargin:      20,
			MinSpawnDistance: 150,
		},
		Combat: CombatConfig{
			ProjectileRadius:      5,
			ProjectileSpawnOffset: 30,
			SummonSpawnOffset:     40,
			SummonRadius:          12,
			SummonHealth:          50,
			SummonAttackCooldown:  1.25,
			SlashSweepAngle:       1.0471975511965976, // 60 degrees
			CastActionTime:        0.3,
			ExplosionEffectTime:   0.3,
			HealEffectTime:        0.6,
			SlashEffectTime:       0.25,
			LinkEffectTime:        0.2,
			AfterimageEffectTime:  0.35,
		},
		Paths: PathsConfig{
			Skills:   "data/skills.json",
			GamesLog: "data/games.csv",
			WavesLog: "data/waves.csv",
			Font:     "assets/fonts/PixelifySans-Regular.ttf",
		},
	}
}

// Load reads a YAML override file on top of the defaults. A missing file is
// not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}
