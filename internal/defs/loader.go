// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"

	"go.uber.org/zap"

	"go-incantato/internal/config"
	"go-incantato/internal/skill"
)

// Library holds the validated skill catalog in file order.
type Library struct {
	defs   []*skill.Definition
	byName map[string]*skill.Definition
}

// All returns the catalog in declaration order.
func (l *Library) All() []*skill.Definition { return l.defs }

// Get looks a definition up by name.
func (l *Library) Get(name string) (*skill.Definition, bool) {
	d, ok := l.byName[name]
	return d, ok
}

func (l *Library) Len() int { return len(l.defs) }

// LoadSkillDefinitions reads and validates the skill catalog. A missing
// file falls back to the built-in catalog; a malformed entry is a fatal
// configuration defect.
func LoadSkillDefinitions(path string, log *zap.Logger) (*Library, error) {
	raw := defaultCatalog
	if file, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(file, &raw); err != nil {
			return nil, fmt.Errorf("failed to unmarshal skill definitions: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read skill definitions file: %w", err)
	} else {
		log.Warn("skill catalog not found, using built-in defaults", zap.String("path", path))
	}

	lib, err := Build(raw)
	if err != nil {
		return nil, err
	}
	log.Info("loaded skill definitions", zap.Int("count", lib.Len()))
	return lib, nil
}

// Build validates raw catalog entries into a Library.
func Build(raw []SkillDefinition) (*Library, error) {
	lib := &Library{byName: make(map[string]*skill.Definition, len(raw))}
	for i, r := range raw {
		if r.Name == "" {
			return nil, fmt.Errorf("skill %d: missing name", i)
		}
		if _, dup := lib.byName[r.Name]; dup {
			return nil, fmt.Errorf("skill %q: duplicate name", r.Name)
		}
		typ, err := skill.ParseType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("skill %q: %w", r.Name, err)
		}
		if r.Cooldown < 0 {
			return nil, fmt.Errorf("skill %q: negative cooldown", r.Name)
		}

		c, ok := config.ElementColors[r.Element]
		if !ok {
			c = color.RGBA{255, 255, 255, 255}
		}
		def := &skill.Definition{
			Name:            r.Name,
			Element:         r.Element,
			Type:            typ,
			Description:     r.Description,
			Color:           c,
			Damage:          r.Damage,
			Speed:           r.Speed,
			Radius:          r.Radius,
			Duration:        r.Duration,
			Cooldown:        r.Cooldown,
			StaminaCost:     r.StaminaCost,
			ExplosionRadius: r.ExplosionRadius,
			ExplosionDamage: r.ExplosionDamage,
			ChainRange:      r.ChainRange,
			MaxTargets:      r.MaxTargets,
			HealAmount:      r.HealAmount,
			HealSummons:     r.HealSummons,
		}
		lib.defs = append(lib.defs, def)
		lib.byName[def.Name] = def
	}
	return lib, nil
}
