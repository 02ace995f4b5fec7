// Package skill holds the catalog types and the activation engine for the
// six skill variants. Активация никогда не возвращает ошибку из-за
// отсутствия целей: пустое поле боя — нормальный исход.
package skill

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// ErrUnknownSkillType rejects a catalog entry whose type string matches no
// variant. It only surfaces while the library is being built.
var ErrUnknownSkillType = errors.New("unknown skill type")

// Type tags which of the six behaviors a definition activates.
type Type int

const (
	TypeProjectile Type = iota
	TypeSummon
	TypeAOE
	TypeSlash
	TypeChain
	TypeHeal
)

var typeNames = map[Type]string{
	TypeProjectile: "PROJECTILE",
	TypeSummon:     "SUMMON",
	TypeAOE:        "AOE",
	TypeSlash:      "SLASH",
	TypeChain:      "CHAIN",
	TypeHeal:       "HEAL",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType maps a catalog string to a Type. An unknown string is a
// configuration defect and must abort the load.
func ParseType(s string) (Type, error) {
	for t, name := range typeNames {
		if name == strings.ToUpper(s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSkillType, s)
}

// Definition is the immutable catalog entry a skill is built from.
// Spawned bodies keep a pointer back to their definition; they never copy
// or mutate it.
type Definition struct {
	Name        string
	Element     string
	Type        Type
	Description string
	Color       color.RGBA

	Damage      float64
	Speed       float64
	Radius      float64
	Duration    float64
	Cooldown    float64
	StaminaCost float64

	// projectile
	ExplosionRadius float64
	ExplosionDamage float64

	// chain
	ChainRange float64
	MaxTargets int

	// heal
	HealAmount  float64
	HealSummons bool
}

// Skill is an equipped definition plus its cooldown bookkeeping. Everything
// else on it is immutable.
type Skill struct {
	Def     *Definition
	lastUse float64
}

// NewSkill equips def. lastUse starts one full cooldown in the past so the
// skill is usable at game time zero.
func NewSkill(def *Definition) *Skill {
	return &Skill{Def: def, lastUse: -def.Cooldown}
}

// IsOffCooldown reports whether the skill may fire at game time now.
func (s *Skill) IsOffCooldown(now float64) bool {
	return now-s.lastUse >= s.Def.Cooldown
}

// TriggerCooldown stamps the activation time.
func (s *Skill) TriggerCooldown(now float64) {
	s.lastUse = now
}

// CooldownRemaining returns seconds until the skill is usable, zero when
// ready.
func (s *Skill) CooldownRemaining(now float64) float64 {
	rem := s.Def.Cooldown - (now - s.lastUse)
	if rem < 0 {
		return 0
	}
	return rem
}
