// internal/defs/types.go
package defs

// SkillDefinition mirrors one entry of the skill catalog file.
type SkillDefinition struct {
	Name        string  `json:"name"`
	Element     string  `json:"element"`
	Type        string  `json:"type"`
	Description string  `json:"description,omitempty"`
	Damage      float64 `json:"damage,omitempty"`
	Speed       float64 `json:"speed,omitempty"`
	Radius      float64 `json:"radius,omitempty"`
	Duration    float64 `json:"duration,omitempty"`
	Cooldown    float64 `json:"cooldown"`
	StaminaCost float64 `json:"stamina_cost,omitempty"`

	ExplosionRadius float64 `json:"explosion_radius,omitempty"`
	ExplosionDamage float64 `json:"explosion_damage,omitempty"`

	ChainRange float64 `json:"chain_range,omitempty"`
	MaxTargets int     `json:"max_targets,omitempty"`

	HealAmount  float64 `json:"heal_amount,omitempty"`
	HealSummons bool    `json:"heal_summons,omitempty"`
}
