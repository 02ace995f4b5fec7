// internal/defs/defaults.go
package defs

// defaultCatalog ships with the binary so the game runs without a data
// directory. The on-disk catalog at PathsConfig.Skills replaces it.
var defaultCatalog = []SkillDefinition{
	{
		Name: "Ember Bolt", Element: "FIRE", Type: "PROJECTILE",
		Description: "A searing bolt that bursts on impact.",
		Damage:      18, Speed: 420, Duration: 2.5, Cooldown: 1.2,
		ExplosionRadius: 48, ExplosionDamage: 10,
	},
	{
		Name: "Tidal Lance", Element: "WATER", Type: "PROJECTILE",
		Description: "A piercing jet of pressurized water.",
		Damage:      26, Speed: 560, Duration: 2.0, Cooldown: 2.0,
		ExplosionRadius: 32, ExplosionDamage: 8,
	},
	{
		Name: "Bramble Guard", Element: "WOOD", Type: "SUMMON",
		Description: "A thorned guardian that harries nearby foes.",
		Damage:      9, Speed: 75, Radius: 220, Duration: 18, Cooldown: 6,
	},
	{
		Name: "Gale Burst", Element: "WIND", Type: "AOE",
		Description: "A sudden shockwave around the target point.",
		Damage:      22, Radius: 90, Duration: 0.5, Cooldown: 3.5,
	},
	{
		Name: "Stone Upheaval", Element: "ROCK", Type: "AOE",
		Description: "The ground erupts, crushing everything close by.",
		Damage:      34, Radius: 70, Duration: 0.6, Cooldown: 5,
	},
	{
		Name: "Crescent Cut", Element: "ICE", Type: "SLASH",
		Description: "A frigid arc carved in front of the caster.",
		Damage:      24, Radius: 110, Cooldown: 1.6,
	},
	{
		Name: "Umbral Rend", Element: "SHADOW", Type: "SLASH",
		Description: "Shadows tear through foes ahead.",
		Damage:      30, Radius: 95, Cooldown: 2.2, StaminaCost: 10,
	},
	{
		Name: "Arc Lash", Element: "THUNDER", Type: "CHAIN",
		Description: "Lightning leaps between clustered enemies.",
		Damage:      16, ChainRange: 160, MaxTargets: 4, Cooldown: 4,
	},
	{
		Name: "Resonant Echo", Element: "SOUND", Type: "CHAIN",
		Description: "A shattering note that rebounds to nearby foes.",
		Damage:      12, ChainRange: 200, MaxTargets: 6, Cooldown: 5.5,
	},
	{
		Name: "Verdant Mend", Element: "LIGHT", Type: "HEAL",
		Description: "Soothing light knits wounds closed.",
		HealAmount:  28, Radius: 140, HealSummons: true, Cooldown: 8, StaminaCost: 25,
	},
}
