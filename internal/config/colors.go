// internal/config/colors.go
package config

import "image/color"

var (
	BackgroundColor = color.RGBA{200, 220, 255, 255}
	MenuColor       = color.RGBA{50, 50, 100, 255}
	PanelColor      = color.RGBA{30, 30, 60, 255}
	PanelStroke     = color.RGBA{100, 100, 150, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{150, 150, 150, 255}
	PlayerColor     = color.RGBA{0, 0, 255, 255}
	EnemyColor      = color.RGBA{200, 30, 30, 255}

	HPBarBG         = color.RGBA{60, 60, 60, 255}
	HPBarFill       = color.RGBA{50, 220, 50, 255}
	StaminaBarBG    = color.RGBA{60, 60, 60, 255}
	StaminaBarFill  = color.RGBA{220, 220, 0, 255}
	SkillBoxBG      = color.RGBA{40, 40, 40, 255}
	CooldownOverlay = color.RGBA{0, 0, 0, 128}
)

// ElementColors maps each element tag to its primary draw color. Unknown
// elements fall back to white at skill-load time.
var ElementColors = map[string]color.RGBA{
	"FIRE":    {255, 80, 0, 255},
	"WATER":   {0, 80, 255, 255},
	"ICE":     {135, 206, 235, 255},
	"WIND":    {200, 200, 200, 255},
	"WOOD":    {34, 139, 34, 255},
	"ROCK":    {139, 69, 19, 255},
	"THUNDER": {255, 215, 0, 255},
	"SHADOW":  {80, 0, 80, 255},
	"LIGHT":   {255, 223, 186, 255},
	"SOUND":   {138, 43, 226, 255},
}
