// internal/ui/skill_slot.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-incantato/internal/config"
	"go-incantato/internal/skill"
)

// SkillSlot draws one equipped skill box with its hotkey and cooldown
// shade.
type SkillSlot struct {
	X, Y, Size float64
	Index      int
	Font       font.Face
}

func NewSkillSlot(x, y, size float64, index int, face font.Face) *SkillSlot {
	return &SkillSlot{X: x, Y: y, Size: size, Index: index, Font: face}
}

func (s *SkillSlot) Draw(screen *ebiten.Image, sk *skill.Skill, now float64) {
	sz := float32(s.Size)
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), sz, sz, config.SkillBoxBG, true)
	vector.StrokeRect(screen, float32(s.X), float32(s.Y), sz, sz, 2, sk.Def.Color, true)

	// hotkey in the corner
	text.Draw(screen, fmt.Sprintf("%d", s.Index+1), s.Font, int(s.X)+4, int(s.Y)+14, config.TextLightColor)

	// cooldown shade rises from the bottom as the skill recovers
	if rem := sk.CooldownRemaining(now); rem > 0 && sk.Def.Cooldown > 0 {
		frac := rem / sk.Def.Cooldown
		h := float32(s.Size * frac)
		vector.DrawFilledRect(screen, float32(s.X), float32(s.Y)+sz-h, sz, h, config.CooldownOverlay, true)
		text.Draw(screen, fmt.Sprintf("%.1f", rem), s.Font, int(s.X)+8, int(s.Y+s.Size/2)+6, color.RGBA{255, 255, 255, 255})
	}
}
