// internal/state/pause_overlay.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-incantato/internal/config"
)

// PauseOverlay затемняет бой и ждёт Esc (продолжить) или M (в меню).
// Симуляция стоит, пока оверлей активен; отрисовка продолжается.
type PauseOverlay struct {
	sm  *Machine
	ctx *Context
}

func NewPauseOverlay(sm *Machine, ctx *Context) *PauseOverlay {
	return &PauseOverlay{sm: sm, ctx: ctx}
}

func (p *PauseOverlay) Enter() {}
func (p *PauseOverlay) Exit()  {}

func (p *PauseOverlay) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.sm.ClearOverlay()
		p.sm.Resume()
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		p.sm.ClearOverlay()
		p.sm.Resume()
		p.sm.SetState(MenuID)
	}
}

func (p *PauseOverlay) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 140}, false)

	title := "PAUSED"
	tb := text.BoundString(p.ctx.Fonts.Title, title)
	text.Draw(screen, title, p.ctx.Fonts.Title, (config.ScreenWidth-tb.Dx())/2, 320, config.TextLightColor)

	hint := "Esc to resume, M for menu"
	hb := text.BoundString(p.ctx.Fonts.UI, hint)
	text.Draw(screen, hint, p.ctx.Fonts.UI, (config.ScreenWidth-hb.Dx())/2, 380, config.TextDimColor)
}
