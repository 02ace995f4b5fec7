// internal/state/gameover_overlay.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-incantato/internal/config"
)

// GameOverOverlay показывает итог сессии поверх последнего кадра боя.
type GameOverOverlay struct {
	sm  *Machine
	ctx *Context
}

func NewGameOverOverlay(sm *Machine, ctx *Context) *GameOverOverlay {
	return &GameOverOverlay{sm: sm, ctx: ctx}
}

func (g *GameOverOverlay) Enter() {}
func (g *GameOverOverlay) Exit()  {}

func (g *GameOverOverlay) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.sm.ClearOverlay()
		g.sm.Resume()
		g.sm.SetState(StatsID)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.ClearOverlay()
		g.sm.Resume()
		g.sm.SetState(MenuID)
	}
}

func (g *GameOverOverlay) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{40, 0, 0, 170}, false)

	title := "GAME OVER"
	tb := text.BoundString(g.ctx.Fonts.Title, title)
	text.Draw(screen, title, g.ctx.Fonts.Title, (config.ScreenWidth-tb.Dx())/2, 280, config.TextLightColor)

	s := g.ctx.LastSession
	summary := fmt.Sprintf("%s survived %d waves, %d kills in %.1fs",
		s.PlayerName, s.WavesCleared, s.HostileKills, s.Duration)
	sb := text.BoundString(g.ctx.Fonts.Menu, summary)
	text.Draw(screen, summary, g.ctx.Fonts.Menu, (config.ScreenWidth-sb.Dx())/2, 350, config.TextLightColor)

	hint := "Enter for statistics, Esc for menu"
	hb := text.BoundString(g.ctx.Fonts.UI, hint)
	text.Draw(screen, hint, g.ctx.Fonts.UI, (config.ScreenWidth-hb.Dx())/2, 410, config.TextDimColor)
}
