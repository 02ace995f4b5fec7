// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-incantato/internal/config"
	"go-incantato/internal/geom"
	"go-incantato/internal/input"
	"go-incantato/internal/ui"
)

// MenuState — главное меню
type MenuState struct {
	sm  *Machine
	ctx *Context

	startBtn *ui.Button
	statsBtn *ui.Button
	quitBtn  *ui.Button
}

func NewMenuState(sm *Machine, ctx *Context) *MenuState {
	cx := float64(config.ScreenWidth) / 2
	btn := func(y float64, label string) *ui.Button {
		return ui.NewButton(geom.Rect{MinX: cx - 140, MinY: y, MaxX: cx + 140, MaxY: y + 56}, label, ctx.Fonts.Menu)
	}
	return &MenuState{
		sm:       sm,
		ctx:      ctx,
		startBtn: btn(300, "Start"),
		statsBtn: btn(380, "Statistics"),
		quitBtn:  btn(460, "Quit"),
	}
}

func (m *MenuState) Enter() {}
func (m *MenuState) Exit()  {}

func (m *MenuState) Update(deltaTime float64) {
	in := input.Poll()

	switch {
	case m.startBtn.IsClicked(in.Aim, in.Click) || inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		m.sm.SetState(NameEntryID)
	case m.statsBtn.IsClicked(in.Aim, in.Click):
		m.sm.SetState(StatsID)
	case m.quitBtn.IsClicked(in.Aim, in.Click) || in.Pause:
		m.sm.RequestQuit()
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuColor)
	title := "INCANTATO"
	bounds := text.BoundString(m.ctx.Fonts.Title, title)
	text.Draw(screen, title, m.ctx.Fonts.Title, (config.ScreenWidth-bounds.Dx())/2, 180, config.TextLightColor)

	mx, my := ebiten.CursorPosition()
	mouse := geom.Vec2{X: float64(mx), Y: float64(my)}
	m.startBtn.Draw(screen, mouse)
	m.statsBtn.Draw(screen, mouse)
	m.quitBtn.Draw(screen, mouse)
}
