// internal/state/playing_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"

	"go-incantato/internal/config"
	"go-incantato/internal/event"
	"go-incantato/internal/game"
	"go-incantato/internal/input"
	"go-incantato/internal/render"
	"go-incantato/internal/ui"
)

// PlayingState — состояние боя. Владеет сессией и её отрисовкой.
type PlayingState struct {
	sm  *Machine
	ctx *Context

	session  *game.Game
	renderer *render.Renderer

	hpBar      *ui.Bar
	staminaBar *ui.Bar
	slots      []*ui.SkillSlot
}

func NewPlayingState(sm *Machine, ctx *Context) *PlayingState {
	s := &PlayingState{
		sm:         sm,
		ctx:        ctx,
		renderer:   render.NewRenderer(),
		hpBar:      ui.NewBar(20, 20, 240, 18, config.HPBarBG, config.HPBarFill),
		staminaBar: ui.NewBar(20, 44, 240, 12, config.StaminaBarBG, config.StaminaBarFill),
	}
	const slotSize = 56.0
	for i := 0; i < config.SkillSlots; i++ {
		x := float64(config.ScreenWidth)/2 - 2*slotSize - 12 + float64(i)*(slotSize+8)
		s.slots = append(s.slots, ui.NewSkillSlot(x, config.ScreenHeight-slotSize-16, slotSize, i, ctx.Fonts.UI))
	}
	return s
}

// Enter starts a fresh session with the selected deck. A failed assembly
// is a configuration defect surfaced before any frame runs.
func (s *PlayingState) Enter() {
	s.ctx.Collector.NewSession()
	session, err := game.New(s.ctx.Cfg, s.ctx.Log, s.ctx.Dispatcher, s.ctx.RNG, s.ctx.Selected, s.ctx.PlayerName)
	if err != nil {
		s.ctx.Log.Error("failed to start session", zap.Error(err))
		s.sm.SetState(MenuID)
		return
	}
	s.session = session
	s.sm.Resume()
	s.sm.ClearOverlay()
}

func (s *PlayingState) Exit() {
	s.session = nil
}

func (s *PlayingState) Update(deltaTime float64) {
	if s.session == nil {
		return
	}
	in := input.Poll()

	if in.Pause {
		s.sm.SetOverlay(PauseOverlayID)
		s.sm.Pause()
		return
	}

	s.session.Update(deltaTime, in)

	if s.session.Over() {
		s.ctx.LastSession = event.SessionPayload{
			PlayerName:    s.session.Player.Name,
			WavesCleared:  s.session.WavesCleared(),
			HostileKills:  s.session.Kills(),
			Duration:      s.session.Now(),
			PlayerHealth:  s.session.Player.Health,
			PlayerStamina: s.session.Player.Stamina,
		}
		s.sm.SetOverlay(GameOverOverlayID)
		s.sm.Pause()
	}
}

func (s *PlayingState) Draw(screen *ebiten.Image) {
	if s.session == nil {
		return
	}
	s.renderer.Draw(screen, s.session.Player, s.session.Hostiles, s.session.Deck)

	// HUD
	s.hpBar.Draw(screen, s.session.Player.Health, s.session.Player.MaxHealth)
	s.staminaBar.Draw(screen, s.session.Player.Stamina, s.session.Player.MaxStamina)
	for i, slot := range s.slots {
		slot.Draw(screen, s.session.Deck.Skill(i), s.session.Now())
	}

	waveLine := fmt.Sprintf("Wave %d   Hostiles %d   Kills %d",
		s.session.Spawner.Wave(), len(s.session.Hostiles), s.session.Kills())
	text.Draw(screen, waveLine, s.ctx.Fonts.UI, 20, 84, config.TextLightColor)
}
