// internal/state/stats_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"

	"go-incantato/internal/config"
	"go-incantato/internal/stats"
)

const statsRows = 12

// StatsState показывает последние сыгранные сессии из CSV.
type StatsState struct {
	sm  *Machine
	ctx *Context

	sessions []stats.SessionRow
	loadErr  error
}

func NewStatsState(sm *Machine, ctx *Context) *StatsState {
	return &StatsState{sm: sm, ctx: ctx}
}

func (s *StatsState) Enter() {
	s.sessions, s.loadErr = s.ctx.Collector.RecentSessions(statsRows)
	if s.loadErr != nil {
		s.ctx.Log.Error("failed to load session history", zap.Error(s.loadErr))
	}
}

func (s *StatsState) Exit() {}

func (s *StatsState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(MenuID)
	}
}

func (s *StatsState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuColor)

	header := "Recent sessions"
	hb := text.BoundString(s.ctx.Fonts.Menu, header)
	text.Draw(screen, header, s.ctx.Fonts.Menu, (config.ScreenWidth-hb.Dx())/2, 100, config.TextLightColor)

	switch {
	case s.loadErr != nil:
		text.Draw(screen, "Statistics are unavailable.", s.ctx.Fonts.UI, 100, 180, config.TextDimColor)
	case len(s.sessions) == 0:
		text.Draw(screen, "No games recorded yet.", s.ctx.Fonts.UI, 100, 180, config.TextDimColor)
	default:
		text.Draw(screen, "player            waves    kills    time", s.ctx.Fonts.UI, 100, 160, config.TextDimColor)
		for i, row := range s.sessions {
			line := fmt.Sprintf("%-16s  %5d    %5d    %6.1fs", row.Player, row.WavesCleared, row.Kills, row.Duration)
			text.Draw(screen, line, s.ctx.Fonts.UI, 100, 190+i*26, config.TextLightColor)
		}
	}

	hint := "Esc to return"
	hintB := text.BoundString(s.ctx.Fonts.UI, hint)
	text.Draw(screen, hint, s.ctx.Fonts.UI, (config.ScreenWidth-hintB.Dx())/2, config.ScreenHeight-60, config.TextDimColor)
}
