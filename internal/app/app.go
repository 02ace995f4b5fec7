// Package app wires the services together and adapts the state machine to
// the ebiten run loop.
package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-incantato/internal/assets"
	"go-incantato/internal/audio"
	"go-incantato/internal/config"
	"go-incantato/internal/defs"
	"go-incantato/internal/event"
	"go-incantato/internal/state"
	"go-incantato/internal/stats"
	"go-incantato/internal/utils"
)

// App is the ebiten.Game implementation. It clamps wall-clock deltas so a
// stalled frame cannot teleport the simulation.
type App struct {
	machine        *state.Machine
	lastUpdateTime time.Time
}

// Options carries the startup knobs main parses from flags.
type Options struct {
	SkillsPath string
	Seed       int64
}

// New builds every service, registers the states and returns the runnable
// app.
func New(cfg *config.Config, log *zap.Logger, opts Options) (*App, error) {
	library, err := defs.LoadSkillDefinitions(opts.SkillsPath, log)
	if err != nil {
		return nil, err
	}

	dispatcher := event.NewDispatcher()

	collector := stats.NewCollector(cfg.Paths.GamesLog, cfg.Paths.WavesLog, log)
	dispatcher.Subscribe(event.WaveEnded, collector)
	dispatcher.Subscribe(event.PlayerDied, collector)

	sound := audio.NewManager(log)
	if err := sound.Initialize(); err == nil {
		dispatcher.Subscribe(event.SkillUsed, sound)
		dispatcher.Subscribe(event.HostileKilled, sound)
		dispatcher.Subscribe(event.WaveStarted, sound)
		dispatcher.Subscribe(event.PlayerDied, sound)
	}

	ctx := &state.Context{
		Cfg:        cfg,
		Log:        log,
		Dispatcher: dispatcher,
		Library:    library,
		Collector:  collector,
		Audio:      sound,
		Fonts:      assets.LoadFonts(cfg.Paths.Font, log),
		RNG:        utils.NewPRNGService(opts.Seed),
	}

	machine := state.NewMachine()
	machine.Register(state.MenuID, state.NewMenuState(machine, ctx))
	machine.Register(state.NameEntryID, state.NewNameEntryState(machine, ctx))
	machine.Register(state.DeckSelectionID, state.NewDeckSelectState(machine, ctx))
	machine.Register(state.PlayingID, state.NewPlayingState(machine, ctx))
	machine.Register(state.StatsID, state.NewStatsState(machine, ctx))
	machine.Register(state.PauseOverlayID, state.NewPauseOverlay(machine, ctx))
	machine.Register(state.GameOverOverlayID, state.NewGameOverOverlay(machine, ctx))
	machine.SetState(state.MenuID)

	return &App{machine: machine, lastUpdateTime: time.Now()}, nil
}

func (a *App) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.machine.Update(deltaTime)
	if a.machine.QuitRequested() {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	a.machine.Draw(screen)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
