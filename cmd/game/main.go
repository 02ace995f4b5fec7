// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"go-incantato/internal/app"
	"go-incantato/internal/config"
)

func main() {
	configPath := flag.String("config", "data/config.yaml", "path to the tuning config")
	skillsPath := flag.String("skills", "", "path to the skill catalog (defaults to the config value)")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 for time-based")
	pprofAddr := flag.String("pprof", "localhost:6060", "pprof listen address, empty to disable")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof listening", zap.String("addr", *pprofAddr))
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				logger.Warn("pprof server stopped", zap.Error(err))
			}
		}()
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
	}
	catalog := *skillsPath
	if catalog == "" {
		catalog = cfg.Paths.Skills
	}

	game, err := app.New(cfg, logger, app.Options{SkillsPath: catalog, Seed: *seed})
	if err != nil {
		logger.Fatal("failed to assemble game", zap.Error(err))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Incantato")
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop exited", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
