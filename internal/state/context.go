// internal/state/context.go
package state

import (
	"go.uber.org/zap"

	"go-incantato/internal/assets"
	"go-incantato/internal/audio"
	"go-incantato/internal/config"
	"go-incantato/internal/defs"
	"go-incantato/internal/event"
	"go-incantato/internal/skill"
	"go-incantato/internal/stats"
	"go-incantato/internal/utils"
)

// Context is the explicit bundle of services and cross-state data shared
// by all registered states. There are no package-level singletons; each
// state receives this at construction.
type Context struct {
	Cfg        *config.Config
	Log        *zap.Logger
	Dispatcher *event.Dispatcher
	Library    *defs.Library
	Collector  *stats.Collector
	Audio      *audio.Manager
	Fonts      *assets.Fonts
	RNG        *utils.PRNGService

	// filled by NameEntry and DeckSelection before Playing starts
	PlayerName string
	Selected   []*skill.Definition

	// filled by the finished session for the game-over overlay
	LastSession event.SessionPayload
}
