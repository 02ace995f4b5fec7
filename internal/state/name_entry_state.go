// internal/state/name_entry_state.go
package state

import (
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-incantato/internal/config"
)

const maxNameLen = 15

// NameEntryState собирает имя игрока посимвольно.
type NameEntryState struct {
	sm  *Machine
	ctx *Context

	name  []rune
	runes []rune
	blink float64
}

func NewNameEntryState(sm *Machine, ctx *Context) *NameEntryState {
	return &NameEntryState{sm: sm, ctx: ctx}
}

func (s *NameEntryState) Enter() {
	s.name = s.name[:0]
	s.blink = 0
}

func (s *NameEntryState) Exit() {}

func (s *NameEntryState) Update(deltaTime float64) {
	s.blink += deltaTime

	s.runes = ebiten.AppendInputChars(s.runes[:0])
	for _, r := range s.runes {
		if len(s.name) >= maxNameLen {
			break
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '_' || r == '-' {
			s.name = append(s.name, r)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(s.name) > 0 {
		s.name = s.name[:len(s.name)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(MenuID)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		name := strings.TrimSpace(string(s.name))
		if name == "" {
			name = "Unknown"
		}
		s.ctx.PlayerName = name
		s.sm.SetState(DeckSelectionID)
	}
}

func (s *NameEntryState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuColor)

	prompt := "Enter your name"
	bounds := text.BoundString(s.ctx.Fonts.Menu, prompt)
	text.Draw(screen, prompt, s.ctx.Fonts.Menu, (config.ScreenWidth-bounds.Dx())/2, 260, config.TextLightColor)

	entry := string(s.name)
	if int(s.blink*2)%2 == 0 {
		entry += "_"
	}
	eb := text.BoundString(s.ctx.Fonts.Menu, entry)
	text.Draw(screen, entry, s.ctx.Fonts.Menu, (config.ScreenWidth-eb.Dx())/2, 340, config.TextLightColor)

	hint := "Enter to continue, Esc to go back"
	hb := text.BoundString(s.ctx.Fonts.UI, hint)
	text.Draw(screen, hint, s.ctx.Fonts.UI, (config.ScreenWidth-hb.Dx())/2, 420, config.TextDimColor)
}
