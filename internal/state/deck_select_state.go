// internal/state/deck_select_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-incantato/internal/config"
	"go-incantato/internal/deck"
	"go-incantato/internal/geom"
	"go-incantato/internal/input"
	"go-incantato/internal/skill"
	"go-incantato/internal/ui"
)

// DeckSelectState lets the player pick exactly four skills from the
// catalog before a session starts.
type DeckSelectState struct {
	sm  *Machine
	ctx *Context

	cells    []geom.Rect
	selected map[int]bool
	startBtn *ui.Button
}

func NewDeckSelectState(sm *Machine, ctx *Context) *DeckSelectState {
	s := &DeckSelectState{
		sm:       sm,
		ctx:      ctx,
		selected: make(map[int]bool),
	}

	const (
		cols   = 5
		cellW  = 220.0
		cellH  = 96.0
		gap    = 16.0
		startY = 140.0
	)
	total := len(ctx.Library.All())
	gridW := cols*cellW + (cols-1)*gap
	originX := (config.ScreenWidth - gridW) / 2
	for i := 0; i < total; i++ {
		col := i % cols
		row := i / cols
		x := originX + float64(col)*(cellW+gap)
		y := startY + float64(row)*(cellH+gap)
		s.cells = append(s.cells, geom.Rect{MinX: x, MinY: y, MaxX: x + cellW, MaxY: y + cellH})
	}

	cx := float64(config.ScreenWidth) / 2
	s.startBtn = ui.NewButton(geom.Rect{MinX: cx - 140, MinY: 620, MaxX: cx + 140, MaxY: 676}, "Begin", ctx.Fonts.Menu)
	return s
}

func (s *DeckSelectState) Enter() {
	for k := range s.selected {
		delete(s.selected, k)
	}
}

func (s *DeckSelectState) Exit() {}

func (s *DeckSelectState) count() int { return len(s.selected) }

func (s *DeckSelectState) Update(deltaTime float64) {
	in := input.Poll()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NameEntryID)
		return
	}

	if in.Click {
		for i, cell := range s.cells {
			if !cell.Contains(in.Aim) {
				continue
			}
			if s.selected[i] {
				delete(s.selected, i)
			} else if s.count() < deck.SlotCount {
				s.selected[i] = true
			}
			break
		}
	}

	ready := s.count() == deck.SlotCount
	if ready && (s.startBtn.IsClicked(in.Aim, in.Click) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		s.ctx.Selected = s.picked()
		s.sm.SetState(PlayingID)
	}
}

// picked returns the chosen definitions in catalog order.
func (s *DeckSelectState) picked() []*skill.Definition {
	all := s.ctx.Library.All()
	out := make([]*skill.Definition, 0, deck.SlotCount)
	for i, def := range all {
		if s.selected[i] {
			out = append(out, def)
		}
	}
	return out
}

func (s *DeckSelectState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuColor)

	header := fmt.Sprintf("Choose your deck  (%d/%d)", s.count(), deck.SlotCount)
	hb := text.BoundString(s.ctx.Fonts.Menu, header)
	text.Draw(screen, header, s.ctx.Fonts.Menu, (config.ScreenWidth-hb.Dx())/2, 90, config.TextLightColor)

	all := s.ctx.Library.All()
	for i, cell := range s.cells {
		if i >= len(all) {
			break
		}
		def := all[i]
		w := float32(cell.MaxX - cell.MinX)
		h := float32(cell.MaxY - cell.MinY)

		vector.DrawFilledRect(screen, float32(cell.MinX), float32(cell.MinY), w, h, config.PanelColor, true)
		stroke := config.PanelStroke
		width := float32(1.5)
		if s.selected[i] {
			stroke = def.Color
			width = 3
		}
		vector.StrokeRect(screen, float32(cell.MinX), float32(cell.MinY), w, h, width, stroke, true)

		text.Draw(screen, def.Name, s.ctx.Fonts.UI, int(cell.MinX)+10, int(cell.MinY)+24, def.Color)
		text.Draw(screen, def.Element, s.ctx.Fonts.UI, int(cell.MinX)+10, int(cell.MinY)+46, config.TextDimColor)
		text.Draw(screen, def.Type.String(), s.ctx.Fonts.UI, int(cell.MinX)+10, int(cell.MinY)+68, config.TextDimColor)
		text.Draw(screen, fmt.Sprintf("CD %.1fs", def.Cooldown), s.ctx.Fonts.UI, int(cell.MinX)+10, int(cell.MinY)+90, config.TextDimColor)
	}

	if s.count() == deck.SlotCount {
		mx, my := ebiten.CursorPosition()
		s.startBtn.Draw(screen, geom.Vec2{X: float64(mx), Y: float64(my)})
	}
}
