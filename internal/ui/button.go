// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-incantato/internal/geom"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       geom.Rect
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Font       font.Face
}

// NewButton создает новую кнопку.
func NewButton(rect geom.Rect, label string, face font.Face) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.RGBA{240, 240, 240, 255},
		BgColor:    color.RGBA{60, 60, 90, 255},
		HoverColor: color.RGBA{90, 90, 130, 255},
		Font:       face,
	}
}

// Contains проверяет попадание точки в кнопку.
func (b *Button) Contains(p geom.Vec2) bool {
	return b.Rect.Contains(p)
}

// IsClicked проверяет, был ли сделан клик по кнопке.
func (b *Button) IsClicked(mousePos geom.Vec2, clicked bool) bool {
	return clicked && b.Contains(mousePos)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, mousePos geom.Vec2) {
	bg := b.BgColor
	if b.Contains(mousePos) {
		bg = b.HoverColor
	}
	w := float32(b.Rect.MaxX - b.Rect.MinX)
	h := float32(b.Rect.MaxY - b.Rect.MinY)
	vector.DrawFilledRect(screen, float32(b.Rect.MinX), float32(b.Rect.MinY), w, h, bg, true)
	vector.StrokeRect(screen, float32(b.Rect.MinX), float32(b.Rect.MinY), w, h, 2, color.RGBA{150, 150, 180, 255}, true)

	bounds := text.BoundString(b.Font, b.Text)
	tx := int(b.Rect.MinX) + (int(w)-bounds.Dx())/2 - bounds.Min.X
	ty := int(b.Rect.MinY) + (int(h)-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, b.Font, tx, ty, b.TextColor)
}
