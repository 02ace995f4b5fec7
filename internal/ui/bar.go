// internal/ui/bar.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-incantato/internal/utils"
)

// Bar — горизонтальный индикатор (здоровье, стамина).
type Bar struct {
	X, Y, W, H float64
	BgColor    color.RGBA
	FillColor  color.RGBA
}

func NewBar(x, y, w, h float64, bg, fill color.RGBA) *Bar {
	return &Bar{X: x, Y: y, W: w, H: h, BgColor: bg, FillColor: fill}
}

// Draw renders the bar filled to value/max.
func (b *Bar) Draw(screen *ebiten.Image, value, max float64) {
	frac := 0.0
	if max > 0 {
		frac = utils.Clamp(value/max, 0, 1)
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), b.BgColor, true)
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W*frac), float32(b.H), b.FillColor, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, color.RGBA{20, 20, 20, 255}, true)
}

// DrawHealthBar renders a floating bar at an arbitrary position, used
// above summons and hostiles.
func DrawHealthBar(screen *ebiten.Image, x, y, w float64, value, max float64, fill color.RGBA) {
	frac := 0.0
	if max > 0 {
		frac = utils.Clamp(value/max, 0, 1)
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 4, color.RGBA{60, 60, 60, 220}, true)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*frac), 4, fill, true)
}
