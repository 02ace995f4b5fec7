// Package render draws the simulation. It reads entity and effect state
// and never mutates it; the simulation stays pixel-free.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-incantato/internal/config"
	"go-incantato/internal/deck"
	"go-incantato/internal/effect"
	"go-incantato/internal/entity"
	"go-incantato/internal/geom"
	"go-incantato/internal/ui"
	"go-incantato/internal/utils"
)

// Renderer draws one combat frame in world space shifted by the camera.
type Renderer struct {
	fillImg *ebiten.Image
}

func NewRenderer() *Renderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &Renderer{fillImg: fillImg}
}

// Draw renders the whole scene: effects under bodies, bodies under bars.
func (r *Renderer) Draw(screen *ebiten.Image, player *entity.Player, hostiles []*entity.Hostile, d *deck.Deck) {
	cam := &player.Camera
	screen.Fill(config.BackgroundColor)

	for _, fx := range d.Effects() {
		r.drawEffect(screen, cam, fx)
	}

	for _, h := range hostiles {
		if !h.Alive {
			continue
		}
		p := cam.Offset(h.Pos)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(h.Radius), h.Color, true)
		ui.DrawHealthBar(screen, p.X-h.Radius, p.Y-h.Radius-10, h.Radius*2, h.Health, h.MaxHealth, config.HPBarFill)
	}

	for _, s := range d.Summons() {
		if !s.Alive {
			continue
		}
		p := cam.Offset(s.Pos)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(s.Radius), s.Color, true)
		ui.DrawHealthBar(screen, p.X-20, p.Y-s.Radius-10, 40, s.Health, s.MaxHealth, config.HPBarFill)
	}

	for _, pr := range d.Projectiles() {
		if !pr.Alive {
			continue
		}
		p := cam.Offset(pr.Pos)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(pr.Radius), pr.Color, true)
	}

	if player.Alive {
		p := cam.Offset(player.Pos)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(player.Radius), player.Color, true)
		// facing tick
		tip := p.Add(player.Facing.Scale(player.Radius))
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(tip.X), float32(tip.Y), 2, color.RGBA{255, 255, 255, 255}, true)
	}
}

func (r *Renderer) drawEffect(screen *ebiten.Image, cam *entity.Camera, fx *effect.Effect) {
	if !fx.Active {
		return
	}
	p := cam.Offset(fx.Pos)
	c := fx.Color
	c.A = fx.Alpha()

	switch fx.Kind {
	case effect.KindExplosion:
		// the ring expands to full radius over the first half of its life
		radius := fx.Radius * utils.Clamp(fx.Progress()*2, 0, 1)
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(radius), 3, c, true)
	case effect.KindHeal:
		vector.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(fx.Radius), 2, c, true)
		vector.StrokeLine(screen, float32(p.X-6), float32(p.Y), float32(p.X+6), float32(p.Y), 2, c, true)
		vector.StrokeLine(screen, float32(p.X), float32(p.Y-6), float32(p.X), float32(p.Y+6), 2, c, true)
	case effect.KindSlash:
		r.drawArc(screen, p, fx.Radius, fx.StartAngle, fx.SweepAngle, c)
	case effect.KindLink:
		e := cam.Offset(fx.End)
		vector.StrokeLine(screen, float32(p.X), float32(p.Y), float32(e.X), float32(e.Y), 2, c, true)
	case effect.KindAfterimage:
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(fx.Radius), c, true)
	}
}

// drawArc strokes a pie segment with a flattened vector path.
func (r *Renderer) drawArc(screen *ebiten.Image, center geom.Vec2, radius, start, sweep float64, c color.RGBA) {
	const steps = 16
	var path vector.Path
	path.MoveTo(float32(center.X), float32(center.Y))
	for i := 0; i <= steps; i++ {
		a := start + sweep*float64(i)/steps
		path.LineTo(float32(center.X+radius*math.Cos(a)), float32(center.Y+radius*math.Sin(a)))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255 * 0.5
	}
	screen.DrawTriangles(vs, is, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
