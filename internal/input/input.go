// Package input turns raw device state into the discrete per-frame
// commands the simulation consumes. The simulation never touches the
// device layer directly.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-incantato/internal/geom"
)

// Frame is one frame's worth of decoded input.
type Frame struct {
	Move   geom.Vec2 // unnormalized movement intent
	Aim    geom.Vec2 // pointer position in screen space
	Sprint bool
	Dash   bool
	Pause  bool
	Click  bool
	// SkillPressed is the deck slot pressed this frame, -1 for none.
	SkillPressed int
}

var skillKeys = [...]ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// Poll reads the devices once and returns the decoded frame.
func Poll() Frame {
	f := Frame{SkillPressed: -1}

	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		f.Move.Y--
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		f.Move.Y++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		f.Move.X--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		f.Move.X++
	}

	mx, my := ebiten.CursorPosition()
	f.Aim = geom.Vec2{X: float64(mx), Y: float64(my)}

	f.Sprint = ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	f.Dash = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	f.Pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	f.Click = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	for i, key := range skillKeys {
		if inpututil.IsKeyJustPressed(key) {
			f.SkillPressed = i
			break
		}
	}
	return f
}
