package effect

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"go-incantato/internal/geom"
)

var white = color.RGBA{255, 255, 255, 255}

func TestEffectExpires(t *testing.T) {
	e := NewExplosion(geom.Vec2{X: 10, Y: 10}, 40, 0.3, white)
	require.True(t, e.Update(0.1))
	require.True(t, e.Active)
	require.False(t, e.Update(0.25), "past duration")
	require.False(t, e.Active)
	require.False(t, e.Update(0.1), "stays dead")
}

func TestHealDriftsUp(t *testing.T) {
	e := NewHeal(geom.Vec2{X: 0, Y: 100}, 0.6, white)
	e.Update(0.5)
	require.Less(t, e.Pos.Y, 100.0)
}

func TestProgressAndAlpha(t *testing.T) {
	e := NewSlash(geom.Vec2{}, 50, 0, 1, 0.25, white)
	require.Equal(t, 0.0, e.Progress())
	require.Equal(t, uint8(255), e.Alpha())

	e.Update(e.Duration / 2)
	require.InDelta(t, 0.5, e.Progress(), 1e-9)

	e.Update(e.Duration)
	require.Equal(t, 1.0, e.Progress())
	require.Equal(t, uint8(0), e.Alpha())
}

func TestLinkKeepsEndpoints(t *testing.T) {
	e := NewLink(geom.Vec2{X: 1, Y: 2}, geom.Vec2{X: 3, Y: 4}, 0.2, white)
	require.Equal(t, geom.Vec2{X: 1, Y: 2}, e.Pos)
	require.Equal(t, geom.Vec2{X: 3, Y: 4}, e.End)
	require.Equal(t, KindLink, e.Kind)
}
