// Package assets loads the font faces used across the UI. The caches are
// built at startup and shared read-only afterwards.
package assets

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the three faces the UI draws with.
type Fonts struct {
	Title font.Face
	Menu  font.Face
	UI    font.Face
}

// LoadFonts parses the TTF at path into the three sizes. A missing or
// unparsable font falls back to the builtin bitmap face so the game still
// comes up.
func LoadFonts(path string, log *zap.Logger) *Fonts {
	fallback := &Fonts{Title: basicfont.Face7x13, Menu: basicfont.Face7x13, UI: basicfont.Face7x13}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Warn("font file unavailable, using builtin face", zap.String("path", path), zap.Error(err))
		return fallback
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		log.Warn("font parse failed, using builtin face", zap.String("path", path), zap.Error(err))
		return fallback
	}

	title, err1 := newFace(tt, 48)
	menu, err2 := newFace(tt, 28)
	ui, err3 := newFace(tt, 18)
	for _, err := range []error{err1, err2, err3} {
		if err != nil {
			log.Warn("font face build failed, using builtin face", zap.Error(err))
			return fallback
		}
	}
	return &Fonts{Title: title, Menu: menu, UI: ui}
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build %v pt face: %w", size, err)
	}
	return face, nil
}
