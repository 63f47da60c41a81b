// internal/ui/fonts.go
package ui

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontCache owns the font faces used by the UI, one per pixel size.
// It is created at startup and closed on shutdown.
type FontCache struct {
	font  *opentype.Font
	faces map[int]font.Face
}

func NewFontCache() (*FontCache, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse builtin font")
	}
	return &FontCache{
		font:  tt,
		faces: make(map[int]font.Face),
	}, nil
}

// Face returns the face for size, creating it on first use. If the face
// cannot be built the fixed bitmap font is returned instead.
func (c *FontCache) Face(size int) font.Face {
	if face, ok := c.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Warn().Err(err).Int("size", size).Msg("Falling back to bitmap font")
		return basicfont.Face7x13
	}
	c.faces[size] = face
	return face
}

// Len reports how many faces are cached.
func (c *FontCache) Len() int {
	return len(c.faces)
}

// Close releases every cached face.
func (c *FontCache) Close() error {
	for size, face := range c.faces {
		if err := face.Close(); err != nil {
			return eris.Wrapf(err, "failed to close face of size %d", size)
		}
		delete(c.faces, size)
	}
	return nil
}
