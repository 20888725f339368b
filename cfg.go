package main

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const hudFontSize = 16

// LoadFont parses the embedded Go Regular face for HUD text.
func LoadFont(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	const dpi = 72
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	}), nil
}
