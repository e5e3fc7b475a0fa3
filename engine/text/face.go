// Package text provides font metrics for the ui package and glyph atlases
// for the GPU backends.
package text

import (
	"fmt"
	"unicode/utf8"

	"github.com/hubastard/xui/engine/ui"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	_ ui.Font = Fixed{}
	_ ui.Font = (*Face)(nil)
)

// Fixed reports metrics for a monospaced bitmap font. Zero fields fall
// back to 8x16.
type Fixed struct {
	Advance int
	Height  int
}

func (f Fixed) TextWidth(s string) int {
	adv := f.Advance
	if adv <= 0 {
		adv = 8
	}
	return adv * utf8.RuneCountInString(s)
}

func (f Fixed) TextHeight() int {
	if f.Height <= 0 {
		return 16
	}
	return f.Height
}

// Face is a TrueType face measured in whole pixels.
type Face struct {
	face   font.Face
	size   float64
	ascent int
	height int
}

// NewFace parses ttf and rasterizes it at sizePx (72 DPI, so points are
// pixels).
func NewFace(ttf []byte, sizePx float64) (*Face, error) {
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: sizePx, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	m := face.Metrics()
	return &Face{
		face:   face,
		size:   sizePx,
		ascent: m.Ascent.Ceil(),
		height: m.Height.Ceil(),
	}, nil
}

// Default returns the bundled Go Regular face.
func Default(sizePx float64) (*Face, error) {
	return NewFace(goregular.TTF, sizePx)
}

func (f *Face) TextWidth(s string) int { return font.MeasureString(f.face, s).Ceil() }
func (f *Face) TextHeight() int        { return f.height }

// Ascent is the distance from the top of a line to its baseline.
func (f *Face) Ascent() int { return f.ascent }

func (f *Face) Size() float64 { return f.size }

// Face exposes the underlying face for rasterizers.
func (f *Face) Face() font.Face { return f.face }

func (f *Face) Close() error {
	if f == nil || f.face == nil {
		return nil
	}
	err := f.face.Close()
	f.face = nil
	return err
}
