package ebitenhost

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hubastard/xui/engine/ui"
	"golang.org/x/image/font/gofont/goregular"
)

// Font measures with the same face the surface draws with.
type Font struct {
	face *text.GoTextFace
	lh   int
}

var _ ui.Font = (*Font)(nil)

// LoadFont parses TrueType data at size pixels. Nil data selects the
// bundled Go Regular face.
func LoadFont(ttf []byte, size float64) (*Font, error) {
	if ttf == nil {
		ttf = goregular.TTF
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := &text.GoTextFace{Source: src, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: int(math.Ceil(m.HAscent + m.HDescent + m.HLineGap))}, nil
}

func (f *Font) TextWidth(s string) int { return int(math.Ceil(text.Advance(s, f.face))) }
func (f *Font) TextHeight() int        { return f.lh }

// Face returns the text/v2 face for drawing.
func (f *Font) Face() *text.GoTextFace { return f.face }
