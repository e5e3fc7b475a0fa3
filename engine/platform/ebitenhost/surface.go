package ebitenhost

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hubastard/xui/engine/colors"
	"github.com/hubastard/xui/engine/gfx/renderer2d"
	"github.com/hubastard/xui/engine/ui"
)

// surface draws commands onto an ebiten image. Clipping is a SubImage of
// the screen, which keeps screen coordinates.
type surface struct {
	screen *ebiten.Image
	dst    *ebiten.Image
	font   *Font
	icons  []ui.Rect
}

var _ ui.Surface = (*surface)(nil)

func (s *surface) Bounds() ui.Rect {
	b := s.screen.Bounds()
	return ui.Rect{X: b.Min.X, Y: b.Min.Y, W: b.Dx(), H: b.Dy()}
}

func (s *surface) SetClip(r ui.Rect) {
	s.dst = s.screen.SubImage(image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)).(*ebiten.Image)
}

func (s *surface) FillRect(r ui.Rect, c colors.Color) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *surface) DrawText(_ ui.Font, str string, x, y int, c colors.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = float64(s.font.lh)
	text.Draw(s.dst, str, s.font.face, op)
}

func (s *surface) DrawIcon(icon ui.Icon, r ui.Rect, c colors.Color) {
	s.icons = renderer2d.IconRects(s.icons[:0], icon, r)
	for _, ir := range s.icons {
		s.FillRect(ir, c)
	}
}
