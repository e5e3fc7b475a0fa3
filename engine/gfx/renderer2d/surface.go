package renderer2d

import (
	"github.com/hubastard/xui/engine/colors"
	"github.com/hubastard/xui/engine/text"
	"github.com/hubastard/xui/engine/ui"
)

// Surface replays ui commands as quads. Text is drawn from Atlas, which
// must have been uploaded as AtlasTex.
type Surface struct {
	R        *Renderer2D
	Atlas    *text.Atlas
	AtlasTex Texture
	W, H     int

	icons []ui.Rect
}

var _ ui.Surface = (*Surface)(nil)

func (s *Surface) Bounds() ui.Rect { return ui.Rect{W: s.W, H: s.H} }

func (s *Surface) SetClip(r ui.Rect) { s.R.SetClip(r) }

func (s *Surface) FillRect(r ui.Rect, c colors.Color) { s.R.DrawRect(r, c) }

// DrawText ignores f: glyph placement comes from the atlas, which is
// baked from the same face the context measures with.
func (s *Surface) DrawText(_ ui.Font, str string, x, y int, c colors.Color) {
	if s.Atlas == nil {
		return
	}
	s.Atlas.Layout(str, float32(x), float32(y), func(g text.Glyph, gx, gy float32) {
		s.R.Submit(Quad{
			X: gx, Y: gy, W: float32(g.W), H: float32(g.H),
			Color: c, Tex: s.AtlasTex,
			UV: [4]float32{g.U0, g.V0, g.U1, g.V1},
		})
	})
}

func (s *Surface) DrawIcon(icon ui.Icon, r ui.Rect, c colors.Color) {
	s.icons = IconRects(s.icons[:0], icon, r)
	for _, ir := range s.icons {
		s.R.DrawRect(ir, c)
	}
}
