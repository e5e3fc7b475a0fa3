// Package soft rasterizes ui command lists on the CPU into an
// *image.RGBA.
package soft

import (
	"image"
	"image/draw"

	"github.com/hubastard/xui/engine/colors"
	"github.com/hubastard/xui/engine/gfx/renderer2d"
	"github.com/hubastard/xui/engine/ui"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FaceSource is a ui.Font that can also hand out a rasterizable face,
// such as *text.Face.
type FaceSource interface {
	ui.Font
	Face() font.Face
	Ascent() int
}

// Canvas implements ui.Surface. Text drawn with a font that is not a
// FaceSource is rendered as filled boxes of the measured extent.
type Canvas struct {
	Img   *image.RGBA
	clip  image.Rectangle
	icons []ui.Rect
}

var _ ui.Surface = (*Canvas)(nil)

func NewCanvas(w, h int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &Canvas{Img: img, clip: img.Bounds()}
}

// Clear fills the whole image, ignoring the clip.
func (c *Canvas) Clear(col colors.Color) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) Bounds() ui.Rect {
	b := c.Img.Bounds()
	return ui.Rect{X: b.Min.X, Y: b.Min.Y, W: b.Dx(), H: b.Dy()}
}

func (c *Canvas) SetClip(r ui.Rect) {
	c.clip = toRect(r).Intersect(c.Img.Bounds())
}

func (c *Canvas) FillRect(r ui.Rect, col colors.Color) {
	dr := toRect(r).Intersect(c.clip)
	if dr.Empty() {
		return
	}
	draw.Draw(c.Img, dr, image.NewUniform(col), image.Point{}, draw.Over)
}

func (c *Canvas) DrawText(f ui.Font, s string, x, y int, col colors.Color) {
	fs, ok := f.(FaceSource)
	if !ok {
		c.FillRect(ui.Rect{X: x, Y: y, W: f.TextWidth(s), H: f.TextHeight()}, col)
		return
	}
	d := &font.Drawer{
		Dst:  clipped{c.Img, c.clip},
		Src:  image.NewUniform(col),
		Face: fs.Face(),
		Dot:  fixed.P(x, y+fs.Ascent()),
	}
	d.DrawString(s)
}

func (c *Canvas) DrawIcon(icon ui.Icon, r ui.Rect, col colors.Color) {
	c.icons = renderer2d.IconRects(c.icons[:0], icon, r)
	for _, ir := range c.icons {
		c.FillRect(ir, col)
	}
}

func toRect(r ui.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// clipped limits a draw target to a sub-rectangle.
type clipped struct {
	*image.RGBA
	clip image.Rectangle
}

func (c clipped) Bounds() image.Rectangle { return c.RGBA.Bounds().Intersect(c.clip) }
