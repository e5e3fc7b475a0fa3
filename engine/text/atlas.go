package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // baseline to glyph top
	W, H     int     // bitmap size
	U0, V0   float32 // UVs in atlas
	U1, V1   float32
}

// Atlas is a white-on-transparent glyph sheet ready for texture upload.
type Atlas struct {
	Image      *image.RGBA
	Glyphs     map[rune]Glyph
	Ascent     float32
	LineHeight float32
	face       font.Face
}

const (
	atlasPadding = 2
	minAtlasSize = 256
	maxAtlasSize = 4096
)

// Latin1 is the printable range the hosts bake by default.
func Latin1() []rune {
	runes := make([]rune, 0, 192)
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	for r := rune(160); r <= 255; r++ {
		runes = append(runes, r)
	}
	return runes
}

// BuildAtlas rasterizes runes from f into a square shelf-packed atlas,
// doubling the size until everything fits.
func BuildAtlas(f *Face, runes []rune) (*Atlas, error) {
	face := f.Face()

	type meas struct {
		r      rune
		w, h   int
		adv    float32
		bx, by float32
	}
	measure := make([]meas, 0, len(runes))
	for _, rr := range runes {
		br, adv, ok := face.GlyphBounds(rr)
		if !ok {
			continue
		}
		measure = append(measure, meas{
			r:   rr,
			w:   (br.Max.X - br.Min.X).Ceil(),
			h:   (br.Max.Y - br.Min.Y).Ceil(),
			adv: float32(adv.Round()),
			bx:  float32(br.Min.X.Floor()),
			by:  float32(-br.Min.Y.Floor()),
		})
	}

	size := minAtlasSize
	var pos map[rune]image.Point
	for {
		x, y, rowH := atlasPadding, atlasPadding, 0
		fits := true
		pos = make(map[rune]image.Point, len(measure))
		for _, g := range measure {
			if g.w == 0 || g.h == 0 {
				continue
			}
			if g.w+2*atlasPadding > size || g.h+2*atlasPadding > size {
				fits = false
				break
			}
			if x+g.w+atlasPadding > size {
				x = atlasPadding
				y += rowH + atlasPadding
				rowH = 0
			}
			if y+g.h+atlasPadding > size {
				fits = false
				break
			}
			pos[g.r] = image.Pt(x, y)
			x += g.w + atlasPadding
			rowH = max(rowH, g.h)
		}
		if fits {
			break
		}
		size *= 2
		if size > maxAtlasSize {
			return nil, fmt.Errorf("font atlas too large (>%d)", maxAtlasSize)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: dst, Src: image.White, Face: face}

	glyphs := make(map[rune]Glyph, len(measure))
	for _, g := range measure {
		gl := Glyph{
			Rune: g.r, Advance: g.adv,
			BearingX: g.bx, BearingY: g.by,
			W: g.w, H: g.h,
		}
		if p, ok := pos[g.r]; ok {
			// The drawer positions by baseline origin; shift so the glyph box
			// lands at p.
			drawer.Dot = fixed.P(p.X-int(g.bx), p.Y+int(g.by))
			drawer.DrawString(string(g.r))
			gl.U0 = float32(p.X) / float32(size)
			gl.V0 = float32(p.Y) / float32(size)
			gl.U1 = float32(p.X+g.w) / float32(size)
			gl.V1 = float32(p.Y+g.h) / float32(size)
		}
		glyphs[g.r] = gl
	}

	return &Atlas{
		Image:      dst,
		Glyphs:     glyphs,
		Ascent:     float32(f.Ascent()),
		LineHeight: float32(f.TextHeight()),
		face:       face,
	}, nil
}

// Size is the atlas edge length in pixels.
func (a *Atlas) Size() int { return a.Image.Bounds().Dx() }

// walk advances a pen through s, applying kerning, and calls visit for
// every rune found in the atlas with the pen x and the zero-based line.
// Missing runes advance by a space. It returns the widest line and the
// number of lines.
func (a *Atlas) walk(s string, visit func(g Glyph, penX float32, line int)) (width float32, lines int) {
	var pen float32
	space := a.Glyphs[' '].Advance
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			width = max(width, pen)
			pen, prev = 0, -1
			lines++
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			pen += space
			prev = r
			continue
		}
		if prev >= 0 && a.face != nil {
			pen += float32(a.face.Kern(prev, r).Round())
		}
		if visit != nil {
			visit(g, pen, lines)
		}
		pen += g.Advance
		prev = r
	}
	return max(width, pen), lines + 1
}

// Layout calls emit with the top-left corner of every visible glyph of s
// drawn from the top-left origin (x,y).
func (a *Atlas) Layout(s string, x, y float32, emit func(g Glyph, gx, gy float32)) {
	a.walk(s, func(g Glyph, penX float32, line int) {
		if g.W > 0 && g.H > 0 {
			baseline := y + a.Ascent + float32(line)*a.LineHeight
			emit(g, x+penX+g.BearingX, baseline-g.BearingY)
		}
	})
}

// Measure returns the pixel extent of s as Layout would place it.
func (a *Atlas) Measure(s string) (width, height float32) {
	w, lines := a.walk(s, nil)
	return w, float32(lines) * a.LineHeight
}
