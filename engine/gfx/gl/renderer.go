// Package glbackend draws renderer2d batches with OpenGL 3.3 core.
package glbackend

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/xui/engine/colors"
	"github.com/hubastard/xui/engine/core"
	"github.com/hubastard/xui/engine/gfx/renderer2d"
)

type RendererGL struct {
	win      core.Window
	program  uint32
	vao      uint32
	vbo      uint32
	ebo      uint32
	uVP      int32
	white    *Texture
	textures []*Texture
	fbW      int
	fbH      int
}

var (
	_ core.Renderer      = (*RendererGL)(nil)
	_ renderer2d.Backend = (*RendererGL)(nil)
	_ renderer2d.Texture = (*Texture)(nil)
)

// NewRendererGL expects the window's GL context to be current.
func NewRendererGL(win core.Window, _ core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win}
	if err := r.Init(); err != nil {
		return nil, err
	}
	r.fbW, r.fbH = win.FramebufferSize()
	return r, nil
}

func (r *RendererGL) Init() error {
	vs, err := shaderSource("quad.vert")
	if err != nil {
		return err
	}
	fs, err := shaderSource("quad.frag")
	if err != nil {
		return err
	}
	r.program, err = makeProgram(vs, fs)
	if err != nil {
		return err
	}

	gl.UseProgram(r.program)
	r.uVP = gl.GetUniformLocation(r.program, gl.Str("uVP\x00"))
	for i := range renderer2d.MaxTexSlots {
		loc := gl.GetUniformLocation(r.program, gl.Str("uTex["+strconv.Itoa(i)+"]\x00"))
		gl.Uniform1i(loc, int32(i))
	}
	gl.UseProgram(0)

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	const stride = renderer2d.VertexStride * 4 // bytes
	attribs := []struct {
		loc, size uint32
		off       int
	}{
		{0, 2, renderer2d.OffsetPos},
		{1, 4, renderer2d.OffsetColor},
		{2, 2, renderer2d.OffsetUV},
		{3, 1, renderer2d.OffsetTexIndex},
	}
	for _, a := range attribs {
		gl.EnableVertexAttribArray(a.loc)
		gl.VertexAttribPointerWithOffset(a.loc, int32(a.size), gl.FLOAT, false, stride, uintptr(a.off*4))
	}
	gl.BindVertexArray(0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	px := image.NewRGBA(image.Rect(0, 0, 1, 1))
	px.Set(0, 0, color.White)
	r.white = r.NewTexture(px)
	return nil
}

// White is the 1x1 texture solid quads sample.
func (r *RendererGL) White() *Texture { return r.white }

func (r *RendererGL) Shutdown() {
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t.id)
	}
	r.textures = nil
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

func (r *RendererGL) Resize(w, h int) {
	r.fbW, r.fbH = w, h
	gl.Viewport(0, 0, int32(w), int32(h))
}

func (r *RendererGL) Clear(c colors.Color) {
	f := c.Float()
	gl.Disable(gl.SCISSOR_TEST)
	gl.ClearColor(f[0], f[1], f[2], f[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawBatch uploads b and issues one indexed draw.
func (r *RendererGL) DrawBatch(b *renderer2d.Batch) error {
	if len(b.Indices) == 0 {
		return nil
	}
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uVP, 1, false, &b.VP[0])
	for i, t := range b.Textures {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, t.(*Texture).id)
	}

	if x, y, w, h, ok := scissorBox(b.Clip.X, b.Clip.Y, b.Clip.W, b.Clip.H, r.fbW, r.fbH); ok {
		gl.Enable(gl.SCISSOR_TEST)
		gl.Scissor(x, y, w, h)
	} else {
		gl.Disable(gl.SCISSOR_TEST)
	}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(b.Vertices)*4, gl.Ptr(b.Vertices), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(b.Indices)*4, gl.Ptr(b.Indices), gl.STREAM_DRAW)
	gl.DrawElements(gl.TRIANGLES, int32(len(b.Indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
	gl.UseProgram(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw batch: gl error 0x%x", code)
	}
	return nil
}

// scissorBox converts a top-left clip rect to GL's bottom-left origin.
// ok is false when the rect covers the whole framebuffer.
func scissorBox(x, y, w, h, fbW, fbH int) (sx, sy, sw, sh int32, ok bool) {
	if x <= 0 && y <= 0 && x+w >= fbW && y+h >= fbH {
		return 0, 0, 0, 0, false
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fbW), min(y+h, fbH)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return int32(x0), int32(fbH - y1), int32(x1 - x0), int32(y1 - y0), true
}

func (r *RendererGL) GPUVendor() string   { return gl.GoStr(gl.GetString(gl.VENDOR)) }
func (r *RendererGL) GPURenderer() string { return gl.GoStr(gl.GetString(gl.RENDERER)) }
func (r *RendererGL) GPUVersion() string  { return gl.GoStr(gl.GetString(gl.VERSION)) }
