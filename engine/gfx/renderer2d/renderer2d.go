// Package renderer2d batches textured quads for a GPU backend. It owns
// the vertex layout and texture-slot bookkeeping; the backend only
// uploads and draws finished batches.
package renderer2d

import (
	"math"

	"github.com/hubastard/xui/engine/colors"
	"github.com/hubastard/xui/engine/ui"
)

// MaxTexSlots is the sampler array size in the quad shader.
const MaxTexSlots = 16

// Vertex layout in floats: pos2 color4 uv2 slot1.
const (
	VertexStride = 9

	OffsetPos      = 0
	OffsetColor    = 2
	OffsetUV       = 6
	OffsetTexIndex = 8
)

const (
	vertsPerQuad = 4
	indsPerQuad  = 6
)

// Texture is a backend-owned image handle.
type Texture interface {
	Size() (w, h int)
}

// Batch is one draw call. Slices are reused after DrawBatch returns.
type Batch struct {
	VP       [16]float32
	Vertices []float32
	Indices  []uint32
	Textures []Texture // slot i samples uTex[i]
	Clip     ui.Rect   // scissor in pixels, top-left origin
}

// Backend uploads and draws batches.
type Backend interface {
	DrawBatch(b *Batch) error
}

// Statistics counts the work submitted since BeginScene.
type Statistics struct {
	DrawCalls    int
	QuadCount    int
	TextureCount int // most slots used by one batch
}

func (s Statistics) TotalVertexCount() int { return s.QuadCount * vertsPerQuad }
func (s Statistics) TotalIndexCount() int  { return s.QuadCount * indsPerQuad }

// Quad is one rectangle in pixel space.
type Quad struct {
	X, Y, W, H float32 // top-left corner and size
	Color      colors.Color
	Tex        Texture    // nil samples the white texture
	UV         [4]float32 // u0 v0 u1 v1; zero means the whole texture
	Rotation   float32    // radians about the centre
}

var fullUV = [4]float32{0, 0, 1, 1}

type Renderer2D struct {
	backend  Backend
	white    Texture
	maxQuads int

	slots  [MaxTexSlots]Texture // slot 0 is always white
	nslots int
	verts  []float32
	inds   []uint32

	batch Batch
	vp    [16]float32
	clip  ui.Rect
	stats Statistics
	err   error
}

// New creates a batcher drawing through b. white must be a 1x1 opaque
// white texture. maxQuads bounds a batch; 0 picks 10000.
func New(b Backend, white Texture, maxQuads int) *Renderer2D {
	if maxQuads <= 0 {
		maxQuads = 10000
	}
	rd := &Renderer2D{
		backend:  b,
		white:    white,
		maxQuads: maxQuads,
		verts:    make([]float32, 0, maxQuads*vertsPerQuad*VertexStride),
		inds:     make([]uint32, 0, maxQuads*indsPerQuad),
		clip:     ui.Unclipped,
	}
	rd.reset()
	return rd
}

// BeginScene starts a frame drawn with the view-projection vp.
func (rd *Renderer2D) BeginScene(vp [16]float32) {
	rd.vp = vp
	rd.clip = ui.Unclipped
	rd.stats = Statistics{}
	rd.err = nil
	rd.reset()
}

// EndScene flushes pending quads and returns the first backend error of
// the scene.
func (rd *Renderer2D) EndScene() error {
	rd.flush()
	return rd.err
}

func (rd *Renderer2D) Stats() Statistics { return rd.stats }

// SetClip sets the scissor for later quads. A change flushes the batch.
func (rd *Renderer2D) SetClip(r ui.Rect) {
	if r != rd.clip {
		rd.flush()
		rd.clip = r
	}
}

// DrawRect fills r with c.
func (rd *Renderer2D) DrawRect(r ui.Rect, c colors.Color) {
	rd.Submit(Quad{X: float32(r.X), Y: float32(r.Y), W: float32(r.W), H: float32(r.H), Color: c})
}

// DrawSub draws the region sub at (x,y) scaled to w×h, tinted.
func (rd *Renderer2D) DrawSub(sub SubTexture2D, x, y, w, h float32, tint colors.Color) {
	rd.Submit(Quad{X: x, Y: y, W: w, H: h, Color: tint, Tex: sub.Texture, UV: [4]float32{sub.U0, sub.V0, sub.U1, sub.V1}})
}

// Submit appends q to the current batch, flushing first when the batch
// is full or q needs a texture slot that is not free.
func (rd *Renderer2D) Submit(q Quad) {
	if len(rd.inds) >= rd.maxQuads*indsPerQuad {
		rd.flush()
	}
	tex := q.Tex
	if tex == nil {
		tex = rd.white
	}
	slot := float32(rd.slot(tex))
	uv := q.UV
	if uv == ([4]float32{}) {
		uv = fullUV
	}

	hw, hh := q.W/2, q.H/2
	cx, cy := q.X+hw, q.Y+hh
	cos, sin := float32(1), float32(0)
	if q.Rotation != 0 {
		s, c := math.Sincos(float64(q.Rotation))
		cos, sin = float32(c), float32(s)
	}
	col := q.Color.Float()

	// TL TR BL BR; y grows downward.
	base := uint32(len(rd.verts) / VertexStride)
	for i := range vertsPerQuad {
		dx, u := -hw, uv[0]
		if i&1 != 0 {
			dx, u = hw, uv[2]
		}
		dy, v := -hh, uv[1]
		if i&2 != 0 {
			dy, v = hh, uv[3]
		}
		rd.verts = append(rd.verts,
			cx+dx*cos-dy*sin, cy+dx*sin+dy*cos,
			col[0], col[1], col[2], col[3],
			u, v,
			slot)
	}
	rd.inds = append(rd.inds, base, base+2, base+1, base+1, base+2, base+3)
	rd.stats.QuadCount++
}

// slot returns the sampler slot for t, flushing when all are taken.
func (rd *Renderer2D) slot(t Texture) int {
	for i, s := range rd.slots[:rd.nslots] {
		if s == t {
			return i
		}
	}
	if rd.nslots == MaxTexSlots {
		rd.flush()
	}
	rd.slots[rd.nslots] = t
	rd.nslots++
	rd.stats.TextureCount = max(rd.stats.TextureCount, rd.nslots)
	return rd.nslots - 1
}

func (rd *Renderer2D) flush() {
	if len(rd.inds) == 0 {
		return
	}
	rd.batch = Batch{
		VP:       rd.vp,
		Vertices: rd.verts,
		Indices:  rd.inds,
		Textures: rd.slots[:rd.nslots],
		Clip:     rd.clip,
	}
	if err := rd.backend.DrawBatch(&rd.batch); err != nil && rd.err == nil {
		rd.err = err
	}
	rd.stats.DrawCalls++
	rd.reset()
}

func (rd *Renderer2D) reset() {
	rd.verts = rd.verts[:0]
	rd.inds = rd.inds[:0]
	clear(rd.slots[:])
	rd.slots[0] = rd.white
	rd.nslots = 1
}
