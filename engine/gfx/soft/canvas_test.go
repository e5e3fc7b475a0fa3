package soft

import (
	"image/color"
	"testing"

	"github.com/hubastard/xui/engine/colors"
	"github.com/hubastard/xui/engine/text"
	"github.com/hubastard/xui/engine/ui"
)

func rgba(c colors.Color) color.RGBA { return color.RGBA{c.R, c.G, c.B, c.A} }

func TestFillRectRespectsClip(t *testing.T) {
	c := NewCanvas(20, 20)
	c.SetClip(ui.Rect{W: 5, H: 5})
	c.FillRect(ui.Rect{W: 10, H: 10}, colors.Red)

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, rgba(colors.Red)},
		{4, 4, rgba(colors.Red)},
		{5, 5, color.RGBA{}},
		{9, 0, color.RGBA{}},
	}
	for _, tt := range tests {
		if got := c.Img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel %d,%d = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestClipOutsideImage(t *testing.T) {
	c := NewCanvas(10, 10)
	c.SetClip(ui.Rect{X: 50, Y: 50, W: 5, H: 5})
	c.FillRect(ui.Rect{W: 10, H: 10}, colors.Red)
	if got := c.Img.RGBAAt(0, 0); got != (color.RGBA{}) {
		t.Errorf("drew %v outside the clip", got)
	}
}

func TestDrawTextWithFace(t *testing.T) {
	face, err := text.Default(16)
	if err != nil {
		t.Fatal(err)
	}
	defer face.Close()

	c := NewCanvas(100, 40)
	c.SetClip(ui.Rect{W: 100, H: 40})
	c.DrawText(face, "Hi", 10, 10, colors.White)

	inside, outside := 0, 0
	w, h := face.TextWidth("Hi"), face.TextHeight()
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if c.Img.RGBAAt(x, y).A == 0 {
				continue
			}
			if x >= 10 && x < 10+w+2 && y >= 10 && y < 10+h {
				inside++
			} else {
				outside++
			}
		}
	}
	if inside == 0 || outside != 0 {
		t.Errorf("coverage inside=%d outside=%d", inside, outside)
	}
}

func TestDrawTextFallsBackToBoxes(t *testing.T) {
	c := NewCanvas(40, 40)
	c.DrawText(text.Fixed{Advance: 4, Height: 6}, "ab", 2, 3, colors.Green)
	if got := c.Img.RGBAAt(9, 8); got != rgba(colors.Green) {
		t.Errorf("inside box = %v", got)
	}
	if got := c.Img.RGBAAt(10, 3); got != (color.RGBA{}) {
		t.Errorf("past box = %v", got)
	}
}

func TestRenderFrame(t *testing.T) {
	ctx := ui.New(text.Fixed{})
	if err := ctx.Begin(); err != nil {
		t.Fatal(err)
	}
	if ctx.BeginWindow("w", ui.Rect{X: 10, Y: 10, W: 200, H: 150}) != 0 {
		ctx.Label("x")
		ctx.EndWindow()
	}
	if err := ctx.End(); err != nil {
		t.Fatal(err)
	}

	c := NewCanvas(320, 240)
	c.Clear(colors.Black)
	ctx.Render(c)

	st := ctx.Style()
	if got := c.Img.RGBAAt(150, 120); got != rgba(st.Colors[ui.ColorWindow]) {
		t.Errorf("window body pixel = %v, want %v", got, st.Colors[ui.ColorWindow])
	}
	if got := c.Img.RGBAAt(300, 200); got != rgba(colors.Black) {
		t.Errorf("background pixel = %v", got)
	}
	if got := c.Img.RGBAAt(50, 15); got != rgba(st.Colors[ui.ColorTitleBG]) {
		t.Errorf("title pixel = %v, want %v", got, st.Colors[ui.ColorTitleBG])
	}
}
