package cmd

import (
	"fmt"
	"strings"

	"github.com/hubastard/xui/engine/colors"
	"github.com/hubastard/xui/engine/gfx/renderer2d"
	"github.com/hubastard/xui/engine/profiler"
	"github.com/hubastard/xui/engine/ui"
)

const maxLogLines = 64

// demo holds the state the widgets edit between frames.
type demo struct {
	checks  [3]bool
	bg      [3]float64
	scale   float64
	input   string
	log     []string
	logNew  bool
	renamed string

	// Host-provided details for the stats window. Any may be zero.
	stats  *renderer2d.Statistics
	gpu    string
	frames func() uint64
}

func newDemo() *demo {
	return &demo{
		checks: [3]bool{true, false, true},
		bg:     [3]float64{90, 95, 100},
		scale:  1,
	}
}

// Background is the clear color picked with the sliders.
func (d *demo) Background() colors.Color {
	return colors.RGBA(uint8(d.bg[0]), uint8(d.bg[1]), uint8(d.bg[2]), 255)
}

func (d *demo) write(s string) {
	d.log = append(d.log, s)
	if len(d.log) > maxLogLines {
		d.log = d.log[len(d.log)-maxLogLines:]
	}
	d.logNew = true
}

// Build lays out one frame. It must run between Begin and End.
func (d *demo) Build(ctx *ui.Context) {
	defer profiler.Start("demo.Build")()
	d.testWindow(ctx)
	d.logWindow(ctx)
	d.statsWindow(ctx)
}

func (d *demo) testWindow(ctx *ui.Context) {
	if ctx.BeginWindow("Demo Window", ui.Rect{X: 40, Y: 40, W: 300, H: 450}) == 0 {
		return
	}
	defer ctx.EndWindow()

	win := ctx.CurrentContainer()
	win.Rect.W = max(win.Rect.W, 240)
	win.Rect.H = max(win.Rect.H, 300)

	if ctx.Header("Window Info") != 0 {
		ctx.LayoutRow(0, 54, -1)
		ctx.Label("Position:")
		ctx.Label(fmt.Sprintf("%d, %d", win.Rect.X, win.Rect.Y))
		ctx.Label("Size:")
		ctx.Label(fmt.Sprintf("%d, %d", win.Rect.W, win.Rect.H))
	}

	if ctx.HeaderEx("Test Buttons", ui.OptExpanded) != 0 {
		ctx.LayoutRow(0, 86, -110, -1)
		ctx.Label("Test buttons 1:")
		if ctx.Button("Button 1") != 0 {
			d.write("Pressed button 1")
		}
		if ctx.Button("Button 2") != 0 {
			d.write("Pressed button 2")
		}
		ctx.Label("Test buttons 2:")
		if ctx.Button("Button 3") != 0 {
			d.write("Pressed button 3")
		}
		if ctx.Button("Popup") != 0 {
			ctx.OpenPopup("Test Popup")
		}
		if ctx.BeginPopup("Test Popup") != 0 {
			ctx.Button("Hello")
			ctx.Button("World")
			ctx.EndPopup()
		}
	}

	if ctx.HeaderEx("Tree and Text", ui.OptExpanded) != 0 {
		ctx.LayoutRow(0, 140, -1)
		ctx.LayoutBeginColumn()
		if ctx.BeginTreeNode("Test 1") != 0 {
			if ctx.BeginTreeNode("Test 1a") != 0 {
				ctx.Label("Hello")
				ctx.Label("world")
				ctx.EndTreeNode()
			}
			if ctx.BeginTreeNode("Test 1b") != 0 {
				if ctx.Button("Button 1") != 0 {
					d.write("Pressed button 1 in tree")
				}
				ctx.EndTreeNode()
			}
			ctx.EndTreeNode()
		}
		if ctx.BeginTreeNode("Test 2") != 0 {
			ctx.LayoutRow(0, 54, 54)
			if ctx.Button("Button 3") != 0 {
				d.write("Pressed button 3 in tree")
			}
			if ctx.Button("Button 4") != 0 {
				d.write("Pressed button 4 in tree")
			}
			ctx.EndTreeNode()
		}
		if ctx.BeginTreeNode("Test 3") != 0 {
			ctx.Checkbox("Checkbox 1", &d.checks[0])
			ctx.Checkbox("Checkbox 2", &d.checks[1])
			ctx.Checkbox("Checkbox 3", &d.checks[2])
			ctx.EndTreeNode()
		}
		ctx.LayoutEndColumn()

		ctx.LayoutBeginColumn()
		ctx.LayoutRow(0, -1)
		ctx.Text("Lorem ipsum dolor sit amet, consectetur adipiscing elit. " +
			"Maecenas lacinia, sem eu lacinia molestie, mi risus faucibus " +
			"ipsum, eu varius magna felis a nulla.")
		ctx.LayoutEndColumn()
	}

	if ctx.HeaderEx("Background Color", ui.OptExpanded) != 0 {
		ctx.LayoutRow(74, -78, -1)
		ctx.LayoutBeginColumn()
		ctx.LayoutRow(0, 46, -1)
		for i, name := range []string{"Red:", "Green:", "Blue:"} {
			ctx.Label(name)
			ctx.Slider(name, &d.bg[i], 0, 255)
		}
		ctx.LayoutEndColumn()
		r := ctx.LayoutNext()
		bg := d.Background()
		ctx.DrawRect(r, bg)
		ctx.DrawControlText(fmt.Sprintf("#%02X%02X%02X", bg.R, bg.G, bg.B), r, ui.ColorText, ui.OptAlignCenter)
	}

	if ctx.Header("Number") != 0 {
		ctx.LayoutRow(0, 54, -1)
		ctx.Label("Scale:")
		ctx.Number("scale", &d.scale, 0.05)
		ctx.Label("Rename:")
		if ctx.Textbox("rename", &d.renamed, 32)&ui.ResSubmit != 0 {
			d.write("Renamed to " + d.renamed)
		}
	}
}

func (d *demo) logWindow(ctx *ui.Context) {
	if ctx.BeginWindow("Log Window", ui.Rect{X: 350, Y: 40, W: 300, H: 200}) == 0 {
		return
	}
	defer ctx.EndWindow()

	ctx.LayoutRow(-25, -1)
	ctx.BeginPanel("Log Output")
	panel := ctx.CurrentContainer()
	ctx.LayoutRow(0, -1)
	ctx.Text(strings.Join(d.log, "\n"))
	ctx.EndPanel()
	if d.logNew {
		panel.ScrollY = panel.ContentH
		d.logNew = false
	}

	submitted := false
	ctx.LayoutRow(0, -70, -1)
	if ctx.Textbox("log input", &d.input, 128)&ui.ResSubmit != 0 {
		ctx.SetFocus(ctx.LastID())
		submitted = true
	}
	if ctx.Button("Submit") != 0 {
		submitted = true
	}
	if submitted && d.input != "" {
		d.write(d.input)
		d.input = ""
	}
}

func (d *demo) statsWindow(ctx *ui.Context) {
	if ctx.BeginWindowEx("Stats", ui.Rect{X: 350, Y: 250, W: 300, H: 290}, ui.OptNoClose) == 0 {
		return
	}
	defer ctx.EndWindow()

	ctx.LayoutRow(0, 110, -1)
	row := func(k, v string) {
		ctx.Label(k)
		ctx.Label(v)
	}
	if ctx.HeaderEx("UI", ui.OptExpanded) != 0 {
		row("Frame:", fmt.Sprint(ctx.Frame()))
		row("Commands:", fmt.Sprint(ctx.Len()))
		if d.frames != nil {
			row("Presented:", fmt.Sprint(d.frames()))
		}
	}
	if d.stats != nil && ctx.HeaderEx("2D Renderer", ui.OptExpanded) != 0 {
		row("Draw Calls:", fmt.Sprint(d.stats.DrawCalls))
		row("Quads:", fmt.Sprint(d.stats.QuadCount))
		row("Vertices:", fmt.Sprint(d.stats.TotalVertexCount()))
		row("Textures:", fmt.Sprint(d.stats.TextureCount))
	}
	if ctx.Header("Memory") != 0 {
		row("Usage:", fmt.Sprintf("%.3f MB", float64(profiler.MemoryUsage())/(1<<20)))
		row("Allocs:", fmt.Sprint(profiler.MemoryAllocs()))
		row("Goroutines:", fmt.Sprint(profiler.NumGoroutine()))
		row("CPUs:", fmt.Sprint(profiler.NumCPU()))
	}
	if d.gpu != "" && ctx.Header("GPU") != 0 {
		ctx.LayoutRow(0, -1)
		ctx.Text(d.gpu)
	}
}
