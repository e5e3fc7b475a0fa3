package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hubastard/xui/engine/core"
	glbackend "github.com/hubastard/xui/engine/gfx/gl"
	"github.com/hubastard/xui/engine/gfx/renderer2d"
	"github.com/hubastard/xui/engine/platform"
	"github.com/hubastard/xui/engine/profiler"
	"github.com/hubastard/xui/engine/text"
	"github.com/hubastard/xui/engine/ui"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the demo in a GLFW window drawn with OpenGL",
	Long: `Open the demo in a GLFW window. Frames are built at the configured tick
rate and drawn through the batched 2D renderer.

Press Ctrl+P to open a speedscope capture (profile builds only).`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	profiler.Init(1 << 12)

	var win *platform.GLFWWindow
	app := &glApp{demo: newDemo(), fontSize: cfg.Window.FontSize}

	newWindow := func(c core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(c, nil)
		if err != nil {
			return nil, fmt.Errorf("open window: %w", err)
		}
		win = w
		return w, nil
	}
	newRenderer := func(w core.Window, c core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(w, c)
		if err != nil {
			return nil, fmt.Errorf("init renderer: %w", err)
		}
		app.gl = r
		return r, nil
	}

	err := core.Run(app, cfg.Core(), newWindow, newRenderer)
	if win != nil {
		win.Destroy()
	}
	return errors.Join(err, app.err)
}

// glApp owns the GL-side resources; the UI itself lives in uiLayer.
type glApp struct {
	demo     *demo
	fontSize float64
	gl       *glbackend.RendererGL
	err      error
}

func (a *glApp) OnStart(e *core.Engine) {
	layer, err := newUILayer(a.gl, a.demo, a.fontSize)
	if err != nil {
		a.err = err
		e.Window.RequestClose()
		return
	}
	a.demo.gpu = fmt.Sprintf("%s\n%s\n%s", a.gl.GPUVendor(), a.gl.GPURenderer(), a.gl.GPUVersion())
	a.demo.frames = e.Frames
	e.PushLayer(layer)
}

func (a *glApp) OnUpdate(e *core.Engine, dt float64)    {}
func (a *glApp) OnRender(e *core.Engine, alpha float64) {}

func (a *glApp) OnEvent(e *core.Engine, ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
		e.Window.RequestClose()
	}
}

func (a *glApp) OnShutdown(e *core.Engine) {}

// uiLayer runs the ui.Context: events are queued as they arrive, applied
// at the start of each tick, and the last completed frame is replayed
// through the 2D batcher on every render.
type uiLayer struct {
	ctx     *ui.Context
	demo    *demo
	font    *text.Face
	r2d     *renderer2d.Renderer2D
	surface renderer2d.Surface
	stats   renderer2d.Statistics
	events  core.EventQueue
	input   *core.Input
}

var _ core.Layer = (*uiLayer)(nil)

func newUILayer(gl *glbackend.RendererGL, d *demo, fontSize float64) (*uiLayer, error) {
	face, err := text.Default(fontSize)
	if err != nil {
		return nil, err
	}
	atlas, err := text.BuildAtlas(face, text.Latin1())
	if err != nil {
		face.Close()
		return nil, err
	}
	l := &uiLayer{
		ctx:   ui.New(face, contextOptions()...),
		demo:  d,
		font:  face,
		r2d:   renderer2d.New(gl, gl.White(), 0),
		input: core.NewInput(),
	}
	l.surface = renderer2d.Surface{R: l.r2d, Atlas: atlas, AtlasTex: gl.NewTexture(atlas.Image)}
	d.stats = &l.stats
	return l, nil
}

func (l *uiLayer) OnAttach(e *core.Engine) {}

func (l *uiLayer) OnDetach(e *core.Engine) {
	l.ctx.Close()
	l.font.Close()
}

func (l *uiLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	l.input.Handle(ev)
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyP && l.ctrlDown() {
		path, err := profiler.OpenProfilerGraph()
		if err != nil {
			slog.Warn("profiler capture failed", "err", err)
		} else {
			slog.Info("profiler capture written", "path", path)
		}
		return true
	}
	l.events.Push(ev)
	// Window events still need to reach the app.
	switch ev.(type) {
	case core.EventCloseRequested, core.EventResize:
		return false
	}
	if k, ok := ev.(core.EventKey); ok && k.Key == core.KeyEscape {
		return false
	}
	return true
}

func (l *uiLayer) ctrlDown() bool {
	return l.input.IsKeyDown(core.KeyLeftControl) || l.input.IsKeyDown(core.KeyRightControl)
}

func (l *uiLayer) OnUpdate(e *core.Engine, dt float64) {
	defer profiler.Start("ui.frame")()
	l.events.Drain(func(ev core.Event) { l.ctx.HandleEvent(ev) })

	if err := l.ctx.Begin(); err != nil {
		slog.Error("ui begin", "err", err)
		return
	}
	l.demo.Build(l.ctx)
	if err := l.ctx.End(); err != nil {
		if errors.Is(err, ui.ErrCapacity) {
			slog.Warn("ui frame dropped", "frame", l.ctx.Frame(), "err", err)
			return
		}
		slog.Error("ui frame failed", "frame", l.ctx.Frame(), "err", err)
	}
}

func (l *uiLayer) OnRender(e *core.Engine, alpha float64) {
	defer profiler.Start("ui.render")()
	w, h := e.Window.FramebufferSize()
	l.surface.W, l.surface.H = w, h

	l.r2d.BeginScene(renderer2d.PixelProjection(w, h))
	l.r2d.DrawRect(ui.Rect{W: w, H: h}, l.demo.Background())
	l.ctx.Render(&l.surface)
	if err := l.r2d.EndScene(); err != nil {
		slog.Error("render ui", "err", err)
	}
	l.stats = l.r2d.Stats()
}
