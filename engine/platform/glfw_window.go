// Package platform opens native windows and turns their callbacks into
// core events.
package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/xui/engine/core"
)

// GLFWWindow implements core.Window and pushes events to the app via a handler.
type GLFWWindow struct {
	w    *glfw.Window
	onEv func(core.Event)
}

var _ core.Window = (*GLFWWindow)(nil)

// contextHints request a GL 3.3 core context; macOS only grants core
// profiles when forward-compatible.
var contextHints = map[glfw.Hint]int{
	glfw.ContextVersionMajor:     3,
	glfw.ContextVersionMinor:     3,
	glfw.OpenGLProfile:           glfw.OpenGLCoreProfile,
	glfw.OpenGLForwardCompatible: glfw.True,
	glfw.Samples:                 0,
}

// NewGLFWWindow must be called on the main thread before any GL calls.
func NewGLFWWindow(cfg core.Config, onEvent func(core.Event)) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}
	for hint, v := range contextHints {
		glfw.WindowHint(hint, v)
	}
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	swap := 0
	if cfg.VSync {
		swap = 1
	}
	glfw.SwapInterval(swap)

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	slog.Info("window created", "title", cfg.Title, "vsync", cfg.VSync,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	gw := &GLFWWindow{w: win, onEv: onEvent}
	gw.installCallbacks()
	return gw, nil
}

// installCallbacks routes GLFW callbacks to emit. Pointer positions are
// reported in framebuffer pixels.
func (g *GLFWWindow) installCallbacks() {
	g.w.SetCloseCallback(func(*glfw.Window) { g.emit(core.EventCloseRequested{}) })
	g.w.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		g.emit(core.EventResize{W: w, H: h})
	})
	g.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		fx, fy := g.toFramebuffer(x, y)
		g.emit(core.EventMouseMove{X: fx, Y: fy})
	})
	g.w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := buttons[b]
		if !ok {
			return
		}
		x, y := g.toFramebuffer(g.w.GetCursorPos())
		g.emit(core.EventMouseButton{Button: btn, Down: action == glfw.Press, X: x, Y: y})
	})
	g.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if k, ok := keys[key]; ok {
			g.emit(core.EventKey{Key: k, Down: action != glfw.Release, Mods: translateMods(mods)})
		}
	})
	g.w.SetCharCallback(func(_ *glfw.Window, r rune) { g.emit(core.EventText{Text: string(r)}) })
	g.w.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) { g.emit(core.EventScroll{DX: dx, DY: dy}) })
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.onEv != nil {
		g.onEv(ev)
	}
}

// toFramebuffer scales window coordinates to framebuffer pixels, which
// differ on HiDPI displays.
func (g *GLFWWindow) toFramebuffer(x, y float64) (float64, float64) {
	ww, wh := g.w.GetSize()
	fw, fh := g.w.GetFramebufferSize()
	if ww > 0 && wh > 0 {
		x *= float64(fw) / float64(ww)
		y *= float64(fh) / float64(wh)
	}
	return x, y
}

// core.Window impl
func (g *GLFWWindow) PollEvents()                          { glfw.PollEvents() }
func (g *GLFWWindow) SwapBuffers()                         { g.w.SwapBuffers() }
func (g *GLFWWindow) ShouldClose() bool                    { return g.w.ShouldClose() }
func (g *GLFWWindow) RequestClose()                        { g.w.SetShouldClose(true) }
func (g *GLFWWindow) FramebufferSize() (int, int)          { return g.w.GetFramebufferSize() }
func (g *GLFWWindow) SetTitle(t string)                    { g.w.SetTitle(t) }
func (g *GLFWWindow) SetEventCallback(cb func(core.Event)) { g.onEv = cb }

// Destroy closes the window and terminates GLFW.
func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

var keys = map[glfw.Key]core.Key{
	glfw.KeyEscape:       core.KeyEscape,
	glfw.KeySpace:        core.KeySpace,
	glfw.KeyBackspace:    core.KeyBackspace,
	glfw.KeyEnter:        core.KeyEnter,
	glfw.KeyKPEnter:      core.KeyEnter,
	glfw.KeyTab:          core.KeyTab,
	glfw.KeyLeftShift:    core.KeyLeftShift,
	glfw.KeyRightShift:   core.KeyRightShift,
	glfw.KeyLeftControl:  core.KeyLeftControl,
	glfw.KeyRightControl: core.KeyRightControl,
	glfw.KeyLeftAlt:      core.KeyLeftAlt,
	glfw.KeyRightAlt:     core.KeyRightAlt,
	glfw.KeyP:            core.KeyP,
}

var buttons = map[glfw.MouseButton]core.MouseButton{
	glfw.MouseButtonLeft:   core.MouseLeft,
	glfw.MouseButtonRight:  core.MouseRight,
	glfw.MouseButtonMiddle: core.MouseMiddle,
}

var modBits = []struct {
	g glfw.ModifierKey
	c core.Mod
}{
	{glfw.ModShift, core.ModShift},
	{glfw.ModControl, core.ModCtrl},
	{glfw.ModAlt, core.ModAlt},
	{glfw.ModSuper, core.ModSuper},
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	for _, b := range modBits {
		if m&b.g != 0 {
			out |= b.c
		}
	}
	return out
}
