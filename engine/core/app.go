package core

import (
	"time"

	"github.com/hubastard/xui/engine/colors"
)

// App defines the application hooks.
type App interface {
	OnStart(e *Engine)                 // called once after window/renderer init
	OnUpdate(e *Engine, dt float64)    // called at a fixed tick (60Hz by default)
	OnRender(e *Engine, alpha float64) // render with interpolation alpha [0..1]
	OnEvent(e *Engine, ev Event)       // input/window events
	OnShutdown(e *Engine)              // before exit
}

// Engine exposes core services to the App.
type Engine struct {
	Window   Window
	Renderer Renderer
	Layers   LayerStack
	start    time.Time
	frames   uint64
}

func (e *Engine) Uptime() time.Duration { return time.Since(e.start) }

// Frames is the number of frames presented so far.
func (e *Engine) Frames() uint64 { return e.frames }

// Window abstraction.
type Window interface {
	PollEvents()
	SwapBuffers()
	ShouldClose() bool
	RequestClose()
	FramebufferSize() (int, int)
	SetTitle(title string)
	SetEventCallback(cb func(Event))
}

// Renderer abstraction.
type Renderer interface {
	Resize(w, h int)
	Clear(c colors.Color)
	Shutdown()
}

// Config for the engine run.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
	TickRate   int // fixed updates per second; 0 means 60
}
