package core

import (
	"log/slog"
	"runtime"
	"time"
)

// maxCatchUp bounds the updates run for one rendered frame; time beyond
// that is dropped.
const maxCatchUp = 10

// stepper turns wall-clock time into fixed update ticks.
type stepper struct {
	tick  time.Duration
	accum time.Duration
}

func newStepper(rate int) stepper {
	if rate <= 0 {
		rate = 60
	}
	return stepper{tick: time.Second / time.Duration(rate)}
}

// advance adds elapsed time and returns the ticks due plus the
// interpolation fraction left over.
func (s *stepper) advance(elapsed time.Duration) (steps int, alpha float64) {
	s.accum += elapsed
	steps = int(s.accum / s.tick)
	if steps > maxCatchUp {
		slog.Debug("update loop behind, dropping time", "behind", s.accum-maxCatchUp*s.tick)
		steps = maxCatchUp
		s.accum = 0
	} else {
		s.accum -= time.Duration(steps) * s.tick
	}
	return steps, float64(s.accum) / float64(s.tick)
}

// Run creates the window and renderer, then drives app and the engine's
// layers until the window closes. Updates run at cfg.TickRate; rendering
// runs once per loop with the interpolation alpha.
func Run(app App, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return err
	}
	rend, err := newRenderer(win, cfg)
	if err != nil {
		return err
	}
	defer rend.Shutdown()

	fw, fh := win.FramebufferSize()
	rend.Resize(fw, fh)

	eng := &Engine{Window: win, Renderer: rend, start: time.Now()}
	win.SetEventCallback(func(ev Event) {
		if _, ok := ev.(EventResize); ok {
			if w, h := win.FramebufferSize(); w > 0 && h > 0 {
				rend.Resize(w, h)
			}
		}
		if !eng.dispatch(ev) {
			app.OnEvent(eng, ev)
		}
	})

	app.OnStart(eng)
	slog.Info("engine started", "title", cfg.Title, "width", fw, "height", fh, "tick_rate", cfg.TickRate)

	clock := newStepper(cfg.TickRate)
	dt := clock.tick.Seconds()
	last := time.Now()
	for !win.ShouldClose() {
		now := time.Now()
		steps, alpha := clock.advance(now.Sub(last))
		last = now

		win.PollEvents()
		for range steps {
			app.OnUpdate(eng, dt)
			eng.updateLayers(dt)
		}

		rend.Clear(cfg.ClearColor)
		app.OnRender(eng, alpha)
		eng.renderLayers(alpha)
		win.SwapBuffers()
		eng.frames++
	}

	eng.detachAll()
	app.OnShutdown(eng)
	slog.Info("engine exit", "frames", eng.frames, "uptime", eng.Uptime())
	return nil
}
