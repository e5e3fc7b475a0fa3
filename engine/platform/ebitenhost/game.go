// Package ebitenhost runs a ui.Context inside an Ebitengine game loop.
// Ebitengine input is translated to core events so the context sees the
// same stream as under the GLFW host.
package ebitenhost

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hubastard/xui/engine/colors"
	"github.com/hubastard/xui/engine/core"
	"github.com/hubastard/xui/engine/ui"
)

// Key repeat for held editing keys, in ticks.
const (
	repeatDelay    = 30
	repeatInterval = 3
)

var keyMap = []struct {
	ek ebiten.Key
	ck core.Key
}{
	{ebiten.KeyShiftLeft, core.KeyLeftShift},
	{ebiten.KeyShiftRight, core.KeyRightShift},
	{ebiten.KeyControlLeft, core.KeyLeftControl},
	{ebiten.KeyControlRight, core.KeyRightControl},
	{ebiten.KeyAltLeft, core.KeyLeftAlt},
	{ebiten.KeyAltRight, core.KeyRightAlt},
	{ebiten.KeyBackspace, core.KeyBackspace},
	{ebiten.KeyEnter, core.KeyEnter},
	{ebiten.KeyNumpadEnter, core.KeyEnter},
	{ebiten.KeyEscape, core.KeyEscape},
	{ebiten.KeyTab, core.KeyTab},
}

var buttonMap = []struct {
	eb ebiten.MouseButton
	cb core.MouseButton
}{
	{ebiten.MouseButtonLeft, core.MouseLeft},
	{ebiten.MouseButtonRight, core.MouseRight},
	{ebiten.MouseButtonMiddle, core.MouseMiddle},
}

// Game implements ebiten.Game. Build is called once per tick between
// Begin and End.
type Game struct {
	Ctx   *ui.Context
	Font  *Font
	Build func(ctx *ui.Context)
	Clear colors.Color
	// OnEvent sees every translated event before the context does;
	// returning true consumes it.
	OnEvent func(ev core.Event) bool

	quit      bool
	chars     []rune
	lastX     int
	lastY     int
	surface   surface
	Frames    uint64
	LastError error
}

// New creates a game drawing with font; the context measures with the
// same font.
func New(font *Font, build func(ctx *ui.Context), opts ...ui.ContextOption) *Game {
	return &Game{
		Ctx:   ui.New(font, opts...),
		Font:  font,
		Build: build,
		Clear: colors.DarkGray,
		lastX: -1,
		lastY: -1,
	}
}

// Quit ends the loop after the current tick.
func (g *Game) Quit() { g.quit = true }

func (g *Game) emit(ev core.Event) {
	if g.OnEvent != nil && g.OnEvent(ev) {
		return
	}
	g.Ctx.HandleEvent(ev)
}

func (g *Game) pollInput() {
	x, y := ebiten.CursorPosition()
	if x != g.lastX || y != g.lastY {
		g.lastX, g.lastY = x, y
		g.emit(core.EventMouseMove{X: float64(x), Y: float64(y)})
	}
	for _, b := range buttonMap {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			g.emit(core.EventMouseButton{Button: b.cb, Down: true, X: float64(x), Y: float64(y)})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			g.emit(core.EventMouseButton{Button: b.cb, Down: false, X: float64(x), Y: float64(y)})
		}
	}
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		g.emit(core.EventScroll{DX: dx, DY: dy})
	}
	for _, k := range keyMap {
		switch {
		case inpututil.IsKeyJustPressed(k.ek):
			g.emit(core.EventKey{Key: k.ck, Down: true})
		case inpututil.IsKeyJustReleased(k.ek):
			g.emit(core.EventKey{Key: k.ck, Down: false})
		case k.ck == core.KeyBackspace && repeating(k.ek):
			// The context edits on key press edges, so a held key is
			// replayed as release+press.
			g.emit(core.EventKey{Key: k.ck, Down: false})
			g.emit(core.EventKey{Key: k.ck, Down: true})
		}
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if len(g.chars) > 0 {
		g.emit(core.EventText{Text: string(g.chars)})
	}
}

func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollInput()
	if err := g.Ctx.Begin(); err != nil {
		return err
	}
	g.Build(g.Ctx)
	if err := g.Ctx.End(); err != nil {
		g.LastError = err
		slog.Warn("ui frame failed", "frame", g.Ctx.Frame(), "err", err)
	}
	g.Frames++
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.Clear)
	g.surface.screen = screen
	g.surface.dst = screen
	g.surface.font = g.Font
	g.Ctx.Render(&g.surface)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and blocks until it is closed or Quit is called.
func Run(g *Game, cfg core.Config) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.VSync)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}
	if cfg.ClearColor != (colors.Color{}) {
		g.Clear = cfg.ClearColor
	}
	slog.Info("ebiten host started", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	err := ebiten.RunGame(g)
	g.Ctx.Close()
	slog.Info("ebiten host exit", "frames", g.Frames)
	return err
}
