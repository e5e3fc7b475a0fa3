package cmd

import (
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/hubastard/xui/engine/core"
	"github.com/hubastard/xui/engine/gfx/soft"
	"github.com/hubastard/xui/engine/text"
	"github.com/hubastard/xui/engine/ui"
	"github.com/spf13/cobra"
)

var (
	dumpFrames int
	dumpPNG    string
	dumpWidth  int
	dumpHeight int
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Build demo frames headlessly and print the command list",
	Long: `Build the demo for a number of frames with a short scripted input
sequence (a click on the first window's title bar, some typing and a
scroll), then print the final frame's commands in draw order.

Examples:
  xuidemo dump
  xuidemo dump --frames 10 --png frame.png`,
	Args: cobra.NoArgs,
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().IntVarP(&dumpFrames, "frames", "n", 3, "number of frames to build")
	dumpCmd.Flags().StringVar(&dumpPNG, "png", "", "also rasterize the last frame to this PNG file")
	dumpCmd.Flags().IntVar(&dumpWidth, "width", 700, "PNG width")
	dumpCmd.Flags().IntVar(&dumpHeight, "height", 560, "PNG height")
}

// dumpScript is the input applied before each frame; frames past the end
// get none.
var dumpScript = [][]core.Event{
	nil,
	{core.EventMouseMove{X: 120, Y: 50}},
	{core.EventMouseButton{Button: core.MouseLeft, Down: true, X: 120, Y: 50}},
	{core.EventMouseButton{Button: core.MouseLeft, Down: false, X: 120, Y: 50}},
	{core.EventText{Text: "hello"}},
	{core.EventMouseMove{X: 400, Y: 120}, core.EventScroll{DY: -1}},
}

func runDump(cmd *cobra.Command, args []string) error {
	if dumpFrames < 1 {
		return fmt.Errorf("--frames must be at least 1, got %d", dumpFrames)
	}
	face, err := text.Default(cfg.Window.FontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	ctx := ui.New(face, contextOptions()...)
	defer ctx.Close()
	d := newDemo()

	for i := range dumpFrames {
		if i < len(dumpScript) {
			for _, ev := range dumpScript[i] {
				ctx.HandleEvent(ev)
			}
		}
		if err := ctx.Begin(); err != nil {
			return err
		}
		d.Build(ctx)
		if err := ctx.End(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	slog.Debug("frames built", "frames", dumpFrames, "commands", ctx.Len())

	if err := writeCommands(cmd.OutOrStdout(), ctx); err != nil {
		return err
	}
	if dumpPNG == "" {
		return nil
	}

	canvas := soft.NewCanvas(dumpWidth, dumpHeight)
	canvas.Clear(d.Background())
	ctx.Render(canvas)
	f, err := os.Create(dumpPNG)
	if err != nil {
		return err
	}
	if err := png.Encode(f, canvas.Img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

// writeCommands prints one line per non-jump command in traversal order.
func writeCommands(w io.Writer, ctx *ui.Context) error {
	for c := range ctx.Commands() {
		var err error
		switch c.Type {
		case ui.CommandClip:
			_, err = fmt.Fprintf(w, "clip %d %d %d %d\n", c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
		case ui.CommandRect:
			_, err = fmt.Fprintf(w, "rect %d %d %d %d #%02x%02x%02x%02x\n",
				c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, c.Color.R, c.Color.G, c.Color.B, c.Color.A)
		case ui.CommandText:
			_, err = fmt.Fprintf(w, "text %d %d %q\n", c.X, c.Y, c.Text)
		case ui.CommandIcon:
			_, err = fmt.Fprintf(w, "icon %d %d %d %d %d\n", c.Icon, c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
