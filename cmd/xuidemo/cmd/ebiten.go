package cmd

import (
	"fmt"
	"os"

	"github.com/hubastard/xui/engine/core"
	"github.com/hubastard/xui/engine/platform/ebitenhost"
	"github.com/hubastard/xui/engine/ui"
	"github.com/spf13/cobra"
)

var fontPath string

var ebitenCmd = &cobra.Command{
	Use:   "ebiten",
	Short: "Open the demo in an Ebitengine window",
	Long: `Open the demo in an Ebitengine window. Text is shaped with text/v2 using
the bundled Go Regular face unless --font names a TrueType file.`,
	Args: cobra.NoArgs,
	RunE: runEbiten,
}

func init() {
	rootCmd.AddCommand(ebitenCmd)

	ebitenCmd.Flags().StringVar(&fontPath, "font", "", "TrueType font file")
}

func runEbiten(cmd *cobra.Command, args []string) error {
	var ttf []byte
	if fontPath != "" {
		b, err := os.ReadFile(fontPath)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		ttf = b
	}
	font, err := ebitenhost.LoadFont(ttf, cfg.Window.FontSize)
	if err != nil {
		return err
	}

	d := newDemo()
	var g *ebitenhost.Game
	g = ebitenhost.New(font, func(ctx *ui.Context) {
		d.Build(ctx)
		g.Clear = d.Background()
	}, contextOptions()...)
	d.frames = func() uint64 { return g.Frames }
	g.OnEvent = func(ev core.Event) bool {
		if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
			g.Quit()
			return true
		}
		return false
	}
	return ebitenhost.Run(g, cfg.Core())
}
