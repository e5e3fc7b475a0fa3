// Package config loads engine settings from TOML. Keys missing from the
// file keep their defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hubastard/xui/engine/colors"
	"github.com/hubastard/xui/engine/core"
	"github.com/hubastard/xui/engine/ui"
)

type Config struct {
	Window Window `toml:"window"`
	Limits Limits `toml:"limits"`
	Style  Style  `toml:"style"`
}

type Window struct {
	Title      string  `toml:"title"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	VSync      bool    `toml:"vsync"`
	ClearColor Color   `toml:"clear_color"`
	TickRate   int     `toml:"tick_rate"`
	FontSize   float64 `toml:"font_size"`
}

type Limits struct {
	Commands       int `toml:"commands"`
	TextBytes      int `toml:"text_bytes"`
	RootList       int `toml:"root_list"`
	ContainerStack int `toml:"container_stack"`
	ClipStack      int `toml:"clip_stack"`
	IDStack        int `toml:"id_stack"`
	LayoutStack    int `toml:"layout_stack"`
	ContainerPool  int `toml:"container_pool"`
	TreeNodePool   int `toml:"treenode_pool"`
	InputText      int `toml:"input_text"`
	NumberEdit     int `toml:"number_edit"`
}

type Style struct {
	Width         int              `toml:"width"`
	Height        int              `toml:"height"`
	Padding       int              `toml:"padding"`
	Spacing       int              `toml:"spacing"`
	Indent        int              `toml:"indent"`
	TitleHeight   int              `toml:"title_height"`
	ScrollbarSize int              `toml:"scrollbar_size"`
	ThumbSize     int              `toml:"thumb_size"`
	Background    Color            `toml:"background"`
	Colors        map[string]Color `toml:"colors"`
}

// Color accepts [r, g, b], [r, g, b, a] or "#rrggbb[aa]".
type Color colors.Color

func (c *Color) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case []any:
		if len(v) != 3 && len(v) != 4 {
			return fmt.Errorf("color: want 3 or 4 components, got %d", len(v))
		}
		ch := [4]uint8{0, 0, 0, 255}
		for i, x := range v {
			n, ok := x.(int64)
			if !ok || n < 0 || n > 255 {
				return fmt.Errorf("color: component %d: %v is not in 0..255", i, x)
			}
			ch[i] = uint8(n)
		}
		*c = Color{ch[0], ch[1], ch[2], ch[3]}
		return nil
	case string:
		return c.parseHex(v)
	}
	return fmt.Errorf("color: unsupported value %T", v)
}

func (c *Color) parseHex(s string) error {
	h, ok := strings.CutPrefix(s, "#")
	if !ok || (len(h) != 6 && len(h) != 8) {
		return fmt.Errorf("color: %q is not #rrggbb or #rrggbbaa", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return fmt.Errorf("color: %q: %w", s, err)
	}
	*c = Color{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}
	return nil
}

// Default mirrors the engine defaults.
func Default() *Config {
	lim := ui.DefaultLimits()
	st := ui.DefaultStyle()
	return &Config{
		Window: Window{
			Title:      "xui",
			Width:      1280,
			Height:     720,
			VSync:      true,
			ClearColor: Color(colors.DarkGray),
			TickRate:   60,
			FontSize:   14,
		},
		Limits: Limits{
			Commands:       lim.Commands,
			TextBytes:      lim.TextBytes,
			RootList:       lim.RootList,
			ContainerStack: lim.ContainerStack,
			ClipStack:      lim.ClipStack,
			IDStack:        lim.IDStack,
			LayoutStack:    lim.LayoutStack,
			ContainerPool:  lim.ContainerPool,
			TreeNodePool:   lim.TreeNodePool,
			InputText:      lim.InputText,
			NumberEdit:     lim.NumberEdit,
		},
		Style: Style{
			Width:         st.Width,
			Height:        st.Height,
			Padding:       st.Padding,
			Spacing:       st.Spacing,
			Indent:        st.Indent,
			TitleHeight:   st.TitleHeight,
			ScrollbarSize: st.ScrollbarSize,
			ThumbSize:     st.ThumbSize,
			Background:    Color(st.Background),
		},
	}
}

// LoadFile reads path on top of Default.
func LoadFile(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of Default. Unknown keys and color names are
// errors.
func Parse(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, err
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	for name := range cfg.Style.Colors {
		if _, ok := ui.ColorByName(name); !ok {
			return nil, fmt.Errorf("style.colors: unknown color %q", name)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Window.FontSize <= 0 {
		return fmt.Errorf("window: font_size %v must be positive", c.Window.FontSize)
	}
	l := c.Limits
	for _, f := range []struct {
		name string
		v    int
	}{
		{"commands", l.Commands}, {"text_bytes", l.TextBytes}, {"root_list", l.RootList},
		{"container_stack", l.ContainerStack}, {"clip_stack", l.ClipStack},
		{"id_stack", l.IDStack}, {"layout_stack", l.LayoutStack},
		{"container_pool", l.ContainerPool}, {"treenode_pool", l.TreeNodePool},
		{"input_text", l.InputText}, {"number_edit", l.NumberEdit},
	} {
		if f.v <= 0 {
			return fmt.Errorf("limits.%s: %d must be positive", f.name, f.v)
		}
	}
	return nil
}

func (c *Config) Core() core.Config {
	return core.Config{
		Title:      c.Window.Title,
		Width:      c.Window.Width,
		Height:     c.Window.Height,
		VSync:      c.Window.VSync,
		ClearColor: colors.Color(c.Window.ClearColor),
		TickRate:   c.Window.TickRate,
	}
}

func (c *Config) UILimits() ui.Limits {
	l := c.Limits
	return ui.Limits{
		Commands:       l.Commands,
		TextBytes:      l.TextBytes,
		RootList:       l.RootList,
		ContainerStack: l.ContainerStack,
		ClipStack:      l.ClipStack,
		IDStack:        l.IDStack,
		LayoutStack:    l.LayoutStack,
		ContainerPool:  l.ContainerPool,
		TreeNodePool:   l.TreeNodePool,
		InputText:      l.InputText,
		NumberEdit:     l.NumberEdit,
	}
}

// UIStyle applies the style section to ui.DefaultStyle. The font is left
// nil so the context's font is used.
func (c *Config) UIStyle() ui.Style {
	st := ui.DefaultStyle()
	s := c.Style
	st.Width, st.Height = s.Width, s.Height
	st.Padding, st.Spacing, st.Indent = s.Padding, s.Spacing, s.Indent
	st.TitleHeight, st.ScrollbarSize, st.ThumbSize = s.TitleHeight, s.ScrollbarSize, s.ThumbSize
	st.Background = colors.Color(s.Background)
	for name, col := range s.Colors {
		if id, ok := ui.ColorByName(name); ok {
			st.Colors[id] = colors.Color(col)
		}
	}
	return st
}
