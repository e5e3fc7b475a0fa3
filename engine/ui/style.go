package ui

import "github.com/hubastard/xui/engine/colors"

// ColorID indexes Style.Colors.
type ColorID int

const (
	ColorText ColorID = iota
	ColorBorder
	ColorWindow
	ColorTitleBG
	ColorTitleText
	ColorPanel
	ColorButton
	ColorButtonHover
	ColorButtonFocus
	ColorBase
	ColorBaseHover
	ColorBaseFocus
	ColorScrollBase
	ColorScrollThumb
	ColorMax
)

var colorNames = [ColorMax]string{
	"text", "border", "window", "titlebg", "titletext", "panel",
	"button", "buttonhover", "buttonfocus",
	"base", "basehover", "basefocus",
	"scrollbase", "scrollthumb",
}

func (id ColorID) String() string {
	if id < 0 || id >= ColorMax {
		return "unknown"
	}
	return colorNames[id]
}

// ColorByName resolves the lower-case names used by configuration files.
func ColorByName(name string) (ColorID, bool) {
	for i, n := range colorNames {
		if n == name {
			return ColorID(i), true
		}
	}
	return 0, false
}

// Style is the flat metric and color table. It is read-only during a frame
// and may be swapped wholesale between frames with Context.SetStyle.
type Style struct {
	Font          Font // nil uses the context's font
	Width         int
	Height        int
	Padding       int
	Spacing       int
	Indent        int
	TitleHeight   int
	ScrollbarSize int
	ThumbSize     int
	Background    colors.Color
	Colors        [ColorMax]colors.Color
}

func DefaultStyle() Style {
	return Style{
		Width:         68,
		Height:        10,
		Padding:       5,
		Spacing:       4,
		Indent:        24,
		TitleHeight:   24,
		ScrollbarSize: 12,
		ThumbSize:     8,
		Background:    colors.RGBA(90, 95, 100, 255),
		Colors: [ColorMax]colors.Color{
			ColorText:        colors.RGBA(230, 230, 230, 255),
			ColorBorder:      colors.RGBA(25, 25, 25, 255),
			ColorWindow:      colors.RGBA(50, 50, 50, 255),
			ColorTitleBG:     colors.RGBA(25, 25, 25, 255),
			ColorTitleText:   colors.RGBA(240, 240, 240, 255),
			ColorPanel:       colors.RGBA(0, 0, 0, 0),
			ColorButton:      colors.RGBA(75, 75, 75, 255),
			ColorButtonHover: colors.RGBA(95, 95, 95, 255),
			ColorButtonFocus: colors.RGBA(115, 115, 115, 255),
			ColorBase:        colors.RGBA(30, 30, 30, 255),
			ColorBaseHover:   colors.RGBA(35, 35, 35, 255),
			ColorBaseFocus:   colors.RGBA(40, 40, 40, 255),
			ColorScrollBase:  colors.RGBA(43, 43, 43, 255),
			ColorScrollThumb: colors.RGBA(30, 30, 30, 255),
		},
	}
}

// Option flags tune widget and container behavior.
type Option uint32

const (
	OptAlignCenter Option = 1 << iota
	OptAlignRight
	OptNoInteract
	OptNoFrame
	OptNoResize
	OptNoScroll
	OptNoClose
	OptNoTitle
	OptHoldFocus
	OptAutoSize
	OptPopup
	OptClosed
	OptExpanded
)

// Result flags are returned by widgets.
type Result uint8

const (
	ResActive Result = 1 << iota
	ResSubmit
	ResChange
)

// Icon identifies a glyph the surface knows how to draw.
type Icon int

const (
	IconNone Icon = iota
	IconClose
	IconCheck
	IconCollapsed
	IconExpanded
)

// MouseButton is a bit set of mouse buttons.
type MouseButton uint8

const (
	MouseLeft MouseButton = 1 << iota
	MouseRight
	MouseMiddle
)

// Key is a bit set of the keys the engine reacts to.
type Key uint8

const (
	KeyShift Key = 1 << iota
	KeyCtrl
	KeyAlt
	KeyBackspace
	KeyReturn
)
