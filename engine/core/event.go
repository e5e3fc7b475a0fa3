package core

// Event is anything a Window reports. Hosts deliver events in the order
// the platform produced them.
type Event interface{ isEvent() }

type (
	EventCloseRequested struct{}

	// EventResize carries the new framebuffer size.
	EventResize struct{ W, H int }

	EventKey struct {
		Key  Key
		Down bool
		Mods Mod
	}

	// EventMouseMove is in framebuffer pixels.
	EventMouseMove struct{ X, Y float64 }

	// EventMouseButton carries the pointer position at the time of the click.
	EventMouseButton struct {
		Button MouseButton
		Down   bool
		X, Y   float64
	}

	// EventScroll is a wheel delta in notches; positive DY scrolls up.
	EventScroll struct{ DX, DY float64 }

	// EventText is committed text, already composed by the platform.
	EventText struct{ Text string }
)

func (EventCloseRequested) isEvent() {}
func (EventResize) isEvent()         {}
func (EventKey) isEvent()            {}
func (EventMouseMove) isEvent()      {}
func (EventMouseButton) isEvent()    {}
func (EventScroll) isEvent()         {}
func (EventText) isEvent()           {}

// Key covers the keys the UI and the demo hosts react to.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyBackspace
	KeyEnter
	KeyTab
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyP
)

var keyNames = [...]string{
	KeyUnknown:      "unknown",
	KeyEscape:       "escape",
	KeySpace:        "space",
	KeyBackspace:    "backspace",
	KeyEnter:        "enter",
	KeyTab:          "tab",
	KeyLeftShift:    "lshift",
	KeyRightShift:   "rshift",
	KeyLeftControl:  "lctrl",
	KeyRightControl: "rctrl",
	KeyLeftAlt:      "lalt",
	KeyRightAlt:     "ralt",
	KeyP:            "p",
}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// Mod is a set of held modifier keys.
type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModSuper
)

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	}
	return "unknown"
}
