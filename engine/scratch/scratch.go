package scratch

import (
	"errors"
	"strconv"
	"unsafe"
)

// ErrFull is returned when a write would grow the arena past its capacity.
var ErrFull = errors.New("scratch: arena full")

// Arena is a fixed-capacity byte buffer reset once per frame.
// It never grows: writes past Cap fail with ErrFull and leave the arena unchanged.
// Single-threaded usage only.
type Arena struct {
	buf []byte
}

// New allocates an arena once. Example: scratch.New(64 * 1024)
func New(capacity int) *Arena {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Arena{buf: make([]byte, 0, capacity)}
}

// Reset clears the length without freeing memory.
// Call this ONCE per frame; every view handed out before is invalidated.
func (a *Arena) Reset() { a.buf = a.buf[:0] }

func (a *Arena) Cap() int { return cap(a.buf) }
func (a *Arena) Len() int { return len(a.buf) }

// viewFrom returns a zero-copy view of the bytes written since mark.
// Valid only until the next Reset. The arena never reallocates, so later
// appends do not move it.
func (a *Arena) viewFrom(mark int) string {
	b := a.buf[mark:]
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// WriteString copies s and returns a view of the copy.
func (a *Arena) WriteString(s string) (string, error) {
	if len(a.buf)+len(s) > cap(a.buf) {
		return "", ErrFull
	}
	mark := len(a.buf)
	a.buf = append(a.buf, s...)
	return a.viewFrom(mark), nil
}

// ----- Minimal % formatter (no allocations, no reflection) -----
// Supports a tiny subset: %f %g %e (with .prec) %d %s %%.
// A single float argument is consumed by the first verb; %d truncates it
// and %s prints it in the shortest form.
//
// Usage:
//
//	s, err := arena.Formatf("%.2f", v)
func (a *Arena) Formatf(format string, v float64) (string, error) {
	mark := len(a.buf)
	used := false
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			if !a.appendByte(ch) {
				return a.fail(mark)
			}
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			if !a.appendByte('%') {
				return a.fail(mark)
			}
			i++
			continue
		}
		i++
		prec := -1
		if i < len(format) && format[i] == '.' {
			i++
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			prec = parseUint(format[start:i])
		}
		if i >= len(format) {
			break
		}
		verb := format[i]
		if used {
			// only one value; write further verbs literally
			if !a.appendBytes('%', verb) {
				return a.fail(mark)
			}
			continue
		}
		used = true
		var tmp [64]byte
		var out []byte
		switch verb {
		case 'f', 'e', 'g':
			p := 6
			if prec >= 0 {
				p = prec
			}
			if verb == 'g' && prec < 0 {
				p = -1
			}
			out = strconv.AppendFloat(tmp[:0], v, verb, p, 64)
		case 'd':
			out = strconv.AppendInt(tmp[:0], int64(v), 10)
		case 's':
			out = strconv.AppendFloat(tmp[:0], v, 'g', -1, 64)
		default:
			out = append(tmp[:0], '%', verb)
		}
		if !a.appendBytes(out...) {
			return a.fail(mark)
		}
	}
	return a.viewFrom(mark), nil
}

func (a *Arena) appendByte(c byte) bool {
	if len(a.buf) == cap(a.buf) {
		return false
	}
	a.buf = append(a.buf, c)
	return true
}

func (a *Arena) appendBytes(b ...byte) bool {
	if len(a.buf)+len(b) > cap(a.buf) {
		return false
	}
	a.buf = append(a.buf, b...)
	return true
}

func (a *Arena) fail(mark int) (string, error) {
	a.buf = a.buf[:mark]
	return "", ErrFull
}

func parseUint(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
