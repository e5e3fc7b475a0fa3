//go:build profile

// Package profiler records nested timing scopes into a ring buffer and
// writes them as a speedscope evented profile. Without the "profile"
// build tag every call is a no-op.
package profiler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"syscall"
	"time"
)

const Enabled = true

// Init must be called once with the ring capacity in scope events.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 20
	}
	events.init(capacity)
}

// Start begins a scope and returns the func that ends it.
func Start(name string) func() {
	if !events.ready.Load() {
		return func() {}
	}
	fid := scopeNames.id(name)
	now := time.Now().UnixNano()
	events.push(mark{at: now, name: fid, open: true})
	return func() {
		end := time.Now().UnixNano()
		if end < now {
			end = now
		}
		events.push(mark{at: end, name: fid})
	}
}

// WriteSpeedscope dumps the recorded scopes to path.
func WriteSpeedscope(path string) error {
	doc, err := buildProfile(events.snapshot(), scopeNames.snapshot())
	if err != nil {
		return err
	}
	return writeJSON(path, &doc)
}

// OpenProfilerGraph writes the scopes to a temporary file and opens it in
// speedscope.
func OpenProfilerGraph() (string, error) {
	profilePath := filepath.Join(os.TempDir(), "xui.profile.speedscope.json")
	if err := WriteSpeedscope(profilePath); err != nil {
		return "", err
	}

	cmd := exec.Command("speedscope", profilePath)
	if runtime.GOOS == "windows" {
		if spa, ok := hideWindowAttr().(*syscall.SysProcAttr); ok {
			cmd.SysProcAttr = spa
		}
	}
	if err := cmd.Start(); err != nil {
		slog.Warn("launching speedscope", "err", err)
	}
	return profilePath, nil
}

// mark is one scope boundary.
type mark struct {
	at   int64 // unix nanoseconds
	name int   // index into scopeNames
	open bool
}

// ring keeps the most recent marks. Writers never block; a reader may
// see a slot overwritten mid-snapshot, which only costs one bad mark.
type ring struct {
	ready atomic.Bool
	n     atomic.Uint64
	buf   []mark
}

func (r *ring) init(capacity int) {
	r.buf = make([]mark, capacity)
	r.n.Store(0)
	r.ready.Store(true)
}

func (r *ring) push(m mark) {
	i := r.n.Add(1) - 1
	r.buf[i%uint64(len(r.buf))] = m
}

// snapshot returns the retained marks oldest first.
func (r *ring) snapshot() []mark {
	n := r.n.Load()
	size := uint64(len(r.buf))
	first := uint64(0)
	if n > size {
		first = n - size
	}
	out := make([]mark, 0, n-first)
	for k := first; k < n; k++ {
		out = append(out, r.buf[k%size])
	}
	return out
}

var events ring

type nameTable struct {
	mu   sync.Mutex
	list []string
	ids  map[string]int
}

func (t *nameTable) id(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[name]; ok {
		return id
	}
	if t.ids == nil {
		t.ids = make(map[string]int)
	}
	t.ids[name] = len(t.list)
	t.list = append(t.list, name)
	return len(t.list) - 1
}

func (t *nameTable) snapshot() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.list...)
}

var scopeNames nameTable

// Speedscope evented-profile schema.
type ssFile struct {
	Schema             string      `json:"$schema"`
	Shared             ssShared    `json:"shared"`
	Profiles           []ssProfile `json:"profiles"`
	ActiveProfileIndex int         `json:"activeProfileIndex"`
	Exporter           string      `json:"exporter,omitempty"`
	Name               string      `json:"name,omitempty"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"` // O or C
	At    int64  `json:"at"`   // microseconds from the first mark
	Frame int    `json:"frame"`
}

// buildProfile converts marks into a balanced evented profile. A close
// that does not match the innermost open scope belonged to a scope whose
// open fell out of the ring and is dropped; scopes still open at the end
// are closed at the last timestamp.
func buildProfile(marks []mark, names []string) (ssFile, error) {
	if len(marks) == 0 {
		return ssFile{}, errors.New("profiler: no events to dump")
	}
	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}

	origin := marks[0].at
	var last int64
	evs := make([]ssEvent, 0, len(marks))
	var open []int
	for _, m := range marks {
		at := max(last, (m.at-origin)/1000)
		if m.open {
			open = append(open, m.name)
			evs = append(evs, ssEvent{Type: "O", At: at, Frame: m.name})
		} else {
			if len(open) == 0 || open[len(open)-1] != m.name {
				continue
			}
			open = open[:len(open)-1]
			evs = append(evs, ssEvent{Type: "C", At: at, Frame: m.name})
		}
		last = at
	}
	for i := len(open) - 1; i >= 0; i-- {
		evs = append(evs, ssEvent{Type: "C", At: last, Frame: open[i]})
	}
	if len(evs) == 0 {
		return ssFile{}, errors.New("profiler: no balanced scopes")
	}

	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "xui frames",
			Unit:     "microseconds",
			EndValue: last,
			Events:   evs,
		}},
		Exporter: "xui-profiler",
		Name:     "xui capture",
	}, nil
}

// writeJSON replaces path atomically.
func writeJSON(path string, v any) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
