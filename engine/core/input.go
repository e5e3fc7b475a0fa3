package core

import "sync"

// Input tracks the latest key and pointer state seen in events.
type Input struct {
	keys           map[Key]bool
	buttons        [3]bool
	mouseX, mouseY float64
}

func NewInput() *Input { return &Input{keys: map[Key]bool{}} }

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		in.keys[e.Key] = e.Down
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if int(e.Button) < len(in.buttons) {
			in.buttons[e.Button] = e.Down
		}
		in.mouseX, in.mouseY = e.X, e.Y
	}
}

func (in *Input) IsKeyDown(k Key) bool { return in.keys[k] }

func (in *Input) IsMouseDown(b MouseButton) bool {
	return int(b) < len(in.buttons) && in.buttons[b]
}

func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

// EventQueue buffers events delivered by platform callbacks until the app
// drains them at the start of a frame. Safe for concurrent Push.
type EventQueue struct {
	mu      sync.Mutex
	pending []Event
	spare   []Event
}

func (q *EventQueue) Push(ev Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// Drain hands every buffered event to fn in arrival order. Events pushed
// from inside fn are delivered on the next Drain.
func (q *EventQueue) Drain(fn func(Event)) {
	q.mu.Lock()
	batch := q.pending
	q.pending = q.spare[:0]
	q.mu.Unlock()

	for _, ev := range batch {
		fn(ev)
	}
	clear(batch)
	q.mu.Lock()
	q.spare = batch[:0]
	q.mu.Unlock()
}

func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
