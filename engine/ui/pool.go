package ui

// PoolItem binds an ID to a slot and records the frame it was last used.
type PoolItem struct {
	ID         ID
	LastUpdate int
}

// Pool maps IDs onto a fixed number of slots with least-recently-used
// eviction. Slot indices stay stable while the ID keeps being touched, so
// callers keep their per-ID state in a parallel array.
type Pool struct {
	items []PoolItem
}

func NewPool(size int) Pool { return Pool{items: make([]PoolItem, size)} }

func (p *Pool) Len() int { return len(p.items) }

// Item returns the slot at idx.
func (p *Pool) Item(idx int) PoolItem { return p.items[idx] }

// Get returns the slot holding id, or -1.
func (p *Pool) Get(id ID) int {
	for i := range p.items {
		if p.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Init claims the least recently updated slot for id. Only slots not touched
// in the current frame qualify; ties go to the lowest index.
func (p *Pool) Init(id ID, frame int) (int, error) {
	n, f := -1, frame
	for i := range p.items {
		if p.items[i].LastUpdate < f {
			f = p.items[i].LastUpdate
			n = i
		}
	}
	if n < 0 {
		return -1, &CapacityError{Resource: "pool", Limit: len(p.items)}
	}
	p.items[n] = PoolItem{ID: id, LastUpdate: frame}
	return n, nil
}

// Update marks the slot as used in frame.
func (p *Pool) Update(idx, frame int) { p.items[idx].LastUpdate = frame }

// Reset frees the slot so Get no longer finds it.
func (p *Pool) Reset(idx int) { p.items[idx] = PoolItem{} }

// rebase shifts every timestamp back by offset, flooring at zero.
func (p *Pool) rebase(offset int) {
	for i := range p.items {
		p.items[i].LastUpdate = max(0, p.items[i].LastUpdate-offset)
	}
}
