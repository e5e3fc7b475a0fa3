package core

import "iter"

// Layer is a slice of the app that receives the engine callbacks in stack
// order. Events go top-down and stop at the first layer that handles them.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)
	OnEvent(e *Engine, ev Event) bool // true stops propagation
}

// LayerStack orders layers bottom to top.
type LayerStack struct{ list []Layer }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }

func (ls *LayerStack) Pop() (Layer, bool) {
	n := len(ls.list)
	if n == 0 {
		return nil, false
	}
	l := ls.list[n-1]
	ls.list[n-1] = nil
	ls.list = ls.list[:n-1]
	return l, true
}

func (ls *LayerStack) Len() int { return len(ls.list) }

// All yields layers bottom to top.
func (ls *LayerStack) All() iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		for _, l := range ls.list {
			if !yield(l) {
				return
			}
		}
	}
}

// Backward yields layers top to bottom.
func (ls *LayerStack) Backward() iter.Seq[Layer] {
	return func(yield func(Layer) bool) {
		for i := len(ls.list) - 1; i >= 0; i-- {
			if !yield(ls.list[i]) {
				return
			}
		}
	}
}

// PushLayer attaches l on top of the engine's layer stack.
func (e *Engine) PushLayer(l Layer) {
	e.Layers.Push(l)
	l.OnAttach(e)
}

// PopLayer detaches the top layer.
func (e *Engine) PopLayer() {
	if l, ok := e.Layers.Pop(); ok {
		l.OnDetach(e)
	}
}

func (e *Engine) updateLayers(dt float64) {
	for l := range e.Layers.All() {
		l.OnUpdate(e, dt)
	}
}

func (e *Engine) renderLayers(alpha float64) {
	for l := range e.Layers.All() {
		l.OnRender(e, alpha)
	}
}

// dispatch offers ev to the layers top-down and reports whether one
// consumed it.
func (e *Engine) dispatch(ev Event) bool {
	for l := range e.Layers.Backward() {
		if l.OnEvent(e, ev) {
			return true
		}
	}
	return false
}

func (e *Engine) detachAll() {
	for e.Layers.Len() > 0 {
		e.PopLayer()
	}
}
