package core

import (
	"reflect"
	"testing"
)

type recLayer struct {
	name    string
	log     *[]string
	consume bool
}

func (l *recLayer) OnAttach(*Engine)          { *l.log = append(*l.log, "attach "+l.name) }
func (l *recLayer) OnDetach(*Engine)          { *l.log = append(*l.log, "detach "+l.name) }
func (l *recLayer) OnUpdate(*Engine, float64) { *l.log = append(*l.log, "update "+l.name) }
func (l *recLayer) OnRender(*Engine, float64) { *l.log = append(*l.log, "render "+l.name) }
func (l *recLayer) OnEvent(*Engine, Event) bool {
	*l.log = append(*l.log, "event "+l.name)
	return l.consume
}

func TestLayerDispatch(t *testing.T) {
	var log []string
	e := &Engine{}
	e.PushLayer(&recLayer{name: "game", log: &log})
	e.PushLayer(&recLayer{name: "ui", log: &log, consume: true})

	e.updateLayers(0)
	e.renderLayers(0)
	if handled := e.dispatch(EventMouseMove{}); !handled {
		t.Error("ui layer should consume the event")
	}
	e.detachAll()

	want := []string{
		"attach game", "attach ui",
		"update game", "update ui",
		"render game", "render ui",
		"event ui",
		"detach ui", "detach game",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("log =\n%q\nwant\n%q", log, want)
	}
	if e.Layers.Len() != 0 {
		t.Error("layers left after detachAll")
	}
}

func TestDispatchFallsThrough(t *testing.T) {
	var log []string
	e := &Engine{}
	e.PushLayer(&recLayer{name: "a", log: &log})
	e.PushLayer(&recLayer{name: "b", log: &log})
	log = nil
	if e.dispatch(EventText{}) {
		t.Error("no layer consumed, dispatch reported handled")
	}
	if want := []string{"event b", "event a"}; !reflect.DeepEqual(log, want) {
		t.Errorf("log = %q, want %q", log, want)
	}
	if _, ok := (&LayerStack{}).Pop(); ok {
		t.Error("Pop on empty stack succeeded")
	}
}
