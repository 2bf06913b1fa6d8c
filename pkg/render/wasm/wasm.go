//go:build js && wasm

package wasm

import (
	"context"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/matzehuels/chartkit/pkg/render"
)

// Host returns the browser global scope as a render.Host.
func Host() render.Host { return host{} }

// Engine returns the global echarts object as a render.Engine.
func Engine() render.Engine { return engine{} }

type host struct{}

func (host) Window() (render.Window, bool) {
	w := js.Global().Get("window")
	if !present(w) {
		return nil, false
	}
	return window{w}, true
}

type window struct{ v js.Value }

func (w window) Document() (render.Document, bool) {
	d := w.v.Get("document")
	if !present(d) {
		return nil, false
	}
	return document{d}, true
}

func (w window) AddEventListener(event string, fn func()) (func(), error) {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	w.v.Call("addEventListener", event, cb)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		w.v.Call("removeEventListener", event, cb)
		cb.Release()
	}, nil
}

type document struct{ v js.Value }

func (d document) ElementByID(id string) (render.Element, bool) {
	el := d.v.Call("getElementById", id)
	if !present(el) {
		return nil, false
	}
	return element{id: id, v: el}, true
}

type element struct {
	id string
	v  js.Value
}

func (e element) ID() string { return e.id }

type engine struct{}

func (engine) Init(_ context.Context, el render.Element, theme string, size render.SizeOptions) (render.Instance, error) {
	ec := js.Global().Get("echarts")
	if !present(ec) {
		return nil, fmt.Errorf("global echarts object not found")
	}
	e, ok := el.(element)
	if !ok {
		return nil, fmt.Errorf("element %q was not obtained from this host", el.ID())
	}
	opts, err := toJS(size)
	if err != nil {
		return nil, err
	}
	var v js.Value
	if err := try(func() { v = ec.Call("init", e.v, theme, opts) }); err != nil {
		return nil, err
	}
	return instance{v}, nil
}

type instance struct{ v js.Value }

func (i instance) SetOption(_ context.Context, doc []byte) error {
	return try(func() {
		option := js.Global().Get("JSON").Call("parse", string(doc))
		i.v.Call("setOption", option)
	})
}

func (i instance) Resize(_ context.Context, opts *render.ResizeOptions) error {
	if opts == nil {
		return try(func() { i.v.Call("resize") })
	}
	v, err := toJS(opts)
	if err != nil {
		return err
	}
	return try(func() { i.v.Call("resize", v) })
}

func (i instance) GetDataURL(_ context.Context, opts render.ImageOptions) (string, error) {
	v, err := toJS(opts)
	if err != nil {
		return "", err
	}
	var url string
	err = try(func() { url = i.v.Call("getDataURL", v).String() })
	return url, err
}

func (i instance) Dispose(context.Context) error {
	return try(func() { i.v.Call("dispose") })
}

func present(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

// toJS converts v to a JavaScript object through its JSON form.
func toJS(v any) (js.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return js.Undefined(), err
	}
	return js.Global().Get("JSON").Call("parse", string(data)), nil
}

// try converts a JavaScript exception raised by fn into an error.
func try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if jsErr, ok := r.(js.Error); ok {
				err = jsErr
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}
