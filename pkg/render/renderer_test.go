package render_test

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/component"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/render"
	"github.com/matzehuels/chartkit/pkg/render/headless"
	"github.com/matzehuels/chartkit/pkg/series"
)

func sampleChart() chart.Chart {
	return chart.New().
		XAxis(component.NewAxis().Type(component.AxisCategory).Data("a", "b")).
		YAxis(component.NewAxis().Type(component.AxisValue)).
		Series(series.NewBar().Data(series.Values(1, 2)...))
}

func TestAttachHostLookupErrors(t *testing.T) {
	tests := []struct {
		name    string
		host    *headless.Host
		id      string
		target  render.LookupTarget
		wantMsg string
	}{
		{"no window", headless.NewHost(headless.WithoutWindow()), "chart", render.LookupWindow, "no `window` object found"},
		{"no document", headless.NewHost(headless.WithoutDocument()), "chart", render.LookupDocument, "no `document` object found"},
		{"missing element", headless.NewHost(headless.WithElements("chart")), "missing-id", render.LookupElement, "no element with id `missing-id` found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := headless.NewEngine()
			h, err := render.New().Attach(context.Background(), tt.host, engine, tt.id, []byte(`{}`))
			if h != nil {
				t.Errorf("Attach() handle = %v, want nil", h)
			}
			var lookup *render.HostLookupError
			if !stderrors.As(err, &lookup) {
				t.Fatalf("Attach() error = %v, want *HostLookupError", err)
			}
			if lookup.Target != tt.target {
				t.Errorf("Target = %v, want %v", lookup.Target, tt.target)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", err.Error(), tt.wantMsg)
			}
			if !errors.Is(err, errors.ErrCodeHostLookup) {
				t.Errorf("GetCode() = %q, want %q", errors.GetCode(err), errors.ErrCodeHostLookup)
			}
			if calls := engine.Calls(); len(calls) != 0 {
				t.Errorf("engine calls = %v, want none", calls)
			}
		})
	}
}

func TestAttachMissingIDMessage(t *testing.T) {
	_, err := render.New().Attach(context.Background(), headless.NewHost(), headless.NewEngine(), "missing-id", []byte(`{}`))
	if err == nil || !strings.Contains(err.Error(), "missing-id") {
		t.Errorf("Attach() error = %v, want message containing %q", err, "missing-id")
	}
}

func TestAttachPushesDocument(t *testing.T) {
	host := headless.NewHost(headless.WithElements("chart"))
	engine := headless.NewEngine()
	r := render.New(render.WithTheme(chart.ThemeDark), render.WithSize(800, 600))

	h, err := r.Render(context.Background(), host, engine, "chart", sampleChart())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if h.State() != render.StateAttached {
		t.Errorf("State() = %v, want attached", h.State())
	}
	if h.ID() == "" {
		t.Error("ID() is empty")
	}
	if h.Target() != "chart" {
		t.Errorf("Target() = %q, want chart", h.Target())
	}

	calls := engine.Calls()
	if len(calls) != 2 {
		t.Fatalf("calls = %v, want init and setOption", calls)
	}
	if calls[0].Name != "init" || calls[0].Theme != "dark" || calls[0].Target != "chart" {
		t.Errorf("calls[0] = %v", calls[0])
	}
	if calls[0].Payload != `{"width":800,"height":600}` {
		t.Errorf("init size = %s", calls[0].Payload)
	}
	want := string(chart.MustSerialize(sampleChart()))
	if calls[1].Name != "setOption" || calls[1].Payload != want {
		t.Errorf("calls[1] = %v, want setOption %s", calls[1], want)
	}
}

func TestAttachWithoutSize(t *testing.T) {
	engine := headless.NewEngine()
	_, err := render.New().Attach(context.Background(), headless.NewHost(headless.WithElements("c")), engine, "c", []byte(`{}`))
	if err != nil {
		t.Fatalf("Attach() error: %v", err)
	}
	if got := engine.Calls()[0]; got.Payload != "" || got.Theme != "" {
		t.Errorf("init call = %v, want default theme and no size", got)
	}
}

func TestAttachSetOptionFailureDisposesInstance(t *testing.T) {
	engine := headless.NewEngine(headless.WithFailure("setOption", stderrors.New("bad option")))
	h, err := render.New().Attach(context.Background(), headless.NewHost(headless.WithElements("c")), engine, "c", []byte(`{}`))
	if h != nil {
		t.Error("Attach() returned a handle on failure")
	}
	if !errors.Is(err, errors.ErrCodeEngine) {
		t.Errorf("GetCode() = %q, want %q", errors.GetCode(err), errors.ErrCodeEngine)
	}
	if got := strings.Join(engine.CallNames(), ","); got != "init,setOption,dispose" {
		t.Errorf("calls = %s, want init,setOption,dispose", got)
	}
	if engine.Live() != 0 {
		t.Errorf("Live() = %d, want 0", engine.Live())
	}
}

func TestAttachInitFailure(t *testing.T) {
	engine := headless.NewEngine(headless.WithFailure("init", stderrors.New("no canvas")))
	_, err := render.New().Attach(context.Background(), headless.NewHost(headless.WithElements("c")), engine, "c", []byte(`{}`))
	if !errors.Is(err, errors.ErrCodeEngine) {
		t.Errorf("GetCode() = %q, want %q", errors.GetCode(err), errors.ErrCodeEngine)
	}
	if !strings.Contains(err.Error(), "no canvas") {
		t.Errorf("Error() = %q, want cause", err)
	}
}

func TestAttachCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := render.New().Attach(ctx, headless.NewHost(headless.WithElements("c")), headless.NewEngine(), "c", []byte(`{}`))
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("Attach() error = %v, want context.Canceled", err)
	}
}
