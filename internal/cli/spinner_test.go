package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testSpinner(ctx context.Context, message string) (*Spinner, *syncBuffer) {
	s := newSpinnerWithContext(ctx, message)
	out := &syncBuffer{}
	s.out = out
	return s, out
}

func TestSpinnerDraws(t *testing.T) {
	s, out := testSpinner(context.Background(), "Waiting for a browser...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.SetMessage("Capturing image...")
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	got := out.String()
	for _, want := range []string{"Waiting for a browser...", "Capturing image...", "0s"} {
		if !strings.Contains(got, want) {
			t.Errorf("spinner output missing %q", want)
		}
	}
	if s.Cancelled() {
		t.Error("Cancelled() = true after Stop")
	}
}

func TestSpinnerCancelled(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			return ctx, cancel
		}},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 20*time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			defer cancel()
			s, _ := testSpinner(ctx, "waiting")
			s.Start()
			time.Sleep(100 * time.Millisecond)
			if !s.Cancelled() {
				t.Error("Cancelled() = false after the context ended")
			}
			s.Stop()
		})
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := testSpinner(context.Background(), "stopping")
	s.Start()
	s.Stop()
	s.Stop()
	s.StopWithSuccess("done")
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s, out := testSpinner(context.Background(), "never started")
	s.Stop()
	if out.String() != "" {
		t.Errorf("output = %q, want nothing", out.String())
	}
}
