package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartkit/pkg/pipeline"
)

// statusReporter receives serve events for display.
type statusReporter interface {
	listening(url string)
	connected(session string, err error)
	disconnected(session string)
	pages(n int)
	reloaded(result *pipeline.Result, updated int, err error)
}

// logStatus reports serve events through the logger.
type logStatus struct {
	logger *log.Logger
}

func (s logStatus) listening(url string) {
	s.logger.Info("open the preview in a browser", "url", url)
}

func (s logStatus) connected(session string, err error) {
	if err != nil {
		s.logger.Error("attach failed", "session", short(session), "err", err)
		return
	}
	s.logger.Info("page attached", "session", short(session))
}

func (s logStatus) disconnected(session string) {
	s.logger.Info("page closed", "session", short(session))
}

func (s logStatus) pages(int) {}

func (s logStatus) reloaded(result *pipeline.Result, updated int, err error) {
	if err != nil {
		s.logger.Error("reload failed", "err", err)
		return
	}
	s.logger.Info("reloaded", "series", result.Stats.SeriesCount, "pages", updated)
}

// tuiStatus forwards serve events to the status view.
type tuiStatus struct {
	send func(msg any)
}

func (s tuiStatus) listening(url string) { s.send(listeningMsg{url: url}) }

func (s tuiStatus) connected(session string, err error) {
	if err != nil {
		s.send(eventMsg{at: time.Now(), text: fmt.Sprintf("attach %s failed: %v", short(session), err), err: true})
		return
	}
	s.send(eventMsg{at: time.Now(), text: "page " + short(session) + " attached"})
}

func (s tuiStatus) disconnected(session string) {
	s.send(eventMsg{at: time.Now(), text: "page " + short(session) + " closed"})
}

func (s tuiStatus) pages(n int) { s.send(pagesMsg{n: n}) }

func (s tuiStatus) reloaded(result *pipeline.Result, updated int, err error) {
	msg := reloadMsg{at: time.Now(), updated: updated, err: err}
	if result != nil {
		msg.series = result.Stats.SeriesCount
	}
	s.send(msg)
}

// short abbreviates a session id for display.
func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
