package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// maxEvents is the number of event lines the status view keeps.
const maxEvents = 8

var (
	tuiLabelStyle = lipgloss.NewStyle().Foreground(colorLabel).Width(10)
	tuiBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
)

type listeningMsg struct{ url string }

type pagesMsg struct{ n int }

type eventMsg struct {
	at   time.Time
	text string
	err  bool
}

type reloadMsg struct {
	at      time.Time
	series  int
	updated int
	err     error
}

// ServeModel is the bubbletea model behind 'serve --tui'.
type ServeModel struct {
	File    string
	URL     string
	Pages   int
	Reloads int
	LastErr error
	Events  []eventMsg
	Width   int
}

// NewServeModel creates the status view for the given chart file.
func NewServeModel(file string) ServeModel {
	return ServeModel{File: file}
}

func (m ServeModel) Init() tea.Cmd {
	return nil
}

func (m ServeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Width = msg.Width
	case listeningMsg:
		m.URL = msg.url
	case pagesMsg:
		m.Pages = msg.n
	case eventMsg:
		m = m.push(msg)
	case reloadMsg:
		m.LastErr = msg.err
		if msg.err != nil {
			m = m.push(eventMsg{at: msg.at, text: "reload failed: " + msg.err.Error(), err: true})
			break
		}
		m.Reloads++
		m = m.push(eventMsg{at: msg.at, text: fmt.Sprintf("reloaded %d series on %d pages", msg.series, msg.updated)})
	}
	return m, nil
}

func (m ServeModel) push(e eventMsg) ServeModel {
	events := append(m.Events, e)
	if len(events) > maxEvents {
		events = events[len(events)-maxEvents:]
	}
	m.Events = events
	return m
}

func (m ServeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("chartkit preview"))
	b.WriteString("\n\n")

	url := StyleDim.Render("starting…")
	if m.URL != "" {
		url = StyleLink.Render(m.URL)
	}
	status := StyleSuccess.Render("ok")
	if m.LastErr != nil {
		status = styleIconError.Render("error")
	}
	rows := [][2]string{
		{"file", StyleValue.Render(m.File)},
		{"url", url},
		{"pages", StyleNumber.Render(fmt.Sprint(m.Pages))},
		{"reloads", StyleNumber.Render(fmt.Sprint(m.Reloads))},
		{"status", status},
	}
	var info strings.Builder
	for i, r := range rows {
		if i > 0 {
			info.WriteString("\n")
		}
		info.WriteString(tuiLabelStyle.Render(r[0]) + " " + r[1])
	}
	b.WriteString(tuiBoxStyle.Render(info.String()))
	b.WriteString("\n\n")

	if len(m.Events) == 0 {
		b.WriteString(StyleDim.Render("  waiting for a browser…"))
		b.WriteString("\n")
	}
	for _, e := range m.Events {
		line := e.text
		if e.err {
			line = StyleWarning.Render(line)
		}
		b.WriteString("  " + StyleDim.Render(e.at.Format("15:04:05")) + " " + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render("q quit"))
	return b.String()
}
