// Package ui renders live pipeline progress with Bubble Tea, across Joy's
// four fixed phases (lex, parse, check, emit) rather than an arbitrary
// file list.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/eyelash/joy/internal/pipeline"
)

var phases = []pipeline.Phase{pipeline.PhaseLex, pipeline.PhaseParse, pipeline.PhaseCheck, pipeline.PhaseEmit}

type phaseStatus struct {
	status pipeline.Status
}

type eventMsg pipeline.Event
type doneMsg struct{}

type progressModel struct {
	title   string
	events  <-chan pipeline.Event
	spinner spinner.Model
	status  map[pipeline.Phase]phaseStatus
	width   int
	done    bool
}

// Run drives the progress display to completion against a live event
// stream, for use as the UI half of pipeline.RunWithUI.
func Run(title string, events <-chan pipeline.Event) error {
	_, err := tea.NewProgram(NewProgressModel(title, events), tea.WithOutput(os.Stderr)).Run()
	return err
}

// NewProgressModel returns a Bubble Tea model that renders the state of
// every phase as events arrive on events.
func NewProgressModel(title string, events <-chan pipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	status := make(map[pipeline.Phase]phaseStatus, len(phases))
	for _, p := range phases {
		status[p] = phaseStatus{}
	}
	return &progressModel{title: title, events: events, spinner: sp, status: status, width: 80}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listen())
}

func (m *progressModel) listen() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		m.status[msg.Phase] = phaseStatus{status: msg.Status}
		return m, m.listen()
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	var b strings.Builder
	title := runewidth.Truncate(m.title, m.width, "...")
	fmt.Fprintln(&b, title)
	for _, p := range phases {
		fmt.Fprintf(&b, "  %s %s\n", glyph(m, p), p)
	}
	return b.String()
}

func glyph(m *progressModel, p pipeline.Phase) string {
	switch m.status[p].status {
	case pipeline.StatusDone:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render("done")
	case pipeline.StatusFailed:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("failed")
	case pipeline.StatusStarted:
		return m.spinner.View()
	}
	return "queued"
}
