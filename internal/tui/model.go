package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/arisyntek/odate/dateformat"
	"github.com/arisyntek/odate/internal/format"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Entry is one watched timestamp.
type Entry struct {
	Label string    // what the user typed
	Time  time.Time // resolved instant
}

// RenderFunc renders an instant against the current time.
type RenderFunc func(t time.Time, opts dateformat.Options) string

// Model is the Bubble Tea model for the watch view.
type Model struct {
	entries  []Entry
	render   RenderFunc
	opts     dateformat.Options
	interval time.Duration
	spinner  spinner.Model
	keys     keyMap
	quitting bool
}

// tickMsg triggers a re-render of every entry.
type tickMsg time.Time

type keyMap struct {
	Full   key.Binding
	Hour12 key.Binding
	Today  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Full: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "full"),
		),
		Hour12: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "12-hour"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewModel creates a watch model. opts are the starting switches; the user
// can toggle them while watching.
func NewModel(entries []Entry, render RenderFunc, opts dateformat.Options, interval time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return Model{
		entries:  entries,
		render:   render,
		opts:     opts,
		interval: interval,
		spinner:  s,
		keys:     defaultKeyMap(),
	}
}

// Options returns the current formatting switches.
func (m Model) Options() dateformat.Options {
	return m.opts
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick(m.interval))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Full):
			m.opts.Full = !m.opts.Full
		case key.Matches(msg, m.keys.Hour12):
			m.opts.Hour12 = !m.opts.Hour12
		case key.Matches(msg, m.keys.Today):
			m.opts.Today = !m.opts.Today
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		return m, tick(m.interval)
	}

	return m, nil
}

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	if m.quitting {
		b.WriteString(fmt.Sprintf("  %s\n", titleStyle.Render("odate watch")))
	} else {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", m.spinner.View(), titleStyle.Render("odate watch"),
			dimStyle.Render(fmt.Sprintf("(every %s)", m.interval))))
	}
	b.WriteString("\n")

	width := 0
	for _, e := range m.entries {
		width = max(width, format.DisplayWidth(e.Label))
	}
	for _, e := range m.entries {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			labelStyle.Render(format.PadRight(e.Label, width)),
			valueStyle.Render(m.render(e.Time, m.opts))))
	}

	if !m.quitting {
		b.WriteString(footerStyle.Render("  " + m.helpLine()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpLine() string {
	toggles := []struct {
		binding key.Binding
		on      bool
	}{
		{m.keys.Full, m.opts.Full},
		{m.keys.Hour12, m.opts.Hour12},
		{m.keys.Today, m.opts.Today},
	}

	parts := make([]string, 0, len(toggles)+1)
	for _, t := range toggles {
		h := t.binding.Help()
		label := h.Desc
		if t.on {
			label = activeStyle.Render(label)
		}
		parts = append(parts, h.Key+" "+label)
	}
	q := m.keys.Quit.Help()
	parts = append(parts, q.Key+" "+q.Desc)
	return strings.Join(parts, " · ")
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
