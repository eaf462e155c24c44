package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/arisyntek/odate/dateformat"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

var watchNow = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newWatchModel(clock clockwork.Clock) Model {
	f := dateformat.New(
		dateformat.WithClock(clock),
		dateformat.WithLocation(time.UTC),
		dateformat.WithLocale(dateformat.English),
	)
	render := func(t time.Time, opts dateformat.Options) string {
		return f.FormatTime(t, dateformat.WithOptions(opts))
	}
	entries := []Entry{
		{Label: "recent", Time: watchNow.Add(-5 * time.Second)},
		{Label: "christmas", Time: time.Date(2023, time.December, 25, 15, 45, 0, 0, time.UTC)},
	}
	return NewModel(entries, render, dateformat.Options{}, time.Second)
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestViewRendersEntries(t *testing.T) {
	m := newWatchModel(clockwork.NewFakeClockAt(watchNow))
	view := m.View()

	for _, want := range []string{"odate watch", "recent", "just now", "christmas", "2023 Dec 25, 15:45", "q quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestViewFollowsClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(watchNow)
	m := newWatchModel(clock)

	clock.Advance(10 * time.Second)
	updated, cmd := m.Update(tickMsg(clock.Now()))
	if cmd == nil {
		t.Error("expected tick to schedule the next tick")
	}
	if view := updated.View(); !strings.Contains(view, "a moment ago") {
		t.Errorf("expected 'a moment ago' after 10s, got:\n%s", view)
	}
}

func TestToggleKeys(t *testing.T) {
	m := newWatchModel(clockwork.NewFakeClockAt(watchNow))

	updated, _ := m.Update(keyPress("f"))
	m = updated.(Model)
	if !m.Options().Full {
		t.Fatal("expected f to enable full")
	}
	if view := m.View(); !strings.Contains(view, "Mar 15, 11:59:55") {
		t.Errorf("expected full rendering with seconds, got:\n%s", view)
	}

	updated, _ = m.Update(keyPress("h"))
	m = updated.(Model)
	if !m.Options().Hour12 {
		t.Error("expected h to enable hour12")
	}

	updated, _ = m.Update(keyPress("t"))
	m = updated.(Model)
	if !m.Options().Today {
		t.Error("expected t to enable today")
	}

	updated, _ = m.Update(keyPress("f"))
	m = updated.(Model)
	if m.Options().Full {
		t.Error("expected second f to disable full")
	}
}

func TestQuit(t *testing.T) {
	m := newWatchModel(clockwork.NewFakeClockAt(watchNow))

	updated, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
	if view := updated.View(); strings.Contains(view, "q quit") {
		t.Errorf("expected no help line after quitting, got:\n%s", view)
	}
}

func TestInit(t *testing.T) {
	m := newWatchModel(clockwork.NewFakeClockAt(watchNow))
	if m.Init() == nil {
		t.Error("expected Init to return a command")
	}
}
