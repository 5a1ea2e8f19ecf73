package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"nesclex/internal/driver"
)

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		ev   driver.ProgressEvent
		want string
	}{
		{driver.ProgressEvent{Status: driver.ProgressQueued}, statusQueued},
		{driver.ProgressEvent{Status: driver.ProgressWorking}, statusLexing},
		{driver.ProgressEvent{Status: driver.ProgressDone}, statusDone},
		{driver.ProgressEvent{Status: driver.ProgressDone, Cached: true}, statusCached},
		{driver.ProgressEvent{Status: driver.ProgressDone, Cached: true, Errors: 2}, statusError},
	}
	for _, tc := range cases {
		if got := statusLabel(tc.ev); got != tc.want {
			t.Errorf("statusLabel(%+v) = %q, want %q", tc.ev, got, tc.want)
		}
	}
}

func TestProgressModelFollowsEvents(t *testing.T) {
	events := make(chan driver.ProgressEvent)
	m := NewProgressModel("tokenize", []string{"a.nc", "b.h"}, events).(*progressModel)

	m.Update(eventMsg{Path: "a.nc", Status: driver.ProgressWorking})
	if got := m.percent(); got != 0.25 {
		t.Fatalf("percent after one working file = %v", got)
	}
	m.Update(eventMsg{Path: "a.nc", Status: driver.ProgressDone})
	m.Update(eventMsg{Path: "b.h", Status: driver.ProgressDone, Errors: 1})
	m.Update(eventMsg{Path: "unknown.nc", Status: driver.ProgressDone})
	if got := m.finished(); got != 2 {
		t.Fatalf("finished = %d", got)
	}

	_, cmd := m.Update(doneMsg{})
	if cmd == nil {
		t.Fatal("done must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("done must produce tea.QuitMsg")
	}

	view := m.View()
	if !strings.Contains(view, "done: tokenize [2/2]") {
		t.Fatalf("header missing:\n%s", view)
	}
	if !strings.Contains(view, "error(1) b.h") {
		t.Fatalf("error row missing:\n%s", view)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("components/BlinkC.nc", 10); got != "compone..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
}
