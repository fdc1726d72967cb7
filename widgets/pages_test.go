package widgets

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pi-menu-control/menu"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestGaugeTracksStream(t *testing.T) {
	source := menu.NewObservable(0.25)
	g := NewGauge("CPU", "load", menu.Watch[float64](source), nil)

	if g.Value() != 0.25 {
		t.Fatalf("expected initial value, got %v", g.Value())
	}
	source.Set(0.75)
	if g.Value() != 0.75 {
		t.Fatalf("expected live update, got %v", g.Value())
	}

	g.OnClose()
	source.Set(0.1)
	if g.Value() != 0.75 {
		t.Fatalf("expected no updates after close, got %v", g.Value())
	}

	if view := g.View(); !strings.Contains(view, "75%") || !strings.Contains(view, "load") {
		t.Fatalf("expected percentage and label in view:\n%s", view)
	}
}

func TestGaugeClampsValues(t *testing.T) {
	g := NewGauge("CPU", "", menu.Static(1.7), nil)
	if g.Value() != 1 {
		t.Fatalf("expected clamp to 1, got %v", g.Value())
	}
	g.SetValue(-0.5)
	if g.Value() != 0 {
		t.Fatalf("expected clamp to 0, got %v", g.Value())
	}
}

func TestVolumeStepsAndClamps(t *testing.T) {
	var reported []float64
	v := NewVolume("Volume", 0.95, nil)
	v.OnChange = func(value float64) { reported = append(reported, value) }

	v.GoUp()
	v.GoUp()
	if v.Value() != 1 {
		t.Fatalf("expected clamp at 1, got %v", v.Value())
	}
	v.GoDown()
	if v.Value() != 0.95 {
		t.Fatalf("expected one step down, got %v", v.Value())
	}
	if len(reported) != 2 {
		t.Fatalf("expected a change report per effective step, got %d", len(reported))
	}
}

func TestSpinnerAdvancesAtFrameRate(t *testing.T) {
	s := NewSpinner("Sync", "working", nil)
	now := time.Now()
	s.Advance(now)
	first := s.frame
	s.Advance(now.Add(time.Millisecond))
	if s.frame != first {
		t.Fatalf("expected the frame to hold between ticks")
	}
	s.Advance(now.Add(s.frames.FPS + time.Millisecond))
	if s.frame == first {
		t.Fatalf("expected the frame to advance after the frame interval")
	}
	if view := s.View(); !strings.Contains(view, "working") {
		t.Fatalf("expected the message in view:\n%s", view)
	}
}

func TestQRCodeEncodesContent(t *testing.T) {
	q := NewQRCode("Wi-Fi", "WIFI:S:net;T:WPA;P:secret;;", nil)
	if q.Err() != nil {
		t.Fatalf("unexpected error: %v", q.Err())
	}
	view := q.View()
	if !strings.Contains(view, "█") && !strings.Contains(view, "▀") && !strings.Contains(view, "▄") {
		t.Fatalf("expected block characters in the rendered code:\n%s", view)
	}
}

func TestQRCodeEmptyContentFails(t *testing.T) {
	q := NewQRCode("Wi-Fi", "", nil)
	if q.Err() == nil {
		t.Fatalf("expected an encoding error for empty content")
	}
	if !strings.Contains(q.View(), q.Err().Error()) {
		t.Fatalf("expected the error in view")
	}
}

func TestPromptMapsOptionsToLastSlots(t *testing.T) {
	chosen := ""
	p := NewPrompt("Power", "⏻", "Power off?", []PromptOption{
		{Label: "Cancel", Action: func() any { chosen = "cancel"; return nil }},
		{Label: "Power off", Color: menu.DangerColor, Action: func() any { chosen = "off"; return nil }},
		{Label: "Dropped"},
	}, nil)

	if p.Item(0) != nil {
		t.Fatalf("the prompt slot must not be selectable")
	}
	first, ok := p.Item(1).(*menu.ActionItem)
	if !ok {
		t.Fatalf("expected an action item on slot 1")
	}
	first.Action()
	if chosen != "cancel" {
		t.Fatalf("expected cancel to run, got %q", chosen)
	}
	if p.Item(3) != nil {
		t.Fatalf("options beyond the slot count must be dropped")
	}
	if view := p.View(); !strings.Contains(view, "Power off?") {
		t.Fatalf("expected the question in view:\n%s", view)
	}
}

func TestInputSubmitsOnEnter(t *testing.T) {
	in := NewInput("Name", "device", nil)
	in.SetValue("pi")

	if !in.HandleKey(keyMsg("4")) {
		t.Fatalf("expected printable keys to be consumed")
	}
	if in.Value() != "pi4" {
		t.Fatalf("expected typed rune to append, got %q", in.Value())
	}

	var submitted string
	in.OnSubmit = func(value string) { submitted = value }
	if !in.HandleKey(keyMsg("enter")) {
		t.Fatalf("expected enter to be handled")
	}
	if submitted != "pi4" {
		t.Fatalf("expected submitted value pi4, got %q", submitted)
	}
}
