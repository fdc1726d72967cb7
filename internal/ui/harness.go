package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives the UI model programmatically for integration tests.
type Harness struct {
	model *Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model *Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned
// commands, except the frame and tick timers which tests step manually.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, _ := h.model.Update(msg)
	if updated, ok := mdl.(*Model); ok {
		h.model = updated
	}
}

// Press sends one key by name.
func (h *Harness) Press(key string) {
	switch key {
	case "up", "down", "left", "esc", "backspace", "home", "enter":
		h.Send(tea.KeyMsg{Type: keyType(key)})
	default:
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	}
}

func keyType(key string) tea.KeyType {
	switch key {
	case "up":
		return tea.KeyUp
	case "down":
		return tea.KeyDown
	case "left":
		return tea.KeyLeft
	case "esc":
		return tea.KeyEsc
	case "backspace":
		return tea.KeyBackspace
	case "home":
		return tea.KeyHome
	case "enter":
		return tea.KeyEnter
	}
	return tea.KeyRunes
}

// Settle completes any in-flight transition, draining the queue until the
// scheduler is idle.
func (h *Harness) Settle() {
	for i := 0; i < 64; i++ {
		anim := h.model.anim
		if anim == nil {
			return
		}
		h.model.anim = nil
		h.model.current = anim.req.Screen
		anim.progress(1)
		anim.complete()
		h.model.drainDispatch()
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() *Model {
	return h.model
}
