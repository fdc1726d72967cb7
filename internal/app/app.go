package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pi-menu-control/internal/metrics"
	"github.com/atomicstack/pi-menu-control/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	Width        int
	Surroundings bool
	PollInterval time.Duration
	Verbose      bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	poller := metrics.NewPoller(interval)
	poller.Start()
	defer poller.Stop()

	model := ui.NewModel(ui.Options{
		Width:        cfg.Width,
		Surroundings: cfg.Surroundings,
		Verbose:      cfg.Verbose,
		Metrics:      poller,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	model.AttachProgram(program)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
