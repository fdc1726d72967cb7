package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected width 0, got %d", cfg.App.Width)
	}
	if cfg.App.Surroundings {
		t.Fatalf("expected surroundings disabled by default")
	}
	if cfg.App.PollInterval != time.Second {
		t.Fatalf("expected 1s poll interval, got %s", cfg.App.PollInterval)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"PI_MENU_CONTROL_WIDTH=20",
		"PI_MENU_CONTROL_SURROUNDINGS=true",
		"PI_MENU_CONTROL_POLL_INTERVAL=5s",
	}
	cfg, err := LoadArgs([]string{"-width", "40"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 40 {
		t.Fatalf("expected flag to win, got %d", cfg.App.Width)
	}
	if !cfg.App.Surroundings {
		t.Fatalf("expected surroundings from environment")
	}
	if cfg.App.PollInterval != 5*time.Second {
		t.Fatalf("expected 5s poll interval, got %s", cfg.App.PollInterval)
	}
}

func TestLoadArgsRejectsNegativeWidth(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("expected an error for negative width")
	}
}

func TestLoadArgsRejectsZeroPollInterval(t *testing.T) {
	if _, err := LoadArgs([]string{"-poll-interval", "0s"}, nil); err == nil {
		t.Fatalf("expected an error for a zero poll interval")
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	env := []string{
		"PI_MENU_CONTROL_WIDTH=not-a-number",
		"PI_MENU_CONTROL_POLL_INTERVAL=often",
		"MALFORMED",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected fallback width, got %d", cfg.App.Width)
	}
	if cfg.App.PollInterval != time.Second {
		t.Fatalf("expected fallback poll interval, got %s", cfg.App.PollInterval)
	}
}

func TestDetectTerminalIsConsistent(t *testing.T) {
	terminal := detectTerminal()
	if terminal.Source == "" {
		if terminal.Width != 0 || terminal.Height != 0 {
			t.Fatalf("expected zero size without a detected terminal, got %+v", terminal)
		}
		return
	}
	switch terminal.Source {
	case "stdin", "stdout", "stderr":
	default:
		t.Fatalf("unexpected terminal source %q", terminal.Source)
	}
	if terminal.Width <= 0 || terminal.Height <= 0 {
		t.Fatalf("expected positive dimensions, got %+v", terminal)
	}
}
