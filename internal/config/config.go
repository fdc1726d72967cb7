package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/atomicstack/pi-menu-control/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Terminal Terminal
	Flags    map[string]string
	Args     []string
}

// Terminal describes the terminal attached to the process, when any of the
// standard descriptors is one. A zero Terminal means the program runs
// detached and the UI sizes itself from resize events alone.
type Terminal struct {
	Source string
	Width  int
	Height int
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
}

const (
	envWidth        = "PI_MENU_CONTROL_WIDTH"
	envSurroundings = "PI_MENU_CONTROL_SURROUNDINGS"
	envPollInterval = "PI_MENU_CONTROL_POLL_INTERVAL"
	envVerbose      = "PI_MENU_CONTROL_VERBOSE"
	envTrace        = "PI_MENU_CONTROL_TRACE"
	envLogFile      = "PI_MENU_CONTROL_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("pi-menu-control", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "display width in cells (0 uses terminal width)")
	surroundings := fs.Bool("surroundings", envOrBool(env, envSurroundings, false), "render dimmed preview rows from neighboring pages")
	pollInterval := fs.Duration("poll-interval", envOrDuration(env, envPollInterval, time.Second), "interval between host metric polls")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *pollInterval <= 0 {
		return Config{}, fmt.Errorf("poll-interval must be > 0 (got %s)", *pollInterval)
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Surroundings: *surroundings,
			PollInterval: *pollInterval,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
		},
		Flags: map[string]string{
			"width":        strconv.Itoa(*width),
			"surroundings": strconv.FormatBool(*surroundings),
			"pollInterval": pollInterval.String(),
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}
	cfg.Terminal = detectTerminal()

	return cfg, nil
}

// detectTerminal checks the standard descriptors for a usable terminal,
// preferring the one the UI draws on.
func detectTerminal() Terminal {
	candidates := []struct {
		name string
		fd   int
	}{
		{"stdout", int(os.Stdout.Fd())},
		{"stderr", int(os.Stderr.Fd())},
		{"stdin", int(os.Stdin.Fd())},
	}
	for _, c := range candidates {
		if !term.IsTerminal(c.fd) {
			continue
		}
		width, height, err := term.GetSize(c.fd)
		if err != nil {
			continue
		}
		return Terminal{Source: c.name, Width: width, Height: height}
	}
	return Terminal{}
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
