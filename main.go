package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/pi-menu-control/internal/app"
	"github.com/atomicstack/pi-menu-control/internal/config"
	"github.com/atomicstack/pi-menu-control/internal/logging"
	"github.com/atomicstack/pi-menu-control/internal/logging/events"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records the effective flags and the detected terminal,
// enough to reconstruct a session's starting conditions from the trace log.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": cfg.Flags,
	}
	if cfg.Terminal.Source != "" {
		payload["terminal"] = map[string]interface{}{
			"source": cfg.Terminal.Source,
			"width":  cfg.Terminal.Width,
			"height": cfg.Terminal.Height,
		}
	}
	return payload
}
