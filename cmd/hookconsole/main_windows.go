//go:build windows

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"fyne.io/systray"

	"github.com/ekeskin/globalhook"
)

func main() {
	// Low-level hooks are delivered to the installing thread's message queue.
	runtime.LockOSThread()

	configPath := flag.String("config", "hookconsole.yaml", "path to the YAML config")
	logLevel := flag.String("log-level", "", "override log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "override log format (text, json)")
	noTray := flag.Bool("no-tray", false, "pump messages without the tray icon")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if *noTray {
		cfg.Tray = false
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	manager, err := globalhook.New(globalhook.Options{Logger: logger})
	if err != nil {
		logger.Error("create hook manager", "error", err)
		os.Exit(1)
	}

	c := newConsole(cfg, os.Stdout, logger)
	if err := c.subscribe(manager, cfg.Events); err != nil {
		logger.Error("subscribe", "error", err)
		housekeeping(manager, logger)
		os.Exit(1)
	}
	logger.Info("connected", "events", cfg.Events, "tray", cfg.Tray)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)

	if cfg.Tray {
		go func() {
			sig := <-signals
			logger.Info("received signal", "signal", sig.String())
			systray.Quit()
		}()
		systray.Run(newTray(c).onReady, func() {})
	} else {
		var pump globalhook.MessagePump
		go func() {
			sig := <-signals
			logger.Info("received signal", "signal", sig.String())
			if err := pump.Quit(); err != nil {
				logger.Error("stop message pump", "error", err)
			}
		}()
		if err := pump.Run(); err != nil {
			logger.Error("message pump", "error", err)
		}
	}

	housekeeping(manager, logger)
	logger.Info("finished")
}

// housekeeping removes every hook. It runs on the hook thread.
func housekeeping(manager *globalhook.Manager, logger *slog.Logger) {
	if err := manager.Close(); err != nil {
		logger.Error("remove hooks", "error", err)
	}
}
