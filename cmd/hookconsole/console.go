package main

import (
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/ekeskin/globalhook"
)

type hookSource interface {
	SubscribeMouse(ev globalhook.MouseEvent, h globalhook.MouseHandler) (*globalhook.Subscription, error)
	SubscribeKey(ev globalhook.KeyEvent, h globalhook.KeyHandler) (*globalhook.Subscription, error)
}

// console prints hook events and swallows the configured scan codes. The
// toggles are flipped from the tray goroutine while handlers run on the hook thread.
type console struct {
	out      io.Writer
	log      *slog.Logger
	suppress map[uint32]bool

	suppressing atomic.Bool
	logMoves    atomic.Bool
}

func newConsole(cfg Config, out io.Writer, logger *slog.Logger) *console {
	c := &console{
		out:      out,
		log:      logger,
		suppress: make(map[uint32]bool, len(cfg.SuppressScanCodes)),
	}
	for _, code := range cfg.SuppressScanCodes {
		c.suppress[code] = true
	}
	c.suppressing.Store(len(c.suppress) > 0)
	c.logMoves.Store(cfg.LogMoves)
	return c
}

// subscribe attaches a printer for every configured event.
func (c *console) subscribe(src hookSource, events []string) error {
	for _, name := range events {
		mouseEv, keyEv, err := parseEvent(name)
		if err != nil {
			return err
		}
		if mouseEv >= 0 {
			if _, err := src.SubscribeMouse(mouseEv, c.mouseHandler(mouseEv)); err != nil {
				return fmt.Errorf("subscribe %s: %w", mouseEv, err)
			}
		} else {
			if _, err := src.SubscribeKey(keyEv, c.keyHandler(keyEv)); err != nil {
				return fmt.Errorf("subscribe %s: %w", keyEv, err)
			}
		}
		c.log.Debug("subscribed", "event", name)
	}
	return nil
}

func (c *console) mouseHandler(ev globalhook.MouseEvent) globalhook.MouseHandler {
	return func(e *globalhook.MouseEventArgs) {
		switch ev {
		case globalhook.MouseMove:
			if !c.logMoves.Load() {
				return
			}
			fmt.Fprintf(c.out, "%s (%d, %d)\n", ev, e.X, e.Y)
		case globalhook.MouseWheel:
			fmt.Fprintf(c.out, "%s (%d, %d) delta=%d\n", ev, e.X, e.Y, e.Delta)
		default:
			fmt.Fprintf(c.out, "%s %s (%d, %d) clicks=%d\n", ev, e.Button, e.X, e.Y, e.Clicks)
		}
	}
}

func (c *console) keyHandler(ev globalhook.KeyEvent) globalhook.KeyHandler {
	return func(e *globalhook.KeyEventArgs) {
		if c.suppressing.Load() && c.suppress[e.ScanCode] {
			e.Handle()
		}
		if e.HasCharacter {
			fmt.Fprintf(c.out, "%s %q scan=%d handled=%t\n", ev, e.Character, e.ScanCode, e.Handled())
			return
		}
		fmt.Fprintf(c.out, "%s vk=0x%02X scan=%d handled=%t\n", ev, e.VirtualKeyCode, e.ScanCode, e.Handled())
	}
}
