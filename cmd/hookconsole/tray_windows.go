//go:build windows

package main

import (
	"fyne.io/systray"
	"fyne.io/systray/example/icon"
)

type tray struct {
	console *console
}

func newTray(c *console) *tray {
	return &tray{console: c}
}

func (t *tray) onReady() {
	systray.SetIcon(icon.Data)
	systray.SetTitle("Hook Console")
	systray.SetTooltip("Hook Console")

	mSuppress := systray.AddMenuItem(suppressTitle(t.console.suppressing.Load()), "swallow the configured scan codes system-wide")
	mMoves := systray.AddMenuItem(movesTitle(t.console.logMoves.Load()), "print mouse movements")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Remove the hooks and quit")

	if len(t.console.suppress) == 0 {
		mSuppress.Disable()
	}

	go func() {
		for {
			select {
			case <-mSuppress.ClickedCh:
				on := !t.console.suppressing.Load()
				t.console.suppressing.Store(on)
				mSuppress.SetTitle(suppressTitle(on))
			case <-mMoves.ClickedCh:
				on := !t.console.logMoves.Load()
				t.console.logMoves.Store(on)
				mMoves.SetTitle(movesTitle(on))
			case <-mQuit.ClickedCh:
				systray.Quit()
				return
			}
		}
	}()
}

func suppressTitle(on bool) string {
	if on {
		return "✓ Suppression Enabled"
	}
	return "✘ Suppression Disabled"
}

func movesTitle(on bool) string {
	if on {
		return "✓ Logging Mouse Moves"
	}
	return "✘ Mouse Moves Hidden"
}
