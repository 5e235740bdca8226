package main

import (
	"github.com/charmbracelet/log"

	"shapes-demo/internal/animation"
	"shapes-demo/internal/commands"
	"shapes-demo/internal/debug"
	"shapes-demo/internal/engineconfig"
	"shapes-demo/internal/fonts"
	"shapes-demo/internal/graphics"
	"shapes-demo/internal/input"
	"shapes-demo/internal/primitives"
	"shapes-demo/internal/render"
	"shapes-demo/internal/scene"
	"shapes-demo/internal/terminal"
	"shapes-demo/internal/ui"
)

// windowed is everything that lives on the window goroutine.
type windowed struct {
	window    *graphics.Window
	tracker   *input.Tracker
	poller    *graphics.Poller
	overlay   *ui.Engine
	panel     *ui.ControlPanel
	debug     *debug.Overlay
	console   *terminal.Terminal
	shapes    *primitives.Registry
	renderer  *render.Renderer
	scheduler *animation.Scheduler
	log       *log.Logger
}

func openWindow(cfg engineconfig.Config, scn *scene.Scene, km commands.Keymap, reg *commands.Registry, l *log.Logger) *windowed {
	w := &windowed{log: l}
	w.window = graphics.Open(graphics.Options{
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Title:     cfg.Window.Title,
		TargetFPS: cfg.Window.TargetFPS,
		MSAA:      cfg.Window.MSAA,
	})

	w.overlay = ui.New()
	w.loadStylesheet(cfg.Overlay.Stylesheet)
	if cfg.Overlay.Font != "" {
		if path, err := fonts.Find(cfg.Overlay.Font); err != nil {
			l.Warn("font not found, using default", "font", cfg.Overlay.Font)
		} else if err := w.overlay.LoadFont(path); err != nil {
			l.Warn("could not load font", "path", path, "err", err)
		}
	}
	w.panel = ui.NewControlPanel(km)
	w.overlay.SetRoots(w.panel.Root())

	w.debug = debug.New()
	w.debug.SetFont(w.overlay.Font())

	w.tracker = input.New(scn, w.window, km, reg, l)
	w.poller = graphics.NewPoller(w.window, w.tracker, w.overlay, reg, l)
	w.poller.SetTouch(cfg.Controls.Touch)

	w.console = terminal.New(l, reg)
	w.console.SetFont(w.overlay.Font())
	w.poller.SetKeyboardOwner(w.console.IsOpen)

	w.shapes = primitives.NewRegistry()
	w.renderer = render.New(w.shapes, w.overlay, w.panel, w.debug)
	w.renderer.Console = w.console
	w.applyOverlay(cfg.Overlay)

	w.scheduler = animation.New(scn, animation.NewClock(), w.renderer, l)
	w.scheduler.BeforeTick(w.console.Update)
	w.scheduler.BeforeTick(w.poller.Poll)
	return w
}

func (w *windowed) loadStylesheet(path string) {
	if path == "" {
		return
	}
	if err := w.overlay.LoadCSS(path); err != nil {
		w.log.Warn("stylesheet not loaded, using built-in", "path", path, "err", err)
	}
}

func (w *windowed) applyOverlay(o engineconfig.Overlay) {
	w.renderer.ShowControls = o.ShowControls
	w.renderer.GridVisible = o.GridVisible
	w.renderer.LightMarker = o.ShowLight
	w.debug.ShowFPS = o.ShowFPS
	w.debug.ShowMemAlloc = o.ShowMemAlloc
	w.debug.ShowCamera = o.ShowCamera
	if o.ShowControls {
		w.poller.SetOverlay(w.overlay)
	} else {
		w.poller.SetOverlay(nil)
	}
}

// reload applies the settings that can change while running. The stylesheet is re-read
// even when its path is unchanged.
func (w *windowed) reload(cfg engineconfig.Config) {
	if km, err := cfg.Keymap(); err == nil {
		w.tracker.SetKeymap(km)
		w.panel.SetKeymap(km)
	}
	w.poller.SetTouch(cfg.Controls.Touch)
	w.applyOverlay(cfg.Overlay)
	w.loadStylesheet(cfg.Overlay.Stylesheet)
}

func (w *windowed) close() {
	w.shapes.Unload()
	w.overlay.Unload()
	w.window.Close()
}
