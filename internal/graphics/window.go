package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Options configure the window.
type Options struct {
	Width, Height int
	Title         string
	TargetFPS     int
	MSAA          bool
}

// Window is the raylib window. It is the frame source and the viewport of the demo loop.
// All methods must be called from the goroutine that called Open.
type Window struct {
	opts Options
}

// Open creates the window and OpenGL context. The window is resizable; Escape is left to the
// keymap rather than closing the window.
func Open(opts Options) *Window {
	flags := uint32(rl.FlagWindowResizable | rl.FlagVsyncHint)
	if opts.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}
	return &Window{opts: opts}
}

// Next reports whether another frame should be drawn. raylib paces frames in EndDrawing.
func (w *Window) Next() bool {
	return !rl.WindowShouldClose()
}

// Size returns the current drawable size in pixels.
func (w *Window) Size() (width, height int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// Resized reports whether the window size changed since the last frame.
func (w *Window) Resized() bool {
	return rl.IsWindowResized()
}

// Close destroys the window and its OpenGL context.
func (w *Window) Close() {
	rl.CloseWindow()
}
