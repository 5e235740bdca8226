package input

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"shapes-demo/internal/commands"
	"shapes-demo/internal/orbit"
	"shapes-demo/internal/scene"
)

// Viewport reports the drawable size in pixels; pointer coordinates are normalized against it.
type Viewport interface {
	Size() (width, height int)
}

// Pointer is the drag state. X and Y are normalized to [-1, 1], X to the right and Y up.
type Pointer struct {
	Down bool
	X, Y float64
}

// Touch is one active touch point in pixels.
type Touch struct {
	X, Y float64
}

// MouseFrame is the mouse state polled in one frame. Pressed covers only presses meant for the
// camera; presses on on-screen UI are routed elsewhere by the caller.
type MouseFrame struct {
	X, Y     float64
	Moved    bool
	Pressed  bool
	Released bool
	WheelY   float64
}

// Tracker turns pointer, touch, wheel and key events into camera moves and commands.
// Like the Scene it drives, it is confined to the render loop goroutine.
type Tracker struct {
	scene    *scene.Scene
	viewport Viewport
	keymap   commands.Keymap
	dispatch commands.Dispatcher
	log      *log.Logger
	pointer  Pointer
}

// New returns a Tracker that orbits scn's camera and sends mapped key presses to d.
func New(scn *scene.Scene, vp Viewport, km commands.Keymap, d commands.Dispatcher, logger *log.Logger) *Tracker {
	return &Tracker{
		scene:    scn,
		viewport: vp,
		keymap:   km,
		dispatch: d,
		log:      logger,
	}
}

// Pointer returns the current drag state.
func (t *Tracker) Pointer() Pointer {
	return t.pointer
}

// SetKeymap swaps the key bindings, e.g. after a config reload.
func (t *Tracker) SetKeymap(km commands.Keymap) {
	t.keymap = km
}

// PointerDown starts a drag at pixel position (x, y).
func (t *Tracker) PointerDown(x, y float64) {
	if !t.record(x, y) {
		return
	}
	t.pointer.Down = true
}

// PointerUp ends the drag.
func (t *Tracker) PointerUp() {
	t.pointer.Down = false
}

// PointerMove nudges the camera around the origin while dragging; otherwise it does nothing.
func (t *Tracker) PointerMove(x, y float64) {
	if !t.pointer.Down {
		return
	}
	if !t.record(x, y) {
		return
	}
	t.orbit()
}

// Mouse replays one polled frame in browser event order: move, press, release, then wheel.
// A press right after moving therefore starts the drag where the pointer landed.
func (t *Tracker) Mouse(f MouseFrame) {
	if f.Moved {
		t.PointerMove(f.X, f.Y)
	}
	if f.Pressed {
		t.PointerDown(f.X, f.Y)
	}
	if f.Released {
		t.PointerUp()
	}
	if f.WheelY != 0 {
		t.Wheel(f.WheelY)
	}
}

// Wheel zooms the camera by deltaY (positive moves away), keeping it 3 to 50 units from the origin.
func (t *Tracker) Wheel(deltaY float64) {
	cam := &t.scene.Camera
	cam.Position = orbit.Zoom(cam.Position, deltaY)
}

// TouchStart begins a drag when exactly one finger is down. Multi-touch is ignored.
func (t *Tracker) TouchStart(touches []Touch) {
	if len(touches) != 1 {
		return
	}
	t.PointerDown(touches[0].X, touches[0].Y)
}

// TouchMove behaves like PointerMove for a single finger and ignores multi-touch.
func (t *Tracker) TouchMove(touches []Touch) {
	if len(touches) != 1 {
		return
	}
	t.PointerMove(touches[0].X, touches[0].Y)
}

// TouchEnd ends the drag whenever a finger lifts.
func (t *Tracker) TouchEnd() {
	t.PointerUp()
}

// KeyPress dispatches the command bound to code. It reports whether the key was bound.
func (t *Tracker) KeyPress(code string) bool {
	cmd, ok := t.keymap.Lookup(code)
	if !ok {
		return false
	}
	t.log.Debug("key command", "code", code, "command", cmd)
	t.dispatch.Dispatch(cmd)
	return true
}

// record stores the normalized position of (x, y). It reports false when the viewport is empty.
func (t *Tracker) record(x, y float64) bool {
	w, h := t.viewport.Size()
	if w <= 0 || h <= 0 {
		return false
	}
	t.pointer.X = x/float64(w)*2 - 1
	t.pointer.Y = -(y/float64(h))*2 + 1
	return true
}

func (t *Tracker) orbit() {
	cam := &t.scene.Camera
	cam.Position = orbit.Rotate(cam.Position, t.pointer.X, t.pointer.Y)
	cam.LookAt(mgl64.Vec3{})
}
