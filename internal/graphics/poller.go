package graphics

import (
	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"shapes-demo/internal/commands"
	"shapes-demo/internal/input"
)

// wheelStep converts one raylib wheel notch into the pixel delta a browser reports.
const wheelStep = 100

// Handler receives the translated input events. *input.Tracker satisfies it.
type Handler interface {
	Mouse(f input.MouseFrame)
	TouchStart(touches []input.Touch)
	TouchMove(touches []input.Touch)
	TouchEnd()
	KeyPress(code string) bool
}

// Overlay is on-screen UI that can take clicks before they reach the camera.
type Overlay interface {
	Move(x, y float32)
	Over(x, y float32) bool
	Click(x, y float32) (commands.Command, bool)
}

// Poller reads raylib input once per frame and forwards it to a Handler.
// Clicks on the overlay run the button's command and never start a drag.
type Poller struct {
	window   *Window
	handler  Handler
	overlay  Overlay
	dispatch commands.Dispatcher
	log      *log.Logger

	touch    bool
	touches  []input.Touch
	last     rl.Vector2
	keysHeld func() bool
}

// NewPoller returns a poller for window. overlay may be nil.
func NewPoller(window *Window, h Handler, overlay Overlay, d commands.Dispatcher, logger *log.Logger) *Poller {
	return &Poller{
		window:   window,
		handler:  h,
		overlay:  overlay,
		dispatch: d,
		log:      logger,
	}
}

// SetTouch enables touch-point polling. raylib also reports the mouse as touch point 0 on
// desktops, so leave it off there.
func (p *Poller) SetTouch(on bool) {
	p.touch = on
}

// SetKeyboardOwner makes Poll skip key presses while owned reports true, e.g. while a text
// console is open.
func (p *Poller) SetKeyboardOwner(owned func() bool) {
	p.keysHeld = owned
}

// SetOverlay replaces the overlay; nil disables click interception.
func (p *Poller) SetOverlay(o Overlay) {
	p.overlay = o
}

// Poll forwards this frame's input. Call once per frame on the window goroutine.
func (p *Poller) Poll() {
	if p.window.Resized() {
		w, h := p.window.Size()
		p.log.Debug("window resized", "width", w, "height", h)
	}
	p.pollMouse()
	if p.touch {
		p.pollTouch()
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if p.keysHeld != nil && p.keysHeld() {
			continue
		}
		if code, ok := KeyCode(key); ok {
			p.handler.KeyPress(code)
		}
	}
}

func (p *Poller) pollMouse() {
	pos := rl.GetMousePosition()
	if p.overlay != nil {
		p.overlay.Move(pos.X, pos.Y)
	}

	f := input.MouseFrame{
		X:        float64(pos.X),
		Y:        float64(pos.Y),
		Moved:    pos != p.last,
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
	}
	p.last = pos
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		if p.overlay != nil && p.overlay.Over(pos.X, pos.Y) {
			if cmd, ok := p.overlay.Click(pos.X, pos.Y); ok {
				p.log.Debug("button command", "command", cmd)
				p.dispatch.Dispatch(cmd)
			}
		} else {
			f.Pressed = true
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		f.WheelY = float64(-wheel * wheelStep)
	}
	p.handler.Mouse(f)
}

func (p *Poller) pollTouch() {
	n := int(rl.GetTouchPointCount())
	prev := len(p.touches)
	p.touches = p.touches[:0]
	for i := 0; i < n; i++ {
		t := rl.GetTouchPosition(int32(i))
		p.touches = append(p.touches, input.Touch{X: float64(t.X), Y: float64(t.Y)})
	}
	switch {
	case n < prev:
		p.handler.TouchEnd()
	case n > prev:
		p.handler.TouchStart(p.touches)
	case n > 0:
		p.handler.TouchMove(p.touches)
	}
}
