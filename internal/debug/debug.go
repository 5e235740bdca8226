package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shapes-demo/internal/scene"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// refreshEvery limits how often the text is rebuilt.
	refreshEvery = 30
)

// Overlay draws runtime readouts in the top-right corner. Everything is off by default.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowCamera   bool

	font   rl.Font
	frames uint32
	lines  []string
	mem    runtime.MemStats
}

// New returns an overlay with all readouts hidden.
func New() *Overlay {
	return &Overlay{}
}

// SetFont sets the font for the readouts. A zero texture ID keeps raylib's default font.
func (o *Overlay) SetFont(font rl.Font) {
	o.font = font
}

// Enabled reports whether any readout is on.
func (o *Overlay) Enabled() bool {
	return o.ShowFPS || o.ShowMemAlloc || o.ShowCamera
}

func (o *Overlay) refresh(scn *scene.Scene) {
	o.lines = o.lines[:0]
	if o.ShowFPS {
		o.lines = append(o.lines, fmt.Sprintf("FPS: %d", rl.GetFPS()))
	}
	if o.ShowMemAlloc {
		runtime.ReadMemStats(&o.mem)
		o.lines = append(o.lines, fmt.Sprintf("Mem: %.2f MiB", float64(o.mem.Alloc)/(1024*1024)))
	}
	if o.ShowCamera {
		p := scn.Camera.Position
		o.lines = append(o.lines,
			fmt.Sprintf("Camera: %.1f, %.1f, %.1f", p[0], p[1], p[2]),
			fmt.Sprintf("Distance: %.1f", p.Len()))
	}
}

// Draw renders the enabled readouts. Text is rebuilt every refreshEvery frames, and at once
// when the set of readouts changes.
func (o *Overlay) Draw(scn *scene.Scene) {
	if !o.Enabled() {
		o.lines = o.lines[:0]
		return
	}
	o.frames++
	if o.frames%refreshEvery == 0 || len(o.lines) != o.wantLines() {
		o.refresh(scn)
	}

	right := float32(rl.GetScreenWidth() - padding)
	y := float32(padding)
	for _, text := range o.lines {
		if o.font.Texture.ID != 0 {
			w := rl.MeasureTextEx(o.font, text, fontSize, 1).X
			rl.DrawTextEx(o.font, text, rl.NewVector2(right-w, y), fontSize, 1, rl.Green)
		} else {
			w := float32(rl.MeasureText(text, fontSize))
			rl.DrawText(text, int32(right-w), int32(y), fontSize, rl.Green)
		}
		y += lineHeight
	}
}

func (o *Overlay) wantLines() int {
	n := 0
	if o.ShowFPS {
		n++
	}
	if o.ShowMemAlloc {
		n++
	}
	if o.ShowCamera {
		n += 2
	}
	return n
}
