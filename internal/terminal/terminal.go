package terminal

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"shapes-demo/internal/commands"
)

const (
	BarHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// maxLinesOnScreen is how many history lines are drawn above the input bar.
	maxLinesOnScreen = 10
	maxHistory       = 100
	lineHeight       = fontSize + 4
)

var (
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	historyBack = rl.NewColor(24, 24, 24, 220)
)

// Terminal is a command console at the bottom of the window, toggled with the backquote key.
// Submitted lines are command names ("reset_camera", optionally prefixed with "cmd "), "help"
// or "clear". While it is open it owns the keyboard, so key bindings do not fire.
type Terminal struct {
	log     *log.Logger
	reg     *commands.Registry
	input   string
	history []string
	open    bool
	font    rl.Font
}

// New returns a closed terminal that runs commands through reg.
func New(logger *log.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: logger, reg: reg}
}

// IsOpen reports whether the terminal is visible and capturing keys.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// SetFont sets the font for the console. A zero texture ID keeps raylib's default font.
func (t *Terminal) SetFont(font rl.Font) {
	t.font = font
}

// Update toggles the terminal and, when open, handles typing. Call once per frame before the
// input poller so a toggle keypress is not also seen as a binding.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyGrave) {
		t.open = !t.open
		// Drop the backquote character queued by the toggle.
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !t.open {
		return
	}
	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		t.input += string(rune(c))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.input) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.input)
		t.input = t.input[:len(t.input)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && t.input != "" {
		line := t.input
		t.input = ""
		t.Submit(line)
	}
}

// Submit runs one console line and records it with its output.
func (t *Terminal) Submit(line string) {
	t.print(prompt + line)
	name := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "cmd "))
	switch name {
	case "":
		return
	case "help":
		t.print("commands: " + strings.Join(t.reg.Registered(), ", ") + ", clear")
	case "clear":
		t.history = t.history[:0]
	default:
		if err := t.reg.Execute(name); err != nil {
			t.print(err.Error())
			return
		}
		t.log.Debug("console command", "command", name)
	}
}

func (t *Terminal) print(line string) {
	t.history = append(t.history, line)
	if len(t.history) > maxHistory {
		t.history = t.history[len(t.history)-maxHistory:]
	}
}

// Draw draws the history and input bar when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	start := max(len(t.history)-maxLinesOnScreen, 0)
	lines := t.history[start:]
	if h := int32(len(lines)*lineHeight + padding); len(lines) > 0 {
		rl.DrawRectangle(0, barY-h, screenW, h, historyBack)
		for i, line := range lines {
			t.text(line, padding, barY-h+int32(i*lineHeight)+padding/2, rl.LightGray)
		}
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	t.text(prompt+t.input+"|", padding, barY+padding, rl.White)
}

func (t *Terminal) text(s string, x, y int32, c rl.Color) {
	if t.font.Texture.ID != 0 {
		rl.DrawTextEx(t.font, s, rl.NewVector2(float32(x), float32(y)), fontSize, 1, c)
	} else {
		rl.DrawText(s, x, y, fontSize, c)
	}
}
