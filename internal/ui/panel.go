package ui

import (
	"sort"
	"strings"

	"shapes-demo/internal/commands"
)

var buttonTitles = map[commands.Command]string{
	commands.ToggleAnimation: "Toggle Animation",
	commands.ChangeColors:    "Change Colors",
	commands.ResetCamera:     "Reset Camera",
}

// ControlPanel is the on-screen panel: a title, the animation status, one button per command
// and a usage hint. Styled by .controls, .controls-title, .controls-status, .controls-hint and button.
type ControlPanel struct {
	root    *Node
	status  *Node
	buttons []*Node
}

// NewControlPanel builds the panel with button labels taken from km.
func NewControlPanel(km commands.Keymap) *ControlPanel {
	p := &ControlPanel{
		root:   NewNode("panel", "controls", "controls", ""),
		status: NewNode("label", "controls-status", "", ""),
	}
	p.root.Add(NewNode("label", "controls-title", "", "3D Shapes Demo"), p.status)
	for _, cmd := range commands.All() {
		b := NewButton("", cmd.String(), "", cmd)
		p.buttons = append(p.buttons, b)
		p.root.Add(b)
	}
	p.root.Add(NewNode("label", "controls-hint", "", "Drag to orbit, scroll to zoom"))
	p.SetKeymap(km)
	p.Update(true)
	return p
}

// Root returns the panel's node tree for Engine.SetRoots.
func (p *ControlPanel) Root() *Node {
	return p.root
}

// SetKeymap relabels the buttons with the first key bound to each command.
func (p *ControlPanel) SetKeymap(km commands.Keymap) {
	keys := make(map[commands.Command][]string)
	for code, cmd := range km {
		keys[cmd] = append(keys[cmd], code)
	}
	for _, b := range p.buttons {
		text := buttonTitles[b.Command]
		if codes := keys[b.Command]; len(codes) > 0 {
			sort.Strings(codes)
			text += " (" + KeyLabel(codes[0]) + ")"
		}
		b.Text = text
	}
}

// Update refreshes the status line. Call once per frame.
func (p *ControlPanel) Update(animating bool) {
	if animating {
		p.status.Text = "Animation: on"
	} else {
		p.status.Text = "Animation: paused"
	}
}

// KeyLabel shortens a key code for display: "KeyC" becomes "C" and "Digit1" becomes "1".
func KeyLabel(code string) string {
	if rest, ok := strings.CutPrefix(code, "Key"); ok {
		return rest
	}
	if rest, ok := strings.CutPrefix(code, "Digit"); ok {
		return rest
	}
	return code
}
