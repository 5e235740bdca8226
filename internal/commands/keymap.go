package commands

import (
	"fmt"
	"strconv"
	"strings"
)

// Keymap maps physical key codes (e.g. "Space", "KeyC") to commands.
type Keymap map[string]Command

// DefaultKeymap binds Space to toggle animation, C to change colors and R to reset the camera.
func DefaultKeymap() Keymap {
	return Keymap{
		"Space": ToggleAnimation,
		"KeyC":  ChangeColors,
		"KeyR":  ResetCamera,
	}
}

// NewKeymap builds a keymap from code -> command name bindings, rejecting malformed key codes
// and unknown command names.
func NewKeymap(bindings map[string]string) (Keymap, error) {
	km := make(Keymap, len(bindings))
	for code, name := range bindings {
		if !ValidCode(code) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidKeyCode, code)
		}
		cmd, err := Parse(name)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", code, err)
		}
		km[code] = cmd
	}
	return km, nil
}

// Lookup returns the command bound to code.
func (k Keymap) Lookup(code string) (Command, bool) {
	cmd, ok := k[code]
	return cmd, ok
}

// Bindings returns the keymap as code -> command name, the inverse of NewKeymap.
func (k Keymap) Bindings() map[string]string {
	out := make(map[string]string, len(k))
	for code, cmd := range k {
		out[code] = cmd.String()
	}
	return out
}

var namedCodes = map[string]bool{
	"Space":      true,
	"Enter":      true,
	"Escape":     true,
	"Tab":        true,
	"Backspace":  true,
	"ArrowUp":    true,
	"ArrowDown":  true,
	"ArrowLeft":  true,
	"ArrowRight": true,
}

// ValidCode reports whether code is a key code the platform layer can produce:
// Space, Enter, Escape, Tab, Backspace, ArrowUp/Down/Left/Right, KeyA-KeyZ, Digit0-Digit9, F1-F12.
func ValidCode(code string) bool {
	if namedCodes[code] {
		return true
	}
	if rest, ok := strings.CutPrefix(code, "Key"); ok {
		return len(rest) == 1 && rest[0] >= 'A' && rest[0] <= 'Z'
	}
	if rest, ok := strings.CutPrefix(code, "Digit"); ok {
		return len(rest) == 1 && rest[0] >= '0' && rest[0] <= '9'
	}
	if rest, ok := strings.CutPrefix(code, "F"); ok {
		n, err := strconv.Atoi(rest)
		return err == nil && n >= 1 && n <= 12 && strconv.Itoa(n) == rest
	}
	return false
}
