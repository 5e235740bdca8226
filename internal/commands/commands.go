package commands

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidKeyCode = errors.New("invalid key code")
	ErrQueueFull      = errors.New("command queue full")
)

// Command is one of the user-facing actions of the demo.
type Command int

const (
	None Command = iota
	ToggleAnimation
	ChangeColors
	ResetCamera
)

var names = map[Command]string{
	ToggleAnimation: "toggle_animation",
	ChangeColors:    "change_colors",
	ResetCamera:     "reset_camera",
}

// String returns the command's wire name (e.g. "reset_camera").
func (c Command) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "none"
}

// All returns every command in declaration order.
func All() []Command {
	return []Command{ToggleAnimation, ChangeColors, ResetCamera}
}

// Parse returns the command with the given wire name.
func Parse(name string) (Command, error) {
	for c, n := range names {
		if n == name {
			return c, nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Dispatcher runs commands.
type Dispatcher interface {
	Dispatch(cmd Command)
}

// Registry maps commands to handlers. Register handlers at startup; Dispatch from the render loop.
type Registry struct {
	handlers map[Command]func()
}

// NewRegistry returns an empty command registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[Command]func())}
}

// Register sets the handler for cmd, replacing any previous one.
func (r *Registry) Register(cmd Command, run func()) {
	r.handlers[cmd] = run
}

// Dispatch runs the handler for cmd. Commands without a handler are ignored.
func (r *Registry) Dispatch(cmd Command) {
	if run, ok := r.handlers[cmd]; ok {
		run()
	}
}

// Execute runs the command with the given wire name.
func (r *Registry) Execute(name string) error {
	cmd, err := Parse(name)
	if err != nil {
		return err
	}
	if _, ok := r.handlers[cmd]; !ok {
		return fmt.Errorf("%w: %q has no handler", ErrUnknownCommand, name)
	}
	r.Dispatch(cmd)
	return nil
}

// Registered returns the wire names of all commands with a handler, sorted.
func (r *Registry) Registered() []string {
	out := make([]string, 0, len(r.handlers))
	for c := range r.handlers {
		out = append(out, c.String())
	}
	sort.Strings(out)
	return out
}
