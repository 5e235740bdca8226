package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"shapes-demo/internal/commands"
	"shapes-demo/internal/ui/css"
)

// Node is one overlay element: a panel, label or button. Children are stacked top to bottom
// inside the node's padding. Bounds are recomputed by Engine.Layout every frame.
type Node struct {
	Type     string // "panel", "label" or "button"
	Class    string
	ID       string
	Text     string
	Command  commands.Command // buttons only
	Hover    bool
	Bounds   rl.Rectangle
	Children []*Node
}

// NewNode creates a node with type and optional class, id and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// NewButton creates a button that issues cmd when clicked.
func NewButton(class, id, text string, cmd commands.Command) *Node {
	n := NewNode("button", class, id, text)
	n.Command = cmd
	return n
}

// Add appends children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func (n *Node) target() css.Target {
	return css.Target{Type: n.Type, Class: n.Class, ID: n.ID, Hover: n.Hover}
}

func (n *Node) contains(x, y float32) bool {
	return rl.CheckCollisionPointRec(rl.NewVector2(x, y), n.Bounds)
}
