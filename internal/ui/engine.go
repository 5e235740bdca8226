package ui

import (
	_ "embed"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"shapes-demo/internal/commands"
	"shapes-demo/internal/ui/css"
)

//go:embed default.css
var defaultCSS string

// Engine lays out and draws node trees with the current stylesheet.
// Text uses the loaded font when there is one and raylib's default font otherwise.
type Engine struct {
	sheet *css.Stylesheet
	roots []*Node
	font  rl.Font
}

// New returns an engine styled by the built-in stylesheet.
func New() *Engine {
	sheet, err := css.Parse(defaultCSS)
	if err != nil {
		panic(fmt.Sprintf("ui: built-in stylesheet: %v", err))
	}
	return &Engine{sheet: sheet}
}

// LoadCSS replaces the stylesheet with the one at path. On error the current one is kept.
func (e *Engine) LoadCSS(path string) error {
	sheet, err := css.Load(path)
	if err != nil {
		return err
	}
	e.sheet = sheet
	return nil
}

// LoadFont loads a TTF/OTF font for all text. Call after the window exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if !rl.IsFontValid(f) {
		return fmt.Errorf("load font %s: invalid font", path)
	}
	e.Unload()
	e.font = f
	return nil
}

// Unload frees the loaded font, if any.
func (e *Engine) Unload() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

// Font returns the loaded font; its texture ID is 0 when none is loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

// SetRoots replaces the node trees. Roots are drawn in order.
func (e *Engine) SetRoots(roots ...*Node) {
	e.roots = roots
}

// Move updates hover state for the pointer at (x, y).
func (e *Engine) Move(x, y float32) {
	e.walk(func(n *Node) {
		n.Hover = n.Type == "button" && n.contains(x, y)
	})
}

// Over reports whether (x, y) is on any root node, so the click should not start a drag.
func (e *Engine) Over(x, y float32) bool {
	for _, r := range e.roots {
		if r.contains(x, y) {
			return true
		}
	}
	return false
}

// Click returns the command of the button under (x, y).
func (e *Engine) Click(x, y float32) (commands.Command, bool) {
	var hit *Node
	e.walk(func(n *Node) {
		if n.Type == "button" && n.contains(x, y) {
			hit = n
		}
	})
	if hit == nil {
		return commands.None, false
	}
	return hit.Command, true
}

func (e *Engine) walk(fn func(*Node)) {
	var visit func(*Node)
	visit = func(n *Node) {
		fn(n)
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, r := range e.roots {
		visit(r)
	}
}

func (e *Engine) style(n *Node) css.Style {
	return css.Resolve(e.sheet.Props(n.target()))
}

// Layout computes Bounds for every node against a screen of w x h pixels.
func (e *Engine) Layout(w, h int32) {
	for _, r := range e.roots {
		st := e.style(r)
		r.Bounds.Width = float32(st.Width)
		r.Bounds.X = float32(st.Left)
		r.Bounds.Y = float32(st.Top)
		e.layoutChildren(r, st)
		if st.Height > 0 {
			r.Bounds.Height = float32(st.Height)
		}
		if st.LeftPct >= 0 {
			r.Bounds.X = float32((w - int32(r.Bounds.Width)) * st.LeftPct / 100)
		}
		if st.TopPct >= 0 {
			r.Bounds.Y = float32((h - int32(r.Bounds.Height)) * st.TopPct / 100)
		}
		e.place(r)
	}
}

// layoutChildren sizes n's children and n's own auto height. Positions are relative until place.
func (e *Engine) layoutChildren(n *Node, st css.Style) {
	pad := float32(st.Padding)
	y := pad
	for i, c := range n.Children {
		cs := e.style(c)
		c.Bounds.Width = float32(cs.Width)
		if c.Bounds.Width == 0 {
			c.Bounds.Width = n.Bounds.Width - 2*pad
		}
		e.layoutChildren(c, cs)
		c.Bounds.Height = float32(cs.Height)
		if c.Bounds.Height == 0 {
			c.Bounds.Height = float32(cs.FontSize + 2*cs.Padding)
		}
		c.Bounds.X, c.Bounds.Y = pad, y
		y += c.Bounds.Height
		if i < len(n.Children)-1 {
			y += float32(st.Gap)
		}
	}
	if len(n.Children) > 0 {
		n.Bounds.Height = y + pad
	}
}

// place converts child offsets into screen coordinates.
func (e *Engine) place(n *Node) {
	for _, c := range n.Children {
		c.Bounds.X += n.Bounds.X
		c.Bounds.Y += n.Bounds.Y
		e.place(c)
	}
}

// Draw lays out and draws every tree for the current screen size.
func (e *Engine) Draw() {
	e.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	e.walk(e.drawNode)
}

func (e *Engine) drawNode(n *Node) {
	st := e.style(n)
	b := n.Bounds
	roundness := float32(0)
	if m := min(b.Width, b.Height); st.Radius > 0 && m > 0 {
		roundness = min(2*st.Radius/m, 1)
	}
	if st.Background.A > 0 {
		rl.DrawRectangleRounded(b, roundness, 8, st.Background)
	}
	if st.HasBorder {
		rl.DrawRectangleRoundedLinesEx(b, roundness, 8, 1, st.Border)
	}
	if n.Text == "" {
		return
	}
	size := float32(st.FontSize)
	pos := rl.NewVector2(b.X+float32(st.Padding), b.Y+(b.Height-size)/2)
	if n.Type == "button" {
		pos.X = b.X + (b.Width-e.measure(n.Text, size))/2
	}
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, n.Text, pos, size, 1, st.Color)
	} else {
		rl.DrawText(n.Text, int32(pos.X), int32(pos.Y), int32(size), st.Color)
	}
}

func (e *Engine) measure(text string, size float32) float32 {
	if e.font.Texture.ID != 0 {
		return rl.MeasureTextEx(e.font, text, size, 1).X
	}
	return float32(rl.MeasureText(text, int32(size)))
}
