// Package layout describes the screen as a tree of content and container nodes and
// flattens it into a single symbol buffer.
package layout

import (
	"github.com/gdamore/tcell/v2"
)

// Symbol is one terminal cell worth of output.
type Symbol struct {
	Rune  rune
	Style tcell.Style
}

// Blank is the background symbol of a collapsed container.
var Blank = Symbol{Rune: ' ', Style: tcell.StyleDefault}

// Frame is the geometry shared by every node.
// Offsets are relative to the parent container.
type Frame struct {
	Name    string
	Width   int
	Height  int
	OffsetX int
	OffsetY int
	ZIndex  int
}

// Node is either a *Content or a *Container.
type Node interface {
	Geometry() Frame
	isNode()
}

// Content is a leaf producing Width*Height symbols in row-major order.
// Symbols is called on every use, output is never cached.
type Content struct {
	Frame
	Symbols func() []Symbol
}

// Container produces the child nodes composited together on every use.
type Container struct {
	Frame
	Children func() []Node
}

func (c *Content) Geometry() Frame   { return c.Frame }
func (c *Container) Geometry() Frame { return c.Frame }

func (*Content) isNode()   {}
func (*Container) isNode() {}

// Static returns a Children func always producing nodes in the given order.
func Static(nodes ...Node) func() []Node {
	return func() []Node { return nodes }
}

// Rows evaluates the content and splits it into Height rows of Width symbols.
// Missing symbols are blank, surplus symbols are ignored.
func (c *Content) Rows() [][]Symbol {
	if c.Width <= 0 || c.Height <= 0 {
		return nil
	}
	var symbols []Symbol
	if c.Symbols != nil {
		symbols = c.Symbols()
	}
	rows := make([][]Symbol, c.Height)
	for y := range rows {
		row := make([]Symbol, c.Width)
		for x := range row {
			i := x + y*c.Width
			if i < len(symbols) {
				row[x] = symbols[i]
			} else {
				row[x] = Blank
			}
		}
		rows[y] = row
	}
	return rows
}

// Text pads or truncates s to exactly width symbols.
func Text(s string, width int, style tcell.Style) []Symbol {
	out := make([]Symbol, 0, width)
	for _, r := range s {
		if len(out) == width {
			break
		}
		out = append(out, Symbol{Rune: r, Style: style})
	}
	for len(out) < width {
		out = append(out, Symbol{Rune: ' ', Style: style})
	}
	return out
}

// Fill returns n copies of r.
func Fill(r rune, n int, style tcell.Style) []Symbol {
	if n < 0 {
		n = 0
	}
	out := make([]Symbol, n)
	for i := range out {
		out[i] = Symbol{Rune: r, Style: style}
	}
	return out
}
