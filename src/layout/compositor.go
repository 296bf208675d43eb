package layout

import (
	"log"
	"sort"
)

// Collapse flattens node into a single Content.
// Content nodes are returned unchanged. Containers are painted onto a fresh blank
// canvas, children in ascending z-order with declaration order kept on ties, and
// every symbol falling outside the container or past a child's declared height is
// dropped. Any other node type is an integration error and panics.
func Collapse(node Node) *Content {
	switch n := node.(type) {
	case *Content:
		if n == nil {
			break
		}
		return n
	case *Container:
		if n == nil {
			break
		}
		return collapseContainer(n)
	}
	log.Panicf("layout: cannot collapse node of type %T", node)
	return nil
}

func collapseContainer(c *Container) *Content {
	w, h := c.Width, c.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	canvas := make([]Symbol, w*h)
	for i := range canvas {
		canvas[i] = Blank
	}

	var children []Node
	if c.Children != nil {
		children = append(children, c.Children()...)
	}
	sort.SliceStable(children, func(i, j int) bool {
		return zIndex(children[i]) < zIndex(children[j])
	})

	for _, child := range children {
		blit(canvas, w, h, c.Name, Collapse(child))
	}

	return &Content{
		Frame:   c.Frame,
		Symbols: func() []Symbol { return canvas },
	}
}

// zIndex lets nil children reach Collapse, which rejects them.
func zIndex(n Node) int {
	switch v := n.(type) {
	case *Content:
		if v != nil {
			return v.ZIndex
		}
	case *Container:
		if v != nil {
			return v.ZIndex
		}
	}
	return 0
}

// blit copies the child's symbols row-major into the canvas at the child's offset.
func blit(canvas []Symbol, w, h int, parent string, child *Content) {
	if child.Width <= 0 || child.Height <= 0 || child.Symbols == nil {
		return
	}
	symbols := child.Symbols()
	clipped := 0
	for i, s := range symbols {
		row := i / child.Width
		if row >= child.Height {
			log.Printf("layout: %q produced %d symbols, declared %dx%d, surplus dropped",
				child.Name, len(symbols), child.Width, child.Height)
			break
		}
		x := child.OffsetX + i%child.Width
		y := child.OffsetY + row
		if x < 0 || y < 0 || x >= w || y >= h {
			clipped++
			continue
		}
		canvas[x+y*w] = s
	}
	if clipped > 0 {
		log.Printf("layout: %q clipped %d symbols outside container %q (%dx%d)",
			child.Name, clipped, parent, w, h)
	}
}
