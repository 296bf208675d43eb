package view

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"lifeconsole/src/layout"
)

// Draw streams the content to the screen row by row starting at its offset
// rows and columns past the screen's current size are not drawn
// truncated reports whether anything was cut off, a too small terminal is not an error
func Draw(screen tcell.Screen, c *layout.Content) (truncated bool) {
	maxW, maxH := screen.Size()
	for y, row := range c.Rows() {
		ty := c.OffsetY + y
		if ty >= maxH {
			truncated = true
			break
		}
		if ty < 0 {
			truncated = true
			continue
		}
		for x, s := range row {
			tx := c.OffsetX + x
			if tx >= maxW {
				truncated = true
				break
			}
			if tx < 0 {
				truncated = true
				continue
			}
			screen.SetContent(tx, ty, s.Rune, nil, s.Style)
		}
	}
	screen.Show()
	return
}

// render collapses the layout and draws it, the truncation is logged when it starts or ends
func (t *ConsoleUI) render() {
	truncated := Draw(t.screen, layout.Collapse(t.root))
	if truncated != t.truncated {
		w, h := t.screen.Size()
		if truncated {
			log.Printf("view: frame %vx%v does not fit the terminal %vx%v, output truncated",
				t.root.Geometry().Width, t.root.Geometry().Height, w, h)
		} else {
			log.Printf("view: frame fits the terminal %vx%v again", w, h)
		}
		t.truncated = truncated
	}
}
