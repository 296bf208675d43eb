package view

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"lifeconsole/src/layout"
	"lifeconsole/src/universe"
)

const (
	liveFiller       = '█'
	deadFiller       = '░'
	backgroundFiller = '▓'
	infoHeight       = 3
)

var (
	liveStyle       = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorLime)
	deadStyle       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	backgroundStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	infoStyle       = tcell.StyleDefault
	labelStyle      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	controlsStyle   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

var runningStateStyle = map[universe.RunningState]tcell.Style{
	universe.RunningStatePaused:   tcell.StyleDefault.Foreground(tcell.ColorBlue),
	universe.RunningStateRun:      tcell.StyleDefault.Foreground(tcell.ColorDarkCyan),
	universe.RunningStateUncapped: tcell.StyleDefault.Foreground(tcell.ColorRed),
}

// averageWindows are the rolling average windows shown in the stats line
var averageWindows = []int{3, 10, 100, 1000}

// prop is one "name: value" pair of an info line
type prop struct {
	name  string
	value string
	style tcell.Style
}

// renderProps lays out the props on one line padded to width
func renderProps(width int, props ...prop) []layout.Symbol {
	line := make([]layout.Symbol, 0, width)
	put := func(s string, style tcell.Style) {
		line = append(line, layout.Text(s, len([]rune(s)), style)...)
	}
	for _, p := range props {
		put(" "+p.name+": ", labelStyle)
		put(p.value, p.style)
		put("  ", infoStyle)
	}
	if len(line) > width {
		line = line[:width]
	}
	return append(line, layout.Fill(' ', width-len(line), infoStyle)...)
}

// worldContent renders the grid, it reads the live grid on every call
func worldContent(u universe.Universe, offsetX, offsetY int) *layout.Content {
	grid := u.Grid()
	w, h := grid.Width(), grid.Height()
	return &layout.Content{
		Frame: layout.Frame{Name: "world", Width: w, Height: h, OffsetX: offsetX, OffsetY: offsetY, ZIndex: 100},
		Symbols: func() []layout.Symbol {
			out := make([]layout.Symbol, 0, w*h)
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					if grid.IsAlive(x, y) {
						out = append(out, layout.Symbol{Rune: liveFiller, Style: liveStyle})
					} else {
						out = append(out, layout.Symbol{Rune: deadFiller, Style: deadStyle})
					}
				}
			}
			return out
		},
	}
}

// BuildLayout builds the layout tree of the console UI
// the tree is static, its content functions read the universe state on every collapse
func BuildLayout(u universe.Universe, k []keyBindings) layout.Node {
	world := worldContent(u, 1, 1)
	width := world.Width

	state := &layout.Content{
		Frame: layout.Frame{Name: "state", Width: width, Height: infoHeight, OffsetX: 1, OffsetY: world.Height + 2, ZIndex: 101},
		Symbols: func() []layout.Symbol {
			s := u.Status()
			line := renderProps(width,
				prop{"Tick", fmt.Sprint(s.Tick), infoStyle},
				prop{"Speed", fmt.Sprint(s.Speed), infoStyle},
				prop{"Population", fmt.Sprint(s.Population), infoStyle},
				prop{"Mode", s.RunningMode.String(), runningStateStyle[s.RunningMode]},
			)
			return blankAround(width, line)
		},
	}

	stats := &layout.Content{
		Frame: layout.Frame{Name: "stats", Width: width, Height: infoHeight, OffsetX: 1, OffsetY: state.OffsetY + infoHeight, ZIndex: 101},
		Symbols: func() []layout.Symbol {
			h := u.History()
			props := make([]prop, 0, len(averageWindows))
			for _, n := range averageWindows {
				props = append(props, prop{fmt.Sprintf("avg-%d", n), fmt.Sprint(h.RollingAverage(n)), infoStyle})
			}
			return blankAround(width, renderProps(width, props...))
		},
	}

	help := controlsLine(k)
	controls := &layout.Content{
		Frame: layout.Frame{Name: "controls", Width: width, Height: infoHeight, OffsetX: 1, OffsetY: stats.OffsetY + infoHeight, ZIndex: 101},
		Symbols: func() []layout.Symbol {
			return append(layout.Text(help, width, controlsStyle), layout.Fill(' ', width*(infoHeight-1), infoStyle)...)
		},
	}

	frameWidth := width + 2
	frameHeight := controls.OffsetY + infoHeight + 1
	background := &layout.Content{
		Frame: layout.Frame{Name: "background", Width: frameWidth, Height: frameHeight},
		Symbols: func() []layout.Symbol {
			return layout.Fill(backgroundFiller, frameWidth*frameHeight, backgroundStyle)
		},
	}

	return &layout.Container{
		Frame:    layout.Frame{Name: "root", Width: frameWidth, Height: frameHeight},
		Children: layout.Static(background, world, state, stats, controls),
	}
}

// blankAround surrounds the line with a blank line above and below
func blankAround(width int, line []layout.Symbol) []layout.Symbol {
	out := layout.Fill(' ', width, infoStyle)
	out = append(out, line...)
	return append(out, layout.Fill(' ', width, infoStyle)...)
}
