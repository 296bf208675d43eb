package view

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/logrusorgru/aurora"

	"lifeconsole/src/universe"
)

// ConsoleOut is the headless view: it runs the simulation as fast as possible and reports to a writer
type ConsoleOut struct {
	u         universe.Universe
	out       io.Writer
	au        aurora.Aurora
	startTime time.Time
}

func NewConsoleOut(u universe.Universe, out io.Writer, colors bool) *ConsoleOut {
	return &ConsoleOut{u: u, out: out, au: aurora.NewAurora(colors)}
}

// Register prints the running configuration
func (c *ConsoleOut) Register() {
	o := c.u.Options()
	fmt.Fprintln(c.out, "Running configuration:")
	c.printHashData(map[string]interface{}{
		"Dimension":      fmt.Sprintf("%v x %v", o.Width, o.Height),
		"Pattern":        o.Pattern,
		"Max iterations": fmt.Sprintf("%v steps", o.MaxSteps),
	})
}

// Start marks the beginning of the simulation
func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.out, "\nSimulation started...")
}

// Run ticks the universe up to maxSteps generations
// the run finishes early once the grid is empty or stops changing
func (c *ConsoleOut) Run(maxSteps int) universe.Status {
	for c.u.Speed() == universe.SpeedMin {
		c.u.Faster()
	}
	for i := 0; i < maxSteps; i++ {
		c.u.NextTick()
		st := c.u.Status()
		if st.Tick%10 == 0 {
			fmt.Fprintf(c.out, "  Iterations done: %v\n", st.Tick)
		}
		if st.Population == 0 || !c.u.Grid().Changed() {
			break
		}
	}
	st := c.u.Status()
	c.Refresh(st)
	return st
}

// Refresh prints the finished summary and the final board
func (c *ConsoleOut) Refresh(st universe.Status) {
	h := c.u.History()
	resultData := map[string]interface{}{
		"Last iteration": st.Tick,
		"Total time":     time.Since(c.startTime).Round(time.Millisecond),
		"Live cells":     st.Population,
	}
	for _, n := range averageWindows {
		resultData[fmt.Sprintf("Rolling avg-%04d", n)] = h.RollingAverage(n)
	}
	fmt.Fprintln(c.out, "\n"+c.au.Colorize("Finished:", aurora.RedFg).String())
	c.printHashData(resultData)
	fmt.Fprintln(c.out)
	c.printBoard()
}

// printBoard prints the collapsed world content, live cells are colored
func (c *ConsoleOut) printBoard() {
	world := worldContent(c.u, 0, 0)
	b := strings.Builder{}
	for _, row := range world.Rows() {
		for _, s := range row {
			if s.Rune == liveFiller {
				b.WriteString(c.au.Green(string(s.Rune)).String())
			} else {
				b.WriteRune(s.Rune)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(c.out, b.String())
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.out, "  %s: %v\n", c.au.Colorize(propName, aurora.GreenFg), d[propName])
	}
}
