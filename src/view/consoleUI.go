package view

import (
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"lifeconsole/src/clock"
	"lifeconsole/src/layout"
	"lifeconsole/src/universe"
)

// DefFrameInterval is the longest pause between two main loop iterations
const DefFrameInterval = 16 * time.Millisecond

// ConsoleUI is the interactive terminal view
// it owns the main loop: input flush, simulation clock and rendering run on one goroutine
type ConsoleUI struct {
	u      universe.Universe
	screen tcell.Screen
	clock  *clock.Clock
	root   layout.Node
	k      []keyBindings

	events chan tcell.Event
	done   chan struct{}
	exit   atomic.Bool

	truncated     bool
	frameInterval time.Duration
	sleep         func(time.Duration)
}

// NewViewTerminal creates the console UI on an initialized screen
func NewViewTerminal(screen tcell.Screen, u universe.Universe, clk *clock.Clock) *ConsoleUI {
	if clk == nil {
		clk = clock.NewDefault()
	}
	if top := clk.Levels() - 1; top != universe.MaxSpeed {
		log.Printf("clock tops out at speed %v, the game goes up to %v", top, universe.MaxSpeed)
	}
	t := &ConsoleUI{
		u:             u,
		screen:        screen,
		clock:         clk,
		events:        make(chan tcell.Event, DefEventBuffer),
		frameInterval: DefFrameInterval,
		sleep:         time.Sleep,
	}
	t.k = t.initKeyBindings()
	t.root = BuildLayout(u, t.k)
	return t
}

// Start runs the main loop until a quit key is pressed or Stop is called
func (t *ConsoleUI) Start() error {
	t.done = make(chan struct{})
	defer close(t.done)

	t.screen.HideCursor()
	t.screen.Clear()
	go t.bufferInput()

	t.render()
	for !t.exit.Load() {
		if err := t.flushInput(); err != nil {
			if errors.Is(err, ErrQuit) {
				t.exit.Store(true)
				break
			}
			return err
		}
		t.clock.Frame(t.u.Speed(), t.u)
		t.render()
		t.holdFrame()
	}
	return nil
}

// Stop asks the main loop and the input reader to finish
func (t *ConsoleUI) Stop() {
	t.exit.Store(true)
}

// holdFrame waits until the next tick is due, at most one frame interval
func (t *ConsoleUI) holdFrame() {
	d := t.clock.Until(t.u.Speed())
	if d == 0 {
		return
	}
	if d < 0 || d > t.frameInterval {
		d = t.frameInterval
	}
	t.sleep(d)
}
