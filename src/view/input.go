package view

import (
	"log"

	"github.com/gdamore/tcell/v2"
)

// DefEventBuffer is the capacity of the channel between the input reader and the main loop
const DefEventBuffer = 256

// bufferInput is the input task: the only producer of t.events
// the exit flag is checked before each blocking read, the read itself may outlive the flag
func (t *ConsoleUI) bufferInput() {
	for !t.exit.Load() {
		ev := t.screen.PollEvent()
		if ev == nil {
			//the screen is finalized
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// flushInput drains the pending events in arrival order without blocking
// ErrQuit stops the processing, events queued after it are dropped
func (t *ConsoleUI) flushInput() error {
	for {
		select {
		case ev := <-t.events:
			if err := t.handleEvent(ev); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (t *ConsoleUI) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		kb, ok := lookup(t.k, ev)
		if !ok {
			return nil
		}
		return kb.handler()
	case *tcell.EventResize:
		t.screen.Clear()
		log.Printf("view: terminal resized")
	}
	return nil
}
