package view

import (
	"errors"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrQuit is returned by a key handler to stop the main loop
var ErrQuit = errors.New("quit")

type keyBindings struct {
	key     tcell.Key
	ch      rune //for tcell.KeyRune bindings
	name    string
	descr   string
	handler func() error
	hidden  bool //not listed in the controls line
}

// initKeyBindings returns the command table of the console UI
func (t *ConsoleUI) initKeyBindings() []keyBindings {
	return []keyBindings{
		{tcell.KeyRune, '+', "+", "Faster", t.cmdFaster, false},
		{tcell.KeyRune, '-', "-", "Slower", t.cmdSlower, false},
		{tcell.KeyRune, 'c', "c", "Clear", t.cmdClear, false},
		{tcell.KeyRune, 'g', "g", "Spawn Glider", t.cmdSpawnGlider, false},
		{tcell.KeyRune, 'n', "n", "Spawn Noise", t.cmdSpawnNoise, false},
		{tcell.KeyRune, 'q', "q", "Quit", t.cmdQuit, false},
		{tcell.KeyCtrlC, 0, "^C", "Quit", t.cmdQuit, true},
	}
}

// lookup finds the binding for the key event, ok is false for unbound keys
func lookup(k []keyBindings, ev *tcell.EventKey) (kb keyBindings, ok bool) {
	for _, kb = range k {
		if kb.key != ev.Key() {
			continue
		}
		if kb.key == tcell.KeyRune && kb.ch != ev.Rune() {
			continue
		}
		return kb, true
	}
	return keyBindings{}, false
}

// controlsLine renders the help line listing the visible bindings
func controlsLine(k []keyBindings) string {
	b := strings.Builder{}
	b.WriteString(" ")
	first := true
	for _, kb := range k {
		if kb.hidden {
			continue
		}
		if !first {
			b.WriteString(" | ")
		}
		first = false
		b.WriteString("[")
		b.WriteString(kb.name)
		b.WriteString("] ")
		b.WriteString(kb.descr)
	}
	b.WriteString(" ")
	return b.String()
}

func (t *ConsoleUI) cmdQuit() error {
	return ErrQuit
}

func (t *ConsoleUI) cmdFaster() error {
	t.u.Faster()
	return nil
}

func (t *ConsoleUI) cmdSlower() error {
	t.u.Slower()
	return nil
}

func (t *ConsoleUI) cmdClear() error {
	t.u.KillEverything()
	return nil
}

func (t *ConsoleUI) cmdSpawnGlider() error {
	t.u.SpawnGlider()
	return nil
}

func (t *ConsoleUI) cmdSpawnNoise() error {
	t.u.SpawnNoise()
	return nil
}
