package view

import (
	"strings"
	"testing"

	"lifeconsole/src/layout"
)

func rowString(row []layout.Symbol) string {
	b := strings.Builder{}
	for _, s := range row {
		b.WriteRune(s.Rune)
	}
	return b.String()
}

func TestBuildLayout(t *testing.T) {
	game := newTestGame(40, 4, 1)
	game.SpawnGlider()
	ui := NewViewTerminal(newTestScreen(t, 120, 40), game, nil)

	frame := layout.Collapse(ui.root)
	if frame.Width != 42 || frame.Height != 4+12 {
		t.Fatalf("unexpected frame size %vx%v", frame.Width, frame.Height)
	}
	rows := frame.Rows()

	if rows[0][0].Rune != backgroundFiller || rows[len(rows)-1][41].Rune != backgroundFiller {
		t.Error("expected the background around the world")
	}
	if rows[1][2].Rune != liveFiller || rows[1][1].Rune != deadFiller {
		t.Errorf("unexpected world row %q", rowString(rows[1]))
	}
	if !strings.Contains(rowString(rows[7]), "Tick: 0") || !strings.Contains(rowString(rows[7]), "Population: 5") {
		t.Errorf("unexpected state line %q", rowString(rows[7]))
	}
	if !strings.Contains(rowString(rows[10]), "avg-3: 0") {
		t.Errorf("unexpected stats line %q", rowString(rows[10]))
	}
	if !strings.HasPrefix(rowString(rows[12][1:]), " [+] Faster") {
		t.Errorf("unexpected controls line %q", rowString(rows[12]))
	}
}

func TestBuildLayout_ReadsLiveState(t *testing.T) {
	game := newTestGame(40, 4, 1)
	ui := NewViewTerminal(newTestScreen(t, 120, 40), game, nil)

	before := layout.Collapse(ui.root).Rows()
	game.SpawnGlider()
	game.NextTick()
	after := layout.Collapse(ui.root).Rows()

	if rowString(before[7]) == rowString(after[7]) {
		t.Error("state line did not follow the game")
	}
	if !strings.Contains(rowString(after[7]), "Tick: 1") {
		t.Errorf("unexpected state line %q", rowString(after[7]))
	}
}

func TestRenderProps_Truncates(t *testing.T) {
	line := renderProps(8, prop{"Population", "12345", infoStyle})
	if len(line) != 8 {
		t.Fatalf("expected 8 symbols, got %v", len(line))
	}
	if got := rowString(line); got != " Populat" {
		t.Errorf("unexpected line %q", got)
	}
}
