package layout

import (
	"io"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func fill(name string, r rune, w, h, x, y, z int) *Content {
	return &Content{
		Frame:   Frame{Name: name, Width: w, Height: h, OffsetX: x, OffsetY: y, ZIndex: z},
		Symbols: func() []Symbol { return Fill(r, w*h, tcell.StyleDefault) },
	}
}

func render(c *Content) string {
	var b strings.Builder
	for i, row := range c.Rows() {
		if i != 0 {
			b.WriteByte('\n')
		}
		for _, s := range row {
			b.WriteRune(s.Rune)
		}
	}
	return b.String()
}

func TestCollapse_ContentUnchanged(t *testing.T) {
	c := fill("leaf", 'a', 2, 2, 0, 0, 0)
	if Collapse(c) != c {
		t.Error("expected the content node itself")
	}
}

func TestCollapse_BlankCanvas(t *testing.T) {
	root := &Container{Frame: Frame{Width: 3, Height: 2}}
	if got := render(Collapse(root)); got != "   \n   " {
		t.Errorf("unexpected canvas %q", got)
	}
}

func TestCollapse_ZOrder(t *testing.T) {
	root := &Container{
		Frame: Frame{Name: "root", Width: 4, Height: 3},
		Children: Static(
			fill("top", 'T', 2, 2, 1, 1, 10),
			fill("bottom", '.', 4, 3, 0, 0, 0),
		),
	}
	expected := "....\n.TT.\n.TT."
	if got := render(Collapse(root)); got != expected {
		t.Errorf("got\n%v\nexpected\n%v", got, expected)
	}
}

func TestCollapse_EqualZKeepsDeclarationOrder(t *testing.T) {
	root := &Container{
		Frame: Frame{Width: 3, Height: 1},
		Children: Static(
			fill("first", 'a', 3, 1, 0, 0, 5),
			fill("second", 'b', 2, 1, 0, 0, 5),
			fill("third", 'c', 1, 1, 0, 0, 5),
		),
	}
	if got := render(Collapse(root)); got != "cba" {
		t.Errorf("got %q, expected later equal-z children on top", got)
	}
}

func TestCollapse_ClipsOversizedChild(t *testing.T) {
	root := &Container{
		Frame:    Frame{Width: 3, Height: 3},
		Children: Static(fill("big", 'x', 5, 5, 0, 0, 0)),
	}
	c := Collapse(root)
	if n := len(c.Symbols()); n != 9 {
		t.Fatalf("expected 9 symbols, got %v", n)
	}
	if got := render(c); got != "xxx\nxxx\nxxx" {
		t.Errorf("unexpected canvas %q", got)
	}
}

func TestCollapse_ClipsNegativeOffset(t *testing.T) {
	root := &Container{
		Frame:    Frame{Width: 3, Height: 2},
		Children: Static(fill("shifted", 'x', 2, 2, -1, 1, 0)),
	}
	if got := render(Collapse(root)); got != "   \nx  " {
		t.Errorf("unexpected canvas %q", got)
	}
}

func TestCollapse_SurplusSymbolsDropped(t *testing.T) {
	chatty := &Content{
		Frame: Frame{Name: "chatty", Width: 2, Height: 1},
		Symbols: func() []Symbol {
			return Text("abcdef", 6, tcell.StyleDefault)
		},
	}
	root := &Container{Frame: Frame{Width: 3, Height: 3}, Children: Static(chatty)}
	if got := render(Collapse(root)); got != "ab \n   \n   " {
		t.Errorf("unexpected canvas %q", got)
	}
}

func TestCollapse_ShortContent(t *testing.T) {
	short := &Content{
		Frame:   Frame{Width: 3, Height: 2},
		Symbols: func() []Symbol { return Text("ab", 2, tcell.StyleDefault) },
	}
	root := &Container{Frame: Frame{Width: 3, Height: 2}, Children: Static(fill("bg", '.', 3, 2, 0, 0, 0), short)}
	if got := render(Collapse(root)); got != "ab.\n..." {
		t.Errorf("unexpected canvas %q", got)
	}
}

func TestCollapse_Nested(t *testing.T) {
	inner := &Container{
		Frame:    Frame{Name: "inner", Width: 2, Height: 2, OffsetX: 1, OffsetY: 1, ZIndex: 1},
		Children: Static(fill("dot", 'o', 1, 1, 1, 1, 0)),
	}
	root := &Container{
		Frame:    Frame{Width: 4, Height: 4},
		Children: Static(inner, fill("bg", '#', 4, 4, 0, 0, 0)),
	}
	expected := "####\n#  #\n# o#\n####"
	if got := render(Collapse(root)); got != expected {
		t.Errorf("got\n%v\nexpected\n%v", got, expected)
	}
}

func TestCollapse_LiveContent(t *testing.T) {
	r := 'a'
	leaf := &Content{
		Frame:   Frame{Width: 1, Height: 1},
		Symbols: func() []Symbol { return Fill(r, 1, tcell.StyleDefault) },
	}
	root := &Container{Frame: Frame{Width: 1, Height: 1}, Children: Static(leaf)}
	first := Collapse(root)
	r = 'b'
	second := Collapse(root)
	if render(first) != "a" || render(second) != "b" {
		t.Errorf("expected fresh canvases, got %q and %q", render(first), render(second))
	}
}

func TestCollapse_UnknownNodePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil child")
		}
	}()
	root := &Container{Frame: Frame{Width: 1, Height: 1}, Children: Static(nil)}
	Collapse(root)
}

func TestText(t *testing.T) {
	if s := Text("hello", 3, tcell.StyleDefault); len(s) != 3 || s[2].Rune != 'l' {
		t.Errorf("expected truncation, got %v", s)
	}
	if s := Text("hi", 4, tcell.StyleDefault); len(s) != 4 || s[3].Rune != ' ' {
		t.Errorf("expected padding, got %v", s)
	}
}
