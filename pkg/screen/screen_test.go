//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package screen

import (
	"strings"
	"testing"

	"github.com/nsf/termbox-go"

	"github.com/timburks/gopad/pkg/clipboard"
	"github.com/timburks/gopad/pkg/editor"
	"github.com/timburks/gopad/pkg/shell"
	gopad "github.com/timburks/gopad/pkg/types"
)

type cell struct {
	c  rune
	fg gopad.Color
	bg gopad.Color
}

type fakeTerminal struct {
	size    gopad.Size
	cells   map[gopad.Point]cell
	cursor  gopad.Point
	hidden  bool
	flushes int
	events  []*gopad.Event
}

func newFakeTerminal(rows, cols int) *fakeTerminal {
	return &fakeTerminal{size: gopad.Size{Rows: rows, Cols: cols}, cells: make(map[gopad.Point]cell)}
}

func (f *fakeTerminal) SetCell(col int, row int, c rune, fg gopad.Color, bg gopad.Color) {
	if col < 0 || row < 0 || col >= f.size.Cols || row >= f.size.Rows {
		return
	}
	f.cells[gopad.Point{Row: row, Col: col}] = cell{c: c, fg: fg, bg: bg}
}

func (f *fakeTerminal) GetSize() gopad.Size { return f.size }
func (f *fakeTerminal) Clear() { f.cells = make(map[gopad.Point]cell) }
func (f *fakeTerminal) SetCursor(col, row int) {
	f.cursor = gopad.Point{Row: row, Col: col}
	f.hidden = false
}
func (f *fakeTerminal) HideCursor() { f.hidden = true }
func (f *fakeTerminal) Flush() { f.flushes++ }
func (f *fakeTerminal) Close() {}

func (f *fakeTerminal) PollEvent() *gopad.Event {
	if len(f.events) == 0 {
		return &gopad.Event{Type: gopad.EventError}
	}
	event := f.events[0]
	f.events = f.events[1:]
	return event
}

func (f *fakeTerminal) line(row int) string {
	var b strings.Builder
	for col := 0; col < f.size.Cols; col++ {
		if c, ok := f.cells[gopad.Point{Row: row, Col: col}]; ok {
			b.WriteRune(c.c)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func (f *fakeTerminal) find(text string) (gopad.Point, bool) {
	for row := 0; row < f.size.Rows; row++ {
		if col := strings.Index(f.line(row), text); col >= 0 {
			return gopad.Point{Row: row, Col: len([]rune(f.line(row)[:col]))}, true
		}
	}
	return gopad.Point{}, false
}

type window struct {
	title string
}

func (w *window) GetTitle() string { return w.title }
func (w *window) GetMenuBar() []gopad.Menu { return shell.DefaultMenuBar() }

type commander struct {
	mode    int
	menu    int
	item    int
	message string
}

func (c *commander) GetMode() int { return c.mode }

func (c *commander) GetMenuSelection() (int, int) {
	if c.mode != gopad.ModeMenu {
		return -1, -1
	}
	return c.menu, c.item
}

func (c *commander) GetMessageBarText(length int) string { return c.message }

func setup(rows, cols int, text string) (*Screen, *fakeTerminal, *editor.TextArea) {
	f := newFakeTerminal(rows, cols)
	area := editor.NewTextArea(clipboard.NewLocalClipboard())
	area.SetText(text)
	return NewScreenWithTerminal(f), f, area
}

func TestRenderFrame(t *testing.T) {
	s, f, area := setup(10, 60, "hello\nworld")
	s.Render(&window{title: "gopad - /tmp/a.txt"}, area, &commander{message: "ready"})
	if top := f.line(0); !strings.HasPrefix(top, " File  Edit ") || !strings.Contains(top, "gopad - /tmp/a.txt") {
		t.Errorf("Unexpected menu bar: %q", top)
	}
	if l := f.line(1); !strings.HasPrefix(l, "hello") {
		t.Errorf("Unexpected first text line: %q", l)
	}
	if l := f.line(9); !strings.HasPrefix(l, "ready") {
		t.Errorf("Unexpected message bar: %q", l)
	}
	if f.hidden || f.cursor != (gopad.Point{Row: 1, Col: 0}) {
		t.Errorf("Unexpected cursor: %+v hidden=%t", f.cursor, f.hidden)
	}
	if f.flushes != 1 {
		t.Errorf("Frame flushed %d times", f.flushes)
	}
}

func TestRenderWrapsToTextWidth(t *testing.T) {
	s, f, area := setup(6, 7, "hello world")
	s.Render(&window{title: "gopad"}, area, &commander{})
	// six columns of text and one of scroll bar
	if l := f.line(1); l != "hello █" {
		t.Errorf("Unexpected first line: %q", l)
	}
	if l := f.line(2); l != "world █" {
		t.Errorf("Unexpected second line: %q", l)
	}
}

func TestRenderOpenMenu(t *testing.T) {
	s, f, area := setup(16, 60, "")
	s.Render(&window{title: "gopad"}, area, &commander{mode: gopad.ModeMenu, menu: 1, item: 3})
	p, ok := f.find("Cut")
	if !ok {
		t.Fatalf("Edit menu not drawn")
	}
	if !strings.Contains(f.line(p.Row), "Ctrl+X") {
		t.Errorf("Accelerator missing: %q", f.line(p.Row))
	}
	if c := f.cells[p]; c.fg != gopad.ColorWhite || c.bg != gopad.ColorBlack {
		t.Errorf("Selected item not highlighted: %+v", c)
	}
	if q, ok := f.find("Undo"); !ok || f.cells[q].bg != gopad.ColorWhite {
		t.Errorf("Unselected item drawn incorrectly")
	}
	if !f.hidden {
		t.Errorf("Cursor shown while a menu is open")
	}
	if _, ok := f.find("Open"); ok {
		t.Errorf("File menu drawn while Edit menu is open")
	}
}

func TestScrollBar(t *testing.T) {
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "line"
	}
	s, f, area := setup(10, 20, strings.Join(lines, "\n"))
	area.SetCursor(gopad.Point{Row: 19, Col: 0})
	s.Render(&window{title: "gopad"}, area, &commander{})
	var bar string
	for row := 1; row <= 8; row++ {
		bar += string(f.cells[gopad.Point{Row: row, Col: 19}].c)
	}
	if bar != "░░░░███░" {
		t.Errorf("Unexpected scroll bar: %q", bar)
	}
}

func TestRenderDialog(t *testing.T) {
	s, f, area := setup(12, 60, "text under the dialog")
	s.Render(&window{title: "gopad"}, area, &commander{})
	s.RenderDialog(&gopad.Dialog{
		Title:    "Exit",
		Message:  "Do you really want to exit the program?",
		Buttons:  []string{"Yes", "No"},
		Selected: 1,
	})
	if _, ok := f.find("Do you really want to exit the program?"); !ok {
		t.Errorf("Dialog message not drawn")
	}
	if _, ok := f.find(" Exit "); !ok {
		t.Errorf("Dialog title not drawn")
	}
	no, ok := f.find("[ No ]")
	if !ok {
		t.Fatalf("Buttons not drawn")
	}
	if c := f.cells[no]; c.bg != gopad.ColorBlack {
		t.Errorf("Selected button not highlighted: %+v", c)
	}
	if !strings.HasPrefix(f.line(1), "text under") {
		t.Errorf("Frame beneath dialog not drawn: %q", f.line(1))
	}
}

func TestRenderPromptDialog(t *testing.T) {
	s, f, _ := setup(12, 60, "")
	s.RenderDialog(&gopad.Dialog{Title: "Save", Prompt: true, Input: "/tmp/a.txt", Buttons: []string{"OK", "Cancel"}})
	p, ok := f.find("/tmp/a.txt")
	if !ok {
		t.Fatalf("Input not drawn")
	}
	if f.hidden || f.cursor != (gopad.Point{Row: p.Row, Col: p.Col + 10}) {
		t.Errorf("Unexpected cursor: %+v", f.cursor)
	}
}

func TestTinyTerminal(t *testing.T) {
	s, f, area := setup(2, 1, "text")
	s.Render(&window{title: "gopad"}, area, &commander{})
	s.RenderDialog(&gopad.Dialog{Title: "Exit", Buttons: []string{"Yes", "No"}})
	if !f.hidden {
		t.Errorf("Cursor shown on a terminal too small to draw")
	}
}

func TestKeyMapping(t *testing.T) {
	for k, expected := range map[termbox.Key]gopad.Key{
		termbox.KeyCtrlO:      gopad.KeyCtrlO,
		termbox.KeyCtrlA:      gopad.KeyCtrlA,
		termbox.KeyBackspace:  gopad.KeyBackspace2,
		termbox.KeyBackspace2: gopad.KeyBackspace2,
		termbox.KeyEnter:      gopad.KeyEnter,
		termbox.KeyF10:        gopad.KeyF10,
		termbox.KeyF1:         gopad.KeyUnsupported,
	} {
		if got := key(k); got != expected {
			t.Errorf("key(%v) = %v, expected %v", k, got, expected)
		}
	}
}
