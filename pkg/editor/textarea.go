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

package editor

import (
	"log"
	"strings"

	gopad "github.com/timburks/gopad/pkg/types"
)

// The TextArea holds the document buffer and everything needed to edit it.
// There is one text area in a gopad window.
type TextArea struct {
	rows          []*Row          // the buffer, one row per line
	cursor        gopad.Point     // insertion point
	anchor        *gopad.Point    // other end of the selection, nil if nothing is selected
	undo          []Operation     // stack of operations to undo
	redo          []Operation     // stack of operations to redo
	insert        *DeleteText     // inverse of the typing run in progress, if any
	clipboard     gopad.Clipboard // used to cut/copy and paste
	size          gopad.Size      // size of the display area
	offset        int             // first display line shown
	lineCount     int             // display lines at the last render
	displayCursor gopad.Point     // cursor position on the display at the last render
}

func NewTextArea(clipboard gopad.Clipboard) *TextArea {
	t := &TextArea{clipboard: clipboard}
	t.rows = []*Row{NewRow("")}
	return t
}

// Text returns the buffer exactly as it will be written to a file.
func (t *TextArea) Text() string {
	lines := make([]string, len(t.rows))
	for i, row := range t.rows {
		lines[i] = row.String()
	}
	return strings.Join(lines, "\n")
}

// SetText replaces the whole buffer and forgets its history.
func (t *TextArea) SetText(text string) {
	lines := strings.Split(text, "\n")
	t.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		t.rows = append(t.rows, NewRow(line))
	}
	t.cursor = gopad.Point{}
	t.anchor = nil
	t.undo = nil
	t.redo = nil
	t.insert = nil
	t.offset = 0
}

func (t *TextArea) GetRowCount() int {
	return len(t.rows)
}

func (t *TextArea) TextAfter(row, col int) string {
	if row >= 0 && row < len(t.rows) {
		return t.rows[row].TextAfter(col)
	}
	return ""
}

func (t *TextArea) GetCursor() gopad.Point {
	return t.cursor
}

func (t *TextArea) SetCursor(cursor gopad.Point) {
	t.closeInsert()
	t.anchor = nil
	t.cursor = t.clampPoint(cursor)
}

func (t *TextArea) end() gopad.Point {
	last := len(t.rows) - 1
	return gopad.Point{Row: last, Col: t.rows[last].Length()}
}

func (t *TextArea) clampPoint(p gopad.Point) gopad.Point {
	if p.Row < 0 {
		return gopad.Point{}
	}
	if p.Row >= len(t.rows) {
		return t.end()
	}
	p.Col = t.rows[p.Row].clamp(p.Col)
	return p
}

// insertAt inserts text at p and returns the position just after it.
func (t *TextArea) insertAt(p gopad.Point, text []rune) gopad.Point {
	lines := strings.Split(string(text), "\n")
	row := t.rows[p.Row]
	if len(lines) == 1 {
		row.Insert(p.Col, text)
		return gopad.Point{Row: p.Row, Col: p.Col + len(text)}
	}
	tail := row.Split(p.Col)
	row.Insert(p.Col, []rune(lines[0]))
	added := make([]*Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		added = append(added, NewRow(line))
	}
	last := added[len(added)-1]
	end := gopad.Point{Row: p.Row + len(added), Col: last.Length()}
	last.Join(tail)
	rows := make([]*Row, 0, len(t.rows)+len(added))
	rows = append(rows, t.rows[0:p.Row+1]...)
	rows = append(rows, added...)
	rows = append(rows, t.rows[p.Row+1:]...)
	t.rows = rows
	return end
}

// textRange returns the text between from and to, which must be ordered.
func (t *TextArea) textRange(from, to gopad.Point) string {
	if from.Row == to.Row {
		return string(t.rows[from.Row].Text[from.Col:to.Col])
	}
	var b strings.Builder
	b.WriteString(t.rows[from.Row].TextAfter(from.Col))
	for i := from.Row + 1; i < to.Row; i++ {
		b.WriteString("\n")
		b.WriteString(t.rows[i].String())
	}
	b.WriteString("\n")
	b.WriteString(string(t.rows[to.Row].Text[0:to.Col]))
	return b.String()
}

// deleteRange removes the text between from and to and returns it.
func (t *TextArea) deleteRange(from, to gopad.Point) string {
	text := t.textRange(from, to)
	first := t.rows[from.Row]
	if from.Row == to.Row {
		first.Delete(from.Col, to.Col)
		return text
	}
	first.Delete(from.Col, first.Length())
	first.Join(&Row{Text: t.rows[to.Row].Text[to.Col:]})
	t.rows = append(t.rows[0:from.Row+1], t.rows[to.Row+1:]...)
	return text
}

// Perform performs an operation and saves its inverse for undo.
func (t *TextArea) Perform(op Operation) Operation {
	t.closeInsert()
	t.anchor = nil
	inverse := op.Perform(t)
	if inverse != nil {
		t.undo = append(t.undo, inverse)
	}
	t.redo = nil
	return inverse
}

func (t *TextArea) closeInsert() {
	t.insert = nil
}

// replaceSelection performs the insertion of text in place of the selection.
func (t *TextArea) replaceSelection(text string) {
	if from, to, ok := t.selection(); ok {
		ops := []Operation{&DeleteText{From: from, To: to}}
		if text != "" {
			ops = append(ops, &InsertText{At: from, Text: text})
		}
		t.Perform(&Sequence{Operations: ops})
		return
	}
	if text != "" {
		t.Perform(&InsertText{At: t.cursor, Text: text})
	}
}

// InsertChar inserts a typed character. Consecutive characters typed
// without moving the cursor are undone together; a newline ends the run.
func (t *TextArea) InsertChar(c rune) {
	if t.HasSelection() || c == '\n' {
		t.replaceSelection(string(c))
		return
	}
	if t.insert != nil && t.insert.To == t.cursor {
		t.cursor = t.insertAt(t.cursor, []rune{c})
		t.insert.To = t.cursor
		t.redo = nil
		return
	}
	inverse := t.Perform(&InsertText{At: t.cursor, Text: string(c)})
	t.insert = inverse.(*DeleteText)
}

// InsertText inserts text at the cursor, replacing any selection, as one undoable step.
func (t *TextArea) InsertText(text string) {
	t.replaceSelection(text)
}

// BackspaceChar deletes the selection or the character before the cursor.
func (t *TextArea) BackspaceChar() {
	if t.HasSelection() {
		t.replaceSelection("")
		return
	}
	if t.cursor.Row == 0 && t.cursor.Col == 0 {
		return
	}
	previous := gopad.Point{Row: t.cursor.Row, Col: t.cursor.Col - 1}
	if t.cursor.Col == 0 {
		previous = gopad.Point{Row: t.cursor.Row - 1, Col: t.rows[t.cursor.Row-1].Length()}
	}
	t.Perform(&DeleteText{From: previous, To: t.cursor})
}

// DeleteChar deletes the selection or the character after the cursor.
func (t *TextArea) DeleteChar() {
	if t.HasSelection() {
		t.replaceSelection("")
		return
	}
	if t.cursor == t.end() {
		return
	}
	next := gopad.Point{Row: t.cursor.Row, Col: t.cursor.Col + 1}
	if t.cursor.Col == t.rows[t.cursor.Row].Length() {
		next = gopad.Point{Row: t.cursor.Row + 1, Col: 0}
	}
	t.Perform(&DeleteText{From: t.cursor, To: next})
}

// Undo reverses the last edit. It returns false if there is nothing to undo.
func (t *TextArea) Undo() bool {
	t.closeInsert()
	if len(t.undo) == 0 {
		return false
	}
	last := len(t.undo) - 1
	op := t.undo[last]
	t.undo = t.undo[0:last]
	t.anchor = nil
	if inverse := op.Perform(t); inverse != nil {
		t.redo = append(t.redo, inverse)
	}
	return true
}

// Redo repeats the last undone edit. It returns false if there is nothing to redo.
func (t *TextArea) Redo() bool {
	t.closeInsert()
	if len(t.redo) == 0 {
		return false
	}
	last := len(t.redo) - 1
	op := t.redo[last]
	t.redo = t.redo[0:last]
	t.anchor = nil
	if inverse := op.Perform(t); inverse != nil {
		t.undo = append(t.undo, inverse)
	}
	return true
}

// selection returns the ordered ends of the selection.
func (t *TextArea) selection() (gopad.Point, gopad.Point, bool) {
	if t.anchor == nil || *t.anchor == t.cursor {
		return gopad.Point{}, gopad.Point{}, false
	}
	from, to := order(t.clampPoint(*t.anchor), t.cursor)
	return from, to, true
}

func (t *TextArea) HasSelection() bool {
	_, _, ok := t.selection()
	return ok
}

func (t *TextArea) SelectedText() string {
	from, to, ok := t.selection()
	if !ok {
		return ""
	}
	return t.textRange(from, to)
}

// Select selects the text between anchor and cursor and leaves the cursor at cursor.
func (t *TextArea) Select(anchor, cursor gopad.Point) {
	t.closeInsert()
	a := t.clampPoint(anchor)
	t.anchor = &a
	t.cursor = t.clampPoint(cursor)
}

// SelectAll selects everything from the start to the end of the buffer.
func (t *TextArea) SelectAll() {
	t.Select(gopad.Point{}, t.end())
}

func (t *TextArea) Copy() {
	text := t.SelectedText()
	if text == "" {
		return
	}
	if err := t.clipboard.WriteAll(text); err != nil {
		log.Printf("copy: %+v", err)
	}
}

func (t *TextArea) Cut() {
	if !t.HasSelection() {
		return
	}
	if err := t.clipboard.WriteAll(t.SelectedText()); err != nil {
		log.Printf("cut: %+v", err)
		return
	}
	t.replaceSelection("")
}

func (t *TextArea) Paste() {
	text, err := t.clipboard.ReadAll()
	if err != nil {
		log.Printf("paste: %+v", err)
		return
	}
	if text == "" {
		return
	}
	t.replaceSelection(text)
}

func (t *TextArea) MoveCursor(direction int) {
	t.closeInsert()
	t.anchor = nil
	switch direction {
	case gopad.MoveLeft:
		if t.cursor.Col > 0 {
			t.cursor.Col--
		} else if t.cursor.Row > 0 {
			t.cursor.Row--
			t.cursor.Col = t.rows[t.cursor.Row].Length()
		}
	case gopad.MoveRight:
		if t.cursor.Col < t.rows[t.cursor.Row].Length() {
			t.cursor.Col++
		} else if t.cursor.Row < len(t.rows)-1 {
			t.cursor.Row++
			t.cursor.Col = 0
		}
	case gopad.MoveUp:
		t.moveLines(-1)
	case gopad.MoveDown:
		t.moveLines(1)
	}
}

// moveLines moves the cursor by n display lines, keeping its display column.
func (t *TextArea) moveLines(n int) {
	lines := t.layout()
	current := lineOf(lines, t.cursor)
	x := t.columnOf(lines[current], t.cursor.Col)
	target := current + n
	if target < 0 {
		target = 0
	}
	if target > len(lines)-1 {
		target = len(lines) - 1
	}
	if target == current {
		return
	}
	t.cursor = gopad.Point{Row: lines[target].row, Col: t.colAt(lines, target, x)}
}

func (t *TextArea) MoveToBeginningOfLine() {
	t.closeInsert()
	t.anchor = nil
	t.cursor.Col = 0
}

func (t *TextArea) MoveToEndOfLine() {
	t.closeInsert()
	t.anchor = nil
	t.cursor.Col = t.rows[t.cursor.Row].Length()
}

func (t *TextArea) page() int {
	if t.size.Rows > 1 {
		return t.size.Rows - 1
	}
	return 1
}

func (t *TextArea) PageUp() {
	t.closeInsert()
	t.anchor = nil
	t.moveLines(-t.page())
}

func (t *TextArea) PageDown() {
	t.closeInsert()
	t.anchor = nil
	t.moveLines(t.page())
}

func (t *TextArea) SetSize(size gopad.Size) {
	t.size = size
}

// scroll adjusts the offset so that the cursor line is visible.
func (t *TextArea) scroll(lines []segment) {
	current := lineOf(lines, t.cursor)
	if current < t.offset {
		t.offset = current
	}
	if t.size.Rows > 0 && current >= t.offset+t.size.Rows {
		t.offset = current - t.size.Rows + 1
	}
	if t.offset > len(lines)-1 {
		t.offset = len(lines) - 1
	}
	if t.offset < 0 {
		t.offset = 0
	}
}

// Render draws the visible lines of the buffer into frame.
func (t *TextArea) Render(d gopad.Display, frame gopad.Rect) {
	t.SetSize(frame.Size)
	lines := t.layout()
	t.scroll(lines)
	t.lineCount = len(lines)

	from, to, selected := t.selection()
	isSelected := func(row, col int) bool {
		p := gopad.Point{Row: row, Col: col}
		return selected && !p.Before(from) && p.Before(to)
	}

	current := lineOf(lines, t.cursor)
	for i := 0; i < frame.Size.Rows; i++ {
		n := t.offset + i
		if n >= len(lines) {
			break
		}
		seg := lines[n]
		y := frame.Origin.Row + i
		text := t.rows[seg.row].Text
		x := 0
		for col := seg.start; col < seg.end; col++ {
			c := text[col]
			w := cellWidth(c, x)
			fg, bg := gopad.ColorDefault, gopad.ColorDefault
			if isSelected(seg.row, col) {
				fg, bg = gopad.ColorBlack, gopad.ColorWhite
			}
			if x+w > frame.Size.Cols {
				break
			}
			switch {
			case c == '\t':
				for k := 0; k < w; k++ {
					d.SetCell(frame.Origin.Col+x+k, y, ' ', fg, bg)
				}
			case isPlaceholder(c):
				d.SetCell(frame.Origin.Col+x, y, '?', fg, bg)
			default:
				d.SetCell(frame.Origin.Col+x, y, c, fg, bg)
			}
			x += w
		}
		// a selected line break is shown as one highlighted cell
		lastOfRow := n+1 >= len(lines) || lines[n+1].row != seg.row
		if lastOfRow && isSelected(seg.row, seg.end) && x < frame.Size.Cols {
			d.SetCell(frame.Origin.Col+x, y, ' ', gopad.ColorBlack, gopad.ColorWhite)
		}
		if n == current {
			col := t.columnOf(seg, t.cursor.Col)
			if col > frame.Size.Cols-1 {
				col = frame.Size.Cols - 1
			}
			t.displayCursor = gopad.Point{Row: y, Col: frame.Origin.Col + col}
		}
	}
}

// GetDisplayCursor returns where the cursor was drawn by the last Render.
func (t *TextArea) GetDisplayCursor() gopad.Point {
	return t.displayCursor
}

// GetScroll returns the first visible display line, the number of visible
// lines, and the total number of display lines at the last render.
func (t *TextArea) GetScroll() (int, int, int) {
	return t.offset, t.size.Rows, t.lineCount
}
