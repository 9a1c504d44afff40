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

// Package screen draws the gopad window in a terminal: a menu bar and
// title on the top line, the text area with a scroll bar, a message bar
// on the bottom line, open menus and modal dialogs.
package screen

import (
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	gopad "github.com/timburks/gopad/pkg/types"
)

// A Terminal is a display that can also position the cursor and read events.
type Terminal interface {
	gopad.Display
	Clear()
	SetCursor(col int, row int)
	HideCursor()
	Flush()
	PollEvent() *gopad.Event
	Close()
}

// The Screen draws the state of a window, its text area and its commander.
type Screen struct {
	terminal Terminal
	size     gopad.Size // screen size
	redraw   func()     // draws the last rendered frame, used beneath dialogs
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return NewScreenWithTerminal(termboxTerminal{})
}

func NewScreenWithTerminal(t Terminal) *Screen {
	return &Screen{terminal: t}
}

func (s *Screen) Close() {
	s.terminal.Close()
}

func (s *Screen) GetNextEvent() *gopad.Event {
	return s.terminal.PollEvent()
}

// Render draws a complete frame.
func (s *Screen) Render(w gopad.Window, area gopad.TextArea, c gopad.Commander) {
	s.redraw = func() {
		s.draw(w, area, c)
	}
	s.redraw()
	s.terminal.Flush()
}

func (s *Screen) draw(w gopad.Window, area gopad.TextArea, c gopad.Commander) {
	s.terminal.Clear()
	s.size = s.terminal.GetSize()
	if s.size.Rows < 3 || s.size.Cols < 2 {
		s.terminal.HideCursor()
		return
	}
	frame := gopad.Rect{
		Origin: gopad.Point{Row: 1, Col: 0},
		Size:   gopad.Size{Rows: s.size.Rows - 2, Cols: s.size.Cols - 1},
	}
	area.Render(s.terminal, frame)
	s.RenderScrollBar(area, frame)
	s.RenderMenuBar(w, c)
	s.RenderMessageBar(c)

	switch c.GetMode() {
	case gopad.ModeEdit:
		cursor := area.GetDisplayCursor()
		s.terminal.SetCursor(cursor.Col, cursor.Row)
	case gopad.ModeLisp:
		text := c.GetMessageBarText(s.size.Cols)
		col := runewidth.StringWidth(text)
		if col > s.size.Cols-1 {
			col = s.size.Cols - 1
		}
		s.terminal.SetCursor(col, s.size.Rows-1)
	case gopad.ModeMenu:
		s.RenderMenu(w, c)
		s.terminal.HideCursor()
	default:
		s.terminal.HideCursor()
	}
}

// drawText draws text from col up to limit and returns the column after it.
func (s *Screen) drawText(col int, row int, text string, fg gopad.Color, bg gopad.Color, limit int) int {
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w > limit {
			break
		}
		s.terminal.SetCell(col, row, ch, fg, bg)
		col += w
	}
	return col
}

func (s *Screen) fill(col int, row int, width int, ch rune, fg gopad.Color, bg gopad.Color) {
	for i := 0; i < width; i++ {
		s.terminal.SetCell(col+i, row, ch, fg, bg)
	}
}

// menuColumns returns the column where each menu label starts.
func menuColumns(menus []gopad.Menu) []int {
	columns := make([]int, len(menus))
	col := 1
	for i, m := range menus {
		columns[i] = col
		col += runewidth.StringWidth(m.Label) + 2
	}
	return columns
}

func (s *Screen) RenderMenuBar(w gopad.Window, c gopad.Commander) {
	s.fill(0, 0, s.size.Cols, ' ', gopad.ColorBlack, gopad.ColorWhite)
	menus := w.GetMenuBar()
	columns := menuColumns(menus)
	selected, _ := c.GetMenuSelection()
	end := 0
	for i, m := range menus {
		fg, bg := gopad.ColorBlack, gopad.ColorWhite
		if i == selected {
			fg, bg = gopad.ColorWhite, gopad.ColorBlack
		}
		end = s.drawText(columns[i]-1, 0, " "+m.Label+" ", fg, bg, s.size.Cols)
	}
	// the title is centered in the line when there is room, else it follows the menus
	title := w.GetTitle()
	width := runewidth.StringWidth(title)
	col := (s.size.Cols - width) / 2
	if col < end+2 {
		col = end + 2
	}
	s.drawText(col, 0, title, gopad.ColorBlack, gopad.ColorWhite, s.size.Cols)
}

func (s *Screen) RenderMessageBar(c gopad.Commander) {
	line := c.GetMessageBarText(s.size.Cols)
	s.drawText(0, s.size.Rows-1, line, gopad.ColorDefault, gopad.ColorDefault, s.size.Cols)
}

// RenderScrollBar draws a scroll bar to the right of frame.
func (s *Screen) RenderScrollBar(area gopad.TextArea, frame gopad.Rect) {
	col := frame.Origin.Col + frame.Size.Cols
	height := frame.Size.Rows
	offset, visible, total := area.GetScroll()
	thumbStart, thumbSize := 0, height
	if total > visible && total > 0 {
		thumbSize = height * visible / total
		if thumbSize < 1 {
			thumbSize = 1
		}
		thumbStart = height * offset / total
		if thumbStart+thumbSize > height {
			thumbStart = height - thumbSize
		}
	}
	for i := 0; i < height; i++ {
		ch := '░'
		if i >= thumbStart && i < thumbStart+thumbSize {
			ch = '█'
		}
		s.terminal.SetCell(col, frame.Origin.Row+i, ch, gopad.ColorDefault, gopad.ColorDefault)
	}
}

// RenderMenu draws the open menu below its label in the menu bar.
func (s *Screen) RenderMenu(w gopad.Window, c gopad.Commander) {
	menus := w.GetMenuBar()
	selected, item := c.GetMenuSelection()
	if selected < 0 || selected >= len(menus) {
		return
	}
	menu := menus[selected]
	labelWidth, acceleratorWidth := 0, 0
	for _, i := range menu.Items {
		if lw := runewidth.StringWidth(i.Label); lw > labelWidth {
			labelWidth = lw
		}
		if aw := runewidth.StringWidth(i.Accelerator); aw > acceleratorWidth {
			acceleratorWidth = aw
		}
	}
	inner := labelWidth + acceleratorWidth + 4
	left := menuColumns(menus)[selected] - 1
	if left+inner+2 > s.size.Cols {
		left = s.size.Cols - inner - 2
	}
	if left < 0 {
		left = 0
	}
	fg, bg := gopad.ColorBlack, gopad.ColorWhite
	s.box(left, 1, inner, len(menu.Items), fg, bg)
	for i, entry := range menu.Items {
		row := 2 + i
		if row >= s.size.Rows-1 {
			break
		}
		if entry.Separator {
			s.terminal.SetCell(left, row, '├', fg, bg)
			s.fill(left+1, row, inner, '─', fg, bg)
			s.terminal.SetCell(left+inner+1, row, '┤', fg, bg)
			continue
		}
		ifg, ibg := fg, bg
		if i == item {
			ifg, ibg = gopad.ColorWhite, gopad.ColorBlack
		}
		s.fill(left+1, row, inner, ' ', ifg, ibg)
		s.drawText(left+2, row, entry.Label, ifg, ibg, left+inner+1)
		accelerator := left + inner - runewidth.StringWidth(entry.Accelerator)
		s.drawText(accelerator, row, entry.Accelerator, ifg, ibg, left+inner+1)
	}
}

// box draws a frame with rows lines of inner cells, its top left corner at col, row.
func (s *Screen) box(col int, row int, inner int, rows int, fg gopad.Color, bg gopad.Color) {
	s.terminal.SetCell(col, row, '┌', fg, bg)
	s.fill(col+1, row, inner, '─', fg, bg)
	s.terminal.SetCell(col+inner+1, row, '┐', fg, bg)
	for i := 1; i <= rows; i++ {
		s.terminal.SetCell(col, row+i, '│', fg, bg)
		s.fill(col+1, row+i, inner, ' ', fg, bg)
		s.terminal.SetCell(col+inner+1, row+i, '│', fg, bg)
	}
	s.terminal.SetCell(col, row+rows+1, '└', fg, bg)
	s.fill(col+1, row+rows+1, inner, '─', fg, bg)
	s.terminal.SetCell(col+inner+1, row+rows+1, '┘', fg, bg)
}

// RenderDialog draws a modal dialog over the last frame.
func (s *Screen) RenderDialog(d *gopad.Dialog) {
	if s.redraw != nil {
		s.redraw()
	} else {
		s.terminal.Clear()
		s.size = s.terminal.GetSize()
	}
	s.terminal.HideCursor()

	buttons := ""
	for i, b := range d.Buttons {
		if i > 0 {
			buttons += "  "
		}
		buttons += "[ " + b + " ]"
	}
	lines := make([]string, 0, 4)
	if d.Message != "" {
		lines = append(lines, d.Message)
	}
	if d.Hint != "" {
		lines = append(lines, d.Hint)
	}
	inputRow := -1
	if d.Prompt {
		inputRow = len(lines)
		lines = append(lines, "")
	}
	lines = append(lines, buttons)

	inner := 40
	for _, line := range append(lines, d.Title) {
		if w := runewidth.StringWidth(line) + 4; w > inner {
			inner = w
		}
	}
	if inner > s.size.Cols-2 {
		inner = s.size.Cols - 2
	}
	if inner < 1 {
		return
	}
	left := (s.size.Cols - inner - 2) / 2
	top := (s.size.Rows - len(lines) - 2) / 2
	if top < 0 {
		top = 0
	}
	fg, bg := gopad.ColorBlack, gopad.ColorWhite
	s.box(left, top, inner, len(lines), fg, bg)
	s.drawText(left+2, top, " "+d.Title+" ", fg, bg, left+inner+1)

	for i, line := range lines {
		row := top + 1 + i
		switch {
		case i == inputRow:
			s.renderInput(left+2, row, inner-2, d.Input)
		case i == len(lines)-1:
			s.renderButtons(left, row, inner, d)
		default:
			s.drawText(left+2, row, line, fg, bg, left+inner)
		}
	}
	s.terminal.Flush()
}

// renderInput draws the end of the input that fits in width cells and puts the cursor after it.
func (s *Screen) renderInput(col int, row int, width int, input string) {
	s.fill(col, row, width, ' ', gopad.ColorWhite, gopad.ColorBlack)
	runes := []rune(input)
	for len(runes) > 0 && runewidth.StringWidth(string(runes))+1 > width {
		runes = runes[1:]
	}
	end := s.drawText(col, row, string(runes), gopad.ColorWhite, gopad.ColorBlack, col+width)
	s.terminal.SetCursor(end, row)
}

func (s *Screen) renderButtons(left int, row int, inner int, d *gopad.Dialog) {
	width := 0
	for i, b := range d.Buttons {
		if i > 0 {
			width += 2
		}
		width += runewidth.StringWidth(b) + 4
	}
	col := left + 1 + (inner-width)/2
	if col < left+1 {
		col = left + 1
	}
	for i, b := range d.Buttons {
		if i > 0 {
			col += 2
		}
		fg, bg := gopad.ColorBlack, gopad.ColorWhite
		if i == d.Selected {
			fg, bg = gopad.ColorWhite, gopad.ColorBlack
		}
		col = s.drawText(col, row, "[ "+b+" ]", fg, bg, left+inner+1)
	}
}
