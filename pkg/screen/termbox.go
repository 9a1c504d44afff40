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
	"github.com/nsf/termbox-go"

	gopad "github.com/timburks/gopad/pkg/types"
)

// termboxTerminal draws with termbox and reads its events.
type termboxTerminal struct{}

func (termboxTerminal) SetCell(col int, row int, c rune, fg gopad.Color, bg gopad.Color) {
	termbox.SetCell(col, row, c, termbox.Attribute(fg), termbox.Attribute(bg))
}

func (termboxTerminal) GetSize() gopad.Size {
	cols, rows := termbox.Size()
	return gopad.Size{Rows: rows, Cols: cols}
}

func (termboxTerminal) Clear() {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (termboxTerminal) SetCursor(col int, row int) {
	termbox.SetCursor(col, row)
}

func (termboxTerminal) HideCursor() {
	termbox.HideCursor()
}

func (termboxTerminal) Flush() {
	termbox.Flush()
}

func (termboxTerminal) PollEvent() *gopad.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventKey:
		return &gopad.Event{Type: gopad.EventKey, Key: key(event.Key), Ch: event.Ch}
	case termbox.EventResize:
		termbox.Flush()
		return &gopad.Event{Type: gopad.EventResize}
	case termbox.EventError:
		return &gopad.Event{Type: gopad.EventError}
	default:
		return &gopad.Event{Type: gopad.EventMouse}
	}
}

func (termboxTerminal) Close() {
	termbox.Close()
}

func key(k termbox.Key) gopad.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gopad.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gopad.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gopad.KeyArrowRight
	case termbox.KeyArrowUp:
		return gopad.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gopad.KeyBackspace2
	case termbox.KeyCtrlA:
		return gopad.KeyCtrlA
	case termbox.KeyCtrlB:
		return gopad.KeyCtrlB
	case termbox.KeyCtrlC:
		return gopad.KeyCtrlC
	case termbox.KeyCtrlD:
		return gopad.KeyCtrlD
	case termbox.KeyCtrlE:
		return gopad.KeyCtrlE
	case termbox.KeyCtrlF:
		return gopad.KeyCtrlF
	case termbox.KeyCtrlG:
		return gopad.KeyCtrlG
	case termbox.KeyCtrlK:
		return gopad.KeyCtrlK
	case termbox.KeyCtrlL:
		return gopad.KeyCtrlL
	case termbox.KeyCtrlN:
		return gopad.KeyCtrlN
	case termbox.KeyCtrlO:
		return gopad.KeyCtrlO
	case termbox.KeyCtrlP:
		return gopad.KeyCtrlP
	case termbox.KeyCtrlQ:
		return gopad.KeyCtrlQ
	case termbox.KeyCtrlR:
		return gopad.KeyCtrlR
	case termbox.KeyCtrlS:
		return gopad.KeyCtrlS
	case termbox.KeyCtrlT:
		return gopad.KeyCtrlT
	case termbox.KeyCtrlU:
		return gopad.KeyCtrlU
	case termbox.KeyCtrlV:
		return gopad.KeyCtrlV
	case termbox.KeyCtrlW:
		return gopad.KeyCtrlW
	case termbox.KeyCtrlX:
		return gopad.KeyCtrlX
	case termbox.KeyCtrlY:
		return gopad.KeyCtrlY
	case termbox.KeyCtrlZ:
		return gopad.KeyCtrlZ
	case termbox.KeyDelete:
		return gopad.KeyDelete
	case termbox.KeyEnd:
		return gopad.KeyEnd
	case termbox.KeyEnter:
		return gopad.KeyEnter
	case termbox.KeyEsc:
		return gopad.KeyEsc
	case termbox.KeyF10:
		return gopad.KeyF10
	case termbox.KeyHome:
		return gopad.KeyHome
	case termbox.KeyPgdn:
		return gopad.KeyPgdn
	case termbox.KeyPgup:
		return gopad.KeyPgup
	case termbox.KeySpace:
		return gopad.KeySpace
	case termbox.KeyTab:
		return gopad.KeyTab
	default:
		return gopad.KeyUnsupported
	}
}
