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

package types

// Commander modes
const (
	ModeEdit = 0
	ModeMenu = 1
	ModeLisp = 2
	ModeQuit = 9999
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventMouse  = 2
	EventError  = 3
)

type Point struct {
	Row int
	Col int
}

// Before reports whether p precedes other in the buffer.
func (p Point) Before(other Point) bool {
	return p.Row < other.Row || (p.Row == other.Row && p.Col < other.Col)
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

// Color values match the termbox attributes of the same name.
type Color int

const (
	ColorDefault Color = 0
	ColorBlack   Color = 1
	ColorWhite   Color = 8
)

type Key int

const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlK
	KeyCtrlL
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
	KeyDelete
	KeyEnd
	KeyEnter
	KeyEsc
	KeyF10
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// A Display is a grid of character cells.
type Display interface {
	SetCell(col int, row int, c rune, fg Color, bg Color)
	GetSize() Size
}

// The TextArea is the editable, scrollable, word-wrapping text widget.
type TextArea interface {
	Text() string
	SetText(text string)

	GetCursor() Point
	SetCursor(cursor Point)
	MoveCursor(direction int)
	MoveToBeginningOfLine()
	MoveToEndOfLine()
	PageUp()
	PageDown()

	InsertChar(c rune)
	InsertText(text string)
	BackspaceChar()
	DeleteChar()

	Undo() bool
	Redo() bool

	Cut()
	Copy()
	Paste()
	SelectAll()
	HasSelection() bool
	SelectedText() string

	SetSize(size Size)
	Render(d Display, frame Rect)
	GetDisplayCursor() Point
	GetScroll() (offset int, visible int, total int)
}

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// A FileFilter restricts a file chooser to names with the given extensions.
// An extension of "*" matches every file.
type FileFilter struct {
	Description string
	Extensions  []string
}

// Dialogs are modal: each call returns only after the user answers.
// File choosers return ok == false when the user cancels.
type Dialogs interface {
	Confirm(title string, message string) bool
	OpenFile(title string, filters []FileFilter) (path string, ok bool, err error)
	SaveFile(title string, filters []FileFilter, defaultExtension string) (path string, ok bool, err error)
}

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type MenuItem struct {
	Label       string
	Action      string // lisp expression evaluated when the item is chosen
	Accelerator string
	Separator   bool
}

type Menu struct {
	Label string
	Items []MenuItem
}

// A Dialog describes a modal dialog as it is drawn.
type Dialog struct {
	Title    string
	Message  string
	Hint     string
	Input    string
	Prompt   bool // true if the dialog has a text input line
	Buttons  []string
	Selected int
}

// A Window is what a screen draws around the text area.
type Window interface {
	GetTitle() string
	GetMenuBar() []Menu
}

type Commander interface {
	GetMode() int
	GetMenuSelection() (menu int, item int)
	GetMessageBarText(length int) string
}
