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

// Package shell implements the gopad window: it owns the current file
// path and window title, and carries out the File and Edit menu actions
// by calling the text area, the dialogs and the file system.
package shell

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"

	gopad "github.com/timburks/gopad/pkg/types"
)

const (
	AppName          = "gopad"
	DefaultExtension = ".txt"
	ExitTitle        = "Exit"
	ExitMessage      = "Do you really want to exit the program?"
)

var ErrInvalidUTF8 = errors.New("file is not valid UTF-8 text")

// FileFilters are offered by the open and save choosers.
var FileFilters = []gopad.FileFilter{
	{Description: "Text Files", Extensions: []string{"txt"}},
	{Description: "All Files", Extensions: []string{"*"}},
}

// The Shell is the application context shared by all menu and key handlers.
type Shell struct {
	area     gopad.TextArea
	dialogs  gopad.Dialogs
	files    gopad.FileSystem
	fileName string // current file path, empty until a file is opened or saved
	title    string
	running  bool
	menuBar  []gopad.Menu
}

func NewShell(area gopad.TextArea, dialogs gopad.Dialogs, files gopad.FileSystem) *Shell {
	s := &Shell{
		area:    area,
		dialogs: dialogs,
		files:   files,
		running: true,
		menuBar: DefaultMenuBar(),
	}
	s.updateTitle()
	return s
}

func (s *Shell) updateTitle() {
	if s.fileName == "" {
		s.title = AppName
	} else {
		s.title = AppName + " - " + s.fileName
	}
}

func (s *Shell) GetTitle() string {
	return s.title
}

func (s *Shell) GetFileName() string {
	return s.fileName
}

// SetFileName names the file that Save writes without reading it.
func (s *Shell) SetFileName(path string) {
	s.fileName = path
	s.updateTitle()
}

func (s *Shell) GetMenuBar() []gopad.Menu {
	return s.menuBar
}

func (s *Shell) GetTextArea() gopad.TextArea {
	return s.area
}

func (s *Shell) IsRunning() bool {
	return s.running
}

// Open asks for a file and replaces the buffer with its contents.
// Cancelling the chooser does nothing.
func (s *Shell) Open() error {
	path, ok, err := s.dialogs.OpenFile("Open", FileFilters)
	if err != nil {
		return fmt.Errorf("open dialog: %w", err)
	}
	if !ok {
		return nil
	}
	return s.ReadFile(path)
}

// ReadFile replaces the buffer with the contents of the file at path.
// On failure the buffer and the current file are left as they were.
func (s *Shell) ReadFile(path string) error {
	b, err := s.files.ReadFile(path)
	if err != nil {
		return fmt.Errorf("can't open %s: %w", path, err)
	}
	if !utf8.Valid(b) {
		return fmt.Errorf("can't open %s: %w", path, ErrInvalidUTF8)
	}
	s.area.SetText(string(b))
	s.fileName = path
	s.updateTitle()
	return nil
}

// OpenArgument reads a file named on the command line. A file that
// does not exist yet becomes the current file, so the first save
// writes it without asking for a name.
func (s *Shell) OpenArgument(path string) error {
	err := s.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.SetFileName(path)
		return nil
	}
	return err
}

// Save writes the buffer to the current file, asking for a file
// first if there is none. Cancelling the chooser does nothing.
func (s *Shell) Save() error {
	path := s.fileName
	if path == "" {
		var ok bool
		var err error
		path, ok, err = s.dialogs.SaveFile("Save", FileFilters, DefaultExtension)
		if err != nil {
			return fmt.Errorf("save dialog: %w", err)
		}
		if !ok {
			return nil
		}
	}
	return s.WriteFile(path)
}

// WriteFile writes the buffer verbatim to path and makes it the current file.
// On failure the current file is left as it was.
func (s *Shell) WriteFile(path string) error {
	if err := s.files.WriteFile(path, []byte(s.area.Text())); err != nil {
		return fmt.Errorf("can't save %s: %w", path, err)
	}
	s.fileName = path
	s.updateTitle()
	return nil
}

// Exit closes the window if the user confirms.
// It returns true if the window was closed.
func (s *Shell) Exit() bool {
	if s.dialogs.Confirm(ExitTitle, ExitMessage) {
		s.running = false
	}
	return !s.running
}

// Undo returns false when there is nothing to undo; that is not an error.
func (s *Shell) Undo() bool {
	return s.area.Undo()
}

func (s *Shell) Redo() bool {
	return s.area.Redo()
}

func (s *Shell) Cut() {
	s.area.Cut()
}

func (s *Shell) Copy() {
	s.area.Copy()
}

func (s *Shell) Paste() {
	s.area.Paste()
}

// SelectAll selects the whole buffer. It always reports the key that
// triggered it as handled, so no other binding for that key runs.
func (s *Shell) SelectAll() bool {
	s.area.SelectAll()
	return true
}
