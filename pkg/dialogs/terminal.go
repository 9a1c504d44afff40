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

package dialogs

import (
	"os"
	"path/filepath"
	"strings"

	gopad "github.com/timburks/gopad/pkg/types"
)

// A Modal draws dialogs and supplies the events that answer them.
type Modal interface {
	RenderDialog(d *gopad.Dialog)
	GetNextEvent() *gopad.Event
}

// Terminal dialogs run a nested event loop until they are answered.
type Terminal struct {
	modal Modal
}

func NewTerminal(m Modal) *Terminal {
	return &Terminal{modal: m}
}

func (t *Terminal) Confirm(title string, message string) bool {
	d := &gopad.Dialog{Title: title, Message: message, Buttons: []string{"Yes", "No"}}
	for {
		t.modal.RenderDialog(d)
		event := t.modal.GetNextEvent()
		switch event.Type {
		case gopad.EventError:
			return false
		case gopad.EventKey:
		default:
			continue
		}
		switch event.Key {
		case gopad.KeyArrowLeft, gopad.KeyArrowRight, gopad.KeyTab:
			d.Selected = 1 - d.Selected
		case gopad.KeyEnter:
			return d.Selected == 0
		case gopad.KeyEsc:
			return false
		}
		switch event.Ch {
		case 'y', 'Y':
			return true
		case 'n', 'N':
			return false
		}
	}
}

func (t *Terminal) OpenFile(title string, filters []gopad.FileFilter) (string, bool, error) {
	path, ok := t.choose(title, "", filters)
	return path, ok, nil
}

func (t *Terminal) SaveFile(title string, filters []gopad.FileFilter, defaultExtension string) (string, bool, error) {
	for {
		path, ok := t.choose(title, defaultExtension, filters)
		if !ok {
			return "", false, nil
		}
		path = WithDefaultExtension(path, defaultExtension)
		if _, err := os.Stat(path); err == nil {
			if !t.Confirm(title, filepath.Base(path)+" already exists. Do you want to replace it?") {
				continue
			}
		}
		return path, true, nil
	}
}

// choose prompts for a path. Tab completes the path from the file system,
// Ctrl-T switches between filters.
func (t *Terminal) choose(title string, defaultExtension string, filters []gopad.FileFilter) (string, bool) {
	d := &gopad.Dialog{Title: title, Prompt: true, Buttons: []string{"OK", "Cancel"}}
	if defaultExtension != "" {
		d.Message = "Default extension: " + defaultExtension
	}
	filter := 0
	var completions []string
	completion := -1
	for {
		d.Hint = "Tab: complete"
		if len(filters) > 0 {
			d.Hint = Describe(filters[filter]) + "  Ctrl-T: file type  " + d.Hint
		}
		t.modal.RenderDialog(d)
		event := t.modal.GetNextEvent()
		if event.Type == gopad.EventError {
			return "", false
		}
		if event.Type != gopad.EventKey {
			continue
		}
		if event.Key != gopad.KeyTab {
			completions = nil
			completion = -1
		}
		switch event.Key {
		case gopad.KeyEsc:
			return "", false
		case gopad.KeyEnter:
			if strings.TrimSpace(d.Input) != "" {
				return d.Input, true
			}
		case gopad.KeyBackspace2:
			if runes := []rune(d.Input); len(runes) > 0 {
				d.Input = string(runes[0 : len(runes)-1])
			}
		case gopad.KeySpace:
			d.Input += " "
		case gopad.KeyCtrlT:
			if len(filters) > 0 {
				filter = (filter + 1) % len(filters)
			}
		case gopad.KeyTab:
			if completions == nil {
				var f *gopad.FileFilter
				if len(filters) > 0 {
					f = &filters[filter]
				}
				completions = Complete(d.Input, f)
			}
			if len(completions) > 0 {
				completion = (completion + 1) % len(completions)
				d.Input = completions[completion]
			}
		}
		if event.Key == 0 && event.Ch != 0 {
			d.Input += string(event.Ch)
		}
	}
}
