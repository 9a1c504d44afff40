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
	"testing"

	gopad "github.com/timburks/gopad/pkg/types"
)

var textFilters = []gopad.FileFilter{
	{Description: "Text Files", Extensions: []string{"txt"}},
	{Description: "All Files", Extensions: []string{"*"}},
}

// script plays back events and records the dialogs it was asked to draw.
type script struct {
	events  []*gopad.Event
	dialogs []gopad.Dialog
}

func (s *script) RenderDialog(d *gopad.Dialog) {
	s.dialogs = append(s.dialogs, *d)
}

func (s *script) GetNextEvent() *gopad.Event {
	if len(s.events) == 0 {
		return &gopad.Event{Type: gopad.EventError}
	}
	event := s.events[0]
	s.events = s.events[1:]
	return event
}

func key(k gopad.Key) *gopad.Event {
	return &gopad.Event{Type: gopad.EventKey, Key: k}
}

func chars(text string) []*gopad.Event {
	events := make([]*gopad.Event, 0, len(text))
	for _, c := range text {
		events = append(events, &gopad.Event{Type: gopad.EventKey, Ch: c})
	}
	return events
}

func play(events ...[]*gopad.Event) *script {
	s := &script{}
	for _, e := range events {
		s.events = append(s.events, e...)
	}
	return s
}

func TestConfirm(t *testing.T) {
	check := func(name string, expected bool, events ...*gopad.Event) {
		s := play(events)
		if answer := NewTerminal(s).Confirm("Exit", "Do you really want to exit the program?"); answer != expected {
			t.Errorf("%s: expected %t, got %t", name, expected, answer)
		}
		if len(s.dialogs) == 0 || s.dialogs[0].Title != "Exit" {
			t.Errorf("%s: dialog was not drawn: %+v", name, s.dialogs)
		}
	}
	check("enter", true, key(gopad.KeyEnter))
	check("no button", false, key(gopad.KeyArrowRight), key(gopad.KeyEnter))
	check("escape", false, key(gopad.KeyEsc))
	check("y", true, &gopad.Event{Type: gopad.EventKey, Ch: 'y'})
	check("n", false, &gopad.Event{Type: gopad.EventKey, Ch: 'n'})
	check("resize then enter", true, &gopad.Event{Type: gopad.EventResize}, key(gopad.KeyEnter))
	check("terminal closed", false)
}

func TestOpenFileCancel(t *testing.T) {
	s := play(chars("notes.txt"), []*gopad.Event{key(gopad.KeyEsc)})
	path, ok, err := NewTerminal(s).OpenFile("Open", textFilters)
	if ok || path != "" || err != nil {
		t.Errorf("Cancelled open returned %q %t %+v", path, ok, err)
	}
}

func TestOpenFileIgnoresEmptyInput(t *testing.T) {
	s := play([]*gopad.Event{key(gopad.KeyEnter)}, chars("a b"), []*gopad.Event{key(gopad.KeyBackspace2), key(gopad.KeyEnter)})
	path, ok, _ := NewTerminal(s).OpenFile("Open", textFilters)
	if !ok || path != "a " {
		t.Errorf("Unexpected open result: %q %t", path, ok)
	}
}

func TestOpenFileCompletion(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "alpha.txt"), []byte("a"), 0644)
	os.WriteFile(filepath.Join(dir, "alpha.go"), []byte("b"), 0644)
	s := play(chars(filepath.Join(dir, "al")), []*gopad.Event{key(gopad.KeyTab), key(gopad.KeyEnter)})
	path, ok, _ := NewTerminal(s).OpenFile("Open", textFilters)
	if !ok || path != filepath.Join(dir, "alpha.txt") {
		t.Errorf("Unexpected completion: %q %t", path, ok)
	}
}

func TestSaveFileAddsDefaultExtension(t *testing.T) {
	dir := t.TempDir()
	s := play(chars(filepath.Join(dir, "notes")), []*gopad.Event{key(gopad.KeyEnter)})
	path, ok, err := NewTerminal(s).SaveFile("Save", textFilters, ".txt")
	if !ok || err != nil || path != filepath.Join(dir, "notes.txt") {
		t.Errorf("Unexpected save result: %q %t %+v", path, ok, err)
	}
}

func TestSaveFileAsksBeforeReplacing(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "a.txt")
	os.WriteFile(existing, []byte("keep"), 0644)

	s := play(chars(existing), []*gopad.Event{key(gopad.KeyEnter)}, chars("n"), []*gopad.Event{key(gopad.KeyEsc)})
	if path, ok, _ := NewTerminal(s).SaveFile("Save", textFilters, ".txt"); ok {
		t.Errorf("Declined replacement returned %q", path)
	}

	s = play(chars(existing), []*gopad.Event{key(gopad.KeyEnter)}, chars("y"))
	if path, ok, _ := NewTerminal(s).SaveFile("Save", textFilters, ".txt"); !ok || path != existing {
		t.Errorf("Accepted replacement returned %q %t", path, ok)
	}
}

func TestWithDefaultExtension(t *testing.T) {
	for _, c := range [][3]string{
		{"notes", ".txt", "notes.txt"},
		{"notes", "txt", "notes.txt"},
		{"notes.md", ".txt", "notes.md"},
		{"/tmp/a.txt", ".txt", "/tmp/a.txt"},
		{"notes", "", "notes"},
	} {
		if got := WithDefaultExtension(c[0], c[1]); got != c[2] {
			t.Errorf("WithDefaultExtension(%q, %q) = %q", c[0], c[1], got)
		}
	}
}

func TestComplete(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644)
	os.WriteFile(filepath.Join(dir, "c.go"), nil, 0644)
	os.WriteFile(filepath.Join(dir, ".hidden.txt"), nil, 0644)
	os.Mkdir(filepath.Join(dir, "sub"), 0755)

	matches := Complete(dir+string(filepath.Separator), &textFilters[0])
	expected := []string{filepath.Join(dir, "b.txt"), filepath.Join(dir, "sub") + string(filepath.Separator)}
	if len(matches) != len(expected) {
		t.Fatalf("Unexpected completions: %+v", matches)
	}
	for i := range expected {
		if matches[i] != expected[i] {
			t.Errorf("Unexpected completion %d: %q", i, matches[i])
		}
	}
	if all := Complete(dir+string(filepath.Separator), nil); len(all) != 3 {
		t.Errorf("Unexpected unfiltered completions: %+v", all)
	}
}

func TestDescribe(t *testing.T) {
	if d := Describe(textFilters[0]); d != "Text Files (*.txt)" {
		t.Errorf("Unexpected description: %q", d)
	}
	if d := Describe(textFilters[1]); d != "All Files (*)" {
		t.Errorf("Unexpected description: %q", d)
	}
}
