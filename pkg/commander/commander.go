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

package commander

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/timburks/gopad/pkg/shell"
	gopad "github.com/timburks/gopad/pkg/types"
)

// The Commander converts user input into commands to the shell and text area.
type Commander struct {
	shell    *shell.Shell
	area     gopad.TextArea
	mode     int       // commander mode
	debug    bool      // debug mode displays information about events (key codes, etc)
	lispText string    // lisp command as it is being typed
	message  string    // status message
	menu     int       // open menu, in menu mode
	item     int       // selected item of the open menu
}

func NewCommander(s *shell.Shell) *Commander {
	c := &Commander{shell: s, area: s.GetTextArea(), mode: gopad.ModeEdit}
	bindLisp(c)
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) SetMessage(message string) {
	c.message = message
}

func (c *Commander) IsRunning() bool {
	return c.mode != gopad.ModeQuit && c.shell.IsRunning()
}

func (c *Commander) ProcessEvent(event *gopad.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case gopad.EventKey:
		return c.processKey(event)
	case gopad.EventError:
		return errors.New("terminal input failed")
	default:
		return nil
	}
}

func (c *Commander) processKey(event *gopad.Event) error {
	switch c.mode {
	case gopad.ModeEdit:
		return c.processKeyEditMode(event)
	case gopad.ModeMenu:
		return c.processKeyMenuMode(event)
	case gopad.ModeLisp:
		return c.processKeyLispMode(event)
	}
	return nil
}

// perform evaluates the action of a menu item or accelerator.
func (c *Commander) perform(action string) {
	if _, err := c.eval(action); err != nil {
		c.message = err.Error()
	}
}

func (c *Commander) processKeyEditMode(event *gopad.Event) error {
	key := event.Key
	ch := event.Ch

	if !c.debug {
		c.message = ""
	}

	// accelerators are handled here and nowhere else
	if action, ok := shell.KeyBindings[key]; ok {
		c.perform(action)
		return nil
	}
	if key != 0 {
		switch key {
		case gopad.KeyEsc, gopad.KeyF10:
			c.perform("(menu)")
		case gopad.KeyCtrlE:
			c.perform("(lisp-mode)")
		case gopad.KeyArrowUp:
			c.perform("(up)")
		case gopad.KeyArrowDown:
			c.perform("(down)")
		case gopad.KeyArrowLeft:
			c.perform("(left)")
		case gopad.KeyArrowRight:
			c.perform("(right)")
		case gopad.KeyHome:
			c.perform("(beginning-of-line)")
		case gopad.KeyEnd:
			c.perform("(end-of-line)")
		case gopad.KeyPgup:
			c.perform("(page-up)")
		case gopad.KeyPgdn:
			c.perform("(page-down)")
		case gopad.KeyEnter:
			c.area.InsertChar('\n')
		case gopad.KeyTab:
			c.area.InsertChar('\t')
		case gopad.KeySpace:
			c.area.InsertChar(' ')
		case gopad.KeyBackspace2:
			c.area.BackspaceChar()
		case gopad.KeyDelete:
			c.area.DeleteChar()
		}
		return nil
	}
	if ch != 0 {
		c.area.InsertChar(ch)
	}
	return nil
}

// OpenMenu shows the items of a menu of the menu bar.
func (c *Commander) OpenMenu(menu int) {
	menus := c.shell.GetMenuBar()
	if len(menus) == 0 {
		return
	}
	c.mode = gopad.ModeMenu
	c.menu = (menu%len(menus) + len(menus)) % len(menus)
	c.item = -1
	c.item = c.nextItem(1)
}

// nextItem returns the next selectable item in a direction, skipping separators.
func (c *Commander) nextItem(direction int) int {
	items := c.shell.GetMenuBar()[c.menu].Items
	if len(items) == 0 {
		return 0
	}
	i := c.item
	for range items {
		i = (i + direction + len(items)) % len(items)
		if !items[i].Separator {
			return i
		}
	}
	return c.item
}

func (c *Commander) choose(item gopad.MenuItem) {
	c.mode = gopad.ModeEdit
	c.perform(item.Action)
}

func (c *Commander) processKeyMenuMode(event *gopad.Event) error {
	key := event.Key
	ch := event.Ch
	menus := c.shell.GetMenuBar()
	items := menus[c.menu].Items

	if action, ok := shell.KeyBindings[key]; ok {
		c.mode = gopad.ModeEdit
		c.perform(action)
		return nil
	}
	if key != 0 {
		switch key {
		case gopad.KeyEsc, gopad.KeyF10:
			c.mode = gopad.ModeEdit
		case gopad.KeyArrowLeft:
			c.OpenMenu(c.menu - 1)
		case gopad.KeyArrowRight, gopad.KeyTab:
			c.OpenMenu(c.menu + 1)
		case gopad.KeyArrowUp:
			c.item = c.nextItem(-1)
		case gopad.KeyArrowDown:
			c.item = c.nextItem(1)
		case gopad.KeyEnter, gopad.KeySpace:
			if c.item >= 0 && c.item < len(items) && !items[c.item].Separator {
				c.choose(items[c.item])
			}
		}
		return nil
	}
	if ch != 0 {
		// the first letter of an item chooses it; of a menu, opens it
		for _, item := range items {
			if !item.Separator && sameLetter(item.Label, ch) {
				c.choose(item)
				return nil
			}
		}
		for i, m := range menus {
			if sameLetter(m.Label, ch) {
				c.OpenMenu(i)
				return nil
			}
		}
	}
	return nil
}

func sameLetter(label string, ch rune) bool {
	first, size := utf8.DecodeRuneInString(label)
	return size > 0 && unicode.ToLower(first) == unicode.ToLower(ch)
}

func (c *Commander) processKeyLispMode(event *gopad.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gopad.KeyEsc:
			c.mode = gopad.ModeEdit
			c.lispText = ""
		case gopad.KeyEnter:
			text := c.lispText
			c.lispText = ""
			c.mode = gopad.ModeEdit
			result, err := c.eval(text)
			if err != nil {
				c.message = err.Error()
			} else {
				c.message = result
			}
		case gopad.KeyBackspace2:
			if runes := []rune(c.lispText); len(runes) > 0 {
				c.lispText = string(runes[0 : len(runes)-1])
			}
		case gopad.KeySpace:
			c.lispText += " "
		}
		return nil
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

// GetMenuSelection returns the open menu and its selected item, or -1, -1.
func (c *Commander) GetMenuSelection() (int, int) {
	if c.mode != gopad.ModeMenu {
		return -1, -1
	}
	return c.menu, c.item
}

func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case gopad.ModeLisp:
		line = "eval: " + c.lispText
	case gopad.ModeMenu:
		line = "Left/Right: menus  Up/Down: items  Enter: choose  Esc: close"
	default:
		line = c.message
	}
	if runes := []rune(line); len(runes) > length {
		line = string(runes[0:length])
	}
	return line
}
