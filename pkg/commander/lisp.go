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
	"log"
	"sync"

	"github.com/steelseries/golisp"

	gopad "github.com/timburks/gopad/pkg/types"
)

// Primitives are defined once in the global lisp environment and act on
// the most recently created commander.
var (
	active  *Commander
	defined sync.Once
)

func bindLisp(c *Commander) {
	active = c
	defined.Do(definePrimitives)
}

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

// action wraps a command that takes no arguments and returns nothing.
func action(f func(c *Commander) error) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return nil, f(active)
	}
}

func move(direction int) primitive {
	return action(func(c *Commander) error {
		c.area.MoveCursor(direction)
		return nil
	})
}

func definePrimitives() {
	// File menu
	golisp.MakePrimitiveFunction("open", "0", action(func(c *Commander) error {
		return c.shell.Open()
	}))
	golisp.MakePrimitiveFunction("save", "0", action(func(c *Commander) error {
		return c.shell.Save()
	}))
	golisp.MakePrimitiveFunction("exit", "0", ExitImpl)

	// Edit menu
	golisp.MakePrimitiveFunction("undo", "0", UndoImpl)
	golisp.MakePrimitiveFunction("redo", "0", RedoImpl)
	golisp.MakePrimitiveFunction("cut", "0", action(func(c *Commander) error {
		c.shell.Cut()
		return nil
	}))
	golisp.MakePrimitiveFunction("copy", "0", action(func(c *Commander) error {
		c.shell.Copy()
		return nil
	}))
	golisp.MakePrimitiveFunction("paste", "0", action(func(c *Commander) error {
		c.shell.Paste()
		return nil
	}))
	golisp.MakePrimitiveFunction("select-all", "0", SelectAllImpl)

	// cursor movement
	golisp.MakePrimitiveFunction("up", "0", move(gopad.MoveUp))
	golisp.MakePrimitiveFunction("down", "0", move(gopad.MoveDown))
	golisp.MakePrimitiveFunction("left", "0", move(gopad.MoveLeft))
	golisp.MakePrimitiveFunction("right", "0", move(gopad.MoveRight))
	golisp.MakePrimitiveFunction("beginning-of-line", "0", action(func(c *Commander) error {
		c.area.MoveToBeginningOfLine()
		return nil
	}))
	golisp.MakePrimitiveFunction("end-of-line", "0", action(func(c *Commander) error {
		c.area.MoveToEndOfLine()
		return nil
	}))
	golisp.MakePrimitiveFunction("page-up", "0", action(func(c *Commander) error {
		c.area.PageUp()
		return nil
	}))
	golisp.MakePrimitiveFunction("page-down", "0", action(func(c *Commander) error {
		c.area.PageDown()
		return nil
	}))

	// modes
	golisp.MakePrimitiveFunction("menu", "0", action(func(c *Commander) error {
		c.OpenMenu(0)
		return nil
	}))
	golisp.MakePrimitiveFunction("lisp-mode", "0", action(func(c *Commander) error {
		c.mode = gopad.ModeLisp
		c.lispText = ""
		return nil
	}))

	golisp.MakePrimitiveFunction("debug", "1", DebugImpl)

	// buffer access
	golisp.MakePrimitiveFunction("insert", "1", InsertImpl)
	golisp.MakePrimitiveFunction("buffer-text", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.StringWithValue(active.area.Text()), nil
	})
	golisp.MakePrimitiveFunction("selected-text", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.StringWithValue(active.area.SelectedText()), nil
	})
	golisp.MakePrimitiveFunction("file-name", "0", func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		return golisp.StringWithValue(active.shell.GetFileName()), nil
	})
}

func ExitImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	closed := active.shell.Exit()
	if closed {
		active.mode = gopad.ModeQuit
	}
	return golisp.BooleanWithValue(closed), nil
}

// UndoImpl returns false when there is nothing to undo.
func UndoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.BooleanWithValue(active.shell.Undo()), nil
}

func RedoImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.BooleanWithValue(active.shell.Redo()), nil
}

func SelectAllImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.BooleanWithValue(active.shell.SelectAll()), nil
}

// DebugImpl turns event display in the message bar "on" or "off".
func DebugImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New(`debug requires "on" or "off"`)
	}
	switch golisp.StringValue(val) {
	case "on":
		active.debug = true
	case "off":
		active.debug = false
		active.message = ""
	default:
		return nil, errors.New(`debug requires "on" or "off"`)
	}
	return golisp.BooleanWithValue(active.debug), nil
}

func InsertImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("insert requires a string argument")
	}
	active.area.InsertText(golisp.StringValue(val))
	return nil, nil
}

// eval parses and evaluates a lisp expression and returns its printed value.
func (c *Commander) eval(command string) (string, error) {
	active = c
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "", err
	}
	return golisp.String(value), nil
}
