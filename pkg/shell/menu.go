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

package shell

import (
	gopad "github.com/timburks/gopad/pkg/types"
)

// DefaultMenuBar returns the File and Edit menus. Each item's action is a
// lisp expression that the commander evaluates when the item is chosen.
func DefaultMenuBar() []gopad.Menu {
	return []gopad.Menu{
		{
			Label: "File",
			Items: []gopad.MenuItem{
				{Label: "Open", Action: "(open)", Accelerator: "Ctrl+O"},
				{Label: "Save", Action: "(save)", Accelerator: "Ctrl+S"},
				{Separator: true},
				{Label: "Exit", Action: "(exit)", Accelerator: "Ctrl+Q"},
			},
		},
		{
			Label: "Edit",
			Items: []gopad.MenuItem{
				{Label: "Undo", Action: "(undo)", Accelerator: "Ctrl+Z"},
				{Label: "Redo", Action: "(redo)", Accelerator: "Ctrl+Y"},
				{Separator: true},
				{Label: "Cut", Action: "(cut)", Accelerator: "Ctrl+X"},
				{Label: "Copy", Action: "(copy)", Accelerator: "Ctrl+C"},
				{Label: "Paste", Action: "(paste)", Accelerator: "Ctrl+V"},
				{Separator: true},
				{Label: "Select All", Action: "(select-all)", Accelerator: "Ctrl+A"},
			},
		},
	}
}

// KeyBindings maps accelerator keys to the actions of their menu items.
var KeyBindings = map[gopad.Key]string{
	gopad.KeyCtrlO: "(open)",
	gopad.KeyCtrlS: "(save)",
	gopad.KeyCtrlQ: "(exit)",
	gopad.KeyCtrlZ: "(undo)",
	gopad.KeyCtrlY: "(redo)",
	gopad.KeyCtrlX: "(cut)",
	gopad.KeyCtrlC: "(copy)",
	gopad.KeyCtrlV: "(paste)",
	gopad.KeyCtrlA: "(select-all)",
}
