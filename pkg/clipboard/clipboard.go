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

// Package clipboard connects gopad to the system clipboard.
// When no system clipboard is available (for example, on a console without
// xclip, xsel or wl-clipboard), a pasteboard local to the process is used.
package clipboard

import (
	"log"

	"github.com/atotto/clipboard"
)

type Clipboard struct {
	text   string // last text written, used when the system clipboard fails
	system bool   // true to use the system clipboard
}

func NewClipboard() *Clipboard {
	return &Clipboard{system: !clipboard.Unsupported}
}

// NewLocalClipboard returns a clipboard that never uses the system clipboard.
func NewLocalClipboard() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) IsSystem() bool {
	return c.system
}

func (c *Clipboard) WriteAll(text string) error {
	c.text = text
	if c.system {
		if err := clipboard.WriteAll(text); err != nil {
			log.Printf("system clipboard write failed, using local pasteboard: %+v", err)
			c.system = false
		}
	}
	return nil
}

func (c *Clipboard) ReadAll() (string, error) {
	if c.system {
		text, err := clipboard.ReadAll()
		if err == nil {
			return text, nil
		}
		log.Printf("system clipboard read failed, using local pasteboard: %+v", err)
		c.system = false
	}
	return c.text, nil
}
