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

//go:build native

package dialogs

import (
	"errors"

	"github.com/sqweek/dialog"

	gopad "github.com/timburks/gopad/pkg/types"
)

// Native dialogs are shown by the host desktop.
type Native struct{}

func NewNative() *Native {
	return &Native{}
}

func (n *Native) Confirm(title string, message string) bool {
	return dialog.Message("%s", message).Title(title).YesNo()
}

func fileBuilder(title string, filters []gopad.FileFilter) *dialog.FileBuilder {
	b := dialog.File().Title(title)
	for _, f := range filters {
		b = b.Filter(f.Description, f.Extensions...)
	}
	return b
}

func chosen(path string, err error) (string, bool, error) {
	if errors.Is(err, dialog.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return path, path != "", nil
}

func (n *Native) OpenFile(title string, filters []gopad.FileFilter) (string, bool, error) {
	return chosen(fileBuilder(title, filters).Load())
}

func (n *Native) SaveFile(title string, filters []gopad.FileFilter, defaultExtension string) (string, bool, error) {
	path, ok, err := chosen(fileBuilder(title, filters).Save())
	if ok {
		path = WithDefaultExtension(path, defaultExtension)
	}
	return path, ok, err
}
