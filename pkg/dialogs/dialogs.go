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

// Package dialogs provides the modal dialogs of gopad: a yes/no
// confirmation and open/save file choosers. Terminal dialogs are drawn
// inside the gopad screen; native dialogs (built with the "native" tag)
// use the dialogs of the host desktop.
package dialogs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	gopad "github.com/timburks/gopad/pkg/types"
)

// WithDefaultExtension appends ext to path if path names a file without an extension.
func WithDefaultExtension(path string, ext string) string {
	if ext == "" || path == "" || filepath.Ext(path) != "" || strings.HasSuffix(path, string(filepath.Separator)) {
		return path
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return path + ext
}

// Matches reports whether a file name is accepted by a filter.
func Matches(filter gopad.FileFilter, name string) bool {
	for _, ext := range filter.Extensions {
		if ext == "*" {
			return true
		}
		if strings.EqualFold(filepath.Ext(name), "."+strings.TrimPrefix(ext, ".")) {
			return true
		}
	}
	return false
}

// Describe returns a filter as it is shown to the user, e.g. "Text Files (*.txt)".
func Describe(filter gopad.FileFilter) string {
	patterns := make([]string, 0, len(filter.Extensions))
	for _, ext := range filter.Extensions {
		if ext == "*" {
			patterns = append(patterns, "*")
		} else {
			patterns = append(patterns, "*."+strings.TrimPrefix(ext, "."))
		}
	}
	return filter.Description + " (" + strings.Join(patterns, " ") + ")"
}

// Complete lists the directories and filter-matching files that
// complete a partially typed path, sorted by name.
func Complete(partial string, filter *gopad.FileFilter) []string {
	dir, base := filepath.Split(partial)
	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil
	}
	matches := make([]string, 0)
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if strings.HasPrefix(name, ".") && !strings.HasPrefix(base, ".") {
			continue
		}
		if entry.IsDir() {
			matches = append(matches, dir+name+string(filepath.Separator))
		} else if filter == nil || Matches(*filter, name) {
			matches = append(matches, dir+name)
		}
	}
	sort.Strings(matches)
	return matches
}
