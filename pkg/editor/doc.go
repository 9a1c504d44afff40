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

// Package editor implements the text area of gopad: a buffer of rows,
// a cursor and selection, undoable edit operations, and a word-wrapped
// view of the buffer that scrolls to keep the cursor visible.
// Edits are made by operations that return their inverses when they are
// performed; undo and redo move operations between two stacks.
package editor
