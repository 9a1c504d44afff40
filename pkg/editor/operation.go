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

package editor

import (
	gopad "github.com/timburks/gopad/pkg/types"
)

// An Operation changes the buffer of a text area.
// Perform returns the operation that reverses it.
type Operation interface {
	Perform(t *TextArea) Operation
}

// InsertText inserts Text at At and leaves the cursor after it.
type InsertText struct {
	At   gopad.Point
	Text string
}

func (op *InsertText) Perform(t *TextArea) Operation {
	at := t.clampPoint(op.At)
	end := t.insertAt(at, []rune(op.Text))
	t.cursor = end
	return &DeleteText{From: at, To: end}
}

// DeleteText removes the text between From and To and leaves the cursor at From.
type DeleteText struct {
	From gopad.Point
	To   gopad.Point
}

func (op *DeleteText) Perform(t *TextArea) Operation {
	from, to := order(t.clampPoint(op.From), t.clampPoint(op.To))
	text := t.deleteRange(from, to)
	t.cursor = from
	return &InsertText{At: from, Text: text}
}

// A Sequence performs several operations as one undoable step.
type Sequence struct {
	Operations []Operation
}

func (op *Sequence) Perform(t *TextArea) Operation {
	inverses := make([]Operation, 0, len(op.Operations))
	for _, o := range op.Operations {
		if inverse := o.Perform(t); inverse != nil {
			inverses = append([]Operation{inverse}, inverses...)
		}
	}
	return &Sequence{Operations: inverses}
}

func order(a, b gopad.Point) (gopad.Point, gopad.Point) {
	if b.Before(a) {
		return b, a
	}
	return a, b
}
