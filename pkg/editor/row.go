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

// A Row is one line of text, without its line terminator.
type Row struct {
	Text []rune
}

func NewRow(text string) *Row {
	return &Row{Text: []rune(text)}
}

func (r *Row) Length() int {
	return len(r.Text)
}

func (r *Row) String() string {
	return string(r.Text)
}

// clamp col into the range of valid insertion points
func (r *Row) clamp(col int) int {
	if col < 0 {
		return 0
	}
	if col > len(r.Text) {
		return len(r.Text)
	}
	return col
}

// inserts text at col
func (r *Row) Insert(col int, text []rune) {
	col = r.clamp(col)
	line := make([]rune, 0, len(r.Text)+len(text))
	line = append(line, r.Text[0:col]...)
	line = append(line, text...)
	line = append(line, r.Text[col:]...)
	r.Text = line
}

// deletes the characters in [from,to) and returns them
func (r *Row) Delete(from int, to int) []rune {
	from = r.clamp(from)
	to = r.clamp(to)
	if to <= from {
		return nil
	}
	deleted := append([]rune{}, r.Text[from:to]...)
	r.Text = append(r.Text[0:from], r.Text[to:]...)
	return deleted
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	col = r.clamp(col)
	after := append([]rune{}, r.Text[col:]...)
	r.Text = r.Text[0:col]
	return &Row{Text: after}
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	r.Text = append(r.Text, other.Text...)
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.Text) && col >= 0 {
		return string(r.Text[col:])
	}
	return ""
}
