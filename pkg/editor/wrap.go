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
	"unicode"

	"github.com/mattn/go-runewidth"

	gopad "github.com/timburks/gopad/pkg/types"
)

const tabWidth = 8

// cellWidth returns the number of cells c occupies when drawn at cell x.
func cellWidth(c rune, x int) int {
	if c == '\t' {
		return tabWidth - x%tabWidth
	}
	if w := runewidth.RuneWidth(c); w > 0 {
		return w
	}
	// control and zero-width characters are drawn as a one-cell placeholder
	return 1
}

// isPlaceholder reports whether c is drawn as a placeholder.
func isPlaceholder(c rune) bool {
	return unicode.IsControl(c) || runewidth.RuneWidth(c) == 0
}

// A segment is the part of a row that is drawn on one display line.
type segment struct {
	row   int
	start int
	end   int
}

// wrapRow breaks text into spans no wider than width cells.
// A span ends after the last blank that fits, or where the width runs out
// if there is no such blank. A width <= 0 disables wrapping.
func wrapRow(text []rune, width int) [][2]int {
	if width <= 0 || len(text) == 0 {
		return [][2]int{{0, len(text)}}
	}
	spans := make([][2]int, 0, 1)
	start := 0
	for start < len(text) {
		x := 0
		i := start
		lastBreak := -1
		for i < len(text) {
			w := cellWidth(text[i], x)
			if x+w > width && i > start {
				break
			}
			x += w
			if text[i] == ' ' || text[i] == '\t' {
				lastBreak = i + 1
			}
			i++
		}
		if i == len(text) {
			spans = append(spans, [2]int{start, i})
			break
		}
		end := i
		if lastBreak > start {
			end = lastBreak
		}
		spans = append(spans, [2]int{start, end})
		start = end
	}
	return spans
}

// layout returns the display lines of the whole buffer.
func (t *TextArea) layout() []segment {
	lines := make([]segment, 0, len(t.rows))
	for i, row := range t.rows {
		for _, span := range wrapRow(row.Text, t.size.Cols) {
			lines = append(lines, segment{row: i, start: span[0], end: span[1]})
		}
	}
	return lines
}

// lineOf returns the index of the display line that shows p.
// A position at the end of a span belongs to the following span of the same row.
func lineOf(lines []segment, p gopad.Point) int {
	found := 0
	for i, seg := range lines {
		if seg.row > p.Row || (seg.row == p.Row && seg.start > p.Col) {
			break
		}
		found = i
	}
	return found
}

// columnOf returns the cell offset of col within the line seg.
func (t *TextArea) columnOf(seg segment, col int) int {
	text := t.rows[seg.row].Text
	x := 0
	for i := seg.start; i < col && i < len(text); i++ {
		x += cellWidth(text[i], x)
	}
	return x
}

// colAt returns the buffer column in seg closest to cell offset x.
func (t *TextArea) colAt(lines []segment, n int, x int) int {
	seg := lines[n]
	text := t.rows[seg.row].Text
	last := seg.end
	if n+1 < len(lines) && lines[n+1].row == seg.row && last > seg.start {
		// the end of a wrapped span is displayed on the next line
		last--
	}
	cells := 0
	col := seg.start
	for col < last {
		w := cellWidth(text[col], cells)
		if cells+w > x {
			break
		}
		cells += w
		col++
	}
	return col
}
