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

package clipboard

import "testing"

func TestLocalClipboard(t *testing.T) {
	c := NewLocalClipboard()
	if c.IsSystem() {
		t.Errorf("Local clipboard claims to use the system clipboard")
	}
	text, err := c.ReadAll()
	if err != nil || text != "" {
		t.Errorf("Unexpected initial contents: %q %+v", text, err)
	}
	c.WriteAll("გამარჯობა\nworld")
	text, err = c.ReadAll()
	if err != nil || text != "გამარჯობა\nworld" {
		t.Errorf("Unexpected contents: %q %+v", text, err)
	}
}
