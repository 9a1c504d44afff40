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
package main

import (
	"io"
	"log"
	"os"

	"github.com/timburks/gopad/pkg/clipboard"
	"github.com/timburks/gopad/pkg/commander"
	"github.com/timburks/gopad/pkg/editor"
	"github.com/timburks/gopad/pkg/screen"
	"github.com/timburks/gopad/pkg/shell"
)

func main() {

	var filename string
	for i := 1; i < len(os.Args); i++ {
		// If a file was specified on the command line, read it.
		filename = os.Args[i]
	}

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		os.Exit(1)
	}
	defer s.Close()

	// Open a log file; the terminal belongs to the screen.
	f, err := os.OpenFile(os.Getenv("HOME")+"/.gopadlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(f)
		defer f.Close()
	}

	// The text area holds the document.
	area := editor.NewTextArea(clipboard.NewClipboard())

	// The shell owns the window state and performs menu actions.
	sh := shell.NewShell(area, newDialogs(s), shell.OSFileSystem{})

	// The commander converts user inputs into commands for the shell.
	c := commander.NewCommander(sh)

	if filename != "" {
		err = sh.OpenArgument(filename)
		if err != nil {
			log.Printf("%+v", err)
			c.SetMessage(err.Error())
		}
	}

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(sh, area, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			// the terminal can no longer be read
			log.Output(1, err.Error())
			break
		}
	}
}
