// This file is part of Luneburg.
//
// Luneburg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Luneburg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Luneburg.  If not, see <https://www.gnu.org/licenses/>.

package voice

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/luneburg/chessboard/logger"
)

// Console implements the movesource.Channel interface. It also implements
// the movesource.Closer interface.
type Console struct {
	in  *bufio.Reader
	out io.Writer

	// clips is optional. if it is nil then all text is printed
	clips *Clips

	// whether to play or print the ready cue
	cues bool

	closed bool

	speech *color.Color
	prompt *color.Color
	cue    *color.Color
}

// NewConsole is the preferred method of initialisation for the Console type.
// The clips argument can be nil.
//
// Output is coloured if out is a terminal.
func NewConsole(in io.Reader, out io.Writer, clips *Clips, cues bool) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		clips:  clips,
		cues:   cues,
		speech: color.New(color.FgGreen, color.Bold),
		prompt: color.New(color.FgYellow),
		cue:    color.New(color.FgMagenta),
	}

	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		c.speech.DisableColor()
		c.prompt.DisableColor()
		c.cue.DisableColor()
	}

	return c
}

// Speak implements the movesource.Channel interface.
func (c *Console) Speak(text string) {
	logger.Logf(logger.Allow, "voice", "speak: %s", text)
	if c.clips != nil && c.clips.Say(text) {
		return
	}
	c.speech.Fprintln(c.out, text)
}

// Cue implements the movesource.Channel interface.
func (c *Console) Cue() {
	if !c.cues {
		return
	}
	if c.clips != nil && c.clips.Cue() {
		return
	}
	c.cue.Fprint(c.out, "> ")
}

func (c *Console) readLine() (string, bool) {
	if c.closed {
		return "", false
	}

	s, err := c.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			logger.Log(logger.Allow, "voice", err)
		}
		c.closed = true

		// a final line without a newline is still valid
		if s == "" {
			return "", false
		}
	}

	return strings.TrimSpace(s), true
}

// Listen implements the movesource.Channel interface.
func (c *Console) Listen() (string, bool) {
	s, ok := c.readLine()
	if !ok || s == "" {
		return "", false
	}
	logger.Logf(logger.Allow, "voice", "heard: %s", s)
	return s, true
}

// Prompt implements the movesource.Channel interface.
func (c *Console) Prompt(question string) string {
	c.prompt.Fprintf(c.out, "%s ", question)
	s, _ := c.readLine()
	return s
}

// Closed implements the movesource.Closer interface.
func (c *Console) Closed() bool {
	return c.closed
}
