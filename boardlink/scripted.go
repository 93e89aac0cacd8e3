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

package boardlink

import (
	"bytes"
	"io"
	"sync"
	"time"
)

// ScriptedPort is an implementation of Port that replies to commands with
// prepared lines. It stands in for the firmware when there is no hardware
// attached and in tests.
type ScriptedPort struct {
	crit sync.Mutex

	// data available to Read()
	input []byte

	// incomplete command written to the port
	partial []byte

	// every complete command written to the port, without line terminators
	written []string

	// the replies to use for each command. each command has a queue of
	// replies and one reply is consumed every time the command is written
	replies map[string][][]string

	// maximum number of bytes returned by a single Read(). zero means no
	// limit
	Chunk int

	closed bool
}

// NewScriptedPort is the preferred method of initialisation for the
// ScriptedPort type.
func NewScriptedPort() *ScriptedPort {
	return &ScriptedPort{
		replies: make(map[string][][]string),
	}
}

// Reply queues the lines that will be made available for reading the next
// time the command is written.
func (p *ScriptedPort) Reply(cmd string, lines ...string) {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.replies[cmd] = append(p.replies[cmd], lines)
}

// Inject makes the lines available for reading immediately.
func (p *ScriptedPort) Inject(lines ...string) {
	p.crit.Lock()
	defer p.crit.Unlock()
	for _, l := range lines {
		p.input = append(p.input, l...)
		p.input = append(p.input, '\n')
	}
}

// Written returns every complete command written to the port.
func (p *ScriptedPort) Written() []string {
	p.crit.Lock()
	defer p.crit.Unlock()
	w := make([]string, len(p.written))
	copy(w, p.written)
	return w
}

// Read implements the io.Reader interface. If there is no data then the
// function waits for a millisecond before returning no data, which is similar
// to a serial port with a very short read timeout.
func (p *ScriptedPort) Read(b []byte) (int, error) {
	p.crit.Lock()

	if p.closed {
		p.crit.Unlock()
		return 0, io.ErrClosedPipe
	}

	if len(p.input) == 0 {
		p.crit.Unlock()
		time.Sleep(time.Millisecond)
		return 0, nil
	}

	n := len(b)
	if p.Chunk > 0 && n > p.Chunk {
		n = p.Chunk
	}
	n = copy(b[:n], p.input)
	p.input = p.input[n:]

	p.crit.Unlock()
	return n, nil
}

// Write implements the io.Writer interface.
func (p *ScriptedPort) Write(b []byte) (int, error) {
	p.crit.Lock()
	defer p.crit.Unlock()

	if p.closed {
		return 0, io.ErrClosedPipe
	}

	p.partial = append(p.partial, b...)
	for {
		i := bytes.IndexByte(p.partial, '\n')
		if i < 0 {
			break // for loop
		}

		cmd := string(p.partial[:i])
		p.partial = p.partial[i+1:]
		p.written = append(p.written, cmd)

		if q := p.replies[cmd]; len(q) > 0 {
			for _, l := range q[0] {
				p.input = append(p.input, l...)
				p.input = append(p.input, '\n')
			}
			p.replies[cmd] = q[1:]
		}
	}

	return len(b), nil
}

// Flush implements the Port interface.
func (p *ScriptedPort) Flush() error {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.input = p.input[:0]
	return nil
}

// Close implements the io.Closer interface.
func (p *ScriptedPort) Close() error {
	p.crit.Lock()
	defer p.crit.Unlock()
	p.closed = true
	return nil
}
