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
	"io"
	"time"

	"github.com/pkg/term"

	"github.com/luneburg/chessboard/curated"
)

// Port is the serial channel to the firmware. Read() should return zero bytes
// and either a nil error or io.EOF if no data arrived within the read timeout.
type Port interface {
	io.ReadWriteCloser

	// Flush discards any data that has been received but not yet read.
	Flush() error
}

// Serial is a serial port device.
type Serial struct {
	*term.Term
	name string
}

// OpenSerial opens the named serial device in raw mode, at the specified baud
// rate and with the specified read timeout.
func OpenSerial(name string, baud int, readTimeout time.Duration) (*Serial, error) {
	t, err := term.Open(name, term.Speed(baud), term.RawMode)
	if err != nil {
		return nil, curated.Errorf(SerialError, err)
	}

	if err := t.SetReadTimeout(readTimeout); err != nil {
		_ = t.Close()
		return nil, curated.Errorf(SerialError, err)
	}

	return &Serial{Term: t, name: name}, nil
}

func (s *Serial) String() string {
	return s.name
}
