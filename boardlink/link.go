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
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/logger"
)

// TransactionState indicates the progress of the most recent transaction.
type TransactionState int

// List of valid TransactionState values.
const (
	Idle TransactionState = iota
	AwaitingResponse
	Satisfied
	TimedOut
	Rejected
)

func (s TransactionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingResponse:
		return "awaiting response"
	case Satisfied:
		return "satisfied"
	case TimedOut:
		return "timed out"
	case Rejected:
		return "rejected"
	}
	return "unknown transaction state"
}

// the amount of time to wait for the single line reply to the matrix query.
const matrixTimeout = time.Second

// the number of bytes without a line terminator after which the pending input
// is treated as noise and discarded.
const maxPending = 256

// Link is the connection to the chessboard firmware.
type Link struct {
	port  Port
	state TransactionState

	// bytes read from the port that have not yet formed a complete line
	pending []byte
	buf     [256]byte

	// whether every line sent and received is logged
	traffic bool
}

// NewLink is the preferred method of initialisation for the Link type. The
// Link takes ownership of the port.
func NewLink(port Port) *Link {
	return &Link{
		port: port,
	}
}

// State returns the state of the most recent transaction.
func (l *Link) State() TransactionState {
	return l.state
}

// LogTraffic sets whether the lines sent to and received from the firmware
// are added to the central log.
func (l *Link) LogTraffic(traffic bool) {
	l.traffic = traffic
}

// AllowLogging implements the logger.Permission interface. Only serial
// traffic is gated.
func (l *Link) AllowLogging() bool {
	return l.traffic
}

// Close the underlying port.
func (l *Link) Close() error {
	return l.port.Close()
}

// readLine returns the next complete line from the port without the line
// terminator. The boolean is false if no complete line was available after a
// single read of the port.
func (l *Link) readLine() (string, bool, error) {
	if line, ok := l.nextLine(); ok {
		return line, true, nil
	}

	n, err := l.port.Read(l.buf[:])
	if n > 0 {
		l.pending = append(l.pending, l.buf[:n]...)
		if line, ok := l.nextLine(); ok {
			return line, true, nil
		}

		// a line this long is not something the firmware sends
		if len(l.pending) > maxPending {
			logger.Logf(logger.Allow, "serial", "discarding %d bytes of noise", len(l.pending))
			l.pending = l.pending[:0]
		}
		return "", false, nil
	}

	if err != nil && err != io.EOF {
		return "", false, curated.Errorf(SerialError, err)
	}

	return "", false, nil
}

// nextLine removes the first complete line from the pending bytes.
func (l *Link) nextLine() (string, bool) {
	i := bytes.IndexByte(l.pending, '\n')
	if i < 0 {
		return "", false
	}
	line := strings.TrimRight(string(l.pending[:i]), "\r")
	l.pending = l.pending[i+1:]
	logger.Logf(l, "serial", "recv: %q", line)
	return line, true
}

// flush discards everything received from the firmware so far, including any
// partial line.
func (l *Link) flush() error {
	l.pending = l.pending[:0]
	if err := l.port.Flush(); err != nil {
		return curated.Errorf(SerialError, err)
	}
	return nil
}

func (l *Link) send(cmd string) error {
	logger.Logf(l, "serial", "send: %q", cmd)
	if _, err := io.WriteString(l.port, cmd+"\n"); err != nil {
		return curated.Errorf(SerialError, err)
	}
	return nil
}

// await reads lines from the port until the until function returns true or
// an error, or until the timeout expires. Lines that decode as irrelevant are
// not passed to the until function.
func (l *Link) await(timeout time.Duration, until func(r response) (bool, error)) (bool, error) {
	l.state = AwaitingResponse

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		line, ok, err := l.readLine()
		if err != nil {
			l.state = Rejected
			return false, err
		}
		if !ok {
			continue // for loop
		}

		r := decode(line)
		if r.kind == respIrrelevant {
			continue // for loop
		}

		done, err := until(r)
		if err != nil {
			l.state = Rejected
			return false, err
		}
		if done {
			l.state = Satisfied
			return true, nil
		}
	}

	l.state = TimedOut
	return false, nil
}

// WaitUntilReady waits for the firmware to report that it is ready. Returns
// false if the timeout expired first.
func (l *Link) WaitUntilReady(timeout time.Duration) bool {
	logger.Log(logger.Allow, "boardlink", "waiting for board to be ready")

	ok, err := l.await(timeout, func(r response) (bool, error) {
		return r.kind == respReady, nil
	})
	if err != nil {
		logger.Log(logger.Allow, "boardlink", err)
		return false
	}

	return ok
}

// SubmitNamedMove asks the firmware to move the named piece to the square.
// The firmware decides which piece of that kind makes the move and the move
// it actually performed is returned.
func (l *Link) SubmitNamedMove(m coords.NamedMove, timeout time.Duration) (coords.RawMove, error) {
	if err := l.flush(); err != nil {
		return coords.RawMove{}, err
	}

	cmd := fmt.Sprintf("M%c%d%d0", m.Piece.FirmwareCode(), m.File, m.Rank)
	if err := l.send(cmd); err != nil {
		return coords.RawMove{}, err
	}

	var performed coords.RawMove

	ok, err := l.await(timeout, func(r response) (bool, error) {
		switch r.kind {
		case respMovePerformed:
			// captured pieces are moved off the board to negative files. any
			// record with a coordinate outside the board is skipped in the
			// same way so that the returned move is always on the board
			if !r.move.Valid() {
				logger.Logf(logger.Allow, "boardlink", "elimination move %v", r.move)
				return false, nil
			}
			performed = r.move
			return true, nil
		case respWrongMove:
			return false, curated.Errorf(IllegalMove, m)
		case respDestinationOccupied:
			return false, curated.Errorf(DestinationOccupied, m)
		}
		return false, curated.Errorf(ProtocolError, r.kind)
	})
	if err != nil {
		return coords.RawMove{}, err
	}
	if !ok {
		return coords.RawMove{}, curated.Errorf(Timeout, "move")
	}

	return performed, nil
}

// SubmitRawMove asks the firmware to move the piece on the source square to
// the destination square. There is no acknowledgement from the firmware. An
// error is returned only if the command could not be written.
func (l *Link) SubmitRawMove(m coords.RawMove) error {
	if err := l.flush(); err != nil {
		return err
	}

	l.state = Idle

	return l.send(fmt.Sprintf("R%d%d%d%d", m.SrcFile, m.SrcRank, m.DstFile, m.DstRank))
}

// AwaitQueueDrain waits for the firmware to report that the movement queue is
// empty, meaning that all requested movement has been carried out. Returns
// false if the timeout expired first.
func (l *Link) AwaitQueueDrain(timeout time.Duration) bool {
	ok, err := l.await(timeout, func(r response) (bool, error) {
		return r.kind == respQueueEmpty, nil
	})
	if err != nil {
		logger.Log(logger.Allow, "boardlink", err)
		return false
	}

	return ok
}

// QueryMatrix asks the firmware for the contents of every square on the
// board. Only the first line received after the request is considered.
func (l *Link) QueryMatrix() (Matrix, error) {
	if err := l.flush(); err != nil {
		return Matrix{}, err
	}

	if err := l.send("X"); err != nil {
		return Matrix{}, err
	}

	l.state = AwaitingResponse

	deadline := time.Now().Add(matrixTimeout)
	for time.Now().Before(deadline) {
		line, ok, err := l.readLine()
		if err != nil {
			l.state = Rejected
			return Matrix{}, err
		}
		if !ok {
			continue // for loop
		}

		m, err := parseMatrix(line)
		if err != nil {
			l.state = Rejected
			return Matrix{}, err
		}

		l.state = Satisfied
		return m, nil
	}

	l.state = TimedOut
	return Matrix{}, curated.Errorf(NoMatrix)
}
