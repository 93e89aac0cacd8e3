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

package boardlink_test

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/luneburg/chessboard/boardlink"
	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/logger"
	"github.com/luneburg/chessboard/test"
)

// short timeout used when a transaction is expected to time out.
const shortTimeout = 20 * time.Millisecond

// long timeout used when a transaction is expected to succeed.
const longTimeout = 5 * time.Second

var pawnB4 = coords.NamedMove{Piece: coords.Piece{Kind: coords.Pawn, Side: coords.White}, File: 6, Rank: 3}

func TestWaitUntilReady(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Chunk = 3
	port.Inject("ChessBoard v1.0", "READY", "[LOG] SETUP", "[LOG] READY")

	l := boardlink.NewLink(port)
	test.ExpectSuccess(t, l.WaitUntilReady(longTimeout))
	test.ExpectEquality(t, l.State(), boardlink.Satisfied)
}

func TestWaitUntilReadyTimeout(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Inject("READY")

	l := boardlink.NewLink(port)
	test.ExpectFailure(t, l.WaitUntilReady(shortTimeout))
	test.ExpectEquality(t, l.State(), boardlink.TimedOut)
}

// noisyPort never stops sending bytes and never sends a line terminator.
type noisyPort struct {
	read atomic.Int64
}

func (p *noisyPort) Read(b []byte) (int, error) {
	for i := range b {
		b[i] = 'x'
	}
	p.read.Add(int64(len(b)))
	return len(b), nil
}

func (p *noisyPort) Write(b []byte) (int, error) {
	return len(b), nil
}

func (p *noisyPort) Flush() error {
	return nil
}

func (p *noisyPort) Close() error {
	return nil
}

func TestWaitUntilReadyNoise(t *testing.T) {
	port := &noisyPort{}
	l := boardlink.NewLink(port)

	done := make(chan bool)
	go func() {
		done <- l.WaitUntilReady(shortTimeout)
	}()

	select {
	case ok := <-done:
		test.ExpectFailure(t, ok)
		test.ExpectEquality(t, l.State(), boardlink.TimedOut)
	case <-time.After(2 * time.Second):
		t.Fatalf("WaitUntilReady(%v) still blocked after 2s; %d bytes read", shortTimeout, port.read.Load())
	}

	_, err := l.SubmitNamedMove(pawnB4, shortTimeout)
	test.ExpectSuccess(t, curated.Is(err, boardlink.Timeout), err)
	test.ExpectFailure(t, l.AwaitQueueDrain(shortTimeout))
}

func TestLineAfterNoise(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Chunk = 64
	port.Inject(strings.Repeat("x", 1000), "[LOG] READY")

	l := boardlink.NewLink(port)
	test.ExpectSuccess(t, l.WaitUntilReady(longTimeout))
}

func TestTrafficLogging(t *testing.T) {
	w := &strings.Builder{}
	raw := coords.RawMove{SrcFile: 1, SrcRank: 0, DstFile: 2, DstRank: 2}

	l := boardlink.NewLink(boardlink.NewScriptedPort())

	logger.Clear()
	test.ExpectSuccess(t, l.SubmitRawMove(raw))
	logger.Write(w)
	test.ExpectFailure(t, strings.Contains(w.String(), "serial: send"))

	l.LogTraffic(true)
	w.Reset()
	logger.Clear()
	test.ExpectSuccess(t, l.SubmitRawMove(raw))
	logger.Write(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), `serial: send: "R1022"`))
}

func TestSubmitNamedMove(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Reply("MP630", "debug output", "[LOG] MP 1 2 3 4")

	l := boardlink.NewLink(port)
	m, err := l.SubmitNamedMove(pawnB4, longTimeout)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m, coords.RawMove{SrcFile: 1, SrcRank: 2, DstFile: 3, DstRank: 4})

	if diff := cmp.Diff([]string{"MP630"}, port.Written()); diff != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", diff)
	}
}

func TestSubmitNamedMoveBlackPiece(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Reply("Mg000", "[LOG] MP 3 7 0 0")

	l := boardlink.NewLink(port)
	queen := coords.NamedMove{Piece: coords.Piece{Kind: coords.Queen, Side: coords.Black}, File: 0, Rank: 0}
	m, err := l.SubmitNamedMove(queen, longTimeout)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m, coords.RawMove{SrcFile: 3, SrcRank: 7, DstFile: 0, DstRank: 0})
}

func TestEliminationMoveSkipped(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Reply("MP630", "[LOG] MP -1 0 0 0", "[LOG] MP 1 8 3 4", "[LOG] MP 1 2 3 4")

	l := boardlink.NewLink(port)
	m, err := l.SubmitNamedMove(pawnB4, longTimeout)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m, coords.RawMove{SrcFile: 1, SrcRank: 2, DstFile: 3, DstRank: 4})
}

func TestRejectedMoves(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Reply("MP630", "[LOG] ERR_WRONG_MOVE")
	port.Reply("MP630", "[LOG] ERR_DESTINATION_OCCUPIED")
	port.Reply("MP630", "[LOG] ERR_LOCATION_EMPTY")

	l := boardlink.NewLink(port)

	_, err := l.SubmitNamedMove(pawnB4, longTimeout)
	test.ExpectSuccess(t, curated.Is(err, boardlink.IllegalMove), err)
	test.ExpectEquality(t, l.State(), boardlink.Rejected)

	_, err = l.SubmitNamedMove(pawnB4, longTimeout)
	test.ExpectSuccess(t, curated.Is(err, boardlink.DestinationOccupied), err)

	_, err = l.SubmitNamedMove(pawnB4, longTimeout)
	test.ExpectSuccess(t, curated.Is(err, boardlink.ProtocolError), err)
}

func TestSubmitNamedMoveTimeout(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Reply("MP630", "[LOG] MP 1 2 3")

	l := boardlink.NewLink(port)
	_, err := l.SubmitNamedMove(pawnB4, shortTimeout)
	test.ExpectSuccess(t, curated.Is(err, boardlink.Timeout), err)
	test.ExpectEquality(t, l.State(), boardlink.TimedOut)
}

func TestStaleInputFlushed(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Inject("[LOG] ERR_WRONG_MOVE")
	port.Reply("MP630", "[LOG] MP 1 2 3 4")

	l := boardlink.NewLink(port)
	m, err := l.SubmitNamedMove(pawnB4, longTimeout)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m, coords.RawMove{SrcFile: 1, SrcRank: 2, DstFile: 3, DstRank: 4})
}

func TestSubmitRawMoveAndDrain(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Reply("R1022", "[LOG] MP 1 0 2 2", "[LOG] QE")

	l := boardlink.NewLink(port)
	test.ExpectSuccess(t, l.SubmitRawMove(coords.RawMove{SrcFile: 1, SrcRank: 0, DstFile: 2, DstRank: 2}))
	test.ExpectSuccess(t, l.AwaitQueueDrain(longTimeout))
	test.ExpectFailure(t, l.AwaitQueueDrain(shortTimeout))

	if diff := cmp.Diff([]string{"R1022"}, port.Written()); diff != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", diff)
	}
}

func TestClosedPort(t *testing.T) {
	port := boardlink.NewScriptedPort()
	l := boardlink.NewLink(port)
	test.ExpectSuccess(t, l.Close())

	test.ExpectFailure(t, l.SubmitRawMove(coords.RawMove{}))
	test.ExpectFailure(t, l.WaitUntilReady(longTimeout))

	_, err := l.SubmitNamedMove(pawnB4, longTimeout)
	test.ExpectSuccess(t, curated.Is(err, boardlink.SerialError), err)
}

func TestQueryMatrix(t *testing.T) {
	row := "T P    p"
	port := boardlink.NewScriptedPort()
	port.Chunk = 10
	port.Reply("X", "[LOG] "+strings.Repeat(row, 8))

	l := boardlink.NewLink(port)
	m, err := l.QueryMatrix()
	test.DemandSuccess(t, err)

	// rank 7 is filled first
	for x := 0; x < 8; x++ {
		test.ExpectEquality(t, m[x][7], byte('T'))
		test.ExpectEquality(t, m[x][5], byte('P'))
		test.ExpectEquality(t, m[x][0], byte('p'))
		test.ExpectEquality(t, m[x][3], byte(' '))
	}

	e := m.EngineLetters()
	test.ExpectEquality(t, e[0][7], byte('R'))
	test.ExpectEquality(t, e[0][3], byte('.'))

	lines := strings.Split(m.String(), "\n")
	test.DemandEquality(t, len(lines), 9)
	test.ExpectEquality(t, lines[0], strings.Repeat("T ", 8))
	test.ExpectEquality(t, lines[7], strings.Repeat("p ", 8))
}

func TestQueryMatrixFailures(t *testing.T) {
	port := boardlink.NewScriptedPort()
	port.Reply("X", "[LOG] "+strings.Repeat(" ", 63))
	port.Reply("X", "[LOG] "+strings.Repeat(" ", 65))
	port.Reply("X", "[LOG] ")

	l := boardlink.NewLink(port)

	_, err := l.QueryMatrix()
	test.ExpectSuccess(t, curated.Is(err, boardlink.CorruptMatrix), err)

	_, err = l.QueryMatrix()
	test.ExpectSuccess(t, curated.Is(err, boardlink.CorruptMatrix), err)

	_, err = l.QueryMatrix()
	test.ExpectSuccess(t, curated.Is(err, boardlink.NoMatrix), err)
}

func TestMatrixFprint(t *testing.T) {
	var m boardlink.Matrix
	for x := range m {
		for y := range m[x] {
			m[x][y] = ' '
		}
	}
	m[0][0] = 'R'
	m[7][7] = 'r'

	w := &test.CompareWriter{}
	m.Fprint(w)
	test.ExpectSuccess(t, strings.Contains(w.String(), "R "))
	test.ExpectSuccess(t, strings.Contains(w.String(), "r "))
}
