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

package game_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/luneburg/chessboard/boardlink"
	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/game"
	"github.com/luneburg/chessboard/position"
	"github.com/luneburg/chessboard/test"
)

// matrixOf returns the matrix the firmware would report for the position.
func matrixOf(t *testing.T, pos position.Position) boardlink.Matrix {
	t.Helper()

	var m boardlink.Matrix
	for file := range m {
		for rank := range m[file] {
			c := pos.Square(coords.ToEngineSquare(file, rank))
			if c == position.Empty {
				m[file][rank] = ' '
				continue
			}
			p, ok := coords.PieceFromEngineLetter(c)
			test.DemandSuccess(t, ok)
			m[file][rank] = p.FirmwareCode()
		}
	}
	return m
}

func TestDifferences(t *testing.T) {
	pos := position.Initial()
	m := matrixOf(t, pos)
	test.ExpectEquality(t, len(game.Differences(m, pos)), 0)

	// the board has a pawn on b4 that the position doesn't know about
	m[6][3] = 'P'
	want := []game.Difference{
		{Square: "b4", Board: 'P', Position: position.Empty},
	}
	if diff := cmp.Diff(want, game.Differences(m, pos)); diff != "" {
		t.Errorf("unexpected differences (-want +got):\n%s", diff)
	}

	// after b2b4 the only difference is the missing pawn on b2
	pos = pos.Play(coords.White, coords.PhysicalToEngine(coords.RawMove{SrcFile: 6, SrcRank: 1, DstFile: 6, DstRank: 3}))
	want = []game.Difference{
		{Square: "b2", Board: 'P', Position: position.Empty},
	}
	if diff := cmp.Diff(want, game.Differences(m, pos)); diff != "" {
		t.Errorf("unexpected differences (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, want[0].String(), "b2: board P position .")
}

func TestVerifyIsNotFatal(t *testing.T) {
	port, link := readyBoard(t)
	port.Reply("MP630", "[LOG] MP 6 1 6 3", "[LOG] QE")

	// the matrix reply is too short
	port.Reply("X", "[LOG] TPAR")

	white := fixedNamed{move: coords.NamedMove{Piece: coords.Piece{Kind: coords.Pawn, Side: coords.White}, File: 6, Rank: 3}}
	o := game.NewOrchestrator(link, timeouts, white, nil)
	o.SetVerify(true)
	test.DemandSuccess(t, o.Start())

	_, err := o.PlayTurn(coords.White)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, o.Ply(), 1)

	test.ExpectEquality(t, port.Written()[1], "X")
}

// fixedNamed is a MoveSource that always chooses the same move.
type fixedNamed struct {
	move coords.NamedMove
}

func (f fixedNamed) String() string {
	return "fixed"
}

func (f fixedNamed) NextMove(_ position.Position) (coords.Move, error) {
	return f.move, nil
}
