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

package game

import (
	"fmt"

	"github.com/luneburg/chessboard/boardlink"
	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/logger"
	"github.com/luneburg/chessboard/position"
)

// Difference is a square where the board and the logical position disagree.
// Board and Position are engine letters with position.Empty for an empty
// square.
type Difference struct {
	Square   string
	Board    byte
	Position byte
}

func (d Difference) String() string {
	return fmt.Sprintf("%s: board %c position %c", d.Square, d.Board, d.Position)
}

// Differences compares the matrix reported by the board with a position. The
// position must be from the point of view of the white player.
func Differences(m boardlink.Matrix, pos position.Position) []Difference {
	var diffs []Difference

	e := m.EngineLetters()
	for file := range e {
		for rank := range e[file] {
			idx := coords.ToEngineSquare(file, rank)
			if e[file][rank] != pos.Square(idx) {
				diffs = append(diffs, Difference{
					Square:   coords.SquareName(idx),
					Board:    e[file][rank],
					Position: pos.Square(idx),
				})
			}
		}
	}

	return diffs
}

// verifyMatrix queries the board and logs any difference with the logical
// position. Failure to get the matrix is logged and otherwise ignored.
func (o *Orchestrator) verifyMatrix() {
	m, err := o.board.QueryMatrix()
	if err != nil {
		logger.Log(logger.Allow, "game", err)
		return
	}

	diffs := Differences(m, o.pos)
	if len(diffs) == 0 {
		logger.Log(logger.Allow, "game", "board matches position")
		return
	}

	for _, d := range diffs {
		logger.Log(logger.Allow, "game", d)
	}
}
