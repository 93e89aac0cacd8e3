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

package movesource

import (
	"time"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/logger"
	"github.com/luneburg/chessboard/position"
)

// Engine is a MoveSource that asks an Oracle for the best move.
type Engine struct {
	side   coords.Side
	oracle Oracle
	budget time.Duration
}

// NewEngine is the preferred method of initialisation for the Engine type.
// The budget is the amount of time the oracle is given for each move.
func NewEngine(side coords.Side, oracle Oracle, budget time.Duration) *Engine {
	return &Engine{
		side:   side,
		oracle: oracle,
		budget: budget,
	}
}

func (e *Engine) String() string {
	return "engine " + e.side.String()
}

// NextMove implements the MoveSource interface. The returned move is always a
// coords.RawMove.
func (e *Engine) NextMove(pos position.Position) (coords.Move, error) {
	logger.Logf(logger.Allow, "engine", "%s is thinking", e.side)

	perspective := coords.Direct
	if e.side == coords.Black {
		pos = pos.Rotate()
		perspective = coords.Rotated
	}

	m, score, err := e.oracle.Search(pos, e.side, e.budget)
	if err != nil {
		return nil, curated.Errorf(OracleError, err)
	}

	raw := coords.EngineToPhysical(m, perspective)
	logger.Logf(logger.Allow, "engine", "best move %v score %d", raw, score)

	return raw, nil
}
