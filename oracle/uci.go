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

package oracle

import (
	"sync"
	"time"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/logger"
	"github.com/luneburg/chessboard/position"
	"github.com/notnil/chess"
	"github.com/notnil/chess/uci"
)

// Sentinal error patterns.
const (
	EngineError = "oracle: %v"
	NoBestMove  = "oracle: engine returned no move"
)

// MateScore is the score given to a position where a forced mate has been
// found. The number of moves to mate is subtracted from it.
const MateScore = 100000

// UCI is an Oracle backed by an external engine process.
type UCI struct {
	crit sync.Mutex
	eng  *uci.Engine
	path string
}

// NewUCI starts the engine at the specified path and prepares it for a new
// game.
func NewUCI(path string) (*UCI, error) {
	eng, err := uci.New(path)
	if err != nil {
		return nil, curated.Errorf(EngineError, err)
	}

	err = eng.Run(uci.CmdUCI, uci.CmdIsReady, uci.CmdUCINewGame)
	if err != nil {
		_ = eng.Close()
		return nil, curated.Errorf(EngineError, err)
	}

	logger.Logf(logger.Allow, "oracle", "started %s", path)

	return &UCI{
		eng:  eng,
		path: path,
	}, nil
}

func (o *UCI) String() string {
	return o.path
}

// Close stops the engine process.
func (o *UCI) Close() error {
	o.crit.Lock()
	defer o.crit.Unlock()

	err := o.eng.Close()
	if err != nil {
		return curated.Errorf(EngineError, err)
	}
	return nil
}

// Search implements the movesource.Oracle interface.
func (o *UCI) Search(pos position.Position, side coords.Side, budget time.Duration) (coords.EngineMove, int, error) {
	o.crit.Lock()
	defer o.crit.Unlock()

	cp, err := Convert(pos, side)
	if err != nil {
		return coords.EngineMove{}, 0, curated.Errorf(EngineError, err)
	}

	err = o.eng.Run(uci.CmdPosition{Position: cp}, uci.CmdGo{MoveTime: budget})
	if err != nil {
		return coords.EngineMove{}, 0, curated.Errorf(EngineError, err)
	}

	res := o.eng.SearchResults()
	if res.BestMove == nil {
		return coords.EngineMove{}, 0, curated.Errorf(NoBestMove)
	}

	m := coords.EngineMove{
		From: SquareIndex(res.BestMove.S1(), side),
		To:   SquareIndex(res.BestMove.S2(), side),
	}

	return m, score(res.Info.Score), nil
}

func score(s uci.Score) int {
	switch {
	case s.Mate > 0:
		return MateScore - s.Mate
	case s.Mate < 0:
		return -MateScore - s.Mate
	}
	return s.CP
}

// Convert the position to the representation used by the UCI client. The
// position is from the point of view of the side to move.
func Convert(pos position.Position, side coords.Side) (*chess.Position, error) {
	if side == coords.Black {
		pos = pos.Rotate()
	}

	fen, err := chess.FEN(pos.FEN(side))
	if err != nil {
		return nil, err
	}

	return chess.NewGame(fen).Position(), nil
}

// SquareIndex converts a square to an index in the mailbox layout. The index
// is from the point of view of the specified side.
func SquareIndex(sq chess.Square, side coords.Side) int {
	idx := position.A1 + int(sq.File()) - 10*int(sq.Rank())
	if side == coords.Black {
		return 119 - idx
	}
	return idx
}
