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
	"fmt"
	"time"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/position"
)

// Sentinal error patterns.
const (
	ParseError    = "movesource: cannot parse move (%s)"
	ChannelClosed = "movesource: channel closed"
	OracleError   = "movesource: oracle: %v"
)

// MoveSource is implemented by Human and Engine.
type MoveSource interface {
	fmt.Stringer

	// NextMove returns the move the player wants to make next. The position
	// is from the point of view of the white player.
	NextMove(pos position.Position) (coords.Move, error)
}

// Channel is the means of communicating with a human player.
type Channel interface {
	// Speak the text to the player.
	Speak(text string)

	// Cue indicates to the player that they should speak now.
	Cue()

	// Listen returns the text spoken by the player. The boolean is false if
	// nothing was understood, in which case Listen() should be called again.
	Listen() (string, bool)

	// Prompt asks the operator a question and returns the answer. Used for
	// acquiring replacement rules.
	Prompt(question string) string
}

// Closer is an optional interface for a Channel. If the Channel can no longer
// listen to the player then Closed() should return true.
type Closer interface {
	Closed() bool
}

// Oracle finds the best move in a position. The position is from the point of
// view of the side to move and the returned move is in the same orientation.
// The score is from the point of view of the side to move.
type Oracle interface {
	Search(pos position.Position, side coords.Side, budget time.Duration) (coords.EngineMove, int, error)
}
