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
	"time"

	"github.com/luneburg/chessboard/boardlink"
	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/logger"
	"github.com/luneburg/chessboard/movesource"
	"github.com/luneburg/chessboard/position"
)

// Sentinal error patterns.
const (
	NotReady     = "game: board is not ready"
	UnknownMove  = "game: unsupported move type (%T)"
	SourceFailed = "game: %s: %v"
)

// Board is the physical chessboard. It is satisfied by *boardlink.Link.
type Board interface {
	WaitUntilReady(timeout time.Duration) bool
	SubmitNamedMove(m coords.NamedMove, timeout time.Duration) (coords.RawMove, error)
	SubmitRawMove(m coords.RawMove) error
	AwaitQueueDrain(timeout time.Duration) bool
	QueryMatrix() (boardlink.Matrix, error)
}

// Recorder is notified of every move that is played. The requested move is
// the move as it came from the MoveSource and the played move is the move as
// it was applied to the position. The FEN is of the position after the move.
type Recorder interface {
	Record(ply int, side coords.Side, requested coords.Move, played coords.EngineMove, fen string) error
}

// State of the Orchestrator.
type State int

// List of valid State values.
const (
	Setup State = iota
	PlayingWhite
	PlayingBlack
)

func (s State) String() string {
	switch s {
	case Setup:
		return "setup"
	case PlayingWhite:
		return "playing white"
	case PlayingBlack:
		return "playing black"
	}
	return "unknown game state"
}

// Timeouts used by the Orchestrator when talking to the Board.
type Timeouts struct {
	Ready time.Duration
	Move  time.Duration
	Drain time.Duration
}

// NewTimeouts returns the Timeouts specified in the link preferences.
func NewTimeouts(p *boardlink.Preferences) Timeouts {
	return Timeouts{
		Ready: p.ReadyTimeout.Value(),
		Move:  p.MoveTimeout.Value(),
		Drain: p.DrainTimeout.Value(),
	}
}

// Orchestrator alternates between the two players, asking each for a move and
// asking the Board to perform it.
type Orchestrator struct {
	board    Board
	timeouts Timeouts
	sources  [2]movesource.MoveSource

	pos   position.Position
	state State
	ply   int

	// compare the board matrix with the position after every move
	verify bool

	// optional
	recorder Recorder
}

// NewOrchestrator is the preferred method of initialisation for the
// Orchestrator type.
func NewOrchestrator(board Board, timeouts Timeouts, white movesource.MoveSource, black movesource.MoveSource) *Orchestrator {
	return &Orchestrator{
		board:    board,
		timeouts: timeouts,
		sources:  [2]movesource.MoveSource{white, black},
		pos:      position.Initial(),
		state:    Setup,
	}
}

// SetVerify turns matrix verification on or off.
func (o *Orchestrator) SetVerify(verify bool) {
	o.verify = verify
}

// SetRecorder sets the Recorder to be notified of every move. A nil value
// removes the current Recorder.
func (o *Orchestrator) SetRecorder(r Recorder) {
	o.recorder = r
}

// Position returns the current logical position, from the point of view of
// the white player.
func (o *Orchestrator) Position() position.Position {
	return o.pos
}

// State returns the current state of the game.
func (o *Orchestrator) State() State {
	return o.state
}

// Ply returns the number of half-moves played so far.
func (o *Orchestrator) Ply() int {
	return o.ply
}

func (o *Orchestrator) source(side coords.Side) movesource.MoveSource {
	if side == coords.White {
		return o.sources[0]
	}
	return o.sources[1]
}

// Start waits for the board to be ready. The game is then ready for white's
// first move.
func (o *Orchestrator) Start() error {
	logger.Logf(logger.Allow, "game", "%v against %v", o.sources[0], o.sources[1])

	if !o.board.WaitUntilReady(o.timeouts.Ready) {
		return curated.Errorf(NotReady)
	}

	o.state = PlayingWhite
	logger.Log(logger.Allow, "game", "board is ready")

	return nil
}

// Run plays turns, alternating between white and black, until an error
// occurs or until the quit channel is closed. The quit channel is checked
// between turns.
func (o *Orchestrator) Run(quit <-chan bool) error {
	if o.state == Setup {
		if err := o.Start(); err != nil {
			return err
		}
	}

	for {
		select {
		case <-quit:
			return nil
		default:
		}

		side := coords.White
		if o.state == PlayingBlack {
			side = coords.Black
		}

		if _, err := o.PlayTurn(side); err != nil {
			return err
		}
	}
}

// retry returns true if the error from the board means that the player
// should be asked for another move.
func retry(err error) bool {
	return curated.Is(err, boardlink.IllegalMove) ||
		curated.Is(err, boardlink.DestinationOccupied) ||
		curated.Is(err, boardlink.Timeout) ||
		curated.Is(err, boardlink.ProtocolError)
}

// PlayTurn asks the side's MoveSource for a move and performs it. Moves
// refused by the board are discarded and the MoveSource is asked again.
// Returns the new position.
//
// Errors from the MoveSource and serial errors end the turn without changing
// the position.
func (o *Orchestrator) PlayTurn(side coords.Side) (position.Position, error) {
	src := o.source(side)

	var requested coords.Move
	var played coords.EngineMove

	for {
		m, err := src.NextMove(o.pos)
		if err != nil {
			return o.pos, curated.Errorf(SourceFailed, src, err)
		}

		switch m := m.(type) {
		case coords.NamedMove:
			raw, err := o.board.SubmitNamedMove(m, o.timeouts.Move)
			if err != nil {
				if retry(err) {
					if curated.Is(err, boardlink.ProtocolError) {
						logger.Logf(logger.Allow, "game", "protocol anomaly: %v", err)
					} else {
						logger.Log(logger.Allow, "game", err)
					}
					continue // for loop
				}
				return o.pos, err
			}
			played = coords.PhysicalToEngine(raw)

		case coords.RawMove:
			if err := o.board.SubmitRawMove(m); err != nil {
				return o.pos, err
			}
			played = coords.PhysicalToEngine(m)

		default:
			return o.pos, curated.Errorf(UnknownMove, m)
		}

		requested = m
		break // for loop
	}

	o.pos = o.pos.Play(side, played)
	o.ply++
	logger.Logf(logger.Allow, "game", "%d. %s plays %v", o.ply, side, played)

	if side == coords.White {
		o.state = PlayingBlack
	} else {
		o.state = PlayingWhite
	}

	if !o.board.AwaitQueueDrain(o.timeouts.Drain) {
		logger.Log(logger.Allow, "game", "board did not finish moving in time")
	}

	if o.verify {
		o.verifyMatrix()
	}

	if o.recorder != nil {
		err := o.recorder.Record(o.ply, side, requested, played, o.pos.FEN(side.Opponent()))
		if err != nil {
			logger.Log(logger.Allow, "game", err)
		}
	}

	return o.pos, nil
}
