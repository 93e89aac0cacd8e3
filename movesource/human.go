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
	"strings"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/logger"
	"github.com/luneburg/chessboard/position"
)

// Phrases spoken to the player.
const (
	TurnWhite   = "Turno del giocatore bianco"
	TurnBlack   = "Turno del giocatore nero"
	InvalidMove = "Non è una mossa valida, riprova"
)

// the question asked of the operator when a move could not be parsed.
const replacementQuestion = `replacement in form "<old>,<new>" (leave empty to ignore): `

// Human is a MoveSource that asks a person for their move.
type Human struct {
	side         coords.Side
	ch           Channel
	replacements *Replacements
}

// NewHuman is the preferred method of initialisation for the Human type.
func NewHuman(side coords.Side, ch Channel, replacements *Replacements) *Human {
	return &Human{
		side:         side,
		ch:           ch,
		replacements: replacements,
	}
}

func (h *Human) String() string {
	return "human " + h.side.String()
}

// NextMove implements the MoveSource interface. The position is ignored. The
// player is asked again and again until a move can be parsed.
func (h *Human) NextMove(_ position.Position) (coords.Move, error) {
	if h.side == coords.White {
		h.ch.Speak(TurnWhite)
	} else {
		h.ch.Speak(TurnBlack)
	}
	h.ch.Cue()

	for {
		text, ok := h.ch.Listen()
		if !ok {
			if c, ok := h.ch.(Closer); ok && c.Closed() {
				return nil, curated.Errorf(ChannelClosed)
			}
			continue // for loop
		}

		logger.Logf(logger.Allow, "human", "understood: %s", text)

		fixed := text
		if h.replacements != nil {
			fixed = h.replacements.Apply(text)
			logger.Logf(logger.Allow, "human", "fixed to: %s", fixed)
		}

		m, err := Parse(fixed, h.side)
		if err == nil {
			logger.Logf(logger.Allow, "human", "parsed move: %v", m)
			return m, nil
		}

		logger.Log(logger.Allow, "human", err)
		h.ch.Speak(InvalidMove)
		h.acquireReplacement()
		h.ch.Cue()
	}
}

// acquireReplacement asks the operator for a new replacement rule and adds it
// to the table.
func (h *Human) acquireReplacement() {
	if h.replacements == nil {
		return
	}

	answer := h.ch.Prompt(replacementQuestion)
	if answer == "" {
		return
	}

	tokens := strings.Split(answer, ",")
	if len(tokens) != 2 {
		logger.Logf(logger.Allow, "human", "ignoring malformed replacement: %s", answer)
		return
	}

	if err := h.replacements.Add(tokens[0], tokens[1]); err != nil {
		logger.Log(logger.Allow, "human", err)
	}
}
