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
	"strings"
	"time"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/logger"
	"github.com/luneburg/chessboard/movesource"
)

// Mode decides who plays each side.
type Mode int

// List of valid Mode values.
const (
	PVP Mode = iota
	PVC
	CVC
)

func (m Mode) String() string {
	switch m {
	case PVP:
		return "PVP"
	case PVC:
		return "PVC"
	case CVC:
		return "CVC"
	}
	return "unknown mode"
}

// Phrases spoken to the players when choosing the mode.
const (
	Welcome     = "Benvenuto, quale modalità vuoi attivare?"
	InvalidMode = "Non è una modalità valida, riprova"
)

// the spoken name of each mode. two phrases choose the PVC mode
var modePhrases = []struct {
	phrase string
	mode   Mode
}{
	{phrase: "giocatore contro giocatore", mode: PVP},
	{phrase: "giocatore contro computer", mode: PVC},
	{phrase: "computer contro giocatore", mode: PVC},
	{phrase: "computer contro computer", mode: CVC},
}

// ParseMode returns the mode named by the text. The text can be the spoken
// phrase or the short name of the mode, for example "PVC".
func ParseMode(text string) (Mode, bool) {
	text = strings.ToLower(strings.TrimSpace(text))
	for _, p := range modePhrases {
		if text == p.phrase || text == strings.ToLower(p.mode.String()) {
			return p.mode, true
		}
	}
	return PVP, false
}

// AskMode welcomes the players and asks which mode they want. The players
// are asked until they name a valid mode.
func AskMode(ch movesource.Channel) (Mode, error) {
	ch.Speak(Welcome)
	ch.Cue()

	for {
		text, ok := ch.Listen()
		if !ok {
			if c, ok := ch.(movesource.Closer); ok && c.Closed() {
				return PVP, curated.Errorf(movesource.ChannelClosed)
			}
			continue // for loop
		}

		if m, ok := ParseMode(text); ok {
			logger.Logf(logger.Allow, "game", "mode %s chosen", m)
			return m, nil
		}

		ch.Speak(InvalidMode)
		ch.Cue()
	}
}

// Players returns the MoveSources for white and black for the mode. The
// oracle is not used in the PVP mode and can be nil.
func Players(mode Mode, ch movesource.Channel, replacements *movesource.Replacements,
	oracle movesource.Oracle, budget time.Duration) (white movesource.MoveSource, black movesource.MoveSource) {

	switch mode {
	case PVC:
		white = movesource.NewHuman(coords.White, ch, replacements)
		black = movesource.NewEngine(coords.Black, oracle, budget)
	case CVC:
		white = movesource.NewEngine(coords.White, oracle, budget)
		black = movesource.NewEngine(coords.Black, oracle, budget)
	default:
		white = movesource.NewHuman(coords.White, ch, replacements)
		black = movesource.NewHuman(coords.Black, ch, replacements)
	}
	return white, black
}
