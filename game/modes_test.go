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
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/game"
	"github.com/luneburg/chessboard/movesource"
	"github.com/luneburg/chessboard/test"
)

func TestParseMode(t *testing.T) {
	for text, mode := range map[string]game.Mode{
		"giocatore contro giocatore": game.PVP,
		"Giocatore contro computer":  game.PVC,
		"computer contro giocatore":  game.PVC,
		" computer contro computer ": game.CVC,
		"pvc":                        game.PVC,
		"CVC":                        game.CVC,
	} {
		m, ok := game.ParseMode(text)
		test.ExpectSuccess(t, ok, text)
		test.ExpectEquality(t, m, mode, text)
	}

	_, ok := game.ParseMode("computer contro")
	test.ExpectFailure(t, ok)
}

func TestAskMode(t *testing.T) {
	ch := &listener{heard: []string{"scacchi", "computer contro giocatore"}}
	m, err := game.AskMode(ch)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m, game.PVC)

	want := []string{game.Welcome, game.InvalidMode}
	if diff := cmp.Diff(want, ch.spoken); diff != "" {
		t.Errorf("unexpected speech (-want +got):\n%s", diff)
	}

	_, err = game.AskMode(&listener{})
	test.ExpectSuccess(t, curated.Is(err, movesource.ChannelClosed))
}

func TestPlayers(t *testing.T) {
	oracle := fixedOracle{}

	w, b := game.Players(game.PVP, &listener{}, nil, nil, time.Second)
	test.ExpectEquality(t, w.String(), "human white")
	test.ExpectEquality(t, b.String(), "human black")

	w, b = game.Players(game.PVC, &listener{}, nil, oracle, time.Second)
	test.ExpectEquality(t, w.String(), "human white")
	test.ExpectEquality(t, b.String(), "engine black")

	w, b = game.Players(game.CVC, nil, nil, oracle, time.Second)
	test.ExpectEquality(t, w.String(), "engine white")
	test.ExpectEquality(t, b.String(), "engine black")
}
