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

package movesource_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/movesource"
	"github.com/luneburg/chessboard/position"
	"github.com/luneburg/chessboard/test"
)

// scriptedChannel records everything said to the player and replies with
// prepared text.
type scriptedChannel struct {
	heard   []string
	answers []string
	events  []string
}

func (c *scriptedChannel) Speak(text string) {
	c.events = append(c.events, "speak: "+text)
}

func (c *scriptedChannel) Cue() {
	c.events = append(c.events, "cue")
}

func (c *scriptedChannel) Listen() (string, bool) {
	if len(c.heard) == 0 {
		return "", false
	}
	h := c.heard[0]
	c.heard = c.heard[1:]
	c.events = append(c.events, "listen: "+h)
	return h, h != ""
}

func (c *scriptedChannel) Prompt(question string) string {
	if len(c.answers) == 0 {
		return ""
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	c.events = append(c.events, "prompt: "+a)
	return a
}

func (c *scriptedChannel) Closed() bool {
	return len(c.heard) == 0
}

func TestHumanFirstAttempt(t *testing.T) {
	ch := &scriptedChannel{heard: []string{"pedone in b4"}}
	h := movesource.NewHuman(coords.White, ch, nil)

	m, err := h.NextMove(position.Initial())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.(coords.NamedMove), coords.NamedMove{Piece: coords.Piece{Kind: coords.Pawn, Side: coords.White}, File: 6, Rank: 3})

	want := []string{
		"speak: " + movesource.TurnWhite,
		"cue",
		"listen: pedone in b4",
	}
	if diff := cmp.Diff(want, ch.events); diff != "" {
		t.Errorf("unexpected conversation (-want +got):\n%s", diff)
	}
}

func TestHumanRetries(t *testing.T) {
	r, err := movesource.LoadReplacements(filepath.Join(t.TempDir(), "replacements"))
	test.DemandSuccess(t, err)

	ch := &scriptedChannel{
		heard:   []string{"", "pedoni in c5", "pedoni in c5"},
		answers: []string{"pedoni,pedone"},
	}
	h := movesource.NewHuman(coords.Black, ch, r)

	m, err := h.NextMove(position.Initial())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.(coords.NamedMove), coords.NamedMove{Piece: coords.Piece{Kind: coords.Pawn, Side: coords.Black}, File: 5, Rank: 4})

	want := []string{
		"speak: " + movesource.TurnBlack,
		"cue",
		"listen: ",
		"listen: pedoni in c5",
		"speak: " + movesource.InvalidMove,
		"prompt: pedoni,pedone",
		"cue",
		"listen: pedoni in c5",
	}
	if diff := cmp.Diff(want, ch.events); diff != "" {
		t.Errorf("unexpected conversation (-want +got):\n%s", diff)
	}

	// the new rule was saved
	want2 := []movesource.Rule{{Phrase: "pedoni", Correction: "pedone"}}
	if diff := cmp.Diff(want2, r.Rules()); diff != "" {
		t.Errorf("unexpected rules (-want +got):\n%s", diff)
	}
}

func TestHumanMalformedReplacement(t *testing.T) {
	r, err := movesource.LoadReplacements(filepath.Join(t.TempDir(), "replacements"))
	test.DemandSuccess(t, err)

	ch := &scriptedChannel{
		heard:   []string{"pedone su b4", "pedone in b4"},
		answers: []string{"no comma here"},
	}
	h := movesource.NewHuman(coords.White, ch, r)

	_, err = h.NextMove(position.Initial())
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(r.Rules()), 0)
}

func TestHumanChannelClosed(t *testing.T) {
	ch := &scriptedChannel{heard: []string{"what?"}}
	h := movesource.NewHuman(coords.White, ch, nil)

	_, err := h.NextMove(position.Initial())
	test.ExpectSuccess(t, curated.Is(err, movesource.ChannelClosed), err)
}

// fixedOracle always returns the same move.
type fixedOracle struct {
	move coords.EngineMove
	err  error

	pos    position.Position
	side   coords.Side
	budget time.Duration
}

func (o *fixedOracle) Search(pos position.Position, side coords.Side, budget time.Duration) (coords.EngineMove, int, error) {
	o.pos = pos
	o.side = side
	o.budget = budget
	return o.move, 10, o.err
}

func TestEngineWhite(t *testing.T) {
	o := &fixedOracle{move: coords.EngineMove{From: 97, To: 76}}
	e := movesource.NewEngine(coords.White, o, 2*time.Second)

	pos := position.Initial()
	m, err := e.NextMove(pos)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.(coords.RawMove), coords.RawMove{SrcFile: 1, SrcRank: 0, DstFile: 2, DstRank: 2})

	test.ExpectEquality(t, o.pos, pos)
	test.ExpectEquality(t, o.side, coords.White)
	test.ExpectEquality(t, o.budget, 2*time.Second)
}

func TestEngineBlack(t *testing.T) {
	o := &fixedOracle{move: coords.EngineMove{From: 92, To: 73}}
	e := movesource.NewEngine(coords.Black, o, time.Second)

	pos := position.Initial().Play(coords.White, coords.EngineMove{From: 85, To: 65})
	m, err := e.NextMove(pos)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.(coords.RawMove), coords.RawMove{SrcFile: 1, SrcRank: 7, DstFile: 2, DstRank: 5})

	// the oracle sees the position from black's point of view but the
	// position passed to the engine is unchanged
	test.ExpectEquality(t, o.pos, pos.Rotate())
	test.ExpectEquality(t, o.side, coords.Black)
	test.ExpectEquality(t, pos, position.Initial().Play(coords.White, coords.EngineMove{From: 85, To: 65}))
}

func TestEngineError(t *testing.T) {
	o := &fixedOracle{err: curated.Errorf("no engine")}
	e := movesource.NewEngine(coords.White, o, time.Second)
	_, err := e.NextMove(position.Initial())
	test.ExpectSuccess(t, curated.Is(err, movesource.OracleError), err)
}

func TestInterface(t *testing.T) {
	var _ movesource.MoveSource = movesource.NewHuman(coords.White, &scriptedChannel{}, nil)
	var _ movesource.MoveSource = movesource.NewEngine(coords.White, &fixedOracle{}, time.Second)
}
