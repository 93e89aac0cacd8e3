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

package journal_test

import (
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/journal"
	"github.com/luneburg/chessboard/position"
	"github.com/luneburg/chessboard/test"
)

func openTemp(t *testing.T) (*journal.Journal, string) {
	t.Helper()
	pth := filepath.Join(t.TempDir(), "sub", journal.DefaultJournalFile)
	j, err := journal.Open(pth)
	test.DemandSuccess(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j, pth
}

func TestGameName(t *testing.T) {
	j, _ := openTemp(t)
	test.ExpectEquality(t, len(strings.Split(j.Game(), "-")), 2)
	test.ExpectEquality(t, j.NewGame(), j.Game())
}

func TestRecord(t *testing.T) {
	j, pth := openTemp(t)

	pawn := coords.NamedMove{Piece: coords.Piece{Kind: coords.Pawn, Side: coords.White}, File: 6, Rank: 3}
	b2b4 := coords.PhysicalToEngine(coords.RawMove{SrcFile: 6, SrcRank: 1, DstFile: 6, DstRank: 3})
	pos := position.Initial().Play(coords.White, b2b4)

	test.DemandSuccess(t, j.Record(1, coords.White, pawn, b2b4, pos.FEN(coords.Black)))

	raw := coords.RawMove{SrcFile: 3, SrcRank: 6, DstFile: 3, DstRank: 4}
	e7e5 := coords.PhysicalToEngine(raw)
	pos = pos.Play(coords.Black, e7e5)
	test.DemandSuccess(t, j.Record(2, coords.Black, raw, e7e5, pos.FEN(coords.White)))

	// the same ply cannot be recorded twice
	err := j.Record(2, coords.Black, raw, e7e5, pos.FEN(coords.White))
	test.ExpectSuccess(t, curated.Is(err, journal.DuplicatePly))

	plies, err := j.Plies(j.Game())
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(plies), 2)

	got := []string{}
	for _, p := range plies {
		got = append(got, strings.Join([]string{p.Side, p.Requested, p.Played}, " "))
	}
	want := []string{
		"white " + pawn.String() + " b2b4",
		"black " + raw.String() + " e7e5",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected plies (-want +got):\n%s", diff)
	}
	test.ExpectEquality(t, plies[1].FEN, pos.FEN(coords.White))
	test.ExpectEquality(t, plies[0].Recorded.IsZero(), false)

	// the journal survives being reopened
	first := j.Game()
	test.DemandSuccess(t, j.Close())

	k, err := journal.Open(pth)
	test.DemandSuccess(t, err)
	defer k.Close()

	second := k.Game()
	test.DemandSuccess(t, k.Record(1, coords.White, pawn, b2b4, ""))

	games, err := k.Games()
	test.DemandSuccess(t, err)
	sort.Strings(games)
	want = []string{first, second}
	sort.Strings(want)
	if diff := cmp.Diff(want, games); diff != "" {
		t.Errorf("unexpected games (-want +got):\n%s", diff)
	}
}

func TestUnknownGame(t *testing.T) {
	j, _ := openTemp(t)
	_, err := j.Plies("no-game")
	test.ExpectSuccess(t, curated.Is(err, journal.UnknownGame))
}
