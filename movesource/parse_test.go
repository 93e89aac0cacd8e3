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
	"testing"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/movesource"
	"github.com/luneburg/chessboard/test"
)

func TestParse(t *testing.T) {
	m, err := movesource.Parse("pedone in B4", coords.White)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m, coords.NamedMove{Piece: coords.Piece{Kind: coords.Pawn, Side: coords.White}, File: 6, Rank: 3})
	test.ExpectEquality(t, m.Piece.FirmwareCode(), byte('P'))

	m, err = movesource.Parse("pedone in B4", coords.Black)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Piece.FirmwareCode(), byte('p'))
	test.ExpectEquality(t, m.File, 6)
	test.ExpectEquality(t, m.Rank, 3)
}

func TestParseVocabulary(t *testing.T) {
	tests := []struct {
		text string
		kind coords.PieceKind
		file int
		rank int
	}{
		{"cavallo in f3", coords.Knight, 2, 2},
		{"Cavalli in C6", coords.Knight, 5, 5},
		{"alfiere in c4", coords.Bishop, 5, 3},
		{"torre in a1", coords.Rook, 7, 0},
		{"re in h8", coords.King, 0, 7},
		{"regina in d1", coords.Queen, 4, 0},
		{"  regina   in  d1 ", coords.Queen, 4, 0},

		// only the first two characters of the square are considered
		{"pedone in e4.", coords.Pawn, 3, 3},
	}

	for _, tt := range tests {
		m, err := movesource.Parse(tt.text, coords.White)
		if !test.ExpectSuccess(t, err, tt.text) {
			continue
		}
		test.ExpectEquality(t, m.Piece.Kind, tt.kind, tt.text)
		test.ExpectEquality(t, m.File, tt.file, tt.text)
		test.ExpectEquality(t, m.Rank, tt.rank, tt.text)
	}
}

func TestParseFailures(t *testing.T) {
	for _, s := range []string{
		"pedone B4",
		"pedone in Z9",
		"pedone in b9",
		"pedone in b0",
		"pedone in i4",
		"pedone in b",
		"pedone su b4",
		"fante in b4",
		"pedone in b4 adesso",
		"",
	} {
		_, err := movesource.Parse(s, coords.White)
		test.ExpectSuccess(t, curated.Is(err, movesource.ParseError), s)
	}
}
