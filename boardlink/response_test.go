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

package boardlink

import (
	"testing"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/test"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		line string
		kind responseKind
	}{
		{"[LOG] READY", respReady},
		{"[LOG] ERR_WRONG_MOVE", respWrongMove},
		{"[LOG] ERR_DESTINATION_OCCUPIED", respDestinationOccupied},
		{"[LOG] ERR_LOCATION_EMPTY", respLocationEmpty},
		{"[LOG] QE", respQueueEmpty},
		{"[LOG] QE ", respQueueEmpty},
		{"[LOG] MP 1 2 3 4", respMovePerformed},

		// untagged lines are firmware debugging output
		{"READY", respIrrelevant},
		{"Cavallo valido", respIrrelevant},
		{"", respIrrelevant},

		// tagged lines that aren't part of the protocol
		{"[LOG]", respIrrelevant},
		{"[LOG] SOMETHING", respIrrelevant},
		{"[QUEUE] avgUsage=1", respIrrelevant},

		// malformed move records are noise
		{"[LOG] MP 1 2 3", respIrrelevant},
		{"[LOG] MP 1 2 3 4 5", respIrrelevant},
		{"[LOG] MP a b c d", respIrrelevant},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, decode(tt.line).kind, tt.kind, tt.line)
	}
}

func TestDecodeMove(t *testing.T) {
	r := decode("[LOG] MP 1 2 3 4")
	test.ExpectEquality(t, r.move, coords.RawMove{SrcFile: 1, SrcRank: 2, DstFile: 3, DstRank: 4})

	r = decode("[LOG] MP -1 0 0 0")
	test.ExpectEquality(t, r.kind, respMovePerformed)
	test.ExpectFailure(t, r.move.Valid())
}

func TestParseMatrix(t *testing.T) {
	var blank [64]byte
	for i := range blank {
		blank[i] = ' '
	}

	// an empty board is 64 spaces and none of them must be lost
	m, err := parseMatrix("[LOG] " + string(blank[:]))
	test.DemandSuccess(t, err)
	for x := range m {
		for y := range m[x] {
			test.ExpectEquality(t, m[x][y], byte(' '), x, y)
		}
	}

	// the log tag is optional
	_, err = parseMatrix(string(blank[:]))
	test.ExpectSuccess(t, err)

	// the first character is file 0 rank 7 and the ninth is file 1 rank 7
	s := []byte(string(blank[:]))
	s[0] = 'T'
	s[8] = 'c'
	s[63] = 'G'
	m, err = parseMatrix("[LOG] " + string(s) + "\r")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m[0][7], byte('T'))
	test.ExpectEquality(t, m[1][7], byte('c'))
	test.ExpectEquality(t, m[7][0], byte('G'))
}
