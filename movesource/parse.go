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
)

// the words used for each piece kind.
var vocabulary = map[string]coords.PieceKind{
	"pedone":  coords.Pawn,
	"cavallo": coords.Knight,
	"cavalli": coords.Knight,
	"alfiere": coords.Bishop,
	"torre":   coords.Rook,
	"re":      coords.King,
	"regina":  coords.Queen,
}

// Parse the text spoken by a player into a move for the side. The text should
// be normalised with Replacements.Apply() before calling this function.
func Parse(text string, side coords.Side) (coords.NamedMove, error) {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) != 3 {
		return coords.NamedMove{}, curated.Errorf(ParseError, text)
	}

	if tokens[1] != "in" {
		return coords.NamedMove{}, curated.Errorf(ParseError, text)
	}

	kind, ok := vocabulary[tokens[0]]
	if !ok {
		return coords.NamedMove{}, curated.Errorf(ParseError, text)
	}

	sq := tokens[2]
	if len(sq) < 2 {
		return coords.NamedMove{}, curated.Errorf(ParseError, text)
	}

	// spoken files are reversed with respect to physical files
	f := int(sq[0]) - 'a'
	if f < 0 || f > 7 {
		return coords.NamedMove{}, curated.Errorf(ParseError, text)
	}

	r := int(sq[1]) - '1'
	if r < 0 || r > 7 {
		return coords.NamedMove{}, curated.Errorf(ParseError, text)
	}

	return coords.NamedMove{
		Piece: coords.Piece{Kind: kind, Side: side},
		File:  7 - f,
		Rank:  r,
	}, nil
}
