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

package coords

// Side is one of the two players.
type Side int

// List of valid Side values.
const (
	White Side = iota
	Black
)

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "unknown side"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// PieceKind is the class of a chess piece, independent of side.
type PieceKind int

// List of valid PieceKind values.
const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	King
	Queen
)

// pieceTable is the single source of letters for every piece kind. firmware
// letters are the initials of the Italian names and are used on the serial
// line. engine letters are used by the position type and in FEN strings.
var pieceTable = [...]struct {
	kind     PieceKind
	firmware byte
	engine   byte
	name     string
}{
	{kind: Pawn, firmware: 'P', engine: 'P', name: "pawn"},
	{kind: Knight, firmware: 'C', engine: 'N', name: "knight"},
	{kind: Bishop, firmware: 'A', engine: 'B', name: "bishop"},
	{kind: Rook, firmware: 'T', engine: 'R', name: "rook"},
	{kind: King, firmware: 'R', engine: 'K', name: "king"},
	{kind: Queen, firmware: 'G', engine: 'Q', name: "queen"},
}

func (k PieceKind) String() string {
	if k < 0 || int(k) >= len(pieceTable) {
		return "unknown piece"
	}
	return pieceTable[k].name
}

// Piece is a PieceKind belonging to a Side.
type Piece struct {
	Kind PieceKind
	Side Side
}

func (p Piece) String() string {
	return p.Side.String() + " " + p.Kind.String()
}

func caseFor(s Side, c byte) byte {
	if s == Black {
		return c - 'A' + 'a'
	}
	return c
}

// FirmwareCode returns the letter used by the firmware protocol. Uppercase for
// white pieces, lowercase for black pieces.
func (p Piece) FirmwareCode() byte {
	return caseFor(p.Side, pieceTable[p.Kind].firmware)
}

// EngineLetter returns the letter used by the engine. Uppercase for white
// pieces, lowercase for black pieces.
func (p Piece) EngineLetter() byte {
	return caseFor(p.Side, pieceTable[p.Kind].engine)
}

func pieceFromLetter(c byte, engine bool) (Piece, bool) {
	side := White
	if c >= 'a' && c <= 'z' {
		side = Black
		c = c - 'a' + 'A'
	}
	for _, e := range pieceTable {
		l := e.firmware
		if engine {
			l = e.engine
		}
		if l == c {
			return Piece{Kind: e.kind, Side: side}, true
		}
	}
	return Piece{}, false
}

// PieceFromFirmwareCode is the inverse of Piece.FirmwareCode().
func PieceFromFirmwareCode(c byte) (Piece, bool) {
	return pieceFromLetter(c, false)
}

// PieceFromEngineLetter is the inverse of Piece.EngineLetter().
func PieceFromEngineLetter(c byte) (Piece, bool) {
	return pieceFromLetter(c, true)
}

// FirmwareToEngineLetter converts a letter from a firmware board matrix to the
// equivalent engine letter. Empty squares (a space) are converted to '.' which
// is how the engine represents an empty square. Unrecognised letters are
// returned unchanged.
func FirmwareToEngineLetter(c byte) byte {
	if c == ' ' {
		return '.'
	}
	if p, ok := PieceFromFirmwareCode(c); ok {
		return p.EngineLetter()
	}
	return c
}
