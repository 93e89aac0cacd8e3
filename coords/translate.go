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

import "fmt"

// ToEngineSquare returns the engine square index for the physical square.
func ToEngineSquare(file, rank int) int {
	return 98 - file - (10 * rank)
}

// ToPhysical returns the physical square for the engine square index.
func ToPhysical(index int) (file int, rank int) {
	d := 98 - index
	return d % 10, d / 10
}

// ValidSquare returns true if the engine square index is inside the playing
// area of the mailbox board.
func ValidSquare(index int) bool {
	row := index / 10
	col := index % 10
	return row >= 2 && row <= 9 && col >= 1 && col <= 8
}

// SquareName returns the algebraic name of an engine square index, as seen
// from the white side of the board.
func SquareName(index int) string {
	if !ValidSquare(index) {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+index%10-1, 10-index/10)
}

// SquareIndex is the inverse of SquareName. It returns false if the name is
// not a square on the board.
func SquareIndex(name string) (int, bool) {
	if len(name) != 2 {
		return 0, false
	}
	f := int(name[0]) - 'a'
	r := int(name[1]) - '1'
	if !onBoard(f) || !onBoard(r) {
		return 0, false
	}
	return 91 + f - (10 * r), true
}

// SpokenSquare returns the name of a physical square as a player would say
// it. Physical files are reversed with respect to the spoken files.
func SpokenSquare(file, rank int) string {
	if !onBoard(file) || !onBoard(rank) {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+(7-file), rank+1)
}

// PhysicalToEngine translates a raw physical move to an engine move.
func PhysicalToEngine(m RawMove) EngineMove {
	return EngineMove{
		From: ToEngineSquare(m.SrcFile, m.SrcRank),
		To:   ToEngineSquare(m.DstFile, m.DstRank),
	}
}

// EngineToPhysical translates an engine move to a raw physical move. If the
// move was computed from the rotated point of view then the Rotated
// perspective must be used.
func EngineToPhysical(m EngineMove, perspective Perspective) RawMove {
	var r RawMove
	r.SrcFile, r.SrcRank = ToPhysical(m.From)
	r.DstFile, r.DstRank = ToPhysical(m.To)
	if perspective == Rotated {
		r = r.Rotate()
	}
	return r
}
