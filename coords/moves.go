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

// Perspective says whether an engine move was computed from the direct (white)
// point of view or from the rotated view used for the black player.
type Perspective int

// List of valid Perspective values.
const (
	Direct Perspective = iota
	Rotated
)

func (p Perspective) String() string {
	if p == Rotated {
		return "rotated"
	}
	return "direct"
}

// Move is a move as understood by the physical board. It is implemented by
// NamedMove and RawMove only.
type Move interface {
	fmt.Stringer
	isPhysicalMove()
}

// NamedMove is a destination square and the piece that should be moved
// there. The firmware resolves which piece of that kind is able to make the
// move.
type NamedMove struct {
	Piece Piece
	File  int
	Rank  int
}

func (NamedMove) isPhysicalMove() {}

func (m NamedMove) String() string {
	return fmt.Sprintf("%c in %s", m.Piece.FirmwareCode(), SpokenSquare(m.File, m.Rank))
}

// RawMove is a move fully specified by its source and destination squares.
type RawMove struct {
	SrcFile int
	SrcRank int
	DstFile int
	DstRank int
}

func (RawMove) isPhysicalMove() {}

func (m RawMove) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", m.SrcFile, m.SrcRank, m.DstFile, m.DstRank)
}

func onBoard(c int) bool {
	return c >= 0 && c <= 7
}

// Valid returns false if any coordinate of the move is outside the board. The
// firmware uses negative coordinates for moves to and from the graveyard.
func (m RawMove) Valid() bool {
	return onBoard(m.SrcFile) && onBoard(m.SrcRank) && onBoard(m.DstFile) && onBoard(m.DstRank)
}

// Rotate mirrors every coordinate of the move (7 - c). Applying Rotate twice
// returns the original move.
func (m RawMove) Rotate() RawMove {
	return RawMove{
		SrcFile: 7 - m.SrcFile,
		SrcRank: 7 - m.SrcRank,
		DstFile: 7 - m.DstFile,
		DstRank: 7 - m.DstRank,
	}
}

// EngineMove is a pair of square indices in the engine's mailbox numbering.
type EngineMove struct {
	From int
	To   int
}

func (m EngineMove) String() string {
	return fmt.Sprintf("%s%s", SquareName(m.From), SquareName(m.To))
}

// Rotate returns the same move as seen from the other side of the board.
func (m EngineMove) Rotate() EngineMove {
	return EngineMove{From: 119 - m.From, To: 119 - m.To}
}
