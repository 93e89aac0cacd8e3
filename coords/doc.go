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

// Package coords translates between the two coordinate systems used by the
// chessboard controller.
//
// The physical board addresses squares by (file, rank) pairs, each in the
// range 0 to 7. File 0 is the h-file as it would be spoken by a player, so the
// files are reversed with respect to algebraic notation. Rank 0 is the rank
// nearest the white player.
//
// The engine addresses squares with a single index into a 10x12 "mailbox"
// board. The playing area occupies columns 1 to 8 of rows 2 to 9 and the
// index of a1 is 91, the index of h8 is 28. The relationship between the two
// systems is the affine map:
//
//	index = 98 - file - (10 * rank)
//
// When a move has been computed from the rotated point of view used for the
// black player, every physical coordinate is additionally mirrored (7 - c).
// Which translation is wanted is always stated explicitly with a Perspective
// value. The position type never carries that information.
//
// Pieces are identified by a fixed table that maps each PieceKind to the
// letter used by the firmware protocol (Italian initials) and the letter used
// by the engine (English initials). Letter case indicates the side.
package coords
