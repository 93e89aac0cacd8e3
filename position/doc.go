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

// Package position holds the engine's view of the game. It is a 10x12 mailbox
// board as described in the coords package, together with the castling rights
// of both sides, the en-passant square and the square a castling king passed
// over.
//
// A Position is always "from the point of view of the side to move" when
// passed to Move(). Pieces belonging to the side to move are uppercase and the
// side to move plays up the board (towards index 21). Move() returns the
// position from the point of view of the opponent, which is to say it is
// rotated. The Rotate() function turns the board around without making a move.
//
// Position values are immutable. Move() and Rotate() return new values.
//
// Move() does not check whether the move is legal. Legality is the
// responsibility of the physical board (for human moves) and the engine.
package position
