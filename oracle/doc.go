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

// Package oracle connects to a chess engine that speaks the Universal Chess
// Interface protocol. The UCI type satisfies the movesource.Oracle interface.
//
// Positions and moves are exchanged with the rest of the program in the
// 120-square mailbox layout of the position package. Conversion to and from
// the representation used by the UCI client happens at the boundary of the
// package, through the FEN of the position.
package oracle
