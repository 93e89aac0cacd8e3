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

// Package boardlink implements the line oriented serial protocol spoken by the
// chessboard firmware.
//
// Commands sent to the firmware are single lines of ASCII:
//
//	M<piece><file><rank>0	move the named piece to the square
//	R<sf><sr><df><dr>	move whatever is on the source square
//	X			report the board matrix
//
// Lines from the firmware that are part of the protocol are tagged with the
// "[LOG]" prefix. Untagged lines are debugging output from the firmware and
// are ignored. The tagged lines of interest are:
//
//	[LOG] READY			the firmware has finished initialising
//	[LOG] MP sx sy dx dy		a piece has been moved
//	[LOG] ERR_WRONG_MOVE		no piece of that kind can make the move
//	[LOG] ERR_DESTINATION_OCCUPIED	the destination square is not empty
//	[LOG] ERR_LOCATION_EMPTY	the source square of a raw move is empty
//	[LOG] QE			the movement queue is empty
//
// An MP record with a negative coordinate is a move to or from the graveyard
// beside the board. These are performed by the firmware when a piece is
// captured and are not moves in the game.
//
// The Link type owns the serial port. Only one transaction is outstanding at
// any time. Every read from the port is bounded by a short read timeout and
// every transaction is bounded by a longer timeout supplied by the caller.
//
// Raw moves are sent without waiting for a response. The firmware does not
// acknowledge them until the movement queue is empty and even then it does
// not say whether the move was performed.
package boardlink
