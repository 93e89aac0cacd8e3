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

// Package game runs a game of chess on the motorized chessboard.
//
// The Orchestrator asks each player's MoveSource for a move, asks the board
// to carry it out and keeps track of the logical position. A move that the
// board refuses, or that the board does not respond to in time, is discarded
// and the same player is asked again. There is no limit to the number of
// attempts. The game has no natural end and continues until the program is
// stopped or a player can no longer be heard.
//
// The logical position is always stored from the point of view of the white
// player.
//
// The game mode decides which players are human and which are the engine. In
// the PVC mode the human plays white.
package game
