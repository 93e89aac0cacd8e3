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

// Package movesource provides the two ways a player can decide on a move.
//
// The Human type asks a person for a move through a Channel. A Channel is a
// way of speaking to the player and listening to what they say. The text
// heard from the player is normalised with a table of Replacements, which
// corrects words commonly misheard by the speech recognition service, and
// then parsed. A move must be spoken in Italian in the form:
//
//	<piece> in <square>
//
// for example, "pedone in b4" or "cavallo in f3". If the text cannot be
// parsed then the player is told so and the operator is asked, through the
// same Channel, for a new replacement rule. The player is then asked again.
// There is no limit to the number of attempts.
//
// The Engine type asks an Oracle for the best move in the current position
// and translates it to a physical move. The Engine never changes the position
// it is given.
package movesource
