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

package boardlink

// Sentinal error patterns.
const (
	Timeout             = "boardlink: timeout waiting for %s"
	IllegalMove         = "boardlink: illegal move (%v)"
	DestinationOccupied = "boardlink: destination occupied (%v)"
	ProtocolError       = "boardlink: unexpected response (%s)"
	NoMatrix            = "boardlink: no matrix received"
	CorruptMatrix       = "boardlink: corrupt matrix (%d characters)"
	SerialError         = "boardlink: serial: %v"
)
