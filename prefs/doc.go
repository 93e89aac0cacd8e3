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

// Package prefs facilitates the storage of preferential values in the
// Luneburg system. It is a key/value system and is used for example, by the
// boardlink package to remember which serial port the board is attached to.
//
// Values are registered with a Disk instance with the Add() function. The key
// should be namespaced by the package that owns the value. For example:
//
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("boardlink.port", &port)
//	dsk.Load(true)
//
// Many Disk instances can point to the same file on disk. Saving a Disk
// instance only changes the entries it knows about. Entries belonging to other
// Disk instances are preserved.
//
// The file is a plain text file with one entry per line:
//
//	boardlink.port :: /dev/ttyACM0
//
// Values in the file are always strings. The type of the preference decides
// how the string is converted. The supported types are Bool, String, Int,
// Float and Duration.
package prefs
