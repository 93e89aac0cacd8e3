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

// Package paths contains functions to prepare paths for Luneburg resources.
//
// The ResourcePath() function modifies the supplied resource string such that
// it is prepended with the appropriate config directory. If a directory called
// ".luneburg" exists in the current working directory then that is used.
// Otherwise the "luneburg" directory in the user's config directory is used
// (the location of which is operating system dependent, see
// os.UserConfigDir()).
//
// Note that ResourcePath() does not create any directories. That is the
// responsibility of the caller, which will usually be a package that writes a
// file to the path. The database and prefs packages do this.
package paths
