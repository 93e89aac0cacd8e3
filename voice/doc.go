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

// Package voice is how the program talks to the people at the chessboard.
//
// The Console type implements the movesource.Channel interface. Text is
// spoken by playing a prerecorded clip if one is available and by printing
// it otherwise. What the player says is read from the console one line at a
// time, which allows the output of an external speech recognition service to
// be piped into the program.
//
// Clips are found in a cache directory and are named by the MD5 hash of the
// text they contain. Both MP3 and WAV files are supported. The cue that tells
// the player to speak is the file ready.mp3 (or ready.wav) in the same
// directory.
package voice
