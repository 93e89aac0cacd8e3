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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Most importantly, note how the Modes struct is initialised
// with the NewArgs() function.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	port := md.AddString("port", "", "serial port of the board")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Printf("* error: %v\n", err)
//		os.Exit(10)
//	}
//
// Modes are added with AddSubModes(). The first sub-mode in the list is the
// default mode and is selected when the first argument is not a recognised
// mode. Mode names are case insensitive.
//
//	md.AddSubModes("PLAY", "MATRIX", "RAW")
//	p, _ := md.Parse()
//	switch md.Mode() {
//	case "MATRIX":
//		md.NewMode()
//		// flags for the MATRIX mode are added here
//		p, _ = md.Parse()
//	}
//
// The Path() function returns the list of modes encountered, separated by a
// slash. It is used in help messages.
package modalflag
