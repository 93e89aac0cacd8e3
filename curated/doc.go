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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function. Errorf() takes a pattern and placeholder values in the
// same way as fmt.Errorf() but the pattern is remembered so that the error can
// be identified later, without resorting to string matching on the formatted
// message.
//
// Sentinel errors are expressed as exported pattern constants. For example,
// the boardlink package declares:
//
//	const IllegalMove = "boardlink: illegal move (%s)"
//
// and a caller can test for it with:
//
//	if curated.Is(err, boardlink.IllegalMove) {
//		// ask for another move
//	}
//
// The Has() function is similar to Is() but searches the entire error chain.
// Wrapping is done by using a curated error as a placeholder value:
//
//	e := curated.Errorf(boardlink.Timeout, "QE")
//	f := curated.Errorf("game: %v", e)
//
//	curated.Is(f, boardlink.Timeout)  // false
//	curated.Has(f, boardlink.Timeout) // true
//
// The Error() implementation normalises the message so that duplicate
// adjacent parts of the chain are removed. Parts are the sub-strings separated
// by ': '. This removes the worry of whether or not to add a package prefix
// when wrapping an error that already has the same prefix:
//
//	e := curated.Errorf("database: cannot open (%s)", "replacements")
//	f := curated.Errorf("database: %v", e)
//
//	fmt.Println(f) // database: cannot open (replacements)
//
// Curated errors also implement Unwrap() so that the errors package in the
// standard library can see through to any non-curated error used as a
// placeholder value (an *os.PathError for instance).
package curated
