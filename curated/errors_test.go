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

package curated_test

import (
	"errors"
	"io"
	"testing"

	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/test"
)

const testPattern = "test: %s"
const otherPattern = "other: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("database: cannot open (%s)", "replacements")
	test.ExpectEquality(t, e.Error(), "database: cannot open (replacements)")

	f := curated.Errorf("database: %v", e)
	test.ExpectEquality(t, f.Error(), "database: cannot open (replacements)")

	g := curated.Errorf("game: %v", f)
	test.ExpectEquality(t, g.Error(), "game: database: cannot open (replacements)")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, otherPattern))

	f := curated.Errorf(otherPattern, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, otherPattern))

	test.ExpectFailure(t, curated.IsAny(io.EOF))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(io.EOF, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(otherPattern, io.ErrUnexpectedEOF)
	test.ExpectSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
	test.ExpectFailure(t, errors.Is(e, io.EOF))
}
