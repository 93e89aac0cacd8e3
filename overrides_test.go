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

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/luneburg/chessboard/boardlink"
	"github.com/luneburg/chessboard/game"
	"github.com/luneburg/chessboard/test"
)

func TestOverrides(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	lp, err := boardlink.NewPreferences(pth)
	test.DemandSuccess(t, err)
	gp, err := game.NewPreferences(pth)
	test.DemandSuccess(t, err)

	// nothing in the environment. Setenv() makes sure the original values
	// are restored at the end of the test
	for _, k := range []string{"LUNEBURG_PORT", "LUNEBURG_ENGINE", "LUNEBURG_BUDGET"} {
		t.Setenv(k, "")
		test.DemandSuccess(t, os.Unsetenv(k))
	}
	test.DemandSuccess(t, applyOverrides(lp, gp))
	test.ExpectEquality(t, lp.Port.String(), "/dev/ttyUSB0")
	test.ExpectEquality(t, gp.EngineCommand.String(), "stockfish")

	t.Setenv("LUNEBURG_PORT", "/dev/ttyACM1")
	t.Setenv("LUNEBURG_ENGINE", "/usr/games/stockfish")
	t.Setenv("LUNEBURG_BUDGET", "500ms")
	test.DemandSuccess(t, applyOverrides(lp, gp))
	test.ExpectEquality(t, lp.Port.String(), "/dev/ttyACM1")
	test.ExpectEquality(t, gp.EngineCommand.String(), "/usr/games/stockfish")
	test.ExpectEquality(t, gp.EngineBudget.Value(), 500*time.Millisecond)

	t.Setenv("LUNEBURG_BUDGET", "soon")
	test.ExpectFailure(t, applyOverrides(lp, gp))
}
