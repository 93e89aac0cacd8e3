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
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/luneburg/chessboard/boardlink"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/game"
	"github.com/luneburg/chessboard/logger"
)

// overrides are preference values taken from the environment. they are
// applied after the preferences have been loaded from disk and before the
// command line flags are parsed.
type overrides struct {
	Port   string        `env:"LUNEBURG_PORT"`
	Engine string        `env:"LUNEBURG_ENGINE"`
	Budget time.Duration `env:"LUNEBURG_BUDGET"`
}

// applyOverrides reads the environment and changes the preferences
// accordingly. the changes are not saved to disk.
func applyOverrides(lp *boardlink.Preferences, gp *game.Preferences) error {
	var ovr overrides
	if err := env.Parse(&ovr); err != nil {
		return curated.Errorf("environment: %v", err)
	}

	if ovr.Port != "" {
		if err := lp.Port.Set(ovr.Port); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "luneburg", "port set from environment: %s", ovr.Port)
	}

	if ovr.Engine != "" {
		if err := gp.EngineCommand.Set(ovr.Engine); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "luneburg", "engine set from environment: %s", ovr.Engine)
	}

	if ovr.Budget > 0 {
		if err := gp.EngineBudget.Set(ovr.Budget); err != nil {
			return err
		}
		logger.Logf(logger.Allow, "luneburg", "engine budget set from environment: %v", ovr.Budget)
	}

	return nil
}
