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

package game

import (
	"time"

	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/prefs"
)

// Preferences for the game and its players.
type Preferences struct {
	dsk *prefs.Disk

	// path to an executable that speaks the UCI protocol
	EngineCommand prefs.String

	// amount of time the engine is given for each move
	EngineBudget prefs.Duration

	// compare the board matrix with the logical position after every move
	Verify prefs.Bool

	// play the ready cue after every prompt
	Cues prefs.Bool

	// record every move in the journal
	Journal prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file at the path.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("engine.command", &p.EngineCommand)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("engine.budget", &p.EngineBudget)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("game.verify", &p.Verify)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("voice.cues", &p.Cues)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("journal.enabled", &p.Journal)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	_ = p.EngineCommand.Set("stockfish")
	_ = p.EngineBudget.Set(2 * time.Second)
	_ = p.Verify.Set(false)
	_ = p.Cues.Set(true)
	_ = p.Journal.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
