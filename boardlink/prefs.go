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

import (
	"time"

	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/prefs"
)

// Preferences for the serial link and the protocol timeouts.
type Preferences struct {
	dsk *prefs.Disk

	Port        prefs.String
	Baud        prefs.Int
	ReadTimeout prefs.Duration

	ReadyTimeout prefs.Duration
	MoveTimeout  prefs.Duration
	DrainTimeout prefs.Duration
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

	err = p.dsk.Add("serial.port", &p.Port)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("serial.baud", &p.Baud)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("serial.readTimeout", &p.ReadTimeout)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("link.readyTimeout", &p.ReadyTimeout)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("link.moveTimeout", &p.MoveTimeout)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("link.drainTimeout", &p.DrainTimeout)
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
	_ = p.Port.Set("/dev/ttyUSB0")
	_ = p.Baud.Set(115200)
	_ = p.ReadTimeout.Set(250 * time.Millisecond)
	_ = p.ReadyTimeout.Set(15 * time.Second)
	_ = p.MoveTimeout.Set(3 * time.Second)
	_ = p.DrainTimeout.Set(30 * time.Second)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
