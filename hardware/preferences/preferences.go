// This file is part of AsyncFIFO.
//
// AsyncFIFO is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// AsyncFIFO is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with AsyncFIFO.  If not, see <https://www.gnu.org/licenses/>.

// Package preferences collates the preference values for the FIFO and the
// harness that drives it.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/asyncfifo/hardware/clocks"
	"github.com/jetsetilly/asyncfifo/hardware/storage"
	"github.com/jetsetilly/asyncfifo/paths"
	"github.com/jetsetilly/asyncfifo/prefs"
)

// Default values.
const (
	DefaultDepth  = 8
	DefaultWidth  = 8
	DefaultBudget = 10000
)

// Preferences defines and collates all the preference values used by the FIFO
// and the harness.
type Preferences struct {
	dsk *prefs.Disk

	// geometry of the FIFO. depth must be a power of two
	Depth prefs.Int
	Width prefs.Int

	// clocks driving the write and read domains. the values are stored as
	// "period,phase" strings
	WriteClock *prefs.Generic
	ReadClock  *prefs.Generic

	// maximum number of clock edges (of either domain) in a harness run
	Budget prefs.Int

	// seed for the random number generator. a value of zero means the seed
	// is taken from the current time
	Seed prefs.Int

	writeClock clocks.Clock
	readClock  clocks.Clock
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	return NewPreferencesFromFile(paths.ResourcePath(prefs.DefaultPrefsFile))
}

// NewPreferencesFromFile is the same as NewPreferences() except that the path
// to the preferences file is specified.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.Depth.SetHookPre(func(v prefs.Value) error {
		return storage.ValidateDepth(v.(int))
	})
	p.Width.SetHookPre(func(v prefs.Value) error {
		return storage.ValidateWidth(v.(int))
	})
	p.Budget.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("budget must be positive (%d)", v.(int))
		}
		return nil
	})

	p.WriteClock = prefs.NewGeneric(
		func(s string) error {
			c, err := clocks.Parse("wclk", s)
			if err != nil {
				return err
			}
			p.writeClock = c
			return nil
		},
		func() string {
			return p.writeClock.Spec()
		},
	)

	p.ReadClock = prefs.NewGeneric(
		func(s string) error {
			c, err := clocks.Parse("rclk", s)
			if err != nil {
				return err
			}
			p.readClock = c
			return nil
		},
		func() string {
			return p.readClock.Spec()
		},
	)

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("fifo.depth", &p.Depth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("fifo.width", &p.Width)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("clocks.write", p.WriteClock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("clocks.read", p.ReadClock)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("harness.budget", &p.Budget)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("harness.seed", &p.Seed)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// default values always pass the pre hooks
	p.Depth.Set(DefaultDepth)
	p.Width.Set(DefaultWidth)
	p.Budget.Set(DefaultBudget)
	p.Seed.Set(0)
	p.writeClock = clocks.WR10
	p.readClock = clocks.RD14
}

// Clocks returns the current write and read clocks.
func (p *Preferences) Clocks() (clocks.Clock, clocks.Clock) {
	return p.writeClock, p.readClock
}

// SetClocks changes the current write and read clocks. The names of the
// clocks are normalised.
func (p *Preferences) SetClocks(wclk clocks.Clock, rclk clocks.Clock) error {
	if err := p.WriteClock.Set(wclk.Spec()); err != nil {
		return err
	}
	return p.ReadClock.Set(rclk.Spec())
}

// Load current preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
