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

// Package environment provides the context in which a FIFO instance runs.
// Useful when more than one FIFO exists at the same time, for example when a
// test runs alongside the main instance.
package environment

import (
	"github.com/jetsetilly/asyncfifo/hardware/preferences"
	"github.com/jetsetilly/asyncfifo/random"
)

// Label is used to name the environment
type Label string

// MainInstance is the label of the main FIFO instance. This is the only
// instance that logs.
const MainInstance = Label("")

// Environment is used to provide context for a FIFO and the harness driving it.
type Environment struct {
	Label Label

	// any randomisation required by the harness should be retreived through
	// this structure
	Random *random.Random

	// the FIFO and harness preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the Environment
// type.
//
// The prefs argument can be nil, in which case a new Preferences instance will
// be created. Providing a non-nil value allows the preferences of more than
// one instance to be shared.
func NewEnvironment(label Label, prefs *preferences.Preferences) (*Environment, error) {
	env := &Environment{
		Label:  label,
		Random: random.NewRandom(nil),
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	env.Prefs = prefs

	if seed := env.Prefs.Seed.Get().(int); seed != 0 {
		env.Random.SetSeed(uint64(seed))
	}

	return env, nil
}

// Normalise ensures the environment is in an known default state. Useful for
// testing where the initial state must be the same for every run.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainInstance returns true if the environment is intended for the main
// FIFO instance in the program.
func (env *Environment) IsMainInstance() bool {
	return env.Label == MainInstance
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.IsMainInstance()
}
