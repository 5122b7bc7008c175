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

package environment_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/preferences"
	"github.com/jetsetilly/asyncfifo/logger"
	"github.com/jetsetilly/asyncfifo/test"
)

func TestPermission(t *testing.T) {
	prf, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	mainEnv, err := environment.NewEnvironment(environment.MainInstance, prf)
	test.DemandSuccess(t, err)
	other, err := environment.NewEnvironment("test", prf)
	test.DemandSuccess(t, err)

	var perm logger.Permission
	perm = mainEnv
	test.ExpectSuccess(t, perm.AllowLogging())
	perm = other
	test.ExpectFailure(t, perm.AllowLogging())
}

func TestNormalise(t *testing.T) {
	prf, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prf.Depth.Set(64))

	env, err := environment.NewEnvironment("test", prf)
	test.DemandSuccess(t, err)
	env.Normalise()

	test.ExpectSuccess(t, env.Random.ZeroSeed)
	test.ExpectEquality(t, env.Prefs.Depth.Get().(int), preferences.DefaultDepth)
}
