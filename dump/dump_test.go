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

package dump_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/asyncfifo/dump"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/hardware/preferences"
	"github.com/jetsetilly/asyncfifo/test"
)

func newFIFO(t *testing.T) *fifo.FIFO {
	t.Helper()
	prf, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	env, err := environment.NewEnvironment("test", prf)
	test.DemandSuccess(t, err)
	f, err := fifo.New(env, 4, 8)
	test.DemandSuccess(t, err)
	return f
}

func TestStructure(t *testing.T) {
	f := newFIFO(t)
	test.ExpectEquality(t, f.WriteDomain.Write(0x5a), fifo.Accepted)

	var b strings.Builder
	dump.Structure(&b, f)
	test.ExpectSuccess(t, strings.Contains(b.String(), "digraph"))
}

func TestSnapshot(t *testing.T) {
	f := newFIFO(t)
	test.ExpectEquality(t, f.WriteDomain.Write(0x5a), fifo.Accepted)

	var b strings.Builder
	dump.Snapshot(&b, f)
	test.ExpectSuccess(t, strings.Contains(b.String(), "digraph"))
}
