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

package statsview_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/asyncfifo/statsview"
	"github.com/jetsetilly/asyncfifo/test"
)

func TestLaunch(t *testing.T) {
	out := &test.CompareWriter{}
	stop := statsview.Launch(out, "localhost:0")
	defer stop()

	test.ExpectSuccess(t, strings.Contains(out.String(), "localhost:0/debug/statsview"))
}
