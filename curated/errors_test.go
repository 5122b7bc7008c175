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

package curated_test

import (
	"errors"
	"os"
	"testing"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/test"
)

const testPattern = "depth is not a power of two (%d)"
const testWrapper = "fifo: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf("fifo: %v", "depth is not a power of two (12)")
	test.ExpectEquality(t, e.Error(), "fifo: depth is not a power of two (12)")

	// packing errors of the same pattern next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testWrapper, e)
	test.ExpectEquality(t, f.Error(), "fifo: depth is not a power of two (12)")

	// deduplication applies anywhere in the chain
	g := curated.Errorf("scenario: %v", f)
	h := curated.Errorf("scenario: %v", g)
	test.ExpectEquality(t, h.Error(), "scenario: fifo: depth is not a power of two (12)")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 12)
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectSuccess(t, curated.IsAny(e))

	f := curated.Errorf(testWrapper, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Is(f, testWrapper))

	// Has() looks through the chain
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testWrapper))
	test.ExpectFailure(t, curated.Has(f, "unused pattern"))
}

func TestUncurated(t *testing.T) {
	e := errors.New("plain error")
	test.ExpectFailure(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Has(e, testPattern))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("wavwriter: %v", os.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, os.ErrNotExist))

	f := curated.Errorf("no wrapped error (%d)", 10)
	test.ExpectEquality(t, errors.Unwrap(f), nil)
}
