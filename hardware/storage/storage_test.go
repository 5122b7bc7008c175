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

package storage_test

import (
	"testing"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/hardware/storage"
	"github.com/jetsetilly/asyncfifo/test"
)

func TestValidation(t *testing.T) {
	for _, d := range []int{-1, 0, 3, 6, 12, 100, storage.MaxDepth * 2} {
		_, err := storage.NewRing(d, 8)
		test.ExpectSuccess(t, curated.Is(err, storage.InvalidDepth), d)
	}

	for _, w := range []int{-1, 0, 65} {
		_, err := storage.NewRing(8, w)
		test.ExpectSuccess(t, curated.Is(err, storage.InvalidWidth), w)
	}

	for _, d := range []int{1, 2, 4, 8, 1024, storage.MaxDepth} {
		r, err := storage.NewRing(d, 8)
		test.ExpectSuccess(t, err, d)
		test.ExpectEquality(t, r.Depth(), d)
	}
}

func TestAddressBits(t *testing.T) {
	r, err := storage.NewRing(1, 8)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.AddressBits(), 0)

	r, err = storage.NewRing(8, 8)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.AddressBits(), 3)
}

func TestStoreLoad(t *testing.T) {
	r, err := storage.NewRing(4, 8)
	test.DemandSuccess(t, err)

	r.Store(0, 0xab)
	r.Store(3, 0x1cd)
	test.ExpectEquality(t, r.Load(0), uint64(0xab))

	// word is masked to width
	test.ExpectEquality(t, r.Load(3), uint64(0xcd))
	test.ExpectEquality(t, r.String(), "ab 00 00 cd")
	test.ExpectSlice(t, r.Words(), []uint64{0xab, 0, 0, 0xcd})

	r.Clear()
	test.ExpectSlice(t, r.Words(), []uint64{0, 0, 0, 0})
}

func TestFullWidth(t *testing.T) {
	r, err := storage.NewRing(2, 64)
	test.DemandSuccess(t, err)
	r.Store(1, 0xffffffffffffffff)
	test.ExpectEquality(t, r.Load(1), uint64(0xffffffffffffffff))

	r, err = storage.NewRing(2, 1)
	test.DemandSuccess(t, err)
	r.Store(1, 0xff)
	test.ExpectEquality(t, r.Load(1), uint64(1))
}
