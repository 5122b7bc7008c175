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

//go:build assertions

package assert

import (
	"fmt"
	"sync/atomic"
)

// Owner records the goroutine that first called Check(). Subsequent calls to
// Check() from a different goroutine will panic.
//
// The zero value is ready to use.
type Owner struct {
	id atomic.Uint64
}

// Check that the current goroutine is the owner. The first goroutine to call
// Check() becomes the owner.
func (o *Owner) Check(name string) {
	id := GetGoRoutineID()
	if o.id.CompareAndSwap(0, id) {
		return
	}
	if o.id.Load() != id {
		panic(fmt.Sprintf("assert: %s: owned by goroutine %d but used by goroutine %d", name, o.id.Load(), id))
	}
}

// Release ownership. The next goroutine to call Check() becomes the owner.
func (o *Owner) Release() {
	o.id.Store(0)
}
