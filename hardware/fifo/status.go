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

package fifo

import "fmt"

// Status is the result of stepping a domain. None of the Status values
// indicate an error. A rejected write or read is normal flow control.
type Status int

// List of valid Status values.
const (
	// the domain was stepped without a request
	Idle Status = iota

	// the write or read request was accepted
	Accepted

	// the write request was rejected because the FIFO is full
	RejectedFull

	// the read request was rejected because the FIFO is empty
	RejectedEmpty

	// the domain was reset
	Reset
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Accepted:
		return "accepted"
	case RejectedFull:
		return "rejected (full)"
	case RejectedEmpty:
		return "rejected (empty)"
	case Reset:
		return "reset"
	}
	panic(fmt.Sprintf("unknown fifo status (%d)", s))
}

// Rejected returns true if the Status is one of the rejection values.
func (s Status) Rejected() bool {
	return s == RejectedFull || s == RejectedEmpty
}

// Bus is the data output of the read domain.
type Bus struct {
	Word uint64

	// if valid is false then the output is in a high-impedance state and the
	// Word field should be ignored
	Valid bool
}

func (b Bus) String() string {
	if !b.Valid {
		return "zz"
	}
	return fmt.Sprintf("%#x", b.Word)
}

// WriteRequest is the input to the write domain.
type WriteRequest struct {
	Word  uint64
	Valid bool
}

// GraySource is implemented by a domain that publishes a Gray coded pointer.
type GraySource interface {
	Gray() uint32
}
