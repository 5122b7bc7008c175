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

// Package verify contains the components used to check that the FIFO behaves
// correctly when driven by the scheduler.
//
// Writer and Reader are scheduler agents. They drive the write and read
// domains respectively and record the traffic with a Scoreboard. The
// Scoreboard is a reference queue and checks every word read from the FIFO
// against the words written to it. The Monitor is a scheduler observer and
// checks the invariants of the FIFO after every clock edge.
//
// Errors returned by the components in this package are curated errors. The
// patterns are exported so that callers can use curated.Is() to identify the
// type of failure.
package verify

// Sentinal error patterns.
const (
	Mismatch   = "verify: mismatch: expected %#x but read %#x"
	Underflow  = "verify: underflow: read %#x when no data was expected"
	Unread     = "verify: %d words were written but never read"
	Overflow   = "verify: overflow: occupancy of %d exceeds depth of %d"
	Optimistic = "verify: %s flag is optimistic (occupancy %d)"
	Stale      = "verify: empty flag is stale (read pointer %#x, write pointer %#x)"
)
