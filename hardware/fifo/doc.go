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

// Package fifo implements a dual clock FIFO. Words are written in one clock
// domain and read in another, with no relationship between the frequency or
// phase of the two clocks.
//
// Each domain is stepped independently, one call to Step() for every rising
// edge of the domain's clock. The only values that cross from one domain to the
// other are the Gray coded pointers. Each domain publishes its own pointer and
// samples the pointer of the other domain through a two stage synchroniser.
// The published pointer is visible to the other domain only through the
// GraySource interface.
//
// The full and empty flags are derived from the local pointer and the
// synchronised pointer of the other domain. Because the synchronised pointer
// can lag but can never lead the true pointer, the flags can be pessimistic
// for up to two ticks of the local clock but are never optimistic. In other
// words, the FIFO might say it is full when there is space or empty when there
// is data. It will never say there is space when it is full or that there is
// data when it is empty.
//
// The FIFO requires no mutex. The two domains can be stepped from different
// goroutines without additional synchronisation, provided each domain is only
// ever stepped from one goroutine. When built with the "assertions" build tag
// this is checked.
//
// Note that the full and empty flags are only guaranteed to be mutually
// exclusive once the synchronisers have settled. During the window after a
// burst of activity the flags can both be true. For example, after a reset of
// the write domain while the read domain still has a view of a full FIFO.
package fifo
