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

// Package random should be used in preference to the math/rand package when
// a random number is required by the harness.
//
// The numbers produced by an instance of Random are a function of the seed,
// the stream and the current tick of the TickSource the instance is bound to.
// The practical consequence is that a verification agent driving one domain
// of a FIFO will make the same decisions on the same edge regardless of how
// the two domains are interleaved, or whether they run in their own
// goroutines. This makes randomised runs reproducible.
//
// An instance with a nil TickSource uses an internal counter, advanced on every
// call.
package random
