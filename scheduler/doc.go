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

// Package scheduler drives the two domains of a FIFO from their clocks.
//
// The Scheduler type is a discrete event simulator. Simulated time advances to
// the next rising edge of either clock and the Agent for that domain is
// called. When the edges of the two clocks coincide the write domain is
// stepped first, unless RandomTies is set. Every rising edge is followed by a
// call to every registered Observer.
//
// Interleave() is for tests that require a precise order of edges,
// independent of any clock. RunConcurrent() runs each Agent in its own
// goroutine with no relationship between the two domains other than what the
// FIFO itself provides.
//
// All methods of running agents are bounded by a budget. If the budget is
// exhausted before both agents are done then a BudgetExhausted error is
// returned.
package scheduler
