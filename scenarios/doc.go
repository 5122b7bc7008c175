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

// Package scenarios contains the named test scenarios for the FIFO. Each
// scenario is a sequence of phases (reset, write, settle, read) run by a
// scheduler.Scheduler with a verify.Scoreboard and verify.Monitor attached.
//
// Every phase is bounded by the budget in the environment's preferences. A
// scenario that exhausts its budget fails with a scheduler.BudgetExhausted
// error.
//
// Scenarios always use a FIFO with a depth of eight and a width of eight
// bits, regardless of the preferences. Clocks are fixed by the scenario.
package scenarios
