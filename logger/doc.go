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

// Package logger is the central log for the program. Log entries are tagged
// and any repeated entry is collapsed into a single entry with a repeat
// count. The number of entries kept in memory is bounded.
//
// Every call to Log() or Logf() takes a Permission. The Permission decides
// whether the entry should be logged at all. The environment.Environment type
// implements the Permission interface, meaning that FIFO instances created for
// testing or for a soak run can be kept out of the log entirely. The Allow
// value can be used when no environment is available.
//
//	logger.Log(env, "write domain", "reset")
//	logger.Logf(logger.Allow, "scheduler", "budget of %d edges exhausted", 1000)
//
// The log can be echoed to an io.Writer as entries arrive with SetEcho(). This
// is how the -log flag on the command line is implemented.
package logger
