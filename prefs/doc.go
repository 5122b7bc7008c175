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

// Package prefs facilitates the storage of preference values. Values are
// typed (Bool, Int, String and Generic) and can be attached to a Disk
// instance, which will save and load the values to and from a file.
//
// The file format is one preference per line, a key and a value separated by
// " :: ". The file begins with the WarningBoilerPlate line.
//
//	*** do not edit this file by hand ***
//	fifo.depth :: 8
//	fifo.width :: 8
//
// More than one Disk instance can use the same file. Saving from one Disk
// instance will not clobber values in the file that belong to another
// instance.
//
// Preferences can also be specified on the command line. PushCommandLineStack()
// takes a string of key/value pairs, separated by a semi-colon:
//
//	fifo.depth::16; clocks.read::14
//
// Values in the command line stack take priority over values loaded from disk.
// A value is removed from the stack once it has been used.
package prefs
