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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Unlike flag.FlagSet the arguments are given with NewArgs() and Parse() is
// called without arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SOAK", "STEP")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// A mode is a command line argument that puts the program into a different
// mode of operation, in the same way that the go command has the build and
// test modes. The first sub-mode given to AddSubModes() is the default mode.
// Sub-mode comparisons are case insensitive and Mode() always returns the mode
// in upper case.
//
// Once the mode is known, NewMode() prepares for the flags of that mode and
// Parse() is called again:
//
//	switch md.Mode() {
//	case "SOAK":
//		md.NewMode()
//		duration := md.AddDuration("duration", time.Second, "length of soak")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can be chained as deep as required. Path() returns every mode found so
// far, separated by a slash.
//
// Flags with a type not directly supported can be added with AddVar(), using
// any implementation of the flag.Value interface.
package modalflag
