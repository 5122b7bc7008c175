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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The pattern is what differentiates one curated error from
// another. For example:
//
//	e := curated.Errorf(storage.InvalidDepth, 12)
//
//	if curated.Is(e, storage.InvalidDepth) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(storage.InvalidDepth, 12)
//	f := curated.Errorf("fifo: %v", e)
//
//	if curated.Has(f, storage.InvalidDepth) {
//		fmt.Println("true")
//	}
//
//	if curated.Is(f, storage.InvalidDepth) {
//		fmt.Println("true")
//	}
//
// In this example the call to Is() fails and will not print 'true' because
// error f does not match that pattern. It is "wrapped" inside the pattern
// "fifo: %v".
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'curated' and false if the error is 'uncurated'. We can think of the
// difference as being 'expected' and 'unexpected'. A FIFO that refuses a
// write because it is full does not produce an error at all; a FIFO that
// cannot be constructed produces a curated error; a file that cannot be
// written by the wavwriter produces a curated error wrapping an uncurated one.
//
// The Error() implementation for curated errors ensures that the error chain
// is normalised. Specifically, that the chain does not contain duplicate
// adjacent parts. This alleviates the problem of when and how to wrap errors.
// For example:
//
//	func New(depth, width int) (*FIFO, error) {
//		r, err := storage.NewRing(depth, width)
//		if err != nil {
//			return nil, curated.Errorf("fifo: %v", err)
//		}
//		...
//	}
//
// If the storage package returned an error with the pattern
// "fifo: depth is not a power of two (%d)" the message seen by the user will
// be:
//
//	fifo: depth is not a power of two (12)
//
// and not:
//
//	fifo: fifo: depth is not a power of two (12)
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': '. For example:
//
//	part 1: part 2: part 3
//
// Sentinel errors are achieved through the Is() and Has() functions. The
// pattern should be stored as a const string, suitably named and commented,
// in the package that creates the error.
package curated
