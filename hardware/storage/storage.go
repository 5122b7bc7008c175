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

// Package storage implements the ring of words shared by the two domains of
// the FIFO.
//
// The ring has no knowledge of pointers or flags. Words are stored and loaded
// by address and the caller is responsible for only storing in the write
// domain and only loading in the read domain.
package storage

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/jetsetilly/asyncfifo/curated"
)

// Sentinal error patterns.
const (
	InvalidDepth = "storage: invalid depth: %d (%s)"
	InvalidWidth = "storage: invalid width: %d (must be between 1 and 64)"
)

// MaxDepth is the largest depth supported.
const MaxDepth = 1 << 20

// MaxWidth is the largest word width supported.
const MaxWidth = 64

// ValidateDepth returns an error if depth cannot be used for a Ring.
func ValidateDepth(depth int) error {
	if depth <= 0 {
		return curated.Errorf(InvalidDepth, depth, "must be positive")
	}
	if depth > MaxDepth {
		return curated.Errorf(InvalidDepth, depth, fmt.Sprintf("must not be larger than %d", MaxDepth))
	}
	if depth&(depth-1) != 0 {
		return curated.Errorf(InvalidDepth, depth, "must be a power of two")
	}
	return nil
}

// ValidateWidth returns an error if width cannot be used for a Ring.
func ValidateWidth(width int) error {
	if width < 1 || width > MaxWidth {
		return curated.Errorf(InvalidWidth, width)
	}
	return nil
}

// Ring is a fixed number of words of a fixed width.
type Ring struct {
	words []uint64
	width int
	mask  uint64
}

// NewRing is the preferred method of initialisation for the Ring type.
func NewRing(depth int, width int) (*Ring, error) {
	if err := ValidateDepth(depth); err != nil {
		return nil, err
	}
	if err := ValidateWidth(width); err != nil {
		return nil, err
	}

	r := &Ring{
		words: make([]uint64, depth),
		width: width,
	}

	if width == MaxWidth {
		r.mask = ^uint64(0)
	} else {
		r.mask = (uint64(1) << width) - 1
	}

	return r, nil
}

func (r *Ring) String() string {
	s := strings.Builder{}
	for i, w := range r.words {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%0*x", (r.width+3)/4, w))
	}
	return s.String()
}

// Depth returns the number of words in the ring.
func (r *Ring) Depth() int {
	return len(r.words)
}

// AddressBits returns the number of bits required to address every word in
// the ring.
func (r *Ring) AddressBits() int {
	return bits.TrailingZeros(uint(len(r.words)))
}

// Width returns the number of bits in a word.
func (r *Ring) Width() int {
	return r.width
}

// Mask returns a mask for a word.
func (r *Ring) Mask() uint64 {
	return r.mask
}

// Store word at address. The word is truncated to the width of the ring.
func (r *Ring) Store(addr uint32, word uint64) {
	r.words[addr] = word & r.mask
}

// Load word from address.
func (r *Ring) Load(addr uint32) uint64 {
	return r.words[addr]
}

// Words returns a copy of every word in the ring.
func (r *Ring) Words() []uint64 {
	w := make([]uint64, len(r.words))
	copy(w, r.words)
	return w
}

// Clear sets every word to zero. A reset of either domain does not clear the
// ring. This function is only used when resetting the harness.
func (r *Ring) Clear() {
	clear(r.words)
}
