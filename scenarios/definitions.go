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

package scenarios

import (
	"slices"

	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/hardware/fifo"
	"github.com/jetsetilly/asyncfifo/random"
)

// the number of read edges allowed for a write to reach the read domain. this
// is more than the synchroniser requires
const syncEdges = 10

func basic(s *session) error {
	if err := s.reset(4); err != nil {
		return err
	}

	words := []uint64{0x11, 0x22, 0x33, 0x44}
	if err := s.write(words...); err != nil {
		return err
	}
	if err := s.settle(syncEdges); err != nil {
		return err
	}

	got, err := s.read(len(words))
	if err != nil {
		return err
	}
	return expectWords(got, words)
}

func full(s *session) error {
	if err := s.reset(4); err != nil {
		return err
	}

	words := make([]uint64, depth)
	for i := range words {
		words[i] = uint64(i)
	}
	if err := s.write(words...); err != nil {
		return err
	}
	if err := expectFlag("full", s.f.WriteDomain.IsFull(), true); err != nil {
		return err
	}

	// a write to a full FIFO is rejected and the storage is unchanged
	before := s.f.Snapshot()
	err := s.once(func() error {
		if st := s.f.WriteDomain.Write(0xff); st != fifo.RejectedFull {
			return curated.Errorf(Unexpected, "status", fifo.RejectedFull, st)
		}
		return nil
	})
	if err != nil {
		return err
	}
	after := s.f.Snapshot()
	if !slices.Equal(before.Words, after.Words) || before.WritePtr != after.WritePtr {
		return curated.Errorf(Unexpected, "storage", before.Words, after.Words)
	}

	// drain the FIFO so that the scoreboard is satisfied
	if err := s.settle(syncEdges); err != nil {
		return err
	}
	got, err := s.read(len(words))
	if err != nil {
		return err
	}
	return expectWords(got, words)
}

func empty(s *session) error {
	if err := s.reset(4); err != nil {
		return err
	}

	if err := s.settle(1); err != nil {
		return err
	}
	if err := expectFlag("empty", s.f.ReadDomain.IsEmpty(), true); err != nil {
		return err
	}

	if err := s.write(0xaa); err != nil {
		return err
	}
	if err := s.settle(syncEdges); err != nil {
		return err
	}
	if err := expectFlag("empty", s.f.ReadDomain.IsEmpty(), false); err != nil {
		return err
	}

	got, err := s.read(1)
	if err != nil {
		return err
	}
	if err := expectWords(got, []uint64{0xaa}); err != nil {
		return err
	}

	if err := s.settle(syncEdges); err != nil {
		return err
	}
	return expectFlag("empty", s.f.ReadDomain.IsEmpty(), true)
}

func alternating(s *session) error {
	if err := s.reset(4); err != nil {
		return err
	}

	words := make([]uint64, depth)
	for i := range words {
		words[i] = 0x10 + uint64(i)
	}
	if err := s.write(words...); err != nil {
		return err
	}
	if err := s.settle(15); err != nil {
		return err
	}

	got, err := s.read(len(words))
	if err != nil {
		return err
	}
	return expectWords(got, words)
}

func simultaneous(s *session) error {
	if err := s.reset(4); err != nil {
		return err
	}

	prefill := []uint64{0xa0, 0xa1, 0xa2, 0xa3}
	if err := s.write(prefill...); err != nil {
		return err
	}
	if err := s.settle(syncEdges); err != nil {
		return err
	}

	// write new words while reading the prefill
	additional := []uint64{0xb0, 0xb1, 0xb2, 0xb3}
	got, err := s.writeAndRead(additional, len(prefill))
	if err != nil {
		return err
	}

	if err := s.settle(2 * syncEdges); err != nil {
		return err
	}

	more, err := s.read(len(additional))
	if err != nil {
		return err
	}

	return expectWords(append(got, more...), append(prefill, additional...))
}

func randomPattern(s *session) error {
	if err := s.reset(4); err != nil {
		return err
	}

	// the words are the same every time the scenario is run, regardless of the
	// seed in the environment
	rnd := random.NewRandom(nil)
	rnd.SetSeed(42)

	words := make([]uint64, 16)
	for i := range words {
		words[i] = uint64(rnd.Intn(256))
	}

	const chunk = 4

	var got []uint64
	for i := 0; i < len(words); i += chunk {
		c := words[i:min(i+chunk, len(words))]
		if err := s.write(c...); err != nil {
			return err
		}
		if err := s.settle(syncEdges); err != nil {
			return err
		}
		r, err := s.read(len(c))
		if err != nil {
			return err
		}
		got = append(got, r...)
	}

	return expectWords(got, words)
}

func resetDuringOperation(s *session) error {
	if err := s.reset(4); err != nil {
		return err
	}

	if err := s.write(0x60, 0x61, 0x62, 0x63); err != nil {
		return err
	}

	// the words written before the reset are never read
	if err := s.reset(2); err != nil {
		return err
	}

	if err := s.settle(1); err != nil {
		return err
	}
	if err := expectFlag("empty", s.f.ReadDomain.IsEmpty(), true); err != nil {
		return err
	}
	if err := expectFlag("full", s.f.WriteDomain.IsFull(), false); err != nil {
		return err
	}

	if err := s.write(0xcc); err != nil {
		return err
	}
	if err := s.settle(syncEdges); err != nil {
		return err
	}

	got, err := s.read(1)
	if err != nil {
		return err
	}
	return expectWords(got, []uint64{0xcc})
}

func boundary(s *session) error {
	if err := s.reset(4); err != nil {
		return err
	}

	s.sawFull = false

	words := []uint64{10, 20, 30}
	if err := s.write(words...); err != nil {
		return err
	}
	if err := s.settle(syncEdges); err != nil {
		return err
	}
	got, err := s.read(len(words))
	if err != nil {
		return err
	}
	if err := expectWords(got, words); err != nil {
		return err
	}
	if err := expectFlag("full", s.sawFull, false); err != nil {
		return err
	}

	// exactly depth words
	words = []uint64{40, 50, 60, 70, 80, 90, 100, 120}
	if err := s.write(words...); err != nil {
		return err
	}
	if err := expectFlag("full", s.f.WriteDomain.IsFull(), true); err != nil {
		return err
	}

	before := s.f.Snapshot()
	err = s.once(func() error {
		if st := s.f.WriteDomain.Write(130); st != fifo.RejectedFull {
			return curated.Errorf(Unexpected, "status", fifo.RejectedFull, st)
		}
		return nil
	})
	if err != nil {
		return err
	}
	after := s.f.Snapshot()
	if !slices.Equal(before.Words, after.Words) {
		return curated.Errorf(Unexpected, "storage", before.Words, after.Words)
	}

	if err := s.settle(syncEdges); err != nil {
		return err
	}
	got, err = s.read(len(words))
	if err != nil {
		return err
	}
	if err := expectWords(got, words); err != nil {
		return err
	}

	if err := s.settle(2); err != nil {
		return err
	}
	return expectFlag("empty", s.f.ReadDomain.IsEmpty(), true)
}
