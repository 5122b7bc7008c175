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

// Package wavwriter writes a trace of the FIFO to disk as a WAV file. Each
// signal of the FIFO is written to a separate channel. An audio editor that
// shows the waveform of each channel can then be used as a simple logic
// analyser.
//
// The trace is buffered in memory in its entirety and written to disk when
// Write() is called. It is therefore probably only suitable for short runs.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/asyncfifo/curated"
	"github.com/jetsetilly/asyncfifo/environment"
	"github.com/jetsetilly/asyncfifo/logger"
	"github.com/jetsetilly/asyncfifo/trace"
)

// The channels written to the WAV file, in order.
const (
	ChanWritePtr = iota
	ChanReadPtr
	ChanFull
	ChanEmpty
	ChanOutput
	ChanOccupancy
	NumChannels
)

// the maximum value of an 8 bit sample
const high = 255

// WavWriter converts a trace recording to a WAV file.
type WavWriter struct {
	env      *environment.Environment
	filename string

	// nanoseconds of simulated time per frame
	resolution int64
}

// New is the preferred method of initialisation for the WavWriter type. The
// resolution is the number of nanoseconds of simulated time for each frame of
// the WAV file.
func New(env *environment.Environment, filename string, resolution int64) (*WavWriter, error) {
	if resolution <= 0 {
		return nil, curated.Errorf("wavwriter: resolution must be positive (%d)", resolution)
	}
	return &WavWriter{
		env:        env,
		filename:   filename,
		resolution: resolution,
	}, nil
}

// SampleRate returns the sample rate of the WAV file.
func (aw *WavWriter) SampleRate() int {
	return int(1000000000 / aw.resolution)
}

// scale value in the range 0 to max to the range of an 8 bit sample
func scale(v int, max int) int {
	if max <= 0 {
		return 0
	}
	return v * high / max
}

func level(v bool) int {
	if v {
		return high
	}
	return 0
}

// frames converts the recording into interleaved frames. each sample holds its
// value until the time of the next sample
func (aw *WavWriter) frames(rec *trace.Recorder) []int {
	if len(rec.Samples) == 0 {
		return nil
	}

	ptrMax := rec.Depth()*2 - 1
	depth := rec.Depth()

	start := rec.Samples[0].Time
	end := rec.Samples[len(rec.Samples)-1].Time

	data := make([]int, 0, int((end-start)/aw.resolution+1)*NumChannels)

	idx := 0
	for t := start; t <= end; t += aw.resolution {
		for idx+1 < len(rec.Samples) && rec.Samples[idx+1].Time <= t {
			idx++
		}
		s := rec.Samples[idx]

		var out int
		if s.Output.Valid {
			out = int(s.Output.Word & 0xff)
		} else {
			out = high / 2
		}

		data = append(data,
			scale(int(s.WritePtr), ptrMax),
			scale(int(s.ReadPtr), ptrMax),
			level(s.Full),
			level(s.Empty),
			out,
			scale(s.Occupancy, depth),
		)
	}

	return data
}

// Write recording to disk.
func (aw *WavWriter) Write(rec *trace.Recorder) (rerr error) {
	data := aw.frames(rec)
	if len(data) == 0 {
		return curated.Errorf("wavwriter: %v", "nothing to write")
	}

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.SampleRate(), 8, NumChannels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: NumChannels,
			SampleRate:  aw.SampleRate(),
		},
		Data:           data,
		SourceBitDepth: 8,
	}

	logger.Logf(aw.env, "wavwriter", "writing %d frames to %s", len(data)/NumChannels, aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
