// This file is part of ChipDJ.
//
// ChipDJ is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ChipDJ is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ChipDJ.  If not, see <https://www.gnu.org/licenses/>.

// Package wavfile writes rendered sample buffers to disk as WAV files and
// reads them back. The output is 16-bit signed PCM, mono, little-endian,
// with the data chunk size matching the payload exactly, so a write
// followed by a read reproduces the original buffer sample for sample.
//
// The file is written to a temporary name in the target directory and
// renamed into place once complete. A failed or interrupted write never
// leaves a partial file at the requested path.
package wavfile

import (
	"os"
	"path/filepath"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/chipdj/chipdj/curated"
	"github.com/chipdj/chipdj/logger"
)

// IOError is the curated error pattern for file system failures. There is
// no retry behind this pattern; what to do about an unwritable or
// unreadable file is the caller's decision.
const IOError = "wavfile: %v"

const (
	numChannels   = 1
	bitsPerSample = 16

	// format tag for uncompressed PCM in the wav header
	pcmFormat = 1
)

// Write serializes a sample buffer to the specified path.
func Write(filename string, rate int, samples []int16) (rerr error) {
	f, err := os.CreateTemp(filepath.Dir(filename), ".chipdj-*")
	if err != nil {
		return curated.Errorf(IOError, err)
	}
	tmp := f.Name()

	defer func() {
		if rerr != nil {
			os.Remove(tmp)
		}
	}()

	enc := wav.NewEncoder(f, rate, bitsPerSample, numChannels, pcmFormat)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  rate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitsPerSample,
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return curated.Errorf(IOError, err)
	}

	// Close() finalises the chunk sizes in the header
	if err := enc.Close(); err != nil {
		f.Close()
		return curated.Errorf(IOError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(IOError, err)
	}

	if err := os.Rename(tmp, filename); err != nil {
		return curated.Errorf(IOError, err)
	}

	logger.Logf("wavfile", "%s: %d samples at %dHz", filename, len(samples), rate)

	return nil
}

// Read deserializes a sample buffer written by Write(), returning the
// samples and the sample rate declared in the header.
func Read(filename string) ([]int16, int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, curated.Errorf(IOError, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, curated.Errorf(IOError, "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, curated.Errorf(IOError, err)
	}

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s)
	}

	return samples, int(dec.SampleRate), nil
}
