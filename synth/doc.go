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

// Package synth emulates the three channels of a classic 8-bit sound chip
// and renders melodies with them.
//
// The waveform generators, Square(), Triangle() and Noise(), each produce
// the samples for a single note. The square channel has a configurable duty
// cycle, the triangle channel quantizes its ramp to a small number of
// amplitude steps like the source hardware did, and the noise channel is a
// linear-feedback shift register rather than a true random source, so that
// renders are reproducible.
//
// The Envelope type shapes a raw note with a piecewise-linear
// attack/decay/sustain/release gain curve.
//
// The Renderer walks a melody.Voice note by note, dispatching to the
// generator for each note's channel, shaping with the envelope, and
// concatenating with a short gap of silence between notes. Multi-voice
// melodies are combined with the mix sub-package.
//
// Rendering is pure computation with no shared state. Renders of
// independent melodies can proceed concurrently without locking.
package synth
