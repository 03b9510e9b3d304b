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

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chipdj/chipdj/logger"
	"github.com/chipdj/chipdj/melody"
	"github.com/chipdj/chipdj/modalflag"
	"github.com/chipdj/chipdj/playback"
	"github.com/chipdj/chipdj/synth"
	"github.com/chipdj/chipdj/version"
	"github.com/chipdj/chipdj/wavfile"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RENDER", "PLAY", "LIST")
	md.AdditionalHelp(fmt.Sprintf("%s renders chiptune melodies to WAV files.", version.ApplicationName))
	ver := md.AddBool("version", false, "print version and quit")
	log := md.AddBool("log", false, "echo log entries to stderr")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if *ver {
		v, _ := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, v)
		os.Exit(0)
	}

	switch md.Mode() {
	case "RENDER":
		err = render(md)

	case "PLAY":
		err = play(md)

	case "LIST":
		err = list(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// loadMelody accepts either the name of a builtin melody or the path to a
// melody definition file.
func loadMelody(arg string) (melody.Melody, error) {
	if strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") {
		return melody.LoadFile(arg)
	}
	return melody.Lookup(arg)
}

// newRenderer builds a Renderer from the common render flags.
func newRenderer(rate int, gap time.Duration) *synth.Renderer {
	r := synth.NewRenderer()
	r.Rate = rate
	r.Gap = gap
	return r
}

func render(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("o", "", "output file (defaults to the melody name)")
	rate := md.AddInt("rate", synth.DefaultSampleRate, "sample rate of the output file")
	gap := md.AddDuration("gap", synth.DefaultGap, "silence between notes")

	md.AdditionalHelp("The melody argument is either the name of a builtin melody or the path to a\nmelody definition file (see LIST mode for the builtin melodies).")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("melody required for %s mode", md)
	case 1:
		m, err := loadMelody(md.GetArg(0))
		if err != nil {
			return err
		}

		samples, err := newRenderer(*rate, *gap).Melody(m)
		if err != nil {
			return err
		}

		filename := *output
		if filename == "" {
			filename = fmt.Sprintf("%s.wav", m.Name)
		}

		err = wavfile.Write(filename, *rate, samples)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d samples written to %s\n", m.Name, len(samples), filename)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func play(md *modalflag.Modes) error {
	md.NewMode()

	rate := md.AddInt("rate", synth.DefaultSampleRate, "sample rate of the rendered audio")
	gap := md.AddDuration("gap", synth.DefaultGap, "silence between notes")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("melody required for %s mode", md)
	case 1:
		m, err := loadMelody(md.GetArg(0))
		if err != nil {
			return err
		}

		samples, err := newRenderer(*rate, *gap).Melody(m)
		if err != nil {
			return err
		}

		// render to a temporary file and remove it once playback is done
		f, err := os.CreateTemp("", "chipdj-*.wav")
		if err != nil {
			return err
		}
		filename := f.Name()
		f.Close()
		defer os.Remove(filename)

		err = wavfile.Write(filename, *rate, samples)
		if err != nil {
			return err
		}

		return playback.Play(filename)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, name := range melody.Names() {
		m, err := melody.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s (%d voices, %s)\n", name, len(m.Voices), m.Duration(synth.DefaultGap).Round(time.Millisecond))
	}

	return nil
}
