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

package melody

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/chipdj/chipdj/curated"
)

// DefinitionError is the curated error pattern for melody documents that
// cannot be turned into a Melody.
const DefinitionError = "melody: %v"

// the YAML representation of a melody. a voice may specify a channel, duty,
// and density which act as defaults for every note in the voice. a note
// with a freq of zero (or with rest set) is a rest.
type noteSpec struct {
	Freq    float64 `yaml:"freq"`
	Ms      int     `yaml:"ms"`
	Channel string  `yaml:"channel"`
	Duty    float64 `yaml:"duty"`
	Density int     `yaml:"density"`
	Rest    bool    `yaml:"rest"`
}

type voiceSpec struct {
	Channel string     `yaml:"channel"`
	Gain    float64    `yaml:"gain"`
	Duty    float64    `yaml:"duty"`
	Density int        `yaml:"density"`
	Notes   []noteSpec `yaml:"notes"`
}

type melodySpec struct {
	Name   string      `yaml:"name"`
	Voices []voiceSpec `yaml:"voices"`
}

// Parse converts a melody document into a Melody.
func Parse(data []byte) (Melody, error) {
	spec := melodySpec{}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Melody{}, curated.Errorf(DefinitionError, err)
	}

	if spec.Name == "" {
		return Melody{}, curated.Errorf(DefinitionError, "melody has no name")
	}
	if len(spec.Voices) == 0 {
		return Melody{}, curated.Errorf(DefinitionError, fmt.Sprintf("%s: melody has no voices", spec.Name))
	}

	m := Melody{Name: spec.Name}

	for vi, vs := range spec.Voices {
		if len(vs.Notes) == 0 {
			return Melody{}, curated.Errorf(DefinitionError, fmt.Sprintf("%s: voice %d has no notes", spec.Name, vi))
		}
		if vs.Gain < 0 || vs.Gain > 1 {
			return Melody{}, curated.Errorf(DefinitionError, fmt.Sprintf("%s: voice %d gain out of range", spec.Name, vi))
		}

		v := Voice{
			Gain:  vs.Gain,
			Notes: make([]Note, 0, len(vs.Notes)),
		}

		for ni, ns := range vs.Notes {
			n, err := convertNote(ns, vs)
			if err != nil {
				return Melody{}, curated.Errorf(DefinitionError, fmt.Sprintf("%s: voice %d note %d: %v", spec.Name, vi, ni, err))
			}
			v.Notes = append(v.Notes, n)
		}

		m.Voices = append(m.Voices, v)
	}

	return m, nil
}

func convertNote(ns noteSpec, vs voiceSpec) (Note, error) {
	if ns.Ms <= 0 {
		return Note{}, fmt.Errorf("duration must be positive (%dms)", ns.Ms)
	}
	if ns.Freq < 0 {
		return Note{}, fmt.Errorf("frequency cannot be negative (%.1fHz)", ns.Freq)
	}

	d := time.Duration(ns.Ms) * time.Millisecond

	// channel name on the note takes precedence over the voice default
	name := ns.Channel
	if name == "" {
		name = vs.Channel
	}

	var ch Channel
	switch name {
	case "", "square":
		ch = Square
	case "triangle":
		ch = Triangle
	case "noise":
		ch = Noise
	default:
		return Note{}, fmt.Errorf("unknown channel (%s)", name)
	}

	if ns.Rest || (ns.Freq == 0 && ch != Noise) {
		return Rest(d), nil
	}

	n := Note{
		Freq:     ns.Freq,
		Duration: d,
		Channel:  ch,
	}

	switch ch {
	case Square:
		n.Duty = ns.Duty
		if n.Duty == 0 {
			n.Duty = vs.Duty
		}
		if n.Duty == 0 {
			n.Duty = 0.5
		}
	case Noise:
		n.Density = ns.Density
		if n.Density == 0 {
			n.Density = vs.Density
		}
		if n.Density == 0 {
			n.Density = 1
		}
	}

	return n, nil
}

// LoadFile reads and parses a melody document from disk.
func LoadFile(filename string) (Melody, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Melody{}, curated.Errorf(DefinitionError, err)
	}
	return Parse(data)
}
