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
	"embed"
	"fmt"
	"sort"

	"github.com/chipdj/chipdj/curated"
)

// NotFound is the curated error pattern for unrecognised theme names.
const NotFound = "melody: no builtin theme called %s"

//go:embed themes/*.yaml
var themesFS embed.FS

var themes map[string]Melody

func init() {
	themes = make(map[string]Melody)

	files, err := themesFS.ReadDir("themes")
	if err != nil {
		panic(fmt.Sprintf("melody: builtin themes: %v", err))
	}

	for _, f := range files {
		data, err := themesFS.ReadFile("themes/" + f.Name())
		if err != nil {
			panic(fmt.Sprintf("melody: builtin themes: %v", err))
		}

		m, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("melody: builtin themes: %s: %v", f.Name(), err))
		}

		themes[m.Name] = m
	}
}

// Lookup returns the builtin theme with the specified name.
func Lookup(name string) (Melody, error) {
	m, ok := themes[name]
	if !ok {
		return Melody{}, curated.Errorf(NotFound, name)
	}
	return m, nil
}

// Names returns the names of the builtin themes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
