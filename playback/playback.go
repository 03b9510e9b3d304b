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

// Package playback hands a rendered file to something that can make it
// audible. The package knows nothing about synthesis; it is a list of
// interchangeable strategies, tried in order until one succeeds.
//
// The strategies are external player programs, ending with the terminal
// bell as a last resort. The bell doesn't play the file at all but it does
// make a noise, which on a machine with no audio player installed is the
// best available outcome.
package playback

import (
	"io"
	"os"
	"os/exec"

	"github.com/chipdj/chipdj/curated"
	"github.com/chipdj/chipdj/logger"
)

// Failed is the curated error pattern for when every playback strategy
// has been tried without success.
const Failed = "playback: %v"

// Player is a single playback strategy.
type Player interface {
	// name of the strategy for logging
	String() string

	// make the file audible, blocking until done
	Play(filename string) error
}

// Command plays a file by running an external player program.
type Command struct {
	Name string
	Args []string
}

func (c Command) String() string {
	return c.Name
}

// Play implements the Player interface.
func (c Command) Play(filename string) error {
	path, err := exec.LookPath(c.Name)
	if err != nil {
		return curated.Errorf(Failed, err)
	}

	cmd := exec.Command(path, append(append([]string{}, c.Args...), filename)...)
	if err := cmd.Run(); err != nil {
		return curated.Errorf(Failed, err)
	}

	return nil
}

// Bell rings the terminal bell. It ignores the file entirely.
type Bell struct {
	// defaults to os.Stdout
	Output io.Writer
}

func (b Bell) String() string {
	return "terminal bell"
}

// Play implements the Player interface.
func (b Bell) Play(filename string) error {
	out := b.Output
	if out == nil {
		out = os.Stdout
	}

	if _, err := out.Write([]byte("\a")); err != nil {
		return curated.Errorf(Failed, err)
	}

	return nil
}

// Players is the default strategy order: the common command line players
// first, the terminal bell last.
func Players() []Player {
	return []Player{
		Command{Name: "aplay", Args: []string{"-q"}},
		Command{Name: "paplay"},
		Command{Name: "afplay"},
		Bell{},
	}
}

// Play tries each player in order and stops at the first success. With no
// players specified the default list from Players() is used.
func Play(filename string, players ...Player) error {
	if len(players) == 0 {
		players = Players()
	}

	for _, p := range players {
		if err := p.Play(filename); err != nil {
			logger.Logf("playback", "%s: %v", p, err)
			continue
		}

		logger.Logf("playback", "played %s with %s", filename, p)
		return nil
	}

	return curated.Errorf(Failed, "no playback method succeeded")
}
