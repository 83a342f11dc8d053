// This file is part of Gopherinput.
//
// Gopherinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherinput.  If not, see <https://www.gnu.org/licenses/>.

//go:build !windows

package main

import (
	"fmt"
	"os"

	"github.com/benbjohnson/clock"
	"github.com/jetsetilly/gopherinput/inputsystem"
	"github.com/jetsetilly/gopherinput/logger"
	"github.com/jetsetilly/gopherinput/modalflag"
	"github.com/jetsetilly/gopherinput/platform/termkeys"
)

// term prints every input event typed into the terminal or received from a
// joystick.
func term(md *modalflag.Modes) error {
	md.NewMode()
	opts := addMonitorOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	opts.apply()

	inputPrefs, err := opts.newPreferences()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}

	pump, err := termkeys.NewPump(os.Stdin, os.Stdout)
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer pump.Close()

	is := inputsystem.NewInputSystem(clock.New(), inputPrefs, pump, nativeBackends(inputPrefs)...)
	defer is.Shutdown()

	watcher, err := watchHotplug(is.Notify)
	if err != nil {
		logger.Log(logger.Allow, "term", err)
	} else {
		defer watcher.Close()
	}

	return run(is, opts)
}
