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

//go:build linux

package main

import (
	"io"

	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/jetsetilly/gopherinput/inputsystem"
	"github.com/jetsetilly/gopherinput/platform/linuxjs"
	"github.com/jetsetilly/gopherinput/platform/sdlinput"
)

// the linux joystick API reports game controllers as joysticks so there is
// no gamepad backend.
func nativeBackends(prefs *inputsystem.Preferences) []backends.Backend {
	return []backends.Backend{
		joystick.NewBackend(linuxjs.NewDriver(linuxjs.DefaultDir), prefs.Joystick),
	}
}

func watchHotplug(notify func(backends.Notification)) (io.Closer, error) {
	return linuxjs.NewWatcher(linuxjs.DefaultDir, notify)
}

func withNativeToggles(pump *sdlinput.Pump) inputsystem.Pump {
	return pump
}
