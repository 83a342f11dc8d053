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

//go:build windows

package main

import (
	"io"

	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/backends/gamepad"
	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/jetsetilly/gopherinput/inputsystem"
	"github.com/jetsetilly/gopherinput/platform/sdlinput"
	"github.com/jetsetilly/gopherinput/platform/win32"
)

func nativeBackends(prefs *inputsystem.Preferences) []backends.Backend {
	return []backends.Backend{
		joystick.NewBackend(win32.NewJoystickDriver(), prefs.Joystick),
		gamepad.NewBackend(win32.NewXInputDriver(), prefs.Gamepad),
	}
}

type noHotplug struct{}

func (noHotplug) Close() error {
	return nil
}

// winmm and XInput devices are found by rescanning.
func watchHotplug(_ func(backends.Notification)) (io.Closer, error) {
	return noHotplug{}, nil
}

// the SDL pump tracks the scroll lock itself and can be wrong if the key was
// toggled while the window did not have focus.
type win32Toggles struct {
	*sdlinput.Pump
	toggles win32.Toggles
}

func (p win32Toggles) Toggles() (bool, bool, bool) {
	return p.toggles.Toggles()
}

func withNativeToggles(pump *sdlinput.Pump) inputsystem.Pump {
	return win32Toggles{Pump: pump}
}
