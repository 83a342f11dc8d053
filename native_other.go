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

//go:build !linux && !windows

package main

import (
	"io"

	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/inputsystem"
	"github.com/jetsetilly/gopherinput/platform/sdlinput"
)

func nativeBackends(_ *inputsystem.Preferences) []backends.Backend {
	return nil
}

type noHotplug struct{}

func (noHotplug) Close() error {
	return nil
}

func watchHotplug(_ func(backends.Notification)) (io.Closer, error) {
	return noHotplug{}, nil
}

func withNativeToggles(pump *sdlinput.Pump) inputsystem.Pump {
	return pump
}
