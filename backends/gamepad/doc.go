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

// Package gamepad is the backend for XInput style gamepads. The platform
// supplies a Driver.
//
// Gamepad users share the code space of the joystick slots. The buttons of
// user N are reported with the codes returned by codes.XKeyToButtonCode(N, ...).
//
// Only users with a connected gamepad are read on every sample. The other
// users are probed when a rescan is requested or after a hotplug
// notification. A read with an unchanged packet number is ignored.
//
// A failed read releases everything the user holds. The user stays connected
// and the next good read is applied in full.
//
// The sticks are subject to a deadzone with either a "cross" or a "square"
// shape. The triggers read as zero below a threshold. The sticks and triggers
// also drive axis buttons, pressed past the AxisButtonThreshold preference.
//
// Holding Start and Back together for two seconds posts a single Quit event.
package gamepad
