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

// Package win32 reads game controllers and lock key state with the Windows
// API.
//
// XInputDriver implements the gamepad.Driver interface with XInput. The
// XInput state structure has the same layout and button bits as
// gamepad.PadState.
//
// JoystickDriver implements the joystick.Driver interface with the winmm
// joystick functions. winmm has no hotplug notification so new devices are
// found by the rescans of the input system.
//
// Toggles implements the keyboard.ToggleState interface with GetKeyState.
//
// Only the axis conversion functions are available on other platforms.
package win32
