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

// Package sdlinput connects the input system to SDL.
//
// The Pump type is the platform message pump. It drains the SDL event queue
// into keyboard and mouse events, reports the state of the toggle keys and
// warps the mouse cursor. Joystick and game controller hotplug events are
// forwarded as notifications so the joystick and gamepad backends can
// rescan.
//
// JoystickDriver and GameControllerDriver implement the driver interfaces of
// the joystick and gamepad backends. Devices recognised as game controllers
// can be left out of the joystick enumeration so they are not reported twice.
//
// SDL must be initialised with sdl.Init() before any of these types are used
// and all calls must be made from the thread that initialised SDL.
package sdlinput
