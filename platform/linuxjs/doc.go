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

// Package linuxjs reads joysticks with the Linux joystick API. Each device
// in /dev/input named js* is a joystick.
//
// The Driver type implements the joystick.Driver interface. Devices are
// opened in non-blocking mode and every pending event is consumed each time
// the device is read.
//
// The Watcher type watches the device directory and sends a notification
// when a joystick appears or disappears. The notification ID is the path of
// the device, which is also the ID of the joystick.Device.
package linuxjs
