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

package gamepad

// MaxUsers is the number of gamepads that can be connected at once.
const MaxUsers = 4

// Error patterns returned by drivers.
const (
	DriverUnavailable = "gamepad: driver unavailable: %v"
	NotConnected      = "gamepad: user %d not connected"
)

// Bits in PadState.Buttons.
const (
	ButtonDPadUp        = 0x0001
	ButtonDPadDown      = 0x0002
	ButtonDPadLeft      = 0x0004
	ButtonDPadRight     = 0x0008
	ButtonStart         = 0x0010
	ButtonBack          = 0x0020
	ButtonLeftThumb     = 0x0040
	ButtonRightThumb    = 0x0080
	ButtonLeftShoulder  = 0x0100
	ButtonRightShoulder = 0x0200
	ButtonA             = 0x1000
	ButtonB             = 0x2000
	ButtonX             = 0x4000
	ButtonY             = 0x8000
)

// PadState is the state of a gamepad as reported by the driver.
type PadState struct {
	// changes whenever the state of the gamepad changes
	PacketNumber uint32

	Buttons uint16

	LeftTrigger  uint8
	RightTrigger uint8

	// stick values. up is positive for the Y axes
	ThumbLX int16
	ThumbLY int16
	ThumbRX int16
	ThumbRY int16
}

// Driver is implemented by the platform to read gamepads.
type Driver interface {
	Init() error

	// Read the state of the gamepad for the user. An error matching the
	// NotConnected pattern means there is no gamepad for the user.
	Read(user int, s *PadState) error

	// SetVibration sets the speed of the left (low frequency) and right (high
	// frequency) motors.
	SetVibration(user int, left uint16, right uint16) error
}
