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

package joystick

import "github.com/jetsetilly/gopherinput/codes"

// Error patterns returned by drivers.
const (
	DriverUnavailable = "joystick: driver unavailable: %v"
	Disconnected      = "joystick: device disconnected: %v"
)

// AxisRange is the magnitude of a fully deflected axis in a Reading.
const AxisRange = 32767

// POVCentered is the value of Reading.POV when the hat is not pressed.
const POVCentered = -1

// Caps describes the controls of a joystick.
type Caps struct {
	Name string

	// number of buttons and axes. buttons beyond codes.JoystickMaxButtonCount
	// and axes beyond codes.MaxJoystickAxes are ignored
	Buttons int
	Axes    int

	HasPOV bool
}

// Reading is the state of a joystick at a single moment.
type Reading struct {
	// bit n is set if button n is down
	Buttons uint64

	// axis values in the range -AxisRange to AxisRange
	Axes [codes.MaxJoystickAxes]int

	// angle of the POV hat in hundredths of a degree clockwise from up, or
	// POVCentered
	POV int
}

// Device is a single joystick opened by a Driver.
type Device interface {
	// ID uniquely identifies the device for as long as it is connected. For
	// drivers that support hotplug it must match the ID of the notification.
	ID() string
	Caps() Caps

	// Read the current state of the device. An error matching the
	// Disconnected pattern means the device has gone. Any other error is
	// treated as a failure for that read only.
	Read(r *Reading) error

	Close() error
}

// Driver is implemented by the platform to find joysticks.
type Driver interface {
	Init() error

	// Enumerate returns every joystick currently connected, including those
	// that were returned by a previous call. Devices that are already open
	// may be returned again as the same instance or as a new instance with
	// the same ID.
	Enumerate() ([]Device, error)
}
