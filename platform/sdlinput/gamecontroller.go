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

package sdlinput

import (
	"fmt"

	"github.com/jetsetilly/gopherinput/backends/gamepad"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/logger"
	"github.com/veandco/go-sdl2/sdl"
)

var controllerButtons = []struct {
	sdl sdl.GameControllerButton
	bit uint16
}{
	{sdl: sdl.CONTROLLER_BUTTON_DPAD_UP, bit: gamepad.ButtonDPadUp},
	{sdl: sdl.CONTROLLER_BUTTON_DPAD_DOWN, bit: gamepad.ButtonDPadDown},
	{sdl: sdl.CONTROLLER_BUTTON_DPAD_LEFT, bit: gamepad.ButtonDPadLeft},
	{sdl: sdl.CONTROLLER_BUTTON_DPAD_RIGHT, bit: gamepad.ButtonDPadRight},
	{sdl: sdl.CONTROLLER_BUTTON_START, bit: gamepad.ButtonStart},
	{sdl: sdl.CONTROLLER_BUTTON_BACK, bit: gamepad.ButtonBack},
	{sdl: sdl.CONTROLLER_BUTTON_LEFTSTICK, bit: gamepad.ButtonLeftThumb},
	{sdl: sdl.CONTROLLER_BUTTON_RIGHTSTICK, bit: gamepad.ButtonRightThumb},
	{sdl: sdl.CONTROLLER_BUTTON_LEFTSHOULDER, bit: gamepad.ButtonLeftShoulder},
	{sdl: sdl.CONTROLLER_BUTTON_RIGHTSHOULDER, bit: gamepad.ButtonRightShoulder},
	{sdl: sdl.CONTROLLER_BUTTON_A, bit: gamepad.ButtonA},
	{sdl: sdl.CONTROLLER_BUTTON_B, bit: gamepad.ButtonB},
	{sdl: sdl.CONTROLLER_BUTTON_X, bit: gamepad.ButtonX},
	{sdl: sdl.CONTROLLER_BUTTON_Y, bit: gamepad.ButtonY},
}

// how long a rumble lasts if it is not renewed or stopped.
const rumbleDuration = 10000

// GameControllerDriver implements the gamepad.Driver interface with the SDL
// game controller API. Users are assigned to controllers in the order they
// are found.
type GameControllerDriver struct {
	users [gamepad.MaxUsers]*sdl.GameController
	last  [gamepad.MaxUsers]gamepad.PadState
}

// NewGameControllerDriver is the preferred method of initialisation for the
// GameControllerDriver type.
func NewGameControllerDriver() *GameControllerDriver {
	return &GameControllerDriver{}
}

// Init implements the gamepad.Driver interface.
func (drv *GameControllerDriver) Init() error {
	if err := sdl.InitSubSystem(sdl.INIT_GAMECONTROLLER); err != nil {
		return fmt.Errorf("sdlinput: %w", err)
	}
	sdl.GameControllerEventState(sdl.ENABLE)
	return nil
}

// assigned returns true if the joystick instance is in use by a user.
func (drv *GameControllerDriver) assigned(id sdl.JoystickID) bool {
	for _, c := range drv.users {
		if c != nil && c.Joystick().InstanceID() == id {
			return true
		}
	}
	return false
}

// open the first game controller that is not assigned to a user.
func (drv *GameControllerDriver) open(user int) *sdl.GameController {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if !sdl.IsGameController(i) || drv.assigned(sdl.JoystickGetDeviceInstanceID(i)) {
			continue
		}
		c := sdl.GameControllerOpen(i)
		if c == nil || !c.Attached() {
			continue
		}
		logger.Logf(logger.Allow, "sdlinput", "gamepad: %s for user %d", c.Name(), user)
		return c
	}
	return nil
}

// Read implements the gamepad.Driver interface. SDL has no packet numbers so
// the packet number changes whenever the state changes.
func (drv *GameControllerDriver) Read(user int, s *gamepad.PadState) error {
	c := drv.users[user]
	if c != nil && !c.Attached() {
		c.Close()
		c = nil
		drv.users[user] = nil
	}
	if c == nil {
		c = drv.open(user)
		if c == nil {
			return curated.Errorf(gamepad.NotConnected, user)
		}
		drv.users[user] = c
	}

	sdl.GameControllerUpdate()

	var st gamepad.PadState
	for _, b := range controllerButtons {
		if c.Button(b.sdl) != 0 {
			st.Buttons |= b.bit
		}
	}
	st.LeftTrigger = trigger(c.Axis(sdl.CONTROLLER_AXIS_TRIGGERLEFT))
	st.RightTrigger = trigger(c.Axis(sdl.CONTROLLER_AXIS_TRIGGERRIGHT))
	st.ThumbLX = c.Axis(sdl.CONTROLLER_AXIS_LEFTX)
	st.ThumbLY = invert(c.Axis(sdl.CONTROLLER_AXIS_LEFTY))
	st.ThumbRX = c.Axis(sdl.CONTROLLER_AXIS_RIGHTX)
	st.ThumbRY = invert(c.Axis(sdl.CONTROLLER_AXIS_RIGHTY))

	st.PacketNumber = drv.last[user].PacketNumber
	if st != drv.last[user] {
		st.PacketNumber++
	}
	drv.last[user] = st

	*s = st
	return nil
}

// SetVibration implements the gamepad.Driver interface.
func (drv *GameControllerDriver) SetVibration(user int, left uint16, right uint16) error {
	c := drv.users[user]
	if c == nil {
		return curated.Errorf(gamepad.NotConnected, user)
	}
	if err := c.Rumble(left, right, rumbleDuration); err != nil {
		return fmt.Errorf("sdlinput: %w", err)
	}
	return nil
}

// trigger converts an SDL trigger axis (0 to 32767) to the range of a
// PadState trigger.
func trigger(v int16) uint8 {
	if v <= 0 {
		return 0
	}
	return uint8(v >> 7)
}

// invert converts SDL's down-is-positive stick axes to up-is-positive.
func invert(v int16) int16 {
	if v == -32768 {
		return 32767
	}
	return -v
}
