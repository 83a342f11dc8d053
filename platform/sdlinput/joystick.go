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

	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// JoystickDriver implements the joystick.Driver interface with the SDL
// joystick API.
type JoystickDriver struct {
	// devices that SDL recognises as game controllers are left for the
	// GameControllerDriver
	SkipGameControllers bool

	open map[sdl.JoystickID]*sdlJoystick
}

// NewJoystickDriver is the preferred method of initialisation for the
// JoystickDriver type.
func NewJoystickDriver(skipGameControllers bool) *JoystickDriver {
	return &JoystickDriver{
		SkipGameControllers: skipGameControllers,
		open:                make(map[sdl.JoystickID]*sdlJoystick),
	}
}

// Init implements the joystick.Driver interface.
func (drv *JoystickDriver) Init() error {
	if err := sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("sdlinput: %w", err)
	}
	sdl.JoystickEventState(sdl.ENABLE)
	return nil
}

// Enumerate implements the joystick.Driver interface.
func (drv *JoystickDriver) Enumerate() ([]joystick.Device, error) {
	var devs []joystick.Device
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if drv.SkipGameControllers && sdl.IsGameController(i) {
			continue
		}

		id := sdl.JoystickGetDeviceInstanceID(i)
		if j, ok := drv.open[id]; ok {
			devs = append(devs, j)
			continue
		}

		joy := sdl.JoystickOpen(i)
		if joy == nil || !joy.Attached() {
			logger.Logf(logger.Allow, "sdlinput", "cannot open joystick %d", i)
			continue
		}

		j := &sdlJoystick{
			drv: drv,
			joy: joy,
			id:  joy.InstanceID(),
			caps: joystick.Caps{
				Name:    joy.Name(),
				Buttons: joy.NumButtons(),
				Axes:    joy.NumAxes(),
				HasPOV:  joy.NumHats() > 0,
			},
		}
		drv.open[j.id] = j
		devs = append(devs, j)
	}
	return devs, nil
}

type sdlJoystick struct {
	drv  *JoystickDriver
	joy  *sdl.Joystick
	id   sdl.JoystickID
	caps joystick.Caps
}

// ID implements the joystick.Device interface. The ID is the SDL instance
// ID, which matches the ID in the pump's removal notifications.
func (j *sdlJoystick) ID() string {
	return fmt.Sprint(int32(j.id))
}

// Caps implements the joystick.Device interface.
func (j *sdlJoystick) Caps() joystick.Caps {
	return j.caps
}

// Read implements the joystick.Device interface.
func (j *sdlJoystick) Read(r *joystick.Reading) error {
	if !j.joy.Attached() {
		return curated.Errorf(joystick.Disconnected, j.caps.Name)
	}

	sdl.JoystickUpdate()

	r.Buttons = 0
	for b := 0; b < j.caps.Buttons && b < 64; b++ {
		if j.joy.Button(b) != 0 {
			r.Buttons |= 1 << b
		}
	}
	for a := 0; a < j.caps.Axes && a < len(r.Axes); a++ {
		r.Axes[a] = int(j.joy.Axis(a))
	}
	r.POV = joystick.POVCentered
	if j.caps.HasPOV {
		r.POV = hatAngle(j.joy.Hat(0))
	}
	return nil
}

// Close implements the joystick.Device interface.
func (j *sdlJoystick) Close() error {
	delete(j.drv.open, j.id)
	j.joy.Close()
	return nil
}
