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

package steamcontroller

import (
	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/connectivity"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/logger"
)

type digitalAction struct {
	name string
	code codes.ButtonCode

	// pressing the action makes the Steam Controller the current device
	selectsDevice bool
}

var digitalActions = []digitalAction{
	{name: "menu_left", code: codes.KeyXStick1Left, selectsDevice: true},
	{name: "menu_right", code: codes.KeyXStick1Right, selectsDevice: true},
	{name: "menu_up", code: codes.KeyXStick1Up, selectsDevice: true},
	{name: "menu_down", code: codes.KeyXStick1Down, selectsDevice: true},
	{name: "menu_select", code: codes.KeyXButtonA, selectsDevice: true},
	{name: "menu_cancel", code: codes.KeyXButtonB, selectsDevice: true},
	{name: "menu_x", code: codes.KeyXButtonX, selectsDevice: true},
	{name: "menu_y", code: codes.KeyXButtonY, selectsDevice: true},
	{name: "pause_menu", code: codes.KeyEscape},
	{name: "vote_yes", code: codes.KeyF1},
	{name: "vote_no", code: codes.KeyF2},
	{name: "next_inventory_page", code: codes.KeyXButtonRightShoulder},
	{name: "prev_inventory_page", code: codes.KeyXButtonLeftShoulder},
}

// Backend for the Steam Controller, read through the vendor action set API.
type Backend struct {
	api API

	sink backends.Sink
	devs backends.Devices

	modes modeStack

	setHandles    [numModes]ActionSetHandle
	actionHandles []DigitalActionHandle

	// state of each digital action in the previous frame
	pressed []bool

	controllers []ControllerHandle
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend(api API) *Backend {
	return &Backend{
		api:           api,
		actionHandles: make([]DigitalActionHandle, len(digitalActions)),
		pressed:       make([]bool, len(digitalActions)),
	}
}

// Name implements the backends.Backend interface.
func (sb *Backend) Name() string {
	return "steamcontroller"
}

// Init implements the backends.Backend interface.
func (sb *Backend) Init(sink backends.Sink, devs backends.Devices) error {
	sb.sink = sink
	sb.devs = devs

	if err := sb.api.Init(); err != nil {
		return curated.Errorf(APIUnavailable, err)
	}

	for m := range sb.setHandles {
		sb.setHandles[m] = sb.api.ActionSetHandle(Mode(m).String())
		if sb.setHandles[m] == 0 {
			logger.Logf(logger.Allow, "steamcontroller", "no action set for %s", Mode(m))
		}
	}

	for i, a := range digitalActions {
		sb.actionHandles[i] = sb.api.DigitalActionHandle(a.name)
		if sb.actionHandles[i] == 0 {
			logger.Logf(logger.Allow, "steamcontroller", "no digital action for %s", a.name)
		}
	}

	return nil
}

// Connected implements the backends.Backend interface.
func (sb *Backend) Connected() connectivity.Device {
	if len(sb.controllers) > 0 {
		return connectivity.SteamController
	}
	return connectivity.None
}

// Shutdown implements the backends.Backend interface.
func (sb *Backend) Shutdown() {
	sb.releaseAll()
	sb.controllers = sb.controllers[:0]
}

// PushMode requests a mode on behalf of the caller identified by key. The
// most recent request is the active mode.
func (sb *Backend) PushMode(key any, mode Mode) {
	sb.modes.push(key, mode)
}

// PopMode withdraws the request made by the caller identified by key.
func (sb *Backend) PopMode(key any) {
	sb.modes.pop(key)
}

// ActiveMode returns the mode currently in use.
func (sb *Backend) ActiveMode() Mode {
	return sb.modes.active()
}

// SetRumble implements the backends.Rumbler interface. The user ID is the
// index of the controller in the list of connected controllers.
func (sb *Backend) SetRumble(userID int, left float32, right float32) bool {
	if userID < 0 || userID >= len(sb.controllers) {
		return false
	}
	sb.api.TriggerVibration(sb.controllers[userID], motorSpeed(left), motorSpeed(right))
	return true
}

// StopRumble implements the backends.Rumbler interface.
func (sb *Backend) StopRumble(userID int) bool {
	return sb.SetRumble(userID, 0, 0)
}

func motorSpeed(v float32) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint16(v * 0xffff)
}

// Sample implements the backends.Backend interface.
func (sb *Backend) Sample(_ bool) {
	sb.api.RunFrame()

	prev := len(sb.controllers)
	sb.controllers = append(sb.controllers[:0], sb.api.ConnectedControllers()...)
	if len(sb.controllers) != prev {
		logger.Logf(logger.Allow, "steamcontroller", "%d controllers connected", len(sb.controllers))
	}

	if len(sb.controllers) == 0 {
		sb.releaseAll()
		return
	}

	set := sb.setHandles[sb.modes.active()]
	if set != 0 {
		for _, c := range sb.controllers {
			sb.api.ActivateActionSet(c, set)
		}
	}

	tick := sb.sink.Tick()
	for i, a := range digitalActions {
		h := sb.actionHandles[i]
		if h == 0 {
			continue
		}

		// pressed on any controller
		pressed := false
		for _, c := range sb.controllers {
			d := sb.api.DigitalActionData(c, h)
			if d.Active && d.State {
				pressed = true
				break
			}
		}

		if pressed == sb.pressed[i] {
			continue
		}
		sb.pressed[i] = pressed

		backends.PostButton(sb.sink, tick, a.code, pressed)
		if pressed && a.selectsDevice {
			sb.devs.SetCurrentInputDevice(connectivity.SteamController)
		}
	}
}

func (sb *Backend) releaseAll() {
	if sb.sink == nil {
		return
	}
	tick := sb.sink.Tick()
	for i, a := range digitalActions {
		if sb.pressed[i] {
			sb.pressed[i] = false
			backends.PostButton(sb.sink, tick, a.code, false)
		}
	}
}
