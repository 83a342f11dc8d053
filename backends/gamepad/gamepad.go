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

import (
	"math"

	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/connectivity"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/logger"
)

// the number of bits in PadState.Buttons and the XKey for each bit.
const buttonBits = 16

var buttonKeys = [buttonBits]codes.XKey{
	codes.XKeyButtonUp,
	codes.XKeyButtonDown,
	codes.XKeyButtonLeft,
	codes.XKeyButtonRight,
	codes.XKeyButtonStart,
	codes.XKeyButtonBack,
	codes.XKeyButtonStick1,
	codes.XKeyButtonStick2,
	codes.XKeyButtonLeftShoulder,
	codes.XKeyButtonRightShoulder,
	codes.XKeyNull,
	codes.XKeyNull,
	codes.XKeyButtonA,
	codes.XKeyButtonB,
	codes.XKeyButtonX,
	codes.XKeyButtonY,
}

// how long Start and Back must be held together to post a Quit event.
const quitHoldTime = 2000

const (
	stickRange   = 32767
	triggerRange = 255
)

// the axis buttons for each user, in the order they are updated.
const (
	abStick1X = iota
	abStick1Y
	abStick2X
	abStick2Y
	abLTrigger
	abRTrigger
	numAxisButtons
)

type user struct {
	connected bool
	last      PadState

	// the most recent read failed. the next good read is applied whatever
	// its packet number
	stale bool

	axisButtons [numAxisButtons]backends.AxisButton

	// Start and Back are both down. holdTick is the tick at which they were
	// both pressed
	holding  bool
	holdTick uint32
	quitSent bool
}

// Backend for XInput style gamepads.
type Backend struct {
	drv   Driver
	prefs *Preferences

	sink backends.Sink
	devs backends.Devices

	users [MaxUsers]user

	// a hotplug notification has asked for a rescan
	rescanPending bool
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend(drv Driver, prefs *Preferences) *Backend {
	if prefs == nil {
		prefs = NewPreferences()
	}
	gb := &Backend{
		drv:   drv,
		prefs: prefs,
	}

	for i := range gb.users {
		u := &gb.users[i]
		u.axisButtons[abStick1X] = backends.NewAxisButton(codes.XKeyToButtonCode(i, codes.XKeyStick1Right), codes.XKeyToButtonCode(i, codes.XKeyStick1Left))
		u.axisButtons[abStick1Y] = backends.NewAxisButton(codes.XKeyToButtonCode(i, codes.XKeyStick1Up), codes.XKeyToButtonCode(i, codes.XKeyStick1Down))
		u.axisButtons[abStick2X] = backends.NewAxisButton(codes.XKeyToButtonCode(i, codes.XKeyStick2Right), codes.XKeyToButtonCode(i, codes.XKeyStick2Left))
		u.axisButtons[abStick2Y] = backends.NewAxisButton(codes.XKeyToButtonCode(i, codes.XKeyStick2Up), codes.XKeyToButtonCode(i, codes.XKeyStick2Down))
		u.axisButtons[abLTrigger] = backends.NewAxisButton(codes.XKeyToButtonCode(i, codes.XKeyButtonLTrigger), codes.ButtonCodeNone)
		u.axisButtons[abRTrigger] = backends.NewAxisButton(codes.XKeyToButtonCode(i, codes.XKeyButtonRTrigger), codes.ButtonCodeNone)
	}

	return gb
}

// Name implements the backends.Backend interface.
func (gb *Backend) Name() string {
	return "gamepad"
}

// Init implements the backends.Backend interface.
func (gb *Backend) Init(sink backends.Sink, devs backends.Devices) error {
	gb.sink = sink
	gb.devs = devs
	if err := gb.drv.Init(); err != nil {
		return curated.Errorf(DriverUnavailable, err)
	}
	return nil
}

// Connected implements the backends.Backend interface.
func (gb *Backend) Connected() connectivity.Device {
	for i := range gb.users {
		if gb.users[i].connected {
			return connectivity.Gamepad
		}
	}
	return connectivity.None
}

// Hotplug implements the backends.Hotplugger interface. The driver addresses
// gamepads by user index rather than device ID so every notification causes
// the unconnected users to be probed on the next sample. Removals are found
// by the read of the connected user.
func (gb *Backend) Hotplug(_ backends.Notification) {
	gb.rescanPending = true
}

// Shutdown implements the backends.Backend interface.
func (gb *Backend) Shutdown() {
	for i := range gb.users {
		if gb.users[i].connected {
			_ = gb.drv.SetVibration(i, 0, 0)
			gb.disconnect(i)
		}
	}
}

// SetRumble implements the backends.Rumbler interface. Motor speeds are in
// the range 0.0 to 1.0.
func (gb *Backend) SetRumble(userID int, left float32, right float32) bool {
	if userID < 0 || userID >= MaxUsers || !gb.users[userID].connected {
		return false
	}
	if err := gb.drv.SetVibration(userID, motorSpeed(left), motorSpeed(right)); err != nil {
		logger.Logf(logger.Allow, "gamepad", "user %d: %v", userID, err)
	}
	return true
}

// StopRumble implements the backends.Rumbler interface.
func (gb *Backend) StopRumble(userID int) bool {
	return gb.SetRumble(userID, 0, 0)
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

// Sample implements the backends.Backend interface. Users without a gamepad
// are only probed when rescan is true or after a hotplug notification.
func (gb *Backend) Sample(rescan bool) {
	rescan = rescan || gb.rescanPending
	gb.rescanPending = false

	var s PadState
	for i := range gb.users {
		u := &gb.users[i]
		if !u.connected && !rescan {
			continue
		}

		s = PadState{}
		err := gb.drv.Read(i, &s)
		if err != nil {
			if curated.Has(err, NotConnected) {
				if u.connected {
					gb.disconnect(i)
				}
			} else if u.connected {
				// no input this frame. the user stays connected and is read
				// again next time
				logger.Logf(logger.Allow, "gamepad", "user %d: %v", i, err)
				gb.release(i)
				u.stale = true
			}
			continue
		}

		if !u.connected {
			u.connected = true
			u.last = PadState{}
			logger.Logf(logger.Allow, "gamepad", "user %d connected", i)
			gb.sink.PostEvent(eventqueue.ControllerInserted, gb.sink.Tick(), i, 0, 0)
			gb.update(i, s)
		} else if u.stale || s.PacketNumber != u.last.PacketNumber {
			u.stale = false
			gb.update(i, s)
		}

		gb.checkQuit(i)
	}
}

func (gb *Backend) update(i int, s PadState) {
	u := &gb.users[i]
	tick := gb.sink.Tick()

	backends.ButtonDiff(uint64(u.last.Buttons), uint64(s.Buttons), buttonBits, func(n int, down bool) {
		code := codes.XKeyToButtonCode(i, buttonKeys[n])
		if !code.IsValid() {
			return
		}
		backends.PostButton(gb.sink, tick, code, down)
		if down && (code == codes.XKeyToButtonCode(i, codes.XKeyButtonA) || code == codes.XKeyToButtonCode(i, codes.XKeyButtonStart)) {
			gb.devs.ReportSignificantInput(connectivity.Gamepad)
		}
	})

	deadzone := gb.prefs.Deadzone.Get().(float64)
	shape := gb.prefs.DeadzoneShape.Get().(string)
	trigger := gb.prefs.TriggerThreshold.Get().(float64)
	threshold := gb.prefs.AxisButtonThreshold.Get().(float64)

	lx, ly := stick(s.ThumbLX), stick(s.ThumbLY)
	rx, ry := stick(s.ThumbRX), stick(s.ThumbRY)
	lt := triggerValue(s.LeftTrigger, trigger)
	rt := triggerValue(s.RightTrigger, trigger)

	u.axisButtons[abStick1X].Update(gb.sink, tick, lx, threshold, threshold)
	u.axisButtons[abStick1Y].Update(gb.sink, tick, ly, threshold, threshold)
	u.axisButtons[abStick2X].Update(gb.sink, tick, rx, threshold, threshold)
	u.axisButtons[abStick2Y].Update(gb.sink, tick, ry, threshold, threshold)
	u.axisButtons[abLTrigger].Update(gb.sink, tick, lt, threshold, threshold)
	u.axisButtons[abRTrigger].Update(gb.sink, tick, rt, threshold, threshold)

	if gb.devs.IsDeviceReadingInput(connectivity.Gamepad) {
		if shape == DeadzoneSquare {
			lx, ly = backends.SquareDeadzone(lx, ly, deadzone)
			rx, ry = backends.SquareDeadzone(rx, ry, deadzone)
		} else {
			lx, ly = backends.CrossDeadzone(lx, ly, deadzone)
			rx, ry = backends.CrossDeadzone(rx, ry, deadzone)
		}

		// the Y axes are reported with down as positive, the same as a joystick
		gb.setAxis(tick, i, codes.AxisX, lx)
		gb.setAxis(tick, i, codes.AxisY, -ly)
		gb.setAxis(tick, i, codes.AxisR, rx)
		gb.setAxis(tick, i, codes.AxisU, -ry)
		gb.setAxis(tick, i, codes.AxisZ, lt-rt)
	}

	u.last = s
}

func (gb *Backend) setAxis(tick uint32, i int, axis codes.Axis, v float64) {
	gb.sink.SetAnalogValue(tick, codes.JoystickAxis(i, axis), int(math.Round(v*stickRange)))
}

// checkQuit posts a Quit event once Start and Back have been held together
// for long enough. Only one Quit is posted for each hold.
func (gb *Backend) checkQuit(i int) {
	u := &gb.users[i]
	const both = ButtonStart | ButtonBack

	if u.last.Buttons&both != both {
		u.holding = false
		u.quitSent = false
		return
	}

	tick := gb.sink.Tick()
	if !u.holding {
		u.holding = true
		u.holdTick = tick
		return
	}

	if !u.quitSent && tick-u.holdTick >= quitHoldTime {
		u.quitSent = true
		logger.Logf(logger.Allow, "gamepad", "user %d: quit requested", i)
		gb.sink.PostEvent(eventqueue.Quit, tick, i, 0, 0)
	}
}

// release lets go of every button and axis owned by the user. The next
// update diffs from an idle pad.
func (gb *Backend) release(i int) {
	u := &gb.users[i]
	tick := gb.sink.Tick()

	gb.sink.ReleaseButtons(tick, codes.JoystickButton(i, 0), codes.JoystickButton(i, codes.JoystickMaxButtonCount-1))
	gb.sink.ReleaseButtons(tick, codes.JoystickPOVButton(i, 0), codes.JoystickPOVButton(i, codes.JoystickPOVButtonCount-1))
	for a := range u.axisButtons {
		u.axisButtons[a].Release(gb.sink, tick)
	}
	for a := codes.AxisX; a < codes.MaxJoystickAxes; a++ {
		gb.sink.SetAnalogValue(tick, codes.JoystickAxis(i, a), 0)
	}

	u.last = PadState{}
	u.holding = false
	u.quitSent = false
}

// disconnect releases everything owned by the user.
func (gb *Backend) disconnect(i int) {
	gb.release(i)

	u := &gb.users[i]
	u.connected = false
	u.stale = false

	tick := gb.sink.Tick()
	logger.Logf(logger.Allow, "gamepad", "user %d disconnected", i)
	gb.sink.PostEvent(eventqueue.ControllerUnplugged, tick, i, 0, 0)
}

func stick(v int16) float64 {
	f := float64(v) / stickRange
	if f < -1.0 {
		return -1.0
	}
	return f
}

// triggerValue normalises the trigger and clamps values below the threshold
// to zero.
func triggerValue(v uint8, threshold float64) float64 {
	f := float64(v) / triggerRange
	if f < threshold {
		return 0
	}
	return f
}
