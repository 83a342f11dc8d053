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

import (
	"math"

	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/connectivity"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/logger"
)

type slot struct {
	dev  Device
	caps Caps
	last Reading

	// the POV buttons currently down. bit n is JoystickPOVButton(n)
	pov uint64

	axisButtons [codes.MaxJoystickAxes]backends.AxisButton
}

// Backend for joysticks read through the native joystick API of the
// platform.
type Backend struct {
	drv   Driver
	prefs *Preferences

	sink backends.Sink
	devs backends.Devices

	slots [codes.MaxJoysticks]*slot

	// a hotplug notification has asked for a rescan
	rescanPending bool
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend(drv Driver, prefs *Preferences) *Backend {
	if prefs == nil {
		prefs = NewPreferences()
	}
	return &Backend{
		drv:   drv,
		prefs: prefs,
	}
}

// Name implements the backends.Backend interface.
func (jb *Backend) Name() string {
	return "joystick"
}

// Init implements the backends.Backend interface.
func (jb *Backend) Init(sink backends.Sink, devs backends.Devices) error {
	jb.sink = sink
	jb.devs = devs
	if err := jb.drv.Init(); err != nil {
		return curated.Errorf(DriverUnavailable, err)
	}
	jb.rescanPending = true
	return nil
}

// Connected implements the backends.Backend interface. Joysticks count as
// gamepads for the purposes of device connectivity.
func (jb *Backend) Connected() connectivity.Device {
	for _, s := range jb.slots {
		if s != nil {
			return connectivity.Gamepad
		}
	}
	return connectivity.None
}

// Shutdown implements the backends.Backend interface.
func (jb *Backend) Shutdown() {
	for i := range jb.slots {
		jb.remove(i)
	}
}

// Hotplug implements the backends.Hotplugger interface.
func (jb *Backend) Hotplug(n backends.Notification) {
	switch n.Kind {
	case backends.DeviceInserted:
		jb.rescanPending = true
	case backends.DeviceRemoved:
		for i, s := range jb.slots {
			if s != nil && s.dev.ID() == n.ID {
				jb.remove(i)
			}
		}
	}
}

// Sample implements the backends.Backend interface.
func (jb *Backend) Sample(rescan bool) {
	if jb.prefs.Disabled.Get().(bool) {
		jb.Shutdown()
		jb.rescanPending = true
		return
	}

	if rescan || jb.rescanPending {
		jb.rescanPending = false
		jb.rescan()
	}

	var r Reading
	for i, s := range jb.slots {
		if s == nil {
			continue
		}

		r = Reading{POV: POVCentered}
		err := s.dev.Read(&r)
		if err != nil {
			if curated.Has(err, Disconnected) {
				jb.remove(i)
			} else {
				// treat as no input this frame. the device is read again next time
				logger.Logf(logger.Allow, "joystick", "slot %d: %v", i, err)
				jb.release(i)
			}
			continue
		}

		jb.update(i, r)
	}
}

// rescan opens joysticks that are not already in a slot and removes those
// that are no longer present.
func (jb *Backend) rescan() {
	devs, err := jb.drv.Enumerate()
	if err != nil {
		logger.Logf(logger.Allow, "joystick", "%v", err)
		return
	}

	present := make(map[string]bool)
	for _, d := range devs {
		present[d.ID()] = true
	}

	for i, s := range jb.slots {
		if s != nil && !present[s.dev.ID()] {
			jb.remove(i)
		}
	}

	for _, d := range devs {
		if jb.find(d.ID()) >= 0 {
			continue
		}

		i := jb.free()
		if i < 0 {
			logger.Logf(logger.Allow, "joystick", "no free slot for %s", d.Caps().Name)
			_ = d.Close()
			continue
		}

		jb.insert(i, d)
	}
}

func (jb *Backend) find(id string) int {
	for i, s := range jb.slots {
		if s != nil && s.dev.ID() == id {
			return i
		}
	}
	return -1
}

func (jb *Backend) free() int {
	for i, s := range jb.slots {
		if s == nil {
			return i
		}
	}
	return -1
}

func (jb *Backend) insert(i int, d Device) {
	s := &slot{
		dev:  d,
		caps: d.Caps(),
		last: Reading{POV: POVCentered},
	}

	if s.caps.Buttons > codes.JoystickMaxButtonCount {
		s.caps.Buttons = codes.JoystickMaxButtonCount
	}
	if s.caps.Axes > int(codes.MaxJoystickAxes) {
		s.caps.Axes = int(codes.MaxJoystickAxes)
	}

	for a := range s.axisButtons {
		axis := codes.Axis(a)
		s.axisButtons[a] = backends.NewAxisButton(
			codes.JoystickAxisButtonFor(i, axis, false),
			codes.JoystickAxisButtonFor(i, axis, true))
	}

	jb.slots[i] = s

	logger.Logf(logger.Allow, "joystick", "%s in slot %d (%d buttons, %d axes)", s.caps.Name, i, s.caps.Buttons, s.caps.Axes)
	jb.sink.PostEvent(eventqueue.ControllerInserted, jb.sink.Tick(), i, 0, 0)
}

// remove releases everything owned by the slot, closes the device and frees
// the slot.
func (jb *Backend) remove(i int) {
	s := jb.slots[i]
	if s == nil {
		return
	}

	jb.release(i)
	jb.slots[i] = nil

	if err := s.dev.Close(); err != nil {
		logger.Logf(logger.Allow, "joystick", "slot %d: %v", i, err)
	}

	logger.Logf(logger.Allow, "joystick", "%s removed from slot %d", s.caps.Name, i)
	jb.sink.PostEvent(eventqueue.ControllerUnplugged, jb.sink.Tick(), i, 0, 0)
}

// release forces every button and axis of the slot to the released or
// centred state.
func (jb *Backend) release(i int) {
	s := jb.slots[i]
	tick := jb.sink.Tick()

	jb.sink.ReleaseButtons(tick, codes.JoystickButton(i, 0), codes.JoystickButton(i, codes.JoystickMaxButtonCount-1))
	jb.sink.ReleaseButtons(tick, codes.JoystickPOVButton(i, 0), codes.JoystickPOVButton(i, codes.JoystickPOVButtonCount-1))
	for a := range s.axisButtons {
		s.axisButtons[a].Release(jb.sink, tick)
		jb.sink.SetAnalogValue(tick, codes.JoystickAxis(i, codes.Axis(a)), 0)
	}

	s.last = Reading{POV: POVCentered}
	s.pov = 0
}

func (jb *Backend) update(i int, r Reading) {
	s := jb.slots[i]
	tick := jb.sink.Tick()

	backends.ButtonDiff(s.last.Buttons, r.Buttons, s.caps.Buttons, func(n int, down bool) {
		backends.PostButton(jb.sink, tick, codes.JoystickButton(i, n), down)
	})

	if s.caps.HasPOV {
		pov := POVButtons(r.POV, jb.prefs.POVDiagonals.Get().(bool))
		backends.ButtonDiff(s.pov, pov, codes.JoystickPOVButtonCount, func(n int, down bool) {
			backends.PostButton(jb.sink, tick, codes.JoystickPOVButton(i, n), down)
		})
		s.pov = pov
	}

	deadzone := jb.prefs.Deadzone.Get().(float64)
	threshold := jb.prefs.AxisButtonThreshold.Get().(float64)
	reading := jb.devs.IsDeviceReadingInput(connectivity.Gamepad)

	for a := 0; a < s.caps.Axes; a++ {
		v := normalise(r.Axes[a])
		s.axisButtons[a].Update(jb.sink, tick, v, threshold, threshold)
		if reading {
			jb.sink.SetAnalogValue(tick, codes.JoystickAxis(i, codes.Axis(a)), int(math.Round(backends.Deadzone(v, deadzone)*AxisRange)))
		}
	}

	s.last = r
}

func normalise(v int) float64 {
	f := float64(v) / AxisRange
	if f > 1.0 {
		return 1.0
	}
	if f < -1.0 {
		return -1.0
	}
	return f
}
