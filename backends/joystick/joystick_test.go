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

package joystick_test

import (
	"errors"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/connectivity"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/test"
)

type fakeDevice struct {
	id      string
	caps    joystick.Caps
	reading joystick.Reading
	err     error
	closed  bool
}

func (d *fakeDevice) ID() string          { return d.id }
func (d *fakeDevice) Caps() joystick.Caps { return d.caps }
func (d *fakeDevice) Close() error        { d.closed = true; return nil }

func (d *fakeDevice) Read(r *joystick.Reading) error {
	if d.err != nil {
		return d.err
	}
	*r = d.reading
	return nil
}

type fakeDriver struct {
	initErr error
	devices []*fakeDevice
}

func (drv *fakeDriver) Init() error {
	return drv.initErr
}

func (drv *fakeDriver) Enumerate() ([]joystick.Device, error) {
	devs := make([]joystick.Device, 0, len(drv.devices))
	for _, d := range drv.devices {
		devs = append(devs, d)
	}
	return devs, nil
}

func newDevice(id string) *fakeDevice {
	return &fakeDevice{
		id:      id,
		caps:    joystick.Caps{Name: id, Buttons: 8, Axes: 2, HasPOV: true},
		reading: joystick.Reading{POV: joystick.POVCentered},
	}
}

type env struct {
	q   *eventqueue.Queue
	reg *connectivity.Registry
	drv *fakeDriver
	jb  *joystick.Backend
}

func newEnv(t *testing.T, devices ...*fakeDevice) *env {
	t.Helper()
	e := &env{
		q:   eventqueue.NewQueue(clock.NewMock()),
		reg: connectivity.NewRegistry(),
		drv: &fakeDriver{devices: devices},
	}
	e.jb = joystick.NewBackend(e.drv, nil)
	test.DemandSuccess(t, e.jb.Init(e.q, e.reg))
	return e
}

func (e *env) poll(rescan bool) []eventqueue.Event {
	e.q.BeginPoll()
	e.jb.Sample(rescan)
	e.q.EndPoll()
	return e.q.GetEventData()
}

func TestImplements(t *testing.T) {
	jb := joystick.NewBackend(&fakeDriver{}, nil)
	test.ExpectImplements[backends.Backend](t, jb)
	test.ExpectImplements[backends.Hotplugger](t, jb)
}

func TestInitFailure(t *testing.T) {
	jb := joystick.NewBackend(&fakeDriver{initErr: errors.New("no joystick API")}, nil)
	err := jb.Init(eventqueue.NewQueue(clock.NewMock()), connectivity.NewRegistry())
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, joystick.DriverUnavailable))
}

func TestButtonDiff(t *testing.T) {
	dev := newDevice("js0")
	e := newEnv(t, dev)

	evs := e.poll(false)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ControllerInserted)
	test.ExpectEquality(t, e.jb.Connected(), connectivity.Gamepad)

	dev.reading.Buttons = 0b00000001
	test.ExpectEquality(t, len(e.poll(false)), 1)

	// button 0 is already down so only button 1 is reported
	dev.reading.Buttons = 0b00000011
	evs = e.poll(false)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonPressed)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.JoystickButton(0, 1))

	// no change, no event
	test.ExpectEquality(t, len(e.poll(false)), 0)

	// buttons beyond the capabilities of the device are ignored
	dev.reading.Buttons = 0b100000011
	test.ExpectEquality(t, len(e.poll(false)), 0)
}

func TestPOV(t *testing.T) {
	dev := newDevice("js0")
	e := newEnv(t, dev)
	e.poll(false)

	dev.reading.POV = 0
	evs := e.poll(false)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.KeyXButtonUp)

	// diagonal up-right adds the right button
	dev.reading.POV = 4500
	evs = e.poll(false)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.KeyXButtonRight)
	test.ExpectSuccess(t, e.q.IsButtonDown(codes.KeyXButtonUp))

	dev.reading.POV = joystick.POVCentered
	test.ExpectEquality(t, len(e.poll(false)), 2)
}

func TestPOVButtons(t *testing.T) {
	test.ExpectEquality(t, joystick.POVButtons(joystick.POVCentered, true), uint64(0))
	test.ExpectEquality(t, joystick.POVButtons(0, false), uint64(0b0001))
	test.ExpectEquality(t, joystick.POVButtons(9000, false), uint64(0b0010))
	test.ExpectEquality(t, joystick.POVButtons(18000, false), uint64(0b0100))
	test.ExpectEquality(t, joystick.POVButtons(27000, false), uint64(0b1000))
	test.ExpectEquality(t, joystick.POVButtons(31500, true), uint64(0b1001))
	test.ExpectEquality(t, joystick.POVButtons(13500, true), uint64(0b0110))

	// without diagonals the nearest direction wins
	test.ExpectEquality(t, joystick.POVButtons(5000, false), uint64(0b0010))
	test.ExpectEquality(t, joystick.POVButtons(35000, false), uint64(0b0001))
}

func TestAxes(t *testing.T) {
	dev := newDevice("js0")
	e := newEnv(t, dev)
	e.poll(false)

	// inside the deadzone. no analog value and no axis button
	dev.reading.Axes[0] = joystick.AxisRange / 10
	test.ExpectEquality(t, len(e.poll(false)), 0)
	test.ExpectEquality(t, e.q.GetAnalogValue(codes.JoystickAxis(0, codes.AxisX)), 0)

	// outside the deadzone but below the axis button threshold
	dev.reading.Axes[0] = joystick.AxisRange * 3 / 10
	evs := e.poll(false)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.AnalogValueChanged)

	// past the threshold in the negative direction
	dev.reading.Axes[1] = -joystick.AxisRange
	evs = e.poll(false)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.KeyXStick1Up)
	test.ExpectEquality(t, e.q.GetAnalogValue(codes.JoystickAxis(0, codes.AxisY)), -joystick.AxisRange)

	// analog values are gated by the current device but axis buttons are not
	e.reg.SetCurrentInputDevice(connectivity.KeyboardMouse)
	dev.reading.Axes[1] = 0
	evs = e.poll(false)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonReleased)
}

func TestReadFailure(t *testing.T) {
	dev := newDevice("js0")
	e := newEnv(t, dev)
	e.poll(false)

	dev.reading.Buttons = 0b101
	e.poll(false)
	test.ExpectSuccess(t, e.q.IsButtonDown(codes.JoystickButton(0, 2)))

	// a transient failure releases the buttons but keeps the device
	dev.err = errors.New("read failed")
	evs := e.poll(false)
	test.ExpectEquality(t, len(evs), 2)
	test.ExpectFailure(t, e.q.IsButtonDown(codes.JoystickButton(0, 2)))
	test.ExpectEquality(t, e.jb.Connected(), connectivity.Gamepad)

	// and the buttons come back when the read succeeds
	dev.err = nil
	test.ExpectEquality(t, len(e.poll(false)), 2)

	// a disconnection removes the device
	dev.err = curated.Errorf(joystick.Disconnected, dev.id)
	evs = e.poll(false)
	test.DemandEquality(t, len(evs), 3)
	test.ExpectEquality(t, evs[2].Type, eventqueue.ControllerUnplugged)
	test.ExpectSuccess(t, dev.closed)
	test.ExpectEquality(t, e.jb.Connected(), connectivity.None)
	test.ExpectFailure(t, e.q.IsButtonDown(codes.JoystickButton(0, 0)))
}

func TestHotplug(t *testing.T) {
	e := newEnv(t)
	e.poll(false)
	test.ExpectEquality(t, e.jb.Connected(), connectivity.None)

	js0 := newDevice("js0")
	js1 := newDevice("js1")
	e.drv.devices = append(e.drv.devices, js0, js1)

	// not seen until a rescan
	e.poll(false)
	test.ExpectEquality(t, e.jb.Connected(), connectivity.None)

	e.jb.Hotplug(backends.Notification{Kind: backends.DeviceInserted, Backend: "joystick", ID: "js1"})
	evs := e.poll(false)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Data, 0)
	test.ExpectEquality(t, evs[1].Data, 1)

	js1.reading.Buttons = 1
	e.poll(false)
	test.ExpectSuccess(t, e.q.IsButtonDown(codes.JoystickButton(1, 0)))

	e.jb.Hotplug(backends.Notification{Kind: backends.DeviceRemoved, Backend: "joystick", ID: "js1"})
	e.drv.devices = e.drv.devices[:1]
	evs = e.poll(false)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonReleased)
	test.ExpectEquality(t, evs[1].Type, eventqueue.ControllerUnplugged)
	test.ExpectEquality(t, evs[1].Data, 1)

	// slot is reused
	js2 := newDevice("js2")
	e.drv.devices = append(e.drv.devices, js2)
	evs = e.poll(true)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Data, 1)
}

func TestSlotLimit(t *testing.T) {
	var devs []*fakeDevice
	for i := 0; i < codes.MaxJoysticks+1; i++ {
		devs = append(devs, newDevice(string(rune('a'+i))))
	}
	e := newEnv(t, devs...)
	evs := e.poll(false)
	test.ExpectEquality(t, len(evs), codes.MaxJoysticks)
	test.ExpectSuccess(t, devs[codes.MaxJoysticks].closed)
}

func TestDisabled(t *testing.T) {
	dev := newDevice("js0")
	e := newEnv(t, dev)
	e.poll(false)

	prefs := joystick.NewPreferences()
	jb := joystick.NewBackend(e.drv, prefs)
	test.DemandSuccess(t, jb.Init(e.q, e.reg))
	prefs.Disabled.Set(true)

	e.q.BeginPoll()
	jb.Sample(true)
	e.q.EndPoll()
	test.ExpectEquality(t, jb.Connected(), connectivity.None)

	prefs.Disabled.Set(false)
	e.q.BeginPoll()
	jb.Sample(false)
	e.q.EndPoll()
	test.ExpectEquality(t, jb.Connected(), connectivity.Gamepad)
}
