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

package gamepad_test

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/backends/gamepad"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/connectivity"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/test"
)

type vibration struct {
	left, right uint16
}

type fakeDriver struct {
	connected [gamepad.MaxUsers]bool
	state     [gamepad.MaxUsers]gamepad.PadState
	vibration [gamepad.MaxUsers]vibration
	reads     [gamepad.MaxUsers]int

	// returned by Read() for a connected user
	readErr error
}

func (drv *fakeDriver) Init() error {
	return nil
}

func (drv *fakeDriver) Read(user int, s *gamepad.PadState) error {
	drv.reads[user]++
	if !drv.connected[user] {
		return curated.Errorf(gamepad.NotConnected, user)
	}
	if drv.readErr != nil {
		return drv.readErr
	}
	*s = drv.state[user]
	return nil
}

func (drv *fakeDriver) SetVibration(user int, left uint16, right uint16) error {
	drv.vibration[user] = vibration{left: left, right: right}
	return nil
}

// press changes the buttons and bumps the packet number.
func (drv *fakeDriver) press(user int, buttons uint16) {
	drv.state[user].Buttons = buttons
	drv.state[user].PacketNumber++
}

type env struct {
	clk *clock.Mock
	q   *eventqueue.Queue
	reg *connectivity.Registry
	drv *fakeDriver
	gb  *gamepad.Backend
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{
		clk: clock.NewMock(),
		reg: connectivity.NewRegistry(),
		drv: &fakeDriver{},
	}
	e.q = eventqueue.NewQueue(e.clk)
	e.gb = gamepad.NewBackend(e.drv, nil)
	test.DemandSuccess(t, e.gb.Init(e.q, e.reg))
	return e
}

func (e *env) poll(rescan bool) []eventqueue.Event {
	e.q.BeginPoll()
	e.gb.Sample(rescan)
	e.q.EndPoll()
	return e.q.GetEventData()
}

func TestImplements(t *testing.T) {
	gb := gamepad.NewBackend(&fakeDriver{}, nil)
	test.ExpectImplements[backends.Backend](t, gb)
	test.ExpectImplements[backends.Rumbler](t, gb)
	test.ExpectImplements[backends.Hotplugger](t, gb)
}

func TestConnection(t *testing.T) {
	e := newEnv(t)

	e.poll(true)
	test.ExpectEquality(t, e.gb.Connected(), connectivity.None)

	// unconnected users are not probed without a rescan
	e.poll(false)
	test.ExpectEquality(t, e.drv.reads[1], 1)

	e.drv.connected[1] = true
	e.poll(false)
	test.ExpectEquality(t, e.gb.Connected(), connectivity.None)

	evs := e.poll(true)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ControllerInserted)
	test.ExpectEquality(t, evs[0].Data, 1)
	test.ExpectEquality(t, e.gb.Connected(), connectivity.Gamepad)

	// connected users are read every time
	reads := e.drv.reads[1]
	e.poll(false)
	test.ExpectEquality(t, e.drv.reads[1], reads+1)

	e.drv.press(1, gamepad.ButtonB|gamepad.ButtonDPadUp)
	e.poll(false)
	test.ExpectSuccess(t, e.q.IsButtonDown(codes.XKeyToButtonCode(1, codes.XKeyButtonB)))
	test.ExpectSuccess(t, e.q.IsButtonDown(codes.XKeyToButtonCode(1, codes.XKeyButtonUp)))

	// unplugging releases everything
	e.drv.connected[1] = false
	evs = e.poll(false)
	test.DemandEquality(t, len(evs), 3)
	test.ExpectEquality(t, evs[2].Type, eventqueue.ControllerUnplugged)
	test.ExpectFailure(t, e.q.IsButtonDown(codes.XKeyToButtonCode(1, codes.XKeyButtonB)))
	test.ExpectEquality(t, e.gb.Connected(), connectivity.None)
}

func TestReadFailure(t *testing.T) {
	e := newEnv(t)
	e.drv.connected[0] = true
	e.poll(true)

	a := codes.XKeyToButtonCode(0, codes.XKeyButtonA)
	right := codes.XKeyToButtonCode(0, codes.XKeyStick1Right)
	axis := codes.JoystickAxis(0, codes.AxisX)

	e.drv.state[0].ThumbLX = 32767
	e.drv.press(0, gamepad.ButtonA)
	e.poll(false)
	test.ExpectSuccess(t, e.q.IsButtonDown(a))
	test.ExpectSuccess(t, e.q.IsButtonDown(right))
	test.ExpectInequality(t, e.q.GetAnalogValue(axis), 0)

	// a failed read is the same as no input for that frame
	e.drv.readErr = errors.New("transient i/o error")
	evs := e.poll(false)
	test.ExpectFailure(t, e.q.IsButtonDown(a))
	test.ExpectFailure(t, e.q.IsButtonDown(right))
	test.ExpectEquality(t, e.q.GetAnalogValue(axis), 0)
	test.ExpectEquality(t, e.gb.Connected(), connectivity.Gamepad)
	test.ExpectInequality(t, len(evs), 0)
	for _, ev := range evs {
		test.ExpectInequality(t, ev.Type, eventqueue.ControllerUnplugged)
	}

	// the next good read is applied even though the packet number is
	// unchanged
	e.drv.readErr = nil
	e.poll(false)
	test.ExpectSuccess(t, e.q.IsButtonDown(a))
	test.ExpectSuccess(t, e.q.IsButtonDown(right))
	test.ExpectInequality(t, e.q.GetAnalogValue(axis), 0)
}

func TestHotplug(t *testing.T) {
	e := newEnv(t)
	e.poll(true)

	e.drv.connected[2] = true
	e.poll(false)
	test.ExpectEquality(t, e.gb.Connected(), connectivity.None)

	// a notification causes the unconnected users to be probed
	e.gb.Hotplug(backends.Notification{Kind: backends.DeviceInserted, Backend: "gamepad"})
	evs := e.poll(false)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ControllerInserted)
	test.ExpectEquality(t, evs[0].Data, 2)
	test.ExpectEquality(t, e.gb.Connected(), connectivity.Gamepad)

	// and only on the next sample
	reads := e.drv.reads[3]
	e.poll(false)
	test.ExpectEquality(t, e.drv.reads[3], reads)
}

func TestPacketNumber(t *testing.T) {
	e := newEnv(t)
	e.drv.connected[0] = true
	e.poll(true)

	e.drv.press(0, gamepad.ButtonX)
	evs := e.poll(false)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.KeyXButtonX)

	// state changed without a new packet number. the sample is skipped
	e.drv.state[0].Buttons = 0
	test.ExpectEquality(t, len(e.poll(false)), 0)
	test.ExpectSuccess(t, e.q.IsButtonDown(codes.KeyXButtonX))

	e.drv.state[0].PacketNumber++
	test.ExpectEquality(t, len(e.poll(false)), 1)
	test.ExpectFailure(t, e.q.IsButtonDown(codes.KeyXButtonX))
}

func TestSticks(t *testing.T) {
	e := newEnv(t)
	e.drv.connected[0] = true
	e.poll(true)

	// within the cross deadzone
	e.drv.state[0].ThumbLX = 5000
	e.drv.state[0].PacketNumber++
	test.ExpectEquality(t, len(e.poll(false)), 0)

	// stick up past the axis button threshold
	e.drv.state[0].ThumbLY = 32767
	e.drv.state[0].PacketNumber++
	evs := e.poll(false)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.KeyXStick1Up)
	test.ExpectEquality(t, e.q.GetAnalogValue(codes.JoystickAxis(0, codes.AxisY)), -32767)
	test.ExpectEquality(t, e.q.GetAnalogValue(codes.JoystickAxis(0, codes.AxisX)), 0)
}

func TestSquareDeadzone(t *testing.T) {
	e := newEnv(t)
	prefs := gamepad.NewPreferences()
	test.ExpectSuccess(t, prefs.DeadzoneShape.Set(gamepad.DeadzoneSquare))
	e.gb = gamepad.NewBackend(e.drv, prefs)
	test.DemandSuccess(t, e.gb.Init(e.q, e.reg))

	e.drv.connected[0] = true
	e.poll(true)

	// one axis outside of the deadzone. the other passes through unscaled
	e.drv.state[0].ThumbLX = 5000
	e.drv.state[0].ThumbLY = 16000
	e.drv.state[0].PacketNumber++
	e.poll(false)
	test.ExpectEquality(t, e.q.GetAnalogValue(codes.JoystickAxis(0, codes.AxisX)), 5000)
	test.ExpectEquality(t, e.q.GetAnalogValue(codes.JoystickAxis(0, codes.AxisY)), -16000)

	// invalid shapes are refused
	err := prefs.DeadzoneShape.Set("circle")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, gamepad.InvalidDeadzoneShape))
	test.ExpectEquality(t, prefs.DeadzoneShape.String(), gamepad.DeadzoneSquare)
}

func TestTriggers(t *testing.T) {
	e := newEnv(t)
	e.drv.connected[0] = true
	e.poll(true)

	// below the trigger threshold
	e.drv.state[0].LeftTrigger = 20
	e.drv.state[0].PacketNumber++
	test.ExpectEquality(t, len(e.poll(false)), 0)

	e.drv.state[0].LeftTrigger = 255
	e.drv.state[0].PacketNumber++
	evs := e.poll(false)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.KeyXButtonLTrigger)
	test.ExpectEquality(t, e.q.GetAnalogValue(codes.JoystickAxis(0, codes.AxisZ)), 32767)

	e.drv.state[0].RightTrigger = 255
	e.drv.state[0].PacketNumber++
	evs = e.poll(false)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.KeyXButtonRTrigger)
	test.ExpectEquality(t, e.q.GetAnalogValue(codes.JoystickAxis(0, codes.AxisZ)), 0)
}

func TestQuitHold(t *testing.T) {
	e := newEnv(t)
	e.drv.connected[0] = true
	e.poll(true)

	countQuit := func(evs []eventqueue.Event) int {
		n := 0
		for _, ev := range evs {
			if ev.Type == eventqueue.Quit {
				n++
			}
		}
		return n
	}

	e.drv.press(0, gamepad.ButtonStart|gamepad.ButtonBack)
	test.ExpectEquality(t, countQuit(e.poll(false)), 0)

	e.clk.Add(1500 * time.Millisecond)
	test.ExpectEquality(t, countQuit(e.poll(false)), 0)

	e.clk.Add(600 * time.Millisecond)
	test.ExpectEquality(t, countQuit(e.poll(false)), 1)

	// only once per hold
	e.clk.Add(5 * time.Second)
	test.ExpectEquality(t, countQuit(e.poll(false)), 0)

	// release and hold again
	e.drv.press(0, gamepad.ButtonStart)
	e.poll(false)
	e.drv.press(0, gamepad.ButtonStart|gamepad.ButtonBack)
	e.poll(false)
	e.clk.Add(2 * time.Second)
	test.ExpectEquality(t, countQuit(e.poll(false)), 1)
}

func TestSignificantInput(t *testing.T) {
	e := newEnv(t)
	e.reg.SetConnectedDevices(connectivity.KeyboardMouse | connectivity.Gamepad)
	e.reg.SampleInputToFindCurrentDevice(true)
	e.drv.connected[0] = true
	e.poll(true)

	e.drv.press(0, gamepad.ButtonB)
	e.poll(false)
	test.ExpectEquality(t, e.reg.GetCurrentInputDevice(), connectivity.None)

	e.drv.press(0, gamepad.ButtonB|gamepad.ButtonA)
	e.poll(false)
	test.ExpectEquality(t, e.reg.GetCurrentInputDevice(), connectivity.Gamepad)
}

func TestRumble(t *testing.T) {
	e := newEnv(t)
	e.drv.connected[2] = true
	e.poll(true)

	test.ExpectFailure(t, e.gb.SetRumble(0, 1, 1))
	test.ExpectFailure(t, e.gb.SetRumble(gamepad.MaxUsers, 1, 1))

	test.ExpectSuccess(t, e.gb.SetRumble(2, 1.0, 0.5))
	test.ExpectEquality(t, e.drv.vibration[2], vibration{left: 0xffff, right: 0x7fff})

	test.ExpectSuccess(t, e.gb.StopRumble(2))
	test.ExpectEquality(t, e.drv.vibration[2], vibration{})
}
