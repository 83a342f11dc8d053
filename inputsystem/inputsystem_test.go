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

package inputsystem_test

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/backends/keyboard"
	"github.com/jetsetilly/gopherinput/backends/motion"
	"github.com/jetsetilly/gopherinput/backends/steamcontroller"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/connectivity"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/inputsystem"
	"github.com/jetsetilly/gopherinput/test"
)

type fakePump struct {
	pending  []func(h keyboard.Handler)
	cursorX  int
	cursorY  int
	attached uintptr
}

func (p *fakePump) Toggles() (bool, bool, bool) {
	return false, false, false
}

func (p *fakePump) Drain(h keyboard.Handler) {
	for _, f := range p.pending {
		f(h)
	}
	p.pending = p.pending[:0]
}

func (p *fakePump) WaitForInput(_ int) bool {
	return len(p.pending) > 0
}

func (p *fakePump) SetCursorPosition(x int, y int) {
	p.cursorX = x
	p.cursorY = y
}

func (p *fakePump) Attach(handle uintptr) error {
	p.attached = handle
	return nil
}

func (p *fakePump) Detach() {
	p.attached = 0
}

func (p *fakePump) push(f func(h keyboard.Handler)) {
	p.pending = append(p.pending, f)
}

type fakeBackend struct {
	name      string
	initErr   error
	sink      backends.Sink
	connected connectivity.Device

	samples  int
	rescans  []bool
	hotplugs []backends.Notification

	// user IDs accepted by SetRumble()
	rumbleUsers map[int]bool
	rumble      map[int][2]float32

	onSample func(sink backends.Sink)
}

func (b *fakeBackend) Name() string {
	return b.name
}

func (b *fakeBackend) Init(sink backends.Sink, _ backends.Devices) error {
	b.sink = sink
	return b.initErr
}

func (b *fakeBackend) Sample(rescan bool) {
	b.samples++
	b.rescans = append(b.rescans, rescan)
	if b.onSample != nil {
		b.onSample(b.sink)
	}
}

func (b *fakeBackend) Connected() connectivity.Device {
	return b.connected
}

func (b *fakeBackend) Shutdown() {
}

func (b *fakeBackend) Hotplug(n backends.Notification) {
	b.hotplugs = append(b.hotplugs, n)
}

func (b *fakeBackend) SetRumble(userID int, left float32, right float32) bool {
	if !b.rumbleUsers[userID] {
		return false
	}
	if b.rumble == nil {
		b.rumble = make(map[int][2]float32)
	}
	b.rumble[userID] = [2]float32{left, right}
	return true
}

func (b *fakeBackend) StopRumble(userID int) bool {
	return b.SetRumble(userID, 0, 0)
}

func TestPumpDrainedDuringPoll(t *testing.T) {
	pump := &fakePump{}
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, pump)

	pump.push(func(h keyboard.Handler) {
		h.KeyDown(codes.KeyA, codes.KeyA, false)
		h.MouseMove(100, 50)
	})
	test.ExpectSuccess(t, is.SleepUntilInput(0))

	is.PollInputState(false)
	test.ExpectSuccess(t, is.IsButtonDown(codes.KeyA))
	test.DemandEquality(t, is.GetEventCount(), 5)
	evs := is.GetEventData()
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonPressed)
	test.ExpectEquality(t, evs[1].Type, eventqueue.KeyCodeTyped)
	test.ExpectEquality(t, evs[4].Type, eventqueue.AnalogValueChanged)
	test.ExpectEquality(t, codes.AnalogCode(evs[4].Data), codes.MouseXY)
	test.ExpectEquality(t, is.GetAnalogValue(codes.MouseX), 100)

	x, y := is.GetCursorPosition()
	test.ExpectEquality(t, x, 100)
	test.ExpectEquality(t, y, 50)
	is.SetCursorPosition(10, 20)
	test.ExpectEquality(t, pump.cursorX, 10)
	test.ExpectEquality(t, pump.cursorY, 20)

	// keyboard and mouse are always connected while there is a pump
	test.ExpectEquality(t, is.GetConnectedInputDevices(), connectivity.KeyboardMouse)
	test.ExpectEquality(t, is.GetCurrentInputDevice(), connectivity.KeyboardMouse)

	is.PollInputState(false)
	test.ExpectEquality(t, is.GetEventCount(), 0)
	test.ExpectSuccess(t, is.IsButtonDown(codes.KeyA))
}

func TestDeliveredOnce(t *testing.T) {
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, nil)

	is.PostUserEvent(eventqueue.FirstAppEvent, 1, 2, 3)
	test.ExpectEquality(t, is.GetEventCount(), 0)

	is.PollInputState(false)
	test.DemandEquality(t, is.GetEventCount(), 1)
	test.ExpectEquality(t, is.GetEventData()[0].Data3, 3)

	is.PollInputState(false)
	test.ExpectEquality(t, is.GetEventCount(), 0)
	test.ExpectEquality(t, is.PollCount(), 2)
}

func TestBackendEventsDuringPoll(t *testing.T) {
	fb := &fakeBackend{name: "fake"}
	fb.onSample = func(sink backends.Sink) {
		if fb.samples == 1 {
			backends.PostButton(sink, sink.Tick(), codes.KeyXButtonA, true)
		}
	}
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, nil, fb)

	// posted during the poll and seen by the same poll
	is.PollInputState(false)
	test.ExpectEquality(t, is.GetEventCount(), 1)
	test.ExpectSuccess(t, is.IsButtonDown(codes.KeyXButtonA))

	// state survives, the event does not
	is.PollInputState(false)
	test.ExpectEquality(t, is.GetEventCount(), 0)
	test.ExpectSuccess(t, is.IsButtonDown(codes.KeyXButtonA))
}

func TestInitFailure(t *testing.T) {
	bad := &fakeBackend{name: "bad", initErr: errors.New("no driver"), connected: connectivity.Gamepad}
	good := &fakeBackend{name: "good", connected: connectivity.SteamController}
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, nil, bad, good)

	is.PollInputState(false)
	is.PollInputState(false)
	test.ExpectEquality(t, bad.samples, 0)
	test.ExpectEquality(t, good.samples, 2)

	// only working backends contribute to the connected devices
	test.ExpectEquality(t, is.GetConnectedInputDevices(), connectivity.SteamController)
	test.ExpectEquality(t, is.IsOnlySingleDeviceConnected(), connectivity.SteamController)
}

func TestConnectivityFold(t *testing.T) {
	pump := &fakePump{}
	fb := &fakeBackend{name: "fake"}
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, pump, fb)

	is.PollInputState(false)
	test.ExpectEquality(t, is.GetCurrentInputDevice(), connectivity.KeyboardMouse)

	fb.connected = connectivity.Gamepad
	is.PollInputState(false)
	test.ExpectSuccess(t, is.IsInputDeviceConnected(connectivity.Gamepad))
	test.ExpectSuccess(t, is.IsInputDeviceConnected(connectivity.KeyboardMouse))
	test.ExpectEquality(t, is.GetCurrentInputDevice(), connectivity.None)
	test.ExpectSuccess(t, is.IsDeviceReadingInput(connectivity.Gamepad))

	is.SetCurrentInputDevice(connectivity.Gamepad)
	test.ExpectFailure(t, is.IsDeviceReadingInput(connectivity.KeyboardMouse))

	// the current device is lost when it is unplugged
	fb.connected = connectivity.None
	is.PollInputState(false)
	test.ExpectEquality(t, is.GetCurrentInputDevice(), connectivity.KeyboardMouse)

	is.SampleInputToFindCurrentDevice(true)
	test.ExpectSuccess(t, is.IsSamplingForCurrentDevice())
}

func TestHostConnectivitySurvivesPoll(t *testing.T) {
	pump := &fakePump{}
	fb := &fakeBackend{name: "fake"}
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, pump, fb)

	// no backend reports a hydra so only the host can connect it
	is.SetInputDeviceConnected(connectivity.Hydra, true)
	is.PollInputState(false)
	test.ExpectSuccess(t, is.IsInputDeviceConnected(connectivity.Hydra))
	test.ExpectSuccess(t, is.IsInputDeviceConnected(connectivity.KeyboardMouse))

	// backend changes leave the host's device alone
	fb.connected = connectivity.Gamepad
	is.PollInputState(false)
	test.ExpectSuccess(t, is.IsInputDeviceConnected(connectivity.Hydra))
	test.ExpectSuccess(t, is.IsInputDeviceConnected(connectivity.Gamepad))

	fb.connected = connectivity.None
	is.PollInputState(false)
	test.ExpectSuccess(t, is.IsInputDeviceConnected(connectivity.Hydra))
	test.ExpectFailure(t, is.IsInputDeviceConnected(connectivity.Gamepad))

	is.SetInputDeviceConnected(connectivity.Hydra, false)
	is.PollInputState(false)
	test.ExpectFailure(t, is.IsInputDeviceConnected(connectivity.Hydra))
	test.ExpectEquality(t, is.GetConnectedInputDevices(), connectivity.KeyboardMouse)
}

func TestRescanCadence(t *testing.T) {
	clk := clock.NewMock()
	fb := &fakeBackend{name: "fake"}
	is := inputsystem.NewInputSystem(clk, nil, nil, fb)

	// always rescan outside of the game
	is.PollInputState(false)
	is.PollInputState(false)
	test.ExpectEquality(t, fb.rescans[0], true)
	test.ExpectEquality(t, fb.rescans[1], true)

	// in game and no controller ever seen
	is.PollInputState(true)
	test.ExpectEquality(t, fb.rescans[2], false)
	clk.Add(9999 * time.Millisecond)
	is.PollInputState(true)
	test.ExpectEquality(t, fb.rescans[3], false)
	clk.Add(time.Millisecond)
	is.PollInputState(true)
	test.ExpectEquality(t, fb.rescans[4], true)

	// a controller has been seen
	fb.connected = connectivity.Gamepad
	is.PollInputState(true)
	test.ExpectEquality(t, fb.rescans[5], false)
	clk.Add(2000 * time.Millisecond)
	is.PollInputState(true)
	test.ExpectEquality(t, fb.rescans[6], true)

	// the preference is read every poll
	test.ExpectSuccess(t, is.Preferences().RescanInGame.Set(100))
	clk.Add(100 * time.Millisecond)
	is.PollInputState(true)
	test.ExpectEquality(t, fb.rescans[7], true)
}

func TestNotify(t *testing.T) {
	fb := &fakeBackend{name: "joystick"}
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, nil, fb)

	n := backends.Notification{Kind: backends.DeviceInserted, Backend: "joystick", ID: "js0"}
	is.Notify(n)
	is.Notify(backends.Notification{Kind: backends.DeviceInserted, Backend: "other", ID: "x"})
	test.ExpectEquality(t, len(fb.hotplugs), 0)

	is.PollInputState(false)
	test.DemandEquality(t, len(fb.hotplugs), 1)
	test.ExpectEquality(t, fb.hotplugs[0], n)

	// notifications beyond the capacity of the queue are dropped
	for i := 0; i < 100; i++ {
		is.Notify(n)
	}
	is.PollInputState(false)
	test.ExpectEquality(t, len(fb.hotplugs), 33)
}

func TestRumbleRouting(t *testing.T) {
	first := &fakeBackend{name: "first", rumbleUsers: map[int]bool{0: true}}
	second := &fakeBackend{name: "second", rumbleUsers: map[int]bool{0: true, 1: true}}
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, nil, first, second)

	is.SetRumble(0.5, 0.25, 0)
	test.ExpectEquality(t, first.rumble[0], [2]float32{0.5, 0.25})
	test.ExpectEquality(t, len(second.rumble), 0)

	is.SetRumble(1, 1, 1)
	test.ExpectEquality(t, second.rumble[1], [2]float32{1, 1})

	is.StopRumble(1)
	test.ExpectEquality(t, second.rumble[1], [2]float32{0, 0})

	is.SetRumble(1, 1, 0)
	is.StopAllRumble()
	test.ExpectEquality(t, first.rumble[0], [2]float32{0, 0})
	test.ExpectEquality(t, second.rumble[0], [2]float32{0, 0})

	// unknown users are ignored
	is.SetRumble(1, 1, 3)
}

func TestAttachDetach(t *testing.T) {
	pump := &fakePump{}
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, pump)

	test.ExpectSuccess(t, is.AttachToWindow(0x1234))
	test.ExpectEquality(t, pump.attached, uintptr(0x1234))
	err := is.AttachToWindow(0x5678)
	test.ExpectSuccess(t, curated.Is(err, inputsystem.AlreadyAttached))

	pump.push(func(h keyboard.Handler) {
		h.KeyDown(codes.KeySpace, codes.KeySpace, false)
	})
	is.PollInputState(false)
	test.ExpectSuccess(t, is.IsButtonDown(codes.KeySpace))

	// detaching discards everything
	test.ExpectSuccess(t, is.DetachFromWindow())
	test.ExpectEquality(t, pump.attached, uintptr(0))
	test.ExpectFailure(t, is.IsButtonDown(codes.KeySpace))
	test.ExpectEquality(t, is.GetEventCount(), 0)

	err = is.DetachFromWindow()
	test.ExpectSuccess(t, curated.Is(err, inputsystem.NotAttached))
}

func TestSleepWithoutPump(t *testing.T) {
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, nil)
	test.ExpectFailure(t, is.SleepUntilInput(-1))
}

type nullSteamAPI struct{}

func (nullSteamAPI) Init() error {
	return nil
}

func (nullSteamAPI) RunFrame() {
}

func (nullSteamAPI) ConnectedControllers() []steamcontroller.ControllerHandle {
	return nil
}

func (nullSteamAPI) ActionSetHandle(_ string) steamcontroller.ActionSetHandle {
	return 0
}

func (nullSteamAPI) DigitalActionHandle(_ string) steamcontroller.DigitalActionHandle {
	return 0
}

func (nullSteamAPI) DigitalActionData(_ steamcontroller.ControllerHandle, _ steamcontroller.DigitalActionHandle) steamcontroller.DigitalActionData {
	return steamcontroller.DigitalActionData{}
}

func (nullSteamAPI) ActivateActionSet(_ steamcontroller.ControllerHandle, _ steamcontroller.ActionSetHandle) {
}

func (nullSteamAPI) TriggerVibration(_ steamcontroller.ControllerHandle, _ uint16, _ uint16) {
}

func TestSteamControllerMode(t *testing.T) {
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, nil)
	is.PushSteamControllerMode("menu", steamcontroller.MenuControls)
	test.ExpectEquality(t, is.GetSteamControllerMode(), steamcontroller.GameControls)

	is = inputsystem.NewInputSystem(clock.NewMock(), nil, nil, steamcontroller.NewBackend(nullSteamAPI{}))
	is.PushSteamControllerMode("menu", steamcontroller.MenuControls)
	test.ExpectEquality(t, is.GetSteamControllerMode(), steamcontroller.MenuControls)
	is.PopSteamControllerMode("menu")
	test.ExpectEquality(t, is.GetSteamControllerMode(), steamcontroller.GameControls)
}

func TestNoMotionController(t *testing.T) {
	is := inputsystem.NewInputSystem(clock.NewMock(), nil, nil)
	test.ExpectEquality(t, is.GetMotionControllerStatus(), motion.StatusCameraNotConnected)
	test.ExpectEquality(t, is.GetMotionControllerRoll(), float32(0))
}
