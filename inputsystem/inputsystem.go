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

package inputsystem

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/backends/keyboard"
	"github.com/jetsetilly/gopherinput/backends/motion"
	"github.com/jetsetilly/gopherinput/backends/steamcontroller"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/connectivity"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/logger"
)

// Error patterns.
const (
	AlreadyAttached = "inputsystem: already attached to window (%#x)"
	NotAttached     = "inputsystem: not attached to a window"
)

// size of the hotplug notification buffer.
const notificationQueueLen = 32

// the number of users tried by StopAllRumble().
const maxRumbleUsers = 4

type backend struct {
	backends.Backend

	// init failed. the backend is never sampled
	failed bool
}

// InputSystem is the single point of contact between the application and
// the input backends.
type InputSystem struct {
	clk   clock.Clock
	prefs *Preferences

	queue *eventqueue.Queue
	reg   *connectivity.Registry

	pump Pump
	kb   *keyboard.Backend

	backends []*backend

	steam  *steamcontroller.Backend
	motion *motion.Backend

	notify chan backends.Notification

	// the devices reported by the backends at the most recent poll. devices
	// set by the host with SetInputDeviceConnected() are not included
	backendConnected connectivity.Device

	inGame         bool
	controllerSeen bool
	rescanned      bool
	lastRescan     uint32

	attached bool
	window   uintptr
}

// NewInputSystem is the preferred method of initialisation for the
// InputSystem type.
//
// The clock argument can be nil, in which case the system clock is used.
// The prefs argument can also be nil, in which case default values are
// used. The pump argument can be nil if there is no window, in which case
// there is no keyboard or mouse input.
//
// Backends are initialised in order. A backend that fails to initialise is
// logged and then ignored for the life of the InputSystem.
func NewInputSystem(clk clock.Clock, prefs *Preferences, pump Pump, bs ...backends.Backend) *InputSystem {
	if clk == nil {
		clk = clock.New()
	}
	if prefs == nil {
		prefs = defaultPreferences()
	}

	is := &InputSystem{
		clk:    clk,
		prefs:  prefs,
		queue:  eventqueue.NewQueue(clk),
		reg:    connectivity.NewRegistry(),
		pump:   pump,
		notify: make(chan backends.Notification, notificationQueueLen),
	}

	if pump != nil {
		is.kb = keyboard.NewBackend(pump)
		bs = append([]backends.Backend{is.kb}, bs...)
	}

	for _, b := range bs {
		e := &backend{Backend: b}
		if err := b.Init(is.queue, is.reg); err != nil {
			logger.Logf(logger.Allow, "inputsystem", "%s: %v", b.Name(), err)
			e.failed = true
		} else {
			logger.Logf(logger.Allow, "inputsystem", "%s: ready", b.Name())
			switch b := b.(type) {
			case *steamcontroller.Backend:
				if is.steam == nil {
					is.steam = b
				}
			case *motion.Backend:
				if is.motion == nil {
					is.motion = b
				}
			}
		}
		is.backends = append(is.backends, e)
	}

	return is
}

// Preferences returns the preferences in use.
func (is *InputSystem) Preferences() *Preferences {
	return is.prefs
}

// Shutdown every backend. Rumble is stopped and all buttons are released.
func (is *InputSystem) Shutdown() {
	is.StopAllRumble()
	for _, b := range is.backends {
		if !b.failed {
			b.Shutdown()
		}
	}
}

// Notify queues a hotplug notification for the next call to
// PollInputState(). Safe to call from any goroutine. The notification is
// dropped if the queue is full.
func (is *InputSystem) Notify(n backends.Notification) {
	select {
	case is.notify <- n:
	default:
		logger.Logf(logger.Allow, "inputsystem", "dropped notification: %s", n)
	}
}

// shouldRescan returns true if backends should look for new controllers
// during this poll.
func (is *InputSystem) shouldRescan(tick uint32) bool {
	if !is.rescanned || !is.inGame {
		return true
	}
	interval := is.prefs.RescanInGameNever.Get().(int)
	if is.controllerSeen {
		interval = is.prefs.RescanInGame.Get().(int)
	}
	return tick-is.lastRescan >= uint32(interval)
}

// PollInputState is called once per frame. Queries made after this function
// returns see the input that arrived before and during the poll.
//
// The inGame argument affects how often the backends look for newly
// connected controllers.
func (is *InputSystem) PollInputState(inGame bool) {
	is.inGame = inGame

	tick := is.queue.Tick()
	rescan := is.shouldRescan(tick)
	if rescan {
		is.rescanned = true
		is.lastRescan = tick
	}

	is.queue.BeginPoll()

	is.drainNotifications()

	connected := connectivity.None
	for _, b := range is.backends {
		if b.failed {
			continue
		}
		b.Sample(rescan)
		connected = connected.Insert(b.Connected())
	}

	if connected.Remove(connectivity.KeyboardMouse) != connectivity.None {
		is.controllerSeen = true
	}
	is.foldConnected(connected)

	if is.pump != nil {
		is.pump.Drain(is.kb)
	}

	is.queue.EndPoll()
}

// foldConnected applies changes to the devices reported by the backends.
// Only the devices that changed since the previous poll are touched so that
// devices set by the host are unaffected.
func (is *InputSystem) foldConnected(connected connectivity.Device) {
	removed := is.backendConnected.Remove(connected)
	added := connected.Remove(is.backendConnected)
	is.backendConnected = connected
	if removed != connectivity.None {
		is.reg.SetInputDeviceConnected(removed, false)
	}
	if added != connectivity.None {
		is.reg.SetInputDeviceConnected(added, true)
	}
}

func (is *InputSystem) drainNotifications() {
	for {
		select {
		case n := <-is.notify:
			is.hotplug(n)
		default:
			return
		}
	}
}

func (is *InputSystem) hotplug(n backends.Notification) {
	logger.Log(logger.Allow, "inputsystem", n)
	for _, b := range is.backends {
		if b.failed || b.Name() != n.Backend {
			continue
		}
		if h, ok := b.Backend.(backends.Hotplugger); ok {
			h.Hotplug(n)
		}
		return
	}
}

// SleepUntilInput blocks until there is input or until maxMs milliseconds
// have passed. A negative value waits indefinitely. Returns true if there is
// input waiting.
//
// Without a pump there is nothing that can wake the caller, so the function
// sleeps for the full duration and returns false. In that case a negative
// value returns immediately rather than waiting indefinitely.
func (is *InputSystem) SleepUntilInput(maxMs int) bool {
	if is.pump != nil {
		return is.pump.WaitForInput(maxMs)
	}
	if maxMs > 0 {
		is.clk.Sleep(time.Duration(maxMs) * time.Millisecond)
	}
	return false
}

// AttachToWindow binds the input system to a window. All input state is
// discarded.
func (is *InputSystem) AttachToWindow(handle uintptr) error {
	if is.attached {
		return curated.Errorf(AlreadyAttached, is.window)
	}
	if wb, ok := is.pump.(WindowBinder); ok {
		if err := wb.Attach(handle); err != nil {
			return err
		}
	}
	is.attached = true
	is.window = handle
	is.queue.ClearInputState(true)
	logger.Logf(logger.Allow, "inputsystem", "attached to window %#x", handle)
	return nil
}

// DetachFromWindow unbinds the input system from the window. All input state
// is discarded.
func (is *InputSystem) DetachFromWindow() error {
	if !is.attached {
		return curated.Errorf(NotAttached)
	}
	if wb, ok := is.pump.(WindowBinder); ok {
		wb.Detach()
	}
	is.attached = false
	is.window = 0
	is.queue.ClearInputState(true)
	logger.Log(logger.Allow, "inputsystem", "detached from window")
	return nil
}

// ResetInputState discards all input state without detaching from the
// window.
func (is *InputSystem) ResetInputState() {
	is.queue.ClearInputState(true)
}

// PollCount returns the number of times PollInputState() has been called.
func (is *InputSystem) PollCount() int {
	return is.queue.PollCount()
}

// Tick returns the current time in milliseconds, in the same time base as
// the event ticks.
func (is *InputSystem) Tick() uint32 {
	return is.queue.Tick()
}

// IsButtonDown returns true if the button was down at the most recent poll.
func (is *InputSystem) IsButtonDown(c codes.ButtonCode) bool {
	return is.queue.IsButtonDown(c)
}

// GetButtonPressedTick returns the tick of the button's most recent press.
func (is *InputSystem) GetButtonPressedTick(c codes.ButtonCode) uint32 {
	return is.queue.GetButtonPressedTick(c)
}

// GetButtonReleasedTick returns the tick of the button's most recent
// release.
func (is *InputSystem) GetButtonReleasedTick(c codes.ButtonCode) uint32 {
	return is.queue.GetButtonReleasedTick(c)
}

// GetAnalogValue returns the value of the analog input.
func (is *InputSystem) GetAnalogValue(c codes.AnalogCode) int {
	return is.queue.GetAnalogValue(c)
}

// GetAnalogDelta returns the change to the analog input during the most
// recent poll.
func (is *InputSystem) GetAnalogDelta(c codes.AnalogCode) int {
	return is.queue.GetAnalogDelta(c)
}

// GetEventCount returns the number of events delivered by the most recent
// poll.
func (is *InputSystem) GetEventCount() int {
	return is.queue.GetEventCount()
}

// GetEventData returns the events delivered by the most recent poll. The
// slice belongs to the caller.
func (is *InputSystem) GetEventData() []eventqueue.Event {
	return is.queue.GetEventData()
}

// PostUserEvent posts an application event. It is delivered by a future
// poll along with the backend events.
func (is *InputSystem) PostUserEvent(typ eventqueue.EventType, data int, data2 int, data3 int) {
	is.queue.PostEvent(typ, is.queue.Tick(), data, data2, data3)
}

// GetCursorPosition returns the most recent cursor position reported by the
// window.
func (is *InputSystem) GetCursorPosition() (int, int) {
	if is.kb == nil {
		return 0, 0
	}
	return is.kb.CursorPosition()
}

// SetCursorPosition moves the cursor.
func (is *InputSystem) SetCursorPosition(x int, y int) {
	if is.pump != nil {
		is.pump.SetCursorPosition(x, y)
	}
}

// SetInputDeviceConnected marks a device as connected or disconnected.
// Backends report their own devices every poll. This function is for devices
// that have no backend.
func (is *InputSystem) SetInputDeviceConnected(d connectivity.Device, connected bool) {
	is.reg.SetInputDeviceConnected(d, connected)
}

// IsInputDeviceConnected returns true if the device is connected.
func (is *InputSystem) IsInputDeviceConnected(d connectivity.Device) bool {
	return is.reg.IsInputDeviceConnected(d)
}

// GetConnectedInputDevices returns the set of connected devices.
func (is *InputSystem) GetConnectedInputDevices() connectivity.Device {
	return is.reg.Connected()
}

// IsOnlySingleDeviceConnected returns the connected device if there is only
// one.
func (is *InputSystem) IsOnlySingleDeviceConnected() connectivity.Device {
	return is.reg.IsOnlySingleDeviceConnected()
}

// SetCurrentInputDevice selects the device that drives gameplay.
func (is *InputSystem) SetCurrentInputDevice(d connectivity.Device) {
	is.reg.SetCurrentInputDevice(d)
}

// GetCurrentInputDevice returns the device that drives gameplay.
func (is *InputSystem) GetCurrentInputDevice() connectivity.Device {
	return is.reg.GetCurrentInputDevice()
}

// IsDeviceReadingInput returns true if analog input from the device is
// being posted.
func (is *InputSystem) IsDeviceReadingInput(d connectivity.Device) bool {
	return is.reg.IsDeviceReadingInput(d)
}

// SampleInputToFindCurrentDevice enables or disables selection of the
// current device by the next significant input.
func (is *InputSystem) SampleInputToFindCurrentDevice(enable bool) {
	is.reg.SampleInputToFindCurrentDevice(enable)
}

// IsSamplingForCurrentDevice returns true if sampling is enabled.
func (is *InputSystem) IsSamplingForCurrentDevice() bool {
	return is.reg.IsSamplingForCurrentDevice()
}

// SetRumble starts the rumble motors for the user. The first backend that
// accepts the user ID handles the request.
func (is *InputSystem) SetRumble(left float32, right float32, userID int) {
	for _, b := range is.backends {
		if b.failed {
			continue
		}
		if r, ok := b.Backend.(backends.Rumbler); ok {
			if r.SetRumble(userID, left, right) {
				return
			}
		}
	}
}

// StopRumble stops the rumble motors for the user.
func (is *InputSystem) StopRumble(userID int) {
	for _, b := range is.backends {
		if b.failed {
			continue
		}
		if r, ok := b.Backend.(backends.Rumbler); ok {
			if r.StopRumble(userID) {
				return
			}
		}
	}
}

// StopAllRumble stops the rumble motors for every user of every backend.
func (is *InputSystem) StopAllRumble() {
	for _, b := range is.backends {
		if b.failed {
			continue
		}
		if r, ok := b.Backend.(backends.Rumbler); ok {
			for u := 0; u < maxRumbleUsers; u++ {
				r.StopRumble(u)
			}
		}
	}
}

// PushSteamControllerMode requests the mode on behalf of the caller
// identified by key. Does nothing if there is no Steam Controller backend.
func (is *InputSystem) PushSteamControllerMode(key any, mode steamcontroller.Mode) {
	if is.steam != nil {
		is.steam.PushMode(key, mode)
	}
}

// PopSteamControllerMode withdraws the request made by the caller identified
// by key.
func (is *InputSystem) PopSteamControllerMode(key any) {
	if is.steam != nil {
		is.steam.PopMode(key)
	}
}

// GetSteamControllerMode returns the active Steam Controller mode.
func (is *InputSystem) GetSteamControllerMode() steamcontroller.Mode {
	if is.steam == nil {
		return steamcontroller.GameControls
	}
	return is.steam.ActiveMode()
}

// GetMotionControllerStatus returns the status of the motion tracking
// system.
func (is *InputSystem) GetMotionControllerStatus() motion.Status {
	if is.motion == nil {
		return motion.StatusCameraNotConnected
	}
	return is.motion.Status()
}

// GetMotionControllerPosition returns the screen position of the motion
// controller.
func (is *InputSystem) GetMotionControllerPosition() mgl32.Vec2 {
	if is.motion == nil {
		return mgl32.Vec2{}
	}
	return is.motion.Position()
}

// GetMotionControllerRoll returns the roll of the motion controller in
// degrees.
func (is *InputSystem) GetMotionControllerRoll() float32 {
	if is.motion == nil {
		return 0
	}
	return motion.Roll(is.motion.Orientation())
}
