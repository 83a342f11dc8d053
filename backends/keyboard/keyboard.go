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

package keyboard

import (
	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/connectivity"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/logger"
)

// ToggleState is implemented by the platform to report the OS state of the
// lock keys.
type ToggleState interface {
	Toggles() (capsLock bool, numLock bool, scrollLock bool)
}

// Handler is the interface through which a platform message pump delivers
// keyboard, mouse and window messages. It is implemented by Backend.
type Handler interface {
	KeyDown(scan codes.ButtonCode, virtual codes.ButtonCode, repeat bool)
	KeyUp(scan codes.ButtonCode, virtual codes.ButtonCode)
	Char(r rune)
	MouseButton(code codes.ButtonCode, down bool, x int, y int)
	MouseMove(x int, y int)
	MouseWheel(delta int)
	Quit()
	Close()
	WindowResized(width int, height int)
	IME(typ eventqueue.EventType, data int)
}

// the maximum time and distance between two clicks of the same button for
// the second click to count as a double click.
const (
	doubleClickTime     = 500
	doubleClickDistance = 4
)

type click struct {
	code codes.ButtonCode
	tick uint32
	x, y int
}

// Backend for the keyboard and mouse. Unlike other backends it is driven by
// the platform message pump through the Handler interface. Sample() only
// synthesizes the lock key pseudo-buttons.
type Backend struct {
	sink backends.Sink
	devs backends.Devices

	toggles ToggleState

	lastClick click

	// most recent cursor position reported by the platform
	cursorX, cursorY int
}

// NewBackend is the preferred method of initialisation for the Backend type.
// The toggles argument can be nil.
func NewBackend(toggles ToggleState) *Backend {
	return &Backend{
		toggles: toggles,
	}
}

// Name implements the backends.Backend interface.
func (kb *Backend) Name() string {
	return "keyboard"
}

// Init implements the backends.Backend interface.
func (kb *Backend) Init(sink backends.Sink, devs backends.Devices) error {
	kb.sink = sink
	kb.devs = devs
	return nil
}

// Sample implements the backends.Backend interface.
func (kb *Backend) Sample(_ bool) {
	if kb.toggles == nil {
		return
	}

	tick := kb.sink.Tick()
	caps, num, scroll := kb.toggles.Toggles()
	backends.PostButton(kb.sink, tick, codes.KeyCapsLockToggle, caps)
	backends.PostButton(kb.sink, tick, codes.KeyNumLockToggle, num)
	backends.PostButton(kb.sink, tick, codes.KeyScrollLockToggle, scroll)
}

// Connected implements the backends.Backend interface. The keyboard and mouse
// are always connected.
func (kb *Backend) Connected() connectivity.Device {
	return connectivity.KeyboardMouse
}

// Shutdown implements the backends.Backend interface.
func (kb *Backend) Shutdown() {
	if kb.sink == nil {
		return
	}
	kb.sink.ReleaseButtons(kb.sink.Tick(), codes.KeyFirst, codes.MouseLast)
}

// CursorPosition returns the most recent position of the cursor reported by
// the platform.
func (kb *Backend) CursorPosition() (int, int) {
	return kb.cursorX, kb.cursorY
}

// KeyDown implements the Handler interface. Auto-repeated keys do not change
// the state of the button but are still posted as KeyCodeTyped events.
func (kb *Backend) KeyDown(scan codes.ButtonCode, virtual codes.ButtonCode, repeat bool) {
	if !scan.IsValid() {
		return
	}
	if virtual == codes.ButtonCodeNone {
		virtual = scan
	}

	tick := kb.sink.Tick()
	if !repeat {
		kb.sink.PostButtonPressedEvent(eventqueue.ButtonPressed, tick, scan, virtual)
	}
	kb.sink.PostEvent(eventqueue.KeyCodeTyped, tick, int(virtual), 0, 0)
}

// KeyUp implements the Handler interface.
func (kb *Backend) KeyUp(scan codes.ButtonCode, virtual codes.ButtonCode) {
	if !scan.IsValid() {
		return
	}
	if virtual == codes.ButtonCodeNone {
		virtual = scan
	}
	kb.sink.PostButtonReleasedEvent(eventqueue.ButtonReleased, kb.sink.Tick(), scan, virtual)
}

// Char implements the Handler interface.
func (kb *Backend) Char(r rune) {
	kb.sink.PostEvent(eventqueue.KeyTyped, kb.sink.Tick(), int(r), 0, 0)
}

// MouseButton implements the Handler interface.
func (kb *Backend) MouseButton(code codes.ButtonCode, down bool, x int, y int) {
	if !codes.IsMouseCode(code) {
		return
	}

	tick := kb.sink.Tick()

	if !down {
		kb.sink.PostButtonReleasedEvent(eventqueue.ButtonReleased, tick, code, code)
		return
	}

	if code == codes.MouseLeft {
		kb.devs.ReportSignificantInput(connectivity.KeyboardMouse)
	}

	lc := kb.lastClick
	if lc.code == code && tick-lc.tick <= doubleClickTime &&
		abs(x-lc.x) <= doubleClickDistance && abs(y-lc.y) <= doubleClickDistance {
		// a third click is not another double click
		kb.lastClick = click{}
		kb.sink.PostButtonPressedEvent(eventqueue.ButtonDoubleClicked, tick, code, code)
		return
	}

	kb.lastClick = click{code: code, tick: tick, x: x, y: y}
	kb.sink.PostButtonPressedEvent(eventqueue.ButtonPressed, tick, code, code)
}

// MouseMove implements the Handler interface. The cursor position is always
// recorded but the analog values are only updated if the keyboard and mouse
// are reading input.
func (kb *Backend) MouseMove(x int, y int) {
	if x == kb.cursorX && y == kb.cursorY {
		return
	}
	kb.cursorX = x
	kb.cursorY = y

	if !kb.devs.IsDeviceReadingInput(connectivity.KeyboardMouse) {
		return
	}

	tick := kb.sink.Tick()
	kb.sink.SetAnalogValue(tick, codes.MouseX, x)
	kb.sink.SetAnalogValue(tick, codes.MouseY, y)
	kb.sink.PostEvent(eventqueue.AnalogValueChanged, tick, int(codes.MouseXY), x, y)
}

// MouseWheel implements the Handler interface. Each notch of the wheel is also
// posted as an immediate press and release of the wheel pseudo-button.
func (kb *Backend) MouseWheel(delta int) {
	if delta == 0 {
		return
	}

	tick := kb.sink.Tick()

	if kb.devs.IsDeviceReadingInput(connectivity.KeyboardMouse) {
		kb.sink.AddAnalogDelta(tick, codes.MouseWheel, delta)
	}

	code := codes.MouseWheelUp
	if delta < 0 {
		code = codes.MouseWheelDown
	}
	kb.sink.PostButtonPressedEvent(eventqueue.ButtonPressed, tick, code, code)
	kb.sink.PostButtonReleasedEvent(eventqueue.ButtonReleased, tick, code, code)
}

// Quit implements the Handler interface.
func (kb *Backend) Quit() {
	kb.sink.PostEvent(eventqueue.Quit, kb.sink.Tick(), 0, 0, 0)
}

// Close implements the Handler interface.
func (kb *Backend) Close() {
	kb.sink.PostEvent(eventqueue.Close, kb.sink.Tick(), 0, 0, 0)
}

// WindowResized implements the Handler interface.
func (kb *Backend) WindowResized(width int, height int) {
	kb.sink.PostEvent(eventqueue.WindowSizeChanged, kb.sink.Tick(), width, height, 0)
}

// IME implements the Handler interface. Only events in the IME family and
// InputLanguageChanged are accepted.
func (kb *Backend) IME(typ eventqueue.EventType, data int) {
	switch typ {
	case eventqueue.InputLanguageChanged,
		eventqueue.IMESetWindow,
		eventqueue.IMEStartComposition,
		eventqueue.IMEComposition,
		eventqueue.IMEEndComposition,
		eventqueue.IMEShowCandidates,
		eventqueue.IMEChangeCandidates,
		eventqueue.IMECloseCandidates,
		eventqueue.IMERecomputeModes:
		kb.sink.PostEvent(typ, kb.sink.Tick(), data, 0, 0)
	default:
		logger.Logf(logger.Allow, "keyboard", "not an IME event: %s", typ)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
