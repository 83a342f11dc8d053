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

package eventqueue

import (
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/jetsetilly/gopherinput/codes"
)

// Indexes into the pair of State slots.
const (
	Queued  = 0
	Current = 1
)

// Queue owns the two State slots and is the single point through which all
// input is written. It is safe to post events from any goroutine.
type Queue struct {
	crit sync.Mutex

	clk   clock.Clock
	start uint32

	states [2]State

	// polling is true between BeginPoll() and EndPoll(). while polling the
	// Current slot is the live slot, otherwise it is the Queued slot
	polling   bool
	pollCount int
}

// NewQueue is the preferred method of initialisation for the Queue type. The
// tick is measured from the moment of creation.
func NewQueue(clk clock.Clock) *Queue {
	if clk == nil {
		clk = clock.New()
	}
	q := &Queue{
		clk: clk,
	}
	q.start = q.now()
	return q
}

func (q *Queue) now() uint32 {
	return uint32(q.clk.Now().UnixMilli())
}

// Tick returns the number of milliseconds since the Queue was created. The
// value wraps after about 49.7 days.
func (q *Queue) Tick() uint32 {
	return q.now() - q.start
}

func (q *Queue) live() *State {
	if q.polling {
		return &q.states[Current]
	}
	return &q.states[Queued]
}

func (q *Queue) post(s *State, ev Event) {
	s.events = append(s.events, ev)
	s.dirty = true
}

// PostEvent appends an event to the live slot. There is no deduplication.
func (q *Queue) PostEvent(typ EventType, tick uint32, data int, data2 int, data3 int) {
	q.crit.Lock()
	defer q.crit.Unlock()
	q.post(q.live(), Event{Type: typ, Tick: tick, Data: data, Data2: data2, Data3: data3})
}

// PostButtonPressedEvent sets the button bit for the scan code, records the
// tick and posts an event carrying both codes. Nothing happens if the button
// is already down.
func (q *Queue) PostButtonPressedEvent(typ EventType, tick uint32, scan codes.ButtonCode, virtual codes.ButtonCode) {
	if !scan.IsValid() {
		return
	}

	q.crit.Lock()
	defer q.crit.Unlock()

	s := q.live()
	if s.buttons.isSet(scan) {
		return
	}
	s.buttons.set(scan)
	s.pressedTick[scan] = tick
	q.post(s, Event{Type: typ, Tick: tick, Data: int(scan), Data2: int(virtual)})
}

// PostButtonReleasedEvent is the mirror of PostButtonPressedEvent(). Nothing
// happens if the button is not down.
func (q *Queue) PostButtonReleasedEvent(typ EventType, tick uint32, scan codes.ButtonCode, virtual codes.ButtonCode) {
	if !scan.IsValid() {
		return
	}

	q.crit.Lock()
	defer q.crit.Unlock()

	s := q.live()
	if !s.buttons.isSet(scan) {
		return
	}
	s.buttons.clear(scan)
	s.releasedTick[scan] = tick
	q.post(s, Event{Type: typ, Tick: tick, Data: int(scan), Data2: int(virtual)})
}

// ReleaseButtons posts a release event for every button in the inclusive
// range that is currently down in the live slot. Used when a device
// disappears so that nothing is left stuck down.
func (q *Queue) ReleaseButtons(tick uint32, first codes.ButtonCode, last codes.ButtonCode) {
	if first < 1 {
		first = 1
	}
	if last > codes.ButtonCodeLast {
		last = codes.ButtonCodeLast
	}

	q.crit.Lock()
	defer q.crit.Unlock()

	s := q.live()
	for c := first; c <= last; c++ {
		if s.buttons.isSet(c) {
			s.buttons.clear(c)
			s.releasedTick[c] = tick
			q.post(s, Event{Type: ButtonReleased, Tick: tick, Data: int(c), Data2: int(c)})
		}
	}
}

// SetAnalogValue sets the absolute value of the analog code. The difference
// from the previous value is accumulated into the delta for the frame and an
// AnalogValueChanged event is posted if the value changed.
func (q *Queue) SetAnalogValue(tick uint32, code codes.AnalogCode, value int) {
	if !code.IsValid() {
		return
	}

	q.crit.Lock()
	defer q.crit.Unlock()

	s := q.live()
	delta := value - s.analogValue[code]
	if delta == 0 {
		return
	}
	s.analogValue[code] = value
	s.analogDelta[code] += delta
	q.post(s, Event{Type: AnalogValueChanged, Tick: tick, Data: int(code), Data2: value, Data3: delta})
}

// AddAnalogDelta adjusts the value of the analog code by delta. Used for
// relative controls such as the mouse wheel.
func (q *Queue) AddAnalogDelta(tick uint32, code codes.AnalogCode, delta int) {
	if !code.IsValid() || delta == 0 {
		return
	}

	q.crit.Lock()
	defer q.crit.Unlock()

	s := q.live()
	s.analogValue[code] += delta
	s.analogDelta[code] += delta
	q.post(s, Event{Type: AnalogValueChanged, Tick: tick, Data: int(code), Data2: s.analogValue[code], Data3: delta})
}

// BeginPoll brings everything accumulated in the Queued slot forward into the
// Current slot, including events, and makes Current the live slot.
//
// Events previously in Current are discarded. They have been seen by the
// consumer.
func (q *Queue) BeginPoll() {
	q.crit.Lock()
	defer q.crit.Unlock()

	q.states[Current].zeroDeltas()
	CopyInputState(&q.states[Current], &q.states[Queued], true)
	q.polling = true
	q.pollCount++
}

// EndPoll makes the Queued slot the live slot again and copies the
// non-event state of Current back into it so that steady state values are
// not lost. Deltas in Queued start again from zero.
func (q *Queue) EndPoll() {
	q.crit.Lock()
	defer q.crit.Unlock()

	q.polling = false
	CopyInputState(&q.states[Queued], &q.states[Current], false)
	q.states[Queued].zeroDeltas()
}

// IsPolling returns true if the queue is between BeginPoll() and EndPoll().
func (q *Queue) IsPolling() bool {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.polling
}

// PollCount returns the number of calls to BeginPoll().
func (q *Queue) PollCount() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.pollCount
}

// ClearInputState zeroes the button, tick and analog arrays of both slots.
// If purge is true pending events are also discarded.
func (q *Queue) ClearInputState(purge bool) {
	q.crit.Lock()
	defer q.crit.Unlock()

	ClearInputState(&q.states[Queued], purge)
	ClearInputState(&q.states[Current], purge)
}

// IsButtonDown returns true if the button is down in the Current slot.
func (q *Queue) IsButtonDown(c codes.ButtonCode) bool {
	if !c.IsValid() {
		return false
	}
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.states[Current].buttons.isSet(c)
}

// GetButtonPressedTick returns the tick at which the button was last pressed.
func (q *Queue) GetButtonPressedTick(c codes.ButtonCode) uint32 {
	if !c.IsValid() {
		return 0
	}
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.states[Current].pressedTick[c]
}

// GetButtonReleasedTick returns the tick at which the button was last
// released.
func (q *Queue) GetButtonReleasedTick(c codes.ButtonCode) uint32 {
	if !c.IsValid() {
		return 0
	}
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.states[Current].releasedTick[c]
}

// GetAnalogValue returns the current value of the analog code.
func (q *Queue) GetAnalogValue(c codes.AnalogCode) int {
	if !c.IsValid() {
		return 0
	}
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.states[Current].analogValue[c]
}

// GetAnalogDelta returns the change in the analog code over the last poll.
func (q *Queue) GetAnalogDelta(c codes.AnalogCode) int {
	if !c.IsValid() {
		return 0
	}
	q.crit.Lock()
	defer q.crit.Unlock()
	return q.states[Current].analogDelta[c]
}

// GetEventCount returns the number of events delivered by the last poll.
func (q *Queue) GetEventCount() int {
	q.crit.Lock()
	defer q.crit.Unlock()
	return len(q.states[Current].events)
}

// GetEventData returns a copy of the events delivered by the last poll. The
// list is only valid until the next poll.
func (q *Queue) GetEventData() []Event {
	q.crit.Lock()
	defer q.crit.Unlock()
	evs := make([]Event, len(q.states[Current].events))
	copy(evs, q.states[Current].events)
	return evs
}

// Snapshot returns a copy of the Current slot.
func (q *Queue) Snapshot() State {
	q.crit.Lock()
	defer q.crit.Unlock()
	s := q.states[Current]
	s.events = append([]Event(nil), s.events...)
	return s
}
