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

package eventqueue_test

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/test"
)

func poll(q *eventqueue.Queue) {
	q.BeginPoll()
	q.EndPoll()
}

func TestPressIdempotence(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())

	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 0, codes.KeyA, codes.KeyA)
	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 0, codes.KeyA, codes.KeyA)
	poll(q)

	test.ExpectEquality(t, q.GetEventCount(), 1)
	test.ExpectSuccess(t, q.IsButtonDown(codes.KeyA))

	// releasing a button that is not down produces no event
	q.PostButtonReleasedEvent(eventqueue.ButtonReleased, 0, codes.KeyB, codes.KeyB)
	poll(q)
	test.ExpectEquality(t, q.GetEventCount(), 0)

	q.PostButtonReleasedEvent(eventqueue.ButtonReleased, 0, codes.KeyA, codes.KeyA)
	q.PostButtonReleasedEvent(eventqueue.ButtonReleased, 0, codes.KeyA, codes.KeyA)
	poll(q)
	test.ExpectEquality(t, q.GetEventCount(), 1)
	test.ExpectFailure(t, q.IsButtonDown(codes.KeyA))

	// invalid codes are ignored
	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 0, codes.ButtonCodeInvalid, codes.ButtonCodeInvalid)
	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 0, codes.ButtonCodeNone, codes.ButtonCodeNone)
	poll(q)
	test.ExpectEquality(t, q.GetEventCount(), 0)
}

func TestScanAndVirtualCodes(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())

	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 10, codes.KeyPadEnter, codes.KeyEnter)
	poll(q)

	evs := q.GetEventData()
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonPressed)
	test.ExpectEquality(t, evs[0].Tick, uint32(10))
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.KeyPadEnter)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data2), codes.KeyEnter)

	// button state is indexed by the scan code
	test.ExpectSuccess(t, q.IsButtonDown(codes.KeyPadEnter))
	test.ExpectFailure(t, q.IsButtonDown(codes.KeyEnter))
	test.ExpectEquality(t, q.GetButtonPressedTick(codes.KeyPadEnter), uint32(10))
}

func TestNoDoubleDelivery(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())

	q.PostEvent(eventqueue.KeyTyped, 0, 'a', 0, 0)
	poll(q)
	test.ExpectEquality(t, q.GetEventCount(), 1)

	// nothing new posted so nothing is delivered
	poll(q)
	test.ExpectEquality(t, q.GetEventCount(), 0)

	// event posted during the poll is delivered with that poll and not again
	q.BeginPoll()
	q.PostEvent(eventqueue.KeyTyped, 0, 'b', 0, 0)
	q.EndPoll()
	evs := q.GetEventData()
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Data, int('b'))

	poll(q)
	test.ExpectEquality(t, q.GetEventCount(), 0)
}

func TestEventOrder(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())

	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 1, codes.KeyA, codes.KeyA)
	q.PostEvent(eventqueue.KeyTyped, 2, 'a', 0, 0)
	q.PostButtonReleasedEvent(eventqueue.ButtonReleased, 3, codes.KeyA, codes.KeyA)
	poll(q)

	evs := q.GetEventData()
	test.DemandEquality(t, len(evs), 3)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonPressed)
	test.ExpectEquality(t, evs[1].Type, eventqueue.KeyTyped)
	test.ExpectEquality(t, evs[2].Type, eventqueue.ButtonReleased)
	test.ExpectEquality(t, q.GetButtonReleasedTick(codes.KeyA), uint32(3))
}

func TestSteadyStateSurvivesPolls(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())

	// a button pressed during a poll must still be down after several polls
	// with no activity
	q.BeginPoll()
	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 0, codes.MouseLeft, codes.MouseLeft)
	q.SetAnalogValue(0, codes.MouseX, 100)
	q.EndPoll()

	for i := 0; i < 3; i++ {
		poll(q)
		test.ExpectSuccess(t, q.IsButtonDown(codes.MouseLeft))
		test.ExpectEquality(t, q.GetAnalogValue(codes.MouseX), 100)
		test.ExpectEquality(t, q.GetAnalogDelta(codes.MouseX), 0)
		test.ExpectEquality(t, q.GetEventCount(), 0)
	}

	// the release is seen and the press is not delivered again
	q.PostButtonReleasedEvent(eventqueue.ButtonReleased, 0, codes.MouseLeft, codes.MouseLeft)
	poll(q)
	evs := q.GetEventData()
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonReleased)
	test.ExpectFailure(t, q.IsButtonDown(codes.MouseLeft))
}

func TestAnalogDeltas(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())

	q.SetAnalogValue(0, codes.MouseX, 10)
	q.SetAnalogValue(0, codes.MouseX, 15)
	poll(q)
	test.ExpectEquality(t, q.GetAnalogValue(codes.MouseX), 15)
	test.ExpectEquality(t, q.GetAnalogDelta(codes.MouseX), 15)
	test.ExpectEquality(t, q.GetEventCount(), 2)

	// setting the same value again is not a change
	q.SetAnalogValue(0, codes.MouseX, 15)
	poll(q)
	test.ExpectEquality(t, q.GetAnalogDelta(codes.MouseX), 0)
	test.ExpectEquality(t, q.GetEventCount(), 0)

	q.SetAnalogValue(0, codes.MouseX, 5)
	poll(q)
	test.ExpectEquality(t, q.GetAnalogDelta(codes.MouseX), -10)

	q.AddAnalogDelta(0, codes.MouseWheel, 3)
	poll(q)
	evs := q.GetEventData()
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.AnalogValueChanged)
	test.ExpectEquality(t, codes.AnalogCode(evs[0].Data), codes.MouseWheel)
	test.ExpectEquality(t, evs[0].Data2, 3)
	test.ExpectEquality(t, evs[0].Data3, 3)
	test.ExpectEquality(t, q.GetAnalogDelta(codes.MouseWheel), 3)

	poll(q)
	test.ExpectEquality(t, q.GetAnalogDelta(codes.MouseWheel), 0)
	test.ExpectEquality(t, q.GetAnalogValue(codes.MouseWheel), 3)
}

func TestReleaseButtons(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())

	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 0, codes.JoystickButton(0, 1), codes.JoystickButton(0, 1))
	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 0, codes.JoystickButton(0, 4), codes.JoystickButton(0, 4))
	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 0, codes.JoystickButton(1, 1), codes.JoystickButton(1, 1))
	poll(q)

	q.ReleaseButtons(5, codes.JoystickButton(0, 0), codes.JoystickButton(0, codes.JoystickMaxButtonCount-1))
	poll(q)

	test.ExpectEquality(t, q.GetEventCount(), 2)
	test.ExpectFailure(t, q.IsButtonDown(codes.JoystickButton(0, 1)))
	test.ExpectFailure(t, q.IsButtonDown(codes.JoystickButton(0, 4)))
	test.ExpectSuccess(t, q.IsButtonDown(codes.JoystickButton(1, 1)))
	test.ExpectEquality(t, q.GetButtonReleasedTick(codes.JoystickButton(0, 4)), uint32(5))
}

func TestClearInputState(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())

	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 0, codes.KeyA, codes.KeyA)
	poll(q)
	q.PostButtonPressedEvent(eventqueue.ButtonPressed, 0, codes.KeyB, codes.KeyB)

	q.ClearInputState(true)
	poll(q)
	test.ExpectFailure(t, q.IsButtonDown(codes.KeyA))
	test.ExpectFailure(t, q.IsButtonDown(codes.KeyB))
	test.ExpectEquality(t, q.GetEventCount(), 0)

	// without purge, pending events survive
	q.PostEvent(eventqueue.Quit, 0, 0, 0, 0)
	q.ClearInputState(false)
	poll(q)
	test.ExpectEquality(t, q.GetEventCount(), 1)
}

func TestTick(t *testing.T) {
	clk := clock.NewMock()
	q := eventqueue.NewQueue(clk)
	test.ExpectEquality(t, q.Tick(), uint32(0))

	clk.Add(1500 * time.Millisecond)
	test.ExpectEquality(t, q.Tick(), uint32(1500))

	// ticks wrap cleanly when the millisecond count passes 32 bits
	clk = clock.NewMock()
	clk.Set(time.UnixMilli(1<<32 - 10))
	q = eventqueue.NewQueue(clk)
	clk.Add(25 * time.Millisecond)
	test.ExpectEquality(t, q.Tick(), uint32(25))
}

func TestConcurrentPosting(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())

	const posters = 4
	const perPoster = 250

	var wg sync.WaitGroup
	wg.Add(posters)
	for i := 0; i < posters; i++ {
		go func(i int) {
			defer wg.Done()
			for j := 0; j < perPoster; j++ {
				q.PostEvent(eventqueue.FirstAppEvent, 0, i, j, 0)
			}
		}(i)
	}

	// every event is delivered exactly once whichever poll it lands in
	var delivered int
	done := make(chan bool)
	go func() {
		wg.Wait()
		done <- true
	}()

	running := true
	for running {
		select {
		case <-done:
			running = false
		default:
		}
		poll(q)
		delivered += q.GetEventCount()
	}
	poll(q)
	delivered += q.GetEventCount()

	test.ExpectEquality(t, delivered, posters*perPoster)
}

func TestEventString(t *testing.T) {
	ev := eventqueue.Event{Type: eventqueue.ButtonPressed, Tick: 5, Data: int(codes.KeyA)}
	test.ExpectEquality(t, ev.String(), "ButtonPressed a @5")

	ev = eventqueue.Event{Type: eventqueue.FirstAppEvent + 2}
	test.ExpectEquality(t, ev.String(), "AppEvent(2) [0 0 0] @0")
}
