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

package backends_test

import (
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/test"
)

func events(q *eventqueue.Queue) []eventqueue.Event {
	q.BeginPoll()
	q.EndPoll()
	return q.GetEventData()
}

func TestButtonDiff(t *testing.T) {
	type transition struct {
		i    int
		down bool
	}

	var got []transition
	collect := func(i int, down bool) {
		got = append(got, transition{i: i, down: down})
	}

	// button 0 already down, button 1 newly down
	backends.ButtonDiff(0b00000001, 0b00000011, 8, collect)
	test.DemandEquality(t, len(got), 1)
	test.ExpectEquality(t, got[0], transition{i: 1, down: true})

	got = got[:0]
	backends.ButtonDiff(0b10100110, 0b00101001, 8, collect)
	test.DemandEquality(t, len(got), 5)
	test.ExpectEquality(t, got[0], transition{i: 0, down: true})
	test.ExpectEquality(t, got[1], transition{i: 1, down: false})
	test.ExpectEquality(t, got[2], transition{i: 2, down: false})
	test.ExpectEquality(t, got[3], transition{i: 3, down: true})
	test.ExpectEquality(t, got[4], transition{i: 7, down: false})

	// bits above n are ignored
	got = got[:0]
	backends.ButtonDiff(0, 0xff00, 8, collect)
	test.ExpectEquality(t, len(got), 0)

	// exhaustive check of the diff for four buttons
	for a := uint64(0); a < 16; a++ {
		for b := uint64(0); b < 16; b++ {
			got = got[:0]
			backends.ButtonDiff(a, b, 4, collect)
			for i := 0; i < 4; i++ {
				was := a&(1<<i) != 0
				is := b&(1<<i) != 0
				found := false
				for _, tr := range got {
					if tr.i == i {
						found = true
						test.ExpectEquality(t, tr.down, is)
					}
				}
				test.ExpectEquality(t, found, was != is, a, b, i)
			}
		}
	}
}

func TestAxisButton(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())
	ab := backends.NewAxisButton(codes.KeyXStick1Right, codes.KeyXStick1Left)

	ab.Update(q, 0, 0.2, 0.5, 0.5)
	test.ExpectEquality(t, len(events(q)), 0)

	ab.Update(q, 0, 0.6, 0.5, 0.5)
	evs := events(q)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.KeyXStick1Right)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonPressed)

	// still past the threshold. no change
	ab.Update(q, 0, 0.9, 0.5, 0.5)
	test.ExpectEquality(t, len(events(q)), 0)

	// swinging to the other side releases the positive and presses the
	// negative
	ab.Update(q, 0, -0.7, 0.5, 0.5)
	evs = events(q)
	test.DemandEquality(t, len(evs), 2)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonReleased)
	test.ExpectEquality(t, codes.ButtonCode(evs[0].Data), codes.KeyXStick1Right)
	test.ExpectEquality(t, evs[1].Type, eventqueue.ButtonPressed)
	test.ExpectEquality(t, codes.ButtonCode(evs[1].Data), codes.KeyXStick1Left)

	pos, neg := ab.IsDown()
	test.ExpectFailure(t, pos)
	test.ExpectSuccess(t, neg)

	ab.Release(q, 0)
	evs = events(q)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonReleased)
	test.ExpectFailure(t, q.IsButtonDown(codes.KeyXStick1Left))
}

func TestAxisButtonHysteresis(t *testing.T) {
	q := eventqueue.NewQueue(clock.NewMock())
	ab := backends.NewAxisButton(codes.MotionRollRight, codes.MotionRollLeft)

	const press = 0.4
	const release = 0.3

	ab.Update(q, 0, 0.45, press, release)
	test.ExpectEquality(t, len(events(q)), 1)

	// oscillating around the press threshold does not fire again
	for _, v := range []float64{0.39, 0.41, 0.35, 0.5, 0.31} {
		ab.Update(q, 0, v, press, release)
		test.ExpectEquality(t, len(events(q)), 0, v)
	}

	// dropping to the release threshold releases and only then can it fire
	// again
	ab.Update(q, 0, 0.3, press, release)
	evs := events(q)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonReleased)

	ab.Update(q, 0, 0.41, press, release)
	evs = events(q)
	test.DemandEquality(t, len(evs), 1)
	test.ExpectEquality(t, evs[0].Type, eventqueue.ButtonPressed)
}

func TestNotification(t *testing.T) {
	n := backends.Notification{Kind: backends.DeviceRemoved, Backend: "joystick", ID: "/dev/input/js0"}
	test.ExpectEquality(t, n.String(), "joystick: /dev/input/js0 removed")
}

func TestDeadzone(t *testing.T) {
	const dz = 0.2

	test.ExpectEquality(t, backends.Deadzone(0.1, dz), 0.0)
	test.ExpectEquality(t, backends.Deadzone(dz, dz), 0.0)
	test.ExpectEquality(t, backends.Deadzone(-dz, dz), 0.0)
	test.ExpectEquality(t, backends.Deadzone(1.0, dz), 1.0)
	test.ExpectEquality(t, backends.Deadzone(-1.0, dz), -1.0)
	test.ExpectEquality(t, backends.Deadzone(0.5, 0), 0.5)

	// strictly increasing outside of the deadzone
	prev := 0.0
	for v := dz + 0.01; v <= 1.0; v += 0.01 {
		o := backends.Deadzone(v, dz)
		test.ExpectSuccess(t, o > prev, v)
		prev = o
	}

	// and continuous at the edge
	test.ExpectSuccess(t, backends.Deadzone(dz+1e-9, dz) < 1e-6)
}

func TestStickDeadzones(t *testing.T) {
	const dz = 0.25

	x, y := backends.CrossDeadzone(0.1, 0.625, dz)
	test.ExpectEquality(t, x, 0.0)
	test.ExpectEquality(t, y, 0.5)

	x, y = backends.SquareDeadzone(0.1, 0.2, dz)
	test.ExpectEquality(t, x, 0.0)
	test.ExpectEquality(t, y, 0.0)

	// one axis outside of the deadzone. both pass through unscaled
	x, y = backends.SquareDeadzone(0.1, 0.625, dz)
	test.ExpectEquality(t, x, 0.1)
	test.ExpectEquality(t, y, 0.625)
}
