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

// Package eventqueue holds the double-buffered input state and the queue of
// input events for a single frame.
//
// There are two State slots, Queued and Current. Between polls all writes go
// to Queued. A poll begins by copying Queued into Current, events included,
// after which writes go to Current until the poll ends. The poll ends by
// copying the non-event state of Current back into Queued.
//
// Consumers only ever read from Current. Because the events in Current are
// discarded by the next BeginPoll() and are never copied back into Queued, an
// event is delivered to the consumer exactly once. An event posted from
// another goroutine at any point in the cycle is also delivered exactly once:
// either with the poll that is in progress or with the next one.
//
// Ticks are milliseconds since the creation of the Queue and are measured
// with a clock.Clock so that tests can control the passage of time.
package eventqueue
