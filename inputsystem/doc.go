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

// Package inputsystem is the public face of the input subsystem. The
// application creates one InputSystem with the backends that suit the
// platform and calls PollInputState() once per frame.
//
// A poll runs in the following order:
//
//  1. decide whether backends should look for new controllers
//  2. begin the poll. events queued since the previous poll become visible
//  3. pass hotplug notifications to the backends
//  4. sample every backend
//  5. update the connected devices
//  6. drain the window's message pump
//  7. end the poll
//
// Input that arrives during a poll, whether from a backend or from another
// goroutine, is delivered by the same poll. Input that arrives between polls
// is delivered by the next poll. No event is delivered twice.
//
// All query functions read the state captured by the most recent poll.
//
// Hotplug watchers that run in their own goroutine should use Notify() to
// pass notifications to the backends. The notifications are handled at the
// start of the next poll.
package inputsystem
