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

package termkeys

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/test"
)

// records every call as a short string.
type recorder struct {
	calls []string
}

func (r *recorder) KeyDown(scan codes.ButtonCode, virtual codes.ButtonCode, repeat bool) {
	r.calls = append(r.calls, fmt.Sprintf("down:%s", scan))
}

func (r *recorder) KeyUp(scan codes.ButtonCode, virtual codes.ButtonCode) {
	r.calls = append(r.calls, fmt.Sprintf("up:%s", scan))
}

func (r *recorder) Char(c rune) {
	r.calls = append(r.calls, fmt.Sprintf("char:%c", c))
}

func (r *recorder) MouseButton(code codes.ButtonCode, down bool, x int, y int) {}
func (r *recorder) MouseMove(x int, y int) {}
func (r *recorder) MouseWheel(delta int) {}
func (r *recorder) Close() {}
func (r *recorder) WindowResized(width int, height int) {}
func (r *recorder) IME(typ eventqueue.EventType, data int) {}

func (r *recorder) Quit() {
	r.calls = append(r.calls, "quit")
}

func (r *recorder) String() string {
	s := strings.Join(r.calls, " ")
	r.calls = r.calls[:0]
	return s
}

func TestPrintable(t *testing.T) {
	var r recorder

	n := decode([]byte("a"), &r)
	test.ExpectEquality(t, n, 1)
	test.ExpectEquality(t, r.String(), fmt.Sprintf("down:%s char:a up:%s", codes.KeyA, codes.KeyA))

	decode([]byte("Z9"), &r)
	test.ExpectEquality(t, r.String(), fmt.Sprintf("down:%s char:Z up:%s down:%s char:9 up:%s",
		codes.KeyZ, codes.KeyZ, codes.Key9, codes.Key9))

	decode([]byte(" "), &r)
	test.ExpectEquality(t, r.String(), fmt.Sprintf("down:%s char:  up:%s", codes.KeySpace, codes.KeySpace))

	// printable characters with no key are sent as characters only
	decode([]byte("!"), &r)
	test.ExpectEquality(t, r.String(), "char:!")
}

func TestControlKeys(t *testing.T) {
	var r recorder

	decode([]byte{keyCarriageReturn, keyTab, keyBackspace}, &r)
	test.ExpectEquality(t, r.String(), fmt.Sprintf("down:%s up:%s down:%s up:%s down:%s up:%s",
		codes.KeyEnter, codes.KeyEnter, codes.KeyTab, codes.KeyTab, codes.KeyBackspace, codes.KeyBackspace))

	decode([]byte{keyCtrlC}, &r)
	test.ExpectEquality(t, r.String(), "quit")

	// other control characters are ignored
	decode([]byte{1, 2}, &r)
	test.ExpectEquality(t, r.String(), "")
}

func TestEscapeSequences(t *testing.T) {
	var r recorder

	decode([]byte{keyEsc}, &r)
	test.ExpectEquality(t, r.String(), fmt.Sprintf("down:%s up:%s", codes.KeyEscape, codes.KeyEscape))

	decode([]byte("\x1b[A\x1b[D"), &r)
	test.ExpectEquality(t, r.String(), fmt.Sprintf("down:%s up:%s down:%s up:%s",
		codes.KeyUp, codes.KeyUp, codes.KeyLeft, codes.KeyLeft))

	decode([]byte("\x1b[3~"), &r)
	test.ExpectEquality(t, r.String(), fmt.Sprintf("down:%s up:%s", codes.KeyDelete, codes.KeyDelete))

	// unrecognised sequences are dropped without affecting what follows
	n := decode([]byte("\x1b[1;5Ab"), &r)
	test.ExpectEquality(t, n, 7)
	test.ExpectEquality(t, r.String(), fmt.Sprintf("down:%s char:b up:%s", codes.KeyB, codes.KeyB))
}

func TestUTF8(t *testing.T) {
	var r recorder

	b := []byte("é")
	test.ExpectEquality(t, len(b), 2)

	// an incomplete sequence is left for the next call
	n := decode(b[:1], &r)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, r.String(), "")

	n = decode(b, &r)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, r.String(), "char:é")
}
