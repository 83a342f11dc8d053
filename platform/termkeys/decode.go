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
	"unicode/utf8"

	"github.com/jetsetilly/gopherinput/backends/keyboard"
	"github.com/jetsetilly/gopherinput/codes"
)

// ASCII values of keys that have no printable representation.
const (
	keyCtrlC          = 3
	keyBackspaceCtrlH = 8
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyBackspace      = 127
)

// characters that can follow keyEsc.
const (
	escCursor = '['
	escDelete = '3'
	escEnd    = 'F'
	escHome   = 'H'
	escTilde  = '~'
)

// characters that can follow escCursor.
var cursorKeys = map[byte]codes.ButtonCode{
	'A':     codes.KeyUp,
	'B':     codes.KeyDown,
	'C':     codes.KeyRight,
	'D':     codes.KeyLeft,
	escHome: codes.KeyHome,
	escEnd:  codes.KeyEnd,
}

var controlKeys = map[byte]codes.ButtonCode{
	keyBackspaceCtrlH: codes.KeyBackspace,
	keyTab:            codes.KeyTab,
	keyLineFeed:       codes.KeyEnter,
	keyCarriageReturn: codes.KeyEnter,
	keyBackspace:      codes.KeyBackspace,
}

var punctuationKeys = map[rune]codes.ButtonCode{
	' ':  codes.KeySpace,
	'[':  codes.KeyLBracket,
	']':  codes.KeyRBracket,
	';':  codes.KeySemicolon,
	'\'': codes.KeyApostrophe,
	'`':  codes.KeyBackQuote,
	',':  codes.KeyComma,
	'.':  codes.KeyPeriod,
	'/':  codes.KeySlash,
	'\\': codes.KeyBackslash,
	'-':  codes.KeyMinus,
	'=':  codes.KeyEqual,
}

// printableKey returns the key that types the rune. Returns KeyNone if
// there is no such key, in which case the rune is sent as a character only.
func printableKey(r rune) codes.ButtonCode {
	switch {
	case r >= 'a' && r <= 'z':
		return codes.KeyA + codes.ButtonCode(r-'a')
	case r >= 'A' && r <= 'Z':
		return codes.KeyA + codes.ButtonCode(r-'A')
	case r >= '0' && r <= '9':
		return codes.Key0 + codes.ButtonCode(r-'0')
	}
	if k, ok := punctuationKeys[r]; ok {
		return k
	}
	return codes.KeyNone
}

// a terminal only reports key presses so every key is released immediately.
func tap(h keyboard.Handler, key codes.ButtonCode) {
	h.KeyDown(key, key, false)
	h.KeyUp(key, key)
}

// decode the bytes read from a terminal in raw mode and pass the resulting
// key presses and characters to the handler.
//
// Returns the number of bytes that were used. Bytes that are not used are
// the start of an incomplete UTF-8 sequence and should be passed to decode()
// again once more bytes have been read.
func decode(b []byte, h keyboard.Handler) int {
	i := 0
	for i < len(b) {
		c := b[i]

		switch {
		case c == keyCtrlC:
			h.Quit()
			i++

		case c == keyEsc:
			i += decodeEscape(b[i:], h)

		case c < utf8.RuneSelf:
			if k, ok := controlKeys[c]; ok {
				tap(h, k)
				i++
				continue
			}
			i++
			if c < ' ' {
				continue
			}
			r := rune(c)
			if k := printableKey(r); k != codes.KeyNone {
				h.KeyDown(k, k, false)
				h.Char(r)
				h.KeyUp(k, k)
			} else {
				h.Char(r)
			}

		default:
			if !utf8.FullRune(b[i:]) {
				return i
			}
			r, n := utf8.DecodeRune(b[i:])
			i += n
			if r != utf8.RuneError {
				h.Char(r)
			}
		}
	}
	return i
}

// decodeEscape decodes the sequence starting with keyEsc. Returns the number
// of bytes in the sequence. Unrecognised sequences are dropped.
func decodeEscape(b []byte, h keyboard.Handler) int {
	if len(b) < 3 || b[1] != escCursor {
		tap(h, codes.KeyEscape)
		return 1
	}

	if k, ok := cursorKeys[b[2]]; ok {
		tap(h, k)
		return 3
	}

	if b[2] == escDelete && len(b) > 3 && b[3] == escTilde {
		tap(h, codes.KeyDelete)
		return 4
	}

	// skip to the final byte of the control sequence
	n := 2
	for n < len(b) && (b[n] < 0x40 || b[n] > 0x7e) {
		n++
	}
	if n < len(b) {
		n++
	}
	return n
}
