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

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopherinput/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(gopherConfigDir, "foo", "bar", "baz"))

	// sub-directory has been created
	_, err = os.Stat(filepath.Join(gopherConfigDir, "foo", "bar"))
	test.ExpectSuccess(t, err)

	pth, err = ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(gopherConfigDir, "baz"))

	pth, err = ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, gopherConfigDir)
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("memviz", "poll", n), "memviz_poll_20210304_050607")
	test.ExpectEquality(t, uniqueFilename("memviz", " ", n), "memviz_20210304_050607")
}
