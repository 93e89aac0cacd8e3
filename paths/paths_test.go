// This file is part of Luneburg.
//
// Luneburg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Luneburg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Luneburg.  If not, see <https://www.gnu.org/licenses/>.

package paths_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/luneburg/chessboard/paths"
	"github.com/luneburg/chessboard/test"
)

func TestLocalResourcePath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".luneburg", 0700))

	test.ExpectEquality(t, paths.ResourcePath("foo/bar", "baz"), filepath.Join(".luneburg", "foo", "bar", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("foo/bar", ""), filepath.Join(".luneburg", "foo", "bar"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".luneburg", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("", ""), ".luneburg")
}

func TestConfigResourcePath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))

	pth := paths.ResourcePath("prefs")
	test.ExpectEquality(t, pth, filepath.Join(dir, "config", "luneburg", "prefs"))
}

func TestEnsureDir(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "a", "b", "file")
	test.ExpectSuccess(t, paths.EnsureDir(pth))
	info, err := os.Stat(filepath.Dir(pth))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}
