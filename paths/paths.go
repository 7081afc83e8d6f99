// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// the base path for all resources when it exists in the current directory.
const localResourcePath = ".gopher8"

// the name of the directory in the user's config directory.
const gopherConfigDir = "gopher8"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. Either subPth or
// file can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(pth, file), nil
}

// getBasePath returns localResourcePath if it exists in the current directory.
// otherwise the path in the user's config directory is returned.
func getBasePath() (string, error) {
	if info, err := os.Stat(localResourcePath); err == nil && info.IsDir() {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, gopherConfigDir), nil
}
