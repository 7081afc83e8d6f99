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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
)

// Sentinal errors.
const (
	LoaderError     = "romloader: %v"
	UnexpectedHash  = "romloader: unexpected hash value (%s)"
	UnsupportedURL  = "romloader: unsupported URL scheme (%s)"
	NoDataInProgram = "romloader: program is empty (%s)"
)

// FileExtensions is the list of file extensions that are commonly used for
// CHIP-8 programs. The list is not used to filter filenames.
var FileExtensions = [...]string{".CH8", ".C8", ".BIN", ".ROM"}

// Loader is used to specify the program to attach to the machine.
type Loader struct {
	// filename of program to load
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without path or extension.
func (ld Loader) ShortName() string {
	n := filepath.Base(ld.Filename)
	return strings.TrimSuffix(n, filepath.Ext(n))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program data. Filenames with a http or https scheme are fetched
// over the network.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && len(u.Scheme) > 1 {
		// single letter schemes are windows drive letters
		scheme = u.Scheme
	}

	var data []byte
	var err error

	switch scheme {
	case "http", "https":
		var resp *http.Response
		resp, err = http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, resp.Status)
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		data, err = os.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		return curated.Errorf(UnsupportedURL, scheme)
	}

	if len(data) == 0 {
		return curated.Errorf(NoDataInProgram, ld.ShortName())
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
