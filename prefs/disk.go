// This file is part of AsyncFIFO.
//
// AsyncFIFO is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// AsyncFIFO is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with AsyncFIFO.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/asyncfifo/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the preferences file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file does not need to exist.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf("prefs: no path for disk")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// sorted list of keys
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the disk instance. The key must be unique and must
// not contain the separator sequence.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(separator)) {
		return curated.Errorf("prefs: illegal key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf("prefs: key already added (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// read the preferences file. a missing file is not an error and results in an
// empty map.
func (dsk *Disk) read() (map[string]string, error) {
	v := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return v, nil
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// check boilerplate
	if !scanner.Scan() {
		return v, nil
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		v[kv[0]] = kv[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return v, nil
}

// Save current preference values to disk. Entries in the file that are not
// known to this Disk instance are preserved.
func (dsk *Disk) Save() (rerr error) {
	v, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		v[k] = p.String()
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf("prefs: %v", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, separator, v[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. Values in the command line stack
// take priority over values in the file.
func (dsk *Disk) Load() error {
	v, err := dsk.read()
	if err != nil {
		return err
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if s, ok := v[k]; ok {
			if err := p.Set(s); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}

		if ok, s := GetCommandLinePref(k); ok {
			if err := p.Set(s); err != nil {
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	return nil
}
