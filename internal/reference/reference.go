// Copyright 2026 Open Genomics Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package reference resolves reference sequence names to numeric ids from
// a sequence dictionary file. Ids are assigned in file order, matching the
// reference ordering conventions of indexed alignment formats.
package reference

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dictionary maps reference sequence names to 0-based ids.
type Dictionary struct {
	ids   map[string]uint64
	names []string
}

// Open reads a sequence dictionary from the named file.
func Open(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %v", err)
	}
	defer f.Close()
	return ReadDictionary(f)
}

// ReadDictionary reads a sequence dictionary from r. Two line formats are
// accepted and may be mixed with blank lines and # comments:
//
// SAM header lines starting with @SQ contribute the name from their SN:
// field (other @ lines are ignored), and any other non-blank line
// contributes its first whitespace-separated token. Each name receives the
// next id in reading order.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{ids: make(map[string]uint64)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name := ""
		if strings.HasPrefix(line, "@") {
			if !strings.HasPrefix(line, "@SQ") {
				continue
			}
			for _, field := range strings.Fields(line)[1:] {
				if strings.HasPrefix(field, "SN:") {
					name = field[len("SN:"):]
					break
				}
			}
			if name == "" {
				return nil, fmt.Errorf("@SQ line without SN field: %q", line)
			}
		} else {
			name = strings.Fields(line)[0]
		}
		if _, ok := d.ids[name]; ok {
			return nil, fmt.Errorf("duplicate reference name %q", name)
		}
		d.ids[name] = uint64(len(d.names))
		d.names = append(d.names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %v", err)
	}
	if len(d.names) == 0 {
		return nil, fmt.Errorf("dictionary contains no reference sequences")
	}
	return d, nil
}

// Resolve returns the id for name. It satisfies genomics.Resolver as a
// method value.
func (d *Dictionary) Resolve(name string) (uint64, bool) {
	id, ok := d.ids[name]
	return id, ok
}

// Name returns the name for id, or "" when id is out of range.
func (d *Dictionary) Name(id uint64) string {
	if id >= uint64(len(d.names)) {
		return ""
	}
	return d.names[id]
}

// Len returns the number of reference sequences.
func (d *Dictionary) Len() int {
	return len(d.names)
}
