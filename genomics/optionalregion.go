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

package genomics

import "fmt"

// OptionalRegion is a region specifier whose bounds may be absent: a bare
// path ("chr1"), a single position ("chr1:100"), or a full range. A nil
// bound means the input did not carry one. No ordering is imposed between
// Start and End; Inverted reports whichever order was given.
type OptionalRegion struct {
	Path  string
	Start *uint64
	End   *uint64
}

// ParseOptionalRegion parses text with both bounds optional. The path is
// everything before the last colon; a specifier with no usable coordinate
// portion is treated as a bare path. Bounds that do not fit in a uint64
// degrade to absent rather than failing the parse. Only empty text is
// rejected.
func ParseOptionalRegion(text string) (*OptionalRegion, error) {
	return parseOptional(text, false, "")
}

// ParseOptionalRegionPrefix is ParseOptionalRegion with chromosome-prefix
// normalization applied to the path. An empty prefix strips a literal
// "chr".
func ParseOptionalRegionPrefix(text, prefix string) (*OptionalRegion, error) {
	return parseOptional(text, true, prefix)
}

func parseOptional(text string, normalize bool, prefix string) (*OptionalRegion, error) {
	if text == "" {
		return nil, ErrInvalidRegion
	}
	path := text
	var start, end *uint64
	if p, bounds, ok := splitRegion(text); ok {
		if startText, endText, ok := splitBounds(bounds); ok {
			path = p
			start = parseBound(startText)
			end = parseBound(endText)
		}
	}
	if normalize {
		path = normalizePath(path, prefix)
	}
	return &OptionalRegion{Path: path, Start: start, End: end}, nil
}

// Interval returns the absolute difference of the two bounds. ok is false
// unless both bounds are present.
func (r *OptionalRegion) Interval() (length uint64, ok bool) {
	if r.Start == nil || r.End == nil {
		return 0, false
	}
	if *r.Start < *r.End {
		return *r.End - *r.Start, true
	}
	return *r.Start - *r.End, true
}

// Inverted reports whether the first bound is greater than the second. ok
// is false unless both bounds are present.
func (r *OptionalRegion) Inverted() (inverted, ok bool) {
	if r.Start == nil || r.End == nil {
		return false, false
	}
	return *r.Start > *r.End, true
}

// String renders the most specific form available: "path", "path:start",
// or "path:start-end". Trailing absent bounds are omitted rather than
// written as empty digit groups.
func (r *OptionalRegion) String() string {
	switch {
	case r.Start == nil:
		return r.Path
	case r.End == nil:
		return fmt.Sprintf("%s:%d", r.Path, *r.Start)
	default:
		return fmt.Sprintf("%s:%d-%d", r.Path, *r.Start, *r.End)
	}
}

// UUID returns the canonical text form, usable as a lookup key.
func (r *OptionalRegion) UUID() string {
	return r.String()
}
