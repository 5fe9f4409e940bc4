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

import (
	"fmt"
	"strconv"
	"strings"
)

// StringRegion is a region with both bounds mandatory. The stored pair is
// always non-decreasing: bounds given in reversed order are swapped at
// construction and the original orientation is kept in the inverted flag,
// so Left/Right and the text form can reproduce the input exactly.
type StringRegion struct {
	path       string
	start, end uint64
	inverted   bool
}

// NewStringRegion builds a region from a path and two bounds in the order
// they were given. This is the only place the start ≤ end invariant is
// established: a reversed pair is stored swapped with inverted set.
func NewStringRegion(path string, first, second uint64) *StringRegion {
	if first > second {
		return &StringRegion{path: path, start: second, end: first, inverted: true}
	}
	return &StringRegion{path: path, start: first, end: second}
}

// ParseStringRegion parses text with both bounds mandatory. Input that
// splits into three or more whitespace-separated fields is read as
// "path start end"; anything else must match the colon/dash grammar
// "path:start-end". Either way a missing or unparsable bound is an error.
func ParseStringRegion(text string) (*StringRegion, error) {
	if fields := strings.Fields(text); len(fields) >= 3 {
		start, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing start bound: %v", err)
		}
		end, err := strconv.ParseUint(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing end bound: %v", err)
		}
		return NewStringRegion(fields[0], start, end), nil
	}
	path, start, end, err := scanMandatory(text)
	if err != nil {
		return nil, err
	}
	return NewStringRegion(path, start, end), nil
}

// ParseStringRegionPrefix parses the colon/dash grammar only (no
// whitespace fallback) and applies chromosome-prefix normalization to the
// path. An empty prefix strips a literal "chr".
func ParseStringRegionPrefix(text, prefix string) (*StringRegion, error) {
	path, start, end, err := scanMandatory(text)
	if err != nil {
		return nil, err
	}
	return NewStringRegion(normalizePath(path, prefix), start, end), nil
}

// Path returns the (possibly prefix-normalized) reference name.
func (r *StringRegion) Path() string { return r.path }

// Start returns the smaller bound.
func (r *StringRegion) Start() uint64 { return r.start }

// End returns the larger bound.
func (r *StringRegion) End() uint64 { return r.end }

// Inverted reports whether the input gave the larger bound first.
func (r *StringRegion) Inverted() bool { return r.inverted }

// Left returns the bound that came first in the input text.
func (r *StringRegion) Left() uint64 {
	if r.inverted {
		return r.end
	}
	return r.start
}

// Right returns the bound that came second in the input text.
func (r *StringRegion) Right() uint64 {
	if r.inverted {
		return r.start
	}
	return r.end
}

// Interval returns the region length, never negative.
func (r *StringRegion) Interval() uint64 {
	return r.end - r.start
}

// Extend widens the region by length on both sides. The start is clamped
// at zero with a saturating subtraction rather than being allowed to wrap.
func (r *StringRegion) Extend(length uint64) {
	if length > r.start {
		r.start = 0
	} else {
		r.start -= length
	}
	r.end += length
}

// StartMinus decrements the start by one, converting an inclusive 1-based
// coordinate into a BED-style 0-based one. A start already at zero returns
// ErrUnderflow instead of wrapping.
func (r *StringRegion) StartMinus() error {
	if r.start == 0 {
		return ErrUnderflow
	}
	r.start--
	return nil
}

// String renders "path:left-right" in the original orientation, so a
// region entered with reversed bounds round-trips to the same text.
func (r *StringRegion) String() string {
	return fmt.Sprintf("%s:%d-%d", r.path, r.Left(), r.Right())
}

// UUID returns the canonical text form, usable as a lookup key.
func (r *StringRegion) UUID() string {
	return r.String()
}
