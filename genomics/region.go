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

// Resolver maps a reference sequence name to its numeric id. Callers
// supply one when converting textual regions; a false return means the
// name is not recognized.
type Resolver func(name string) (uint64, bool)

// Region is a half-open interval [start, end) on reference sequence
// refID. The start ≤ end invariant is checked at every construction and
// mutation site, so a live Region can be trusted without re-validation.
type Region struct {
	refID uint64
	start uint64
	end   uint64
}

// NewRegion creates a region with a 0-based half-open interval. A start
// greater than end is a defect in the caller and panics.
func NewRegion(refID, start, end uint64) Region {
	checkOrder(start, end)
	return Region{refID: refID, start: start, end: end}
}

// Convert resolves a StringRegion's path through toID and copies its
// normalized bounds. Orientation is not carried over: the result always
// has the non-decreasing pair.
func Convert(r *StringRegion, toID Resolver) (Region, error) {
	id, ok := toID(r.path)
	if !ok {
		return Region{}, fmt.Errorf("resolving %q: %v", r.path, ErrUnknownReference)
	}
	return Region{refID: id, start: r.start, end: r.end}, nil
}

// ParseRegion parses text with the mandatory-bounds colon/dash grammar and
// resolves the path through toID in one step.
func ParseRegion(text string, toID Resolver) (Region, error) {
	path, start, end, err := scanMandatory(text)
	if err != nil {
		return Region{}, err
	}
	if start > end {
		return Region{}, fmt.Errorf("region start %d greater than end %d", start, end)
	}
	id, ok := toID(path)
	if !ok {
		return Region{}, fmt.Errorf("resolving %q: %v", path, ErrUnknownReference)
	}
	return NewRegion(id, start, end), nil
}

// RefID returns the reference sequence id.
func (r Region) RefID() uint64 { return r.refID }

// Start returns the inclusive lower bound.
func (r Region) Start() uint64 { return r.start }

// End returns the exclusive upper bound.
func (r Region) End() uint64 { return r.end }

// Len returns the region length in positions.
func (r Region) Len() uint64 { return r.end - r.start }

// SetRefID replaces the reference sequence id.
func (r *Region) SetRefID(refID uint64) {
	r.refID = refID
}

// SetStart replaces the lower bound, panicking if it would exceed the
// current end.
func (r *Region) SetStart(start uint64) {
	checkOrder(start, r.end)
	r.start = start
}

// SetEnd replaces the upper bound, panicking if the current start would
// exceed it.
func (r *Region) SetEnd(end uint64) {
	checkOrder(r.start, end)
	r.end = end
}

// Contains reports whether pos falls inside the region: the reference
// matches and start ≤ pos < end.
func (r Region) Contains(refID, pos uint64) bool {
	return r.refID == refID && r.start <= pos && pos < r.end
}

// Include reports whether other lies strictly within r on the same
// reference. The upper bound is strict (other.end < r.end), so a region
// does not include an identical copy of itself.
func (r Region) Include(other *Region) bool {
	return r.refID == other.refID && r.start <= other.start && other.end < r.end
}

func checkOrder(start, end uint64) {
	if start > end {
		panic(fmt.Sprintf("genomics: region start should not be greater than end (%d > %d)", start, end))
	}
}
