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
	"strings"
	"testing"
)

// testResolver maps a small set of reference names to ids, standing in for
// whatever catalog a real deployment resolves names against.
func testResolver(name string) (uint64, bool) {
	ids := map[string]uint64{
		"chr1": 0,
		"chr2": 1,
		"10":   9,
	}
	id, ok := ids[name]
	return id, ok
}

func TestNewRegion(t *testing.T) {
	r := NewRegion(3, 100, 200)
	if r.RefID() != 3 || r.Start() != 100 || r.End() != 200 {
		t.Fatalf("Wrong region: got (%d, %d, %d), want (3, 100, 200)", r.RefID(), r.Start(), r.End())
	}
	if r.Len() != 100 {
		t.Fatalf("Wrong length: got %d, want 100", r.Len())
	}
}

func TestNewRegion_Panics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("NewRegion(0, 10, 5) did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "greater than end") {
			t.Fatalf("Wrong panic value: %v", r)
		}
	}()
	NewRegion(0, 10, 5)
}

func TestRegionSetters(t *testing.T) {
	r := NewRegion(0, 100, 200)

	r.SetStart(150)
	r.SetEnd(180)
	r.SetRefID(7)
	if r.RefID() != 7 || r.Start() != 150 || r.End() != 180 {
		t.Fatalf("Wrong region after setters: got (%d, %d, %d), want (7, 150, 180)", r.RefID(), r.Start(), r.End())
	}

	assertPanics(t, "SetStart above end", func() { r.SetStart(181) })
	assertPanics(t, "SetEnd below start", func() { r.SetEnd(149) })
}

func assertPanics(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s did not panic", name)
		}
	}()
	f()
}

func TestRegionContains(t *testing.T) {
	region := NewRegion(0, 5, 10)

	testCases := []struct {
		name  string
		refID uint64
		pos   uint64
		want  bool
	}{
		{"lower bound inclusive", 0, 5, true},
		{"interior", 0, 7, true},
		{"upper bound exclusive", 0, 10, false},
		{"below", 0, 4, false},
		{"wrong reference", 1, 5, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := region.Contains(tc.refID, tc.pos); got != tc.want {
				t.Fatalf("Contains(%d, %d) = %v, want %v", tc.refID, tc.pos, got, tc.want)
			}
		})
	}
}

func TestRegionInclude(t *testing.T) {
	outer := NewRegion(0, 0, 10)

	testCases := []struct {
		name  string
		other Region
		want  bool
	}{
		{"strictly inside", NewRegion(0, 2, 9), true},
		{"shared start", NewRegion(0, 0, 9), true},
		{"identical region", NewRegion(0, 0, 10), false},
		{"shared end", NewRegion(0, 2, 10), false},
		{"outside", NewRegion(0, 2, 11), false},
		{"wrong reference", NewRegion(1, 2, 9), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := outer.Include(&tc.other); got != tc.want {
				t.Fatalf("Include(%v) = %v, want %v", tc.other, got, tc.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	sr, err := ParseStringRegion("chr2:200-100")
	if err != nil {
		t.Fatalf("ParseStringRegion() returned error: %v", err)
	}

	region, err := Convert(sr, testResolver)
	if err != nil {
		t.Fatalf("Convert() returned error: %v", err)
	}
	// The normalized pair is copied; orientation is not carried over.
	if region.RefID() != 1 || region.Start() != 100 || region.End() != 200 {
		t.Fatalf("Wrong region: got (%d, %d, %d), want (1, 100, 200)", region.RefID(), region.Start(), region.End())
	}
}

func TestConvert_UnknownReference(t *testing.T) {
	sr, err := ParseStringRegion("chrUn:1-2")
	if err != nil {
		t.Fatalf("ParseStringRegion() returned error: %v", err)
	}
	if _, err := Convert(sr, testResolver); err == nil {
		t.Fatalf("Convert() succeeded for unknown reference")
	}
}

func TestParseRegion(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		refID      uint64
		start, end uint64
	}{
		{"named reference", "chr1:12000-12001", 0, 12000, 12001},
		{"numeric reference", "10:120-120001", 9, 120, 120001},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			region, err := ParseRegion(tc.input, testResolver)
			if err != nil {
				t.Fatalf("ParseRegion(%q) returned error: %v", tc.input, err)
			}
			if region.RefID() != tc.refID || region.Start() != tc.start || region.End() != tc.end {
				t.Fatalf("Wrong region: got (%d, %d, %d), want (%d, %d, %d)",
					region.RefID(), region.Start(), region.End(), tc.refID, tc.start, tc.end)
			}
		})
	}
}

func TestParseRegion_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"grammar mismatch", "chr1"},
		{"missing bound", "chr1:100-"},
		{"reversed bounds", "chr1:200-100"},
		{"unknown reference", "chr9:100-200"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if region, err := ParseRegion(tc.input, testResolver); err == nil {
				t.Fatalf("ParseRegion(%q) = %v, want error", tc.input, region)
			}
		})
	}
}
