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

// splitRegion splits a region specifier on the last colon, returning the
// path and the coordinate portion. ok is false when the text has no colon
// or nothing before it.
func splitRegion(text string) (path, bounds string, ok bool) {
	i := strings.LastIndexByte(text, ':')
	if i <= 0 {
		return "", "", false
	}
	return text[:i], text[i+1:], true
}

// splitBounds splits the coordinate portion on the first dash and checks
// that both sides are digits only. Either side may be empty.
func splitBounds(bounds string) (startText, endText string, ok bool) {
	startText = bounds
	if i := strings.IndexByte(bounds, '-'); i >= 0 {
		startText, endText = bounds[:i], bounds[i+1:]
	}
	if !allDigits(startText) || !allDigits(endText) {
		return "", "", false
	}
	return startText, endText, true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseBound parses an optional coordinate. An empty group or a value that
// does not fit in a uint64 degrades to nil rather than an error.
func parseBound(text string) *uint64 {
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

// scanMandatory applies the colon/dash grammar with both bounds required:
// everything before the last colon is the path, and the remainder must be
// two parsable coordinates separated by a dash.
func scanMandatory(text string) (path string, start, end uint64, err error) {
	path, bounds, ok := splitRegion(text)
	if !ok {
		return "", 0, 0, ErrInvalidRegion
	}
	startText, endText, ok := splitBounds(bounds)
	if !ok || startText == "" {
		return "", 0, 0, ErrInvalidRegion
	}
	start, err = strconv.ParseUint(startText, 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("parsing start bound: %v", err)
	}
	end, err = strconv.ParseUint(endText, 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("parsing end bound: %v", err)
	}
	return path, start, end, nil
}
