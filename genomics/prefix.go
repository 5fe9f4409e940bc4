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

import "strings"

// defaultPrefix is stripped when no explicit prefix is configured.
const defaultPrefix = "chr"

// normalizePath applies chromosome-prefix normalization to a path.
//
// An empty prefix strips a literal "chr" when present and otherwise leaves
// the path alone. A non-empty prefix is stripped when present; if the
// remaining text ends up shorter than the prefix itself, the prefix is put
// back, so a path that is nothing but the prefix survives unchanged.
func normalizePath(path, prefix string) string {
	if prefix == "" {
		return strings.TrimPrefix(path, defaultPrefix)
	}
	trimmed := strings.TrimPrefix(path, prefix)
	if len(trimmed) < len(prefix) {
		return prefix + trimmed
	}
	return trimmed
}
