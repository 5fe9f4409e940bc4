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

// Package genomics models genomic coordinate ranges parsed from location
// strings such as "chr1:12000-12001" or "10:120-120001".
//
// Three value types cooperate: OptionalRegion accepts partial specifiers
// (a bare chromosome, or a single bound), StringRegion requires both
// bounds and tracks whether they were given in reversed order, and Region
// is a numeric half-open interval keyed by a reference id resolved through
// a caller-supplied Resolver.
package genomics

import "errors"

var (
	// ErrInvalidRegion reports text that does not match the region grammar.
	ErrInvalidRegion = errors.New("invalid genomic range")

	// ErrUnknownReference reports a path the resolver has no id for.
	ErrUnknownReference = errors.New("reference id is not recognized")

	// ErrUnderflow reports a coordinate decrement below zero.
	ErrUnderflow = errors.New("start coordinate underflow")
)
