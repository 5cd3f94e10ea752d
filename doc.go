// Copyright 2014 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package btree implements an in-memory, augmented B-tree keyed by a signed
// integer position, with a lazy per-node shift that lets a whole subtree's
// keys move by a delta in O(1) instead of touching every entry.
//
// It underpins a dynamic minimizer index for DNA sequences: positions shift
// whenever a variant is applied upstream of them, and rewriting every
// affected key on every edit would make the surrounding algorithm no better
// than a brute-force rebuild. Read operations fold the accumulated shift on
// the way down; structural operations (split, merge, join, split-by-value)
// re-base a shift across the node boundary it crosses so the effective value
// of every key is preserved.
//
// Like its ancestor, this is not meant for persistent storage, and a single
// tree is not safe for concurrent use without external synchronization.
package btree
