// Copyright 2024-2026 The Sermode Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sermode defines a generic, visitor-style serialization surface
// and a format-mode overlay for it.
//
// The surface splits responsibilities three ways: a [Value] describes
// itself to a [Serializer], a [Deserializer] drives a [Visitor] to rebuild
// a value, and aggregate shapes (sequences, tuples, maps, structs, enum
// variants) are handled through sub-encoders and accessors handed out as
// the traversal descends. Engines - the concrete implementations of
// [Serializer] and [Deserializer] - answer one extra question,
// IsHumanReadable, which lets a value choose between a textual and a
// compact representation of itself without the caller wiring up two code
// paths.
//
// The overlay is the pair of tagging modes, [Readable] and [Compact]. A
// mode wraps an engine, a value, a visitor, or any accessor so that the
// entire traversal rooted there observes the mode's answer to
// IsHumanReadable while every other operation passes through to the
// wrapped object untouched:
//
//	err := Readable.Value(v).Serialize(engine)
//
// serializes v exactly as the bare engine would, except that v - and
// every field, element, key, and payload reachable from it - sees
// IsHumanReadable() == true. The overlay stores nothing, transforms
// nothing, and never constructs an error of its own; failures from the
// wrapped engine surface unchanged.
package sermode
