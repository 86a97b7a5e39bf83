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

package sermode

// A Mode fixes the answer to IsHumanReadable for everything reachable
// from the object it tags. Compact and Readable are the only modes; the
// flag is part of the tag's identity and cannot change mid-traversal.
//
// Tagging is purely structural: the returned wrapper forwards every
// operation to the wrapped object and re-applies the same tag to each
// nested value, sub-encoder, visitor, seed, and accessor that crosses
// it, in either direction. Tags apply from the point of application
// outward - wrapping an already-tagged object puts the new tag between
// the old one and the engine, so the tag applied nearest the value wins.
type Mode int

const (
	// Compact tags its payload as using IsHumanReadable() == false.
	Compact Mode = iota
	// Readable tags its payload as using IsHumanReadable() == true.
	Readable
)

// HumanReadable reports the flag this mode fixes.
func (m Mode) HumanReadable() bool { return m == Readable }

func (m Mode) String() string {
	if m == Readable {
		return "readable"
	}
	return "compact"
}

// Value tags v: when serialized, v observes this mode's flag no matter
// which engine it is handed to.
func (m Mode) Value(v Value) Value { return modeValue{mode: m, value: v} }

// Serializer tags s: every value serialized through the returned engine
// observes this mode's flag.
func (m Mode) Serializer(s Serializer) Serializer { return modeSerializer{mode: m, ser: s} }

// Deserializer tags d: every visitor and seed driven by the returned
// engine observes this mode's flag.
func (m Mode) Deserializer(d Deserializer) Deserializer { return modeDeserializer{mode: m, de: d} }

// Visitor tags v: every sub-engine and accessor handed to the returned
// visitor is re-tagged with this mode first.
func (m Mode) Visitor(v Visitor) Visitor { return modeVisitor{mode: m, visitor: v} }

// Seed tags seed: it deserializes against a re-tagged engine. When seed
// also supports in-place deserialization, so does the returned seed.
func (m Mode) Seed(seed Seed) Seed {
	if in, ok := seed.(InPlaceSeed); ok {
		return modeInPlaceSeed{modeSeed{mode: m, seed: seed}, in}
	}
	return modeSeed{mode: m, seed: seed}
}

// SeqAccess tags a, re-tagging every element seed passed through it.
func (m Mode) SeqAccess(a SeqAccess) SeqAccess { return modeSeqAccess{mode: m, seq: a} }

// MapAccess tags a, re-tagging every key and value seed passed through it.
func (m Mode) MapAccess(a MapAccess) MapAccess { return modeMapAccess{mode: m, entries: a} }

// EnumAccess tags a, re-tagging the variant seed and the variant
// accessor it resolves.
func (m Mode) EnumAccess(a EnumAccess) EnumAccess { return modeEnumAccess{mode: m, enum: a} }

// VariantAccess tags a, re-tagging the seeds and visitors that read the
// variant's payload.
func (m Mode) VariantAccess(a VariantAccess) VariantAccess {
	return modeVariantAccess{mode: m, variant: a}
}
