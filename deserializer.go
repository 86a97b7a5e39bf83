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

// A Seed knows how to deserialize one value of a specific target type.
// It is used wherever the target type can't be inferred from context
// alone, such as map values whose type depends on the key already read.
type Seed interface {
	Deserialize(d Deserializer) (any, error)
}

// An InPlaceSeed additionally supports decoding into an existing value
// held by the seed, rather than producing a fresh one.
type InPlaceSeed interface {
	Seed
	DeserializeInPlace(d Deserializer) error
}

// A Deserializer is a read-side engine: it parses some serialized
// representation and drives the supplied Visitor with whatever it finds.
//
// Each Deserialize method is a request - a hint about the shape the
// caller expects. Self-describing engines are free to call a different
// Visit method than the request suggests; the visitor decides what it
// accepts. Name, field-list, and arity arguments are descriptive
// metadata passed through to the engine unchanged.
type Deserializer interface {
	// IsHumanReadable reports whether values should expect their textual,
	// self-describing form rather than the compact one.
	IsHumanReadable() bool

	// DeserializeAny asks the engine to infer the shape from the input.
	DeserializeAny(v Visitor) (any, error)

	DeserializeBool(v Visitor) (any, error)
	DeserializeInt8(v Visitor) (any, error)
	DeserializeInt16(v Visitor) (any, error)
	DeserializeInt32(v Visitor) (any, error)
	DeserializeInt64(v Visitor) (any, error)
	DeserializeUint8(v Visitor) (any, error)
	DeserializeUint16(v Visitor) (any, error)
	DeserializeUint32(v Visitor) (any, error)
	DeserializeUint64(v Visitor) (any, error)
	DeserializeFloat32(v Visitor) (any, error)
	DeserializeFloat64(v Visitor) (any, error)
	DeserializeRune(v Visitor) (any, error)
	DeserializeString(v Visitor) (any, error)
	DeserializeBytes(v Visitor) (any, error)

	DeserializeOption(v Visitor) (any, error)
	DeserializeUnit(v Visitor) (any, error)
	DeserializeUnitStruct(name string, v Visitor) (any, error)
	DeserializeNewtypeStruct(name string, v Visitor) (any, error)

	DeserializeSeq(v Visitor) (any, error)
	DeserializeTuple(length int, v Visitor) (any, error)
	DeserializeTupleStruct(name string, length int, v Visitor) (any, error)
	DeserializeMap(v Visitor) (any, error)
	DeserializeStruct(name string, fields []string, v Visitor) (any, error)
	DeserializeEnum(name string, variants []string, v Visitor) (any, error)

	// DeserializeIdentifier requests a struct field name or enum variant
	// name. DeserializeIgnoredAny tells the engine the next value will be
	// discarded, allowing it to skip cheaply.
	DeserializeIdentifier(v Visitor) (any, error)
	DeserializeIgnoredAny(v Visitor) (any, error)
}

// A Visitor receives concretely-shaped data from a Deserializer and
// constructs the target value from it. Scalar Visit methods terminate a
// branch of the traversal; the nested forms (VisitSome,
// VisitNewtypeStruct, VisitSeq, VisitMap, VisitEnum) hand the visitor a
// sub-engine or accessor to continue from.
type Visitor interface {
	// Expecting describes what this visitor accepts, for use in engine
	// error messages ("expected a borrowed string", etc).
	Expecting() string

	VisitBool(v bool) (any, error)
	VisitInt(v int64) (any, error)
	VisitUint(v uint64) (any, error)
	VisitFloat(v float64) (any, error)
	VisitRune(v rune) (any, error)
	VisitString(v string) (any, error)
	VisitBytes(v []byte) (any, error)
	VisitNone() (any, error)
	VisitUnit() (any, error)

	VisitSome(d Deserializer) (any, error)
	VisitNewtypeStruct(d Deserializer) (any, error)
	VisitSeq(a SeqAccess) (any, error)
	VisitMap(a MapAccess) (any, error)
	VisitEnum(a EnumAccess) (any, error)
}

// A SeqAccess reads the elements of an in-progress sequence.
type SeqAccess interface {
	// NextElementSeed produces the next element using seed, or reports
	// ok == false once the sequence is exhausted.
	NextElementSeed(seed Seed) (v any, ok bool, err error)

	// SizeHint returns the number of remaining elements if the engine
	// knows it, or a negative value.
	SizeHint() int
}

// A MapAccess reads the entries of an in-progress map. Callers either
// alternate NextKeySeed and NextValueSeed or use NextEntrySeed for a
// complete pair.
type MapAccess interface {
	NextKeySeed(seed Seed) (k any, ok bool, err error)
	NextValueSeed(seed Seed) (v any, err error)
	NextEntrySeed(key, value Seed) (k, v any, ok bool, err error)

	// SizeHint returns the number of remaining entries if the engine
	// knows it, or a negative value.
	SizeHint() int
}

// An EnumAccess resolves which variant of an enum is present.
type EnumAccess interface {
	// VariantSeed identifies the variant using seed and returns an
	// accessor for that variant's payload.
	VariantSeed(seed Seed) (any, VariantAccess, error)
}

// A VariantAccess reads the payload of a resolved enum variant. Exactly
// one of its methods is called, matching the variant's shape.
type VariantAccess interface {
	UnitVariant() error
	NewtypeVariantSeed(seed Seed) (any, error)
	TupleVariant(length int, v Visitor) (any, error)
	StructVariant(fields []string, v Visitor) (any, error)
}
