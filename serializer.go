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

import (
	"fmt"
	"iter"
)

// A Value describes itself to a Serializer. Implementations call exactly
// one method on the serializer (or one aggregate-begin followed by the
// returned encoder's methods) and may branch on IsHumanReadable to pick
// between a textual and a compact representation.
type Value interface {
	Serialize(s Serializer) error
}

// A Serializer is a write-side engine: it consumes the description a
// Value gives of itself and produces some serialized representation.
//
// Length arguments on aggregate-begin and collection methods are hints; a
// negative length means the number of elements isn't known up front.
// Variant indexes identify a variant positionally within its enum, and
// the accompanying name strings are descriptive metadata that engines may
// use or ignore.
//
// Aggregate-begin methods hand back a sub-encoder scoped to the aggregate
// being written; the caller must finish it with End before touching the
// parent again. Errors returned from any method terminate the traversal.
type Serializer interface {
	// IsHumanReadable reports whether values should serialize themselves
	// in a textual, self-describing form rather than a compact one.
	IsHumanReadable() bool

	SerializeBool(v bool) error
	SerializeInt8(v int8) error
	SerializeInt16(v int16) error
	SerializeInt32(v int32) error
	SerializeInt64(v int64) error
	SerializeUint8(v uint8) error
	SerializeUint16(v uint16) error
	SerializeUint32(v uint32) error
	SerializeUint64(v uint64) error
	SerializeFloat32(v float32) error
	SerializeFloat64(v float64) error
	SerializeRune(v rune) error
	SerializeString(v string) error
	SerializeBytes(v []byte) error

	// SerializeNone records an absent optional value; SerializeSome
	// records a present one, delegating to the payload for its own
	// representation.
	SerializeNone() error
	SerializeSome(v Value) error

	// SerializeUnit records a value carrying no data. SerializeUnitStruct
	// and SerializeUnitVariant are the named forms.
	SerializeUnit() error
	SerializeUnitStruct(name string) error
	SerializeUnitVariant(name string, index uint32, variant string) error

	SerializeNewtypeStruct(name string, v Value) error
	SerializeNewtypeVariant(name string, index uint32, variant string, v Value) error

	SerializeSeq(length int) (SeqEncoder, error)
	SerializeTuple(length int) (TupleEncoder, error)
	SerializeTupleStruct(name string, length int) (TupleStructEncoder, error)
	SerializeTupleVariant(name string, index uint32, variant string, length int) (TupleVariantEncoder, error)
	SerializeMap(length int) (MapEncoder, error)
	SerializeStruct(name string, length int) (StructEncoder, error)
	SerializeStructVariant(name string, index uint32, variant string, length int) (StructVariantEncoder, error)

	// CollectSeq and CollectMap serialize a lazily-produced sequence or
	// map. Engines must draw elements on demand: sources may be very
	// large or unbounded.
	CollectSeq(length int, values iter.Seq[Value]) error
	CollectMap(length int, entries iter.Seq2[Value, Value]) error

	// CollectString serializes the string form of v.
	CollectString(v fmt.Stringer) error
}

// A SeqEncoder writes the elements of an in-progress sequence.
type SeqEncoder interface {
	SerializeElement(v Value) error
	End() error
}

// A TupleEncoder writes the elements of an in-progress fixed-arity tuple.
type TupleEncoder interface {
	SerializeElement(v Value) error
	End() error
}

// A TupleStructEncoder writes the fields of an in-progress named tuple.
type TupleStructEncoder interface {
	SerializeField(v Value) error
	End() error
}

// A TupleVariantEncoder writes the fields of an in-progress tuple-shaped
// enum variant.
type TupleVariantEncoder interface {
	SerializeField(v Value) error
	End() error
}

// A MapEncoder writes the entries of an in-progress map. Callers either
// alternate SerializeKey and SerializeValue or use SerializeEntry for a
// complete pair.
type MapEncoder interface {
	SerializeKey(k Value) error
	SerializeValue(v Value) error
	SerializeEntry(k, v Value) error
	End() error
}

// A StructEncoder writes the named fields of an in-progress struct.
// SkipField tells the engine a field present in the type was deliberately
// omitted from the output.
type StructEncoder interface {
	SerializeField(name string, v Value) error
	SkipField(name string) error
	End() error
}

// A StructVariantEncoder writes the named fields of an in-progress
// struct-shaped enum variant.
type StructVariantEncoder interface {
	SerializeField(name string, v Value) error
	SkipField(name string) error
	End() error
}
