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

// The read-side overlay, symmetric with mode_serializer.go. Dispatch
// methods re-tag the visitor; visitors re-tag the sub-engines and
// accessors the inner engine hands them; accessors re-tag the seeds they
// are given and the variant accessors they resolve. Scalar visits, size
// hints, and descriptive metadata pass through verbatim, as do all
// errors.

type modeDeserializer struct {
	mode Mode
	de   Deserializer
}

var _ Deserializer = modeDeserializer{}

func (d modeDeserializer) IsHumanReadable() bool { return d.mode.HumanReadable() }

func (d modeDeserializer) DeserializeAny(v Visitor) (any, error) {
	return d.de.DeserializeAny(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeBool(v Visitor) (any, error) {
	return d.de.DeserializeBool(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeInt8(v Visitor) (any, error) {
	return d.de.DeserializeInt8(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeInt16(v Visitor) (any, error) {
	return d.de.DeserializeInt16(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeInt32(v Visitor) (any, error) {
	return d.de.DeserializeInt32(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeInt64(v Visitor) (any, error) {
	return d.de.DeserializeInt64(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeUint8(v Visitor) (any, error) {
	return d.de.DeserializeUint8(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeUint16(v Visitor) (any, error) {
	return d.de.DeserializeUint16(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeUint32(v Visitor) (any, error) {
	return d.de.DeserializeUint32(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeUint64(v Visitor) (any, error) {
	return d.de.DeserializeUint64(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeFloat32(v Visitor) (any, error) {
	return d.de.DeserializeFloat32(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeFloat64(v Visitor) (any, error) {
	return d.de.DeserializeFloat64(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeRune(v Visitor) (any, error) {
	return d.de.DeserializeRune(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeString(v Visitor) (any, error) {
	return d.de.DeserializeString(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeBytes(v Visitor) (any, error) {
	return d.de.DeserializeBytes(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeOption(v Visitor) (any, error) {
	return d.de.DeserializeOption(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeUnit(v Visitor) (any, error) {
	return d.de.DeserializeUnit(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeUnitStruct(name string, v Visitor) (any, error) {
	return d.de.DeserializeUnitStruct(name, d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeNewtypeStruct(name string, v Visitor) (any, error) {
	return d.de.DeserializeNewtypeStruct(name, d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeSeq(v Visitor) (any, error) {
	return d.de.DeserializeSeq(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeTuple(length int, v Visitor) (any, error) {
	return d.de.DeserializeTuple(length, d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeTupleStruct(name string, length int, v Visitor) (any, error) {
	return d.de.DeserializeTupleStruct(name, length, d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeMap(v Visitor) (any, error) {
	return d.de.DeserializeMap(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeStruct(name string, fields []string, v Visitor) (any, error) {
	return d.de.DeserializeStruct(name, fields, d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeEnum(name string, variants []string, v Visitor) (any, error) {
	return d.de.DeserializeEnum(name, variants, d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeIdentifier(v Visitor) (any, error) {
	return d.de.DeserializeIdentifier(d.mode.Visitor(v))
}

func (d modeDeserializer) DeserializeIgnoredAny(v Visitor) (any, error) {
	return d.de.DeserializeIgnoredAny(d.mode.Visitor(v))
}

type modeVisitor struct {
	mode    Mode
	visitor Visitor
}

var _ Visitor = modeVisitor{}

func (v modeVisitor) Expecting() string { return v.visitor.Expecting() }

func (v modeVisitor) VisitBool(b bool) (any, error)      { return v.visitor.VisitBool(b) }
func (v modeVisitor) VisitInt(n int64) (any, error)      { return v.visitor.VisitInt(n) }
func (v modeVisitor) VisitUint(n uint64) (any, error)    { return v.visitor.VisitUint(n) }
func (v modeVisitor) VisitFloat(f float64) (any, error)  { return v.visitor.VisitFloat(f) }
func (v modeVisitor) VisitRune(r rune) (any, error)      { return v.visitor.VisitRune(r) }
func (v modeVisitor) VisitString(s string) (any, error)  { return v.visitor.VisitString(s) }
func (v modeVisitor) VisitBytes(b []byte) (any, error)   { return v.visitor.VisitBytes(b) }
func (v modeVisitor) VisitNone() (any, error)            { return v.visitor.VisitNone() }
func (v modeVisitor) VisitUnit() (any, error)            { return v.visitor.VisitUnit() }

func (v modeVisitor) VisitSome(d Deserializer) (any, error) {
	return v.visitor.VisitSome(v.mode.Deserializer(d))
}

func (v modeVisitor) VisitNewtypeStruct(d Deserializer) (any, error) {
	return v.visitor.VisitNewtypeStruct(v.mode.Deserializer(d))
}

func (v modeVisitor) VisitSeq(a SeqAccess) (any, error) {
	return v.visitor.VisitSeq(v.mode.SeqAccess(a))
}

func (v modeVisitor) VisitMap(a MapAccess) (any, error) {
	return v.visitor.VisitMap(v.mode.MapAccess(a))
}

func (v modeVisitor) VisitEnum(a EnumAccess) (any, error) {
	return v.visitor.VisitEnum(v.mode.EnumAccess(a))
}

type modeSeqAccess struct {
	mode Mode
	seq  SeqAccess
}

var _ SeqAccess = modeSeqAccess{}

func (a modeSeqAccess) NextElementSeed(seed Seed) (any, bool, error) {
	return a.seq.NextElementSeed(a.mode.Seed(seed))
}

func (a modeSeqAccess) SizeHint() int { return a.seq.SizeHint() }

type modeMapAccess struct {
	mode    Mode
	entries MapAccess
}

var _ MapAccess = modeMapAccess{}

func (a modeMapAccess) NextKeySeed(seed Seed) (any, bool, error) {
	return a.entries.NextKeySeed(a.mode.Seed(seed))
}

func (a modeMapAccess) NextValueSeed(seed Seed) (any, error) {
	return a.entries.NextValueSeed(a.mode.Seed(seed))
}

func (a modeMapAccess) NextEntrySeed(key, value Seed) (any, any, bool, error) {
	return a.entries.NextEntrySeed(a.mode.Seed(key), a.mode.Seed(value))
}

func (a modeMapAccess) SizeHint() int { return a.entries.SizeHint() }

type modeEnumAccess struct {
	mode Mode
	enum EnumAccess
}

var _ EnumAccess = modeEnumAccess{}

func (a modeEnumAccess) VariantSeed(seed Seed) (any, VariantAccess, error) {
	tag, variant, err := a.enum.VariantSeed(a.mode.Seed(seed))
	if err != nil {
		return nil, nil, err
	}
	return tag, a.mode.VariantAccess(variant), nil
}

type modeVariantAccess struct {
	mode    Mode
	variant VariantAccess
}

var _ VariantAccess = modeVariantAccess{}

func (a modeVariantAccess) UnitVariant() error { return a.variant.UnitVariant() }

func (a modeVariantAccess) NewtypeVariantSeed(seed Seed) (any, error) {
	return a.variant.NewtypeVariantSeed(a.mode.Seed(seed))
}

func (a modeVariantAccess) TupleVariant(length int, v Visitor) (any, error) {
	return a.variant.TupleVariant(length, a.mode.Visitor(v))
}

func (a modeVariantAccess) StructVariant(fields []string, v Visitor) (any, error) {
	return a.variant.StructVariant(fields, a.mode.Visitor(v))
}

type modeSeed struct {
	mode Mode
	seed Seed
}

var _ Seed = modeSeed{}

func (s modeSeed) Deserialize(d Deserializer) (any, error) {
	return s.seed.Deserialize(s.mode.Deserializer(d))
}

// modeInPlaceSeed is returned by Mode.Seed only when the wrapped seed
// supports in-place deserialization, so the wrapper never advertises a
// capability the inner seed lacks.
type modeInPlaceSeed struct {
	modeSeed
	in InPlaceSeed
}

var _ InPlaceSeed = modeInPlaceSeed{}

func (s modeInPlaceSeed) DeserializeInPlace(d Deserializer) error {
	return s.in.DeserializeInPlace(s.mode.Deserializer(d))
}
