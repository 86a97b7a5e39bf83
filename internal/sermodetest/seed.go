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

package sermodetest

import "sermode.dev/sermode"

// ValueSeed deserializes any non-enum value into a generic Go
// representation: bool, int64, uint64, float64, rune, string, []byte,
// nil (none/unit), []any for sequences and tuples, and map[any]any for
// maps and structs.
//
// When Flags is set, the seed appends the engine's IsHumanReadable
// answer every time a deserializer is handed to it: at Deserialize
// entry, and inside VisitSome and VisitNewtypeStruct. Nested elements,
// keys, and values are read with fresh ValueSeeds sharing the same
// Flags, so the slice captures the mode at every hand-off point of the
// traversal, in order.
type ValueSeed struct {
	Flags *[]bool
}

var _ sermode.Seed = ValueSeed{}

func (s ValueSeed) observe(d sermode.Deserializer) {
	if s.Flags != nil {
		*s.Flags = append(*s.Flags, d.IsHumanReadable())
	}
}

func (s ValueSeed) Deserialize(d sermode.Deserializer) (any, error) {
	s.observe(d)
	return d.DeserializeAny(anyVisitor{seed: s})
}

type anyVisitor struct {
	seed ValueSeed
}

var _ sermode.Visitor = anyVisitor{}

func (v anyVisitor) Expecting() string { return "any non-enum value" }

func (v anyVisitor) VisitBool(b bool) (any, error)     { return b, nil }
func (v anyVisitor) VisitInt(n int64) (any, error)     { return n, nil }
func (v anyVisitor) VisitUint(n uint64) (any, error)   { return n, nil }
func (v anyVisitor) VisitFloat(f float64) (any, error) { return f, nil }
func (v anyVisitor) VisitRune(r rune) (any, error)     { return r, nil }
func (v anyVisitor) VisitString(s string) (any, error) { return s, nil }
func (v anyVisitor) VisitBytes(b []byte) (any, error)  { return b, nil }
func (v anyVisitor) VisitNone() (any, error)           { return nil, nil }
func (v anyVisitor) VisitUnit() (any, error)           { return nil, nil }

func (v anyVisitor) VisitSome(d sermode.Deserializer) (any, error) {
	v.seed.observe(d)
	return v.seed.Deserialize(d)
}

func (v anyVisitor) VisitNewtypeStruct(d sermode.Deserializer) (any, error) {
	v.seed.observe(d)
	return v.seed.Deserialize(d)
}

func (v anyVisitor) VisitSeq(a sermode.SeqAccess) (any, error) {
	elements := []any{}
	for {
		element, ok, err := a.NextElementSeed(v.seed)
		if err != nil {
			return nil, err
		}
		if !ok {
			return elements, nil
		}
		elements = append(elements, element)
	}
}

func (v anyVisitor) VisitMap(a sermode.MapAccess) (any, error) {
	entries := map[any]any{}
	for {
		key, ok, err := a.NextKeySeed(v.seed)
		if err != nil {
			return nil, err
		}
		if !ok {
			return entries, nil
		}
		value, err := a.NextValueSeed(v.seed)
		if err != nil {
			return nil, err
		}
		entries[key] = value
	}
}

func (v anyVisitor) VisitEnum(a sermode.EnumAccess) (any, error) {
	return nil, sermode.NewError("enums require an EnumSeed")
}

// A Variant is the generic result of decoding an enum value.
type Variant struct {
	Name    string
	Payload any
}

// A VariantShape tells EnumSeed how to read a variant's payload.
type VariantShape int

const (
	UnitShape VariantShape = iota
	NewtypeShape
	TupleShape
	StructShape
)

// EnumSeed deserializes one enum value whose variant shapes are known up
// front, producing a Variant. Flags behaves as on ValueSeed and is
// shared with the seeds reading the payload.
type EnumSeed struct {
	Name     string
	Variants map[string]VariantShape
	Arity    int      // tuple-variant payload arity
	Fields   []string // struct-variant field names
	Flags    *[]bool
}

var _ sermode.Seed = EnumSeed{}

func (s EnumSeed) Deserialize(d sermode.Deserializer) (any, error) {
	if s.Flags != nil {
		*s.Flags = append(*s.Flags, d.IsHumanReadable())
	}
	names := make([]string, 0, len(s.Variants))
	for name := range s.Variants {
		names = append(names, name)
	}
	return d.DeserializeEnum(s.Name, names, enumVisitor{seed: s})
}

type enumVisitor struct {
	BaseVisitor
	seed EnumSeed
}

func (v enumVisitor) Expecting() string { return "enum " + v.seed.Name }

func (v enumVisitor) VisitEnum(a sermode.EnumAccess) (any, error) {
	tag, variant, err := a.VariantSeed(ValueSeed{Flags: v.seed.Flags})
	if err != nil {
		return nil, err
	}
	name, ok := tag.(string)
	if !ok {
		return nil, sermode.Errorf("variant tag is %T, not a string", tag)
	}
	shape, ok := v.seed.Variants[name]
	if !ok {
		return nil, sermode.Errorf("unknown variant %q of enum %s", name, v.seed.Name)
	}
	payload := ValueSeed{Flags: v.seed.Flags}
	switch shape {
	case UnitShape:
		if err := variant.UnitVariant(); err != nil {
			return nil, err
		}
		return Variant{Name: name}, nil
	case NewtypeShape:
		value, err := variant.NewtypeVariantSeed(payload)
		if err != nil {
			return nil, err
		}
		return Variant{Name: name, Payload: value}, nil
	case TupleShape:
		value, err := variant.TupleVariant(v.seed.Arity, anyVisitor{seed: payload})
		if err != nil {
			return nil, err
		}
		return Variant{Name: name, Payload: value}, nil
	default:
		value, err := variant.StructVariant(v.seed.Fields, anyVisitor{seed: payload})
		if err != nil {
			return nil, err
		}
		return Variant{Name: name, Payload: value}, nil
	}
}

// IntSlot is a seed that also supports in-place deserialization of an
// int64 into itself.
type IntSlot struct {
	N     int64
	Flags *[]bool
}

var _ sermode.InPlaceSeed = (*IntSlot)(nil)

func (s *IntSlot) observe(d sermode.Deserializer) {
	if s.Flags != nil {
		*s.Flags = append(*s.Flags, d.IsHumanReadable())
	}
}

func (s *IntSlot) Deserialize(d sermode.Deserializer) (any, error) {
	s.observe(d)
	return d.DeserializeInt64(anyVisitor{})
}

func (s *IntSlot) DeserializeInPlace(d sermode.Deserializer) error {
	s.observe(d)
	v, err := d.DeserializeInt64(anyVisitor{})
	if err != nil {
		return err
	}
	n, ok := v.(int64)
	if !ok {
		return sermode.Errorf("decoded %T, not int64", v)
	}
	s.N = n
	return nil
}

// BaseVisitor implements Visitor by rejecting every shape. Embed it and
// override the methods a test accepts.
type BaseVisitor struct{}

var _ sermode.Visitor = BaseVisitor{}

func (BaseVisitor) Expecting() string { return "nothing" }

func (BaseVisitor) unexpected(shape string) error {
	return sermode.NewError("unexpected " + shape)
}

func (v BaseVisitor) VisitBool(bool) (any, error)      { return nil, v.unexpected("bool") }
func (v BaseVisitor) VisitInt(int64) (any, error)      { return nil, v.unexpected("int") }
func (v BaseVisitor) VisitUint(uint64) (any, error)    { return nil, v.unexpected("uint") }
func (v BaseVisitor) VisitFloat(float64) (any, error)  { return nil, v.unexpected("float") }
func (v BaseVisitor) VisitRune(rune) (any, error)      { return nil, v.unexpected("rune") }
func (v BaseVisitor) VisitString(string) (any, error)  { return nil, v.unexpected("string") }
func (v BaseVisitor) VisitBytes([]byte) (any, error)   { return nil, v.unexpected("bytes") }
func (v BaseVisitor) VisitNone() (any, error)          { return nil, v.unexpected("none") }
func (v BaseVisitor) VisitUnit() (any, error)          { return nil, v.unexpected("unit") }

func (v BaseVisitor) VisitSome(sermode.Deserializer) (any, error) {
	return nil, v.unexpected("optional value")
}

func (v BaseVisitor) VisitNewtypeStruct(sermode.Deserializer) (any, error) {
	return nil, v.unexpected("newtype struct")
}

func (v BaseVisitor) VisitSeq(sermode.SeqAccess) (any, error) {
	return nil, v.unexpected("sequence")
}

func (v BaseVisitor) VisitMap(sermode.MapAccess) (any, error) {
	return nil, v.unexpected("map")
}

func (v BaseVisitor) VisitEnum(sermode.EnumAccess) (any, error) {
	return nil, v.unexpected("enum")
}
