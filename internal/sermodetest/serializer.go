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

import (
	"fmt"
	"iter"
	"strings"

	"sermode.dev/sermode"
)

// Serializer is a write-side engine that records every operation invoked
// on it. Nested values are serialized back against the same engine, so
// the op log is a flat, ordered trace of the whole traversal.
type Serializer struct {
	// Human is the answer the bare engine gives to IsHumanReadable. A
	// mode tag wrapped around this engine overrides it.
	Human bool

	// FailOn names an operation that should fail with Err when reached.
	// The op is still recorded first.
	FailOn string
	Err    error

	// CollectLimit bounds how many elements CollectSeq and CollectMap
	// draw from their source before ending early; zero means unbounded.
	CollectLimit int

	ops []string
}

var _ sermode.Serializer = (*Serializer)(nil)

// Ops returns a copy of the recorded op log.
func (s *Serializer) Ops() []string {
	return append([]string(nil), s.ops...)
}

func (s *Serializer) record(name string, args ...any) error {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprint(arg)
	}
	s.ops = append(s.ops, name+"("+strings.Join(parts, ",")+")")
	if name == s.FailOn {
		if s.Err != nil {
			return s.Err
		}
		return sermode.NewError("scripted failure at " + name)
	}
	return nil
}

func (s *Serializer) IsHumanReadable() bool { return s.Human }

func (s *Serializer) SerializeBool(v bool) error       { return s.record("SerializeBool", v) }
func (s *Serializer) SerializeInt8(v int8) error       { return s.record("SerializeInt8", v) }
func (s *Serializer) SerializeInt16(v int16) error     { return s.record("SerializeInt16", v) }
func (s *Serializer) SerializeInt32(v int32) error     { return s.record("SerializeInt32", v) }
func (s *Serializer) SerializeInt64(v int64) error     { return s.record("SerializeInt64", v) }
func (s *Serializer) SerializeUint8(v uint8) error     { return s.record("SerializeUint8", v) }
func (s *Serializer) SerializeUint16(v uint16) error   { return s.record("SerializeUint16", v) }
func (s *Serializer) SerializeUint32(v uint32) error   { return s.record("SerializeUint32", v) }
func (s *Serializer) SerializeUint64(v uint64) error   { return s.record("SerializeUint64", v) }
func (s *Serializer) SerializeFloat32(v float32) error { return s.record("SerializeFloat32", v) }
func (s *Serializer) SerializeFloat64(v float64) error { return s.record("SerializeFloat64", v) }
func (s *Serializer) SerializeRune(v rune) error       { return s.record("SerializeRune", string(v)) }
func (s *Serializer) SerializeString(v string) error   { return s.record("SerializeString", v) }
func (s *Serializer) SerializeBytes(v []byte) error    { return s.record("SerializeBytes", v) }

func (s *Serializer) SerializeNone() error { return s.record("SerializeNone") }

func (s *Serializer) SerializeSome(v sermode.Value) error {
	if err := s.record("SerializeSome"); err != nil {
		return err
	}
	return v.Serialize(s)
}

func (s *Serializer) SerializeUnit() error { return s.record("SerializeUnit") }

func (s *Serializer) SerializeUnitStruct(name string) error {
	return s.record("SerializeUnitStruct", name)
}

func (s *Serializer) SerializeUnitVariant(name string, index uint32, variant string) error {
	return s.record("SerializeUnitVariant", name, index, variant)
}

func (s *Serializer) SerializeNewtypeStruct(name string, v sermode.Value) error {
	if err := s.record("SerializeNewtypeStruct", name); err != nil {
		return err
	}
	return v.Serialize(s)
}

func (s *Serializer) SerializeNewtypeVariant(name string, index uint32, variant string, v sermode.Value) error {
	if err := s.record("SerializeNewtypeVariant", name, index, variant); err != nil {
		return err
	}
	return v.Serialize(s)
}

func (s *Serializer) SerializeSeq(length int) (sermode.SeqEncoder, error) {
	if err := s.record("SerializeSeq", length); err != nil {
		return nil, err
	}
	return elementEncoder{s}, nil
}

func (s *Serializer) SerializeTuple(length int) (sermode.TupleEncoder, error) {
	if err := s.record("SerializeTuple", length); err != nil {
		return nil, err
	}
	return elementEncoder{s}, nil
}

func (s *Serializer) SerializeTupleStruct(name string, length int) (sermode.TupleStructEncoder, error) {
	if err := s.record("SerializeTupleStruct", name, length); err != nil {
		return nil, err
	}
	return fieldEncoder{s}, nil
}

func (s *Serializer) SerializeTupleVariant(name string, index uint32, variant string, length int) (sermode.TupleVariantEncoder, error) {
	if err := s.record("SerializeTupleVariant", name, index, variant, length); err != nil {
		return nil, err
	}
	return fieldEncoder{s}, nil
}

func (s *Serializer) SerializeMap(length int) (sermode.MapEncoder, error) {
	if err := s.record("SerializeMap", length); err != nil {
		return nil, err
	}
	return mapEncoder{s}, nil
}

func (s *Serializer) SerializeStruct(name string, length int) (sermode.StructEncoder, error) {
	if err := s.record("SerializeStruct", name, length); err != nil {
		return nil, err
	}
	return structEncoder{s}, nil
}

func (s *Serializer) SerializeStructVariant(name string, index uint32, variant string, length int) (sermode.StructVariantEncoder, error) {
	if err := s.record("SerializeStructVariant", name, index, variant, length); err != nil {
		return nil, err
	}
	return structEncoder{s}, nil
}

func (s *Serializer) CollectSeq(length int, values iter.Seq[sermode.Value]) error {
	if err := s.record("CollectSeq", length); err != nil {
		return err
	}
	drawn := 0
	for v := range values {
		if s.CollectLimit > 0 && drawn >= s.CollectLimit {
			break
		}
		drawn++
		if err := s.record("CollectElement"); err != nil {
			return err
		}
		if err := v.Serialize(s); err != nil {
			return err
		}
	}
	return s.record("End")
}

func (s *Serializer) CollectMap(length int, entries iter.Seq2[sermode.Value, sermode.Value]) error {
	if err := s.record("CollectMap", length); err != nil {
		return err
	}
	drawn := 0
	for k, v := range entries {
		if s.CollectLimit > 0 && drawn >= s.CollectLimit {
			break
		}
		drawn++
		if err := s.record("CollectEntry"); err != nil {
			return err
		}
		if err := k.Serialize(s); err != nil {
			return err
		}
		if err := v.Serialize(s); err != nil {
			return err
		}
	}
	return s.record("End")
}

func (s *Serializer) CollectString(v fmt.Stringer) error {
	return s.record("CollectString", v.String())
}

type elementEncoder struct {
	s *Serializer
}

var (
	_ sermode.SeqEncoder   = elementEncoder{}
	_ sermode.TupleEncoder = elementEncoder{}
)

func (e elementEncoder) SerializeElement(v sermode.Value) error {
	if err := e.s.record("SerializeElement"); err != nil {
		return err
	}
	return v.Serialize(e.s)
}

func (e elementEncoder) End() error { return e.s.record("End") }

type fieldEncoder struct {
	s *Serializer
}

var (
	_ sermode.TupleStructEncoder  = fieldEncoder{}
	_ sermode.TupleVariantEncoder = fieldEncoder{}
)

func (e fieldEncoder) SerializeField(v sermode.Value) error {
	if err := e.s.record("SerializeField"); err != nil {
		return err
	}
	return v.Serialize(e.s)
}

func (e fieldEncoder) End() error { return e.s.record("End") }

type mapEncoder struct {
	s *Serializer
}

var _ sermode.MapEncoder = mapEncoder{}

func (e mapEncoder) SerializeKey(k sermode.Value) error {
	if err := e.s.record("SerializeKey"); err != nil {
		return err
	}
	return k.Serialize(e.s)
}

func (e mapEncoder) SerializeValue(v sermode.Value) error {
	if err := e.s.record("SerializeValue"); err != nil {
		return err
	}
	return v.Serialize(e.s)
}

func (e mapEncoder) SerializeEntry(k, v sermode.Value) error {
	if err := e.s.record("SerializeEntry"); err != nil {
		return err
	}
	if err := k.Serialize(e.s); err != nil {
		return err
	}
	return v.Serialize(e.s)
}

func (e mapEncoder) End() error { return e.s.record("End") }

type structEncoder struct {
	s *Serializer
}

var (
	_ sermode.StructEncoder        = structEncoder{}
	_ sermode.StructVariantEncoder = structEncoder{}
)

func (e structEncoder) SerializeField(name string, v sermode.Value) error {
	if err := e.s.record("SerializeField", name); err != nil {
		return err
	}
	return v.Serialize(e.s)
}

func (e structEncoder) SkipField(name string) error {
	return e.s.record("SkipField", name)
}

func (e structEncoder) End() error { return e.s.record("End") }
