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

// The write-side overlay. Every wrapper here forwards verbatim except at
// three kinds of hand-off point, which re-apply the tag: nested values
// (SerializeSome, newtype payloads, elements, fields, keys, entries,
// lazily collected items), sub-encoders returned by aggregate-begin
// methods, and the IsHumanReadable answer itself. Errors from the inner
// engine pass through untouched.

type modeValue struct {
	mode  Mode
	value Value
}

var _ Value = modeValue{}

func (v modeValue) Serialize(s Serializer) error {
	return v.value.Serialize(v.mode.Serializer(s))
}

type modeSerializer struct {
	mode Mode
	ser  Serializer
}

var _ Serializer = modeSerializer{}

func (s modeSerializer) IsHumanReadable() bool { return s.mode.HumanReadable() }

func (s modeSerializer) SerializeBool(v bool) error       { return s.ser.SerializeBool(v) }
func (s modeSerializer) SerializeInt8(v int8) error       { return s.ser.SerializeInt8(v) }
func (s modeSerializer) SerializeInt16(v int16) error     { return s.ser.SerializeInt16(v) }
func (s modeSerializer) SerializeInt32(v int32) error     { return s.ser.SerializeInt32(v) }
func (s modeSerializer) SerializeInt64(v int64) error     { return s.ser.SerializeInt64(v) }
func (s modeSerializer) SerializeUint8(v uint8) error     { return s.ser.SerializeUint8(v) }
func (s modeSerializer) SerializeUint16(v uint16) error   { return s.ser.SerializeUint16(v) }
func (s modeSerializer) SerializeUint32(v uint32) error   { return s.ser.SerializeUint32(v) }
func (s modeSerializer) SerializeUint64(v uint64) error   { return s.ser.SerializeUint64(v) }
func (s modeSerializer) SerializeFloat32(v float32) error { return s.ser.SerializeFloat32(v) }
func (s modeSerializer) SerializeFloat64(v float64) error { return s.ser.SerializeFloat64(v) }
func (s modeSerializer) SerializeRune(v rune) error       { return s.ser.SerializeRune(v) }
func (s modeSerializer) SerializeString(v string) error   { return s.ser.SerializeString(v) }
func (s modeSerializer) SerializeBytes(v []byte) error    { return s.ser.SerializeBytes(v) }

func (s modeSerializer) SerializeNone() error { return s.ser.SerializeNone() }

func (s modeSerializer) SerializeSome(v Value) error {
	return s.ser.SerializeSome(s.mode.Value(v))
}

func (s modeSerializer) SerializeUnit() error { return s.ser.SerializeUnit() }

func (s modeSerializer) SerializeUnitStruct(name string) error {
	return s.ser.SerializeUnitStruct(name)
}

func (s modeSerializer) SerializeUnitVariant(name string, index uint32, variant string) error {
	return s.ser.SerializeUnitVariant(name, index, variant)
}

func (s modeSerializer) SerializeNewtypeStruct(name string, v Value) error {
	return s.ser.SerializeNewtypeStruct(name, s.mode.Value(v))
}

func (s modeSerializer) SerializeNewtypeVariant(name string, index uint32, variant string, v Value) error {
	return s.ser.SerializeNewtypeVariant(name, index, variant, s.mode.Value(v))
}

func (s modeSerializer) SerializeSeq(length int) (SeqEncoder, error) {
	enc, err := s.ser.SerializeSeq(length)
	if err != nil {
		return nil, err
	}
	return modeElementEncoder{mode: s.mode, enc: enc}, nil
}

func (s modeSerializer) SerializeTuple(length int) (TupleEncoder, error) {
	enc, err := s.ser.SerializeTuple(length)
	if err != nil {
		return nil, err
	}
	return modeElementEncoder{mode: s.mode, enc: enc}, nil
}

func (s modeSerializer) SerializeTupleStruct(name string, length int) (TupleStructEncoder, error) {
	enc, err := s.ser.SerializeTupleStruct(name, length)
	if err != nil {
		return nil, err
	}
	return modeTupleFieldEncoder{mode: s.mode, enc: enc}, nil
}

func (s modeSerializer) SerializeTupleVariant(name string, index uint32, variant string, length int) (TupleVariantEncoder, error) {
	enc, err := s.ser.SerializeTupleVariant(name, index, variant, length)
	if err != nil {
		return nil, err
	}
	return modeTupleFieldEncoder{mode: s.mode, enc: enc}, nil
}

func (s modeSerializer) SerializeMap(length int) (MapEncoder, error) {
	enc, err := s.ser.SerializeMap(length)
	if err != nil {
		return nil, err
	}
	return modeMapEncoder{mode: s.mode, enc: enc}, nil
}

func (s modeSerializer) SerializeStruct(name string, length int) (StructEncoder, error) {
	enc, err := s.ser.SerializeStruct(name, length)
	if err != nil {
		return nil, err
	}
	return modeStructFieldEncoder{mode: s.mode, enc: enc}, nil
}

func (s modeSerializer) SerializeStructVariant(name string, index uint32, variant string, length int) (StructVariantEncoder, error) {
	enc, err := s.ser.SerializeStructVariant(name, index, variant, length)
	if err != nil {
		return nil, err
	}
	return modeStructFieldEncoder{mode: s.mode, enc: enc}, nil
}

// CollectSeq re-tags elements inside the yield path, so a source is
// never drawn from earlier than the inner engine asks for it.
func (s modeSerializer) CollectSeq(length int, values iter.Seq[Value]) error {
	return s.ser.CollectSeq(length, func(yield func(Value) bool) {
		for v := range values {
			if !yield(s.mode.Value(v)) {
				return
			}
		}
	})
}

func (s modeSerializer) CollectMap(length int, entries iter.Seq2[Value, Value]) error {
	return s.ser.CollectMap(length, func(yield func(Value, Value) bool) {
		for k, v := range entries {
			if !yield(s.mode.Value(k), s.mode.Value(v)) {
				return
			}
		}
	})
}

func (s modeSerializer) CollectString(v fmt.Stringer) error { return s.ser.CollectString(v) }

// modeElementEncoder serves both SeqEncoder and TupleEncoder, which share
// a method set.
type modeElementEncoder struct {
	mode Mode
	enc  SeqEncoder
}

var (
	_ SeqEncoder   = modeElementEncoder{}
	_ TupleEncoder = modeElementEncoder{}
)

func (e modeElementEncoder) SerializeElement(v Value) error {
	return e.enc.SerializeElement(e.mode.Value(v))
}

func (e modeElementEncoder) End() error { return e.enc.End() }

// modeTupleFieldEncoder serves TupleStructEncoder and TupleVariantEncoder.
type modeTupleFieldEncoder struct {
	mode Mode
	enc  TupleStructEncoder
}

var (
	_ TupleStructEncoder  = modeTupleFieldEncoder{}
	_ TupleVariantEncoder = modeTupleFieldEncoder{}
)

func (e modeTupleFieldEncoder) SerializeField(v Value) error {
	return e.enc.SerializeField(e.mode.Value(v))
}

func (e modeTupleFieldEncoder) End() error { return e.enc.End() }

type modeMapEncoder struct {
	mode Mode
	enc  MapEncoder
}

var _ MapEncoder = modeMapEncoder{}

func (e modeMapEncoder) SerializeKey(k Value) error {
	return e.enc.SerializeKey(e.mode.Value(k))
}

func (e modeMapEncoder) SerializeValue(v Value) error {
	return e.enc.SerializeValue(e.mode.Value(v))
}

func (e modeMapEncoder) SerializeEntry(k, v Value) error {
	return e.enc.SerializeEntry(e.mode.Value(k), e.mode.Value(v))
}

func (e modeMapEncoder) End() error { return e.enc.End() }

// modeStructFieldEncoder serves StructEncoder and StructVariantEncoder.
type modeStructFieldEncoder struct {
	mode Mode
	enc  StructEncoder
}

var (
	_ StructEncoder        = modeStructFieldEncoder{}
	_ StructVariantEncoder = modeStructFieldEncoder{}
)

func (e modeStructFieldEncoder) SerializeField(name string, v Value) error {
	return e.enc.SerializeField(name, e.mode.Value(v))
}

// SkipField carries no value, so there is nothing to re-tag.
func (e modeStructFieldEncoder) SkipField(name string) error { return e.enc.SkipField(name) }

func (e modeStructFieldEncoder) End() error { return e.enc.End() }
