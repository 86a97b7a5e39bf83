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
	"iter"

	"sermode.dev/sermode"
)

// valueFunc adapts a function to sermode.Value.
type valueFunc func(s sermode.Serializer) error

func (f valueFunc) Serialize(s sermode.Serializer) error { return f(s) }

// Observe wraps v so that serializing it first appends the engine's
// IsHumanReadable answer to flags. Nest it anywhere inside a composite
// value to capture the mode visible at that point of the traversal.
func Observe(v sermode.Value, flags *[]bool) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		*flags = append(*flags, s.IsHumanReadable())
		return v.Serialize(s)
	})
}

func Bool(v bool) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error { return s.SerializeBool(v) })
}

func Int64(v int64) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error { return s.SerializeInt64(v) })
}

func Uint64(v uint64) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error { return s.SerializeUint64(v) })
}

func Float64(v float64) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error { return s.SerializeFloat64(v) })
}

func Str(v string) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error { return s.SerializeString(v) })
}

func Bytes(v []byte) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error { return s.SerializeBytes(v) })
}

func None() sermode.Value {
	return valueFunc(func(s sermode.Serializer) error { return s.SerializeNone() })
}

func Some(v sermode.Value) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error { return s.SerializeSome(v) })
}

func Unit() sermode.Value {
	return valueFunc(func(s sermode.Serializer) error { return s.SerializeUnit() })
}

func UnitStruct(name string) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error { return s.SerializeUnitStruct(name) })
}

func UnitVariant(name string, index uint32, variant string) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		return s.SerializeUnitVariant(name, index, variant)
	})
}

func NewtypeStruct(name string, v sermode.Value) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		return s.SerializeNewtypeStruct(name, v)
	})
}

func NewtypeVariant(name string, index uint32, variant string, v sermode.Value) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		return s.SerializeNewtypeVariant(name, index, variant, v)
	})
}

func Seq(elements ...sermode.Value) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		enc, err := s.SerializeSeq(len(elements))
		if err != nil {
			return err
		}
		for _, v := range elements {
			if err := enc.SerializeElement(v); err != nil {
				return err
			}
		}
		return enc.End()
	})
}

func Tuple(elements ...sermode.Value) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		enc, err := s.SerializeTuple(len(elements))
		if err != nil {
			return err
		}
		for _, v := range elements {
			if err := enc.SerializeElement(v); err != nil {
				return err
			}
		}
		return enc.End()
	})
}

func TupleStruct(name string, fields ...sermode.Value) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		enc, err := s.SerializeTupleStruct(name, len(fields))
		if err != nil {
			return err
		}
		for _, v := range fields {
			if err := enc.SerializeField(v); err != nil {
				return err
			}
		}
		return enc.End()
	})
}

func TupleVariant(name string, index uint32, variant string, fields ...sermode.Value) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		enc, err := s.SerializeTupleVariant(name, index, variant, len(fields))
		if err != nil {
			return err
		}
		for _, v := range fields {
			if err := enc.SerializeField(v); err != nil {
				return err
			}
		}
		return enc.End()
	})
}

// An Entry is one key/value pair of a Map value.
type Entry struct {
	Key   sermode.Value
	Value sermode.Value
}

// Map serializes entries with paired SerializeEntry calls.
func Map(entries ...Entry) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		enc, err := s.SerializeMap(len(entries))
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := enc.SerializeEntry(entry.Key, entry.Value); err != nil {
				return err
			}
		}
		return enc.End()
	})
}

// MapSplit serializes entries with alternating SerializeKey and
// SerializeValue calls.
func MapSplit(entries ...Entry) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		enc, err := s.SerializeMap(len(entries))
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := enc.SerializeKey(entry.Key); err != nil {
				return err
			}
			if err := enc.SerializeValue(entry.Value); err != nil {
				return err
			}
		}
		return enc.End()
	})
}

// A Field is one named field of a Struct or StructVariant value. A nil
// Value marks the field as skipped.
type Field struct {
	Name  string
	Value sermode.Value
}

func Struct(name string, fields ...Field) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		enc, err := s.SerializeStruct(name, len(fields))
		if err != nil {
			return err
		}
		return writeFields(enc, fields)
	})
}

func StructVariant(name string, index uint32, variant string, fields ...Field) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		enc, err := s.SerializeStructVariant(name, index, variant, len(fields))
		if err != nil {
			return err
		}
		return writeFields(enc, fields)
	})
}

func writeFields(enc sermode.StructEncoder, fields []Field) error {
	for _, field := range fields {
		if field.Value == nil {
			if err := enc.SkipField(field.Name); err != nil {
				return err
			}
			continue
		}
		if err := enc.SerializeField(field.Name, field.Value); err != nil {
			return err
		}
	}
	return enc.End()
}

// CollectSeq serializes through the engine's lazy sequence collection.
func CollectSeq(length int, values iter.Seq[sermode.Value]) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		return s.CollectSeq(length, values)
	})
}

// CollectMap serializes through the engine's lazy map collection.
func CollectMap(length int, entries iter.Seq2[sermode.Value, sermode.Value]) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		return s.CollectMap(length, entries)
	})
}

// Stringer is a fmt.Stringer for CollectString tests.
type Stringer string

func (s Stringer) String() string { return string(s) }

// CollectString serializes through the engine's string collection.
func CollectString(v Stringer) sermode.Value {
	return valueFunc(func(s sermode.Serializer) error {
		return s.CollectString(v)
	})
}
