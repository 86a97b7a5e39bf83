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

// Package sermodetest provides in-memory engines for exercising the
// sermode capability surfaces.
//
// [Serializer] records every operation invoked on it, in order, as a
// flat op log; [Deserializer] replays a scripted [Token] stream through a
// caller-supplied visitor and records the dispatches it served. Both can
// fail on demand at a named operation. Comparing op logs from a bare
// engine and a mode-tagged one proves the overlay forwards operations
// unchanged; values and seeds built with [Observe], [ValueSeed], and
// friends capture the IsHumanReadable answer at each hand-off point.
package sermodetest

import "fmt"

// A Kind discriminates Token variants.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindUint
	KindFloat
	KindRune
	KindString
	KindBytes
	KindNone
	KindSome
	KindUnit
	KindUnitStruct
	KindNewtypeStruct
	KindSeq
	KindSeqEnd
	KindTuple
	KindTupleEnd
	KindMap
	KindMapEnd
	KindStruct
	KindStructEnd
	KindEnum
	KindUnitVariant
	KindNewtypeVariant
	KindTupleVariant
	KindStructVariant
)

var kindNames = map[Kind]string{
	KindBool:           "Bool",
	KindInt:            "Int",
	KindUint:           "Uint",
	KindFloat:          "Float",
	KindRune:           "Rune",
	KindString:         "String",
	KindBytes:          "Bytes",
	KindNone:           "None",
	KindSome:           "Some",
	KindUnit:           "Unit",
	KindUnitStruct:     "UnitStruct",
	KindNewtypeStruct:  "NewtypeStruct",
	KindSeq:            "Seq",
	KindSeqEnd:         "SeqEnd",
	KindTuple:          "Tuple",
	KindTupleEnd:       "TupleEnd",
	KindMap:            "Map",
	KindMapEnd:         "MapEnd",
	KindStruct:         "Struct",
	KindStructEnd:      "StructEnd",
	KindEnum:           "Enum",
	KindUnitVariant:    "UnitVariant",
	KindNewtypeVariant: "NewtypeVariant",
	KindTupleVariant:   "TupleVariant",
	KindStructVariant:  "StructVariant",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Token is one step of a scripted input for [Deserializer]. Aggregate
// tokens open a scope that runs until the matching end token; variant
// tokens follow an Enum token and describe the shape of the variant's
// payload.
type Token struct {
	Kind    Kind
	Bool    bool
	Int     int64
	Uint    uint64
	Float   float64
	Rune    rune
	Str     string
	Bytes   []byte
	Len     int // element/entry count hint; negative when unknown
	Name    string
	Variant string
}

func BoolToken(v bool) Token      { return Token{Kind: KindBool, Bool: v} }
func IntToken(v int64) Token      { return Token{Kind: KindInt, Int: v} }
func UintToken(v uint64) Token    { return Token{Kind: KindUint, Uint: v} }
func FloatToken(v float64) Token  { return Token{Kind: KindFloat, Float: v} }
func RuneToken(v rune) Token      { return Token{Kind: KindRune, Rune: v} }
func StringToken(v string) Token  { return Token{Kind: KindString, Str: v} }
func BytesToken(v []byte) Token   { return Token{Kind: KindBytes, Bytes: v} }
func NoneToken() Token            { return Token{Kind: KindNone} }
func SomeToken() Token            { return Token{Kind: KindSome} }
func UnitToken() Token            { return Token{Kind: KindUnit} }
func UnitStructToken(name string) Token {
	return Token{Kind: KindUnitStruct, Name: name}
}
func NewtypeStructToken(name string) Token {
	return Token{Kind: KindNewtypeStruct, Name: name}
}
func SeqToken(length int) Token   { return Token{Kind: KindSeq, Len: length} }
func SeqEndToken() Token          { return Token{Kind: KindSeqEnd} }
func TupleToken(length int) Token { return Token{Kind: KindTuple, Len: length} }
func TupleEndToken() Token        { return Token{Kind: KindTupleEnd} }
func MapToken(length int) Token   { return Token{Kind: KindMap, Len: length} }
func MapEndToken() Token          { return Token{Kind: KindMapEnd} }
func StructToken(name string, length int) Token {
	return Token{Kind: KindStruct, Name: name, Len: length}
}
func StructEndToken() Token      { return Token{Kind: KindStructEnd} }
func EnumToken(name string) Token {
	return Token{Kind: KindEnum, Name: name}
}
func UnitVariantToken(variant string) Token {
	return Token{Kind: KindUnitVariant, Variant: variant}
}
func NewtypeVariantToken(variant string) Token {
	return Token{Kind: KindNewtypeVariant, Variant: variant}
}
func TupleVariantToken(variant string, length int) Token {
	return Token{Kind: KindTupleVariant, Variant: variant, Len: length}
}
func StructVariantToken(variant string, length int) Token {
	return Token{Kind: KindStructVariant, Variant: variant, Len: length}
}
