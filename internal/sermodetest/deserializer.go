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
	"strings"

	"sermode.dev/sermode"
)

// Deserializer is a read-side engine that replays a scripted token
// stream. It is self-describing: every dispatch method consumes the next
// token and calls whichever Visit method matches it, so the requested
// shape never has to agree with the script. Like Serializer, it records
// every operation invoked on it.
type Deserializer struct {
	// Human is the answer the bare engine gives to IsHumanReadable.
	Human bool

	// FailOn names an operation that should fail with Err when reached.
	FailOn string
	Err    error

	tokens  []Token
	pos     int
	variant *Token // variant token consumed by identifier dispatch, pending payload
	ops     []string
}

var _ sermode.Deserializer = (*Deserializer)(nil)

// NewDeserializer returns an engine that will replay tokens in order.
func NewDeserializer(human bool, tokens ...Token) *Deserializer {
	return &Deserializer{Human: human, tokens: tokens}
}

// Ops returns a copy of the recorded op log.
func (d *Deserializer) Ops() []string {
	return append([]string(nil), d.ops...)
}

// Remaining reports how many scripted tokens were never consumed.
func (d *Deserializer) Remaining() int { return len(d.tokens) - d.pos }

func (d *Deserializer) record(name string, args ...any) error {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprint(arg)
	}
	d.ops = append(d.ops, name+"("+strings.Join(parts, ",")+")")
	if name == d.FailOn {
		if d.Err != nil {
			return d.Err
		}
		return sermode.NewError("scripted failure at " + name)
	}
	return nil
}

func (d *Deserializer) next() (Token, error) {
	if d.pos >= len(d.tokens) {
		return Token{}, sermode.NewError("unexpected end of tokens")
	}
	tok := d.tokens[d.pos]
	d.pos++
	return tok, nil
}

func (d *Deserializer) peek() (Kind, bool) {
	if d.pos >= len(d.tokens) {
		return 0, false
	}
	return d.tokens[d.pos].Kind, true
}

func (d *Deserializer) IsHumanReadable() bool { return d.Human }

// dispatch consumes one token and visits it.
func (d *Deserializer) dispatch(v sermode.Visitor) (any, error) {
	tok, err := d.next()
	if err != nil {
		return nil, err
	}
	switch tok.Kind {
	case KindBool:
		return v.VisitBool(tok.Bool)
	case KindInt:
		return v.VisitInt(tok.Int)
	case KindUint:
		return v.VisitUint(tok.Uint)
	case KindFloat:
		return v.VisitFloat(tok.Float)
	case KindRune:
		return v.VisitRune(tok.Rune)
	case KindString:
		return v.VisitString(tok.Str)
	case KindBytes:
		return v.VisitBytes(tok.Bytes)
	case KindNone:
		return v.VisitNone()
	case KindSome:
		return v.VisitSome(d)
	case KindUnit, KindUnitStruct:
		return v.VisitUnit()
	case KindNewtypeStruct:
		return v.VisitNewtypeStruct(d)
	case KindSeq:
		return d.visitSeq(v, tok.Len, KindSeqEnd)
	case KindTuple:
		return d.visitSeq(v, tok.Len, KindTupleEnd)
	case KindMap:
		return d.visitMap(v, tok.Len, KindMapEnd)
	case KindStruct:
		return d.visitMap(v, tok.Len, KindStructEnd)
	case KindEnum:
		return v.VisitEnum(enumReader{d})
	case KindUnitVariant, KindNewtypeVariant, KindTupleVariant, KindStructVariant:
		// A variant token reached outside identifier position: treat it
		// as the identifier, stashing it for the variant accessor.
		d.variant = &tok
		return v.VisitString(tok.Variant)
	default:
		return nil, sermode.Errorf("cannot dispatch token %s", tok.Kind)
	}
}

func (d *Deserializer) visitSeq(v sermode.Visitor, length int, end Kind) (any, error) {
	result, err := v.VisitSeq(&seqReader{d: d, end: end, remaining: length})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (d *Deserializer) visitMap(v sermode.Visitor, length int, end Kind) (any, error) {
	result, err := v.VisitMap(&mapReader{d: d, end: end, remaining: length})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (d *Deserializer) DeserializeAny(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeAny"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeBool(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeBool"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeInt8(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeInt8"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeInt16(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeInt16"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeInt32(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeInt32"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeInt64(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeInt64"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeUint8(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeUint8"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeUint16(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeUint16"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeUint32(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeUint32"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeUint64(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeUint64"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeFloat32(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeFloat32"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeFloat64(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeFloat64"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeRune(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeRune"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeString(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeString"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeBytes(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeBytes"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeOption(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeOption"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeUnit(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeUnit"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeUnitStruct(name string, v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeUnitStruct", name); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeNewtypeStruct(name string, v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeNewtypeStruct", name); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeSeq(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeSeq"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeTuple(length int, v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeTuple", length); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeTupleStruct(name string, length int, v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeTupleStruct", name, length); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeMap(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeMap"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeStruct(name string, fields []string, v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeStruct", name, fields); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeEnum(name string, variants []string, v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeEnum", name, variants); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeIdentifier(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeIdentifier"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

func (d *Deserializer) DeserializeIgnoredAny(v sermode.Visitor) (any, error) {
	if err := d.record("DeserializeIgnoredAny"); err != nil {
		return nil, err
	}
	return d.dispatch(v)
}

type seqReader struct {
	d         *Deserializer
	end       Kind
	remaining int
}

var _ sermode.SeqAccess = (*seqReader)(nil)

func (r *seqReader) NextElementSeed(seed sermode.Seed) (any, bool, error) {
	if err := r.d.record("NextElementSeed"); err != nil {
		return nil, false, err
	}
	if kind, ok := r.d.peek(); ok && kind == r.end {
		r.d.pos++
		return nil, false, nil
	}
	r.remaining--
	v, err := seed.Deserialize(r.d)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (r *seqReader) SizeHint() int { return r.remaining }

type mapReader struct {
	d         *Deserializer
	end       Kind
	remaining int
}

var _ sermode.MapAccess = (*mapReader)(nil)

func (r *mapReader) NextKeySeed(seed sermode.Seed) (any, bool, error) {
	if err := r.d.record("NextKeySeed"); err != nil {
		return nil, false, err
	}
	if kind, ok := r.d.peek(); ok && kind == r.end {
		r.d.pos++
		return nil, false, nil
	}
	r.remaining--
	k, err := seed.Deserialize(r.d)
	if err != nil {
		return nil, false, err
	}
	return k, true, nil
}

func (r *mapReader) NextValueSeed(seed sermode.Seed) (any, error) {
	if err := r.d.record("NextValueSeed"); err != nil {
		return nil, err
	}
	return seed.Deserialize(r.d)
}

func (r *mapReader) NextEntrySeed(key, value sermode.Seed) (any, any, bool, error) {
	if err := r.d.record("NextEntrySeed"); err != nil {
		return nil, nil, false, err
	}
	if kind, ok := r.d.peek(); ok && kind == r.end {
		r.d.pos++
		return nil, nil, false, nil
	}
	r.remaining--
	k, err := key.Deserialize(r.d)
	if err != nil {
		return nil, nil, false, err
	}
	v, err := value.Deserialize(r.d)
	if err != nil {
		return nil, nil, false, err
	}
	return k, v, true, nil
}

func (r *mapReader) SizeHint() int { return r.remaining }

type enumReader struct {
	d *Deserializer
}

var _ sermode.EnumAccess = enumReader{}

func (r enumReader) VariantSeed(seed sermode.Seed) (any, sermode.VariantAccess, error) {
	if err := r.d.record("VariantSeed"); err != nil {
		return nil, nil, err
	}
	tag, err := seed.Deserialize(r.d)
	if err != nil {
		return nil, nil, err
	}
	if r.d.variant == nil {
		return nil, nil, sermode.NewError("variant seed did not reach a variant token")
	}
	return tag, variantReader{d: r.d}, nil
}

type variantReader struct {
	d *Deserializer
}

var _ sermode.VariantAccess = variantReader{}

func (r variantReader) take(want Kind) (Token, error) {
	tok := r.d.variant
	r.d.variant = nil
	if tok == nil {
		return Token{}, sermode.NewError("no pending variant")
	}
	if tok.Kind != want {
		return Token{}, sermode.Errorf("variant is %s, not %s", tok.Kind, want)
	}
	return *tok, nil
}

func (r variantReader) UnitVariant() error {
	if err := r.d.record("UnitVariant"); err != nil {
		return err
	}
	_, err := r.take(KindUnitVariant)
	return err
}

func (r variantReader) NewtypeVariantSeed(seed sermode.Seed) (any, error) {
	if err := r.d.record("NewtypeVariantSeed"); err != nil {
		return nil, err
	}
	if _, err := r.take(KindNewtypeVariant); err != nil {
		return nil, err
	}
	return seed.Deserialize(r.d)
}

func (r variantReader) TupleVariant(length int, v sermode.Visitor) (any, error) {
	if err := r.d.record("TupleVariant", length); err != nil {
		return nil, err
	}
	tok, err := r.take(KindTupleVariant)
	if err != nil {
		return nil, err
	}
	return v.VisitSeq(&seqReader{d: r.d, end: KindTupleEnd, remaining: tok.Len})
}

func (r variantReader) StructVariant(fields []string, v sermode.Visitor) (any, error) {
	if err := r.d.record("StructVariant", fields); err != nil {
		return nil, err
	}
	tok, err := r.take(KindStructVariant)
	if err != nil {
		return nil, err
	}
	return v.VisitMap(&mapReader{d: r.d, end: KindStructEnd, remaining: tok.Len})
}
