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

package sermode_test

import (
	"testing"

	. "sermode.dev/sermode"
	"sermode.dev/sermode/internal/assert"
	"sermode.dev/sermode/internal/sermodetest"
)

func TestDeserializerModeFidelity(t *testing.T) {
	t.Parallel()
	for _, mode := range []Mode{Readable, Compact} {
		engine := sermodetest.NewDeserializer(!mode.HumanReadable(), sermodetest.IntToken(7))
		var flags []bool
		got, err := mode.Seed(sermodetest.ValueSeed{Flags: &flags}).Deserialize(engine)
		assert.Nil(t, err)
		assert.Equal(t, got, any(int64(7)))
		assert.Equal(t, flags, []bool{mode.HumanReadable()})
		assert.Equal(t, engine.Remaining(), 0)
	}
}

func TestDeserializerModePropagation(t *testing.T) {
	t.Parallel()
	shapes := []struct {
		name   string
		tokens []sermodetest.Token
		want   any
		// observations is how many times a deserializer crosses a
		// hand-off point that the generic seed records.
		observations int
	}{
		{
			name:         "option present",
			tokens:       []sermodetest.Token{sermodetest.SomeToken(), sermodetest.IntToken(7)},
			want:         int64(7),
			observations: 3,
		},
		{
			name: "newtype struct",
			tokens: []sermodetest.Token{
				sermodetest.NewtypeStructToken("N"), sermodetest.IntToken(7),
			},
			want:         int64(7),
			observations: 3,
		},
		{
			name: "seq",
			tokens: []sermodetest.Token{
				sermodetest.SeqToken(2),
				sermodetest.IntToken(1),
				sermodetest.IntToken(2),
				sermodetest.SeqEndToken(),
			},
			want:         []any{int64(1), int64(2)},
			observations: 3,
		},
		{
			name: "tuple",
			tokens: []sermodetest.Token{
				sermodetest.TupleToken(2),
				sermodetest.IntToken(1),
				sermodetest.StringToken("x"),
				sermodetest.TupleEndToken(),
			},
			want:         []any{int64(1), "x"},
			observations: 3,
		},
		{
			name: "map",
			tokens: []sermodetest.Token{
				sermodetest.MapToken(1),
				sermodetest.StringToken("k"),
				sermodetest.IntToken(1),
				sermodetest.MapEndToken(),
			},
			want:         map[any]any{"k": int64(1)},
			observations: 3,
		},
		{
			name: "struct",
			tokens: []sermodetest.Token{
				sermodetest.StructToken("X", 2),
				sermodetest.StringToken("a"),
				sermodetest.IntToken(1),
				sermodetest.StringToken("b"),
				sermodetest.IntToken(2),
				sermodetest.StructEndToken(),
			},
			want:         map[any]any{"a": int64(1), "b": int64(2)},
			observations: 5,
		},
		{
			name: "deep nesting",
			tokens: []sermodetest.Token{
				sermodetest.StructToken("X", 1),
				sermodetest.StringToken("a"),
				sermodetest.SeqToken(1),
				sermodetest.SomeToken(),
				sermodetest.IntToken(9),
				sermodetest.SeqEndToken(),
				sermodetest.StructEndToken(),
			},
			want:         map[any]any{"a": []any{int64(9)}},
			observations: 6,
		},
	}
	for _, shape := range shapes {
		t.Run(shape.name, func(t *testing.T) {
			t.Parallel()
			for _, mode := range []Mode{Readable, Compact} {
				engine := sermodetest.NewDeserializer(!mode.HumanReadable(), shape.tokens...)
				var flags []bool
				got, err := mode.Seed(sermodetest.ValueSeed{Flags: &flags}).Deserialize(engine)
				assert.Nil(t, err)
				assert.Equal(t, got, shape.want)
				assert.Equal(t, len(flags), shape.observations, assert.Sprintf("%s mode", mode))
				for _, flag := range flags {
					assert.Equal(t, flag, mode.HumanReadable())
				}
				assert.Equal(t, engine.Remaining(), 0)
			}
		})
	}
}

func TestDeserializerEnumPropagation(t *testing.T) {
	t.Parallel()
	shapes := map[string]sermodetest.VariantShape{
		"A": sermodetest.UnitShape,
		"B": sermodetest.NewtypeShape,
		"C": sermodetest.TupleShape,
		"D": sermodetest.StructShape,
	}
	cases := []struct {
		name         string
		tokens       []sermodetest.Token
		want         sermodetest.Variant
		observations int
	}{
		{
			name: "unit variant",
			tokens: []sermodetest.Token{
				sermodetest.EnumToken("E"), sermodetest.UnitVariantToken("A"),
			},
			want:         sermodetest.Variant{Name: "A"},
			observations: 2,
		},
		{
			name: "newtype variant",
			tokens: []sermodetest.Token{
				sermodetest.EnumToken("E"),
				sermodetest.NewtypeVariantToken("B"),
				sermodetest.IntToken(7),
			},
			want:         sermodetest.Variant{Name: "B", Payload: int64(7)},
			observations: 3,
		},
		{
			name: "tuple variant",
			tokens: []sermodetest.Token{
				sermodetest.EnumToken("E"),
				sermodetest.TupleVariantToken("C", 2),
				sermodetest.IntToken(1),
				sermodetest.IntToken(2),
				sermodetest.TupleEndToken(),
			},
			want:         sermodetest.Variant{Name: "C", Payload: []any{int64(1), int64(2)}},
			observations: 4,
		},
		{
			name: "struct variant",
			tokens: []sermodetest.Token{
				sermodetest.EnumToken("E"),
				sermodetest.StructVariantToken("D", 1),
				sermodetest.StringToken("f"),
				sermodetest.IntToken(1),
				sermodetest.StructEndToken(),
			},
			want:         sermodetest.Variant{Name: "D", Payload: map[any]any{"f": int64(1)}},
			observations: 4,
		},
	}
	for _, testCase := range cases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			for _, mode := range []Mode{Readable, Compact} {
				engine := sermodetest.NewDeserializer(!mode.HumanReadable(), testCase.tokens...)
				var flags []bool
				seed := sermodetest.EnumSeed{
					Name:     "E",
					Variants: shapes,
					Arity:    2,
					Fields:   []string{"f"},
					Flags:    &flags,
				}
				got, err := mode.Seed(seed).Deserialize(engine)
				assert.Nil(t, err)
				assert.Equal(t, got, any(testCase.want))
				assert.Equal(t, len(flags), testCase.observations, assert.Sprintf("%s mode", mode))
				for _, flag := range flags {
					assert.Equal(t, flag, mode.HumanReadable())
				}
				assert.Equal(t, engine.Remaining(), 0)
			}
		})
	}
}

func TestDeserializerPassThroughPurity(t *testing.T) {
	t.Parallel()
	script := func() []sermodetest.Token {
		return []sermodetest.Token{
			sermodetest.StructToken("X", 2),
			sermodetest.StringToken("a"),
			sermodetest.SeqToken(1),
			sermodetest.IntToken(1),
			sermodetest.SeqEndToken(),
			sermodetest.StringToken("b"),
			sermodetest.SomeToken(),
			sermodetest.IntToken(2),
			sermodetest.StructEndToken(),
		}
	}

	bare := sermodetest.NewDeserializer(false, script()...)
	bareResult, err := sermodetest.ValueSeed{}.Deserialize(bare)
	assert.Nil(t, err)

	tagged := sermodetest.NewDeserializer(false, script()...)
	taggedResult, err := Readable.Seed(sermodetest.ValueSeed{}).Deserialize(tagged)
	assert.Nil(t, err)

	assert.Equal(t, taggedResult, bareResult)
	assert.Equal(t, tagged.Ops(), bare.Ops())
}

func TestDeserializerErrorTransparency(t *testing.T) {
	t.Parallel()
	boom := NewError("truncated input")
	cases := []struct {
		failOn string
		tokens []sermodetest.Token
	}{
		{"DeserializeAny", []sermodetest.Token{sermodetest.IntToken(1)}},
		{"NextElementSeed", []sermodetest.Token{
			sermodetest.SeqToken(1), sermodetest.IntToken(1), sermodetest.SeqEndToken(),
		}},
		{"NextValueSeed", []sermodetest.Token{
			sermodetest.MapToken(1),
			sermodetest.StringToken("k"),
			sermodetest.IntToken(1),
			sermodetest.MapEndToken(),
		}},
	}
	for _, testCase := range cases {
		engine := sermodetest.NewDeserializer(false, testCase.tokens...)
		engine.FailOn = testCase.failOn
		engine.Err = boom
		_, err := Readable.Seed(sermodetest.ValueSeed{}).Deserialize(engine)
		assert.NotNil(t, err, assert.Sprintf("fail on %s", testCase.failOn))
		assert.Equal(t, err.Error(), "truncated input")
		got, ok := err.(*Error)
		assert.True(t, ok)
		assert.True(t, got == boom)
	}
}

func TestDeserializerInPlaceSeed(t *testing.T) {
	t.Parallel()
	var flags []bool
	slot := &sermodetest.IntSlot{Flags: &flags}
	tagged := Readable.Seed(slot)

	inPlace, ok := tagged.(InPlaceSeed)
	assert.True(t, ok)
	engine := sermodetest.NewDeserializer(false, sermodetest.IntToken(42))
	assert.Nil(t, inPlace.DeserializeInPlace(engine))
	assert.Equal(t, slot.N, int64(42))
	assert.Equal(t, flags, []bool{true})

	// A seed without in-place support must not gain it from the tag.
	_, ok = Readable.Seed(sermodetest.ValueSeed{}).(InPlaceSeed)
	assert.False(t, ok)
}

type sizeHintVisitor struct {
	sermodetest.BaseVisitor
	hint *int
}

func (v sizeHintVisitor) VisitSeq(a SeqAccess) (any, error) {
	*v.hint = a.SizeHint()
	for {
		_, ok, err := a.NextElementSeed(sermodetest.ValueSeed{})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
	}
}

func TestDeserializerSizeHintPassesThrough(t *testing.T) {
	t.Parallel()
	engine := sermodetest.NewDeserializer(false,
		sermodetest.SeqToken(3),
		sermodetest.IntToken(1),
		sermodetest.IntToken(2),
		sermodetest.IntToken(3),
		sermodetest.SeqEndToken(),
	)
	var hint int
	_, err := Readable.Deserializer(engine).DeserializeSeq(sizeHintVisitor{hint: &hint})
	assert.Nil(t, err)
	assert.Equal(t, hint, 3)
}

func TestDeserializerScenarioReadableOption(t *testing.T) {
	t.Parallel()
	engine := sermodetest.NewDeserializer(false,
		sermodetest.SomeToken(),
		sermodetest.IntToken(5),
	)
	var flags []bool
	got, err := Readable.Seed(sermodetest.ValueSeed{Flags: &flags}).Deserialize(engine)
	assert.Nil(t, err)
	assert.Equal(t, got, any(int64(5)))
	// One observation entering the seed, one accepting the nested
	// deserializer for the payload, one as the payload reads its scalar.
	assert.Equal(t, flags, []bool{true, true, true})
	assert.Equal(t, engine.Ops(), []string{"DeserializeAny()", "DeserializeAny()"})
}
