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

func TestSerializerModeFidelity(t *testing.T) {
	t.Parallel()
	for _, mode := range []Mode{Readable, Compact} {
		// The inner engine claims the opposite of the tag, so the test
		// fails if the overlay ever leaks the engine's own answer.
		engine := &sermodetest.Serializer{Human: !mode.HumanReadable()}
		var flags []bool
		err := mode.Value(sermodetest.Observe(sermodetest.Int64(7), &flags)).Serialize(engine)
		assert.Nil(t, err)
		assert.Equal(t, flags, []bool{mode.HumanReadable()})
	}
}

func TestSerializerModePropagation(t *testing.T) {
	t.Parallel()
	shapes := []struct {
		name string
		// value builds a payload with probes at its leaves and returns
		// the number of flag observations expected.
		value func(flags *[]bool) (Value, int)
	}{
		{"some", func(flags *[]bool) (Value, int) {
			return sermodetest.Some(sermodetest.Observe(sermodetest.Int64(1), flags)), 1
		}},
		{"newtype struct", func(flags *[]bool) (Value, int) {
			return sermodetest.NewtypeStruct("N", sermodetest.Observe(sermodetest.Int64(1), flags)), 1
		}},
		{"newtype variant", func(flags *[]bool) (Value, int) {
			return sermodetest.NewtypeVariant("E", 0, "A", sermodetest.Observe(sermodetest.Int64(1), flags)), 1
		}},
		{"seq", func(flags *[]bool) (Value, int) {
			return sermodetest.Seq(
				sermodetest.Observe(sermodetest.Int64(1), flags),
				sermodetest.Observe(sermodetest.Int64(2), flags),
			), 2
		}},
		{"tuple", func(flags *[]bool) (Value, int) {
			return sermodetest.Tuple(
				sermodetest.Observe(sermodetest.Int64(1), flags),
				sermodetest.Observe(sermodetest.Str("x"), flags),
			), 2
		}},
		{"tuple struct", func(flags *[]bool) (Value, int) {
			return sermodetest.TupleStruct("T",
				sermodetest.Observe(sermodetest.Int64(1), flags),
			), 1
		}},
		{"tuple variant", func(flags *[]bool) (Value, int) {
			return sermodetest.TupleVariant("E", 1, "B",
				sermodetest.Observe(sermodetest.Int64(1), flags),
				sermodetest.Observe(sermodetest.Int64(2), flags),
			), 2
		}},
		{"map entries", func(flags *[]bool) (Value, int) {
			return sermodetest.Map(sermodetest.Entry{
				Key:   sermodetest.Observe(sermodetest.Str("k"), flags),
				Value: sermodetest.Observe(sermodetest.Int64(1), flags),
			}), 2
		}},
		{"map split keys and values", func(flags *[]bool) (Value, int) {
			return sermodetest.MapSplit(sermodetest.Entry{
				Key:   sermodetest.Observe(sermodetest.Str("k"), flags),
				Value: sermodetest.Observe(sermodetest.Int64(1), flags),
			}), 2
		}},
		{"struct", func(flags *[]bool) (Value, int) {
			return sermodetest.Struct("X",
				sermodetest.Field{Name: "a", Value: sermodetest.Observe(sermodetest.Int64(1), flags)},
				sermodetest.Field{Name: "skipped"},
				sermodetest.Field{Name: "b", Value: sermodetest.Observe(sermodetest.Int64(2), flags)},
			), 2
		}},
		{"struct variant", func(flags *[]bool) (Value, int) {
			return sermodetest.StructVariant("E", 2, "C",
				sermodetest.Field{Name: "a", Value: sermodetest.Observe(sermodetest.Int64(1), flags)},
			), 1
		}},
		{"deep nesting", func(flags *[]bool) (Value, int) {
			leaf := sermodetest.Observe(sermodetest.Int64(9), flags)
			return sermodetest.Struct("X",
				sermodetest.Field{Name: "a", Value: sermodetest.Map(sermodetest.Entry{
					Key:   sermodetest.Str("k"),
					Value: sermodetest.Seq(sermodetest.Some(leaf)),
				})},
			), 1
		}},
	}
	for _, shape := range shapes {
		t.Run(shape.name, func(t *testing.T) {
			t.Parallel()
			for _, mode := range []Mode{Readable, Compact} {
				engine := &sermodetest.Serializer{Human: !mode.HumanReadable()}
				var flags []bool
				value, want := shape.value(&flags)
				err := mode.Value(value).Serialize(engine)
				assert.Nil(t, err)
				assert.Equal(t, len(flags), want, assert.Sprintf("%s mode", mode))
				for _, flag := range flags {
					assert.Equal(t, flag, mode.HumanReadable())
				}
			}
		})
	}
}

func TestSerializerPassThroughPurity(t *testing.T) {
	t.Parallel()
	composite := func() Value {
		return sermodetest.Struct("X",
			sermodetest.Field{Name: "id", Value: sermodetest.Uint64(12)},
			sermodetest.Field{Name: "tags", Value: sermodetest.Seq(
				sermodetest.Str("alpha"),
				sermodetest.Str("beta"),
			)},
			sermodetest.Field{Name: "legacy"},
			sermodetest.Field{Name: "extra", Value: sermodetest.Map(sermodetest.Entry{
				Key:   sermodetest.Str("k"),
				Value: sermodetest.Some(sermodetest.Float64(1.5)),
			})},
		)
	}

	bare := &sermodetest.Serializer{Human: true}
	assert.Nil(t, composite().Serialize(bare))

	tagged := &sermodetest.Serializer{Human: true}
	assert.Nil(t, Compact.Value(composite()).Serialize(tagged))

	assert.Equal(t, tagged.Ops(), bare.Ops())
}

func TestSerializerErrorTransparency(t *testing.T) {
	t.Parallel()
	boom := NewError("explosion in the engine room")
	failures := []string{
		"SerializeStruct",
		"SerializeField",
		"SerializeInt64",
		"End",
	}
	for _, op := range failures {
		engine := &sermodetest.Serializer{FailOn: op, Err: boom}
		err := Readable.Value(sermodetest.Struct("X",
			sermodetest.Field{Name: "a", Value: sermodetest.Int64(1)},
		)).Serialize(engine)
		assert.NotNil(t, err, assert.Sprintf("fail on %s", op))
		assert.Equal(t, err.Error(), "explosion in the engine room")
		got, ok := err.(*Error)
		assert.True(t, ok)
		// Pointer identity proves the error crossed the overlay without
		// being wrapped or copied.
		assert.True(t, got == boom)
	}
}

func TestSerializerDoubleWrapValue(t *testing.T) {
	t.Parallel()
	probe := func(flags *[]bool) Value {
		return sermodetest.Observe(sermodetest.Int64(1), flags)
	}

	var once, twice []bool
	assert.Nil(t, Readable.Value(probe(&once)).Serialize(&sermodetest.Serializer{}))
	assert.Nil(t, Readable.Value(Readable.Value(probe(&twice))).Serialize(&sermodetest.Serializer{}))
	assert.Equal(t, twice, once)

	// The tag nearest the value is applied last on the way to the
	// engine, so it is the one the value observes.
	var mixed []bool
	assert.Nil(t, Compact.Value(Readable.Value(probe(&mixed))).Serialize(&sermodetest.Serializer{}))
	assert.Equal(t, mixed, []bool{true})
}

func TestSerializerDoubleWrapEngine(t *testing.T) {
	t.Parallel()
	// Wrapping engines directly is the mirror image: the outermost tag
	// is the one the value sees first.
	var flags []bool
	probe := sermodetest.Observe(sermodetest.Int64(1), &flags)
	engine := Compact.Serializer(Readable.Serializer(&sermodetest.Serializer{Human: true}))
	assert.Nil(t, probe.Serialize(engine))
	assert.Equal(t, flags, []bool{false})
}

func TestSerializerCollectSeqIsLazy(t *testing.T) {
	t.Parallel()
	var flags []bool
	naturals := func(yield func(Value) bool) {
		for i := int64(1); ; i++ {
			if !yield(sermodetest.Observe(sermodetest.Int64(i), &flags)) {
				return
			}
		}
	}
	engine := &sermodetest.Serializer{CollectLimit: 2}
	err := Readable.Value(sermodetest.CollectSeq(-1, naturals)).Serialize(engine)
	assert.Nil(t, err)
	assert.Equal(t, flags, []bool{true, true})
	assert.Equal(t, engine.Ops(), []string{
		"CollectSeq(-1)",
		"CollectElement()",
		"SerializeInt64(1)",
		"CollectElement()",
		"SerializeInt64(2)",
		"End()",
	})
}

func TestSerializerCollectMapRewrapsPairs(t *testing.T) {
	t.Parallel()
	var flags []bool
	entries := func(yield func(Value, Value) bool) {
		yield(
			sermodetest.Observe(sermodetest.Str("k"), &flags),
			sermodetest.Observe(sermodetest.Int64(1), &flags),
		)
	}
	engine := &sermodetest.Serializer{}
	err := Readable.Value(sermodetest.CollectMap(1, entries)).Serialize(engine)
	assert.Nil(t, err)
	assert.Equal(t, flags, []bool{true, true})
}

func TestSerializerCollectStringPassesThrough(t *testing.T) {
	t.Parallel()
	engine := &sermodetest.Serializer{}
	err := Compact.Value(sermodetest.CollectString("v1.2")).Serialize(engine)
	assert.Nil(t, err)
	assert.Equal(t, engine.Ops(), []string{"CollectString(v1.2)"})
}

func TestSerializerScenarioCompactStruct(t *testing.T) {
	t.Parallel()
	var flags []bool
	value := sermodetest.Struct("X",
		sermodetest.Field{Name: "a", Value: sermodetest.Observe(sermodetest.Int64(1), &flags)},
		sermodetest.Field{Name: "b", Value: sermodetest.Observe(sermodetest.Int64(2), &flags)},
	)
	engine := &sermodetest.Serializer{Human: true}
	assert.Nil(t, Compact.Value(value).Serialize(engine))
	assert.Equal(t, flags, []bool{false, false})
	assert.Equal(t, engine.Ops(), []string{
		"SerializeStruct(X,2)",
		"SerializeField(a)",
		"SerializeInt64(1)",
		"SerializeField(b)",
		"SerializeInt64(2)",
		"End()",
	})
}
