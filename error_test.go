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
	"errors"
	"testing"

	"sermode.dev/sermode/internal/assert"
)

func TestErrorMessage(t *testing.T) {
	t.Parallel()
	assert.Equal(t, NewError("expected a string").Error(), "expected a string")
	assert.Equal(t, Errorf("expected %q, got %d", "id", 42).Error(), `expected "id", got 42`)
}

func TestErrorIsMatchesOnMessage(t *testing.T) {
	t.Parallel()
	err := NewError("bad input")
	assert.True(t, errors.Is(err, NewError("bad input")))
	assert.False(t, errors.Is(err, NewError("different")))
	assert.False(t, errors.Is(err, errors.New("bad input")))
}
