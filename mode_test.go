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
	"testing"

	"sermode.dev/sermode/internal/assert"
)

func TestModeFlag(t *testing.T) {
	t.Parallel()
	assert.True(t, Readable.HumanReadable())
	assert.False(t, Compact.HumanReadable())
}

func TestModeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Readable.String(), "readable")
	assert.Equal(t, Compact.String(), "compact")
}

func TestModeZeroValueIsCompact(t *testing.T) {
	t.Parallel()
	var mode Mode
	assert.Equal(t, mode, Compact)
	assert.False(t, mode.HumanReadable())
}
