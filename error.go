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

import "fmt"

// An Error is the single failure kind engines and visitors construct: a
// message and nothing else. The mode overlay never creates one - every
// Error observed through a tagged engine originated in the wrapped
// engine and crossed the overlay unmodified, so callers may match on the
// message with confidence.
type Error struct {
	message string
}

// NewError returns an Error carrying msg verbatim.
func NewError(msg string) *Error {
	return &Error{message: msg}
}

// Errorf formats an Error's message with fmt.Sprintf.
func Errorf(format string, args ...any) *Error {
	return &Error{message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.message
}

// Is reports message equality, so errors.Is matches two Errors carrying
// the same text even when they are distinct allocations.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.message == t.message
}
