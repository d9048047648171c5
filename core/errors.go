// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidEntry indicates an Entry failed validation.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrInvalidExample indicates an Example failed validation.
	ErrInvalidExample = errors.New("invalid example")

	// ErrEmptyWord indicates the Word field is empty.
	ErrEmptyWord = errors.New("word cannot be empty")

	// ErrInvalidWordClass indicates a WordClass outside the accepted set.
	ErrInvalidWordClass = errors.New("invalid word class")

	// ErrEmptyExample indicates an example with neither Igbo nor English text.
	ErrEmptyExample = errors.New("example must have igbo or english text")
)
