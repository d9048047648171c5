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

import (
	"fmt"
	"slices"
	"strings"
)

// ValidateEntry validates an Entry according to write-path rules.
//
// Validation rules:
//   - Word must not be empty or whitespace
//   - WordClass must be one of WordClasses
//   - Every example must carry Igbo or English text
//
// NOT validated:
//   - Definitions (an entry may be stored before it is glossed)
//   - ID (0 is valid, storage assigns it)
func ValidateEntry(entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if strings.TrimSpace(entry.Word) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyWord)
	}

	if err := ValidateWordClass(entry.WordClass); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	for i := range entry.Examples {
		if err := ValidateExample(&entry.Examples[i]); err != nil {
			return fmt.Errorf("%w: example %d: %w", ErrInvalidEntry, i, err)
		}
	}

	return nil
}

// ValidateExample validates an Example.
func ValidateExample(example *Example) error {
	if example == nil {
		return fmt.Errorf("%w: example is nil", ErrInvalidExample)
	}
	if strings.TrimSpace(example.Igbo) == "" && strings.TrimSpace(example.English) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidExample, ErrEmptyExample)
	}
	return nil
}

// ValidateWordClass validates that a WordClass has an accepted value.
func ValidateWordClass(wc WordClass) error {
	if !slices.Contains(WordClasses, wc) {
		return fmt.Errorf("%w: value %q", ErrInvalidWordClass, string(wc))
	}
	return nil
}
