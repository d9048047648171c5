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


package storage

import (
	"fmt"
	"time"

	"github.com/poiesic/igbodict/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	if len(data) == 0 {
		return 0, ErrTruncatedData
	}
	id, _, err := core.IDMUS.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return id, nil
}

// MarshalEntry serializes an Entry to bytes.
func MarshalEntry(entry *core.Entry) []byte {
	buf := make([]byte, core.EntryMUS.Size(*entry))
	core.EntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalEntry deserializes an Entry from bytes.
func UnmarshalEntry(data []byte) (*core.Entry, error) {
	if len(data) == 0 {
		return nil, ErrTruncatedData
	}
	entry, _, err := core.EntryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	// Timestamps decode in the local zone; repositories hand out UTC.
	entry.InsertedAt = entry.InsertedAt.UTC()
	entry.UpdatedAt = entry.UpdatedAt.UTC()
	for i := range entry.Examples {
		if len(entry.Examples[i].AssociatedWords) == 0 {
			entry.Examples[i].AssociatedWords = nil
		}
	}
	return &entry, nil
}

// Now returns the current UTC time at the microsecond precision entries are
// stored with.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
