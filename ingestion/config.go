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


package ingestion

import (
	"fmt"
	"time"
)

// Config holds configuration for an import.
type Config struct {
	// BatchSize is the number of entries written in each transaction
	BatchSize int

	// ReportInterval is how often to report progress (number of entries)
	ReportInterval int

	// MaxRetries is the maximum number of attempts for a failed batch write
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 500,
		MaxRetries:     3,
		RetryDelay:     100 * time.Millisecond,
	}
}

// Validate checks that every field is usable.
func (c *Config) Validate() error {
	switch {
	case c.BatchSize <= 0:
		return fmt.Errorf("%w: batch size %d", ErrInvalidConfig, c.BatchSize)
	case c.ReportInterval <= 0:
		return fmt.Errorf("%w: report interval %d", ErrInvalidConfig, c.ReportInterval)
	case c.MaxRetries <= 0:
		return fmt.Errorf("%w: max retries %d", ErrInvalidConfig, c.MaxRetries)
	case c.RetryDelay < 0:
		return fmt.Errorf("%w: retry delay %s", ErrInvalidConfig, c.RetryDelay)
	}
	return nil
}
