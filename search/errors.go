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


package search

import "errors"

var (
	// ErrCorpusRequired is returned when a corpus reader is not provided.
	ErrCorpusRequired = errors.New("corpus reader required")

	// ErrInvalidRequest is returned when a request has no usable query mode,
	// such as an empty keyword without a range.
	ErrInvalidRequest = errors.New("invalid search request")

	// ErrUpstreamUnavailable wraps failures reading the corpus.
	ErrUpstreamUnavailable = errors.New("corpus unavailable")

	// ErrInvalidOption is returned when a Searcher option has an invalid value.
	ErrInvalidOption = errors.New("invalid searcher option")
)
