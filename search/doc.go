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


// Package search answers Igbo and English keyword queries against the
// dictionary corpus.
//
// A query runs through a fixed set of stages:
//
//   - Normalize and BuildPattern fold accents, case and spacing so that
//     "akwa" finds "àkwà" and the other way round
//   - Classify tags the query as a source (Igbo) or translation (English)
//     query
//   - Matcher scans a corpus snapshot through the channels for that kind
//   - Score ranks translation hits by similarity to their primary definition
//   - Order applies an explicit sort, or the default ordering, ending in
//     corpus order so results are reproducible
//   - Window slices one page or range out of the ordered list
//   - Project strips storage fields and shapes the response
//
// Modifiers (page, range and sort) never fail a request. Each parser has a
// fallback: a malformed sort sorts ascending, a non-numeric page is page 1
// and a malformed range is page 1.
package search
