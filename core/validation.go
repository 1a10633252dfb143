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

import "fmt"

// ValidateSegment validates a Segment according to domain rules.
//
// Validation rules:
//   - Content must not be empty or whitespace-only
//   - Source must not be empty
//   - Page must be >= 1 or PageUnknown
func ValidateSegment(segment *Segment) error {
	if segment == nil {
		return fmt.Errorf("%w: segment is nil", ErrInvalidSegment)
	}

	if segment.Empty() {
		return fmt.Errorf("%w: %w", ErrInvalidSegment, ErrEmptyContent)
	}

	if segment.Source == "" {
		return fmt.Errorf("%w: %w", ErrInvalidSegment, ErrEmptySource)
	}

	if segment.Page < PageUnknown {
		return fmt.Errorf("%w: %w: %d", ErrInvalidSegment, ErrInvalidPage, segment.Page)
	}

	return nil
}

// ValidatePair validates a QAPair according to domain rules.
//
// Validation rules:
//   - Question must not be empty
//   - Answer must not be empty (a pair with an empty answer is never emitted;
//     the synthesizer drops the question instead)
//
// NOT validated:
//   - Taxonomy labels (defaults are always valid; classifier output is
//     deliberately not clamped to the loaded taxonomy)
//   - Source and Page (may be empty when provenance is unavailable)
func ValidatePair(pair *QAPair) error {
	if pair == nil {
		return fmt.Errorf("%w: pair is nil", ErrInvalidPair)
	}

	if pair.Question == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPair, ErrEmptyQuestion)
	}

	if pair.Answer == "" {
		return fmt.Errorf("%w: %w", ErrInvalidPair, ErrEmptyAnswer)
	}

	return nil
}
