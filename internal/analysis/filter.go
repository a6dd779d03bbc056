package analysis

import (
	"unicode/utf8"

	"github.com/strandkit/strand/internal/entry"
	"github.com/strandkit/strand/internal/errors"
)

// FilterSet is a conjunction of optional predicates over a property record.
// A nil field imposes no constraint; the zero FilterSet matches everything.
type FilterSet struct {
	IsPalindrome      *bool   `json:"is_palindrome,omitempty"`
	MinLength         *int    `json:"min_length,omitempty"`
	MaxLength         *int    `json:"max_length,omitempty"`
	WordCount         *int    `json:"word_count,omitempty"`
	ContainsCharacter *string `json:"contains_character,omitempty"`
}

// IsEmpty reports whether no predicate is set.
func (f FilterSet) IsEmpty() bool {
	return f.IsPalindrome == nil && f.MinLength == nil && f.MaxLength == nil &&
		f.WordCount == nil && f.ContainsCharacter == nil
}

// Validate checks the construction-time invariants of a filter set.
// Numeric bounds must be non-negative, contains_character must be exactly
// one character, and min_length must not exceed max_length. The bounds
// check applies to every construction path, structured or translated.
func (f FilterSet) Validate() error {
	if f.MinLength != nil && *f.MinLength < 0 {
		return errors.NewInvalidRequest("min_length must be non-negative")
	}
	if f.MaxLength != nil && *f.MaxLength < 0 {
		return errors.NewInvalidRequest("max_length must be non-negative")
	}
	if f.WordCount != nil && *f.WordCount < 0 {
		return errors.NewInvalidRequest("word_count must be non-negative")
	}
	if f.ContainsCharacter != nil && utf8.RuneCountInString(*f.ContainsCharacter) != 1 {
		return errors.NewInvalidRequest("contains_character must be a single character")
	}
	if f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength {
		return errors.NewConflictingFilters(*f.MinLength, *f.MaxLength)
	}
	return nil
}

// Matches reports whether a property record satisfies every predicate
// present in the filter set. Pure and total; malformed filters are
// rejected by Validate before they reach this point.
func (f FilterSet) Matches(p entry.Properties) bool {
	if f.IsPalindrome != nil && p.IsPalindrome != *f.IsPalindrome {
		return false
	}
	if f.MinLength != nil && p.Length < *f.MinLength {
		return false
	}
	if f.MaxLength != nil && p.Length > *f.MaxLength {
		return false
	}
	if f.WordCount != nil && p.WordCount != *f.WordCount {
		return false
	}
	if f.ContainsCharacter != nil && p.CharacterFrequency[*f.ContainsCharacter] == 0 {
		return false
	}
	return true
}
