// Package analysis contains the pure core of strand: property computation,
// natural-language query translation, and filter evaluation. Nothing in this
// package touches storage or I/O, so every function is safe to call
// concurrently without coordination.
package analysis

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/strandkit/strand/internal/entry"
)

// Compute derives the full property record for a string. It is total and
// deterministic: the same value always yields a bit-identical record.
func Compute(value string) entry.Properties {
	runes := []rune(value)

	freq := make(map[string]int)
	for _, r := range runes {
		freq[string(r)]++
	}

	return entry.Properties{
		Length:             len(runes),
		IsPalindrome:       isPalindrome(value),
		UniqueCharacters:   len(freq),
		WordCount:          countWords(value),
		ContentHash:        Hash(value),
		CharacterFrequency: freq,
	}
}

// Hash returns the lowercase hex sha256 digest of the string's UTF-8 bytes.
// It is the entry's stable identifier.
func Hash(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// isPalindrome compares the lowercased string against its own reverse.
// Case-insensitive, but whitespace and punctuation count as characters.
func isPalindrome(value string) bool {
	lower := []rune(strings.ToLower(value))
	for i, j := 0, len(lower)-1; i < j; i, j = i+1, j-1 {
		if lower[i] != lower[j] {
			return false
		}
	}
	return true
}

// countWords counts whitespace-delimited tokens after trimming.
// An empty or all-whitespace string has zero words.
func countWords(value string) int {
	return len(strings.Fields(value))
}
