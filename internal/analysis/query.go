package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/strandkit/strand/internal/errors"
)

var (
	singleWordPattern = regexp.MustCompile(`(single|one) word`)
	longerThanPattern = regexp.MustCompile(`longer than (\d+)`)
	letterPattern     = regexp.MustCompile(`contain(?:ing|s)? (?:the )?letter ([a-z])`)
	firstVowelPattern = regexp.MustCompile(`first vowel`)
)

// queryRules is the fixed grammar of the translator: an ordered list of
// (pattern, setter) pairs applied to the lowercased input. Order matters:
// a later rule overwrites an earlier one targeting the same field, which is
// how "first vowel" wins over an explicit letter mention. Do not reorder.
var queryRules = []func(text string, f *FilterSet){
	func(text string, f *FilterSet) {
		if singleWordPattern.MatchString(text) {
			one := 1
			f.WordCount = &one
		}
	},
	func(text string, f *FilterSet) {
		if m := longerThanPattern.FindStringSubmatch(text); m != nil {
			// "longer than N" is strict, so the bound is N+1
			n, err := strconv.Atoi(m[1])
			if err != nil {
				return
			}
			min := n + 1
			f.MinLength = &min
		}
	},
	func(text string, f *FilterSet) {
		if strings.Contains(text, "palindrom") {
			yes := true
			f.IsPalindrome = &yes
		}
	},
	func(text string, f *FilterSet) {
		if m := letterPattern.FindStringSubmatch(text); m != nil {
			ch := m[1]
			f.ContainsCharacter = &ch
		}
	},
	func(text string, f *FilterSet) {
		// Fixed convention: "first vowel" always resolves to the letter a
		if firstVowelPattern.MatchString(text) {
			a := "a"
			f.ContainsCharacter = &a
		}
	},
}

// Translate maps free-text query language into a structured filter set.
// It recognizes a small fixed grammar, not general natural language.
// Returns UNPARSEABLE_QUERY when no rule matches and CONFLICTING_FILTERS
// when the matched rules contradict each other.
func Translate(text string) (FilterSet, error) {
	lower := strings.ToLower(text)

	var f FilterSet
	for _, rule := range queryRules {
		rule(lower, &f)
	}

	// No current rule sets max_length, but the conflict invariant holds for
	// every construction path, so the translated set is validated the same
	// way a structured one is.
	if f.MinLength != nil && f.MaxLength != nil && *f.MinLength > *f.MaxLength {
		return FilterSet{}, errors.NewConflictingFilters(*f.MinLength, *f.MaxLength)
	}

	if f.IsEmpty() {
		return FilterSet{}, errors.NewUnparseableQuery()
	}

	return f, nil
}
