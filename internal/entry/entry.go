package entry

// Entry represents a stored string and the properties derived from it.
// Entries are immutable: they are created once, read many times, and
// deleted once. There is no update path.
type Entry struct {
	// ID is the lowercase hex sha256 digest of Value. It doubles as the
	// content fingerprint, so two submissions of the same string collide.
	ID string `json:"id"`

	// Value is the original string exactly as submitted
	Value string `json:"value"`

	// Properties holds the characteristics computed at creation time.
	// They are never recomputed; Value is the sole input.
	Properties Properties `json:"properties"`

	// CreatedAt is the Unix timestamp of first insertion
	CreatedAt int64 `json:"created_at"`
}

// Properties is the fixed set of characteristics derived from a string.
// Every field is a pure function of the string, so recomputing from the
// same value always yields an identical record.
type Properties struct {
	// Length is the character count (runes, not bytes)
	Length int `json:"length"`

	// IsPalindrome reports whether the lowercased string equals its own
	// reverse. No whitespace or punctuation stripping is applied.
	IsPalindrome bool `json:"is_palindrome"`

	// UniqueCharacters is the number of distinct characters, case-sensitive
	UniqueCharacters int `json:"unique_characters"`

	// WordCount is the number of whitespace-delimited tokens after trimming
	WordCount int `json:"word_count"`

	// ContentHash is the lowercase hex sha256 digest of the string's UTF-8 bytes
	ContentHash string `json:"content_hash"`

	// CharacterFrequency maps each distinct character to its occurrence
	// count, case-sensitive, keyed by single-character strings.
	CharacterFrequency map[string]int `json:"character_frequency"`
}
