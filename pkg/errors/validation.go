package errors

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// ValidatePackName validates a pack name for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 128 characters
func ValidatePackName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidPack, "pack name cannot be empty")
	}

	if len(name) > 128 {
		return New(ErrCodeInvalidPack, "pack name too long (max 128 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPack, "pack name contains invalid control characters")
		}
	}

	return nil
}

// referenceRegex matches scripture references of the form
// "Book Chapter:Verse" with an optional verse range, e.g. "John 3:16",
// "1 Corinthians 13:4-7", "Psalm 23:1".
var referenceRegex = regexp.MustCompile(`^((?:[1-3]\s)?[A-Za-z][A-Za-z ]*[A-Za-z])\s+(\d{1,3}):(\d{1,3})(?:-(\d{1,3}))?$`)

// ValidateReference validates a scripture reference string.
// Accepted form: "Book Chapter:Verse" or "Book Chapter:Verse-Verse".
func ValidateReference(ref string) error {
	if strings.TrimSpace(ref) == "" {
		return New(ErrCodeInvalidReference, "reference cannot be empty")
	}

	m := referenceRegex.FindStringSubmatch(ref)
	if m == nil {
		return New(ErrCodeInvalidReference, "invalid reference %q (expected e.g. \"John 3:16\" or \"Psalm 23:1-6\")", ref)
	}

	// Range end, when present, must not precede the start verse.
	if m[4] != "" {
		start, _ := strconv.Atoi(m[3])
		end, _ := strconv.Atoi(m[4])
		if end < start {
			return New(ErrCodeInvalidReference, "reference range end precedes start in %q", ref)
		}
	}

	return nil
}

// translationRegex matches translation identifiers such as "kjv" or "web".
var translationRegex = regexp.MustCompile(`^[a-z][a-z0-9-]{1,15}$`)

// ValidateTranslation validates a translation identifier.
// Identifiers are lowercase short codes (e.g. "kjv", "web", "asv").
func ValidateTranslation(id string) error {
	if id == "" {
		return New(ErrCodeInvalidTranslation, "translation cannot be empty")
	}

	if !translationRegex.MatchString(id) {
		return New(ErrCodeInvalidTranslation, "invalid translation %q (expected a lowercase code like \"kjv\")", id)
	}

	return nil
}
