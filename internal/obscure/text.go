package obscure

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ReplaceName replaces every whole-word occurrence of name in text. Matching
// is case-sensitive; a match must not be preceded or followed by a letter or
// digit.
func ReplaceName(text, name, replacement string) string {
	if name == "" || name == replacement {
		return text
	}

	var b strings.Builder
	written, from := 0, 0
	for {
		i := strings.Index(text[from:], name)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(name)
		if wordBoundaryBefore(text, start) && wordBoundaryAfter(text, end) {
			b.WriteString(text[written:start])
			b.WriteString(replacement)
			written = end
		}
		from = end
	}
	if written == 0 {
		return text
	}
	b.WriteString(text[written:])
	return b.String()
}

// ReplaceFirst replaces the forename of name with the forename of
// replacement.
func ReplaceFirst(text, name, replacement string) string {
	first, _ := splitName(name)
	newFirst, _ := splitName(replacement)
	return ReplaceName(text, first, newFirst)
}

// ReplaceLast replaces the surname of name with the surname of replacement.
// Names without a surname are left alone.
func ReplaceLast(text, name, replacement string) string {
	_, last := splitName(name)
	_, newLast := splitName(replacement)
	if last == "" || newLast == "" {
		return text
	}
	return ReplaceName(text, last, newLast)
}

func splitName(name string) (first, last string) {
	first, last, _ = strings.Cut(name, " ")
	return first, last
}

func wordBoundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func wordBoundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
