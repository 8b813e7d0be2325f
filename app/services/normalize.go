package services

import (
	"strings"
	"unicode"
)

// NormalizeStatement canonicalizes free-form question text for fuzzy matching:
// lowercase, trim, collapse whitespace runs, strip sentence punctuation and
// quotes. Two statements are the same question iff their normalized forms are
// byte-equal. Intentionally crude; a miss surfaces downstream as "question not
// found", never as an error here.
func NormalizeStatement(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastSpace := false
	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch r {
		case '.', ',', ';', ':', '!', '?', '"', '\'', '“', '”', '‘', '’', '`':
			continue
		}
		if unicode.IsSpace(r) {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		lastSpace = false
		b.WriteRune(r)
	}

	return strings.TrimSpace(b.String())
}

// isEmojiRune reports whether r falls in the emoji and decoration ranges that
// show up in human-entered company names (pictographs, misc symbols, dingbats,
// variation selectors, zero-width joiner).
func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1F9FF:
		return true
	case r >= 0x2600 && r <= 0x26FF:
		return true
	case r >= 0x2700 && r <= 0x27BF:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r == 0x200D:
		return true
	}
	return false
}

// CleanCompanyName strips emoji and any character outside word/space/&.-@ from
// a company name, then collapses whitespace. Returns the empty string for
// empty input. Used before case-insensitive matching of spreadsheet company
// names against stored rows.
func CleanCompanyName(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))

	for _, r := range name {
		if isEmojiRune(r) {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' ||
			unicode.IsSpace(r) || r == '&' || r == '.' || r == '-' || r == '@' {
			b.WriteRune(r)
			continue
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
