package llm

import "strings"

const (
	fenceMarker = "```"
	languageTag = "sql"
)

// SanitizeSQL strips the markdown wrapping some model formattings put around
// generated SQL and returns the bare statement. Only the fence positions are
// inspected, so a "sql" substring inside the statement itself (table or
// column names) is never touched. Sanitizing already-clean SQL is a no-op,
// and sanitizing twice equals sanitizing once.
func SanitizeSQL(raw string) string {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, fenceMarker) {
		text = strings.TrimPrefix(text, fenceMarker)
		// A language tag may follow the opening fence, e.g. ```sql
		if rest, ok := stripLanguageTag(text); ok {
			text = rest
		}
		text = strings.TrimSpace(text)
	} else if rest, ok := stripLanguageTag(text); ok {
		// Some completions start with a bare "sql" tag line and no fence.
		text = strings.TrimSpace(rest)
	}

	if strings.HasSuffix(text, fenceMarker) {
		text = strings.TrimSuffix(text, fenceMarker)
		text = strings.TrimSpace(text)
	}

	return text
}

// stripLanguageTag removes a leading "sql" tag when it stands on its own,
// i.e. is followed by whitespace or nothing at all. A statement that merely
// starts with those letters, such as one querying sqlite_master, is not a
// tag and is left unchanged.
func stripLanguageTag(text string) (string, bool) {
	if len(text) < len(languageTag) || !strings.EqualFold(text[:len(languageTag)], languageTag) {
		return text, false
	}
	rest := text[len(languageTag):]
	if rest == "" {
		return rest, true
	}
	switch rest[0] {
	case ' ', '\t', '\r', '\n':
		return rest, true
	}
	return text, false
}
