package cmdargs

import "strings"

const (
	leadingSpace = " \r\n\t"
	tokenSpace   = " \t\n\f\r"
)

// locate finds the first occurrence of name preceded by a space and returns
// the text following it with leading whitespace removed.
//
// This is a plain substring search: a name that also appears inside another
// argument's value (or as the suffix of another name) matches wherever it
// occurs first.
func locate(command, name string) (string, bool) {
	idx := strings.Index(command, " "+name)
	if idx < 0 {
		return "", false
	}

	rest := command[idx+1+len(name):]
	return strings.TrimLeft(rest, leadingSpace), true
}

// extractValue returns the value token at the start of rest. A double quoted
// value runs up to the next quote and keeps inner whitespace, anything else
// runs up to the next whitespace character.
func extractValue(rest string) (string, bool) {
	if value, ok := extractQuoted(rest); ok {
		return value, true
	}
	return extractUnquoted(rest)
}

func extractQuoted(rest string) (string, bool) {
	if !strings.HasPrefix(rest, `"`) {
		return "", false
	}

	end := strings.IndexByte(rest[1:], '"')
	if end <= 0 {
		// Unterminated or empty quotes
		return "", false
	}
	return rest[1 : 1+end], true
}

func extractUnquoted(rest string) (string, bool) {
	end := strings.IndexAny(rest, tokenSpace)
	if end < 0 {
		end = len(rest)
	}
	if end == 0 {
		return "", false
	}
	return rest[:end], true
}

// Extract locates name in command and returns its raw value token, applying
// the same rules as Parse without any type validation. found is false when
// the name does not occur; ok is false when it occurs without a value.
func Extract(command, name string) (value string, found, ok bool) {
	rest, found := locate(command, name)
	if !found {
		return "", false, false
	}
	value, ok = extractValue(rest)
	return value, true, ok
}
