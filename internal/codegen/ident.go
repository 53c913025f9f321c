package codegen

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var legalIdentifier = regexp.MustCompile(`^[_a-zA-Z][0-9_a-zA-Z]*$`)

// Normalize replaces every rune outside [A-Za-z0-9] and the placeholder with
// an underscore. The result may still start with a digit. Pass 0 as the
// placeholder when none is in play.
func Normalize(text string, placeholder rune) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case placeholder != 0 && r == placeholder:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ToMethodIdentifier turns free text into a snake-case method name,
// e.g. "User logs in" -> "User_logs_in".
func ToMethodIdentifier(text string) string {
	return legalize(Normalize(text, 0))
}

// ToTypeIdentifier turns free text into a pascal-case type name,
// e.g. "user login-flow" -> "UserLoginFlow".
func ToTypeIdentifier(text string) string {
	title := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, word := range strings.Split(Normalize(text, 0), "_") {
		if word == "" {
			continue
		}
		b.WriteString(title.String(word))
	}
	return legalize(b.String())
}

// IsLegalBareIdentifier reports whether text can be used as an identifier as
// is. A nil or empty text is legal: there is nothing to preserve.
func IsLegalBareIdentifier(text *string) bool {
	if text == nil || *text == "" {
		return true
	}
	return legalIdentifier.MatchString(*text)
}

// EscapeBackslashes doubles backslashes so text can sit inside a string
// literal. Quotes are left alone.
func EscapeBackslashes(text string) string {
	return strings.ReplaceAll(text, `\`, `\\`)
}

// legalize prefixes an underscore when name is empty or starts with a digit.
func legalize(name string) string {
	if name == "" {
		return "_"
	}
	if name[0] >= '0' && name[0] <= '9' {
		return "_" + name
	}
	return name
}
