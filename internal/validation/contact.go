package validation

import (
	"regexp"
	"strings"
)

// notSpaceOrAt excludes every character a browser treats as whitespace, not only ASCII
const notSpaceOrAt = `[^\s\p{Z}\x{0B}\x{FEFF}@]`

var (
	// Lax single-pass shape check. Good enough for a contact field, not RFC 5322.
	emailPattern    = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{5,32}$`)

	// The address grammar of an <input type="email">
	inputEmailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
		`[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

	inputNewlines = strings.NewReplacer("\r", "", "\n", "")
)

// IsEmail reports whether s looks like name@domain.tld
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsTelegramUsername reports whether s is a Telegram username, with or without one leading @
func IsTelegramUsername(s string) bool {
	return usernamePattern.MatchString(strings.TrimPrefix(s, "@"))
}

// IsInputEmail reports whether an email input would accept s.
// Dotless domains such as localhost are allowed.
func IsInputEmail(s string) bool {
	return inputEmailPattern.MatchString(s)
}

// SanitizeEmailInput applies the value cleanup an email input does on its own:
// newlines are removed, then surrounding ASCII whitespace.
func SanitizeEmailInput(s string) string {
	return strings.Trim(inputNewlines.Replace(s), " \t\n\f\r")
}
