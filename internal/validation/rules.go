package validation

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Column limits for the users table.
const (
	UsernameMaxLength = 30
	NameMaxLength     = 255
	EmailMaxLength    = 255
	PasswordMinLength = 6
	PasswordMaxLength = 255
)

var (
	// Accepted charset for usernames and passwords. NOTE: the `+-=` run is a
	// character range (U+002B..U+003D), so `,`, `.`, `/`, `:`, `;`, `<` slip
	// through as well. Existing records were created against this exact
	// pattern, so it stays byte-for-byte; see rules_test.go.
	alphanumericSymbolPattern = regexp.MustCompile(`^[a-zA-Z0-9!@#$%^&*()_+-=]+$`)

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// AlphanumericSymbol reports whether value consists only of ASCII letters,
// digits and the permitted symbol set.
func AlphanumericSymbol(value string) bool {
	return alphanumericSymbolPattern.MatchString(value)
}

// EmailFormat is a deliberately loose email shape check; the real arbiter of
// deliverability is whoever sends mail, not this service.
func EmailFormat(value string) bool {
	return emailPattern.MatchString(value)
}

func alphanumericSymbolMessage(field string) string {
	return fmt.Sprintf("The %s may only contain letters, numbers, and special characters like !@#$%%^&*()_+-=.", field)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Errors maps a field name to its ordered failure messages.
type Errors map[string][]string

func (e Errors) add(field, message string) {
	e[field] = append(e[field], message)
}

// fieldOrder fixes the iteration order for First, so the envelope message is
// deterministic regardless of map ordering.
var fieldOrder = []string{"username", "name", "email", "password", "role_code_id"}

// First returns the first failure message in field declaration order, or "".
func (e Errors) First() string {
	for _, field := range fieldOrder {
		if msgs := e[field]; len(msgs) > 0 {
			return msgs[0]
		}
	}
	return ""
}
