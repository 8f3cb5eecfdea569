package morse

import (
	"strings"

	"github.com/samber/lo"
)

// Encode converts text to a Morse string. Characters without a code are
// dropped silently.
func Encode(text string) string {
	codes := lo.FilterMap([]rune(strings.ToUpper(text)), func(r rune, _ int) (string, bool) {
		return defaultTable.EncodeOf(r)
	})
	return strings.Join(codes, " ")
}

// Decode converts a space separated Morse string back to text. Tokens that
// are not codes of the table, including empty tokens from repeated spaces,
// are dropped silently.
func Decode(morse string) string {
	chars := lo.FilterMap(strings.Split(morse, " "), func(code string, _ int) (rune, bool) {
		return defaultTable.DecodeOf(code)
	})
	return string(chars)
}

// Validate reports whether every whitespace separated token consists only of
// dots, dashes and slashes. It does not check that tokens are known codes, so
// a valid string may still decode to less text than it has tokens.
func Validate(morse string) bool {
	return lo.EveryBy(strings.Fields(morse), func(token string) bool {
		return strings.Trim(token, ".-/") == ""
	})
}
