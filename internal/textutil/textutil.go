// Package textutil holds pure helpers for trimming, measuring and
// normalizing user-entered text. Character counts are in grapheme clusters,
// so an emoji with modifiers or a letter with a combining mark counts once.
package textutil

import (
	"math/rand"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dukerupert/uchitopi/internal/config"
)

// DefaultTrailing is appended by Truncated when text is cut.
const DefaultTrailing = "…"

const inviteAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	emailRegex      = regexp.MustCompile(config.EmailPattern)
	inviteCodeRegex = regexp.MustCompile(config.InviteCodePattern)
	upper           = cases.Upper(language.Und)
)

// Trimmed removes leading and trailing whitespace and newlines.
func Trimmed(s string) string {
	return strings.TrimSpace(s)
}

// IsBlank reports whether s is empty once trimmed.
func IsBlank(s string) bool {
	return Trimmed(s) == ""
}

// IsNilOrEmpty reports whether s is nil or the empty string.
func IsNilOrEmpty(s *string) bool {
	return s == nil || *s == ""
}

// IsNilOrBlank reports whether s is nil or blank.
func IsNilOrBlank(s *string) bool {
	return s == nil || IsBlank(*s)
}

// WithoutSpaces removes every whitespace character, not only the edges.
func WithoutSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// FirstUppercased uppercases the first character and keeps the rest.
func FirstUppercased(s string) string {
	if s == "" {
		return s
	}
	first, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return upper.String(first) + rest
}

// CamelCaseToWords inserts a space before every uppercase letter, so
// "dueDateReminder" becomes "due Date Reminder".
func CamelCaseToWords(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return Trimmed(b.String())
}

// CharacterCount returns the number of user-perceived characters in s.
func CharacterCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Truncated cuts s to length characters and appends trailing when s is
// longer than length. Shorter input is returned unchanged.
func Truncated(s string, length int, trailing string) string {
	if length < 0 {
		length = 0
	}
	if CharacterCount(s) <= length {
		return s
	}
	return prefix(s, length) + trailing
}

// Substring returns the characters in [start, end). ok is false when the
// range falls outside s.
func Substring(s string, start, end int) (sub string, ok bool) {
	if start < 0 || end < start || end > CharacterCount(s) {
		return "", false
	}
	var b strings.Builder
	i := 0
	state := -1
	rest := s
	for len(rest) > 0 && i < end {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if i >= start {
			b.WriteString(cluster)
		}
		i++
	}
	return b.String(), true
}

func prefix(s string, n int) string {
	sub, _ := Substring(s, 0, n)
	return sub
}

// RandomInviteCode returns six characters drawn uniformly from A-Z0-9.
// The result is not cryptographically secure and uniqueness is the caller's
// responsibility.
func RandomInviteCode() string {
	b := make([]byte, config.InviteCodeLength)
	for i := range b {
		b[i] = inviteAlphabet[rand.Intn(len(inviteAlphabet))]
	}
	return string(b)
}

// IsValidEmail reports whether s matches the email pattern as-is.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidInviteCode reports whether s, uppercased, is a six character code.
func IsValidInviteCode(s string) bool {
	return inviteCodeRegex.MatchString(strings.ToUpper(s))
}

// URLEncoded escapes s for use in a query string.
func URLEncoded(s string) string {
	return url.QueryEscape(s)
}

// URLDecoded reverses URLEncoded.
func URLDecoded(s string) (string, error) {
	return url.QueryUnescape(s)
}

// FormattedFileSize renders a byte count the way file sizes are shown to users.
func FormattedFileSize(bytes int64) string {
	if bytes < 0 {
		return "-" + humanize.Bytes(uint64(-bytes))
	}
	return humanize.Bytes(uint64(bytes))
}
