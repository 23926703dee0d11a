package textutil

import (
	"strings"
	"testing"
)

func TestIsBlankMatchesTrimmed(t *testing.T) {
	inputs := []string{"", " ", "\n\t ", "　", "a", "  a  ", " x "}
	for _, s := range inputs {
		if IsBlank(s) != (Trimmed(s) == "") {
			t.Errorf("IsBlank(%q) = %v disagrees with Trimmed", s, IsBlank(s))
		}
	}
	if !IsBlank(" \n　") {
		t.Error("ideographic space should count as blank")
	}
}

func TestTrimmedIdempotent(t *testing.T) {
	for _, s := range []string{"  hello \n", "\tx y\t", "plain", ""} {
		once := Trimmed(s)
		if twice := Trimmed(once); twice != once {
			t.Errorf("Trimmed(Trimmed(%q)) = %q, want %q", s, twice, once)
		}
	}
	if got := Trimmed("  a b  \n"); got != "a b" {
		t.Errorf("Trimmed = %q, want %q", got, "a b")
	}
}

func TestWithoutSpaces(t *testing.T) {
	if got := WithoutSpaces(" a b\tc　d "); got != "abcd" {
		t.Errorf("WithoutSpaces = %q, want %q", got, "abcd")
	}
}

func TestFirstUppercased(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"hello":    "Hello",
		"Hello":    "Hello",
		"éclair":   "Éclair",
		"1abc":     "1abc",
		"ab CD":    "Ab CD",
		"ßtraße": "SStraße",
	}
	for in, want := range tests {
		if got := FirstUppercased(in); got != want {
			t.Errorf("FirstUppercased(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCamelCaseToWords(t *testing.T) {
	if got := CamelCaseToWords("dueDateReminder"); got != "due Date Reminder" {
		t.Errorf("CamelCaseToWords = %q", got)
	}
	if got := CamelCaseToWords("NewMessage"); got != "New Message" {
		t.Errorf("CamelCaseToWords = %q", got)
	}
}

func TestTruncated(t *testing.T) {
	s := "こんにちは世界"
	got := Truncated(s, 5, DefaultTrailing)
	if got != "こんにちは…" {
		t.Errorf("Truncated = %q, want %q", got, "こんにちは…")
	}
	if CharacterCount(got) != 5+CharacterCount(DefaultTrailing) {
		t.Errorf("count = %d, want %d", CharacterCount(got), 6)
	}
	if got := Truncated(s, 7, DefaultTrailing); got != s {
		t.Errorf("Truncated at full length = %q, want unchanged", got)
	}
	if got := Truncated(s, 20, "..."); got != s {
		t.Errorf("Truncated longer = %q, want unchanged", got)
	}
	if got := Truncated("abcdef", 2, "..."); got != "ab..." {
		t.Errorf("Truncated = %q, want %q", got, "ab...")
	}
}

func TestTruncatedGraphemes(t *testing.T) {
	// Family emoji is a single user-perceived character built from several runes.
	family := "👨‍👩‍👧"
	s := family + family + "abc"
	if CharacterCount(s) != 5 {
		t.Fatalf("CharacterCount = %d, want 5", CharacterCount(s))
	}
	got := Truncated(s, 1, "")
	if got != family {
		t.Errorf("Truncated = %q, want %q", got, family)
	}
	if !strings.HasPrefix(s, got) {
		t.Error("truncated text should be a prefix of the input")
	}
}

func TestSubstring(t *testing.T) {
	if got, ok := Substring("abcdef", 1, 4); !ok || got != "bcd" {
		t.Errorf("Substring = %q, %v", got, ok)
	}
	if got, ok := Substring("日本語", 0, 3); !ok || got != "日本語" {
		t.Errorf("Substring full = %q, %v", got, ok)
	}
	if _, ok := Substring("abc", 2, 5); ok {
		t.Error("expected out-of-range to fail")
	}
	if _, ok := Substring("abc", -1, 1); ok {
		t.Error("expected negative start to fail")
	}
}

func TestRandomInviteCode(t *testing.T) {
	for i := 0; i < 200; i++ {
		code := RandomInviteCode()
		if len(code) != 6 {
			t.Fatalf("code %q has length %d, want 6", code, len(code))
		}
		for _, c := range code {
			if !strings.ContainsRune(inviteAlphabet, c) {
				t.Fatalf("code %q contains %q outside A-Z0-9", code, c)
			}
		}
		if !IsValidInviteCode(code) {
			t.Fatalf("generated code %q should be valid", code)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"foo@bar.com", "a.b+c@sub.example.co.jp", "X_Y%z@host-1.io"}
	for _, s := range valid {
		if !IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = false, want true", s)
		}
	}
	invalid := []string{"not-an-email", "a@b", "a@b.c", " foo@bar.com", "foo@bar.c0m", "@bar.com"}
	for _, s := range invalid {
		if IsValidEmail(s) {
			t.Errorf("IsValidEmail(%q) = true, want false", s)
		}
	}
}

func TestIsValidInviteCode(t *testing.T) {
	if !IsValidInviteCode("ab12cd") {
		t.Error("lowercase code should validate after uppercasing")
	}
	for _, s := range []string{"ab12", "ABCDEFG", "AB-12C", ""} {
		if IsValidInviteCode(s) {
			t.Errorf("IsValidInviteCode(%q) = true, want false", s)
		}
	}
}

func TestNilHelpers(t *testing.T) {
	empty, blank, text := "", "  ", "x"
	if !IsNilOrEmpty(nil) || !IsNilOrEmpty(&empty) || IsNilOrEmpty(&blank) {
		t.Error("IsNilOrEmpty mismatch")
	}
	if !IsNilOrBlank(nil) || !IsNilOrBlank(&blank) || IsNilOrBlank(&text) {
		t.Error("IsNilOrBlank mismatch")
	}
}

func TestURLEncoding(t *testing.T) {
	enc := URLEncoded("家族 a&b")
	dec, err := URLDecoded(enc)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if dec != "家族 a&b" {
		t.Errorf("decoded = %q", dec)
	}
	if _, err := URLDecoded("%zz"); err == nil {
		t.Error("expected error for malformed escape")
	}
}

func TestFormattedFileSize(t *testing.T) {
	if got := FormattedFileSize(0); got != "0 B" {
		t.Errorf("FormattedFileSize(0) = %q", got)
	}
	if got := FormattedFileSize(10 * 1000 * 1000); got != "10 MB" {
		t.Errorf("FormattedFileSize(10MB) = %q", got)
	}
}
