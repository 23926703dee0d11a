// Package validator normalizes and checks user input. Every function is pure
// and returns either the accepted value or a *ValidationError; composite
// validators return the first failure from the validators they call.
package validator

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/dukerupert/uchitopi/internal/config"
	"github.com/dukerupert/uchitopi/internal/model"
	"github.com/dukerupert/uchitopi/internal/textutil"
)

// NotEmpty fails with KindEmpty when value is nil or blank, and otherwise
// returns the original, untrimmed value.
func NotEmpty(value *string) (string, error) {
	if value == nil || textutil.IsBlank(*value) {
		return "", Empty()
	}
	return *value, nil
}

// NotEmptyString is NotEmpty for a value that is always present.
func NotEmptyString(value string) (string, error) {
	return NotEmpty(&value)
}

type bounds struct {
	min, max       int
	hasMin, hasMax bool
}

// Bound limits the character count checked by Length.
type Bound func(*bounds)

// Min requires at least n characters.
func Min(n int) Bound {
	return func(b *bounds) { b.min, b.hasMin = n, true }
}

// Max allows at most n characters.
func Max(n int) Bound {
	return func(b *bounds) { b.max, b.hasMax = n, true }
}

// Length checks the trimmed character count of value against the given
// bounds and returns the original, untrimmed value.
func Length(value string, opts ...Bound) (string, error) {
	var b bounds
	for _, opt := range opts {
		opt(&b)
	}
	n := textutil.CharacterCount(textutil.Trimmed(value))
	if b.hasMin && n < b.min {
		return "", TooShort(b.min)
	}
	if b.hasMax && n > b.max {
		return "", TooLong(b.max)
	}
	return value, nil
}

// Email trims value, checks it against the email pattern and returns it
// lower-cased.
func Email(value string) (string, error) {
	trimmed := textutil.Trimmed(value)
	if !textutil.IsValidEmail(trimmed) {
		return "", InvalidEmail()
	}
	return strings.ToLower(trimmed), nil
}

// InviteCode upper-cases and trims value and requires six of A-Z0-9.
func InviteCode(value string) (string, error) {
	normalized := textutil.Trimmed(strings.ToUpper(value))
	if !textutil.IsValidInviteCode(normalized) {
		return "", InvalidInviteCode()
	}
	return normalized, nil
}

func required(value string, max int) (string, error) {
	v, err := NotEmptyString(value)
	if err != nil {
		return "", err
	}
	return Length(v, Min(1), Max(max))
}

// TaskTitle requires 1 to 100 characters.
func TaskTitle(value string) (string, error) {
	return required(value, config.MaxTaskTitleLength)
}

// ThreadTitle requires 1 to 100 characters, like a task title.
func ThreadTitle(value string) (string, error) {
	return required(value, config.MaxTaskTitleLength)
}

// TaskDescription allows empty text.
func TaskDescription(value string) (string, error) {
	return Length(value, Max(config.MaxTaskDescriptionLength))
}

// MessageBody requires 1 to 1000 characters.
func MessageBody(value string) (string, error) {
	return required(value, config.MaxMessageLength)
}

// FamilyName requires 1 to 50 characters.
func FamilyName(value string) (string, error) {
	return required(value, config.MaxFamilyNameLength)
}

// DisplayName requires 1 to 30 characters.
func DisplayName(value string) (string, error) {
	return required(value, config.MaxDisplayNameLength)
}

// Nickname allows empty text.
func Nickname(value string) (string, error) {
	return Length(value, Max(config.MaxNicknameLength))
}

// FutureDate requires date to be strictly after now.
func FutureDate(date, now time.Time) (time.Time, error) {
	if !date.After(now) {
		return time.Time{}, Custom("未来の日時を選択してください")
	}
	return date, nil
}

// DateRange requires start to be strictly before end.
func DateRange(start, end time.Time) (time.Time, time.Time, error) {
	if !start.Before(end) {
		return time.Time{}, time.Time{}, Custom("開始日時は終了日時より前に設定してください")
	}
	return start, end, nil
}

// Attachments enforces the per-message image count and per-file size limits.
func Attachments(atts []model.MessageAttachment) error {
	images := 0
	for _, a := range atts {
		if a.Type == model.AttachmentImage {
			images++
		}
		if a.FileSize != nil && *a.FileSize > config.MaxAttachmentSize {
			return Custom(fmt.Sprintf("ファイルサイズは%s以下にしてください", humanize.IBytes(uint64(config.MaxAttachmentSize))))
		}
	}
	if images > config.MaxImagesPerMessage {
		return Custom(fmt.Sprintf("画像は%d枚まで添付できます", config.MaxImagesPerMessage))
	}
	return nil
}

// MemberCount fails when a family that already has current members cannot
// take another one.
func MemberCount(current int) error {
	if current >= config.MaxFamilyMembers {
		return Custom(fmt.Sprintf("家族メンバーは%d人までです", config.MaxFamilyMembers))
	}
	return nil
}
