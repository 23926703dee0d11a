package validator

import (
	"fmt"
)

// Kind identifies why a value was rejected.
type Kind int

const (
	KindEmpty Kind = iota + 1
	KindTooShort
	KindTooLong
	KindInvalidFormat
	KindInvalidEmail
	KindInvalidInviteCode
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindTooShort:
		return "too_short"
	case KindTooLong:
		return "too_long"
	case KindInvalidFormat:
		return "invalid_format"
	case KindInvalidEmail:
		return "invalid_email"
	case KindInvalidInviteCode:
		return "invalid_invite_code"
	case KindCustom:
		return "custom"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ValidationError is the single error type returned by every validator. Min
// and Max carry the bound for KindTooShort and KindTooLong, Message the text
// of KindCustom. Field is set only by struct validation.
type ValidationError struct {
	Kind    Kind
	Min     int
	Max     int
	Message string
	Field   string
}

// Empty reports a missing or blank value.
func Empty() *ValidationError { return &ValidationError{Kind: KindEmpty} }

// TooShort reports fewer than min characters.
func TooShort(min int) *ValidationError { return &ValidationError{Kind: KindTooShort, Min: min} }

// TooLong reports more than max characters.
func TooLong(max int) *ValidationError { return &ValidationError{Kind: KindTooLong, Max: max} }

// InvalidFormat reports a value outside the accepted form.
func InvalidFormat() *ValidationError { return &ValidationError{Kind: KindInvalidFormat} }

// InvalidEmail reports a malformed email address.
func InvalidEmail() *ValidationError { return &ValidationError{Kind: KindInvalidEmail} }

// InvalidInviteCode reports a code that is not six of A-Z0-9.
func InvalidInviteCode() *ValidationError { return &ValidationError{Kind: KindInvalidInviteCode} }

// Custom reports a failure with its own message.
func Custom(msg string) *ValidationError { return &ValidationError{Kind: KindCustom, Message: msg} }

// Error returns the message shown to the user.
func (e *ValidationError) Error() string {
	msg := e.message()
	if e.Field != "" {
		return e.Field + ": " + msg
	}
	return msg
}

func (e *ValidationError) message() string {
	switch e.Kind {
	case KindEmpty:
		return "入力してください"
	case KindTooShort:
		return fmt.Sprintf("%d文字以上入力してください", e.Min)
	case KindTooLong:
		return fmt.Sprintf("%d文字以内で入力してください", e.Max)
	case KindInvalidFormat:
		return "形式が正しくありません"
	case KindInvalidEmail:
		return "メールアドレスの形式が正しくありません"
	case KindInvalidInviteCode:
		return "招待コードは6桁の英数字で入力してください"
	case KindCustom:
		return e.Message
	}
	return "入力内容が正しくありません"
}

// Is matches another *ValidationError of the same kind. Bounds and message
// on target are compared only when set, so errors.Is(err, Empty()) and
// errors.Is(err, TooLong(100)) both work.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok || t.Kind != e.Kind {
		return false
	}
	if t.Min != 0 && t.Min != e.Min {
		return false
	}
	if t.Max != 0 && t.Max != e.Max {
		return false
	}
	if t.Message != "" && t.Message != e.Message {
		return false
	}
	return true
}

// Result is the outcome of a validation for callers that prefer a value to
// an error.
type Result struct {
	Valid bool
	Err   *ValidationError
}

// Success is a passing Result.
func Success() Result { return Result{Valid: true} }

// Failure is a failing Result carrying err.
func Failure(err *ValidationError) Result { return Result{Err: err} }

// Check converts a validator's error into a Result. Errors that are not
// validation failures are reported as KindCustom with their text.
func Check(err error) Result {
	if err == nil {
		return Success()
	}
	if ve, ok := err.(*ValidationError); ok {
		return Failure(ve)
	}
	return Failure(Custom(err.Error()))
}
