package validator

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dukerupert/uchitopi/internal/model"
	"github.com/dukerupert/uchitopi/internal/textutil"
)

var structs = newStructValidator()

type enumerated interface {
	Valid() bool
}

func newStructValidator() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// "enum" accepts any closed enumeration from the model package.
	if err := v.RegisterValidation("enum", func(fl playground.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enumerated)
		return ok && e.Valid()
	}); err != nil {
		panic(err)
	}
	// "maxchars" counts user-perceived characters of the trimmed string.
	if err := v.RegisterValidation("maxchars", func(fl playground.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return textutil.CharacterCount(textutil.Trimmed(fl.Field().String())) <= limit
	}); err != nil {
		panic(err)
	}
	return v
}

// Struct checks the validate tags on an entity and converts the first
// failing field into a *ValidationError naming that field.
func Struct(v any) error {
	err := structs.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}
	fe := fieldErrs[0]
	ve := fromTag(fe.Tag(), fe.Param())
	ve.Field = fe.Field()
	return ve
}

func fromTag(tag, param string) *ValidationError {
	n, _ := strconv.Atoi(param)
	switch tag {
	case "required":
		return Empty()
	case "max", "maxchars":
		return TooLong(n)
	case "min":
		return TooShort(n)
	}
	return InvalidFormat()
}

// Family validates a family record at the storage boundary.
func Family(f model.Family) error {
	if _, err := FamilyName(f.Name); err != nil {
		return err
	}
	if f.InviteCode != nil {
		if _, err := InviteCode(*f.InviteCode); err != nil {
			return err
		}
	}
	return Struct(f)
}

// Member validates a family membership.
func Member(m model.FamilyMember) error {
	if m.Nickname != nil {
		if _, err := Nickname(*m.Nickname); err != nil {
			return err
		}
	}
	return Struct(m)
}

// User validates a user record, including its optional email.
func User(u model.User) error {
	if _, err := DisplayName(u.DisplayName); err != nil {
		return err
	}
	if u.Email != nil {
		if _, err := Email(*u.Email); err != nil {
			return err
		}
	}
	return Struct(u)
}

// Thread requires a title and the thread's owning ids.
func Thread(t model.Thread) error {
	if _, err := NotEmptyString(t.Title); err != nil {
		return err
	}
	return Struct(t)
}

// Message validates the body, the attachments and the ids.
func Message(m model.Message) error {
	if _, err := MessageBody(m.Body); err != nil {
		return err
	}
	if err := Attachments(m.Attachments); err != nil {
		return err
	}
	return Struct(m)
}

// Topic validates title, description, date range and enums.
func Topic(t model.Topic) error {
	if _, err := TaskTitle(t.Title); err != nil {
		return err
	}
	if t.Description != nil {
		if _, err := TaskDescription(*t.Description); err != nil {
			return err
		}
	}
	if t.StartAt != nil && t.DueAt != nil {
		if _, _, err := DateRange(*t.StartAt, *t.DueAt); err != nil {
			return err
		}
	}
	return Struct(t)
}

// Notification checks the required ids and enum fields.
func Notification(n model.Notification) error {
	return Struct(n)
}
