// Package validate checks request fields against validator tags and
// reports the first failure as a validation error naming the wire field.
package validate

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/mmynk/tontine/internal/errs"
	"github.com/mmynk/tontine/internal/models"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

var (
	validate   *validator.Validate
	translator ut.Translator

	// custom validation tags
	notBlankTag  = "notblank"
	dateTag      = "date"
	frequencyTag = "frequency"
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	_ = validate.RegisterValidation(notBlankTag, notBlank)
	_ = validate.RegisterValidation(dateTag, isDate)
	_ = validate.RegisterValidation(frequencyTag, isFrequency)

	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, dateTag, frequencyTag} {
		_ = validate.RegisterTranslation(tag, translator, registerFn, translateCustom)
	}
}

// Field is one request field and the validator tag it must satisfy.
type Field struct {
	Name  string
	Value any
	Tag   string
}

// F returns a Field.
func F(name string, value any, tag string) Field {
	return Field{Name: name, Value: value, Tag: tag}
}

// Fields checks each field in order and returns an errs.Validation error
// for the first one that fails, or nil.
func Fields(op string, fields ...Field) error {
	for _, f := range fields {
		if err := validate.Var(f.Value, f.Tag); err != nil {
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				return errs.Validation(op, f.Name, "%s", strings.TrimSpace(verrs[0].Translate(translator)))
			}
			return errs.Validation(op, f.Name, "%v", err)
		}
	}
	return nil
}

// ParseDate parses a wire date for field. An empty string yields the zero
// time.
func ParseDate(op, field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errs.Validation(op, field, "must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// FormatDate formats t for the wire. The zero time yields "".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return "cannot be blank"
	case dateTag:
		return "must be a date in YYYY-MM-DD format"
	case frequencyTag:
		return "must be one of weekly, bi-weekly, monthly, quarterly"
	default:
		return ""
	}
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func isDate(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := time.Parse(DateLayout, str)
	return err == nil
}

func isFrequency(fl validator.FieldLevel) bool {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return models.Frequency(str).Valid()
}
