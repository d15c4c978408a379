package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// customValidations are the tags registered on top of the built-in ones,
// with their English messages.
var customValidations = []struct {
	tag     string
	fn      validator.Func
	message string
}{
	{
		tag:     "file",
		fn:      isReadableFile,
		message: "{0} must point to a readable phrase dictionary file",
	},
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, found := uni.GetTranslator(enLocale.Locale())
	if !found {
		return nil, nil, fmt.Errorf("translator for %s is not found", enLocale.Locale())
	}
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations > %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for _, custom := range customValidations {
		if err := validate.RegisterValidation(custom.tag, custom.fn); err != nil {
			return nil, nil, fmt.Errorf("validate.RegisterValidation(%s) > %w", custom.tag, err)
		}
		if err := validate.RegisterTranslation(custom.tag, trans, func(ut ut.Translator) error {
			return ut.Add(custom.tag, custom.message, true)
		}, func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(fe.Tag(), strings.TrimPrefix(fe.Namespace(), "Config."))
			return t
		}); err != nil {
			return nil, nil, fmt.Errorf("validate.RegisterTranslation(%s) > %w", custom.tag, err)
		}
	}

	return validate, trans, nil
}

// isReadableFile reports whether the field names a regular file that the
// owner can read.
func isReadableFile(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0o400 != 0
}
