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

// customValidations are the tags vocup adds on top of the built-in ones,
// keyed by tag with their English message.
var customValidations = map[string]struct {
	fn      validator.Func
	message string
}{
	"file": {fn: isFileReadable, message: "{0} must be an existing and readable file"},
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	// report fields by their config key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	for tag, custom := range customValidations {
		if err := validate.RegisterValidation(tag, custom.fn); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
		if err := validate.RegisterTranslation(tag, trans, registerMessage(tag, custom.message), translateKey); err != nil {
			return nil, nil, fmt.Errorf("failed to register %s translation: %w", tag, err)
		}
	}
	return validate, trans, nil
}

func registerMessage(tag, message string) validator.RegisterTranslationsFunc {
	return func(ut ut.Translator) error {
		return ut.Add(tag, message, true)
	}
}

// translateKey renders the message with the dotted config key, e.g. templates.markdown_template.
func translateKey(ut ut.Translator, fe validator.FieldError) string {
	key := fe.Namespace()
	if _, after, ok := strings.Cut(key, "."); ok {
		key = after
	}
	t, _ := ut.T(fe.Tag(), key)
	return t
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	// owner read permission
	return info.Mode().Perm()&0o400 != 0
}
