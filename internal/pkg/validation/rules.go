package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Password acceptance policy. The symbol/uppercase requirements are
// deliberately zero; tighten here if the policy changes.
const (
	PasswordMinLength = 8
	PasswordMinLower  = 1
	PasswordMinDigits = 1
)

// PasswordRule validates the default password policy: minimum length,
// at least one lowercase letter and at least one digit.
func PasswordRule(fl validator.FieldLevel) bool {
	return CheckPasswordPolicy(fl.Field().String())
}

// CheckPasswordPolicy reports whether a password satisfies the policy
func CheckPasswordPolicy(password string) bool {
	if len(password) < PasswordMinLength {
		return false
	}

	lower, digits := 0, 0
	for _, char := range password {
		switch {
		case unicode.IsLower(char):
			lower++
		case unicode.IsDigit(char):
			digits++
		}
	}

	return lower >= PasswordMinLower && digits >= PasswordMinDigits
}

// RegisterRules installs the custom rules on gin's binding validator and
// makes validation errors report JSON field names instead of Go field names.
func RegisterRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator engine is not *validator.Validate")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v.RegisterValidation("password", PasswordRule)
}
