package registrants

import (
	"regexp"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ValidationError carries the single human-readable message for the first
// rule a registration payload violates.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	namePattern   = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ ]+$`)
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	digitsPattern = regexp.MustCompile(`^[0-9]+$`)

	// password policy pieces, checked together under the signup_password tag
	upperPattern  = regexp.MustCompile(`[A-Z]`)
	digitPattern  = regexp.MustCompile(`[0-9]`)
	symbolPattern = regexp.MustCompile(`[!@#$&*]`)
)

// NewValidator returns a validator with the registration rules registered.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterValidation("name_chars", func(fl validator.FieldLevel) bool {
		return namePattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("digits_only", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})
	v.RegisterValidation("signup_password", func(fl validator.FieldLevel) bool {
		pw := fl.Field().String()
		// Length is counted in characters, not bytes; accented letters
		// must not inflate a short password past the minimum.
		return utf8.RuneCountInString(pw) >= 8 &&
			upperPattern.MatchString(pw) &&
			digitPattern.MatchString(pw) &&
			symbolPattern.MatchString(pw)
	})

	return v
}

var jsonFieldNames = map[string]string{
	"FirstName": "first_name",
	"LastName":  "last_name",
	"Email":     "email",
	"Phone":     "phone",
	"Password":  "password",
}

const (
	msgRequired    = "Todos os campos obrigatórios devem ser preenchidos."
	msgEmailFormat = "O formato do email é inválido."
	msgDigitsOnly  = "O campo telefone deve conter apenas dígitos."
	msgPassword    = "A senha deve ter no mínimo 8 caracteres, incluindo uma letra maiúscula, um número e um símbolo (!@#$&*)."
)

// validationMessage maps a failed rule to its user-facing message.
func validationMessage(fe validator.FieldError) *ValidationError {
	field := jsonFieldNames[fe.StructField()]

	var msg string
	switch fe.Tag() {
	case "required":
		msg = msgRequired
	case "name_chars":
		msg = "O campo " + field + " deve conter apenas letras e espaços."
	case "email_format":
		msg = msgEmailFormat
	case "digits_only":
		msg = msgDigitsOnly
	case "signup_password":
		msg = msgPassword
	default:
		msg = "O campo " + field + " é inválido."
	}

	return &ValidationError{Field: field, Message: msg}
}

// validateRegister checks a registration payload against the field rules.
// Rules run in field declaration order and the first failure wins.
func validateRegister(v *validator.Validate, req *RegisterRequest) error {
	if err := v.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return validationMessage(errs[0])
		}
		return err
	}
	return nil
}
