package registrants

// registration request payload
//
// Validation tags are evaluated in field order, so the first violated field
// is the one reported back to the client.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,name_chars"`
	LastName  string `json:"last_name" validate:"required,name_chars"`
	Email     string `json:"email" validate:"required,email_format"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,digits_only"`
	Password  string `json:"password" validate:"required,signup_password"`
}
