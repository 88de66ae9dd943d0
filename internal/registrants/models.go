package registrants

// Registrant is a user record created via the registration endpoint.
// Rows are never updated or deleted; the only write path is registration.
type Registrant struct {
	ID        uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name" gorm:"not null"`
	Email     string `json:"email" gorm:"uniqueIndex;not null"`
	Phone     string `json:"phone,omitempty"`
	Password  string `json:"-" gorm:"not null"` // stored verbatim; see README open issues
}

func (Registrant) TableName() string {
	return "registrants"
}
