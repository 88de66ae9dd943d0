package registrants

// RegistrantResponse is the projection returned by the lookup endpoints.
// Phone and password are intentionally left out of this projection.
type RegistrantResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}
