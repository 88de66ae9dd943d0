package response

// MessageResponse is the body used for registration results and all error
// responses: a single human-readable message, no structured error codes.
type MessageResponse struct {
	Message string `json:"message"`
}
