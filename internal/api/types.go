// Package api defines the JSON shapes shared by every HTTP handler.
package api

// MessageResponse is the body of most non-validation failures and of
// plain acknowledgements.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// FieldError describes one rejected input field.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// ErrorResponse is returned for validation failures.
type ErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// TokenResponse carries a freshly issued identity token.
type TokenResponse struct {
	Token string `json:"token"`
}

// Errors builds an ErrorResponse with a single message.
func Errors(msg string) ErrorResponse {
	return ErrorResponse{Errors: []FieldError{{Msg: msg}}}
}

// InternalError is the generic 500 body.
var InternalError = MessageResponse{Msg: "Internal server error"}
