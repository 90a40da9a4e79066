package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors converts a binding error into the {errors:[...]} body.
// messages maps a JSON field name to the message shown for any rule on it.
func ValidationErrors(err error, messages map[string]string) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errors("Invalid request body")
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		param := jsonName(fe.Field())
		msg, ok := messages[param]
		if !ok {
			msg = "Invalid value for " + param
		}
		out = append(out, FieldError{Msg: msg, Param: param})
	}
	return ErrorResponse{Errors: out}
}

// jsonName lower-cases a struct field name; request DTOs name their fields
// after the JSON keys.
func jsonName(field string) string {
	return strings.ToLower(field)
}
