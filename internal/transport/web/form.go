package web

import (
	"errors"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// formErrors is the inline feedback shown above and beside form fields.
type formErrors struct {
	Fields  map[string]string
	Message string
}

// Any reports whether there is anything to show.
func (f formErrors) Any() bool { return f.Message != "" || len(f.Fields) > 0 }

// newFormErrors maps a failed submission to inline feedback: field
// messages for a validation error, otherwise the backend message or
// fallback.
func newFormErrors(err error, fallback string) formErrors {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve.Errors))
		for _, fe := range ve.Errors {
			if _, ok := fields[fe.Field]; !ok {
				fields[fe.Field] = fe.Message
			}
		}
		return formErrors{Fields: fields}
	}
	return formErrors{Message: domain.ErrorMessage(err, fallback)}
}
