package user

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

var errShortPassword = fmt.Sprintf("Password must be at least %d characters", domain.MinPasswordLength)

// CreateInput holds the admin create-user form.
type CreateInput struct {
	Name     string
	Email    string
	Password string
	Role     domain.Role
}

// Validate validates the create input. The password length is measured
// after trimming.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}
	if len(strings.TrimSpace(i.Password)) < domain.MinPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: errShortPassword})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "Role must be admin or user"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the admin edit-user form. A blank Password keeps the
// current password.
type UpdateInput struct {
	Name     string
	Email    string
	Role     domain.Role
	Password string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}
	if pw := strings.TrimSpace(i.Password); pw != "" && len(pw) < domain.MinPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: errShortPassword})
	}
	if !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "Role must be admin or user"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// changes builds the request body; the password is omitted when blank.
func (i UpdateInput) changes() domain.UserChanges {
	c := domain.UserChanges{
		Name:  strings.TrimSpace(i.Name),
		Email: strings.TrimSpace(i.Email),
		Role:  i.Role,
	}
	if pw := strings.TrimSpace(i.Password); pw != "" {
		c.Password = &pw
	}
	return c
}
