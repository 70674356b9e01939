package session

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// LoginInput holds the login form.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "Password is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RegisterInput holds the self-registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// Validate checks the confirmation first, then the password length.
func (i RegisterInput) Validate() error {
	if i.Password != i.Confirm {
		return domain.NewValidationError("confirm", "Passwords do not match")
	}
	if len(i.Password) < domain.MinPasswordLength {
		return domain.NewValidationError("password",
			fmt.Sprintf("Password must be at least %d characters", domain.MinPasswordLength))
	}

	var errs []domain.FieldError
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ProfileInput holds the profile form. Fields equal to the stored user are
// not sent.
type ProfileInput struct {
	Name  string
	Email string
}

// Validate validates the profile input.
func (i ProfileInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "Name is required"})
	}
	if strings.TrimSpace(i.Email) == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "Email is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// changes returns the fields of i that differ from u.
func (i ProfileInput) changes(u domain.User) domain.ProfileChanges {
	var c domain.ProfileChanges
	if name := strings.TrimSpace(i.Name); name != u.Name {
		c.Name = &name
	}
	if email := strings.TrimSpace(i.Email); email != u.Email {
		c.Email = &email
	}
	return c
}
