package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Role is the account role assigned by the backend.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

// MinPasswordLength is the shortest password accepted by any form.
const MinPasswordLength = 6

// User is an account as returned by the backend. Passwords are write-only
// and never appear here.
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      Role       `json:"role"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// Initials returns the upper-cased first letters of the first two words
// of the user's name.
func (u User) Initials() string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(u.Name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		n++
		if n == 2 {
			break
		}
	}
	return b.String()
}

// Session is an authenticated browser session: the backend bearer token
// and the user it was issued for.
type Session struct {
	ID        string
	Token     string
	User      User
	ExpiresAt time.Time
}

// IsExpired returns true if the session has expired relative to now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !s.ExpiresAt.After(now)
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the self-registration request body.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// AuthResult is the backend reply to a successful login or registration.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileChanges carries only the fields the user changed on their profile.
type ProfileChanges struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// IsEmpty reports whether no field changed.
func (p ProfileChanges) IsEmpty() bool {
	return p.Name == nil && p.Email == nil
}

// NewUserPayload is the admin create-user request body.
type NewUserPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UserChanges is the admin update-user request body. Password is omitted
// when nil, meaning "keep the current password".
type UserChanges struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Role     Role    `json:"role"`
	Password *string `json:"password,omitempty"`
}
