package domain

import "strings"

const (
	maxUserNameLen = 30
	maxEmailLen    = 30
)

// User is an account that owns zero or more orders. Deleting a user is
// destructive: every order it owns goes with it.
type User struct {
	ID       int64
	Name     string
	Email    string
	OrderIDs []int64
}

// NewUser builds a user from raw input, enforcing field invariants.
func NewUser(name, email string) (*User, error) {
	user := &User{
		Name:  strings.TrimSpace(name),
		Email: strings.TrimSpace(email),
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks field invariants and reports every violation per field.
func (u *User) Validate() error {
	verr := &ValidationError{}
	if u.Name == "" {
		verr.add("name", "name is required")
	} else if len(u.Name) > maxUserNameLen {
		verr.add("name", "name must be at most 30 characters")
	}
	switch {
	case u.Email == "":
		verr.add("email", "email is required")
	case !looksLikeEmail(u.Email):
		verr.add("email", "email must be a valid email address")
	case len(u.Email) > maxEmailLen:
		verr.add("email", "email must be at most 30 characters")
	}
	return verr.orNil()
}

func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return !strings.ContainsAny(email, " \t")
}
