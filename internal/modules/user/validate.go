package user

import (
	"strings"
	"unicode"

	"filmorate/internal/domain"
)

// validateUser checks field rules in a fixed order, first failure
// wins. Defaulting a blank name to the login is part of the contract:
// callers rely on name never being blank after validation.
func validateUser(u *domain.User) error {
	if err := validateEmail(u.Email); err != nil {
		return err
	}
	if err := validateLogin(u.Login); err != nil {
		return err
	}
	if strings.TrimSpace(u.Name) == "" {
		u.Name = u.Login
	}
	if u.Birthday.IsZero() {
		return &domain.ValidationError{Field: "birthday", Reason: "is required"}
	}
	if u.Birthday.After(domain.Today()) {
		return &domain.ValidationError{Field: "birthday", Reason: "must not be in the future"}
	}
	return nil
}

func validateEmail(email string) error {
	switch {
	case strings.TrimSpace(email) == "":
		return &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	case !strings.Contains(email, "@"):
		return &domain.ValidationError{Field: "email", Reason: "must contain @"}
	case containsSpace(email):
		return &domain.ValidationError{Field: "email", Reason: "must not contain whitespace"}
	case len(email) < 2:
		return &domain.ValidationError{Field: "email", Reason: "is too short"}
	}
	return nil
}

func validateLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return &domain.ValidationError{Field: "login", Reason: "must not be empty"}
	}
	if containsSpace(login) {
		return &domain.ValidationError{Field: "login", Reason: "must not contain whitespace"}
	}
	return nil
}

func containsSpace(s string) bool {
	return strings.ContainsFunc(s, unicode.IsSpace)
}
