package auth

import (
	"strings"
	"unicode/utf8"
)

// Field bounds mirror the registration form: names 3-20 runes, password 3-40.
const (
	NameMinLength     = 3
	NameMaxLength     = 20
	PasswordMinLength = 3
	PasswordMaxLength = 40
	EmailMaxLength    = 50
)

// ValidateEmail checks if an email has a valid format.
func ValidateEmail(email string) bool {
	if email == "" || utf8.RuneCountInString(email) > EmailMaxLength {
		return false
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

// ValidateName checks first/last name length bounds.
func ValidateName(name string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	return n >= NameMinLength && n <= NameMaxLength
}

// ValidatePassword checks password length bounds.
func ValidatePassword(password string) bool {
	n := utf8.RuneCountInString(password)
	return n >= PasswordMinLength && n <= PasswordMaxLength
}
