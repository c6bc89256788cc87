package lib

import (
	"errors"
	"strings"
	"unicode"
)

// PasswordPolicy validates a candidate password against one rule.
// Context carries the user attributes a password must not resemble.
type PasswordPolicy interface {
	Validate(password string, userCtx PasswordContext) error
}

// PasswordContext holds user attributes checked by similarity rules
type PasswordContext struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

var (
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrPasswordNumeric    = errors.New("password cannot be entirely numeric")
	ErrPasswordTooCommon  = errors.New("password is too common")
	ErrPasswordTooSimilar = errors.New("password is too similar to your personal information")
)

// DefaultPasswordPolicies is the chain applied at registration
var DefaultPasswordPolicies = []PasswordPolicy{
	MinLengthPolicy{Min: 8},
	NotNumericPolicy{},
	NotCommonPolicy{},
	NotSimilarPolicy{},
}

// ValidatePassword runs the candidate through every policy in the chain,
// returning the first violation.
func ValidatePassword(password string, userCtx PasswordContext) error {
	for _, policy := range DefaultPasswordPolicies {
		if err := policy.Validate(password, userCtx); err != nil {
			return err
		}
	}
	return nil
}

type MinLengthPolicy struct {
	Min int
}

func (p MinLengthPolicy) Validate(password string, _ PasswordContext) error {
	if len(password) < p.Min {
		return ErrPasswordTooShort
	}
	return nil
}

type NotNumericPolicy struct{}

func (NotNumericPolicy) Validate(password string, _ PasswordContext) error {
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return nil
		}
	}
	return ErrPasswordNumeric
}

type NotCommonPolicy struct{}

var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"letmein1":    {},
	"iloveyou":    {},
	"sunshine":    {},
	"football":    {},
	"baseball":    {},
	"welcome1":    {},
	"admin123":    {},
	"dragon123":   {},
	"monkey123":   {},
	"abc12345":    {},
	"passw0rd":    {},
	"trustno1":    {},
}

func (NotCommonPolicy) Validate(password string, _ PasswordContext) error {
	if _, found := commonPasswords[strings.ToLower(password)]; found {
		return ErrPasswordTooCommon
	}
	return nil
}

type NotSimilarPolicy struct{}

func (NotSimilarPolicy) Validate(password string, userCtx PasswordContext) error {
	lower := strings.ToLower(password)

	attributes := []string{
		userCtx.Username,
		userCtx.FirstName,
		userCtx.LastName,
	}
	if at := strings.IndexByte(userCtx.Email, '@'); at > 0 {
		attributes = append(attributes, userCtx.Email[:at])
	} else {
		attributes = append(attributes, userCtx.Email)
	}

	for _, attr := range attributes {
		attr = strings.ToLower(strings.TrimSpace(attr))
		if len(attr) < 3 {
			continue
		}
		if strings.Contains(lower, attr) || strings.Contains(attr, lower) {
			return ErrPasswordTooSimilar
		}
	}

	return nil
}
