// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"roster/config"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// forbiddenWords are substrings that make a password trivially guessable,
// regardless of its character classes.
var forbiddenWords = []string{"password", "admin", "roster"}

// defaultStrengthPolicy applies when no policy is configured.
var defaultStrengthPolicy = config.PasswordStrengthConfig{
	MinLength:        8,
	MaxLength:        128,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
	RequireSpecial:   true,
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := defaultStrengthPolicy
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength checks the plaintext password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}
	if h.policy.MaxLength > 0 && len(password) > h.policy.MaxLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}
	if h.policy.RequireUppercase && !containsClass(password, unicode.IsUpper) {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs at least one uppercase letter")
	}
	if h.policy.RequireLowercase && !containsClass(password, unicode.IsLower) {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs at least one lowercase letter")
	}
	if h.policy.RequireNumbers && !containsClass(password, unicode.IsDigit) {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs at least one number")
	}
	if h.policy.RequireSpecial && !containsSpecial(password) {
		return domainerrors.ErrPasswordStrength.WithDetails("password needs at least one special character")
	}
	if word, found := findForbiddenWord(password); found {
		return domainerrors.ErrPasswordStrength.WithDetails("password contains the forbidden word " + word)
	}

	return nil
}

func containsClass(s string, class func(rune) bool) bool {
	for _, r := range s {
		if class(r) {
			return true
		}
	}

	return false
}

func containsSpecial(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			return true
		}
	}

	return false
}

func findForbiddenWord(password string) (string, bool) {
	lowered := strings.ToLower(password)
	for _, word := range forbiddenWords {
		if strings.Contains(lowered, word) {
			return word, true
		}
	}

	return "", false
}
