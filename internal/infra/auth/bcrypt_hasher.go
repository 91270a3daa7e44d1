// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strings"
	"unicode"

	"examhub/config"
	domainerrors "examhub/internal/domain/errors"
	"examhub/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt only looks at the first 72 bytes of the input.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// defaultPasswordPolicy is used when the configuration omits passwordStrength.
var defaultPasswordPolicy = config.PasswordStrengthConfig{
	MinLength:        8,
	MaxLength:        bcryptMaxPasswordBytes,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	policy := defaultPasswordPolicy
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}
	if policy.MaxLength <= 0 || policy.MaxLength > bcryptMaxPasswordBytes {
		policy.MaxLength = bcryptMaxPasswordBytes
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	if password == "" || hash == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	var problems []string

	if len(password) < h.policy.MinLength {
		problems = append(problems, "too short")
	}
	if len(password) > h.policy.MaxLength {
		problems = append(problems, "too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.policy.RequireUppercase && !hasUpper {
		problems = append(problems, "missing uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLower {
		problems = append(problems, "missing lowercase letter")
	}
	if h.policy.RequireNumbers && !hasNumber {
		problems = append(problems, "missing digit")
	}
	if h.policy.RequireSpecial && !hasSpecial {
		problems = append(problems, "missing special character")
	}

	if len(problems) > 0 {
		return domainerrors.ErrPasswordStrength.WithDetails(strings.Join(problems, ", "))
	}

	return nil
}
