package service

// PasswordHasher hashes and verifies account credentials.
type PasswordHasher interface {
	// Hash validates the password strength and returns its one-way hash.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength enforces the configured password policy.
	ValidatePasswordStrength(password string) error
}
