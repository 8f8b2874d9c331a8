// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService hashes and checks account passwords.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePassword reports domainerror.ErrWeakPassword, wrapped with the
	// failed rule, when password is unfit for the account identified by email.
	ValidatePassword(password, email string) error
}
