// internal/pkg/auth/password.go
package auth

import (
	"fmt"

	"github.com/your-org/shoponline-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// PasswordManager handles password operations
type PasswordManager struct {
	config *config.Config
}

// NewPasswordManager creates a new password manager
func NewPasswordManager(cfg *config.Config) *PasswordManager {
	return &PasswordManager{
		config: cfg,
	}
}

// HashPassword hashes a password using bcrypt
func (p *PasswordManager) HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password must not be empty")
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), p.config.Security.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashedBytes), nil
}

// VerifyPassword verifies a password against its hash. Accounts created
// through federated login have no stored hash and never match.
func (p *PasswordManager) VerifyPassword(password, hash string) error {
	if hash == "" {
		return fmt.Errorf("no password set for account")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
