// internal/domain/user/service.go
package user

import (
	"context"

	"github.com/your-org/shoponline-backend/internal/config"
	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
	"github.com/your-org/shoponline-backend/internal/pkg/auth"
)

// CartStore is the cart persistence the account component consumes for
// lazy cart provisioning.
type CartStore interface {
	HasCart(userID uint) (bool, error)
	CreateForUser(userID uint) error
}

// Service handles account business logic
type Service struct {
	repo            Repository
	carts           CartStore
	passwordManager *auth.PasswordManager
	verifier        auth.TokenVerifier
	config          *config.Config
}

// NewService creates a new user service
func NewService(repo Repository, carts CartStore, verifier auth.TokenVerifier, cfg *config.Config) *Service {
	return &Service{
		repo:            repo,
		carts:           carts,
		passwordManager: auth.NewPasswordManager(cfg),
		verifier:        verifier,
		config:          cfg,
	}
}

// SignupRequest represents user registration data
type SignupRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// DeleteRequest represents account deletion data
type DeleteRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// PasswordUpdateRequest represents a password change
type PasswordUpdateRequest struct {
	Email              string `json:"email" binding:"required,email"`
	CurrentPassword    string `json:"current_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required"`
	ConfirmNewPassword string `json:"confirm_new_password" binding:"required"`
}

// Response carries the public identity of an account
type Response struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// Signup creates a new account and provisions its cart.
func (s *Service) Signup(req *SignupRequest) (*Response, error) {
	if req.Password != req.ConfirmPassword {
		return nil, apperrors.Validation("Passwords do not match")
	}

	if _, err := s.repo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.Conflict("Email already registered")
	} else if apperrors.KindOf(err) != apperrors.KindNotFound {
		return nil, err
	}

	hashed, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	u := &User{
		Email:    req.Email,
		Password: hashed,
	}
	if err := s.repo.Create(u); err != nil {
		return nil, err
	}

	if err := s.EnsureCart(u.ID); err != nil {
		return nil, err
	}

	return &Response{ID: u.ID, Email: u.Email}, nil
}

// Login authenticates a user and makes sure their cart exists.
func (s *Service) Login(req *LoginRequest) (*Response, error) {
	u, err := s.authenticate(req.Email, req.Password, "Invalid email or password")
	if err != nil {
		return nil, err
	}

	if err := s.EnsureCart(u.ID); err != nil {
		return nil, err
	}

	return &Response{ID: u.ID, Email: u.Email}, nil
}

// GoogleLogin verifies a federated identity token, finds or creates the
// account for the verified email and makes sure its cart exists.
func (s *Service) GoogleLogin(ctx context.Context, token string) (*Response, error) {
	email, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, apperrors.Auth("Invalid token")
	}

	u, err := s.repo.FindByEmail(email)
	if apperrors.KindOf(err) == apperrors.KindNotFound {
		u = &User{Email: email} // no password set for federated accounts
		if err := s.repo.Create(u); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if err := s.EnsureCart(u.ID); err != nil {
		return nil, err
	}

	return &Response{ID: u.ID, Email: u.Email}, nil
}

// Delete removes the account and all data it owns after verifying the
// credentials. The cascade runs in one transaction and rolls back whole.
func (s *Service) Delete(req *DeleteRequest) error {
	u, err := s.authenticate(req.Email, req.Password, "Invalid email or password")
	if err != nil {
		return err
	}

	if err := s.repo.DeleteWithOwnedData(u.ID); err != nil {
		return apperrors.Internal("An error occurred while deleting the user", err)
	}
	return nil
}

// UpdatePassword overwrites the stored credential after verifying the
// current one.
func (s *Service) UpdatePassword(req *PasswordUpdateRequest) error {
	if req.NewPassword != req.ConfirmNewPassword {
		return apperrors.Validation("New passwords do not match")
	}

	u, err := s.authenticate(req.Email, req.CurrentPassword, "Invalid email or current password")
	if err != nil {
		return err
	}

	hashed, err := s.passwordManager.HashPassword(req.NewPassword)
	if err != nil {
		return apperrors.Validation(err.Error())
	}

	u.Password = hashed
	return s.repo.Save(u)
}

// EnsureCart lazily provisions the user's cart. Invoked from every account
// entry point so cart-touching operations can rely on the cart existing.
func (s *Service) EnsureCart(userID uint) error {
	has, err := s.carts.HasCart(userID)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	return s.carts.CreateForUser(userID)
}

// authenticate resolves the email/password pair to a user, collapsing
// unknown email and bad password into the same auth error.
func (s *Service) authenticate(email, password, message string) (*User, error) {
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, apperrors.Auth(message)
		}
		return nil, err
	}

	if err := s.passwordManager.VerifyPassword(password, u.Password); err != nil {
		return nil, apperrors.Auth(message)
	}
	return u, nil
}
