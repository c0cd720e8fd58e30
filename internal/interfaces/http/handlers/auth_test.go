package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/shoponline-backend/internal/config"
	"github.com/your-org/shoponline-backend/internal/domain/user"
	"github.com/your-org/shoponline-backend/internal/pkg/apperrors"
)

type userStore struct {
	users  map[uint]*user.User
	nextID uint
}

func (s *userStore) Create(u *user.User) error {
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return apperrors.Conflict("Email already registered")
		}
	}
	s.nextID++
	u.ID = s.nextID
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *userStore) FindByEmail(email string) (*user.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("User not found")
}

func (s *userStore) FindByID(id uint) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	cp := *u
	return &cp, nil
}

func (s *userStore) Save(u *user.User) error {
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *userStore) Exists(id uint) (bool, error) {
	_, ok := s.users[id]
	return ok, nil
}

func (s *userStore) DeleteWithOwnedData(userID uint) error {
	delete(s.users, userID)
	return nil
}

type cartStore struct{ carts map[uint]bool }

func (s *cartStore) HasCart(userID uint) (bool, error) { return s.carts[userID], nil }
func (s *cartStore) CreateForUser(userID uint) error   { s.carts[userID] = true; return nil }

type tokenVerifier struct{ tokens map[string]string }

func (v *tokenVerifier) Verify(_ context.Context, token string) (string, error) {
	email, ok := v.tokens[token]
	if !ok {
		return "", apperrors.Auth("token verification failed")
	}
	return email, nil
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Security.BcryptCost = 4

	svc := user.NewService(
		&userStore{users: make(map[uint]*user.User)},
		&cartStore{carts: make(map[uint]bool)},
		&tokenVerifier{tokens: map[string]string{"good-token": "federated@example.com"}},
		cfg,
	)
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/signup/", h.Signup)
	r.POST("/login/", h.Login)
	r.POST("/google-login/", h.GoogleLogin)
	r.DELETE("/removeUser/", h.DeleteUser)
	r.PUT("/updatePassword/", h.UpdatePassword)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestSignupEndpoint(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/signup/", gin.H{
		"email":            "alice@example.com",
		"password":         "s3cret",
		"confirm_password": "s3cret",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "alice@example.com", body["email"])
	assert.NotNil(t, body["id"])
	assert.NotContains(t, w.Body.String(), "s3cret")
}

func TestSignupEndpointValidation(t *testing.T) {
	r := newAuthRouter(t)

	// Missing field is caught by binding.
	w := doJSON(t, r, http.MethodPost, "/signup/", gin.H{"email": "alice@example.com"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Mismatched confirmation is caught by the service.
	w = doJSON(t, r, http.MethodPost, "/signup/", gin.H{
		"email":            "alice@example.com",
		"password":         "one",
		"confirm_password": "two",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Passwords do not match", decode(t, w)["error"])
}

func TestSignupEndpointDuplicateEmail(t *testing.T) {
	r := newAuthRouter(t)
	signup := gin.H{
		"email":            "alice@example.com",
		"password":         "s3cret",
		"confirm_password": "s3cret",
	}

	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/signup/", signup).Code)

	w := doJSON(t, r, http.MethodPost, "/signup/", signup)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered", decode(t, w)["error"])
}

func TestLoginEndpoint(t *testing.T) {
	r := newAuthRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/signup/", gin.H{
		"email":            "alice@example.com",
		"password":         "s3cret",
		"confirm_password": "s3cret",
	}).Code)

	w := doJSON(t, r, http.MethodPost, "/login/", gin.H{
		"email":    "alice@example.com",
		"password": "s3cret",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Login successful", body["message"])
	assert.Equal(t, "alice@example.com", body["email"])

	w = doJSON(t, r, http.MethodPost, "/login/", gin.H{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w)["error"])
}

func TestGoogleLoginEndpoint(t *testing.T) {
	r := newAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/google-login/", gin.H{"token": "good-token"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "federated@example.com", decode(t, w)["email"])

	w = doJSON(t, r, http.MethodPost, "/google-login/", gin.H{"token": "forged"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decode(t, w)["error"])
}

func TestDeleteUserEndpoint(t *testing.T) {
	r := newAuthRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/signup/", gin.H{
		"email":            "alice@example.com",
		"password":         "s3cret",
		"confirm_password": "s3cret",
	}).Code)

	w := doJSON(t, r, http.MethodDelete, "/removeUser/", gin.H{
		"email":    "alice@example.com",
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User and associated data successfully deleted", decode(t, w)["message"])

	// Account is gone.
	w = doJSON(t, r, http.MethodPost, "/login/", gin.H{
		"email":    "alice@example.com",
		"password": "s3cret",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdatePasswordEndpoint(t *testing.T) {
	r := newAuthRouter(t)
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodPost, "/signup/", gin.H{
		"email":            "alice@example.com",
		"password":         "old-pass",
		"confirm_password": "old-pass",
	}).Code)

	w := doJSON(t, r, http.MethodPut, "/updatePassword/", gin.H{
		"email":                "alice@example.com",
		"current_password":     "old-pass",
		"new_password":         "new-pass",
		"confirm_new_password": "new-pass",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Password updated successfully", decode(t, w)["message"])

	w = doJSON(t, r, http.MethodPost, "/login/", gin.H{
		"email":    "alice@example.com",
		"password": "new-pass",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
