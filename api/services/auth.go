package services

import (
	"encoding/json"
	"fmt"

	"github.com/orgadmin/orgadmin-console/api/client"
	"github.com/orgadmin/orgadmin-console/models"
)

// AuthService maps authentication calls onto the admin API. It holds no
// state beyond the shared client.
type AuthService struct {
	API *client.Client
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(api *client.Client) *AuthService {
	return &AuthService{API: api}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an organization admin by email and password.
func (s *AuthService) Login(email, password string) (models.AuthResponse, error) {
	var auth models.AuthResponse

	respBody, _, err := s.API.Post("/users/admin/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return auth, err
	}

	if err := json.Unmarshal(respBody, &auth); err != nil {
		return auth, fmt.Errorf("failed to decode login response: %w", err)
	}

	return auth, nil
}

// Register creates a new organization together with its admin user.
func (s *AuthService) Register(data models.RegisterData) (models.AuthResponse, error) {
	var auth models.AuthResponse

	respBody, _, err := s.API.Post("/organizations", data)
	if err != nil {
		return auth, err
	}

	if err := json.Unmarshal(respBody, &auth); err != nil {
		return auth, fmt.Errorf("failed to decode registration response: %w", err)
	}

	return auth, nil
}
