package services

import (
	"encoding/json"
	"fmt"

	"github.com/orgadmin/orgadmin-console/api/client"
	"github.com/orgadmin/orgadmin-console/models"
)

// UserService maps user directory calls onto the admin API.
type UserService struct {
	API *client.Client
}

// NewUserService creates a new instance of UserService.
func NewUserService(api *client.Client) *UserService {
	return &UserService{API: api}
}

// List retrieves the organization's full user listing.
func (s *UserService) List() ([]models.User, error) {
	respBody, _, err := s.API.Get("/users/admin")
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal(respBody, &users); err != nil {
		return nil, fmt.Errorf("failed to decode user listing: %w", err)
	}

	return users, nil
}

// Get retrieves a single user by id.
func (s *UserService) Get(id string) (models.User, error) {
	var user models.User

	respBody, _, err := s.API.Get(fmt.Sprintf("/users/%s", id))
	if err != nil {
		return user, err
	}

	if err := json.Unmarshal(respBody, &user); err != nil {
		return user, fmt.Errorf("failed to decode user: %w", err)
	}

	return user, nil
}

// Create submits a new user. Server-assigned fields (id, timestamps) are
// only visible on the next listing.
func (s *UserService) Create(user models.User) (models.User, error) {
	var created models.User

	respBody, _, err := s.API.Post("/users", user)
	if err != nil {
		return created, err
	}

	if err := json.Unmarshal(respBody, &created); err != nil {
		return created, fmt.Errorf("failed to decode created user: %w", err)
	}

	return created, nil
}

// Update submits a partial update for the user with the given id.
func (s *UserService) Update(id string, user models.User) (models.User, error) {
	var updated models.User

	respBody, _, err := s.API.Put(fmt.Sprintf("/users/%s", id), user)
	if err != nil {
		return updated, err
	}

	if err := json.Unmarshal(respBody, &updated); err != nil {
		return updated, fmt.Errorf("failed to decode updated user: %w", err)
	}

	return updated, nil
}

// Delete removes the user with the given id.
func (s *UserService) Delete(id string) error {
	_, _, err := s.API.Delete(fmt.Sprintf("/users/%s", id))
	return err
}
