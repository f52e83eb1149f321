package store

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/orgadmin/orgadmin-console/api/client"
	"github.com/orgadmin/orgadmin-console/api/services"
	"github.com/orgadmin/orgadmin-console/models"
)

// UserStore caches the organization's user listing. Every mutation goes
// through the service and then refetches the whole listing, so the cache
// always matches the server's view including server-assigned fields.
type UserStore struct {
	mu      sync.Mutex
	svc     *services.UserService
	session *SessionStore

	users   []models.User
	lastErr string
}

// NewUserStore creates a user store bound to the current session.
func NewUserStore(svc *services.UserService, session *SessionStore) *UserStore {
	return &UserStore{svc: svc, session: session}
}

// Fetch replaces the cache with the server's current listing. Safe to call
// repeatedly; a failed fetch leaves the last-known-good snapshot in place.
func (s *UserStore) Fetch() error {
	users, err := s.svc.List()
	if err != nil {
		s.record("failed to fetch users", err)
		return err
	}

	s.mu.Lock()
	s.users = users
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// Create submits a new user for the caller's organization, then refetches.
func (s *UserStore) Create(data models.NewUser) error {
	user := models.User{
		Name:     data.Name,
		Email:    data.Email,
		Password: data.Password,
		Type:     data.Type,
	}
	if identity := s.session.Current().Identity; identity != nil {
		user.OrganizationID = identity.Organization
	}

	if _, err := s.svc.Create(user); err != nil {
		s.record("failed to create user", err)
		return err
	}

	return s.Fetch()
}

// Update submits a partial update, then refetches. The partial is never
// applied optimistically.
func (s *UserStore) Update(id string, user models.User) error {
	if _, err := s.svc.Update(id, user); err != nil {
		s.record("failed to update user", err)
		return err
	}

	return s.Fetch()
}

// Delete removes a user, then refetches.
func (s *UserStore) Delete(id string) error {
	if err := s.svc.Delete(id); err != nil {
		s.record("failed to delete user", err)
		return err
	}

	return s.Fetch()
}

// ByID looks up a cached user by id.
func (s *UserStore) ByID(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, true
		}
	}
	return models.User{}, false
}

// All returns a snapshot of the cached listing.
func (s *UserStore) All() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.User, len(s.users))
	copy(snapshot, s.users)
	return snapshot
}

// Admins returns the cached users with the admin type.
func (s *UserStore) Admins() []models.User {
	return s.filter(models.UserTypeAdmin)
}

// Regulars returns the cached users with the regular type.
func (s *UserStore) Regulars() []models.User {
	return s.filter(models.UserTypeRegular)
}

func (s *UserStore) filter(userType string) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.User
	for _, user := range s.users {
		if user.Type == userType {
			matched = append(matched, user)
		}
	}
	return matched
}

// LastError returns the most recent failure message, or "" when the last
// action succeeded.
func (s *UserStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *UserStore) record(fallback string, err error) {
	message := fallback
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) && httpErr.Message != "" {
		message = httpErr.Message
	}

	s.mu.Lock()
	s.lastErr = message
	s.mu.Unlock()

	log.Error().Err(err).Msg(fallback)
}
