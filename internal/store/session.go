// Package store holds the client-side entity stores. Each store mirrors one
// server resource: it caches the last-fetched collection, performs mutations
// through the resource services and resynchronizes the cache afterwards.
// Actions return their outcome to the caller; the store additionally records
// the last failure message for display.
package store

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/orgadmin/orgadmin-console/api/client"
	"github.com/orgadmin/orgadmin-console/api/services"
	"github.com/orgadmin/orgadmin-console/internal/authn"
	"github.com/orgadmin/orgadmin-console/internal/localstore"
	"github.com/orgadmin/orgadmin-console/internal/navigation"
	"github.com/orgadmin/orgadmin-console/models"
)

// Keys owned by the session in local storage. Logout removes exactly these.
const (
	sessionKeyPrefix = "session/"
	keyToken         = sessionKeyPrefix + "token"
	keyIdentity      = sessionKeyPrefix + "identity"
)

// SessionStore owns the authentication state: the signed-in identity and the
// bearer token. Both are persisted to local storage and restored verbatim on
// the next run; the token is never re-validated client-side.
type SessionStore struct {
	mu      sync.Mutex
	auth    *services.AuthService
	api     *client.Client
	storage localstore.Store
	nav     navigation.Navigator

	session models.Session
	lastErr string
}

// NewSessionStore creates the session store and restores any persisted
// session.
func NewSessionStore(auth *services.AuthService, api *client.Client, storage localstore.Store, nav navigation.Navigator) *SessionStore {
	s := &SessionStore{auth: auth, api: api, storage: storage, nav: nav}
	s.restore()
	return s
}

// Login authenticates against the API. On success the session is stored and
// persisted and navigation moves to the dashboard; on failure the session
// stays unauthenticated.
func (s *SessionStore) Login(email, password string) error {
	resp, err := s.auth.Login(email, password)
	if err != nil {
		s.record("failed to login", err)
		return err
	}

	identity := identityFromResponse(resp)

	s.mu.Lock()
	s.session = models.Session{Identity: &identity, Token: resp.Token}
	s.lastErr = ""
	s.mu.Unlock()

	s.api.Token = resp.Token
	s.persist()
	s.nav.Push(navigation.RouteDashboard)
	return nil
}

// Register creates a new organization with its admin. The caller must log in
// afterwards; registration never authenticates the session.
func (s *SessionStore) Register(data models.RegisterData) error {
	if _, err := s.auth.Register(data); err != nil {
		s.record("failed to register", err)
		return err
	}

	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()

	s.nav.Push(navigation.RouteLogin)
	return nil
}

// Logout clears the session and removes only the session-owned keys from
// local storage, then navigates to the login page.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.session = models.Session{}
	s.lastErr = ""
	s.mu.Unlock()

	s.api.Token = ""

	keys, err := s.storage.Keys(sessionKeyPrefix)
	if err != nil {
		log.Error().Err(err).Msg("failed to list persisted session keys")
	}
	for _, key := range keys {
		if err := s.storage.Delete(key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to clear persisted session key")
		}
	}

	s.nav.Push(navigation.RouteLogin)
}

// IsAuthenticated reports whether both identity and token are present. A
// partial session never counts as authenticated.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Authenticated()
}

// Current returns a copy of the session state.
func (s *SessionStore) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.session
	if s.session.Identity != nil {
		identity := *s.session.Identity
		current.Identity = &identity
	}
	return current
}

// LastError returns the most recent failure message, or "" when the last
// action succeeded.
func (s *SessionStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *SessionStore) record(fallback string, err error) {
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

func (s *SessionStore) persist() {
	current := s.Current()

	if err := s.storage.Set(keyToken, current.Token); err != nil {
		log.Error().Err(err).Msg("failed to persist session token")
		return
	}

	encoded, err := json.Marshal(current.Identity)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode session identity")
		return
	}
	if err := s.storage.Set(keyIdentity, string(encoded)); err != nil {
		log.Error().Err(err).Msg("failed to persist session identity")
	}
}

// restore loads the persisted session, if any. The stored values are trusted
// verbatim; an expired token surfaces as a failed API call later.
func (s *SessionStore) restore() {
	token, ok, err := s.storage.Get(keyToken)
	if err != nil || !ok || token == "" {
		return
	}

	encoded, ok, err := s.storage.Get(keyIdentity)
	if err != nil || !ok {
		return
	}

	var identity models.Identity
	if err := json.Unmarshal([]byte(encoded), &identity); err != nil {
		log.Error().Err(err).Msg("failed to decode persisted session identity")
		return
	}

	s.mu.Lock()
	s.session = models.Session{Identity: &identity, Token: token}
	s.mu.Unlock()

	s.api.Token = token
}

// identityFromResponse prefers the claims embedded in the token and falls
// back to the response fields for non-JWT tokens.
func identityFromResponse(resp models.AuthResponse) models.Identity {
	if claims, err := authn.ParseClaims(resp.Token); err == nil && claims.Name != "" {
		identity := models.Identity{
			Name:         claims.Name,
			Email:        claims.Email,
			Organization: claims.Organization,
		}
		if identity.Organization == "" {
			identity.Organization = resp.Organization
		}
		return identity
	}

	return models.Identity{
		Name:         resp.Name,
		Email:        resp.Email,
		Organization: resp.Organization,
	}
}

var _ navigation.Authenticator = (*SessionStore)(nil)
