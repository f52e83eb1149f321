package store

import (
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/orgadmin/orgadmin-console/api/client"
	"github.com/orgadmin/orgadmin-console/api/services"
	"github.com/orgadmin/orgadmin-console/models"
)

// Domain errors raised by group mutations before any network call.
var (
	ErrGroupNotFound = errors.New("group not found")
	ErrAdminRemove   = errors.New("cannot remove the group admin; change the admin first")
	ErrNotAMember    = errors.New("new admin must be a member of the group")
)

// GroupStore caches the organization's groups and enforces the relational
// invariant that a group's admin is always one of its members. Invariant
// checks run against the cache before any request is made.
type GroupStore struct {
	mu  sync.Mutex
	svc *services.GroupService

	groups  []models.Group
	lastErr string
}

// NewGroupStore creates a group store.
func NewGroupStore(svc *services.GroupService) *GroupStore {
	return &GroupStore{svc: svc}
}

// Fetch replaces the cache with the server's current listing.
func (s *GroupStore) Fetch() error {
	groups, err := s.svc.List()
	if err != nil {
		s.record("failed to fetch groups", err)
		return err
	}

	s.mu.Lock()
	s.groups = groups
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// Create submits a new group whose member set starts with its admin, then
// refetches.
func (s *GroupStore) Create(data models.NewGroup) error {
	group := models.Group{
		Name:        data.Name,
		Description: data.Description,
		AdminID:     data.AdminID,
		Members:     []string{data.AdminID},
	}

	if _, err := s.svc.Create(group); err != nil {
		s.record("failed to create group", err)
		return err
	}

	return s.Fetch()
}

// AddMember adds a user to a group. Adding an existing member is a no-op;
// the member set never holds duplicates.
func (s *GroupStore) AddMember(groupID, userID string) error {
	group, ok := s.ByID(groupID)
	if !ok {
		return s.reject(ErrGroupNotFound)
	}

	if group.IsMember(userID) {
		return nil
	}

	if err := s.svc.AddMember(groupID, userID); err != nil {
		s.record("failed to add user to group", err)
		return err
	}

	return s.Fetch()
}

// RemoveMember removes a user from a group. The current admin cannot be
// removed; the admin must be changed first. Removing a non-member is a
// no-op.
func (s *GroupStore) RemoveMember(groupID, userID string) error {
	group, ok := s.ByID(groupID)
	if !ok {
		return s.reject(ErrGroupNotFound)
	}

	if group.AdminID == userID {
		return s.reject(ErrAdminRemove)
	}

	if !group.IsMember(userID) {
		return nil
	}

	if err := s.svc.RemoveMember(groupID, userID); err != nil {
		s.record("failed to remove user from group", err)
		return err
	}

	return s.Fetch()
}

// ChangeAdmin transfers the group's admin role to an existing member. The
// transfer never implicitly adds membership, and the member set is left
// unchanged.
func (s *GroupStore) ChangeAdmin(groupID, newAdminID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexLocked(groupID)
	if index < 0 {
		s.lastErr = ErrGroupNotFound.Error()
		return ErrGroupNotFound
	}

	if !s.groups[index].IsMember(newAdminID) {
		s.lastErr = ErrNotAMember.Error()
		return ErrNotAMember
	}

	s.groups[index].AdminID = newAdminID
	s.lastErr = ""
	return nil
}

// Delete removes a group from the cache. Unknown ids are rejected before
// anything is touched.
func (s *GroupStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexLocked(id)
	if index < 0 {
		s.lastErr = ErrGroupNotFound.Error()
		return ErrGroupNotFound
	}

	s.groups = append(s.groups[:index], s.groups[index+1:]...)
	s.lastErr = ""
	return nil
}

// ByID looks up a cached group by id.
func (s *GroupStore) ByID(id string) (models.Group, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexLocked(id)
	if index < 0 {
		return models.Group{}, false
	}
	return copyGroup(s.groups[index]), true
}

// All returns a snapshot of the cached groups.
func (s *GroupStore) All() []models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.Group, 0, len(s.groups))
	for _, group := range s.groups {
		snapshot = append(snapshot, copyGroup(group))
	}
	return snapshot
}

// GroupsFor returns the groups where the user is the admin or a member.
func (s *GroupStore) GroupsFor(userID string) []models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.Group
	for _, group := range s.groups {
		if group.AdminID == userID || group.IsMember(userID) {
			matched = append(matched, copyGroup(group))
		}
	}
	return matched
}

// AdminGroupsFor returns only the groups the user administers.
func (s *GroupStore) AdminGroupsFor(userID string) []models.Group {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []models.Group
	for _, group := range s.groups {
		if group.AdminID == userID {
			matched = append(matched, copyGroup(group))
		}
	}
	return matched
}

// LastError returns the most recent failure message, or "" when the last
// action succeeded.
func (s *GroupStore) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *GroupStore) indexLocked(id string) int {
	for i, group := range s.groups {
		if group.ID == id {
			return i
		}
	}
	return -1
}

func copyGroup(group models.Group) models.Group {
	members := make([]string, len(group.Members))
	copy(members, group.Members)
	group.Members = members
	return group
}

// reject records a domain-invariant violation and returns it. Nothing has
// been sent to the server when reject is reached.
func (s *GroupStore) reject(err error) error {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()

	log.Debug().Err(err).Msg("group mutation rejected")
	return err
}

func (s *GroupStore) record(fallback string, err error) {
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
