package services

import (
	"encoding/json"
	"fmt"

	"github.com/orgadmin/orgadmin-console/api/client"
	"github.com/orgadmin/orgadmin-console/models"
)

// GroupService maps group calls onto the admin API.
type GroupService struct {
	API *client.Client
}

// NewGroupService creates a new instance of GroupService.
func NewGroupService(api *client.Client) *GroupService {
	return &GroupService{API: api}
}

// List retrieves all groups visible to the caller.
func (s *GroupService) List() ([]models.Group, error) {
	respBody, _, err := s.API.Get("/groups")
	if err != nil {
		return nil, err
	}

	var groups []models.Group
	if err := json.Unmarshal(respBody, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode group listing: %w", err)
	}

	return groups, nil
}

// Create submits a new group.
func (s *GroupService) Create(group models.Group) (models.Group, error) {
	var created models.Group

	respBody, _, err := s.API.Post("/groups", group)
	if err != nil {
		return created, err
	}

	if err := json.Unmarshal(respBody, &created); err != nil {
		return created, fmt.Errorf("failed to decode created group: %w", err)
	}

	return created, nil
}

// AddMember adds a user to a group.
func (s *GroupService) AddMember(groupID, userID string) error {
	_, _, err := s.API.Post(fmt.Sprintf("/groups/%s/members/%s", groupID, userID), nil)
	if err != nil {
		return fmt.Errorf("failed to add member to group: %w", err)
	}
	return nil
}

// RemoveMember removes a user from a group.
func (s *GroupService) RemoveMember(groupID, userID string) error {
	_, _, err := s.API.Delete(fmt.Sprintf("/groups/%s/members/%s", groupID, userID))
	if err != nil {
		return fmt.Errorf("failed to remove member from group: %w", err)
	}
	return nil
}
