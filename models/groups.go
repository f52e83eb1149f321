package models

// Group represents a group in the organization. AdminID is always present
// in Members; the group store enforces this at mutation time.
type Group struct {
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	AdminID        string   `json:"adminId"`
	OrganizationID string   `json:"organizationId,omitempty"`
	Members        []string `json:"members"`
	CreatedAt      string   `json:"createdAt,omitempty"`
	UpdatedAt      string   `json:"updatedAt,omitempty"`
}

// IsMember reports whether userID is in the group's member set.
func (g Group) IsMember(userID string) bool {
	for _, id := range g.Members {
		if id == userID {
			return true
		}
	}
	return false
}

// NewGroup is the input for creating a group.
type NewGroup struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AdminID     string `json:"adminId"`
}
