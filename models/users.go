package models

// User type values as reported by the directory API.
const (
	UserTypeAdmin   = "admin"
	UserTypeRegular = "user"
)

// User represents a member of the organization's directory.
type User struct {
	ID             string `json:"id,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password,omitempty"`
	Type           string `json:"type"`
	OrganizationID string `json:"organizationId,omitempty"`
	IsOnline       bool   `json:"isOnline,omitempty"`
	Status         string `json:"status,omitempty"`
	LastSeen       string `json:"lastSeen,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

// NewUser is the input for creating a directory user. It is never cached;
// the server-assigned User is fetched back after creation.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Type     string `json:"type"`
}
