package models

// RegisterData is the payload for registering a new organization together
// with its first admin user.
type RegisterData struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Age              int    `json:"age"`
	Password         string `json:"password"`
	Phone            string `json:"phone"`
	OrganizationName string `json:"organizationName"`
	Description      string `json:"description"`
}

// AuthResponse is what the API returns from login and registration.
type AuthResponse struct {
	Token        string `json:"token"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Email        string `json:"email"`
}

// Identity identifies the signed-in user.
type Identity struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
}

// Session is the client-side authentication state. A session with only a
// token or only an identity is not authenticated.
type Session struct {
	Identity *Identity
	Token    string
}

// Authenticated reports whether both the identity and the token are present.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Identity != nil
}
