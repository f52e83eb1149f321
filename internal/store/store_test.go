package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/orgadmin/orgadmin-console/api/client"
	"github.com/orgadmin/orgadmin-console/api/services"
	"github.com/orgadmin/orgadmin-console/internal/localstore"
	"github.com/orgadmin/orgadmin-console/models"
)

// navSpy records navigation pushes.
type navSpy struct {
	paths []string
}

func (n *navSpy) Push(path string) {
	n.paths = append(n.paths, path)
}

func (n *navSpy) current() string {
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

// apiStub is a stub admin API holding mutable fixtures. The stores under
// test are expected to mirror it exactly after every successful mutation.
type apiStub struct {
	mu     sync.Mutex
	users  []models.User
	groups []models.Group

	failLogin bool
}

func (s *apiStub) router() *mux.Router {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/users/admin/login", s.login).Methods(http.MethodPost)
	api.HandleFunc("/organizations", s.register).Methods(http.MethodPost)
	api.HandleFunc("/users/admin", s.listUsers).Methods(http.MethodGet)
	api.HandleFunc("/users", s.createUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}", s.updateUser).Methods(http.MethodPut)
	api.HandleFunc("/users/{id}", s.deleteUser).Methods(http.MethodDelete)
	api.HandleFunc("/groups", s.listGroups).Methods(http.MethodGet)
	api.HandleFunc("/groups", s.createGroup).Methods(http.MethodPost)
	api.HandleFunc("/groups/{groupId}/members/{userId}", s.addMember).Methods(http.MethodPost)
	api.HandleFunc("/groups/{groupId}/members/{userId}", s.removeMember).Methods(http.MethodDelete)

	return r
}

func (s *apiStub) login(w http.ResponseWriter, r *http.Request) {
	if s.failLogin {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "invalid credentials"})
		return
	}

	var creds struct {
		Email string `json:"email"`
	}
	_ = json.NewDecoder(r.Body).Decode(&creds)

	_ = json.NewEncoder(w).Encode(models.AuthResponse{
		Token:        "t1",
		Name:         "Ann",
		Organization: "Org1",
		Email:        creds.Email,
	})
}

func (s *apiStub) register(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(models.AuthResponse{
		Token: "t-reg", Name: "Ann", Organization: "Org1", Email: "a@x.com",
	})
}

func (s *apiStub) listUsers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = json.NewEncoder(w).Encode(s.users)
}

func (s *apiStub) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	_ = json.NewDecoder(r.Body).Decode(&user)
	user.ID = uuid.NewString()

	s.mu.Lock()
	s.users = append(s.users, user)
	s.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(user)
}

func (s *apiStub) updateUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var partial models.User
	_ = json.NewDecoder(r.Body).Decode(&partial)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, user := range s.users {
		if user.ID == id {
			if partial.Name != "" {
				s.users[i].Name = partial.Name
			}
			if partial.Email != "" {
				s.users[i].Email = partial.Email
			}
			if partial.Type != "" {
				s.users[i].Type = partial.Type
			}
			_ = json.NewEncoder(w).Encode(s.users[i])
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "user not found"})
}

func (s *apiStub) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, user := range s.users {
		if user.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "user not found"})
}

func (s *apiStub) listGroups(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = json.NewEncoder(w).Encode(s.groups)
}

func (s *apiStub) createGroup(w http.ResponseWriter, r *http.Request) {
	var group models.Group
	_ = json.NewDecoder(r.Body).Decode(&group)
	group.ID = uuid.NewString()

	s.mu.Lock()
	s.groups = append(s.groups, group)
	s.mu.Unlock()

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(group)
}

func (s *apiStub) addMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, group := range s.groups {
		if group.ID == vars["groupId"] {
			if !group.IsMember(vars["userId"]) {
				s.groups[i].Members = append(s.groups[i].Members, vars["userId"])
			}
			_ = json.NewEncoder(w).Encode(s.groups[i])
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "group not found"})
}

func (s *apiStub) removeMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, group := range s.groups {
		if group.ID == vars["groupId"] {
			for j, member := range group.Members {
				if member == vars["userId"] {
					s.groups[i].Members = append(group.Members[:j], group.Members[j+1:]...)
					break
				}
			}
			_ = json.NewEncoder(w).Encode(s.groups[i])
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "group not found"})
}

// fixture wires stores against a stub API for one test.
type fixture struct {
	stub    *apiStub
	api     *client.Client
	nav     *navSpy
	storage *localstore.Memory
	session *SessionStore
	users   *UserStore
	groups  *GroupStore
}

func newFixture(t *testing.T, stub *apiStub) *fixture {
	t.Helper()

	server := httptest.NewServer(stub.router())
	t.Cleanup(server.Close)

	api := client.New(server.URL, "/api/v1")
	nav := &navSpy{}
	storage := localstore.NewMemory()

	session := NewSessionStore(services.NewAuthService(api), api, storage, nav)

	return &fixture{
		stub:    stub,
		api:     api,
		nav:     nav,
		storage: storage,
		session: session,
		users:   NewUserStore(services.NewUserService(api), session),
		groups:  NewGroupStore(services.NewGroupService(api)),
	}
}
