// Package navigation holds the console's route table and the guard that
// gates entry to each route based on session state.
package navigation

import "github.com/rs/zerolog/log"

// Route paths of the console.
const (
	RouteLogin     = "/login"
	RouteRegister  = "/register"
	RouteDashboard = "/dashboard"
	RouteUsers     = "/users"
	RouteGroups    = "/groups"
	RouteProfile   = "/profile"
	RouteNotFound  = "/not-found"
)

// Route describes one entry in the route table.
type Route struct {
	Path         string
	RequiresAuth bool
}

var routes = map[string]Route{
	RouteLogin:     {Path: RouteLogin, RequiresAuth: false},
	RouteRegister:  {Path: RouteRegister, RequiresAuth: false},
	RouteDashboard: {Path: RouteDashboard, RequiresAuth: true},
	RouteUsers:     {Path: RouteUsers, RequiresAuth: true},
	RouteGroups:    {Path: RouteGroups, RequiresAuth: true},
	RouteProfile:   {Path: RouteProfile, RequiresAuth: true},
	RouteNotFound:  {Path: RouteNotFound, RequiresAuth: false},
}

// Authenticator reports whether the current session is signed in.
type Authenticator interface {
	IsAuthenticated() bool
}

// Navigator receives navigation pushes from stores.
type Navigator interface {
	Push(path string)
}

// Guard resolves a requested path to the path that should actually be
// entered, given the session state.
type Guard struct {
	Auth Authenticator
}

// Resolve applies the guard rules: unknown paths land on the not-found
// route, protected routes redirect unauthenticated access to the login
// page, and an authenticated session is sent away from the auth pages to
// the dashboard.
func (g *Guard) Resolve(path string) string {
	route, ok := routes[path]
	if !ok {
		return RouteNotFound
	}

	authenticated := g.Auth.IsAuthenticated()

	if route.RequiresAuth && !authenticated {
		return RouteLogin
	}

	if authenticated && (route.Path == RouteLogin || route.Path == RouteRegister) {
		return RouteDashboard
	}

	return route.Path
}

// Recorder is a Navigator that remembers the most recent target. The CLI
// uses it to report where a browser client would have landed.
type Recorder struct {
	Current string
}

func (r *Recorder) Push(path string) {
	r.Current = path
	log.Debug().Str("path", path).Msg("navigated")
}
