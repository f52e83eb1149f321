package cmd

import (
	"github.com/orgadmin/orgadmin-console/api/client"
	"github.com/orgadmin/orgadmin-console/api/services"
	"github.com/orgadmin/orgadmin-console/internal/appconfig"
	"github.com/orgadmin/orgadmin-console/internal/localstore"
	"github.com/orgadmin/orgadmin-console/internal/navigation"
	"github.com/orgadmin/orgadmin-console/internal/store"
)

// app wires the client, services and stores together for one command run.
// The session is restored from the state database before any command acts.
type app struct {
	cfg     *appconfig.Config
	api     *client.Client
	nav     *navigation.Recorder
	guard   *navigation.Guard
	session *store.SessionStore
	users   *store.UserStore
	groups  *store.GroupStore
}

func newApp() (*app, error) {
	cfg, err := appconfig.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	storage, err := localstore.OpenFile(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	api := client.New(cfg.Host, cfg.BasePath)
	nav := &navigation.Recorder{}

	session := store.NewSessionStore(services.NewAuthService(api), api, storage, nav)

	return &app{
		cfg:     cfg,
		api:     api,
		nav:     nav,
		guard:   &navigation.Guard{Auth: session},
		session: session,
		users:   store.NewUserStore(services.NewUserService(api), session),
		groups:  store.NewGroupStore(services.NewGroupService(api)),
	}, nil
}
