package commands

import (
	"context"

	"github.com/ncobase/nasadmin/appliance"
	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/logging/logger"
	"github.com/ncobase/nasadmin/server"
)

// App is the dev server with its dependencies
type App struct {
	Logger *logger.Logger
	Store  *appliance.Store
	Server *server.Server
}

// NewApp creates the application
func NewApp(l *logger.Logger, store *appliance.Store, srv *server.Server) *App {
	return &App{Logger: l, Store: store, Server: srv}
}

// ProvideStore opens the record store
func ProvideStore(ctx context.Context, data *config.Data) (*appliance.Store, func(), error) {
	store, err := appliance.Open(ctx, data.SQLite)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

// ProvideServer creates the list server
func ProvideServer(cfg *config.Config, srvCfg *config.Server, l *logger.Logger, store *appliance.Store) *server.Server {
	return server.New(srvCfg, cfg.RunMode, l, store)
}
