//go:build wireinject
// +build wireinject

package commands

import (
	"context"

	"github.com/google/wire"
	"github.com/ncobase/nasadmin/config"
	"github.com/ncobase/nasadmin/logging/logger"
)

// InitializeApp wires the dev server from a loaded configuration.
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		logger.ProviderSet,
		ProvideStore,
		ProvideServer,
		NewApp,
	))
}
