//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/rpsarena/internal/app"
	"github.com/zeusync/rpsarena/internal/config"
	"github.com/zeusync/rpsarena/internal/core/observability/log"
)

func InitializeApp(cfg *config.Config, logger log.Log) (*app.App, error) {
	wire.Build(app.ProviderSet)
	return nil, nil
}
