//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"carepulse/internal/dbmongo"
	"carepulse/internal/dbmysql"
)

// This is just a declaration — wire will generate the real body
func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmysql.NewDeliveryLog,
		ProvideMessageStore,
		ProvideDeviceSignal,
		ProvideSink,
		ProvideRouter,
		ProvideMonitor,
		ProvideFanout,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
