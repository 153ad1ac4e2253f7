package di

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"carepulse/internal/common"
	"carepulse/internal/config"
	"carepulse/internal/dbmongo"
	"carepulse/internal/lifecycle"
	"carepulse/internal/router"
	"carepulse/internal/signal"
	"carepulse/internal/sos"
)

// Application aggregates the wired pipeline for the shell.
type Application struct {
	Config  *config.Config
	DB      *gorm.DB
	Mongo   *dbmongo.MongoClient
	Store   common.MessageStore
	Audit   common.DeliveryLog
	Signal  common.DeviceSignal
	Sink    *router.Sink
	Router  *router.Router
	Monitor *lifecycle.Monitor
	Fanout  *sos.Fanout
}

// Shutdown tears the pipeline down in dependency order.
func (app *Application) Shutdown() {
	app.Monitor.Stop()
	app.Router.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Mongo.Close(ctx); err != nil {
		log.Printf("di: mongo disconnect failed: %v", err)
	}
	if sqlDB, err := app.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func ProvideConfig() *config.Config {
	return config.Load()
}

func ProvideMessageStore(mc *dbmongo.MongoClient) common.MessageStore {
	return dbmongo.NewMessageStore(mc)
}

func ProvideDeviceSignal(cfg *config.Config) common.DeviceSignal {
	return signal.NewAdapter(cfg.Sos.RelayBaseURL, nil)
}

func ProvideSink() *router.Sink {
	return router.NewSink()
}

func ProvideRouter(
	cfg *config.Config,
	store common.MessageStore,
	deviceSignal common.DeviceSignal,
	audit common.DeliveryLog,
	sink *router.Sink,
) *router.Router {
	return router.New(store, deviceSignal, audit, sink, router.Config{
		UserID:            cfg.User.ID,
		RecencyWindow:     cfg.Pipeline.RecencyWindow,
		SeenTTL:           cfg.Pipeline.SeenTTL,
		AlwaysNotifyKinds: cfg.Pipeline.AlwaysNotifyKinds,
	})
}

func ProvideMonitor(cfg *config.Config, r *router.Router) *lifecycle.Monitor {
	return lifecycle.NewMonitor(cfg.Pipeline.ResumeSettleDelay, r.Rescan)
}

func ProvideFanout(cfg *config.Config, deviceSignal common.DeviceSignal, audit common.DeliveryLog) *sos.Fanout {
	return sos.NewFanout(deviceSignal, audit, sos.Config{
		DefaultCountryCode: cfg.Sos.DefaultCountryCode,
		LocationTimeout:    cfg.Sos.LocationTimeout,
		RelayAPIKey:        cfg.Sos.RelayAPIKey,
		RelayDeviceID:      cfg.Sos.RelayDeviceID,
	})
}
