package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"carepulse/internal/channel"
	"carepulse/internal/dbmysql"
	"carepulse/internal/di"
)

func main() {
	log.Println("Starting alertd...")

	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Shutdown()

	if err := app.DB.AutoMigrate(&dbmysql.DeliveryRecord{}, &dbmysql.SosRecord{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if app.Config.User.ID == "" {
		log.Fatal("USER_ID is required")
	}
	for _, peer := range app.Config.User.PeerIDs {
		chID := channel.ID(app.Config.User.ID, peer)
		if err := app.Router.Attach(context.Background(), chID); err != nil {
			log.Fatalf("Failed to attach channel %s: %v", chID, err)
		}
	}

	r := mux.NewRouter()
	registerRoutes(r, app)

	srv := &http.Server{
		Addr:         app.Config.Server.Host + ":" + app.Config.Server.Port,
		Handler:      r,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("alertd listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down alertd...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}
	log.Println("alertd stopped")
}
