package main

import (
	"fmt"

	"github.com/MKhiriev/reva-widget/internal/adapter"
	"github.com/MKhiriev/reva-widget/internal/config"
	handler "github.com/MKhiriev/reva-widget/internal/handler/http"
	"github.com/MKhiriev/reva-widget/internal/logger"
	"github.com/MKhiriev/reva-widget/internal/server"
	"github.com/MKhiriev/reva-widget/internal/settings"
	"github.com/MKhiriev/reva-widget/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("widgetd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	store, err := setupSettings(cfg.Widget, log.WithComponent("settings"))
	if err != nil {
		log.Fatal().Err(err).Msg("error applying widget options")
	}
	log.Info().Str("sparcApi", store.UseConfig().SparcAPI()).Msg("widget settings ready")

	sparc, err := adapter.NewSparcAdapter(store, cfg.Sparc, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating sparc adapter")
	}

	h := handler.NewHandler(store, sparc, buildInfo, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}

// setupSettings prepares the process-wide settings store for the host: it
// attaches l, reports an environment load failure and applies the startup
// widget options. The returned store is always settings.Default().
func setupSettings(widget map[string]any, l *logger.Logger) (*settings.Store, error) {
	settings.SetLogger(l)
	if err := settings.DefaultLoadError(); err != nil {
		l.Warn().Err(err).Msg("settings defaults fell back to built-in values")
	}

	store := settings.Default()
	if widget != nil {
		if err := store.ConfigureAny(widget); err != nil {
			return nil, err
		}
	}

	return store, nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
