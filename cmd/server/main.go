package main

import (
	"flag"
	"os"

	"github.com/vruksha/storefront/internal/app"
	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/logger"
)

func main() {
	mode := flag.String("mode", string(app.ModeAll), "services to run: all, api or worker")
	flag.Parse()

	cfg := config.Load()

	if cfg.Server.Mode == "release" && cfg.JWT.SecretKey == "change-me-in-production" {
		logger.Errorw("refusing_to_start", "reason", "default jwt secret in release mode")
		os.Exit(1)
	}

	container, err := app.Bootstrap(cfg)
	if err != nil {
		logger.Errorw("bootstrap_failed", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	services := app.BuildServices(app.Mode(*mode), container)
	if len(services) == 0 {
		logger.Errorw("no_services_to_run", "mode", *mode)
		os.Exit(1)
	}

	if err := app.NewRunner(services...).Run(); err != nil {
		os.Exit(1)
	}
}
