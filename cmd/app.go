package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chrisdamba/foodbrowse/internal/factories"
	"github.com/chrisdamba/foodbrowse/internal/models"
	"github.com/chrisdamba/foodbrowse/internal/normalizer"
	"github.com/chrisdamba/foodbrowse/internal/source"
)

func mustLoadConfig() *models.Config {
	cfg, err := models.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func newMockSource(cfg models.UpstreamConfig) source.MockSource {
	if cfg.MockSource == "synthetic" {
		return factories.NewSyntheticMock(cfg)
	}
	return source.FixedMock{}
}

func newAdapter(cfg *models.Config) *source.Adapter {
	var upstream source.Upstream
	if !cfg.Upstream.Offline {
		upstream = source.NewHTTPUpstream(cfg.Upstream)
	}
	return source.NewAdapter(
		upstream,
		normalizer.New(cfg.Upstream),
		newMockSource(cfg.Upstream),
		cfg.Upstream.PageSize,
		cfg.Upstream.MockDelay,
	)
}

func newBrowser(cfg *models.Config, adapter *source.Adapter) *source.Browser {
	locator := source.StaticLocator{Lat: cfg.Upstream.DefaultLatitude, Lon: cfg.Upstream.DefaultLongitude}
	cities := source.HashCityResolver{Cities: cfg.Upstream.Cities, Delay: cfg.Upstream.CityLookupDelay}
	return source.NewBrowser(source.NewFeed(adapter), locator, cities, cfg.Upstream.LocationTimeout)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
