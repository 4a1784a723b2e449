package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/simp-lee/gateadmin/internal/config"
	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/module/gate"
	"github.com/simp-lee/gateadmin/internal/module/gateuser"
	"github.com/simp-lee/gateadmin/internal/module/resource"
	"github.com/simp-lee/gateadmin/internal/module/station"
	"github.com/simp-lee/gateadmin/internal/module/trip"
	"github.com/simp-lee/gateadmin/internal/query"
	"github.com/simp-lee/gateadmin/internal/seed"
)

// loadDataset migrates the fixture tables, seeds the demo dataset when
// enabled, and reads everything back.
func loadDataset(ctx context.Context, cfg *config.Config, db *gorm.DB, log *slog.Logger) (seed.Dataset, error) {
	seeder := seed.NewSeeder(db, log)

	if err := seeder.Migrate(ctx); err != nil {
		return seed.Dataset{}, fmt.Errorf("auto migrate: %w", err)
	}

	if cfg.Seed.Demo {
		if _, err := seeder.SeedIfEmpty(ctx, seed.Generate(cfg.Seed, time.Now())); err != nil {
			return seed.Dataset{}, fmt.Errorf("seed demo data: %w", err)
		}
	}

	data, err := seeder.Load(ctx)
	if err != nil {
		return seed.Dataset{}, fmt.Errorf("load fixtures: %w", err)
	}
	return data, nil
}

// buildModules constructs one controller, handler and module per entity kind.
func buildModules(cfg *config.Config, data seed.Dataset, log *slog.Logger, rec resource.Recorder) ([]Module, error) {
	copts := []query.Option{
		query.WithPageSize(cfg.Query.DefaultPageSize),
		query.WithLogger(log),
	}
	hopts := []resource.HandlerOption{
		resource.WithMaxPageSize(cfg.Query.MaxPageSize),
		resource.WithRecorder(rec),
		resource.WithLogger(log),
	}

	stations, err := station.NewController(data.Stations, copts...)
	if err != nil {
		return nil, fmt.Errorf("station controller: %w", err)
	}
	gates, err := gate.NewController(data.Gates, copts...)
	if err != nil {
		return nil, fmt.Errorf("gate controller: %w", err)
	}
	users, err := gateuser.NewController(data.Users, copts...)
	if err != nil {
		return nil, fmt.Errorf("gate user controller: %w", err)
	}
	trips, err := trip.NewController(data.Trips, copts...)
	if err != nil {
		return nil, fmt.Errorf("trip controller: %w", err)
	}

	return []Module{
		station.NewModule(resource.NewHandler[domain.Station, station.Request](stations, hopts...)),
		gate.NewModule(resource.NewHandler[domain.Gate, gate.Request](gates, hopts...)),
		gateuser.NewModule(resource.NewHandler[domain.GateUser, gateuser.Request](users, hopts...)),
		trip.NewModule(resource.NewHandler[domain.TripRecord, trip.Request](trips, hopts...)),
	}, nil
}
