package seed

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/simp-lee/gateadmin/internal/domain"
	"github.com/simp-lee/gateadmin/internal/module/resource"
	"github.com/simp-lee/gateadmin/internal/pkg"
)

// Seeder owns the four fixture repositories.
type Seeder struct {
	db       *gorm.DB
	stations *resource.Repository[domain.Station]
	gates    *resource.Repository[domain.Gate]
	users    *resource.Repository[domain.GateUser]
	trips    *resource.Repository[domain.TripRecord]
	logger   *slog.Logger
}

// NewSeeder creates a Seeder over db.
func NewSeeder(db *gorm.DB, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{
		db:       db,
		stations: resource.NewRepository[domain.Station](db),
		gates:    resource.NewRepository[domain.Gate](db),
		users:    resource.NewRepository[domain.GateUser](db),
		trips:    resource.NewRepository[domain.TripRecord](db),
		logger:   logger,
	}
}

// Migrate creates or updates the fixture tables.
func (s *Seeder) Migrate(ctx context.Context) error {
	steps := []struct {
		table string
		run   func(context.Context) error
	}{
		{"stations", s.stations.Migrate},
		{"gates", s.gates.Migrate},
		{"gate_users", s.users.Migrate},
		{"trip_records", s.trips.Migrate},
	}
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("migrate %s: %w", step.table, err)
		}
	}
	return nil
}

// Empty reports whether every fixture table is empty.
func (s *Seeder) Empty(ctx context.Context) (bool, error) {
	counts := []func(context.Context) (int64, error){
		s.stations.Count, s.gates.Count, s.users.Count, s.trips.Count,
	}
	for _, count := range counts {
		n, err := count(ctx)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

// SeedIfEmpty writes d in one transaction when every table is empty. It
// reports whether anything was written.
func (s *Seeder) SeedIfEmpty(ctx context.Context, d Dataset) (bool, error) {
	empty, err := s.Empty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		s.logger.InfoContext(ctx, "seed skipped: tables not empty")
		return false, nil
	}

	err = pkg.WithTx(ctx, s.db, func(tx *gorm.DB) error {
		if err := s.stations.WithDB(tx).Insert(ctx, d.Stations); err != nil {
			return fmt.Errorf("seed stations: %w", err)
		}
		if err := s.gates.WithDB(tx).Insert(ctx, d.Gates); err != nil {
			return fmt.Errorf("seed gates: %w", err)
		}
		if err := s.users.WithDB(tx).Insert(ctx, d.Users); err != nil {
			return fmt.Errorf("seed gate users: %w", err)
		}
		if err := s.trips.WithDB(tx).Insert(ctx, d.Trips); err != nil {
			return fmt.Errorf("seed trips: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	s.logger.InfoContext(ctx, "demo data seeded",
		slog.Int("stations", len(d.Stations)),
		slog.Int("gates", len(d.Gates)),
		slog.Int("gate_users", len(d.Users)),
		slog.Int("trips", len(d.Trips)),
	)
	return true, nil
}

// Load reads every fixture table.
func (s *Seeder) Load(ctx context.Context) (Dataset, error) {
	var (
		d   Dataset
		err error
	)
	if d.Stations, err = s.stations.LoadAll(ctx); err != nil {
		return Dataset{}, fmt.Errorf("load stations: %w", err)
	}
	if d.Gates, err = s.gates.LoadAll(ctx); err != nil {
		return Dataset{}, fmt.Errorf("load gates: %w", err)
	}
	if d.Users, err = s.users.LoadAll(ctx); err != nil {
		return Dataset{}, fmt.Errorf("load gate users: %w", err)
	}
	if d.Trips, err = s.trips.LoadAll(ctx); err != nil {
		return Dataset{}, fmt.Errorf("load trips: %w", err)
	}
	return d, nil
}
