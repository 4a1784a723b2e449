package seed

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/simp-lee/gateadmin/internal/config"
	"github.com/simp-lee/gateadmin/internal/domain"
)

func setupSeeder(t *testing.T) *Seeder {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	s := NewSeeder(db, slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})))
	if err := s.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return s
}

func TestSeeder_SeedIfEmptyAndLoad(t *testing.T) {
	s := setupSeeder(t)
	ctx := context.Background()
	d := Generate(smallCfg, now)

	seeded, err := s.SeedIfEmpty(ctx, d)
	if err != nil || !seeded {
		t.Fatalf("SeedIfEmpty() = %v, %v; want true, nil", seeded, err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Stations) != 6 || len(got.Gates) != 18 || len(got.Users) != 10 || len(got.Trips) != 40 {
		t.Fatalf("loaded sizes = %d/%d/%d/%d", len(got.Stations), len(got.Gates), len(got.Users), len(got.Trips))
	}
	if got.Stations[0].Code != d.Stations[0].Code {
		t.Errorf("first station = %s; want %s", got.Stations[0].Code, d.Stations[0].Code)
	}

	seeded, err = s.SeedIfEmpty(ctx, d)
	if err != nil || seeded {
		t.Errorf("second SeedIfEmpty() = %v, %v; want false, nil", seeded, err)
	}
}

func TestSeeder_RollsBackOnConflict(t *testing.T) {
	s := setupSeeder(t)
	ctx := context.Background()

	d := Generate(config.SeedConfig{Stations: 2, GatesPerStation: 2, Users: 3, Trips: 4}, now)
	d.Users[2].Username = d.Users[0].Username

	if _, err := s.SeedIfEmpty(ctx, d); !domain.IsDuplicateKey(err) {
		t.Fatalf("SeedIfEmpty() error = %v; want duplicate key", err)
	}
	empty, err := s.Empty(ctx)
	if err != nil || !empty {
		t.Errorf("Empty() = %v, %v; want true after rollback", empty, err)
	}
}

func TestSeeder_EmptyDataset(t *testing.T) {
	s := setupSeeder(t)
	seeded, err := s.SeedIfEmpty(context.Background(), Dataset{})
	if err != nil || !seeded {
		t.Errorf("SeedIfEmpty(empty) = %v, %v", seeded, err)
	}
}
