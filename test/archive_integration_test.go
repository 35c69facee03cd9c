//go:build integration

package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	repo "github.com/ogurasousui/sistemadp/internal/adapters/repository/postgres"
	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/platform/config"
	pg "github.com/ogurasousui/sistemadp/internal/platform/db/postgres"
)

const migrationsDir = "../assets/migrations"

func TestArchiveLifecycleIntegration(t *testing.T) {
	cfg, err := config.Load(configPathFromEnv())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Backend != config.BackendPostgres {
		t.Skipf("backend %q is not postgres", cfg.Backend)
	}

	if err := resetMigrations(cfg.Database.DSN(), migrationsDir); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	ctx := context.Background()
	pool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(func() { pool.Close() })

	now := time.Date(2026, 1, 20, 9, 0, 0, 0, time.UTC)
	rosterRepo := repo.NewRosterRepository(pool)
	if _, err := rosterRepo.Upsert(ctx, []*roster.Employee{
		{ID: "100", Name: "Ana", Contract: "Hospital", Admission: roster.ParseDate("01/01/2020")},
		{ID: "101", Name: "Bruno", Contract: "Hospital", Admission: roster.ParseDate("01/01/2020")},
		{ID: "102", Name: "Carla", Contract: "Hospital", Admission: roster.ParseDate("01/02/2026")},
	}, now); err != nil {
		t.Fatalf("Upsert roster error: %v", err)
	}

	svc := archive.NewService(
		repo.NewArchiveRepository(pool),
		repo.NewLogWriter(pool),
		stubClock{now: now},
		pg.NewTransactionManager(pool, nil),
		archive.WithBatchSize(1),
	)

	period, err := svc.CreatePeriod(ctx, archive.CreatePeriodInput{Label: "01-2026", Actor: "maria"})
	if err != nil {
		t.Fatalf("CreatePeriod error: %v", err)
	}
	if period.Label != "01/2026" {
		t.Fatalf("expected canonical label, got %s", period.Label)
	}
	if _, err := svc.CreatePeriod(ctx, archive.CreatePeriodInput{Label: "01/2026", Actor: "maria"}); !errors.Is(err, archive.ErrPeriodAlreadyExists) {
		t.Fatalf("expected ErrPeriodAlreadyExists, got %v", err)
	}

	box, err := svc.CreateContainer(ctx, archive.CreateContainerInput{Number: "7", PeriodID: period.ID, Actor: "maria"})
	if err != nil {
		t.Fatalf("CreateContainer error: %v", err)
	}

	res, err := svc.Archive(ctx, archive.ArchiveInput{EmployeeIDs: []string{"100"}, ContainerID: box.ID, PeriodID: period.ID, Actor: "maria"})
	if err != nil || res.Count != 1 {
		t.Fatalf("Archive error: %v (%+v)", err, res)
	}

	audit, err := reconcile.NewService(svc, rosterRepo, nil, nil).Audit(ctx, reconcile.AuditInput{PeriodID: period.ID, Contract: "hospital"})
	if err != nil {
		t.Fatalf("Audit error: %v", err)
	}
	if audit.Expected != 2 || audit.Archived != 1 || audit.Missing != 1 {
		t.Fatalf("unexpected audit totals: %+v", audit)
	}
	if audit.MissingEmployees[0].ID != "101" {
		t.Fatalf("expected 101 missing, got %+v", audit.MissingEmployees)
	}

	preview, err := svc.PreviewContainerDeletion(ctx, box.ID)
	if err != nil {
		t.Fatalf("PreviewContainerDeletion error: %v", err)
	}
	if _, err := svc.DeleteContainer(ctx, archive.DeleteContainerInput{ContainerID: box.ID, Reason: "caixa extraviada", Actor: "maria", PreviewToken: "stale"}); !errors.Is(err, archive.ErrPreviewStale) {
		t.Fatalf("expected ErrPreviewStale, got %v", err)
	}
	del, err := svc.DeleteContainer(ctx, archive.DeleteContainerInput{ContainerID: box.ID, Reason: "caixa extraviada", Actor: "maria", PreviewToken: preview.Token})
	if err != nil {
		t.Fatalf("DeleteContainer error: %v", err)
	}
	if del.Unarchived != 1 || del.ContainersDeleted != 1 {
		t.Fatalf("unexpected deletion result: %+v", del)
	}

	records, err := svc.ListRecords(ctx, archive.RecordFilter{PeriodID: period.ID})
	if err != nil {
		t.Fatalf("ListRecords error: %v", err)
	}
	if len(records) != 1 || records[0].Status != archive.StatusUnarchived || records[0].UnarchivedBy != "maria" {
		t.Fatalf("unexpected records after cascade: %+v", records)
	}
}

func resetMigrations(dsn, dir string) error {
	m, err := migrate.New("file://"+dir, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func configPathFromEnv() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "../assets/local.yaml"
}

type stubClock struct {
	now time.Time
}

func (s stubClock) Now() time.Time {
	return s.now
}
