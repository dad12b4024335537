package database

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/DularaDevinda/Happiness-Survey/backend/config"
)

func TestDialector_UnknownDriver(t *testing.T) {
	if _, err := Dialector(&config.DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Error("expected an error for an unsupported driver")
	}
}

func TestDialector_KnownDrivers(t *testing.T) {
	for _, d := range []string{config.DriverPostgres, config.DriverMySQL, config.DriverSQLServer, config.DriverSQLite} {
		dialector, err := Dialector(&config.DatabaseConfig{Driver: d, Name: "x"})
		if err != nil {
			t.Fatalf("driver %s: %v", d, err)
		}
		if dialector.Name() == "" {
			t.Errorf("driver %s: empty dialector name", d)
		}
	}
}

func TestNewDB_SQLiteMemory(t *testing.T) {
	cfg := &config.DatabaseConfig{Driver: config.DriverSQLite, DSNOverride: "file::memory:"}

	db, err := NewDB(cfg, "info", zap.NewNop())
	if err != nil {
		t.Fatalf("NewDB failed: %v", err)
	}
	defer CloseDB(db)

	if err := Ping(context.Background(), db); err != nil {
		t.Errorf("ping failed: %v", err)
	}
}

type fakePool struct {
	pingErr error
	closed  bool
}

func (f *fakePool) PingContext(context.Context) error { return f.pingErr }
func (f *fakePool) Close() error { f.closed = true; return nil }

func TestVerifyPool_ClosesOnPingFailure(t *testing.T) {
	unreachable := errors.New("connection refused")
	p := &fakePool{pingErr: unreachable}

	err := verifyPool(context.Background(), p)
	if !errors.Is(err, unreachable) {
		t.Errorf("expected the ping error to be wrapped, got %v", err)
	}
	if !p.closed {
		t.Error("expected the pool to be closed after a failed ping")
	}
}

func TestVerifyPool_KeepsHealthyPoolOpen(t *testing.T) {
	p := &fakePool{}

	if err := verifyPool(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.closed {
		t.Error("healthy pool must stay open")
	}
}

func TestRunMigrations_NonPostgres(t *testing.T) {
	err := RunMigrations(nil, config.DriverSQLite, zap.NewNop())
	if !errors.Is(err, ErrMigrationsUnsupported) {
		t.Errorf("expected ErrMigrationsUnsupported, got %v", err)
	}
}
