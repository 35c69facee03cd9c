package postgres

import (
	"testing"
	"time"

	"github.com/ogurasousui/sistemadp/internal/platform/config"
)

func TestBuildPoolConfig(t *testing.T) {
	t.Parallel()

	dbCfg := config.DatabaseConfig{
		Host:             "localhost",
		Port:             15432,
		User:             "user",
		Password:         "pass",
		Name:             "db",
		SSLMode:          "disable",
		MaxOpenConns:     20,
		MaxIdleConns:     5,
		ConnMaxLifetime:  30 * time.Minute,
		ConnMaxIdleTime:  10 * time.Minute,
		StatementTimeout: 45 * time.Second,
	}

	poolCfg, err := BuildPoolConfig(dbCfg)
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns != 20 {
		t.Errorf("expected MaxConns 20, got %d", poolCfg.MaxConns)
	}

	if poolCfg.MinConns != 5 {
		t.Errorf("expected MinConns 5, got %d", poolCfg.MinConns)
	}

	if poolCfg.MaxConnLifetime != 30*time.Minute {
		t.Errorf("unexpected MaxConnLifetime: %v", poolCfg.MaxConnLifetime)
	}

	if poolCfg.MaxConnIdleTime != 10*time.Minute {
		t.Errorf("unexpected MaxConnIdleTime: %v", poolCfg.MaxConnIdleTime)
	}

	if got := poolCfg.ConnConfig.RuntimeParams["application_name"]; got != ApplicationName {
		t.Errorf("expected application_name %s, got %s", ApplicationName, got)
	}

	if got := poolCfg.ConnConfig.RuntimeParams["statement_timeout"]; got != "45000" {
		t.Errorf("expected statement_timeout 45000, got %s", got)
	}

	if got := poolCfg.ConnConfig.RuntimeParams["timezone"]; got != "UTC" {
		t.Errorf("expected timezone UTC, got %s", got)
	}

	if poolCfg.ConnConfig.Database != "db" {
		t.Errorf("expected database db, got %s", poolCfg.ConnConfig.Database)
	}
}

func TestBuildPoolConfig_ClampsMinConns(t *testing.T) {
	t.Parallel()

	poolCfg, err := BuildPoolConfig(config.DatabaseConfig{
		Host:         "localhost",
		Port:         5432,
		User:         "user",
		Password:     "p@ss/word",
		Name:         "db",
		SSLMode:      "disable",
		MaxOpenConns: 4,
		MaxIdleConns: 10,
	})
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MinConns != 4 {
		t.Errorf("expected MinConns clamped to 4, got %d", poolCfg.MinConns)
	}
	if poolCfg.ConnConfig.Password != "p@ss/word" {
		t.Errorf("password not preserved through DSN escaping")
	}
	if _, ok := poolCfg.ConnConfig.RuntimeParams["statement_timeout"]; ok {
		t.Errorf("statement_timeout should be unset when not configured")
	}
}
