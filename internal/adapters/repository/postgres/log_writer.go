package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ogurasousui/sistemadp/internal/core/archive"
	pgdb "github.com/ogurasousui/sistemadp/internal/platform/db/postgres"
)

// LogWriter は logs テーブルへの追記を行います。呼び出し元のトランザクションに参加します。
type LogWriter struct {
	pool pgdb.Queryer
}

// NewLogWriter は LogWriter を生成します。
func NewLogWriter(pool pgdb.Queryer) *LogWriter {
	return &LogWriter{pool: pool}
}

// Append はログをまとめて 1 文で追記します。
func (w *LogWriter) Append(ctx context.Context, entries []archive.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}

	actors := make([]string, len(entries))
	actions := make([]string, len(entries))
	details := make([]string, len(entries))
	times := make([]time.Time, len(entries))
	for i, e := range entries {
		actors[i] = e.Actor
		actions[i] = string(e.Action)
		details[i] = e.Detail
		times[i] = e.At.UTC()
	}

	exec := pgdb.QueryerFromContext(ctx, w.pool)
	if _, err := exec.Exec(ctx, `
        INSERT INTO logs (usuario, acao, detalhe, data)
        SELECT * FROM unnest($1::text[], $2::text[], $3::text[], $4::timestamptz[])
    `, actors, actions, details, times); err != nil {
		return fmt.Errorf("postgres: append logs: %w", err)
	}
	return nil
}
