package sheet

import (
	"context"
	"log/slog"

	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/platform/flatstore"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
)

// LogWriter は LOGS シートへの追記を行います。
// フラットストアではログの書き込みは補助的な操作であり、失敗しても呼び出し元の操作は中断しません。
type LogWriter struct {
	logs   *flatstore.Syncer
	logger *slog.Logger
}

// NewLogWriter は LogWriter を生成します。logger は nil でも構いません。
func NewLogWriter(wb *flatstore.Workbook, observer flatstore.Observer, logger *slog.Logger) *LogWriter {
	if logger == nil {
		logger = logging.Discard()
	}
	return &LogWriter{
		logs:   flatstore.NewSyncer(wb.Table(logSchema.Name), logSchema, observer),
		logger: logger,
	}
}

// Append はログを追記します。書き込みに失敗した場合は警告を出力して nil を返します。
func (w *LogWriter) Append(ctx context.Context, entries []archive.LogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	if err := w.append(ctx, entries); err != nil {
		w.logger.WarnContext(ctx, "log entries dropped",
			slog.Int("count", len(entries)),
			slog.Any("error", err),
		)
	}
	return nil
}

func (w *LogWriter) append(ctx context.Context, entries []archive.LogEntry) error {
	snap, err := w.logs.Snapshot(ctx)
	if err != nil {
		return err
	}

	next := snap.NextID()
	rows := make([]flatstore.Row, 0, len(entries))
	for i, e := range entries {
		at := e.At
		rows = append(rows, flatstore.Row{
			"ID":      flatstore.FormatID(next + int64(i)),
			"USUARIO": e.Actor,
			"ACAO":    string(e.Action),
			"DETALHE": e.Detail,
			"DATA":    formatTimestamp(&at),
		})
	}
	_, err = w.logs.Publish(ctx, snap, rows)
	return err
}
