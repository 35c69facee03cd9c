// Package logging は slog.Logger の構築を提供します。
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options はロガーの出力形式とレベルです。
type Options struct {
	Format string
	Level  string
}

// New は Options に従って slog.Logger を生成します。Format が "json" 以外の場合はテキスト形式です。
func New(opts Options) *slog.Logger {
	return NewWithWriter(os.Stdout, opts)
}

// NewWithWriter は出力先を指定して slog.Logger を生成します。
func NewWithWriter(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	if strings.EqualFold(opts.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// ParseLevel はレベル名を slog.Level に変換します。不明な値は Info です。
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Discard は何も出力しないロガーを返します。
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
