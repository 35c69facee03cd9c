package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ogurasousui/sistemadp/internal/platform/logging"
)

type txKey struct{}

var (
	readOnlyTx  = pgx.TxOptions{AccessMode: pgx.ReadOnly}
	readWriteTx = pgx.TxOptions{IsoLevel: pgx.ReadCommitted, AccessMode: pgx.ReadWrite}
)

// ErrNilTxFunc は実行する関数が渡されなかった場合に返却されます。
var ErrNilTxFunc = errors.New("postgres: transaction function is required")

type txStarter interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// TransactionManager は 1 つの論理操作 (アーカイブのバッチ、削除のカスケードなど) を
// 1 トランザクションで実行します。途中で失敗した場合はすべて取り消されます。
//
// 既にトランザクションを持つコンテキストで呼ばれた場合は新たに開始せず、外側に参加します。
// pool が nil の場合はトランザクションを張らずに fn を実行します。
type TransactionManager struct {
	pool   txStarter
	logger *slog.Logger
}

// NewTransactionManager は TransactionManager を生成します。logger は nil でも構いません。
func NewTransactionManager(pool txStarter, logger *slog.Logger) *TransactionManager {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TransactionManager{pool: pool, logger: logger}
}

// WithinReadOnly は読み取り専用トランザクションで fn を実行します。
func (m *TransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	return m.run(ctx, readOnlyTx, fn)
}

// WithinReadWrite は READ COMMITTED の読み書きトランザクションで fn を実行します。
func (m *TransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	return m.run(ctx, readWriteTx, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts pgx.TxOptions, fn func(context.Context) error) error {
	if fn == nil {
		return ErrNilTxFunc
	}
	if m == nil || m.pool == nil {
		return fn(ctx)
	}
	if _, nested := txFromContext(ctx); nested {
		return fn(ctx)
	}

	tx, err := m.pool.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("postgres: begin tx: %w", err)
	}

	started := time.Now()
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(p)
		}
	}()

	if err := fn(contextWithTx(ctx, tx)); err != nil {
		return m.abort(ctx, tx, err, started)
	}

	if err := tx.Commit(ctx); err != nil {
		return m.abort(ctx, tx, fmt.Errorf("postgres: commit: %w", err), started)
	}
	return nil
}

// abort は tx を取り消し、原因のエラーを返します。取り消しに失敗した場合は両方を返します。
func (m *TransactionManager) abort(ctx context.Context, tx pgx.Tx, cause error, started time.Time) error {
	// 取り消しは呼び出し元のキャンセルに影響されない
	rbErr := tx.Rollback(context.WithoutCancel(ctx))
	if rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		m.logger.WarnContext(ctx, "transaction rollback failed",
			slog.Any("error", rbErr),
			slog.Any("cause", cause),
		)
		return errors.Join(cause, fmt.Errorf("postgres: rollback: %w", rbErr))
	}

	m.logger.DebugContext(ctx, "transaction rolled back",
		slog.Duration("elapsed", time.Since(started)),
		slog.Any("cause", cause),
	)
	return cause
}

func contextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	if ctx == nil {
		return nil, false
	}
	tx, ok := ctx.Value(txKey{}).(pgx.Tx)
	return tx, ok
}

// Queryer は pgx.Tx と pgxpool.Pool に共通するクエリ実行インターフェースです。
type Queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// QueryerFromContext はコンテキストにトランザクションがあればそれを、無ければ fallback を返します。
// リポジトリはこれを通して文を実行し、サービスのトランザクションに参加します。
func QueryerFromContext(ctx context.Context, fallback Queryer) Queryer {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return fallback
}
