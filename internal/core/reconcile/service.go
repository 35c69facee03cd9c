package reconcile

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
)

// ErrInvalidPeriodID は参照月 ID が指定されていない場合に返却されます。
var ErrInvalidPeriodID = errors.New("reconcile: invalid period id")

// PeriodSource は参照月ラベルとアーカイブ済み従業員を提供します。
type PeriodSource interface {
	PeriodLabel(ctx context.Context, periodID int64) (string, error)
	ArchivedEmployeeIDs(ctx context.Context, periodID int64) ([]string, error)
}

// Recorder は突き合わせの所要時間を記録します。
type Recorder interface {
	ObserveReconciliation(contract string, d time.Duration)
}

// Service はストアから入力を読み込み Reconcile を実行します。
type Service struct {
	periods  PeriodSource
	roster   roster.Repository
	logger   *slog.Logger
	recorder Recorder
}

// UseCase は突き合わせユースケースの公開インターフェースです。
type UseCase interface {
	Audit(ctx context.Context, in AuditInput) (*Report, error)
	Contracts(ctx context.Context) ([]string, error)
}

// NewService は Service を生成します。logger と recorder は nil でも構いません。
func NewService(periods PeriodSource, rosterRepo roster.Repository, logger *slog.Logger, recorder Recorder) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{periods: periods, roster: rosterRepo, logger: logger, recorder: recorder}
}

// AuditInput は突き合わせの入力です。
type AuditInput struct {
	PeriodID int64
	Contract string
}

// Audit は参照月と契約に対する突き合わせを行います。状態は変更しません。
func (s *Service) Audit(ctx context.Context, in AuditInput) (*Report, error) {
	if in.PeriodID <= 0 {
		return nil, ErrInvalidPeriodID
	}
	contract := strings.TrimSpace(in.Contract)
	if contract == "" {
		return nil, ErrContractRequired
	}
	started := time.Now()

	label, err := s.periods.PeriodLabel(ctx, in.PeriodID)
	if err != nil {
		return nil, err
	}

	// 契約の照合は Reconcile 側で表記揺れを吸収して行うため全件を読み込みます。
	employees, err := s.roster.List(ctx, roster.Filter{})
	if err != nil {
		return nil, err
	}

	archived, err := s.periods.ArchivedEmployeeIDs(ctx, in.PeriodID)
	if err != nil {
		return nil, err
	}

	report, err := Reconcile(Input{
		PeriodLabel: label,
		Contract:    contract,
		Roster:      employees,
		Archived:    archived,
	})
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(started)
	if s.recorder != nil {
		s.recorder.ObserveReconciliation(contract, elapsed)
	}
	s.logger.InfoContext(ctx, "reconciliation finished",
		slog.String("period", label),
		slog.String("contract", contract),
		slog.Int("expected", report.Expected),
		slog.Int("missing", report.Missing),
		slog.Duration("elapsed", elapsed),
	)
	return report, nil
}

// Contracts は従業員マスタに存在する契約名を返します。
func (s *Service) Contracts(ctx context.Context) ([]string, error) {
	employees, err := s.roster.List(ctx, roster.Filter{})
	if err != nil {
		return nil, err
	}
	return roster.Contracts(employees), nil
}
