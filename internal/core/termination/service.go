package termination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/platform/flatstore"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
)

// Synchronizer は表形式同期プロトコルの抽象です。
type Synchronizer interface {
	Snapshot(ctx context.Context) (*flatstore.Snapshot, error)
	Publish(ctx context.Context, snap *flatstore.Snapshot, edits []flatstore.Row) (int, error)
	PublishDeletion(ctx context.Context, snap *flatstore.Snapshot, ids []int64) (int, error)
}

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Service は退職手続き表の読み書きを提供します。
//
// すべての書き込みはスナップショット取得から全件上書きまでをロックなしで行うため、
// 同時に編集した別のアクターの変更は失われることがあります。
type Service struct {
	sync     Synchronizer
	roster   roster.Repository
	clock    Clock
	logger   *slog.Logger
	validate *validator.Validate
}

// UseCase は退職手続きユースケースの公開インターフェースです。
type UseCase interface {
	List(ctx context.Context, filter Filter) ([]*Record, error)
	Create(ctx context.Context, in CreateInput) (*Record, error)
	Save(ctx context.Context, edits []*Record) (int, error)
	DeleteMarked(ctx context.Context) (int, error)
	Delete(ctx context.Context, ids []int64) (int, error)
}

// NewService は Service を生成します。clock と logger は nil でも構いません。
func NewService(sync Synchronizer, rosterRepo roster.Repository, clock Clock, logger *slog.Logger) *Service {
	if clock == nil {
		clock = realClock{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{
		sync:     sync,
		roster:   rosterRepo,
		clock:    clock,
		logger:   logger,
		validate: validator.New(),
	}
}

// Filter は一覧の絞り込み条件です。
type Filter struct {
	Requester   string
	OnlyPending bool
}

// CreateInput は新規登録の入力です。
type CreateInput struct {
	Fluig         string
	EmployeeID    string `validate:"required"`
	RecessDays    string
	RecessPeriod  string
	DismissalType string
	DismissalDate *time.Time
	HasLoan       bool
	LoanAmount    *float64 `validate:"omitempty,gte=0"`
	PaymentDate   *time.Time
	Notes         string
	Requester     string
}

// List は表の全行を読み込み、条件に一致する記録を ID 順に返します。
func (s *Service) List(ctx context.Context, filter Filter) ([]*Record, error) {
	snap, err := s.sync.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	requester := strings.TrimSpace(filter.Requester)
	out := make([]*Record, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		r := decodeRow(row)
		if requester != "" && !roster.SameLabel(requester, r.Requester) {
			continue
		}
		if filter.OnlyPending && !r.Pending() {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Create は新しい記録を最大 ID + 1 で登録します。従業員情報は従業員マスタから補完されます。
func (s *Service) Create(ctx context.Context, in CreateInput) (*Record, error) {
	in.EmployeeID = roster.NormalizeID(in.EmployeeID)
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "LoanAmount" {
			return nil, ErrInvalidAmount
		}
		return nil, ErrInvalidEmployee
	}

	employee, err := s.roster.FindByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}

	snap, err := s.sync.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	r := &Record{
		ID:            snap.NextID(),
		Fluig:         strings.TrimSpace(in.Fluig),
		EmployeeID:    in.EmployeeID,
		RecessDays:    strings.TrimSpace(in.RecessDays),
		RecessPeriod:  strings.TrimSpace(in.RecessPeriod),
		DismissalType: strings.TrimSpace(in.DismissalType),
		DismissalDate: in.DismissalDate,
		HasLoan:       in.HasLoan,
		LoanAmount:    in.LoanAmount,
		PaymentDate:   in.PaymentDate,
		Notes:         strings.TrimSpace(in.Notes),
		Requester:     strings.TrimSpace(in.Requester),
	}
	refreshFromRoster(r, employee)
	r.applyPaymentDefault()

	if _, err := s.sync.Publish(ctx, snap, []flatstore.Row{encodeRow(r, nil)}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "termination created", slog.Int64("id", r.ID), slog.String("employee_id", r.EmployeeID))
	return r, nil
}

// Save は編集された記録を書き戻します。
// 編集行ごとに従業員情報を従業員マスタから再取得し、支払日が未入力なら退職日 + 10 日を設定します。
// 編集されていない行はスナップショットの内容のまま書き戻されます。
func (s *Service) Save(ctx context.Context, edits []*Record) (int, error) {
	if len(edits) == 0 {
		return 0, nil
	}
	for _, e := range edits {
		if e == nil || e.ID <= 0 {
			return 0, ErrInvalidID
		}
	}

	snap, err := s.sync.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	employees, err := s.roster.List(ctx, roster.Filter{})
	if err != nil {
		return 0, err
	}
	index := roster.NewIndex(employees)

	rows := make([]flatstore.Row, 0, len(edits))
	unknown := 0
	for _, e := range edits {
		r := *e
		r.EmployeeID = roster.NormalizeID(r.EmployeeID)
		if emp, ok := index.Lookup(r.EmployeeID); ok {
			refreshFromRoster(&r, emp)
		} else {
			unknown++
		}
		r.applyPaymentDefault()

		base, _ := snap.Find(r.ID)
		rows = append(rows, encodeRow(&r, base))
	}

	if _, err := s.sync.Publish(ctx, snap, rows); err != nil {
		return 0, err
	}

	if unknown > 0 {
		s.logger.WarnContext(ctx, "terminations saved without roster match", slog.Int("count", unknown))
	}
	s.logger.InfoContext(ctx, "terminations saved", slog.Int("edited", len(rows)))
	return len(rows), nil
}

// DeleteMarked は EXCLUIR が MARCADO の行を削除し、削除件数を返します。
func (s *Service) DeleteMarked(ctx context.Context) (int, error) {
	snap, err := s.sync.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	var ids []int64
	for _, row := range snap.Rows {
		if !FlagDeleteMark.Decode(row.Get(ColumnDelete)) {
			continue
		}
		if id, ok := flatstore.ParseID(row.Get(ColumnID)); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	return s.delete(ctx, snap, ids)
}

// Delete は指定した ID の行を削除し、削除件数を返します。
func (s *Service) Delete(ctx context.Context, ids []int64) (int, error) {
	for _, id := range ids {
		if id <= 0 {
			return 0, ErrInvalidID
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	snap, err := s.sync.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return s.delete(ctx, snap, ids)
}

func (s *Service) delete(ctx context.Context, snap *flatstore.Snapshot, ids []int64) (int, error) {
	n, err := s.sync.PublishDeletion(ctx, snap, ids)
	if err != nil {
		return 0, fmt.Errorf("termination: delete: %w", err)
	}
	s.logger.InfoContext(ctx, "terminations deleted", slog.Int("count", n))
	return n, nil
}

func refreshFromRoster(r *Record, e *roster.Employee) {
	r.Name = e.Name
	r.CostCenter = e.Contract
	r.TaxID = e.TaxID
	r.Disability = e.Disability
}
