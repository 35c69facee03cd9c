package archive

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
)

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

type noopTransactionManager struct{}

func (noopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (noopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

// Recorder は状態遷移の件数を記録します。
type Recorder interface {
	ObserveTransition(action string, count int)
}

const defaultBatchSize = 500

// Service はアーカイブ記録のライフサイクルを管理します。
type Service struct {
	repo      Repository
	logs      LogWriter
	clock     Clock
	tx        TransactionManager
	atomic    bool
	batchSize int
	logger    *slog.Logger
	recorder  Recorder
	validate  *validator.Validate
}

// UseCase はアーカイブユースケースの公開インターフェースです。
type UseCase interface {
	CreatePeriod(ctx context.Context, in CreatePeriodInput) (*Period, error)
	ListPeriods(ctx context.Context) ([]*Period, error)
	CreateContainer(ctx context.Context, in CreateContainerInput) (*Container, error)
	ListContainers(ctx context.Context, periodID int64) ([]*Container, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)
	Archive(ctx context.Context, in ArchiveInput) (*ArchiveResult, error)
	Unarchive(ctx context.Context, in UnarchiveInput) (int, error)
	PreviewContainerDeletion(ctx context.Context, containerID int64) (*DeletionPreview, error)
	DeleteContainer(ctx context.Context, in DeleteContainerInput) (*DeletionResult, error)
	PreviewPeriodDeletion(ctx context.Context, periodID int64) (*DeletionPreview, error)
	DeletePeriod(ctx context.Context, in DeletePeriodInput) (*DeletionResult, error)
	HardDeleteRecord(ctx context.Context, in HardDeleteInput) error
}

// Option は Service の任意設定です。
type Option func(*Service)

// WithLogger はロガーを設定します。
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder はメトリクスの記録先を設定します。
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithBatchSize は upsert 1 回あたりの最大件数を設定します。
func WithBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// NewService は Service を生成します。
// tx が nil の場合はトランザクションを持たないバックエンド (フラットストア) として扱い、
// 分割書き込みの途中で失敗した場合は適用済み件数を返します。
func NewService(repo Repository, logs LogWriter, clock Clock, tx TransactionManager, opts ...Option) *Service {
	if clock == nil {
		clock = realClock{}
	}
	atomic := tx != nil
	if tx == nil {
		tx = noopTransactionManager{}
	}
	s := &Service{
		repo:      repo,
		logs:      logs,
		clock:     clock,
		tx:        tx,
		atomic:    atomic,
		batchSize: defaultBatchSize,
		logger:    logging.Discard(),
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreatePeriodInput は参照月作成時の入力です。
type CreatePeriodInput struct {
	Label string
	Actor string `validate:"required"`
}

// CreateContainerInput は保管箱作成時の入力です。
type CreateContainerInput struct {
	Number   string `validate:"required"`
	PeriodID int64  `validate:"gt=0"`
	Location string
	Actor    string `validate:"required"`
}

// ArchiveInput はアーカイブ時の入力です。
type ArchiveInput struct {
	EmployeeIDs []string
	ContainerID int64  `validate:"gt=0"`
	PeriodID    int64  `validate:"gt=0"`
	Actor       string `validate:"required"`
}

// ArchiveResult はアーカイブの結果です。
// NothingSelected は対象が空だったことを示し、エラーではありません。
// Partial はトランザクションを持たないバックエンドで途中失敗したことを示します。
type ArchiveResult struct {
	Count           int
	NothingSelected bool
	Partial         bool
}

// UnarchiveInput は desarquivamento の入力です。
type UnarchiveInput struct {
	RecordIDs []int64
	Reason    string `validate:"min=3"`
	Actor     string `validate:"required"`
}

// DeleteContainerInput は保管箱削除の入力です。PreviewToken は PreviewContainerDeletion の結果です。
type DeleteContainerInput struct {
	ContainerID  int64  `validate:"gt=0"`
	Reason       string `validate:"min=3"`
	Actor        string `validate:"required"`
	PreviewToken string
}

// DeletePeriodInput は参照月削除の入力です。PreviewToken は PreviewPeriodDeletion の結果です。
type DeletePeriodInput struct {
	PeriodID     int64  `validate:"gt=0"`
	Reason       string `validate:"min=3"`
	Actor        string `validate:"required"`
	PreviewToken string
}

// HardDeleteInput は記録の物理削除の入力です。
type HardDeleteInput struct {
	RecordID int64  `validate:"gt=0"`
	Actor    string `validate:"required"`
}

// DeletionPreview は削除によって desarquivamento される記録の一覧です。
type DeletionPreview struct {
	Period     *Period
	Container  *Container
	Containers []*Container
	Records    []*Record
	Token      string
}

// DeletionResult は保管箱・参照月削除の結果です。
type DeletionResult struct {
	Unarchived        int
	ContainersDeleted int
	PeriodDeleted     bool
}

// CreatePeriod は参照月を作成します。ラベルは MM/YYYY に正規化されます。
func (s *Service) CreatePeriod(ctx context.Context, in CreatePeriodInput) (*Period, error) {
	label, err := reconcile.CanonicalLabel(in.Label)
	if err != nil {
		return nil, fieldError("label", ErrInvalidPeriodLabel)
	}
	if err := s.check(in); err != nil {
		return nil, err
	}

	var created *Period
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		p, err := s.repo.CreatePeriod(txCtx, &Period{Label: label})
		if err != nil {
			return err
		}
		created = p
		return s.logs.Append(txCtx, []LogEntry{{
			Actor:  in.Actor,
			Action: ActionCreatePeriod,
			Detail: fmt.Sprintf("mês %s (id %d) criado", p.Label, p.ID),
			At:     s.clock.Now(),
		}})
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// ListPeriods は参照月の一覧を返します。
func (s *Service) ListPeriods(ctx context.Context) ([]*Period, error) {
	var out []*Period
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		periods, err := s.repo.ListPeriods(txCtx)
		out = periods
		return err
	})
	return out, err
}

// CreateContainer は参照月に保管箱を作成します。
func (s *Service) CreateContainer(ctx context.Context, in CreateContainerInput) (*Container, error) {
	in.Number = strings.TrimSpace(in.Number)
	in.Location = strings.TrimSpace(in.Location)
	if err := s.check(in); err != nil {
		return nil, err
	}

	var created *Container
	if err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		period, err := s.repo.FindPeriod(txCtx, in.PeriodID)
		if err != nil {
			return err
		}
		c, err := s.repo.CreateContainer(txCtx, &Container{Number: in.Number, PeriodID: period.ID, Location: in.Location})
		if err != nil {
			return err
		}
		created = c
		return s.logs.Append(txCtx, []LogEntry{{
			Actor:  in.Actor,
			Action: ActionCreateContainer,
			Detail: fmt.Sprintf("caixa %s (id %d) criada no mês %s, local %q", c.Number, c.ID, period.Label, c.Location),
			At:     s.clock.Now(),
		}})
	}); err != nil {
		return nil, err
	}
	return created, nil
}

// ListContainers は参照月の保管箱を返します。periodID が 0 の場合は全件です。
func (s *Service) ListContainers(ctx context.Context, periodID int64) ([]*Container, error) {
	var out []*Container
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		containers, err := s.repo.ListContainers(txCtx, periodID)
		out = containers
		return err
	})
	return out, err
}

// ListRecords はアーカイブ記録を検索します。
func (s *Service) ListRecords(ctx context.Context, filter RecordFilter) ([]*Record, error) {
	var out []*Record
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		records, err := s.repo.ListRecords(txCtx, filter)
		out = records
		return err
	})
	return out, err
}

// Archive は従業員を保管箱にアーカイブします。
// 既に (従業員, 参照月) の記録がある場合は状態に関わらず上書きされ、desarquivamento の情報は消去されます。
func (s *Service) Archive(ctx context.Context, in ArchiveInput) (*ArchiveResult, error) {
	ids := normalizeEmployeeIDs(in.EmployeeIDs)
	if len(ids) == 0 {
		return &ArchiveResult{NothingSelected: true}, nil
	}
	if err := s.check(in); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	applied := 0
	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		period, err := s.repo.FindPeriod(txCtx, in.PeriodID)
		if err != nil {
			return err
		}
		container, err := s.repo.FindContainer(txCtx, in.ContainerID)
		if err != nil {
			return err
		}
		if container.PeriodID != period.ID {
			return fieldError("container_id", ErrContainerPeriodMismatch)
		}

		for _, chunk := range chunkStrings(ids, s.batchSize) {
			n, err := s.repo.UpsertArchived(txCtx, ArchiveBatch{
				EmployeeIDs: chunk,
				ContainerID: container.ID,
				PeriodID:    period.ID,
				At:          now,
			})
			applied += n
			if err != nil {
				return err
			}

			entries := make([]LogEntry, 0, len(chunk))
			for _, id := range chunk {
				entries = append(entries, LogEntry{
					Actor:  in.Actor,
					Action: ActionArchive,
					Detail: fmt.Sprintf("matrícula %s arquivada na caixa %s (id %d), mês %s", id, container.Number, container.ID, period.Label),
					At:     now,
				})
			}
			if err := s.logs.Append(txCtx, entries); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if s.atomic || applied == 0 {
			return nil, err
		}
		s.logger.WarnContext(ctx, "archive partially applied",
			slog.Int("applied", applied),
			slog.Int("requested", len(ids)),
			slog.Any("error", err),
		)
		s.observe(string(ActionArchive), applied)
		return &ArchiveResult{Count: applied, Partial: true}, err
	}

	s.observe(string(ActionArchive), applied)
	s.logger.InfoContext(ctx, "records archived",
		slog.String("actor", in.Actor),
		slog.Int64("period_id", in.PeriodID),
		slog.Int64("container_id", in.ContainerID),
		slog.Int("count", applied),
	)
	return &ArchiveResult{Count: applied}, nil
}

// Unarchive は指定された記録を DESARQUIVADO に遷移させます。
// 理由 (前後の空白を除き 3 文字以上) が不正な場合は何も変更せずに拒否します。
func (s *Service) Unarchive(ctx context.Context, in UnarchiveInput) (int, error) {
	in.Reason = strings.TrimSpace(in.Reason)
	if err := s.check(in); err != nil {
		return 0, err
	}

	ids := normalizeRecordIDs(in.RecordIDs)
	if len(ids) == 0 {
		return 0, nil
	}

	now := s.clock.Now()
	count := 0
	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		records, err := s.repo.ListRecords(txCtx, RecordFilter{IDs: ids, Status: statusPtr(StatusArchived)})
		if err != nil {
			return err
		}
		n, err := s.unarchiveRecords(txCtx, records, Unarchival{At: now, Actor: in.Actor, Reason: in.Reason})
		count = n
		return err
	})
	if err != nil {
		return 0, err
	}

	s.observe(string(ActionUnarchive), count)
	return count, nil
}

// PreviewContainerDeletion は保管箱削除で影響を受ける記録を返します。状態は変更しません。
func (s *Service) PreviewContainerDeletion(ctx context.Context, containerID int64) (*DeletionPreview, error) {
	if containerID <= 0 {
		return nil, fieldError("container_id", ErrInvalidID)
	}

	var preview *DeletionPreview
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		p, err := s.containerPreview(txCtx, containerID)
		preview = p
		return err
	})
	return preview, err
}

// DeleteContainer は保管箱の ARQUIVADO 記録をすべて desarquivamento した上で保管箱を削除します。
func (s *Service) DeleteContainer(ctx context.Context, in DeleteContainerInput) (*DeletionResult, error) {
	in.Reason = strings.TrimSpace(in.Reason)
	if err := s.check(in); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	result := &DeletionResult{}
	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		preview, err := s.containerPreview(txCtx, in.ContainerID)
		if err != nil {
			return err
		}
		if preview.Token != in.PreviewToken {
			return fieldError("preview_token", ErrPreviewStale)
		}

		c := preview.Container
		reason := fmt.Sprintf("exclusão da caixa %s (id %d): %s", c.Number, c.ID, in.Reason)
		n, err := s.unarchiveRecords(txCtx, preview.Records, Unarchival{At: now, Actor: in.Actor, Reason: reason})
		if err != nil {
			return err
		}
		result.Unarchived = n

		deleted, err := s.repo.DeleteContainers(txCtx, []int64{c.ID})
		if err != nil {
			return err
		}
		result.ContainersDeleted = deleted

		return s.logs.Append(txCtx, []LogEntry{{
			Actor:  in.Actor,
			Action: ActionDeleteContainer,
			Detail: fmt.Sprintf("caixa %s (id %d) excluída, %d registros desarquivados: %s", c.Number, c.ID, n, in.Reason),
			At:     now,
		}})
	})
	if err != nil {
		return nil, err
	}

	s.observe(string(ActionDeleteContainer), result.ContainersDeleted)
	s.observe(string(ActionUnarchive), result.Unarchived)
	return result, nil
}

// PreviewPeriodDeletion は参照月削除で影響を受ける保管箱と記録を返します。状態は変更しません。
func (s *Service) PreviewPeriodDeletion(ctx context.Context, periodID int64) (*DeletionPreview, error) {
	if periodID <= 0 {
		return nil, fieldError("period_id", ErrInvalidID)
	}

	var preview *DeletionPreview
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		p, err := s.periodPreview(txCtx, periodID)
		preview = p
		return err
	})
	return preview, err
}

// DeletePeriod は参照月の ARQUIVADO 記録をすべて desarquivamento し、保管箱と参照月を削除します。
func (s *Service) DeletePeriod(ctx context.Context, in DeletePeriodInput) (*DeletionResult, error) {
	in.Reason = strings.TrimSpace(in.Reason)
	if err := s.check(in); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	result := &DeletionResult{}
	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		preview, err := s.periodPreview(txCtx, in.PeriodID)
		if err != nil {
			return err
		}
		if preview.Token != in.PreviewToken {
			return fieldError("preview_token", ErrPreviewStale)
		}

		p := preview.Period
		reason := fmt.Sprintf("exclusão do mês %s (id %d): %s", p.Label, p.ID, in.Reason)
		n, err := s.unarchiveRecords(txCtx, preview.Records, Unarchival{At: now, Actor: in.Actor, Reason: reason})
		if err != nil {
			return err
		}
		result.Unarchived = n

		if len(preview.Containers) > 0 {
			ids := make([]int64, 0, len(preview.Containers))
			for _, c := range preview.Containers {
				ids = append(ids, c.ID)
			}
			deleted, err := s.repo.DeleteContainers(txCtx, ids)
			if err != nil {
				return err
			}
			result.ContainersDeleted = deleted
		}

		if err := s.repo.DeletePeriod(txCtx, p.ID); err != nil {
			return err
		}
		result.PeriodDeleted = true

		return s.logs.Append(txCtx, []LogEntry{{
			Actor:  in.Actor,
			Action: ActionDeletePeriod,
			Detail: fmt.Sprintf("mês %s (id %d) excluído com %d caixas, %d registros desarquivados: %s", p.Label, p.ID, result.ContainersDeleted, n, in.Reason),
			At:     now,
		}})
	})
	if err != nil {
		return nil, err
	}

	s.observe(string(ActionDeletePeriod), 1)
	s.observe(string(ActionUnarchive), result.Unarchived)
	return result, nil
}

// HardDeleteRecord は記録を物理削除します。状態遷移とは独立した操作です。
func (s *Service) HardDeleteRecord(ctx context.Context, in HardDeleteInput) error {
	if err := s.check(in); err != nil {
		return err
	}

	err := s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		records, err := s.repo.ListRecords(txCtx, RecordFilter{IDs: []int64{in.RecordID}})
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return ErrRecordNotFound
		}
		r := records[0]

		if err := s.repo.DeleteRecord(txCtx, r.ID); err != nil {
			return err
		}
		return s.logs.Append(txCtx, []LogEntry{{
			Actor:  in.Actor,
			Action: ActionDeleteRecord,
			Detail: fmt.Sprintf("registro %d (matrícula %s, mês id %d, status %s) excluído permanentemente", r.ID, r.EmployeeID, r.PeriodID, r.Status),
			At:     s.clock.Now(),
		}})
	})
	if err != nil {
		return err
	}

	s.observe(string(ActionDeleteRecord), 1)
	s.logger.WarnContext(ctx, "archive record hard deleted", slog.Int64("record_id", in.RecordID), slog.String("actor", in.Actor))
	return nil
}

// PeriodLabel は参照月のラベルを返します。
func (s *Service) PeriodLabel(ctx context.Context, periodID int64) (string, error) {
	var label string
	err := s.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		p, err := s.repo.FindPeriod(txCtx, periodID)
		if err != nil {
			return err
		}
		label = p.Label
		return nil
	})
	return label, err
}

// ArchivedEmployeeIDs は参照月で ARQUIVADO の従業員 ID を返します。
func (s *Service) ArchivedEmployeeIDs(ctx context.Context, periodID int64) ([]string, error) {
	records, err := s.ListRecords(ctx, RecordFilter{PeriodID: periodID, Status: statusPtr(StatusArchived)})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.EmployeeID)
	}
	return ids, nil
}

func (s *Service) unarchiveRecords(ctx context.Context, records []*Record, u Unarchival) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	ids := make([]int64, 0, len(records))
	entries := make([]LogEntry, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
		entries = append(entries, LogEntry{
			Actor:  u.Actor,
			Action: ActionUnarchive,
			Detail: fmt.Sprintf("registro %d (matrícula %s, caixa id %d) desarquivado: %s", r.ID, r.EmployeeID, r.ContainerID, u.Reason),
			At:     u.At,
		})
	}

	n, err := s.repo.MarkUnarchived(ctx, ids, u)
	if err != nil {
		return 0, err
	}
	if err := s.logs.Append(ctx, entries); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *Service) containerPreview(ctx context.Context, containerID int64) (*DeletionPreview, error) {
	c, err := s.repo.FindContainer(ctx, containerID)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListRecords(ctx, RecordFilter{ContainerIDs: []int64{c.ID}, Status: statusPtr(StatusArchived)})
	if err != nil {
		return nil, err
	}
	return &DeletionPreview{
		Container: c,
		Records:   records,
		Token:     previewToken("container", c.ID, records),
	}, nil
}

func (s *Service) periodPreview(ctx context.Context, periodID int64) (*DeletionPreview, error) {
	p, err := s.repo.FindPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}
	containers, err := s.repo.ListContainers(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	records, err := s.repo.ListRecords(ctx, RecordFilter{PeriodID: p.ID, Status: statusPtr(StatusArchived)})
	if err != nil {
		return nil, err
	}
	return &DeletionPreview{
		Period:     p,
		Containers: containers,
		Records:    records,
		Token:      previewToken("period", p.ID, records),
	}, nil
}

func (s *Service) check(in any) error {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Reason":
		return fieldError("reason", ErrReasonTooShort)
	case "Actor":
		return fieldError("actor", ErrInvalidActor)
	case "Number":
		return fieldError("number", ErrInvalidContainerNumber)
	default:
		return fieldError(toSnake(fe.Field()), ErrInvalidID)
	}
}

func (s *Service) observe(action string, n int) {
	if s.recorder != nil && n > 0 {
		s.recorder.ObserveTransition(action, n)
	}
}

// previewToken は影響を受ける記録 ID の集合から決定的なトークンを生成します。
func previewToken(kind string, id int64, records []*Record) string {
	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	h := sha256.New()
	h.Write([]byte(kind + ":" + strconv.FormatInt(id, 10)))
	for _, rid := range ids {
		h.Write([]byte("," + strconv.FormatInt(rid, 10)))
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func normalizeEmployeeIDs(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		id := roster.NormalizeID(r)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func normalizeRecordIDs(raw []int64) []int64 {
	seen := make(map[int64]struct{}, len(raw))
	out := make([]int64, 0, len(raw))
	for _, id := range raw {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func chunkStrings(items []string, size int) [][]string {
	if size <= 0 {
		size = len(items)
	}
	var chunks [][]string
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}

func toSnake(field string) string {
	switch field {
	case "ContainerID":
		return "container_id"
	case "PeriodID":
		return "period_id"
	case "RecordID":
		return "record_id"
	default:
		return strings.ToLower(field)
	}
}
