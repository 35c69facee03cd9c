package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	archivepb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/archive/v1"
	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/core/session"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
)

var errUnknownStatus = errors.New("handler: unknown record status")

// ArchiveGrpcHandler は ArchiveService の gRPC 実装です。
type ArchiveGrpcHandler struct {
	svc        archive.UseCase
	selections selections
	archivepb.UnimplementedArchiveServiceServer
}

// NewArchiveGrpcHandler は ArchiveGrpcHandler を生成します。sessions と logger は nil でも構いません。
func NewArchiveGrpcHandler(svc archive.UseCase, sessions session.Store, logger *slog.Logger) *ArchiveGrpcHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ArchiveGrpcHandler{svc: svc, selections: selections{store: sessions, logger: logger}}
}

// CreatePeriod は参照月を作成し、操作者の選択に設定します。
func (h *ArchiveGrpcHandler) CreatePeriod(ctx context.Context, req *archivepb.CreatePeriodRequest) (*archivepb.CreatePeriodResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor := ActorFromContext(ctx)
	created, err := h.svc.CreatePeriod(ctx, archive.CreatePeriodInput{Label: req.GetLabel(), Actor: actor})
	if err != nil {
		return nil, toStatusError(err)
	}

	current := h.selections.load(ctx, actor)
	h.selections.remember(ctx, actor, current, session.Selection{PeriodID: created.ID})
	return &archivepb.CreatePeriodResponse{Period: toProtoPeriod(created)}, nil
}

// ListPeriods は参照月の一覧を返します。
func (h *ArchiveGrpcHandler) ListPeriods(ctx context.Context, _ *emptypb.Empty) (*archivepb.ListPeriodsResponse, error) {
	periods, err := h.svc.ListPeriods(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	out := make([]*archivepb.Period, 0, len(periods))
	for _, p := range periods {
		out = append(out, toProtoPeriod(p))
	}
	return &archivepb.ListPeriodsResponse{Periods: out}, nil
}

// CreateContainer は保管箱を作成します。
func (h *ArchiveGrpcHandler) CreateContainer(ctx context.Context, req *archivepb.CreateContainerRequest) (*archivepb.CreateContainerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor := ActorFromContext(ctx)
	current := h.selections.load(ctx, actor)
	periodID := req.GetPeriodId()
	if periodID == 0 {
		periodID = current.PeriodID
	}

	created, err := h.svc.CreateContainer(ctx, archive.CreateContainerInput{
		Number:   req.GetNumber(),
		PeriodID: periodID,
		Location: req.GetLocation(),
		Actor:    actor,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	h.selections.remember(ctx, actor, current, session.Selection{PeriodID: created.PeriodID, ContainerID: created.ID})
	return &archivepb.CreateContainerResponse{Container: toProtoContainer(created)}, nil
}

// ListContainers は参照月の保管箱を返します。
func (h *ArchiveGrpcHandler) ListContainers(ctx context.Context, req *archivepb.ListContainersRequest) (*archivepb.ListContainersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor := ActorFromContext(ctx)
	current := h.selections.load(ctx, actor)
	periodID := req.GetPeriodId()
	if periodID == 0 {
		periodID = current.PeriodID
	}

	containers, err := h.svc.ListContainers(ctx, periodID)
	if err != nil {
		return nil, toStatusError(err)
	}

	h.selections.remember(ctx, actor, current, session.Selection{PeriodID: periodID})
	return &archivepb.ListContainersResponse{Containers: toProtoContainers(containers)}, nil
}

// ListRecords はアーカイブ記録を絞り込んで返します。
func (h *ArchiveGrpcHandler) ListRecords(ctx context.Context, req *archivepb.ListRecordsRequest) (*archivepb.ListRecordsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	filter := archive.RecordFilter{PeriodID: req.GetPeriodId(), EmployeeID: strings.TrimSpace(req.GetEmployeeId())}
	if req.GetContainerId() != 0 {
		filter.ContainerIDs = []int64{req.GetContainerId()}
	}
	if req.GetStatus() != archivepb.RecordStatus_RECORD_STATUS_UNSPECIFIED {
		st, err := toDomainStatus(req.GetStatus())
		if err != nil {
			return nil, err
		}
		filter.Status = &st
	}

	records, err := h.svc.ListRecords(ctx, filter)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &archivepb.ListRecordsResponse{Records: toProtoRecords(records)}, nil
}

// Archive は選択された従業員を保管箱にアーカイブします。
// 途中で失敗し一部が適用済みの場合は、適用件数を ErrorInfo に載せて返します。
func (h *ArchiveGrpcHandler) Archive(ctx context.Context, req *archivepb.ArchiveRequest) (*archivepb.ArchiveResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor := ActorFromContext(ctx)
	current := h.selections.load(ctx, actor)
	in := archive.ArchiveInput{
		EmployeeIDs: req.GetEmployeeIds(),
		ContainerID: req.GetContainerId(),
		PeriodID:    req.GetPeriodId(),
		Actor:       actor,
	}
	if in.PeriodID == 0 {
		in.PeriodID = current.PeriodID
	}
	if in.ContainerID == 0 && in.PeriodID == current.PeriodID {
		in.ContainerID = current.ContainerID
	}

	res, err := h.svc.Archive(ctx, in)
	if err != nil {
		if res != nil && res.Partial {
			h.selections.logger.ErrorContext(ctx, "archive partially applied",
				slog.String("actor", actor),
				slog.Int("applied", res.Count),
				slog.Any("error", err),
			)
			return nil, partialError(err, res.Count)
		}
		return nil, toStatusError(err)
	}

	h.selections.remember(ctx, actor, current, session.Selection{PeriodID: in.PeriodID, ContainerID: in.ContainerID})
	return &archivepb.ArchiveResponse{
		Count:           int32(res.Count),
		NothingSelected: res.NothingSelected,
		Partial:         res.Partial,
	}, nil
}

// Unarchive はアーカイブ記録を desarquivamento します。
func (h *ArchiveGrpcHandler) Unarchive(ctx context.Context, req *archivepb.UnarchiveRequest) (*archivepb.UnarchiveResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	n, err := h.svc.Unarchive(ctx, archive.UnarchiveInput{
		RecordIDs: req.GetRecordIds(),
		Reason:    req.GetReason(),
		Actor:     ActorFromContext(ctx),
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &archivepb.UnarchiveResponse{Count: int32(n)}, nil
}

// PreviewContainerDeletion は保管箱削除で影響を受ける記録を返します。
func (h *ArchiveGrpcHandler) PreviewContainerDeletion(ctx context.Context, req *archivepb.PreviewContainerDeletionRequest) (*archivepb.DeletionPreview, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	preview, err := h.svc.PreviewContainerDeletion(ctx, req.GetContainerId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return toDeletionPreview(preview), nil
}

// DeleteContainer は保管箱を削除し、含まれる記録を desarquivamento します。
func (h *ArchiveGrpcHandler) DeleteContainer(ctx context.Context, req *archivepb.DeleteContainerRequest) (*archivepb.DeletionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor := ActorFromContext(ctx)
	res, err := h.svc.DeleteContainer(ctx, archive.DeleteContainerInput{
		ContainerID:  req.GetContainerId(),
		Reason:       req.GetReason(),
		Actor:        actor,
		PreviewToken: req.GetPreviewToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	h.forgetContainer(ctx, actor, req.GetContainerId())
	return toDeletionResponse(res), nil
}

// PreviewPeriodDeletion は参照月削除で影響を受ける保管箱と記録を返します。
func (h *ArchiveGrpcHandler) PreviewPeriodDeletion(ctx context.Context, req *archivepb.PreviewPeriodDeletionRequest) (*archivepb.DeletionPreview, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	preview, err := h.svc.PreviewPeriodDeletion(ctx, req.GetPeriodId())
	if err != nil {
		return nil, toStatusError(err)
	}
	return toDeletionPreview(preview), nil
}

// DeletePeriod は参照月とその保管箱を削除し、記録を desarquivamento します。
func (h *ArchiveGrpcHandler) DeletePeriod(ctx context.Context, req *archivepb.DeletePeriodRequest) (*archivepb.DeletionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor := ActorFromContext(ctx)
	res, err := h.svc.DeletePeriod(ctx, archive.DeletePeriodInput{
		PeriodID:     req.GetPeriodId(),
		Reason:       req.GetReason(),
		Actor:        actor,
		PreviewToken: req.GetPreviewToken(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	current := h.selections.load(ctx, actor)
	if current.PeriodID == req.GetPeriodId() && h.selections.store != nil && actor != "" {
		cleared := session.Selection{Contract: current.Contract}
		if err := h.selections.store.Save(ctx, actor, cleared); err != nil {
			h.selections.logger.WarnContext(ctx, "selection save failed", slog.String("actor", actor), slog.Any("error", err))
		}
	}
	return toDeletionResponse(res), nil
}

// HardDeleteRecord はアーカイブ記録を物理削除します。
func (h *ArchiveGrpcHandler) HardDeleteRecord(ctx context.Context, req *archivepb.HardDeleteRecordRequest) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if err := h.svc.HardDeleteRecord(ctx, archive.HardDeleteInput{RecordID: req.GetRecordId(), Actor: ActorFromContext(ctx)}); err != nil {
		return nil, toStatusError(err)
	}
	return &emptypb.Empty{}, nil
}

// GetSelection は操作者の直近の選択を返します。
func (h *ArchiveGrpcHandler) GetSelection(ctx context.Context, _ *emptypb.Empty) (*archivepb.Selection, error) {
	actor := ActorFromContext(ctx)
	if actor == "" {
		return nil, toStatusError(session.ErrInvalidActor)
	}
	current := h.selections.load(ctx, actor)
	return &archivepb.Selection{
		PeriodId:    current.PeriodID,
		ContainerId: current.ContainerID,
		Contract:    current.Contract,
	}, nil
}

func (h *ArchiveGrpcHandler) forgetContainer(ctx context.Context, actor string, containerID int64) {
	current := h.selections.load(ctx, actor)
	if current.ContainerID != containerID || h.selections.store == nil || actor == "" {
		return
	}
	current.ContainerID = 0
	if err := h.selections.store.Save(ctx, actor, current); err != nil {
		h.selections.logger.WarnContext(ctx, "selection save failed", slog.String("actor", actor), slog.Any("error", err))
	}
}

func toDeletionResponse(res *archive.DeletionResult) *archivepb.DeletionResponse {
	return &archivepb.DeletionResponse{
		Unarchived:        int32(res.Unarchived),
		ContainersDeleted: int32(res.ContainersDeleted),
		PeriodDeleted:     res.PeriodDeleted,
	}
}

func toDeletionPreview(p *archive.DeletionPreview) *archivepb.DeletionPreview {
	return &archivepb.DeletionPreview{
		Period:     toProtoPeriod(p.Period),
		Container:  toProtoContainer(p.Container),
		Containers: toProtoContainers(p.Containers),
		Records:    toProtoRecords(p.Records),
		Token:      p.Token,
	}
}

func toProtoPeriod(p *archive.Period) *archivepb.Period {
	if p == nil {
		return nil
	}
	return &archivepb.Period{Id: p.ID, Label: p.Label}
}

func toProtoContainer(c *archive.Container) *archivepb.Container {
	if c == nil {
		return nil
	}
	return &archivepb.Container{Id: c.ID, Number: c.Number, PeriodId: c.PeriodID, Location: c.Location}
}

func toProtoContainers(in []*archive.Container) []*archivepb.Container {
	out := make([]*archivepb.Container, 0, len(in))
	for _, c := range in {
		out = append(out, toProtoContainer(c))
	}
	return out
}

func toProtoRecords(in []*archive.Record) []*archivepb.ArchiveRecord {
	out := make([]*archivepb.ArchiveRecord, 0, len(in))
	for _, r := range in {
		out = append(out, &archivepb.ArchiveRecord{
			Id:              r.ID,
			EmployeeId:      r.EmployeeID,
			ContainerId:     r.ContainerID,
			PeriodId:        r.PeriodID,
			RegisteredAt:    timestamppb.New(r.RegisteredAt),
			Status:          toProtoStatus(r.Status),
			UnarchivedAt:    optionalTimestamp(r.UnarchivedAt),
			UnarchivedBy:    r.UnarchivedBy,
			UnarchiveReason: r.UnarchiveReason,
		})
	}
	return out
}

func toProtoStatus(s archive.Status) archivepb.RecordStatus {
	switch s {
	case archive.StatusArchived:
		return archivepb.RecordStatus_RECORD_STATUS_ARCHIVED
	case archive.StatusUnarchived:
		return archivepb.RecordStatus_RECORD_STATUS_UNARCHIVED
	default:
		return archivepb.RecordStatus_RECORD_STATUS_UNSPECIFIED
	}
}

func toDomainStatus(s archivepb.RecordStatus) (archive.Status, error) {
	switch s {
	case archivepb.RecordStatus_RECORD_STATUS_ARCHIVED:
		return archive.StatusArchived, nil
	case archivepb.RecordStatus_RECORD_STATUS_UNARCHIVED:
		return archive.StatusUnarchived, nil
	default:
		return "", withFieldViolation(codes.InvalidArgument, errUnknownStatus, "status")
	}
}
