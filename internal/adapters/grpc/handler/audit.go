package handler

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	auditpb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/audit/v1"
	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/session"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
)

// AuditGrpcHandler は AuditService の gRPC 実装です。
type AuditGrpcHandler struct {
	svc        reconcile.UseCase
	selections selections
	auditpb.UnimplementedAuditServiceServer
}

// NewAuditGrpcHandler は AuditGrpcHandler を生成します。
func NewAuditGrpcHandler(svc reconcile.UseCase, sessions session.Store, logger *slog.Logger) *AuditGrpcHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AuditGrpcHandler{svc: svc, selections: selections{store: sessions, logger: logger}}
}

// Audit は参照月と契約の突き合わせ結果を返します。
func (h *AuditGrpcHandler) Audit(ctx context.Context, req *auditpb.AuditRequest) (*auditpb.AuditResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	actor := ActorFromContext(ctx)
	current := h.selections.load(ctx, actor)
	in := reconcile.AuditInput{PeriodID: req.GetPeriodId(), Contract: strings.TrimSpace(req.GetContract())}
	if in.PeriodID == 0 {
		in.PeriodID = current.PeriodID
	}
	if in.Contract == "" {
		in.Contract = current.Contract
	}

	report, err := h.svc.Audit(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	h.selections.remember(ctx, actor, current, session.Selection{PeriodID: in.PeriodID, Contract: in.Contract})
	return toProtoAudit(report), nil
}

// ListContracts は従業員マスタの契約名を返します。
func (h *AuditGrpcHandler) ListContracts(ctx context.Context, _ *emptypb.Empty) (*auditpb.ListContractsResponse, error) {
	contracts, err := h.svc.Contracts(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &auditpb.ListContractsResponse{Contracts: contracts}, nil
}

func toProtoAudit(r *reconcile.Report) *auditpb.AuditResponse {
	return &auditpb.AuditResponse{
		Period:            r.Period,
		Contract:          r.Contract,
		WindowStart:       timestamppb.New(r.Window.Start),
		WindowEnd:         timestamppb.New(r.Window.End),
		Expected:          int32(r.Expected),
		Archived:          int32(r.Archived),
		Missing:           int32(r.Missing),
		MissingEmployees:  toProtoEmployeeRefs(r.MissingEmployees),
		ArchivedEmployees: toProtoEmployeeRefs(r.ArchivedEmployees),
	}
}

func toProtoEmployeeRefs(in []reconcile.EmployeeRef) []*auditpb.EmployeeRef {
	out := make([]*auditpb.EmployeeRef, 0, len(in))
	for _, e := range in {
		out = append(out, &auditpb.EmployeeRef{Id: e.ID, Name: e.Name})
	}
	return out
}
