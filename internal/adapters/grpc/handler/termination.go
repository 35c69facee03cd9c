package handler

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	terminationpb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/termination/v1"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
)

// TerminationGrpcHandler は TerminationService の gRPC 実装です。
type TerminationGrpcHandler struct {
	svc termination.UseCase
	terminationpb.UnimplementedTerminationServiceServer
}

// NewTerminationGrpcHandler は TerminationGrpcHandler を生成します。
func NewTerminationGrpcHandler(svc termination.UseCase) *TerminationGrpcHandler {
	return &TerminationGrpcHandler{svc: svc}
}

// List は退職手続きの一覧を返します。
func (h *TerminationGrpcHandler) List(ctx context.Context, req *terminationpb.ListTerminationsRequest) (*terminationpb.ListTerminationsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	records, err := h.svc.List(ctx, termination.Filter{Requester: req.GetRequester(), OnlyPending: req.GetOnlyPending()})
	if err != nil {
		return nil, toStatusError(err)
	}
	out := make([]*terminationpb.Termination, 0, len(records))
	for _, r := range records {
		out = append(out, toProtoTermination(r))
	}
	return &terminationpb.ListTerminationsResponse{Records: out}, nil
}

// Create は退職手続きを登録します。
func (h *TerminationGrpcHandler) Create(ctx context.Context, req *terminationpb.CreateTerminationRequest) (*terminationpb.CreateTerminationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	requester := strings.TrimSpace(req.GetRequester())
	if requester == "" {
		requester = ActorFromContext(ctx)
	}

	dismissal, err := optionalTime(req.GetDismissalDate(), "dismissal_date")
	if err != nil {
		return nil, withFieldViolation(codes.InvalidArgument, err, "dismissal_date")
	}
	payment, err := optionalTime(req.GetPaymentDate(), "payment_date")
	if err != nil {
		return nil, withFieldViolation(codes.InvalidArgument, err, "payment_date")
	}

	created, err := h.svc.Create(ctx, termination.CreateInput{
		Fluig:         req.GetFluig(),
		EmployeeID:    req.GetEmployeeId(),
		RecessDays:    req.GetRecessDays(),
		RecessPeriod:  req.GetRecessPeriod(),
		DismissalType: req.GetDismissalType(),
		DismissalDate: dismissal,
		HasLoan:       req.GetHasLoan(),
		LoanAmount:    doubleValue(req.GetLoanAmount()),
		PaymentDate:   payment,
		Notes:         req.GetNotes(),
		Requester:     requester,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &terminationpb.CreateTerminationResponse{Record: toProtoTermination(created)}, nil
}

// Save は編集された記録を書き戻します。
func (h *TerminationGrpcHandler) Save(ctx context.Context, req *terminationpb.SaveTerminationsRequest) (*terminationpb.CountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	edits := make([]*termination.Record, 0, len(req.GetRecords()))
	for _, r := range req.GetRecords() {
		if r == nil {
			continue
		}
		edit, err := toDomainTermination(r)
		if err != nil {
			return nil, err
		}
		edits = append(edits, edit)
	}

	n, err := h.svc.Save(ctx, edits)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &terminationpb.CountResponse{Count: int32(n)}, nil
}

// DeleteMarked は EXCLUIR が MARCADO の記録を削除します。
func (h *TerminationGrpcHandler) DeleteMarked(ctx context.Context, _ *emptypb.Empty) (*terminationpb.CountResponse, error) {
	n, err := h.svc.DeleteMarked(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &terminationpb.CountResponse{Count: int32(n)}, nil
}

// Delete は指定した記録を削除します。
func (h *TerminationGrpcHandler) Delete(ctx context.Context, req *terminationpb.DeleteTerminationsRequest) (*terminationpb.CountResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	n, err := h.svc.Delete(ctx, req.GetIds())
	if err != nil {
		return nil, toStatusError(err)
	}
	return &terminationpb.CountResponse{Count: int32(n)}, nil
}

func toProtoTermination(r *termination.Record) *terminationpb.Termination {
	if r == nil {
		return nil
	}
	return &terminationpb.Termination{
		Id:                r.ID,
		Fluig:             r.Fluig,
		EmployeeId:        r.EmployeeID,
		Name:              r.Name,
		TaxId:             r.TaxID,
		Disability:        r.Disability,
		CostCenter:        r.CostCenter,
		RecessDays:        r.RecessDays,
		RecessPeriod:      r.RecessPeriod,
		DismissalType:     r.DismissalType,
		DismissalDate:     optionalTimestamp(r.DismissalDate),
		HasLoan:           r.HasLoan,
		LoanAmount:        optionalDouble(r.LoanAmount),
		CalculationDone:   r.CalculationDone,
		DocumentsSent:     r.DocumentsSent,
		PaymentDate:       optionalTimestamp(r.PaymentDate),
		Billing:           r.Billing,
		PaymentSettled:    r.PaymentSettled,
		Notes:             r.Notes,
		Requester:         r.Requester,
		MarkedForDeletion: r.MarkedForDeletion,
	}
}

func toDomainTermination(t *terminationpb.Termination) (*termination.Record, error) {
	dismissal, err := optionalTime(t.GetDismissalDate(), "dismissal_date")
	if err != nil {
		return nil, withFieldViolation(codes.InvalidArgument, err, "dismissal_date")
	}
	payment, err := optionalTime(t.GetPaymentDate(), "payment_date")
	if err != nil {
		return nil, withFieldViolation(codes.InvalidArgument, err, "payment_date")
	}

	return &termination.Record{
		ID:                t.GetId(),
		Fluig:             t.GetFluig(),
		EmployeeID:        t.GetEmployeeId(),
		Name:              t.GetName(),
		TaxID:             t.GetTaxId(),
		Disability:        t.GetDisability(),
		CostCenter:        t.GetCostCenter(),
		RecessDays:        t.GetRecessDays(),
		RecessPeriod:      t.GetRecessPeriod(),
		DismissalType:     t.GetDismissalType(),
		DismissalDate:     dismissal,
		HasLoan:           t.GetHasLoan(),
		LoanAmount:        doubleValue(t.GetLoanAmount()),
		CalculationDone:   t.GetCalculationDone(),
		DocumentsSent:     t.GetDocumentsSent(),
		PaymentDate:       payment,
		Billing:           t.GetBilling(),
		PaymentSettled:    t.GetPaymentSettled(),
		Notes:             t.GetNotes(),
		Requester:         t.GetRequester(),
		MarkedForDeletion: t.GetMarkedForDeletion(),
	}, nil
}
