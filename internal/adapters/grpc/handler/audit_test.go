package handler

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	auditpb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/audit/v1"
	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/core/session"
)

type stubAuditUseCase struct {
	auditInput reconcile.AuditInput
}

func (s *stubAuditUseCase) Audit(_ context.Context, in reconcile.AuditInput) (*reconcile.Report, error) {
	s.auditInput = in
	if in.PeriodID <= 0 {
		return nil, reconcile.ErrInvalidPeriodID
	}
	return reconcile.Reconcile(reconcile.Input{
		PeriodLabel: "02/2026",
		Contract:    in.Contract,
		Roster: []*roster.Employee{
			{ID: "100", Name: "Ana", Contract: "Hospital", Admission: roster.ParseDate("01/01/2020")},
			{ID: "101", Name: "Bruno", Contract: "Hospital", Admission: roster.ParseDate("01/01/2020")},
		},
		Archived: []string{"100"},
	})
}

func (s *stubAuditUseCase) Contracts(context.Context) ([]string, error) {
	return []string{"Escola", "Hospital"}, nil
}

func TestAuditGrpcHandler_Audit(t *testing.T) {
	t.Parallel()

	sessions := session.NewMemoryStore()
	stub := &stubAuditUseCase{}
	handler := NewAuditGrpcHandler(stub, sessions, nil)

	resp, err := handler.Audit(withActor("maria"), &auditpb.AuditRequest{PeriodId: 4, Contract: "Hospital"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Expected != 2 || resp.Archived != 1 || resp.Missing != 1 {
		t.Fatalf("unexpected counts %+v", resp)
	}
	if len(resp.GetMissingEmployees()) != 1 || resp.GetMissingEmployees()[0].GetId() != "101" {
		t.Fatalf("unexpected missing %+v", resp.GetMissingEmployees())
	}
	start, end := resp.GetWindowStart().AsTime(), resp.GetWindowEnd().AsTime()
	if start.Day() != 16 || end.Day() != 15 {
		t.Fatalf("unexpected window %v - %v", start, end)
	}

	// 2 回目は直近の選択から参照月と契約を補う
	if _, err := handler.Audit(withActor("maria"), &auditpb.AuditRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.auditInput != (reconcile.AuditInput{PeriodID: 4, Contract: "Hospital"}) {
		t.Fatalf("selection defaults not applied: %+v", stub.auditInput)
	}
}

func TestAuditGrpcHandler_AuditWithoutPeriod(t *testing.T) {
	t.Parallel()

	handler := NewAuditGrpcHandler(&stubAuditUseCase{}, nil, nil)

	_, err := handler.Audit(context.Background(), &auditpb.AuditRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestAuditGrpcHandler_AuditRequiresContract(t *testing.T) {
	t.Parallel()

	sessions := session.NewMemoryStore()
	_ = sessions.Save(context.Background(), "maria", session.Selection{PeriodID: 4})
	handler := NewAuditGrpcHandler(&stubAuditUseCase{}, sessions, nil)

	_, err := handler.Audit(withActor("maria"), &auditpb.AuditRequest{Contract: "  "})
	st, _ := status.FromError(err)
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
	if field := violatedField(st); field != "contract" {
		t.Fatalf("expected contract field violation, got %q", field)
	}
}

func TestAuditGrpcHandler_ListContracts(t *testing.T) {
	t.Parallel()

	handler := NewAuditGrpcHandler(&stubAuditUseCase{}, nil, nil)

	resp, err := handler.ListContracts(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Contracts) != 2 {
		t.Fatalf("unexpected contracts %v", resp.Contracts)
	}
}
