package handler

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	archivepb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/archive/v1"
	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/core/session"
)

type stubArchiveUseCase struct {
	createPeriodInput archive.CreatePeriodInput
	createPeriodOut   *archive.Period
	createPeriodErr   error

	createContainerInput archive.CreateContainerInput
	createContainerOut   *archive.Container

	listContainersPeriod int64

	listRecordsFilter archive.RecordFilter

	archiveInput archive.ArchiveInput
	archiveOut   *archive.ArchiveResult
	archiveErr   error

	unarchiveInput archive.UnarchiveInput
	unarchiveErr   error

	deleteContainerInput archive.DeleteContainerInput
	deletePeriodInput    archive.DeletePeriodInput
	preview              *archive.DeletionPreview
	hardDeleteInput      archive.HardDeleteInput
}

func (s *stubArchiveUseCase) CreatePeriod(_ context.Context, in archive.CreatePeriodInput) (*archive.Period, error) {
	s.createPeriodInput = in
	return s.createPeriodOut, s.createPeriodErr
}

func (s *stubArchiveUseCase) ListPeriods(context.Context) ([]*archive.Period, error) {
	return []*archive.Period{{ID: 1, Label: "01/2026"}, {ID: 2, Label: "02/2026"}}, nil
}

func (s *stubArchiveUseCase) CreateContainer(_ context.Context, in archive.CreateContainerInput) (*archive.Container, error) {
	s.createContainerInput = in
	return s.createContainerOut, nil
}

func (s *stubArchiveUseCase) ListContainers(_ context.Context, periodID int64) ([]*archive.Container, error) {
	s.listContainersPeriod = periodID
	return nil, nil
}

func (s *stubArchiveUseCase) ListRecords(_ context.Context, filter archive.RecordFilter) ([]*archive.Record, error) {
	s.listRecordsFilter = filter
	return []*archive.Record{{ID: 1, EmployeeID: "100", Status: archive.StatusArchived, RegisteredAt: registeredAt}}, nil
}

func (s *stubArchiveUseCase) Archive(_ context.Context, in archive.ArchiveInput) (*archive.ArchiveResult, error) {
	s.archiveInput = in
	return s.archiveOut, s.archiveErr
}

func (s *stubArchiveUseCase) Unarchive(_ context.Context, in archive.UnarchiveInput) (int, error) {
	s.unarchiveInput = in
	if s.unarchiveErr != nil {
		return 0, s.unarchiveErr
	}
	return len(in.RecordIDs), nil
}

func (s *stubArchiveUseCase) PreviewContainerDeletion(context.Context, int64) (*archive.DeletionPreview, error) {
	return s.preview, nil
}

func (s *stubArchiveUseCase) DeleteContainer(_ context.Context, in archive.DeleteContainerInput) (*archive.DeletionResult, error) {
	s.deleteContainerInput = in
	return &archive.DeletionResult{Unarchived: 2, ContainersDeleted: 1}, nil
}

func (s *stubArchiveUseCase) PreviewPeriodDeletion(context.Context, int64) (*archive.DeletionPreview, error) {
	return s.preview, nil
}

func (s *stubArchiveUseCase) DeletePeriod(_ context.Context, in archive.DeletePeriodInput) (*archive.DeletionResult, error) {
	s.deletePeriodInput = in
	return &archive.DeletionResult{Unarchived: 3, ContainersDeleted: 2, PeriodDeleted: true}, nil
}

func (s *stubArchiveUseCase) HardDeleteRecord(_ context.Context, in archive.HardDeleteInput) error {
	s.hardDeleteInput = in
	return nil
}

var registeredAt = time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)

func withActor(actor string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs(actorMetadataKey, actor))
}

// violatedField は BadRequest 詳細の最初の入力項目名を返します。
func violatedField(st *status.Status) string {
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok && len(br.GetFieldViolations()) > 0 {
			return br.GetFieldViolations()[0].GetField()
		}
	}
	return ""
}

func TestArchiveGrpcHandler_CreatePeriodRemembersSelection(t *testing.T) {
	t.Parallel()

	stub := &stubArchiveUseCase{createPeriodOut: &archive.Period{ID: 7, Label: "02/2026"}}
	sessions := session.NewMemoryStore()
	handler := NewArchiveGrpcHandler(stub, sessions, nil)

	resp, err := handler.CreatePeriod(withActor("maria"), &archivepb.CreatePeriodRequest{Label: "02-2026"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.GetPeriod().GetId() != 7 || resp.GetPeriod().GetLabel() != "02/2026" {
		t.Fatalf("unexpected period %+v", resp.Period)
	}
	if stub.createPeriodInput.Actor != "maria" {
		t.Fatalf("actor should come from metadata, got %q", stub.createPeriodInput.Actor)
	}

	sel, _ := sessions.Load(context.Background(), "maria")
	if sel.PeriodID != 7 {
		t.Fatalf("selection should hold new period, got %+v", sel)
	}
}

func TestArchiveGrpcHandler_ArchiveUsesSelectionDefaults(t *testing.T) {
	t.Parallel()

	stub := &stubArchiveUseCase{archiveOut: &archive.ArchiveResult{Count: 2}}
	sessions := session.NewMemoryStore()
	if err := sessions.Save(context.Background(), "maria", session.Selection{PeriodID: 3, ContainerID: 9}); err != nil {
		t.Fatalf("save: %v", err)
	}
	handler := NewArchiveGrpcHandler(stub, sessions, nil)

	resp, err := handler.Archive(withActor("maria"), &archivepb.ArchiveRequest{EmployeeIds: []string{"100", "101"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Count != 2 {
		t.Fatalf("unexpected count %d", resp.Count)
	}
	if stub.archiveInput.PeriodID != 3 || stub.archiveInput.ContainerID != 9 {
		t.Fatalf("selection defaults not applied: %+v", stub.archiveInput)
	}
}

func TestArchiveGrpcHandler_ArchiveDoesNotReuseContainerOfOtherPeriod(t *testing.T) {
	t.Parallel()

	stub := &stubArchiveUseCase{archiveOut: &archive.ArchiveResult{Count: 1}}
	sessions := session.NewMemoryStore()
	_ = sessions.Save(context.Background(), "maria", session.Selection{PeriodID: 3, ContainerID: 9})
	handler := NewArchiveGrpcHandler(stub, sessions, nil)

	_, _ = handler.Archive(withActor("maria"), &archivepb.ArchiveRequest{EmployeeIds: []string{"100"}, PeriodId: 4})
	if stub.archiveInput.ContainerID != 0 {
		t.Fatalf("container of another period must not be reused, got %d", stub.archiveInput.ContainerID)
	}
}

func TestArchiveGrpcHandler_ArchivePartialCarriesAppliedCount(t *testing.T) {
	t.Parallel()

	stub := &stubArchiveUseCase{
		archiveOut: &archive.ArchiveResult{Count: 500, Partial: true},
		archiveErr: errors.New("write failed"),
	}
	handler := NewArchiveGrpcHandler(stub, nil, nil)

	_, err := handler.Archive(withActor("maria"), &archivepb.ArchiveRequest{EmployeeIds: []string{"100"}, PeriodId: 1, ContainerId: 1})
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("expected Internal, got %v", err)
	}

	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if v, ok := d.(*errdetails.ErrorInfo); ok {
			info = v
		}
	}
	if info == nil || info.Reason != PartialReason || info.Metadata["applied"] != "500" {
		t.Fatalf("expected partial error info, got %+v", st.Details())
	}
}

func TestArchiveGrpcHandler_UnarchiveReasonViolation(t *testing.T) {
	t.Parallel()

	stub := &stubArchiveUseCase{unarchiveErr: &archive.FieldError{Field: "reason", Err: archive.ErrReasonTooShort}}
	handler := NewArchiveGrpcHandler(stub, nil, nil)

	_, err := handler.Unarchive(withActor("maria"), &archivepb.UnarchiveRequest{RecordIds: []int64{1}, Reason: "x"})
	st, _ := status.FromError(err)
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", st.Code())
	}

	if field := violatedField(st); field != "reason" {
		t.Fatalf("expected reason field violation, got %+v", st.Details())
	}
	if stub.unarchiveInput.Actor != "maria" {
		t.Fatalf("actor not propagated: %+v", stub.unarchiveInput)
	}
}

func TestArchiveGrpcHandler_DeleteContainerForgetsSelection(t *testing.T) {
	t.Parallel()

	stub := &stubArchiveUseCase{}
	sessions := session.NewMemoryStore()
	_ = sessions.Save(context.Background(), "maria", session.Selection{PeriodID: 3, ContainerID: 9, Contract: "Hospital"})
	handler := NewArchiveGrpcHandler(stub, sessions, nil)

	resp, err := handler.DeleteContainer(withActor("maria"), &archivepb.DeleteContainerRequest{ContainerId: 9, Reason: "extraviada", PreviewToken: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Unarchived != 2 || resp.ContainersDeleted != 1 {
		t.Fatalf("unexpected response %+v", resp)
	}
	if stub.deleteContainerInput.PreviewToken != "abc" {
		t.Fatalf("preview token not propagated")
	}

	sel, _ := sessions.Load(context.Background(), "maria")
	if sel != (session.Selection{PeriodID: 3, Contract: "Hospital"}) {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestArchiveGrpcHandler_DeletePeriodClearsSelection(t *testing.T) {
	t.Parallel()

	stub := &stubArchiveUseCase{}
	sessions := session.NewMemoryStore()
	_ = sessions.Save(context.Background(), "maria", session.Selection{PeriodID: 3, ContainerID: 9, Contract: "Hospital"})
	handler := NewArchiveGrpcHandler(stub, sessions, nil)

	resp, err := handler.DeletePeriod(withActor("maria"), &archivepb.DeletePeriodRequest{PeriodId: 3, Reason: "duplicado"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.PeriodDeleted {
		t.Fatalf("expected period deleted")
	}

	sel, _ := sessions.Load(context.Background(), "maria")
	if sel != (session.Selection{Contract: "Hospital"}) {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestArchiveGrpcHandler_ListRecordsFilters(t *testing.T) {
	t.Parallel()

	stub := &stubArchiveUseCase{}
	handler := NewArchiveGrpcHandler(stub, nil, nil)

	resp, err := handler.ListRecords(context.Background(), &archivepb.ListRecordsRequest{
		PeriodId:    2,
		ContainerId: 5,
		Status:      archivepb.RecordStatus_RECORD_STATUS_ARCHIVED,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.GetRecords()) != 1 {
		t.Fatalf("unexpected records %+v", resp.GetRecords())
	}
	got := resp.GetRecords()[0]
	if got.GetStatus() != archivepb.RecordStatus_RECORD_STATUS_ARCHIVED {
		t.Fatalf("unexpected status %v", got.GetStatus())
	}
	if !got.GetRegisteredAt().AsTime().Equal(registeredAt) {
		t.Fatalf("unexpected registered_at %v", got.GetRegisteredAt().AsTime())
	}
	if got.GetUnarchivedAt() != nil {
		t.Fatalf("unarchived_at must be unset for archived records")
	}
	f := stub.listRecordsFilter
	if f.PeriodID != 2 || len(f.ContainerIDs) != 1 || f.ContainerIDs[0] != 5 || f.Status == nil || *f.Status != archive.StatusArchived {
		t.Fatalf("unexpected filter %+v", f)
	}

	_, err = handler.ListRecords(context.Background(), &archivepb.ListRecordsRequest{Status: archivepb.RecordStatus(9)})
	st, _ := status.FromError(err)
	if st.Code() != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for unknown status, got %v", err)
	}
	if field := violatedField(st); field != "status" {
		t.Fatalf("expected status field violation, got %q", field)
	}
}

func TestArchiveGrpcHandler_GetSelectionReturnsStoredSelection(t *testing.T) {
	t.Parallel()

	sessions := session.NewMemoryStore()
	_ = sessions.Save(context.Background(), "maria", session.Selection{PeriodID: 3, ContainerID: 9, Contract: "Hospital"})
	handler := NewArchiveGrpcHandler(&stubArchiveUseCase{}, sessions, nil)

	sel, err := handler.GetSelection(withActor("maria"), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.GetPeriodId() != 3 || sel.GetContainerId() != 9 || sel.GetContract() != "Hospital" {
		t.Fatalf("unexpected selection %+v", sel)
	}
}

func TestArchiveGrpcHandler_GetSelectionRequiresActor(t *testing.T) {
	t.Parallel()

	handler := NewArchiveGrpcHandler(&stubArchiveUseCase{}, session.NewMemoryStore(), nil)

	_, err := handler.GetSelection(context.Background(), &emptypb.Empty{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestArchiveGrpcHandler_NilRequest(t *testing.T) {
	t.Parallel()

	handler := NewArchiveGrpcHandler(&stubArchiveUseCase{}, nil, nil)
	if _, err := handler.Archive(context.Background(), nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestToStatusError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   error
		want codes.Code
	}{
		{in: archive.ErrPreviewStale, want: codes.FailedPrecondition},
		{in: archive.ErrContainerPeriodMismatch, want: codes.FailedPrecondition},
		{in: archive.ErrPeriodAlreadyExists, want: codes.AlreadyExists},
		{in: archive.ErrContainerNotFound, want: codes.NotFound},
		{in: context.DeadlineExceeded, want: codes.DeadlineExceeded},
		{in: errors.New("boom"), want: codes.Internal},
		{in: status.Error(codes.Unavailable, "upstream"), want: codes.Unavailable},
		{in: &archive.FieldError{Field: "period_id", Err: archive.ErrInvalidID}, want: codes.InvalidArgument},
	}
	for _, tc := range cases {
		if got := status.Code(toStatusError(tc.in)); got != tc.want {
			t.Fatalf("toStatusError(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if toStatusError(nil) != nil {
		t.Fatalf("nil error must map to nil")
	}
}
