package server

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	archivepb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/archive/v1"
	auditpb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/audit/v1"
	terminationpb "github.com/ogurasousui/sistemadp/internal/adapters/grpc/gen/termination/v1"
	"github.com/ogurasousui/sistemadp/internal/adapters/grpc/handler"
	"github.com/ogurasousui/sistemadp/internal/adapters/repository/sheet"
	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/core/session"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
)

// syncBuffer はサーバーのゴルーチンとテストから同時に使われるログ出力先です。
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func startServer(t *testing.T) (*grpc.ClientConn, *syncBuffer) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	wb, err := sheet.Open(filepath.Join(t.TempDir(), "SistemaDP_DB.xlsx"))
	require.NoError(t, err)

	rosterRepo := sheet.NewRosterRepository(wb, nil)
	_, err = rosterRepo.Upsert(ctx, []*roster.Employee{
		{ID: "100", Name: "Ana", Contract: "Hospital", Admission: roster.ParseDate("01/01/2020")},
		{ID: "101", Name: "Bruno", Contract: "Hospital", Admission: roster.ParseDate("01/01/2020")},
	}, time.Now())
	require.NoError(t, err)

	archiveSvc := archive.NewService(sheet.NewArchiveRepository(wb, nil), sheet.NewLogWriter(wb, nil, nil), nil, nil)
	auditSvc := reconcile.NewService(archiveSvc, rosterRepo, nil, nil)
	terminationSvc := termination.NewService(sheet.NewTerminationSyncer(wb, nil), rosterRepo, nil, nil)
	sessions := session.NewMemoryStore()

	logs := &syncBuffer{}
	srv := New("bufnet", Services{
		Archive:     handler.NewArchiveGrpcHandler(archiveSvc, sessions, nil),
		Audit:       handler.NewAuditGrpcHandler(auditSvc, sessions, nil),
		Termination: handler.NewTerminationGrpcHandler(terminationSvc),
	}, logging.NewWithWriter(logs, logging.Options{Format: "json", Level: "debug"}))

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn, logs
}

func TestServer_ArchiveAndAudit(t *testing.T) {
	conn, logs := startServer(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-actor", "maria")
	archiveClient := archivepb.NewArchiveServiceClient(conn)

	period, err := archiveClient.CreatePeriod(ctx, &archivepb.CreatePeriodRequest{Label: "02-2026"})
	require.NoError(t, err)
	assert.Equal(t, "02/2026", period.GetPeriod().GetLabel())

	// 参照月は直近の選択から補われる
	box, err := archiveClient.CreateContainer(ctx, &archivepb.CreateContainerRequest{Number: "7"})
	require.NoError(t, err)
	assert.Equal(t, period.GetPeriod().GetId(), box.GetContainer().GetPeriodId())

	var header metadata.MD
	archived, err := archiveClient.Archive(ctx, &archivepb.ArchiveRequest{EmployeeIds: []string{"100"}}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, int32(1), archived.GetCount())
	require.Len(t, header.Get(RequestIDMetadataKey), 1)

	records, err := archiveClient.ListRecords(ctx, &archivepb.ListRecordsRequest{PeriodId: period.GetPeriod().GetId()})
	require.NoError(t, err)
	require.Len(t, records.GetRecords(), 1)
	assert.Equal(t, archivepb.RecordStatus_RECORD_STATUS_ARCHIVED, records.GetRecords()[0].GetStatus())
	assert.WithinDuration(t, time.Now(), records.GetRecords()[0].GetRegisteredAt().AsTime(), time.Minute)

	report, err := auditpb.NewAuditServiceClient(conn).Audit(ctx, &auditpb.AuditRequest{Contract: "hospital"})
	require.NoError(t, err)
	assert.Equal(t, int32(2), report.GetExpected())
	assert.Equal(t, int32(1), report.GetMissing())
	require.Len(t, report.GetMissingEmployees(), 1)
	assert.Equal(t, "101", report.GetMissingEmployees()[0].GetId())

	out := logs.String()
	assert.Contains(t, out, `"method":"/sistemadp.archive.v1.ArchiveService/Archive"`)
	assert.Contains(t, out, `"actor":"maria"`)
	assert.Contains(t, out, `"request_id":"`+header.Get(RequestIDMetadataKey)[0]+`"`)
}

func TestServer_ValidationErrorsMapToStatus(t *testing.T) {
	conn, logs := startServer(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-actor", "maria", RequestIDMetadataKey, "req-1")
	archiveClient := archivepb.NewArchiveServiceClient(conn)

	_, err := archiveClient.CreatePeriod(ctx, &archivepb.CreatePeriodRequest{Label: "13/2026"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = archiveClient.Unarchive(ctx, &archivepb.UnarchiveRequest{RecordIds: []int64{1}, Reason: "ok"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = auditpb.NewAuditServiceClient(conn).Audit(ctx, &auditpb.AuditRequest{PeriodId: 1})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	assert.True(t, strings.Contains(logs.String(), `"request_id":"req-1"`))
}

func TestServer_TerminationRoundTrip(t *testing.T) {
	conn, _ := startServer(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-actor", "joao")
	client := terminationpb.NewTerminationServiceClient(conn)
	dismissal := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	created, err := client.Create(ctx, &terminationpb.CreateTerminationRequest{
		EmployeeId:    "100",
		DismissalDate: timestamppb.New(dismissal),
		HasLoan:       true,
		LoanAmount:    wrapperspb.Double(80),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", created.GetRecord().GetName())
	assert.Equal(t, "joao", created.GetRecord().GetRequester())

	list, err := client.List(ctx, &terminationpb.ListTerminationsRequest{Requester: "joao"})
	require.NoError(t, err)
	require.Len(t, list.GetRecords(), 1)
	got := list.GetRecords()[0]
	assert.True(t, got.GetDismissalDate().AsTime().Equal(dismissal))
	assert.InDelta(t, 80.0, got.GetLoanAmount().GetValue(), 0.001)
}

func TestServer_HealthService(t *testing.T) {
	conn, _ := startServer(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: archivepb.ArchiveService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}
