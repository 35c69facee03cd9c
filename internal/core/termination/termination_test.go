package termination

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/platform/flatstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRoster struct {
	employees []*roster.Employee
}

func (s *stubRoster) List(context.Context, roster.Filter) ([]*roster.Employee, error) {
	return s.employees, nil
}

func (s *stubRoster) FindByID(_ context.Context, id string) (*roster.Employee, error) {
	if e, ok := roster.NewIndex(s.employees).Lookup(id); ok {
		return e, nil
	}
	return nil, roster.ErrEmployeeNotFound
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func newTestService(t *testing.T) (*Service, *flatstore.SheetTable, *stubRoster) {
	t.Helper()

	wb, err := flatstore.OpenWorkbook(filepath.Join(t.TempDir(), "SistemaDP_DB.xlsx"), Schema.Name)
	require.NoError(t, err)
	table := wb.Table(Schema.Name)

	rs := &stubRoster{employees: []*roster.Employee{
		{ID: "100", Name: "Ana Souza", Contract: "Hospital", TaxID: "111.222.333-44", Disability: true},
		{ID: "200", Name: "Bruno Lima", Contract: "Escola", TaxID: "555.666.777-88"},
	}}
	svc := NewService(flatstore.NewSyncer(table, Schema, nil), rs, nil, nil)
	return svc, table, rs
}

func TestFlagKind_RoundTrip(t *testing.T) {
	t.Parallel()

	kinds := []FlagKind{FlagCalculation, FlagDocument, FlagPayment, FlagBilling, FlagDeleteMark, FlagLoan, FlagDisability}
	for _, k := range kinds {
		for _, v := range []bool{true, false} {
			assert.Equal(t, v, k.Decode(k.Encode(v)), "kind %s value %v", k, v)
		}
	}
}

func TestFlagKind_DecodeUsesPositiveTokens(t *testing.T) {
	t.Parallel()

	assert.True(t, FlagCalculation.Decode(" calculado "))
	assert.True(t, FlagPayment.Decode("TRUE"))
	assert.True(t, FlagDocument.Decode("ok"))
	assert.True(t, FlagDeleteMark.Decode("1"))
	assert.False(t, FlagCalculation.Decode("PENDENTE"))
	assert.False(t, FlagBilling.Decode("não"))
	assert.False(t, FlagPayment.Decode("FALSE"))
	assert.False(t, FlagDeleteMark.Decode(""))
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	v, err := ParseAmount("R$ 1.234,56")
	require.NoError(t, err)
	assert.InDelta(t, 1234.56, *v, 0.001)

	v, err = ParseAmount("99.5")
	require.NoError(t, err)
	assert.InDelta(t, 99.5, *v, 0.001)

	v, err = ParseAmount("")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = ParseAmount("abc")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Equal(t, "1234,50", FormatAmount(func() *float64 { f := 1234.5; return &f }()))
}

func TestService_CreateFillsSnapshotAndPaymentDefault(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, table, _ := newTestService(t)

	first, err := svc.Create(ctx, CreateInput{EmployeeID: "100.0", DismissalDate: date(2026, 1, 25), Requester: "RH Central"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, "Ana Souza", first.Name)
	assert.Equal(t, "Hospital", first.CostCenter)
	assert.True(t, first.Disability)
	require.NotNil(t, first.PaymentDate)
	assert.Equal(t, *date(2026, 2, 4), *first.PaymentDate)

	second, err := svc.Create(ctx, CreateInput{EmployeeID: "200", DismissalDate: date(2026, 1, 26), PaymentDate: date(2026, 1, 30)})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, *date(2026, 1, 30), *second.PaymentDate)

	grid, err := table.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, Schema.Columns, grid[0])

	header := grid[0]
	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %s not found", name)
		return -1
	}
	assert.Equal(t, "25/01/2026", grid[1][col(ColumnDismissalDate)])
	assert.Equal(t, "04/02/2026", grid[1][col(ColumnPaymentDate)])
	assert.Equal(t, "PENDENTE", grid[1][col(ColumnCalculation)])
	assert.Equal(t, "ABERTO", grid[1][col(ColumnPaymentSettle)])
	assert.Equal(t, "SIM", grid[1][col(ColumnDisability)])
}

func TestService_CreateRejectsUnknownEmployee(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	_, err := svc.Create(context.Background(), CreateInput{EmployeeID: "999"})
	assert.ErrorIs(t, err, roster.ErrEmployeeNotFound)

	_, err = svc.Create(context.Background(), CreateInput{EmployeeID: "  "})
	assert.ErrorIs(t, err, ErrInvalidEmployee)
}

func TestService_SaveRefreshesFromRoster(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, rs := newTestService(t)

	created, err := svc.Create(ctx, CreateInput{EmployeeID: "100", DismissalDate: date(2026, 1, 25)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{EmployeeID: "200", DismissalDate: date(2026, 1, 26), Notes: "sem pendências"})
	require.NoError(t, err)

	rs.employees[0].Name = "Ana Souza Lima"
	rs.employees[0].Contract = "Hospital Norte"

	edit := *created
	edit.Name = "editado à mão"
	edit.CalculationDone = true
	edit.PaymentDate = nil
	edit.DismissalDate = date(2026, 2, 1)

	n, err := svc.Save(ctx, []*Record{&edit})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	records, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	got := records[0]
	assert.Equal(t, "Ana Souza Lima", got.Name)
	assert.Equal(t, "Hospital Norte", got.CostCenter)
	assert.True(t, got.CalculationDone)
	require.NotNil(t, got.PaymentDate)
	assert.Equal(t, *date(2026, 2, 11), *got.PaymentDate)

	assert.Equal(t, "sem pendências", records[1].Notes)
}

func TestService_SaveRejectsRowsWithoutID(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t)
	_, err := svc.Save(context.Background(), []*Record{{EmployeeID: "100"}})
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestService_ListFilters(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newTestService(t)

	done, err := svc.Create(ctx, CreateInput{EmployeeID: "100", Requester: "Diretoria Clínica"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{EmployeeID: "200", Requester: "RH"})
	require.NoError(t, err)

	done.CalculationDone = true
	done.DocumentsSent = true
	done.PaymentSettled = true
	_, err = svc.Save(ctx, []*Record{done})
	require.NoError(t, err)

	pending, err := svc.List(ctx, Filter{OnlyPending: true})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "200", pending[0].EmployeeID)

	byRequester, err := svc.List(ctx, Filter{Requester: "diretoria clinica"})
	require.NoError(t, err)
	require.Len(t, byRequester, 1)
	assert.Equal(t, done.ID, byRequester[0].ID)
}

func TestService_DeleteMarked(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _, _ := newTestService(t)

	first, err := svc.Create(ctx, CreateInput{EmployeeID: "100"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{EmployeeID: "200"})
	require.NoError(t, err)

	first.MarkedForDeletion = true
	_, err = svc.Save(ctx, []*Record{first})
	require.NoError(t, err)

	n, err := svc.DeleteMarked(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	records, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(2), records[0].ID)

	n, err = svc.Delete(ctx, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_ConcurrentCreateLosesUpdate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, table, _ := newTestService(t)
	syncer := flatstore.NewSyncer(table, Schema, nil)

	_, err := svc.Create(ctx, CreateInput{EmployeeID: "100"})
	require.NoError(t, err)

	// 1 人目のアクターが編集前に読み込む
	stale, err := syncer.Snapshot(ctx)
	require.NoError(t, err)

	// 2 人目のアクターが新規登録する
	_, err = svc.Create(ctx, CreateInput{EmployeeID: "200"})
	require.NoError(t, err)

	// 1 人目のアクターが古いスナップショットで書き戻す
	row, ok := stale.Find(1)
	require.True(t, ok)
	edited := decodeRow(row)
	edited.Notes = "revisado"
	_, err = syncer.Publish(ctx, stale, []flatstore.Row{encodeRow(edited, row)})
	require.NoError(t, err)

	records, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "revisado", records[0].Notes)
}
