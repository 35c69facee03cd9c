package sheet

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/platform/flatstore"
	"github.com/ogurasousui/sistemadp/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 2, 3, 10, 11, 12, 0, time.UTC)

func openTestWorkbook(t *testing.T) *flatstore.Workbook {
	t.Helper()

	wb, err := Open(filepath.Join(t.TempDir(), "SistemaDP_DB.xlsx"))
	require.NoError(t, err)
	return wb
}

func newArchiveService(t *testing.T, wb *flatstore.Workbook) *archive.Service {
	t.Helper()
	return archive.NewService(
		NewArchiveRepository(wb, nil),
		NewLogWriter(wb, nil, nil),
		fixedClock{now: testNow},
		nil,
	)
}

func TestArchiveRepository_FullLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wb := openTestWorkbook(t)
	svc := newArchiveService(t, wb)

	period, err := svc.CreatePeriod(ctx, archive.CreatePeriodInput{Label: "02-2026", Actor: "maria"})
	require.NoError(t, err)
	box, err := svc.CreateContainer(ctx, archive.CreateContainerInput{Number: "7", PeriodID: period.ID, Location: "Arquivo A", Actor: "maria"})
	require.NoError(t, err)

	_, err = svc.CreatePeriod(ctx, archive.CreatePeriodInput{Label: "02/2026", Actor: "maria"})
	assert.ErrorIs(t, err, archive.ErrPeriodAlreadyExists)

	res, err := svc.Archive(ctx, archive.ArchiveInput{EmployeeIDs: []string{"100", "101", "102"}, ContainerID: box.ID, PeriodID: period.ID, Actor: "maria"})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Count)

	records, err := svc.ListRecords(ctx, archive.RecordFilter{PeriodID: period.ID})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.True(t, records[0].RegisteredAt.Equal(testNow))

	n, err := svc.Unarchive(ctx, archive.UnarchiveInput{RecordIDs: []int64{records[0].ID}, Reason: "pedido do RH", Actor: "joao"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// 再アーカイブは同じ行を上書きする
	res, err = svc.Archive(ctx, archive.ArchiveInput{EmployeeIDs: []string{"100"}, ContainerID: box.ID, PeriodID: period.ID, Actor: "maria"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Count)

	records, err = svc.ListRecords(ctx, archive.RecordFilter{EmployeeID: "100"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, archive.StatusArchived, records[0].Status)
	assert.Nil(t, records[0].UnarchivedAt)
	assert.Empty(t, records[0].UnarchiveReason)

	preview, err := svc.PreviewContainerDeletion(ctx, box.ID)
	require.NoError(t, err)
	require.Len(t, preview.Records, 3)

	del, err := svc.DeleteContainer(ctx, archive.DeleteContainerInput{ContainerID: box.ID, Reason: "caixa extraviada", Actor: "maria", PreviewToken: preview.Token})
	require.NoError(t, err)
	assert.Equal(t, 3, del.Unarchived)

	all, err := svc.ListRecords(ctx, archive.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, r := range all {
		assert.Equal(t, archive.StatusUnarchived, r.Status)
		assert.Contains(t, r.UnarchiveReason, "exclusão da caixa 7")
	}

	containers, err := svc.ListContainers(ctx, period.ID)
	require.NoError(t, err)
	assert.Empty(t, containers)

	logs, err := wb.Table(logSchema.Name).ReadAll(ctx)
	require.NoError(t, err)
	// CRIAR_MES, CRIAR_CAIXA, 3 x ARQUIVAR, DESARQUIVAR, ARQUIVAR, 3 x DESARQUIVAR, EXCLUIR_CAIXA
	assert.Len(t, logs, 1+11)
}

func TestArchiveRepository_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.xlsx")
	wb, err := Open(path)
	require.NoError(t, err)

	repo := NewArchiveRepository(wb, nil)
	p, err := repo.CreatePeriod(ctx, &archive.Period{Label: "01/2026"})
	require.NoError(t, err)

	reopened, err := Open(path)
	require.NoError(t, err)
	found, err := NewArchiveRepository(reopened, nil).FindPeriod(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "01/2026", found.Label)

	_, err = NewArchiveRepository(reopened, nil).FindPeriod(ctx, 99)
	assert.ErrorIs(t, err, archive.ErrPeriodNotFound)
}

func TestLogWriter_FailureIsBestEffort(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "db.xlsx")
	wb, err := Open(path)
	require.NoError(t, err)
	writer := NewLogWriter(wb, nil, logging.NewWithWriter(&buf, logging.Options{Format: "text", Level: "warn"}))

	require.NoError(t, os.Remove(path))

	err = writer.Append(context.Background(), []archive.LogEntry{{Actor: "maria", Action: archive.ActionArchive, Detail: "x", At: testNow}})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "log entries dropped")
}

func TestRosterRepository_ListAndUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wb := openTestWorkbook(t)
	repo := NewRosterRepository(wb, nil)

	require.NoError(t, wb.Table(employeeSchema.Name).Overwrite(ctx, [][]string{
		{"MATRICULA", "NOME", "CONTRATO", "DATA_ADMISSAO", "DATA_DEMISSAO"},
		{"100.0", "Bruno", "Hospital São Lucas", "01/02/2020", ""},
		{"101", "Ana", "hospital sao lucas", "2021-03-04", "15/01/2026"},
		{"102", "Carla", "Escola", "data?", ""},
	}))

	list, err := repo.List(ctx, roster.Filter{Contract: "HOSPITAL SAO LUCAS"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Ana", list[0].Name)
	assert.Equal(t, "100", list[1].ID)

	carla, err := repo.FindByID(ctx, "102")
	require.NoError(t, err)
	assert.False(t, carla.Admission.Empty())
	_, ok := carla.Admission.Time()
	assert.False(t, ok)

	n, err := repo.Upsert(ctx, []*roster.Employee{
		{ID: "102", Name: "Carla Dias", Contract: "Escola", Admission: roster.ParseDate("05/05/2022"), Disability: true},
		{ID: "103", Name: "Davi", Contract: "Escola"},
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	carla, err = repo.FindByID(ctx, "102")
	require.NoError(t, err)
	assert.Equal(t, "Carla Dias", carla.Name)
	assert.True(t, carla.Disability)
	require.NotNil(t, carla.UpdatedAt)

	all, err := repo.List(ctx, roster.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = repo.FindByID(ctx, "999")
	assert.ErrorIs(t, err, roster.ErrEmployeeNotFound)
}

func TestRosterRepository_UpsertKeepsUnparseableDates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wb := openTestWorkbook(t)
	repo := NewRosterRepository(wb, nil)

	_, err := repo.Upsert(ctx, []*roster.Employee{{
		ID:        "200",
		Name:      "Eva",
		Admission: roster.ParseDate("01/01/2020"),
		Dismissal: roster.ParseDate("31/13/2025"),
	}}, testNow)
	require.NoError(t, err)

	eva, err := repo.FindByID(ctx, "200")
	require.NoError(t, err)
	assert.Equal(t, "31/13/2025", eva.Dismissal.Raw)
	assert.False(t, eva.Dismissal.Empty())

	// 空欄として読み戻されると在籍扱いになってしまう
	window, err := reconcile.WindowFor("01-2026")
	require.NoError(t, err)
	assert.False(t, reconcile.ActiveIn(eva, window))
}

func TestRosterRepository_UpsertKeepsTextualIDs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wb := openTestWorkbook(t)
	repo := NewRosterRepository(wb, nil)

	n, err := repo.Upsert(ctx, []*roster.Employee{
		{ID: "A-77", Name: "Fabio"},
		{ID: "0123", Name: "Gil"},
		{ID: "123", Name: "Helena"},
	}, testNow)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = repo.Upsert(ctx, []*roster.Employee{{ID: "0123", Name: "Gil Souza"}}, testNow)
	require.NoError(t, err)

	gil, err := repo.FindByID(ctx, "0123")
	require.NoError(t, err)
	assert.Equal(t, "Gil Souza", gil.Name)

	helena, err := repo.FindByID(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "Helena", helena.Name)

	fabio, err := repo.FindByID(ctx, "A-77")
	require.NoError(t, err)
	assert.Equal(t, "A-77", fabio.ID)

	all, err := repo.List(ctx, roster.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestArchiveRepository_EditsKeepUserColumns(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	wb := openTestWorkbook(t)
	svc := newArchiveService(t, wb)

	period, err := svc.CreatePeriod(ctx, archive.CreatePeriodInput{Label: "03-2026", Actor: "maria"})
	require.NoError(t, err)
	box, err := svc.CreateContainer(ctx, archive.CreateContainerInput{Number: "9", PeriodID: period.ID, Actor: "maria"})
	require.NoError(t, err)
	_, err = svc.Archive(ctx, archive.ArchiveInput{EmployeeIDs: []string{"100"}, ContainerID: box.ID, PeriodID: period.ID, Actor: "maria"})
	require.NoError(t, err)

	// 利用者がシートに独自の列を追加した状態
	table := wb.Table(recordSchema.Name)
	grid, err := table.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	row := make([]string, len(grid[0]), len(grid[0])+1)
	copy(row, grid[1])
	grid[0] = append(grid[0], "NOTA")
	grid[1] = append(row, "pasta azul")
	require.NoError(t, table.Overwrite(ctx, grid))

	records, err := svc.ListRecords(ctx, archive.RecordFilter{EmployeeID: "100"})
	require.NoError(t, err)
	require.Len(t, records, 1)

	_, err = svc.Unarchive(ctx, archive.UnarchiveInput{RecordIDs: []int64{records[0].ID}, Reason: "conferência", Actor: "joao"})
	require.NoError(t, err)

	grid, err = table.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	note := -1
	for i, h := range grid[0] {
		if h == "NOTA" {
			note = i
		}
	}
	require.NotEqual(t, -1, note)
	require.Greater(t, len(grid[1]), note)
	assert.Equal(t, "pasta azul", grid[1][note])

	records, err = svc.ListRecords(ctx, archive.RecordFilter{EmployeeID: "100"})
	require.NoError(t, err)
	assert.Equal(t, archive.StatusUnarchived, records[0].Status)
}
