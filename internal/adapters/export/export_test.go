package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/ogurasousui/sistemadp/internal/core/reconcile"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleReport(t *testing.T) *reconcile.Report {
	t.Helper()
	report, err := reconcile.Reconcile(reconcile.Input{
		PeriodLabel: "01/2026",
		Contract:    "Hospital",
		Roster: []*roster.Employee{
			{ID: "100", Name: "Ana", Contract: "Hospital", Admission: roster.ParseDate("01/01/2020")},
			{ID: "101", Name: "Bruno", Contract: "Hospital", Admission: roster.ParseDate("01/01/2020")},
		},
		Archived: []string{"101"},
	})
	require.NoError(t, err)
	return report
}

func TestWriteDelimited_AuditTable(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteDelimited(buf, AuditTable(sampleReport(t))))

	reader := csv.NewReader(bytes.NewReader(buf.Bytes()))
	reader.Comma = ';'
	records, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "MATRICULA", records[0][0])
	assert.Equal(t, []string{"100", "Ana", "PENDENTE", "01/2026", "Hospital", "16/12/2025 a 15/01/2026"}, records[1])
	assert.Equal(t, "ARQUIVADO", records[2][2])
}

func TestAuditSummary(t *testing.T) {
	table := AuditSummary(sampleReport(t))
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"01/2026", "Hospital", "2", "1", "1"}, table.Rows[0])
}

func TestWriteWorkbook_TerminationTable(t *testing.T) {
	date := time.Date(2026, 1, 25, 0, 0, 0, 0, time.UTC)
	amount := 1234.5
	records := []*termination.Record{{
		ID:            3,
		EmployeeID:    "100",
		Name:          "Ana",
		DismissalDate: &date,
		HasLoan:       true,
		LoanAmount:    &amount,
		Requester:     "maria",
	}}

	buf := &bytes.Buffer{}
	require.NoError(t, WriteWorkbook(buf, TerminationTable(records)))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(termination.Schema.Name)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, termination.Schema.Columns, rows[0])
	assert.Equal(t, "3", rows[1][0])
	assert.Equal(t, "25/01/2026", rows[1][10])
	assert.Equal(t, "SIM", rows[1][11])
	assert.Equal(t, termination.FormatAmount(&amount), rows[1][12])
	assert.Equal(t, "PENDENTE", rows[1][13])
}

func TestWriteWorkbook_AuditWithSummarySheet(t *testing.T) {
	report := sampleReport(t)
	buf := &bytes.Buffer{}
	require.NoError(t, WriteWorkbook(buf, AuditTable(report), AuditSummary(report)))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Auditoria", "Resumo"}, f.GetSheetList())
	rows, err := f.GetRows("Resumo")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"01/2026", "Hospital", "2", "1", "1"}, rows[1])
}

func TestWriteWorkbook_DefaultSheetName(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, WriteWorkbook(buf, Table{Header: []string{"A"}}))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.Equal(t, "Dados", f.GetSheetName(0))
}
