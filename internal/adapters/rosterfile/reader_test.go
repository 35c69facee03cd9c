package rosterfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbookBytes(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParse_XLSX(t *testing.T) {
	t.Parallel()

	buf := workbookBytes(t, [][]any{
		{"Matrícula", "Nome", "Locação", "Admissão", "Demissão", "PCD"},
		{"100.0", "Ana", "Hospital", "01/02/2020", "", "SIM"},
		{"", "sem matrícula", "Hospital", "", "", ""},
		{"101", "Bruno", "Escola", "2021-05-06", "15/01/2026", "NÃO"},
	})

	employees, err := Parse(buf, "funcionarios.xlsx")
	require.NoError(t, err)
	require.Len(t, employees, 2)

	assert.Equal(t, "100", employees[0].ID)
	assert.Equal(t, "Hospital", employees[0].Contract)
	assert.True(t, employees[0].Disability)
	assert.True(t, employees[0].Dismissal.Empty())

	assert.False(t, employees[1].Disability)
	_, ok := employees[1].Dismissal.Time()
	assert.True(t, ok)
}

func TestParse_MissingColumn(t *testing.T) {
	t.Parallel()

	buf := workbookBytes(t, [][]any{{"Nome", "Contrato"}, {"Ana", "Hospital"}})
	_, err := Parse(buf, "funcionarios.xlsx")
	assert.ErrorIs(t, err, ErrMissingColumn)
}

func TestParse_EmptyWorkbook(t *testing.T) {
	t.Parallel()

	buf := workbookBytes(t, nil)
	_, err := Parse(buf, "vazio.xlsx")
	assert.ErrorIs(t, err, ErrEmptyWorksheet)
}

func TestParse_InvalidXLS(t *testing.T) {
	t.Parallel()

	_, err := Parse(bytes.NewBufferString("not a workbook"), "funcionarios.xls")
	assert.Error(t, err)
}
