// Package rosterfile は人事システムから出力された xls / xlsx の従業員一覧を読み込みます。
package rosterfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
)

const maxRows = 100000

var (
	ErrEmptyWorksheet = errors.New("rosterfile: worksheet is empty")
	ErrMissingColumn  = errors.New("rosterfile: missing required column")
)

// 見出しの別名。キーは FoldLabel した上で空白を "_" にした値です。
var headerAliases = map[string]string{
	"MATRICULA":          "MATRICULA",
	"MAT":                "MATRICULA",
	"NOME":               "NOME",
	"FUNCIONARIO":        "NOME",
	"CONTRATO":           "CONTRATO",
	"LOCACAO":            "CONTRATO",
	"CENTRO_DE_CUSTO":    "CONTRATO",
	"RESPONSAVEL":        "RESPONSAVEL",
	"CPF":                "CPF",
	"PCD":                "PCD",
	"DATA_ADMISSAO":      "DATA_ADMISSAO",
	"ADMISSAO":           "DATA_ADMISSAO",
	"DATA_DEMISSAO":      "DATA_DEMISSAO",
	"DEMISSAO":           "DATA_DEMISSAO",
	"SIT_FOLHA":          "SIT_FOLHA",
	"SITUACAO":           "SIT_FOLHA",
	"SITUACAO_NA_FOLHA":  "SIT_FOLHA",
	"ULTIMA_ATUALIZACAO": "ULTIMA_ATUALIZACAO",
}

// Parse は filename の拡張子に応じて xls または xlsx を読み込み、従業員一覧を返します。
// マトリクラが空の行は読み飛ばします。
func Parse(r io.Reader, filename string) ([]*roster.Employee, error) {
	rows, err := readRows(r, filename)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	for i, h := range rows[0] {
		key := strings.ReplaceAll(roster.FoldLabel(h), " ", "_")
		if canonical, ok := headerAliases[key]; ok {
			if _, seen := index[canonical]; !seen {
				index[canonical] = i
			}
		}
	}
	for _, required := range []string{"MATRICULA", "NOME"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	cell := func(row []string, column string) string {
		idx, ok := index[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	employees := make([]*roster.Employee, 0, len(rows)-1)
	for _, row := range rows[1:] {
		id := roster.NormalizeID(cell(row, "MATRICULA"))
		if id == "" {
			continue
		}
		employees = append(employees, &roster.Employee{
			ID:            id,
			Name:          cell(row, "NOME"),
			Contract:      cell(row, "CONTRATO"),
			Supervisor:    cell(row, "RESPONSAVEL"),
			TaxID:         cell(row, "CPF"),
			Disability:    termination.FlagDisability.Decode(cell(row, "PCD")),
			Admission:     roster.ParseDate(cell(row, "DATA_ADMISSAO")),
			Dismissal:     roster.ParseDate(cell(row, "DATA_DEMISSAO")),
			PayrollStatus: cell(row, "SIT_FOLHA"),
		})
	}
	return employees, nil
}

func readRows(r io.Reader, filename string) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("rosterfile: read: %w", err)
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xls":
		wb, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("rosterfile: open xls: %w", err)
		}
		if wb.NumSheets() == 0 {
			return nil, ErrEmptyWorksheet
		}
		rows := wb.ReadAllCells(maxRows)
		if len(rows) == 0 {
			return nil, ErrEmptyWorksheet
		}
		return rows, nil
	default:
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("rosterfile: open xlsx: %w", err)
		}
		defer func() { _ = f.Close() }()

		sheet := f.GetSheetName(0)
		if sheet == "" {
			return nil, ErrEmptyWorksheet
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("rosterfile: read sheet: %w", err)
		}
		if len(rows) == 0 {
			return nil, ErrEmptyWorksheet
		}
		return rows, nil
	}
}
