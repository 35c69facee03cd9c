// Package export は絞り込み結果を区切り文字テキストと xlsx に出力します。
// 出力はいずれも読み取り専用の派生ビューであり、ストアには書き戻しません。
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// Table は出力対象の表です。
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// WriteDelimited は ";" 区切りで Table を書き出します。
func WriteDelimited(w io.Writer, t Table) error {
	writer := csv.NewWriter(w)
	writer.Comma = ';'
	defer writer.Flush()

	if err := writer.Write(t.Header); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteWorkbook は t を先頭シート、extra を後続のシートとする xlsx を書き出します。
func WriteWorkbook(w io.Writer, t Table, extra ...Table) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: header style: %w", err)
	}

	first := sheetName(t, 0)
	if err := f.SetSheetName(f.GetSheetName(0), first); err != nil {
		return fmt.Errorf("export: rename sheet: %w", err)
	}
	if err := writeSheet(f, first, t, style); err != nil {
		return err
	}

	for i, more := range extra {
		name := sheetName(more, i+1)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("export: add sheet %s: %w", name, err)
		}
		if err := writeSheet(f, name, more, style); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func sheetName(t Table, index int) string {
	if t.Title != "" {
		return t.Title
	}
	if index == 0 {
		return "Dados"
	}
	return fmt.Sprintf("Dados%d", index+1)
}

func writeSheet(f *excelize.File, sheet string, t Table, style int) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("export: stream writer: %w", err)
	}

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = excelize.Cell{StyleID: style, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for i, row := range t.Rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return fmt.Errorf("export: write row %d: %w", i+1, err)
		}
	}

	if err := sw.Flush(); err != nil {
		return fmt.Errorf("export: flush %s: %w", sheet, err)
	}
	return nil
}
