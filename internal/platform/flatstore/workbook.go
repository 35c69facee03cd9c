package flatstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xuri/excelize/v2"
)

// Workbook は 1 つの xlsx ファイルを複数の表 (シート) として扱います。
//
// mu はファイル単位の入出力 (開く→書く→保存) を直列化するだけで、
// 呼び出しをまたぐ読み取り→上書きのサイクルは保護しません。
type Workbook struct {
	path string
	mu   sync.Mutex
}

// OpenWorkbook は path のワークブックを開きます。存在しない場合は sheets を持つ新規ファイルを作成し、
// 存在する場合も不足しているシートを追加します。
func OpenWorkbook(path string, sheets ...string) (*Workbook, error) {
	if path == "" {
		return nil, errors.New("flatstore: workbook path is required")
	}
	wb := &Workbook{path: path}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := wb.create(sheets); err != nil {
			return nil, err
		}
		return wb, nil
	} else if err != nil {
		return nil, fmt.Errorf("flatstore: stat %s: %w", path, err)
	}

	err := wb.withFile(func(f *excelize.File) (bool, error) {
		dirty := false
		for _, name := range sheets {
			idx, err := f.GetSheetIndex(name)
			if err != nil {
				return false, err
			}
			if idx >= 0 {
				continue
			}
			if _, err := f.NewSheet(name); err != nil {
				return false, err
			}
			dirty = true
		}
		return dirty, nil
	})
	if err != nil {
		return nil, err
	}
	return wb, nil
}

// Path はワークブックのファイルパスを返します。
func (w *Workbook) Path() string {
	return w.path
}

// Table は sheet を Table として返します。
func (w *Workbook) Table(sheet string) *SheetTable {
	return &SheetTable{wb: w, sheet: sheet}
}

func (w *Workbook) create(sheets []string) error {
	if len(sheets) == 0 {
		return errors.New("flatstore: at least one sheet is required")
	}
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("flatstore: create dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheets[0]); err != nil {
		return fmt.Errorf("flatstore: rename default sheet: %w", err)
	}
	for _, name := range sheets[1:] {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("flatstore: create sheet %s: %w", name, err)
		}
	}
	return w.save(f)
}

func (w *Workbook) withFile(fn func(f *excelize.File) (bool, error)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return fmt.Errorf("flatstore: open %s: %w", w.path, err)
	}
	defer f.Close()

	dirty, err := fn(f)
	if err != nil {
		return err
	}
	if !dirty {
		return nil
	}
	return w.save(f)
}

// save は一時ファイルに書き出してから rename し、旧イメージか新イメージのどちらかだけが残るようにします。
func (w *Workbook) save(f *excelize.File) error {
	tmp, err := os.CreateTemp(filepath.Dir(w.path), ".flatstore-*.xlsx")
	if err != nil {
		return fmt.Errorf("flatstore: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := f.Write(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("flatstore: write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("flatstore: close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, w.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("flatstore: replace workbook: %w", err)
	}
	return nil
}

// SheetTable はワークブック内の 1 シートです。
type SheetTable struct {
	wb    *Workbook
	sheet string
}

// Name はシート名を返します。
func (t *SheetTable) Name() string {
	return t.sheet
}

// Header は 1 行目を返します。
func (t *SheetTable) Header(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var header []string
	err := t.wb.withFile(func(f *excelize.File) (bool, error) {
		rows, err := f.Rows(t.sheet)
		if err != nil {
			return false, err
		}
		defer rows.Close()

		if rows.Next() {
			cols, err := rows.Columns()
			if err != nil {
				return false, err
			}
			header = cols
		}
		return false, rows.Error()
	})
	return header, err
}

// WriteHeader は 1 行目のみを書き換えます。
func (t *SheetTable) WriteHeader(ctx context.Context, header []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.wb.withFile(func(f *excelize.File) (bool, error) {
		cells := append([]string(nil), header...)
		if err := f.SetSheetRow(t.sheet, "A1", &cells); err != nil {
			return false, err
		}
		return true, nil
	})
}

// ReadAll はヘッダーを含む全行を返します。
func (t *SheetTable) ReadAll(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var grid [][]string
	err := t.wb.withFile(func(f *excelize.File) (bool, error) {
		rows, err := f.GetRows(t.sheet)
		if err != nil {
			return false, err
		}
		grid = rows
		return false, nil
	})
	return grid, err
}

// Overwrite はシートの内容を grid で置き換え、1 回の保存で反映します。
func (t *SheetTable) Overwrite(ctx context.Context, grid [][]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.wb.withFile(func(f *excelize.File) (bool, error) {
		existing, err := f.GetRows(t.sheet)
		if err != nil {
			return false, err
		}

		for i, row := range grid {
			width := len(row)
			if i < len(existing) && len(existing[i]) > width {
				width = len(existing[i])
			}
			cells := make([]string, width)
			copy(cells, row)

			cell, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				return false, err
			}
			if err := f.SetSheetRow(t.sheet, cell, &cells); err != nil {
				return false, err
			}
		}

		for r := len(existing); r > len(grid); r-- {
			if err := f.RemoveRow(t.sheet, r); err != nil {
				return false, err
			}
		}
		return true, nil
	})
}
