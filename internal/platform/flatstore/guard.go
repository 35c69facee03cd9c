package flatstore

import (
	"context"
	"fmt"
	"strings"
)

// EnsureSchema はヘッダー行に schema の必須列が揃っていることを保証します。
// 不足列はヘッダー末尾に schema の順序で追加され、既存列の順序や値は変更されません。
// 追加した列名を返します。
func EnsureSchema(ctx context.Context, table Table, schema Schema) ([]string, error) {
	header, err := table.Header(ctx)
	if err != nil {
		return nil, fmt.Errorf("flatstore: read header of %s: %w", table.Name(), err)
	}

	missing := MissingColumns(header, schema.Columns)
	if len(missing) == 0 {
		return nil, nil
	}

	next := make([]string, 0, len(header)+len(missing))
	next = append(next, trimTrailingBlank(header)...)
	next = append(next, missing...)

	if err := table.WriteHeader(ctx, next); err != nil {
		return nil, fmt.Errorf("flatstore: write header of %s (schema v%d): %w", table.Name(), schema.Version, err)
	}
	return missing, nil
}

// MissingColumns は required のうち header に存在しない列を required の順序で返します。
func MissingColumns(header, required []string) []string {
	present := make(map[string]struct{}, len(header))
	for _, h := range header {
		present[columnKey(h)] = struct{}{}
	}

	var missing []string
	for _, col := range required {
		key := columnKey(col)
		if _, ok := present[key]; ok {
			continue
		}
		present[key] = struct{}{}
		missing = append(missing, col)
	}
	return missing
}

func columnKey(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func trimTrailingBlank(header []string) []string {
	end := len(header)
	for end > 0 && strings.TrimSpace(header[end-1]) == "" {
		end--
	}
	return header[:end]
}
