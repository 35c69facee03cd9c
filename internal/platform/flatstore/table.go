// Package flatstore は行単位のトランザクションを持たない表形式ストア
// (全件読み込みと全件上書きのみ可能) へのアクセスを提供します。
package flatstore

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrMissingID は同期対象の行に ID が無い場合に返却されます。
var ErrMissingID = errors.New("flatstore: row without id")

// Table は全件読み込みと全件上書きのみをサポートする表です。
type Table interface {
	Name() string
	// Header は 1 行目 (列名) を返します。空の表では空スライスです。
	Header(ctx context.Context) ([]string, error)
	// WriteHeader は 1 行目のみを書き換えます。
	WriteHeader(ctx context.Context, header []string) error
	// ReadAll はヘッダーを含む全行を返します。
	ReadAll(ctx context.Context) ([][]string, error)
	// Overwrite は表全体を grid (先頭行はヘッダー) で置き換えます。
	Overwrite(ctx context.Context, grid [][]string) error
}

// Row は列名をキーとした 1 行分の値です。
type Row map[string]string

// Get は列の値を前後の空白を除いて返します。
func (r Row) Get(column string) string {
	return strings.TrimSpace(r[column])
}

// Schema はエンティティごとに必須となる列集合です。Version は列集合を変更するたびに増やします。
type Schema struct {
	Name     string
	Version  int
	IDColumn string
	Columns  []string
}

// ParseID は ID 列の値を整数に変換します。"12.0" のような表記も受け付けます。
func ParseID(raw string) (int64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return id, true
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// FormatID は ID を列に書き込む文字列表現に変換します。
func FormatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
