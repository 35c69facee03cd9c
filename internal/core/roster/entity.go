package roster

import (
	"strings"
	"time"

	"github.com/ogurasousui/sistemadp/internal/platform/textdate"
)

// Employee は外部の人事マスタから取り込まれる従業員の参照データです。
type Employee struct {
	ID            string
	Name          string
	Contract      string
	Supervisor    string
	TaxID         string
	Disability    bool
	Admission     Date
	Dismissal     Date
	PayrollStatus string
	UpdatedAt     *time.Time
}

// Date は文字列由来の日付です。空欄と解析不能な値を区別します。
type Date struct {
	Raw   string
	value time.Time
	ok    bool
}

// ParseDate は文字列から Date を生成します。
func ParseDate(raw string) Date {
	trimmed := strings.TrimSpace(raw)
	t, ok := textdate.Parse(trimmed)
	return Date{Raw: trimmed, value: t, ok: ok}
}

// DateOf は time.Time から Date を生成します。nil は空欄として扱います。
func DateOf(t *time.Time) Date {
	if t == nil {
		return Date{}
	}
	v := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Date{Raw: v.Format(textdate.LayoutISO), value: v, ok: true}
}

// Empty は値が入力されていない場合に true を返します。
func (d Date) Empty() bool {
	return !d.ok && d.Raw == ""
}

// Time は解析済みの日付を返します。空欄または解析不能の場合は false です。
func (d Date) Time() (time.Time, bool) {
	return d.value, d.ok
}

// Ptr は解析済みの日付のポインタを返します。
func (d Date) Ptr() *time.Time {
	if !d.ok {
		return nil
	}
	v := d.value
	return &v
}
