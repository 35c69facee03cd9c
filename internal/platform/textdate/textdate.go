// Package textdate は表形式ストアに文字列で保存される日付の解析と整形を提供します。
package textdate

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

const (
	// LayoutSlash はフラットストアで使用する日付書式です。
	LayoutSlash = "02/01/2006"
	// LayoutDash はリレーショナル側のエクスポートで使用する日付書式です。
	LayoutDash = "02-01-2006"
	// LayoutISO は ISO 8601 の日付書式です。
	LayoutISO = "2006-01-02"
	// LayoutTimestamp はフラットストアで使用する日時書式です。
	LayoutTimestamp = "02/01/2006 15:04:05"
)

// 日が先に来る書式を優先して試行します。
var layouts = []string{
	LayoutSlash,
	LayoutDash,
	"02/01/2006 15:04:05",
	"02-01-2006 15:04:05",
	"2/1/2006",
	"2-1-2006",
	"02/01/06",
	LayoutISO,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Parse は文字列を日付として解析します。解析できない場合は false を返します。
func Parse(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return truncate(t), true
		}
	}

	// スプレッドシートのシリアル値 (例: 45667)
	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil && serial > 0 && serial < 2958466 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return truncate(t), true
		}
	}

	return time.Time{}, false
}

// ParseTimestamp は時刻を含む文字列を解析します。時刻が無い場合は日付の 0 時として扱います。
func ParseTimestamp(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range []string{LayoutTimestamp, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return Parse(trimmed)
}

// Format は日付を指定書式で整形します。ゼロ値の場合は空文字を返します。
func Format(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}

// FormatPtr は nil を許容する Format です。
func FormatPtr(t *time.Time, layout string) string {
	if t == nil {
		return ""
	}
	return Format(*t, layout)
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
