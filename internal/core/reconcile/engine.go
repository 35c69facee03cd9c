// Package reconcile は参照月ごとに「誰がアーカイブ済みであるべきか」と
// 「実際に誰がアーカイブ済みか」を突き合わせます。
package reconcile

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ogurasousui/sistemadp/internal/core/roster"
)

// ErrInvalidPeriodLabel は参照月ラベルが MM/YYYY または MM-YYYY でない場合に返却されます。
var ErrInvalidPeriodLabel = errors.New("reconcile: period label must be MM/YYYY or MM-YYYY")

// ErrContractRequired は突き合わせ対象の契約が指定されていない場合に返却されます。
var ErrContractRequired = errors.New("reconcile: contract is required")

var periodPattern = regexp.MustCompile(`^\s*(\d{1,2})\s*[/-]\s*(\d{4})\s*$`)

// Window は在籍判定に用いる期間 (前月 16 日から当月 15 日まで、両端を含む) です。
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains は t が期間内にあるかを返します。
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ParsePeriod は参照月ラベルを月と年に分解します。
func ParsePeriod(label string) (time.Month, int, error) {
	m := periodPattern.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodLabel, label)
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriodLabel, label)
	}
	return time.Month(month), year, nil
}

// CanonicalLabel は参照月ラベルを MM/YYYY 形式に揃えます。
func CanonicalLabel(label string) (string, error) {
	month, year, err := ParsePeriod(label)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%02d/%04d", int(month), year), nil
}

// WindowFor は参照月ラベルから在籍判定期間を計算します。1 月の場合は前年 12 月 16 日から始まります。
func WindowFor(label string) (Window, error) {
	month, year, err := ParsePeriod(label)
	if err != nil {
		return Window{}, err
	}
	return Window{
		Start: time.Date(year, month-1, 16, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, month, 15, 0, 0, 0, 0, time.UTC),
	}, nil
}

// Input は突き合わせの入力です。Archived は当該参照月で ARQUIVADO の従業員 ID です。
type Input struct {
	PeriodLabel string
	Contract    string
	Roster      []*roster.Employee
	Archived    []string
}

// EmployeeRef は結果に含める従業員の識別情報です。
type EmployeeRef struct {
	ID   string
	Name string
}

// Report は突き合わせ結果です。Expected = Archived + Missing が常に成り立ちます。
type Report struct {
	Period            string
	Contract          string
	Window            Window
	Expected          int
	Archived          int
	Missing           int
	MissingEmployees  []EmployeeRef
	ArchivedEmployees []EmployeeRef
}

// Reconcile は入力のみから結果を計算する純粋関数です。
//
// 在籍判定は 入社日 <= 期間末 かつ (退職日なし または 退職日 >= 期間初) です。
// 期間途中の契約移動や休職は考慮しません。日付が解析できない従業員は在籍とみなしません。
func Reconcile(in Input) (*Report, error) {
	window, err := WindowFor(in.PeriodLabel)
	if err != nil {
		return nil, err
	}
	contract := strings.TrimSpace(in.Contract)
	if contract == "" {
		return nil, ErrContractRequired
	}

	archived := make(map[string]struct{}, len(in.Archived))
	for _, id := range in.Archived {
		archived[roster.NormalizeID(id)] = struct{}{}
	}

	report := &Report{
		Period:            in.PeriodLabel,
		Contract:          in.Contract,
		Window:            window,
		MissingEmployees:  []EmployeeRef{},
		ArchivedEmployees: []EmployeeRef{},
	}

	seen := make(map[string]struct{}, len(in.Roster))
	for _, e := range in.Roster {
		if e == nil {
			continue
		}
		if !roster.SameLabel(e.Contract, contract) {
			continue
		}
		if !ActiveIn(e, window) {
			continue
		}

		id := roster.NormalizeID(e.ID)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		ref := EmployeeRef{ID: id, Name: e.Name}
		if _, ok := archived[id]; ok {
			report.ArchivedEmployees = append(report.ArchivedEmployees, ref)
			continue
		}
		report.MissingEmployees = append(report.MissingEmployees, ref)
	}

	sortRefs(report.MissingEmployees)
	sortRefs(report.ArchivedEmployees)

	report.Archived = len(report.ArchivedEmployees)
	report.Missing = len(report.MissingEmployees)
	report.Expected = report.Archived + report.Missing
	return report, nil
}

// ActiveIn は従業員が期間内に在籍していたかを返します。
func ActiveIn(e *roster.Employee, w Window) bool {
	admission, ok := e.Admission.Time()
	if !ok || admission.After(w.End) {
		return false
	}
	if e.Dismissal.Empty() {
		return true
	}
	dismissal, ok := e.Dismissal.Time()
	if !ok {
		return false
	}
	return !dismissal.Before(w.Start)
}

func sortRefs(refs []EmployeeRef) {
	sort.SliceStable(refs, func(i, j int) bool {
		if refs[i].Name != refs[j].Name {
			return refs[i].Name < refs[j].Name
		}
		return refs[i].ID < refs[j].ID
	})
}
