package sheet

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/core/termination"
	"github.com/ogurasousui/sistemadp/internal/platform/flatstore"
	"github.com/ogurasousui/sistemadp/internal/platform/textdate"
)

// RosterRepository は FUNCIONARIOS シートを読み取る従業員マスタの実装です。
type RosterRepository struct {
	employees *flatstore.Syncer
}

// NewRosterRepository は RosterRepository を生成します。
func NewRosterRepository(wb *flatstore.Workbook, observer flatstore.Observer) *RosterRepository {
	return &RosterRepository{
		employees: flatstore.NewSyncer(wb.Table(employeeSchema.Name), employeeSchema, observer),
	}
}

// List は従業員を氏名順に返します。契約名の比較は大文字小文字・アクセントを区別しません。
func (r *RosterRepository) List(ctx context.Context, filter roster.Filter) ([]*roster.Employee, error) {
	snap, err := r.employees.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	contract := strings.TrimSpace(filter.Contract)
	out := make([]*roster.Employee, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		e := decodeEmployee(row)
		if e.ID == "" {
			continue
		}
		if contract != "" && !roster.SameLabel(contract, e.Contract) {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// FindByID はマトリクラで従業員を取得します。
func (r *RosterRepository) FindByID(ctx context.Context, id string) (*roster.Employee, error) {
	snap, err := r.employees.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	want := roster.NormalizeID(id)
	for _, row := range snap.Rows {
		if e := decodeEmployee(row); e.ID == want {
			return e, nil
		}
	}
	return nil, roster.ErrEmployeeNotFound
}

// Upsert は取り込んだ従業員をマトリクラをキーに書き戻します。
// マトリクラは文字列のまま保持し、行の同定には採番した ID 列を使います。
func (r *RosterRepository) Upsert(ctx context.Context, employees []*roster.Employee, at time.Time) (int, error) {
	snap, err := r.employees.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	next := snap.NextID()
	byKey := make(map[string]int64, len(snap.Rows))
	for _, row := range snap.Rows {
		id, ok := flatstore.ParseID(row[employeeSchema.IDColumn])
		if !ok {
			// ID 列追加前の行
			id = next
			next++
			row[employeeSchema.IDColumn] = flatstore.FormatID(id)
		}
		if key := roster.NormalizeID(row.Get("MATRICULA")); key != "" {
			byKey[key] = id
		}
	}

	edits := make([]flatstore.Row, 0, len(employees))
	for _, e := range employees {
		if e == nil {
			continue
		}
		key := roster.NormalizeID(e.ID)
		if key == "" {
			continue
		}
		id, ok := byKey[key]
		if !ok {
			id = next
			next++
			byKey[key] = id
		}
		edits = append(edits, encodeEmployee(id, e, at))
	}
	if len(edits) == 0 {
		return 0, nil
	}

	if _, err := r.employees.Publish(ctx, snap, edits); err != nil {
		return 0, err
	}
	return len(edits), nil
}

func decodeEmployee(row flatstore.Row) *roster.Employee {
	e := &roster.Employee{
		ID:            roster.NormalizeID(row.Get("MATRICULA")),
		Name:          row.Get("NOME"),
		Contract:      row.Get("CONTRATO"),
		Supervisor:    row.Get("RESPONSAVEL"),
		TaxID:         row.Get("CPF"),
		Disability:    termination.FlagDisability.Decode(row.Get("PCD")),
		Admission:     roster.ParseDate(row.Get("DATA_ADMISSAO")),
		Dismissal:     roster.ParseDate(row.Get("DATA_DEMISSAO")),
		PayrollStatus: row.Get("SIT_FOLHA"),
	}
	if t, ok := textdate.ParseTimestamp(row.Get("ULTIMA_ATUALIZACAO")); ok {
		e.UpdatedAt = &t
	}
	return e
}

func encodeEmployee(id int64, e *roster.Employee, at time.Time) flatstore.Row {
	return flatstore.Row{
		"ID":                 flatstore.FormatID(id),
		"MATRICULA":          roster.NormalizeID(e.ID),
		"NOME":               e.Name,
		"CONTRATO":           e.Contract,
		"RESPONSAVEL":        e.Supervisor,
		"CPF":                e.TaxID,
		"PCD":                termination.FlagDisability.Encode(e.Disability),
		"DATA_ADMISSAO":      encodeDate(e.Admission),
		"DATA_DEMISSAO":      encodeDate(e.Dismissal),
		"SIT_FOLHA":          e.PayrollStatus,
		"ULTIMA_ATUALIZACAO": formatTimestamp(&at),
	}
}

// encodeDate は解析できた日付を dd/mm/yyyy で書き、解析できない値は入力のまま残します。
func encodeDate(d roster.Date) string {
	if t, ok := d.Time(); ok {
		return t.Format(textdate.LayoutSlash)
	}
	return d.Raw
}
