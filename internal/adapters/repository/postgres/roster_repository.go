package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	pgdb "github.com/ogurasousui/sistemadp/internal/platform/db/postgres"
)

// data_*_texto は DATE に変換できなかった入力値をそのまま保持します。
const employeeColumns = `matricula, nome, contrato, responsavel, cpf, pcd, data_admissao, data_demissao, sit_folha, ultima_atualizacao, data_admissao_texto, data_demissao_texto`

// RosterRepository は employees テーブルを読み取る従業員マスタの実装です。
type RosterRepository struct {
	pool pgdb.Queryer
}

// NewRosterRepository は RosterRepository を生成します。
func NewRosterRepository(pool pgdb.Queryer) *RosterRepository {
	return &RosterRepository{pool: pool}
}

// List は従業員を氏名順に返します。
func (r *RosterRepository) List(ctx context.Context, filter roster.Filter) ([]*roster.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := make([]any, 0, 1)
	if c := strings.TrimSpace(filter.Contract); c != "" {
		query += ` WHERE upper(trim(contrato)) = upper($1)`
		args = append(args, c)
	}
	query += ` ORDER BY nome, matricula`

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]*roster.Employee, 0)
	for rows.Next() {
		e, err := scanRosterEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// FindByID はマトリクラで従業員を取得します。
func (r *RosterRepository) FindByID(ctx context.Context, id string) (*roster.Employee, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE matricula = $1`, roster.NormalizeID(id))

	e, err := scanRosterEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, roster.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Upsert は取り込んだ従業員をマトリクラをキーに作成または更新し、適用件数を返します。
func (r *RosterRepository) Upsert(ctx context.Context, employees []*roster.Employee, at time.Time) (int, error) {
	applied := 0
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	for _, e := range employees {
		if e == nil || roster.NormalizeID(e.ID) == "" {
			continue
		}
		tag, err := exec.Exec(ctx, `
            INSERT INTO employees (`+employeeColumns+`)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
            ON CONFLICT (matricula) DO UPDATE
               SET nome = EXCLUDED.nome,
                   contrato = EXCLUDED.contrato,
                   responsavel = EXCLUDED.responsavel,
                   cpf = EXCLUDED.cpf,
                   pcd = EXCLUDED.pcd,
                   data_admissao = EXCLUDED.data_admissao,
                   data_demissao = EXCLUDED.data_demissao,
                   sit_folha = EXCLUDED.sit_folha,
                   ultima_atualizacao = EXCLUDED.ultima_atualizacao,
                   data_admissao_texto = EXCLUDED.data_admissao_texto,
                   data_demissao_texto = EXCLUDED.data_demissao_texto
        `,
			roster.NormalizeID(e.ID),
			e.Name,
			e.Contract,
			e.Supervisor,
			e.TaxID,
			e.Disability,
			nullableDate(e.Admission.Ptr()),
			nullableDate(e.Dismissal.Ptr()),
			e.PayrollStatus,
			at,
			unparsedDate(e.Admission),
			unparsedDate(e.Dismissal),
		)
		if err != nil {
			return applied, fmt.Errorf("postgres: upsert employee %s: %w", e.ID, err)
		}
		applied += int(tag.RowsAffected())
	}
	return applied, nil
}

func scanRosterEmployee(row pgx.Row) (*roster.Employee, error) {
	var (
		e          roster.Employee
		contract   sql.NullString
		supervisor sql.NullString
		taxID      sql.NullString
		disability sql.NullBool
		admission  sql.NullTime
		dismissal  sql.NullTime
		payroll    sql.NullString
		updatedAt  sql.NullTime
		admText    sql.NullString
		disText    sql.NullString
	)
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&contract,
		&supervisor,
		&taxID,
		&disability,
		&admission,
		&dismissal,
		&payroll,
		&updatedAt,
		&admText,
		&disText,
	); err != nil {
		return nil, err
	}

	e.Contract = contract.String
	e.Supervisor = supervisor.String
	e.TaxID = taxID.String
	e.Disability = disability.Bool
	e.PayrollStatus = payroll.String
	e.Admission = scannedDate(admission, admText)
	e.Dismissal = scannedDate(dismissal, disText)
	if updatedAt.Valid {
		t := updatedAt.Time.UTC()
		e.UpdatedAt = &t
	}
	return &e, nil
}

func scannedDate(value sql.NullTime, text sql.NullString) roster.Date {
	if value.Valid {
		return roster.DateOf(&value.Time)
	}
	return roster.ParseDate(text.String)
}

// unparsedDate は解析できなかった日付の入力値を返します。解析済みまたは空欄なら NULL です。
func unparsedDate(d roster.Date) any {
	if _, ok := d.Time(); ok || d.Empty() {
		return nil
	}
	return d.Raw
}
