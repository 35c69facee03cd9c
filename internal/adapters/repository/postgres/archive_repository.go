package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/ogurasousui/sistemadp/internal/core/archive"
	pgdb "github.com/ogurasousui/sistemadp/internal/platform/db/postgres"
)

const (
	uniqueViolationCode = "23505"
	checkViolationCode  = "23514"
)

// ArchiveRepository は PostgreSQL を利用したアーカイブ台帳の実装です。
type ArchiveRepository struct {
	pool pgdb.Queryer
}

// NewArchiveRepository は ArchiveRepository を生成します。
func NewArchiveRepository(pool pgdb.Queryer) *ArchiveRepository {
	return &ArchiveRepository{pool: pool}
}

// CreatePeriod は参照月を作成します。
func (r *ArchiveRepository) CreatePeriod(ctx context.Context, p *archive.Period) (*archive.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO periods (mes_referencia)
        VALUES ($1)
        RETURNING id, mes_referencia
    `, p.Label)

	created, err := scanPeriod(row)
	if err != nil {
		return nil, translatePgError(err, archive.ErrPeriodNotFound, archive.ErrPeriodAlreadyExists)
	}
	return created, nil
}

// FindPeriod は ID で参照月を取得します。
func (r *ArchiveRepository) FindPeriod(ctx context.Context, id int64) (*archive.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT id, mes_referencia FROM periods WHERE id = $1`, id)

	found, err := scanPeriod(row)
	if err != nil {
		return nil, translatePgError(err, archive.ErrPeriodNotFound, nil)
	}
	return found, nil
}

// ListPeriods は参照月を ID 順に返します。
func (r *ArchiveRepository) ListPeriods(ctx context.Context) ([]*archive.Period, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, `SELECT id, mes_referencia FROM periods ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	periods := make([]*archive.Period, 0)
	for rows.Next() {
		p, err := scanPeriod(rows)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return periods, nil
}

// DeletePeriod は参照月を削除します。
func (r *ArchiveRepository) DeletePeriod(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM periods WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return archive.ErrPeriodNotFound
	}
	return nil
}

// CreateContainer は保管箱を作成します。
func (r *ArchiveRepository) CreateContainer(ctx context.Context, c *archive.Container) (*archive.Container, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `
        INSERT INTO containers (numero_caixa, mes_id, localizacao)
        VALUES ($1, $2, $3)
        RETURNING id, numero_caixa, mes_id, localizacao
    `, c.Number, c.PeriodID, c.Location)

	created, err := scanContainer(row)
	if err != nil {
		return nil, translatePgError(err, archive.ErrContainerNotFound, archive.ErrContainerAlreadyExists)
	}
	return created, nil
}

// FindContainer は ID で保管箱を取得します。
func (r *ArchiveRepository) FindContainer(ctx context.Context, id int64) (*archive.Container, error) {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	row := exec.QueryRow(ctx, `SELECT id, numero_caixa, mes_id, localizacao FROM containers WHERE id = $1`, id)

	found, err := scanContainer(row)
	if err != nil {
		return nil, translatePgError(err, archive.ErrContainerNotFound, nil)
	}
	return found, nil
}

// ListContainers は参照月の保管箱を返します。periodID が 0 の場合は全件です。
func (r *ArchiveRepository) ListContainers(ctx context.Context, periodID int64) ([]*archive.Container, error) {
	query := `SELECT id, numero_caixa, mes_id, localizacao FROM containers`
	args := make([]any, 0, 1)
	if periodID != 0 {
		query += ` WHERE mes_id = $1`
		args = append(args, periodID)
	}
	query += ` ORDER BY numero_caixa, id`

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	containers := make([]*archive.Container, 0)
	for rows.Next() {
		c, err := scanContainer(rows)
		if err != nil {
			return nil, err
		}
		containers = append(containers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return containers, nil
}

// DeleteContainers は保管箱を削除し、削除件数を返します。
func (r *ArchiveRepository) DeleteContainers(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM containers WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// UpsertArchived は (matricula, mes_id) をキーに記録を作成または上書きします。
func (r *ArchiveRepository) UpsertArchived(ctx context.Context, b archive.ArchiveBatch) (int, error) {
	if len(b.EmployeeIDs) == 0 {
		return 0, nil
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        INSERT INTO archive_records (matricula, caixa_id, mes_id, data_registro, status,
                                     data_desarquivamento, usuario_desarquivou, motivo_desarquivamento)
        SELECT m, $2, $3, $4, $5, NULL, NULL, NULL
          FROM unnest($1::text[]) AS m
        ON CONFLICT (matricula, mes_id) DO UPDATE
           SET caixa_id = EXCLUDED.caixa_id,
               data_registro = EXCLUDED.data_registro,
               status = EXCLUDED.status,
               data_desarquivamento = NULL,
               usuario_desarquivou = NULL,
               motivo_desarquivamento = NULL
    `, b.EmployeeIDs, b.ContainerID, b.PeriodID, b.At, string(archive.StatusArchived))
	if err != nil {
		return 0, translatePgError(err, archive.ErrRecordNotFound, nil)
	}
	return int(tag.RowsAffected()), nil
}

// ListRecords はアーカイブ記録を検索します。
func (r *ArchiveRepository) ListRecords(ctx context.Context, filter archive.RecordFilter) ([]*archive.Record, error) {
	args := make([]any, 0, 5)
	conditions := make([]string, 0, 5)
	placeholder := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if len(filter.IDs) > 0 {
		conditions = append(conditions, "id = ANY("+placeholder(filter.IDs)+")")
	}
	if filter.PeriodID != 0 {
		conditions = append(conditions, "mes_id = "+placeholder(filter.PeriodID))
	}
	if len(filter.ContainerIDs) > 0 {
		conditions = append(conditions, "caixa_id = ANY("+placeholder(filter.ContainerIDs)+")")
	}
	if filter.EmployeeID != "" {
		conditions = append(conditions, "matricula = "+placeholder(filter.EmployeeID))
	}
	if filter.Status != nil {
		conditions = append(conditions, "status = "+placeholder(string(*filter.Status)))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `
        SELECT id, matricula, caixa_id, mes_id, data_registro, status,
               data_desarquivamento, usuario_desarquivou, motivo_desarquivamento
          FROM archive_records` + whereClause + `
         ORDER BY id
    `

	exec := pgdb.QueryerFromContext(ctx, r.pool)
	rows, err := exec.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*archive.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// MarkUnarchived は ARQUIVADO の記録を DESARQUIVADO に遷移させます。
func (r *ArchiveRepository) MarkUnarchived(ctx context.Context, ids []int64, u archive.Unarchival) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `
        UPDATE archive_records
           SET status = $2,
               data_desarquivamento = $3,
               usuario_desarquivou = $4,
               motivo_desarquivamento = $5
         WHERE id = ANY($1) AND status = $6
    `, ids, string(archive.StatusUnarchived), u.At, u.Actor, u.Reason, string(archive.StatusArchived))
	if err != nil {
		return 0, translatePgError(err, archive.ErrRecordNotFound, nil)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteRecord は記録を物理削除します。
func (r *ArchiveRepository) DeleteRecord(ctx context.Context, id int64) error {
	exec := pgdb.QueryerFromContext(ctx, r.pool)
	tag, err := exec.Exec(ctx, `DELETE FROM archive_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return archive.ErrRecordNotFound
	}
	return nil
}

func scanPeriod(row pgx.Row) (*archive.Period, error) {
	var p archive.Period
	if err := row.Scan(&p.ID, &p.Label); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanContainer(row pgx.Row) (*archive.Container, error) {
	var (
		c        archive.Container
		location sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Number, &c.PeriodID, &location); err != nil {
		return nil, err
	}
	c.Location = location.String
	return &c, nil
}

func scanRecord(row pgx.Row) (*archive.Record, error) {
	var (
		rec          archive.Record
		status       string
		unarchivedAt sql.NullTime
		by           sql.NullString
		reason       sql.NullString
	)
	if err := row.Scan(
		&rec.ID,
		&rec.EmployeeID,
		&rec.ContainerID,
		&rec.PeriodID,
		&rec.RegisteredAt,
		&status,
		&unarchivedAt,
		&by,
		&reason,
	); err != nil {
		return nil, err
	}

	rec.Status = archive.Status(status)
	rec.RegisteredAt = rec.RegisteredAt.UTC()
	if unarchivedAt.Valid {
		t := unarchivedAt.Time.UTC()
		rec.UnarchivedAt = &t
	}
	rec.UnarchivedBy = by.String
	rec.UnarchiveReason = reason.String
	return &rec, nil
}

// translatePgError は pgx のエラーをドメインエラーに変換します。
func translatePgError(err, notFound, conflict error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) && notFound != nil {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			if conflict != nil {
				return conflict
			}
		case checkViolationCode:
			return archive.ErrInvalidID
		}
	}
	return err
}

func nullableDate(value *time.Time) any {
	if value == nil {
		return nil
	}
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}
