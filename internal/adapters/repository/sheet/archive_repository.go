package sheet

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/ogurasousui/sistemadp/internal/core/archive"
	"github.com/ogurasousui/sistemadp/internal/core/roster"
	"github.com/ogurasousui/sistemadp/internal/platform/flatstore"
	"github.com/ogurasousui/sistemadp/internal/platform/textdate"
)

// ArchiveRepository は MESES・CAIXAS・ARQUIVO シートを使ったアーカイブ台帳の実装です。
// 各操作はそれぞれ独立した全件上書きであり、複数シートにまたがる原子性はありません。
type ArchiveRepository struct {
	periods    *flatstore.Syncer
	containers *flatstore.Syncer
	records    *flatstore.Syncer
}

// NewArchiveRepository は ArchiveRepository を生成します。
func NewArchiveRepository(wb *flatstore.Workbook, observer flatstore.Observer) *ArchiveRepository {
	return &ArchiveRepository{
		periods:    flatstore.NewSyncer(wb.Table(periodSchema.Name), periodSchema, observer),
		containers: flatstore.NewSyncer(wb.Table(containerSchema.Name), containerSchema, observer),
		records:    flatstore.NewSyncer(wb.Table(recordSchema.Name), recordSchema, observer),
	}
}

func (r *ArchiveRepository) CreatePeriod(ctx context.Context, p *archive.Period) (*archive.Period, error) {
	snap, err := r.periods.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range snap.Rows {
		if strings.EqualFold(row.Get("MES_REFERENCIA"), p.Label) {
			return nil, archive.ErrPeriodAlreadyExists
		}
	}

	created := &archive.Period{ID: snap.NextID(), Label: p.Label}
	edit := flatstore.Row{"ID": flatstore.FormatID(created.ID), "MES_REFERENCIA": created.Label}
	if _, err := r.periods.Publish(ctx, snap, []flatstore.Row{edit}); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *ArchiveRepository) FindPeriod(ctx context.Context, id int64) (*archive.Period, error) {
	snap, err := r.periods.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	row, ok := snap.Find(id)
	if !ok {
		return nil, archive.ErrPeriodNotFound
	}
	return decodePeriod(row), nil
}

func (r *ArchiveRepository) ListPeriods(ctx context.Context) ([]*archive.Period, error) {
	snap, err := r.periods.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*archive.Period, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		if p := decodePeriod(row); p.ID > 0 {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ArchiveRepository) DeletePeriod(ctx context.Context, id int64) error {
	snap, err := r.periods.Snapshot(ctx)
	if err != nil {
		return err
	}
	if _, ok := snap.Find(id); !ok {
		return archive.ErrPeriodNotFound
	}
	_, err = r.periods.PublishDeletion(ctx, snap, []int64{id})
	return err
}

func (r *ArchiveRepository) CreateContainer(ctx context.Context, c *archive.Container) (*archive.Container, error) {
	snap, err := r.containers.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	for _, row := range snap.Rows {
		existing := decodeContainer(row)
		if existing.PeriodID == c.PeriodID && strings.EqualFold(existing.Number, c.Number) {
			return nil, archive.ErrContainerAlreadyExists
		}
	}

	created := &archive.Container{ID: snap.NextID(), Number: c.Number, PeriodID: c.PeriodID, Location: c.Location}
	if _, err := r.containers.Publish(ctx, snap, []flatstore.Row{encodeContainer(created)}); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *ArchiveRepository) FindContainer(ctx context.Context, id int64) (*archive.Container, error) {
	snap, err := r.containers.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	row, ok := snap.Find(id)
	if !ok {
		return nil, archive.ErrContainerNotFound
	}
	return decodeContainer(row), nil
}

func (r *ArchiveRepository) ListContainers(ctx context.Context, periodID int64) ([]*archive.Container, error) {
	snap, err := r.containers.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*archive.Container, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		c := decodeContainer(row)
		if c.ID <= 0 || (periodID != 0 && c.PeriodID != periodID) {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *ArchiveRepository) DeleteContainers(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	snap, err := r.containers.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return r.containers.PublishDeletion(ctx, snap, ids)
}

// UpsertArchived は (MATRICULA, MES_ID) が一致する行を上書きし、無ければ新しい ID で追加します。
func (r *ArchiveRepository) UpsertArchived(ctx context.Context, b archive.ArchiveBatch) (int, error) {
	if len(b.EmployeeIDs) == 0 {
		return 0, nil
	}
	snap, err := r.records.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	existing := make(map[string]flatstore.Row)
	for _, row := range snap.Rows {
		if parseInt(row.Get("MES_ID")) == b.PeriodID {
			existing[roster.NormalizeID(row.Get("MATRICULA"))] = row
		}
	}

	nextID := snap.NextID()
	edits := make([]flatstore.Row, 0, len(b.EmployeeIDs))
	for _, emp := range b.EmployeeIDs {
		rec := &archive.Record{
			EmployeeID:   emp,
			ContainerID:  b.ContainerID,
			PeriodID:     b.PeriodID,
			RegisteredAt: b.At,
			Status:       archive.StatusArchived,
		}
		if row, ok := existing[emp]; ok {
			rec.ID = decodeRecord(row).ID
		} else {
			rec.ID = nextID
			nextID++
		}
		edits = append(edits, encodeRecord(rec))
	}

	if _, err := r.records.Publish(ctx, snap, edits); err != nil {
		return 0, err
	}
	return len(edits), nil
}

func (r *ArchiveRepository) ListRecords(ctx context.Context, filter archive.RecordFilter) ([]*archive.Record, error) {
	snap, err := r.records.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	ids := toSet(filter.IDs)
	containers := toSet(filter.ContainerIDs)
	out := make([]*archive.Record, 0)
	for _, row := range snap.Rows {
		rec := decodeRecord(row)
		if rec.ID <= 0 {
			continue
		}
		if len(ids) > 0 {
			if _, ok := ids[rec.ID]; !ok {
				continue
			}
		}
		if filter.PeriodID != 0 && rec.PeriodID != filter.PeriodID {
			continue
		}
		if len(containers) > 0 {
			if _, ok := containers[rec.ContainerID]; !ok {
				continue
			}
		}
		if filter.EmployeeID != "" && rec.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Status != nil && rec.Status != *filter.Status {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ArchiveRepository) MarkUnarchived(ctx context.Context, ids []int64, u archive.Unarchival) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	snap, err := r.records.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	target := toSet(ids)
	edits := make([]flatstore.Row, 0, len(ids))
	for _, row := range snap.Rows {
		rec := decodeRecord(row)
		if _, ok := target[rec.ID]; !ok || rec.Status != archive.StatusArchived {
			continue
		}
		at := u.At
		rec.Status = archive.StatusUnarchived
		rec.UnarchivedAt = &at
		rec.UnarchivedBy = u.Actor
		rec.UnarchiveReason = u.Reason
		edits = append(edits, encodeRecord(rec))
	}
	if len(edits) == 0 {
		return 0, nil
	}

	if _, err := r.records.Publish(ctx, snap, edits); err != nil {
		return 0, err
	}
	return len(edits), nil
}

func (r *ArchiveRepository) DeleteRecord(ctx context.Context, id int64) error {
	snap, err := r.records.Snapshot(ctx)
	if err != nil {
		return err
	}
	if _, ok := snap.Find(id); !ok {
		return archive.ErrRecordNotFound
	}
	_, err = r.records.PublishDeletion(ctx, snap, []int64{id})
	return err
}

func decodePeriod(row flatstore.Row) *archive.Period {
	return &archive.Period{ID: parseInt(row.Get("ID")), Label: row.Get("MES_REFERENCIA")}
}

func decodeContainer(row flatstore.Row) *archive.Container {
	return &archive.Container{
		ID:       parseInt(row.Get("ID")),
		Number:   row.Get("NUMERO_CAIXA"),
		PeriodID: parseInt(row.Get("MES_ID")),
		Location: row.Get("LOCALIZACAO"),
	}
}

func encodeContainer(c *archive.Container) flatstore.Row {
	return flatstore.Row{
		"ID":           flatstore.FormatID(c.ID),
		"NUMERO_CAIXA": c.Number,
		"MES_ID":       flatstore.FormatID(c.PeriodID),
		"LOCALIZACAO":  c.Location,
	}
}

func decodeRecord(row flatstore.Row) *archive.Record {
	rec := &archive.Record{
		ID:              parseInt(row.Get("ID")),
		EmployeeID:      roster.NormalizeID(row.Get("MATRICULA")),
		ContainerID:     parseInt(row.Get("CAIXA_ID")),
		PeriodID:        parseInt(row.Get("MES_ID")),
		Status:          archive.Status(strings.ToUpper(row.Get("STATUS"))),
		UnarchivedBy:    row.Get("USUARIO_DESARQUIVOU"),
		UnarchiveReason: row.Get("MOTIVO_DESARQUIVAMENTO"),
	}
	if t, ok := textdate.ParseTimestamp(row.Get("DATA_REGISTRO")); ok {
		rec.RegisteredAt = t
	}
	if t, ok := textdate.ParseTimestamp(row.Get("DATA_DESARQUIVAMENTO")); ok {
		rec.UnarchivedAt = &t
	}
	return rec
}

func encodeRecord(rec *archive.Record) flatstore.Row {
	return flatstore.Row{
		"ID":                     flatstore.FormatID(rec.ID),
		"MATRICULA":              rec.EmployeeID,
		"CAIXA_ID":               flatstore.FormatID(rec.ContainerID),
		"MES_ID":                 flatstore.FormatID(rec.PeriodID),
		"DATA_REGISTRO":          formatTimestamp(&rec.RegisteredAt),
		"STATUS":                 string(rec.Status),
		"DATA_DESARQUIVAMENTO":   formatTimestamp(rec.UnarchivedAt),
		"USUARIO_DESARQUIVOU":    rec.UnarchivedBy,
		"MOTIVO_DESARQUIVAMENTO": rec.UnarchiveReason,
	}
}

func formatTimestamp(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(textdate.LayoutTimestamp)
}

func parseInt(raw string) int64 {
	id, _ := flatstore.ParseID(raw)
	return id
}

func toSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
