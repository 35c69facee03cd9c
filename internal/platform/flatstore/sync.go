package flatstore

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Observer は公開 (全件上書き) の結果を受け取ります。
type Observer interface {
	ObservePublish(table string, rows int, err error)
}

// Syncer は表形式同期プロトコル (スナップショット → マージ → 全件上書き) を実装します。
//
// 行ロックもバージョントークンも持たないため、Snapshot と Publish の間に他のアクターが
// 書き込んだ行は Publish によって失われます (lost update)。これはフラットストアの既知の
// 性質であり、Syncer はそれを隠蔽しません。
type Syncer struct {
	table    Table
	schema   Schema
	observer Observer
}

// NewSyncer は Syncer を生成します。observer は nil でも構いません。
func NewSyncer(table Table, schema Schema, observer Observer) *Syncer {
	return &Syncer{table: table, schema: schema, observer: observer}
}

// Schema は Syncer が保証する列集合を返します。
func (s *Syncer) Schema() Schema {
	return s.schema
}

// Snapshot は表全体の読み取り結果です。
type Snapshot struct {
	Header []string
	Rows   []Row

	idColumn string
	columns  []string
}

// IDs はスナップショット内の有効な ID を昇順で返します。
func (s *Snapshot) IDs() []int64 {
	ids := make([]int64, 0, len(s.Rows))
	for _, r := range s.Rows {
		if id, ok := ParseID(r[s.idColumn]); ok {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// NextID は新規行に割り当てる ID (最大 ID + 1) を返します。
func (s *Snapshot) NextID() int64 {
	var max int64
	for _, id := range s.IDs() {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Find は ID に一致する行を返します。
func (s *Snapshot) Find(id int64) (Row, bool) {
	for _, r := range s.Rows {
		if rid, ok := ParseID(r[s.idColumn]); ok && rid == id {
			return r, true
		}
	}
	return nil, false
}

// Snapshot はスキーマを保証した上で表全体を読み込みます。
func (s *Syncer) Snapshot(ctx context.Context) (*Snapshot, error) {
	if _, err := EnsureSchema(ctx, s.table, s.schema); err != nil {
		return nil, err
	}

	grid, err := s.table.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("flatstore: read %s: %w", s.table.Name(), err)
	}

	snap := &Snapshot{idColumn: s.schema.IDColumn}
	if len(grid) == 0 {
		snap.Header = append([]string(nil), s.schema.Columns...)
		snap.columns = snap.Header
		return snap, nil
	}

	snap.Header = trimTrailingBlank(grid[0])
	snap.columns = canonicalColumns(snap.Header, s.schema.Columns)

	for _, cells := range grid[1:] {
		if isBlankRow(cells) {
			continue
		}
		row := make(Row, len(snap.columns))
		for i, col := range snap.columns {
			if i < len(cells) {
				row[col] = cells[i]
			} else {
				row[col] = ""
			}
		}
		snap.Rows = append(snap.Rows, row)
	}
	return snap, nil
}

// Merge は keep (編集対象外の既存行) と incoming (編集行) を結合し、ID 昇順に並べます。
// 編集行の ID は正規化され、ヘッダーに無い値は捨てられます。既存行の編集では編集行に
// 含まれない列 (利用者が追加した列など) の値を保持し、新規行では空文字で補完します。
func (s *Syncer) Merge(snap *Snapshot, edits []Row) ([]Row, error) {
	incoming := make(map[int64]Row, len(edits))
	for _, e := range edits {
		id, ok := ParseID(e[s.schema.IDColumn])
		if !ok {
			return nil, fmt.Errorf("%w: table %s", ErrMissingID, s.table.Name())
		}
		incoming[id] = e
	}

	base := make(map[int64]Row, len(incoming))
	merged := make([]Row, 0, len(snap.Rows)+len(incoming))
	for _, r := range snap.Rows {
		if id, ok := ParseID(r[s.schema.IDColumn]); ok {
			if _, edited := incoming[id]; edited {
				base[id] = r
				continue
			}
		}
		merged = append(merged, r)
	}
	for id, e := range incoming {
		row := project(base[id], snap.columns)
		for col, v := range e {
			if _, known := row[col]; known {
				row[col] = v
			}
		}
		row[s.schema.IDColumn] = FormatID(id)
		merged = append(merged, row)
	}

	s.sortByID(merged)
	for i, r := range merged {
		merged[i] = project(r, snap.columns)
	}
	return merged, nil
}

// Publish は edits をスナップショットにマージし、表全体を 1 回の書き込みで置き換えます。
// 書き込んだ行数を返します。
func (s *Syncer) Publish(ctx context.Context, snap *Snapshot, edits []Row) (int, error) {
	rows, err := s.Merge(snap, edits)
	if err != nil {
		return 0, err
	}
	return s.overwrite(ctx, snap, rows)
}

// PublishDeletion は ids に含まれない行だけを書き戻します。
func (s *Syncer) PublishDeletion(ctx context.Context, snap *Snapshot, ids []int64) (int, error) {
	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := make([]Row, 0, len(snap.Rows))
	for _, r := range snap.Rows {
		if id, ok := ParseID(r[s.schema.IDColumn]); ok {
			if _, gone := drop[id]; gone {
				continue
			}
		}
		kept = append(kept, project(r, snap.columns))
	}
	s.sortByID(kept)

	if _, err := s.overwrite(ctx, snap, kept); err != nil {
		return 0, err
	}
	return len(snap.Rows) - len(kept), nil
}

func (s *Syncer) overwrite(ctx context.Context, snap *Snapshot, rows []Row) (int, error) {
	grid := make([][]string, 0, len(rows)+1)
	grid = append(grid, append([]string(nil), snap.Header...))
	for _, r := range rows {
		cells := make([]string, len(snap.columns))
		for i, col := range snap.columns {
			cells[i] = r[col]
		}
		grid = append(grid, cells)
	}

	err := s.table.Overwrite(ctx, grid)
	if s.observer != nil {
		s.observer.ObservePublish(s.table.Name(), len(rows), err)
	}
	if err != nil {
		return 0, fmt.Errorf("flatstore: overwrite %s: %w", s.table.Name(), err)
	}
	return len(rows), nil
}

// ID を持たない行は末尾に元の順序のまま残します。
func (s *Syncer) sortByID(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, aok := ParseID(rows[i][s.schema.IDColumn])
		b, bok := ParseID(rows[j][s.schema.IDColumn])
		switch {
		case aok && bok:
			return a < b
		case aok:
			return true
		default:
			return false
		}
	})
}

// canonicalColumns はヘッダーの各列をスキーマ上の列名に揃えます。
func canonicalColumns(header, required []string) []string {
	byKey := make(map[string]string, len(required))
	for _, col := range required {
		byKey[columnKey(col)] = col
	}
	out := make([]string, len(header))
	for i, h := range header {
		if col, ok := byKey[columnKey(h)]; ok {
			out[i] = col
			continue
		}
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func project(r Row, columns []string) Row {
	out := make(Row, len(columns))
	for _, col := range columns {
		out[col] = r[col]
	}
	return out
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
