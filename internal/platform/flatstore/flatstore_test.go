package flatstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var testSchema = Schema{
	Name:     "items",
	Version:  1,
	IDColumn: "ID",
	Columns:  []string{"ID", "NOME", "VALOR"},
}

type recordingObserver struct {
	calls []int
	errs  []error
}

func (o *recordingObserver) ObservePublish(_ string, rows int, err error) {
	o.calls = append(o.calls, rows)
	o.errs = append(o.errs, err)
}

func newTestTable(t *testing.T) *SheetTable {
	t.Helper()

	wb, err := OpenWorkbook(filepath.Join(t.TempDir(), "db.xlsx"), "ITENS", "OUTRA")
	require.NoError(t, err)
	return wb.Table("ITENS")
}

func seedRows(t *testing.T, table Table, grid [][]string) {
	t.Helper()
	require.NoError(t, table.Overwrite(context.Background(), grid))
}

func ids(t *testing.T, table Table) []string {
	t.Helper()

	grid, err := table.ReadAll(context.Background())
	require.NoError(t, err)

	out := make([]string, 0, len(grid))
	for _, row := range grid[1:] {
		out = append(out, row[0])
	}
	return out
}

func TestEnsureSchema_AppendsMissingColumnsAndIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	table := newTestTable(t)
	seedRows(t, table, [][]string{
		{"ID", "EXTRA", "NOME"},
		{"1", "x", "Ana"},
	})

	added, err := EnsureSchema(ctx, table, testSchema)
	require.NoError(t, err)
	require.Equal(t, []string{"VALOR"}, added)

	header, err := table.Header(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"ID", "EXTRA", "NOME", "VALOR"}, header)

	added, err = EnsureSchema(ctx, table, testSchema)
	require.NoError(t, err)
	require.Empty(t, added)

	again, err := table.Header(ctx)
	require.NoError(t, err)
	require.Equal(t, header, again)

	grid, err := table.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "x", "Ana"}, grid[1])
}

func TestEnsureSchema_EmptySheet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	table := newTestTable(t)

	added, err := EnsureSchema(ctx, table, testSchema)
	require.NoError(t, err)
	require.Equal(t, testSchema.Columns, added)

	header, err := table.Header(ctx)
	require.NoError(t, err)
	require.Equal(t, testSchema.Columns, header)
}

func TestMissingColumns_CaseInsensitive(t *testing.T) {
	t.Parallel()

	missing := MissingColumns([]string{" id ", "nome"}, []string{"ID", "NOME", "VALOR", "VALOR"})
	require.Equal(t, []string{"VALOR"}, missing)
}

func TestSyncer_PublishMergesEditSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	table := newTestTable(t)
	seedRows(t, table, [][]string{
		{"ID", "NOME", "VALOR"},
		{"1", "Ana", "10"},
		{"2", "Bruno", "20"},
		{"3", "Carla", "30"},
	})

	obs := &recordingObserver{}
	syncer := NewSyncer(table, testSchema, obs)

	snap, err := syncer.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap.Rows, 3)

	row3, ok := snap.Find(3)
	require.True(t, ok)

	written, err := syncer.Publish(ctx, snap, []Row{
		{"ID": "2.0", "NOME": "Bruno Silva", "VALOR": "25"},
		row3,
	})
	require.NoError(t, err)
	require.Equal(t, 3, written)
	require.Equal(t, []int{3}, obs.calls)

	grid, err := table.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"ID", "NOME", "VALOR"},
		{"1", "Ana", "10"},
		{"2", "Bruno Silva", "25"},
		{"3", "Carla", "30"},
	}, grid)
}

func TestSyncer_PublishSortsAndBackfills(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	table := newTestTable(t)
	seedRows(t, table, [][]string{
		{"ID", "NOME", "VALOR"},
		{"5", "Eva", "50"},
		{"1", "Ana", "10"},
	})

	syncer := NewSyncer(table, testSchema, nil)
	snap, err := syncer.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(6), snap.NextID())

	_, err = syncer.Publish(ctx, snap, []Row{{"ID": "3", "NOME": "Caio", "IGNORADO": "?"}})
	require.NoError(t, err)

	grid, err := table.ReadAll(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"1", "3", "5"}, []string{grid[1][0], grid[2][0], grid[3][0]})
	require.Equal(t, []string{"3", "Caio"}, grid[2])
}

func TestSyncer_PublishKeepsColumnsOutsideEditRow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	table := newTestTable(t)
	seedRows(t, table, [][]string{
		{"ID", "NOME", "VALOR", "NOTA"},
		{"1", "Ana", "10", "conferir"},
		{"2", "Bruno", "20", "urgente"},
	})

	syncer := NewSyncer(table, testSchema, nil)
	snap, err := syncer.Snapshot(ctx)
	require.NoError(t, err)

	_, err = syncer.Publish(ctx, snap, []Row{
		{"ID": "2", "NOME": "Bruno", "VALOR": ""},
		{"ID": "3", "NOME": "Carla", "VALOR": "30"},
	})
	require.NoError(t, err)

	grid, err := table.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, grid, 4)
	require.Equal(t, []string{"1", "Ana", "10", "conferir"}, grid[1])
	require.Equal(t, []string{"2", "Bruno", "", "urgente"}, grid[2])
	require.Equal(t, []string{"3", "Carla", "30"}, grid[3])
}

func TestSyncer_PublishRejectsRowWithoutID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	table := newTestTable(t)
	syncer := NewSyncer(table, testSchema, nil)

	snap, err := syncer.Snapshot(ctx)
	require.NoError(t, err)

	_, err = syncer.Publish(ctx, snap, []Row{{"NOME": "sem id"}})
	require.True(t, errors.Is(err, ErrMissingID))
}

// Snapshot と Publish の間に他アクターが追加した行は失われる。
func TestSyncer_ConcurrentInsertIsLostOnOverwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	table := newTestTable(t)
	seedRows(t, table, [][]string{
		{"ID", "NOME", "VALOR"},
		{"1", "Ana", "10"},
		{"2", "Bruno", "20"},
		{"3", "Carla", "30"},
	})

	first := NewSyncer(table, testSchema, nil)
	second := NewSyncer(table, testSchema, nil)

	stale, err := first.Snapshot(ctx)
	require.NoError(t, err)

	fresh, err := second.Snapshot(ctx)
	require.NoError(t, err)
	_, err = second.Publish(ctx, fresh, []Row{{"ID": "4", "NOME": "Davi", "VALOR": "40"}})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3", "4"}, ids(t, table))

	_, err = first.Publish(ctx, stale, []Row{{"ID": "2", "NOME": "Bruno", "VALOR": "21"}})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "2", "3"}, ids(t, table))
}

func TestSyncer_PublishDeletion(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	table := newTestTable(t)
	seedRows(t, table, [][]string{
		{"ID", "NOME", "VALOR"},
		{"1", "Ana", "10"},
		{"2", "Bruno", "20"},
		{"3", "Carla", "30"},
	})

	syncer := NewSyncer(table, testSchema, nil)
	snap, err := syncer.Snapshot(ctx)
	require.NoError(t, err)

	removed, err := syncer.PublishDeletion(ctx, snap, []int64{2, 99})
	require.NoError(t, err)
	require.Equal(t, 1, removed)
	require.Equal(t, []string{"1", "3"}, ids(t, table))
}

func TestOpenWorkbook_AddsMissingSheets(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "db.xlsx")
	_, err := OpenWorkbook(path, "A")
	require.NoError(t, err)

	wb, err := OpenWorkbook(path, "A", "B")
	require.NoError(t, err)

	header, err := wb.Table("B").Header(context.Background())
	require.NoError(t, err)
	require.Empty(t, header)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]int64{"7": 7, " 8 ": 8, "9.0": 9} {
		got, ok := ParseID(raw)
		require.True(t, ok, raw)
		require.Equal(t, want, got)
	}
	for _, raw := range []string{"", "abc", "1.5"} {
		_, ok := ParseID(raw)
		require.False(t, ok, raw)
	}
}
