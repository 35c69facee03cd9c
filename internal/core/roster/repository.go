package roster

import (
	"context"
	"errors"
	"sort"
)

// ErrEmployeeNotFound は従業員が存在しない場合に返却されます。
var ErrEmployeeNotFound = errors.New("roster: employee not found")

// Repository は従業員マスタの読み取り専用アクセスです。
type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
}

// Filter は従業員一覧の絞り込み条件です。Contract が空の場合は全件です。
type Filter struct {
	Contract string
}

// Index は ID で従業員を引けるようにしたスナップショットです。
type Index map[string]*Employee

// NewIndex は従業員一覧から Index を構築します。ID が重複した場合は後勝ちです。
func NewIndex(employees []*Employee) Index {
	idx := make(Index, len(employees))
	for _, e := range employees {
		if e == nil {
			continue
		}
		idx[NormalizeID(e.ID)] = e
	}
	return idx
}

// Lookup は正規化した ID で従業員を検索します。
func (i Index) Lookup(id string) (*Employee, bool) {
	e, ok := i[NormalizeID(id)]
	return e, ok
}

// Contracts は従業員一覧に含まれる契約名を重複なく昇順で返します。
func Contracts(employees []*Employee) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, e := range employees {
		if e == nil || e.Contract == "" {
			continue
		}
		key := FoldLabel(e.Contract)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e.Contract)
	}
	sort.Strings(out)
	return out
}
