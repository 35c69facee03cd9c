// Package session はアクターごとの直近の選択 (参照月・保管箱・契約) を保持します。
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// ErrInvalidActor はアクターが指定されていない場合に返却されます。
var ErrInvalidActor = errors.New("session: actor is required")

// Selection はアクターが最後に選択した参照月・保管箱・契約です。
type Selection struct {
	PeriodID    int64  `json:"period_id,omitempty"`
	ContainerID int64  `json:"container_id,omitempty"`
	Contract    string `json:"contract,omitempty"`
}

// Empty は何も選択されていない場合に true を返します。
func (s Selection) Empty() bool {
	return s.PeriodID == 0 && s.ContainerID == 0 && strings.TrimSpace(s.Contract) == ""
}

// Merge は next の指定済み項目で s を上書きした Selection を返します。
// 参照月が変わった場合、以前の保管箱は別の参照月に属するため引き継ぎません。
func (s Selection) Merge(next Selection) Selection {
	out := s
	if next.PeriodID != 0 {
		if next.PeriodID != s.PeriodID {
			out.ContainerID = 0
		}
		out.PeriodID = next.PeriodID
	}
	if next.ContainerID != 0 {
		out.ContainerID = next.ContainerID
	}
	if c := strings.TrimSpace(next.Contract); c != "" {
		out.Contract = c
	}
	return out
}

// Store はアクターをキーに Selection を保存します。
type Store interface {
	Load(ctx context.Context, actor string) (Selection, error)
	Save(ctx context.Context, actor string, sel Selection) error
}

// MemoryStore はプロセス内に Selection を保持する Store です。
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]Selection
}

// NewMemoryStore は MemoryStore を生成します。
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]Selection)}
}

func (m *MemoryStore) Load(_ context.Context, actor string) (Selection, error) {
	key, err := Key(actor)
	if err != nil {
		return Selection{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.items[key], nil
}

func (m *MemoryStore) Save(_ context.Context, actor string, sel Selection) error {
	key, err := Key(actor)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = sel
	return nil
}

// Key はアクター名を保存キーに正規化します。
func Key(actor string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(actor))
	if key == "" {
		return "", ErrInvalidActor
	}
	return key, nil
}
