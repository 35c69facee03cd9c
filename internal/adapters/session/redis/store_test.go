package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogurasousui/sistemadp/internal/core/session"
)

func newTestStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client, ttl), mr
}

func TestStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Hour)

	sel, err := store.Load(ctx, "maria")
	require.NoError(t, err)
	assert.True(t, sel.Empty())

	want := session.Selection{PeriodID: 4, ContainerID: 9, Contract: "Hospital"}
	require.NoError(t, store.Save(ctx, "Maria", want))

	got, err := store.Load(ctx, " maria ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"maria"))
}

func TestStore_Expires(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t, time.Minute)

	require.NoError(t, store.Save(ctx, "joao", session.Selection{PeriodID: 1}))
	mr.FastForward(2 * time.Minute)

	sel, err := store.Load(ctx, "joao")
	require.NoError(t, err)
	assert.True(t, sel.Empty())
}

func TestStore_RejectsEmptyActor(t *testing.T) {
	store, _ := newTestStore(t, 0)
	assert.ErrorIs(t, store.Save(context.Background(), "", session.Selection{}), session.ErrInvalidActor)
}

func TestStore_CorruptPayload(t *testing.T) {
	store, mr := newTestStore(t, 0)
	require.NoError(t, mr.Set(keyPrefix+"ana", "not-json"))

	_, err := store.Load(context.Background(), "ana")
	assert.Error(t, err)
}
