package cart

import (
	"context"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeKV struct {
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return v, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.data[key] = value.(string)
	f.ttls[key] = ttl
	return nil
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

type fakeKeyer struct{}

func (fakeKeyer) CartKey(userID string) string { return "test:cart:" + userID }

func TestStoreRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store := NewStore(kv, fakeKeyer{}, time.Hour)
	ctx := context.Background()

	// missing cart reads as empty, not an error
	cart, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	want := Cart{Items: []Item{{ProductID: 1, Name: "Classic Navy Blazer", Price: 12999, Quantity: 2}}}
	require.NoError(t, store.Save(ctx, "u1", want))
	assert.Equal(t, time.Hour, kv.ttls["test:cart:u1"])

	got, err := store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Clear(ctx, "u1"))
	cart, err = store.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestStoreRejectsCorruptDocument(t *testing.T) {
	kv := newFakeKV()
	kv.data["test:cart:u1"] = "{not json"
	store := NewStore(kv, fakeKeyer{}, time.Hour)

	_, err := store.Load(context.Background(), "u1")
	require.Error(t, err)
}
