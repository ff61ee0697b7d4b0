package auth

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV backs the session store with an in-process map.
type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Set(ctx context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	bin, err := value.(interface{ MarshalBinary() ([]byte, error) }).MarshalBinary()
	if err != nil {
		return redis.NewStatusResult("", err)
	}
	f.data[key] = string(bin)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeKV) Get(ctx context.Context, key string) *redis.StringCmd {
	value, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

func TestSessionLifecycle(t *testing.T) {
	kv := newFakeKV()
	store := NewSessionStore(kv)
	ctx := context.Background()
	token := GenerateSecureToken(20)

	require.NoError(t, store.Init(ctx, token, AdminSession{
		UserId:              "507f1f77bcf86cd799439011",
		Username:            "orn@jarin.example",
		ForceChangePassword: true,
	}))

	session, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "orn@jarin.example", session.Username)
	assert.True(t, session.ForceChangePassword)
	assert.Empty(t, session.CompanyId)
	assert.False(t, session.Expired())

	require.NoError(t, store.SetCompany(ctx, token, "507f1f77bcf86cd799439099"))
	require.NoError(t, store.ClearForceChangePassword(ctx, token))

	session, err = store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439099", session.CompanyId)
	assert.False(t, session.ForceChangePassword)

	require.NoError(t, store.Clear(ctx, token))
	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestSessionExpiry(t *testing.T) {
	kv := newFakeKV()
	store := NewSessionStore(kv)
	ctx := context.Background()

	expired := AdminSession{
		UserId:    "507f1f77bcf86cd799439011",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	bin, err := expired.MarshalBinary()
	require.NoError(t, err)
	kv.data[sessionKey("stale")] = string(bin)

	_, err = store.Get(ctx, "stale")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestSessionsAreIsolatedByToken(t *testing.T) {
	kv := newFakeKV()
	store := NewSessionStore(kv)
	ctx := context.Background()

	require.NoError(t, store.Init(ctx, "token-a", AdminSession{UserId: "a"}))
	require.NoError(t, store.Init(ctx, "token-b", AdminSession{UserId: "b"}))

	require.NoError(t, store.Clear(ctx, "token-a"))

	_, err := store.Get(ctx, "token-a")
	assert.ErrorIs(t, err, redis.Nil)

	session, err := store.Get(ctx, "token-b")
	require.NoError(t, err)
	assert.Equal(t, "b", session.UserId)
}

func TestGenerateSecureToken(t *testing.T) {
	a := GenerateSecureToken(20)
	b := GenerateSecureToken(20)
	assert.Len(t, a, 40)
	assert.NotEqual(t, a, b)
}
