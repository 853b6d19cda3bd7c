package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*VerificationStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewVerificationStore(client), mr
}

func TestVerificationConsume(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, 3, "482916"))
	require.NoError(t, store.Consume(ctx, 3, "482916"))

	// Single-use: the same code is gone after a successful consume.
	assert.ErrorIs(t, store.Consume(ctx, 3, "482916"), ErrCodeMismatch)
}

func TestVerificationWrongCode(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, 3, "482916"))
	assert.ErrorIs(t, store.Consume(ctx, 3, "000000"), ErrCodeMismatch)

	// A wrong guess does not burn the real code.
	assert.NoError(t, store.Consume(ctx, 3, "482916"))
}

func TestVerificationMissingCode(t *testing.T) {
	store, _ := newTestStore(t)
	assert.ErrorIs(t, store.Consume(context.Background(), 99, "482916"), ErrCodeMismatch)
}

func TestVerificationExpires(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, 3, "482916"))
	mr.FastForward(verificationTTL + time.Second)

	assert.ErrorIs(t, store.Consume(ctx, 3, "482916"), ErrCodeMismatch)
}

func TestVerificationPutReplaces(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, 3, "111111"))
	require.NoError(t, store.Put(ctx, 3, "222222"))

	assert.ErrorIs(t, store.Consume(ctx, 3, "111111"), ErrCodeMismatch)
	assert.NoError(t, store.Consume(ctx, 3, "222222"))
}
