package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/tariff/internal/store"
)

const redisKey = "tariff:pricing"

func newRedisStore(t *testing.T) (*store.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return store.NewRedisStore(client, redisKey), mr
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("read before any write returns ErrNotExist", func(t *testing.T) {
		s, _ := newRedisStore(t)

		_, err := s.Read(ctx)
		require.ErrorIs(t, err, store.ErrNotExist)

		_, err = s.LastModified(ctx)
		require.ErrorIs(t, err, store.ErrNotExist)
	})

	t.Run("write sets the document and companion timestamp keys", func(t *testing.T) {
		s, mr := newRedisStore(t)

		doc := `{"pricing": {"openai/gpt-4": {"input": 30.0, "output": 60.0}}}`
		require.NoError(t, s.Write(ctx, []byte(doc)))

		// Document bytes live under the configured key.
		stored, err := mr.Get(redisKey)
		require.NoError(t, err)
		require.Equal(t, doc, stored)

		// The write time lives next to it as RFC3339.
		raw, err := mr.Get(redisKey + ":updated_at")
		require.NoError(t, err)
		written, err := time.Parse(time.RFC3339, raw)
		require.NoError(t, err)
		require.WithinDuration(t, time.Now(), written, time.Minute)

		got, err := s.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, []byte(doc), got)

		modified, err := s.LastModified(ctx)
		require.NoError(t, err)
		require.WithinDuration(t, written, modified, time.Second)
	})

	t.Run("write replaces both keys", func(t *testing.T) {
		s, mr := newRedisStore(t)

		require.NoError(t, s.Write(ctx, []byte("first")))
		firstTS, err := mr.Get(redisKey + ":updated_at")
		require.NoError(t, err)

		mr.FastForward(time.Hour) // miniredis clock only; wall clock drives the timestamp
		require.NoError(t, s.Write(ctx, []byte("second")))

		got, err := s.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, []byte("second"), got)

		secondTS, err := mr.Get(redisKey + ":updated_at")
		require.NoError(t, err)
		_, err = time.Parse(time.RFC3339, secondTS)
		require.NoError(t, err)
		require.NotEmpty(t, firstTS)
	})

	t.Run("corrupt timestamp reads as not-exist", func(t *testing.T) {
		s, mr := newRedisStore(t)

		require.NoError(t, s.Write(ctx, []byte("doc")))
		require.NoError(t, mr.Set(redisKey+":updated_at", "not-a-timestamp"))

		// Unknown age must read as stale, not as trustworthy data.
		_, err := s.LastModified(ctx)
		require.ErrorIs(t, err, store.ErrNotExist)

		// The document itself is still readable.
		got, err := s.Read(ctx)
		require.NoError(t, err)
		require.Equal(t, []byte("doc"), got)
	})

	t.Run("missing timestamp key reads as not-exist", func(t *testing.T) {
		s, mr := newRedisStore(t)

		require.NoError(t, s.Write(ctx, []byte("doc")))
		mr.Del(redisKey + ":updated_at")

		_, err := s.LastModified(ctx)
		require.ErrorIs(t, err, store.ErrNotExist)
	})
}
