package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "a", []byte("1"), 0))
	v, ok, err := s.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("1"), v)

	require.NoError(t, s.Delete(ctx, "a", "inexistente"))
	_, ok, _ = s.Get(ctx, "a")
	assert.False(t, ok)
}

func TestMemoryStore_Expira(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	_, ok, _ := s.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Minute)
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, k := range []string{
		"bo:q:GET /users/paginados|page=0&size=10",
		"bo:q:GET /users/paginados|page=1&size=10",
		"bo:q:GET /users/{id}|id=3",
		"bo:q:GET /staff/paginados|page=0&size=10",
	} {
		require.NoError(t, s.Set(ctx, k, []byte("x"), 0))
	}

	n, err := s.DeletePrefix(ctx, "bo:q:GET /users/paginados|")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 2, s.Len())

	_, ok, _ := s.Get(ctx, "bo:q:GET /users/{id}|id=3")
	assert.True(t, ok)
}

func TestMemoryStore_CopiaValores(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in, 0))
	in[0] = 'z'

	v, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(v))
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `bo:q:GET /a\[1\]\*\?|`, escapeGlob("bo:q:GET /a[1]*?|"))
	assert.Equal(t, "bo:q:GET /staff/{id}|", escapeGlob("bo:q:GET /staff/{id}|"))
}

func TestMemoryStore_Incr(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	n, err := s.Incr(ctx, "bo:q:~v:GET /users/paginados|", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = s.Incr(ctx, "bo:q:~v:GET /users/paginados|", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	v, ok, _ := s.Get(ctx, "bo:q:~v:GET /users/paginados|")
	assert.True(t, ok)
	assert.Equal(t, "2", string(v))

	now = now.Add(time.Minute)
	n, err = s.Incr(ctx, "bo:q:~v:GET /users/paginados|", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "un contador expirado vuelve a empezar")

	require.NoError(t, s.Set(ctx, "texto", []byte("abc"), 0))
	_, err = s.Incr(ctx, "texto", 0)
	assert.Error(t, err)
}
