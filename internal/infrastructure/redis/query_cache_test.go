package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockCmdable implementa solo Get y Set; el resto de Cmdable no se usa.
type mockCmdable struct {
	goredis.Cmdable
	mock.Mock
}

func (m *mockCmdable) Get(ctx context.Context, key string) *goredis.StringCmd {
	args := m.Called(ctx, key)
	return goredis.NewStringResult(args.String(0), args.Error(1))
}

func (m *mockCmdable) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *goredis.StatusCmd {
	args := m.Called(ctx, key, value, ttl)
	return goredis.NewStatusResult(args.String(0), args.Error(1))
}

func TestQueryCache_Hit(t *testing.T) {
	ctx := context.Background()
	m := new(mockCmdable)
	m.On("Get", ctx, keyPrefix+"k").Return(`["4","1"]`, nil)

	ids, ok, err := NewQueryCache(m, time.Minute).Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"4", "1"}, ids)
	m.AssertExpectations(t)
}

func TestQueryCache_Miss(t *testing.T) {
	ctx := context.Background()
	m := new(mockCmdable)
	m.On("Get", ctx, keyPrefix+"k").Return("", goredis.Nil)

	_, ok, err := NewQueryCache(m, time.Minute).Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQueryCache_ErrorDeConexion(t *testing.T) {
	ctx := context.Background()
	m := new(mockCmdable)
	m.On("Get", ctx, keyPrefix+"k").Return("", errors.New("connection refused"))

	_, ok, err := NewQueryCache(m, time.Minute).Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestQueryCache_SetVistaVacia(t *testing.T) {
	ctx := context.Background()
	m := new(mockCmdable)
	m.On("Set", ctx, keyPrefix+"k", []byte("[]"), 2*time.Minute).Return("OK", nil)

	require.NoError(t, NewQueryCache(m, 2*time.Minute).Set(ctx, "k", nil))
	m.AssertExpectations(t)
}
