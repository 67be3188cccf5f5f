package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCache_SetGet(t *testing.T) {
	c := NewQueryCache(time.Minute)
	ctx := context.Background()

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "clave inexistente no debe dar hit")

	ids := []string{"3", "1"}
	require.NoError(t, c.Set(ctx, "k", ids))
	ids[0] = "mutado"

	got, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"3", "1"}, got, "la caché guarda una copia")
}

func TestQueryCache_Expira(t *testing.T) {
	c := NewQueryCache(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []string{"1"}))
	now = now.Add(59 * time.Second)
	_, ok, _ := c.Get(ctx, "k")
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok, _ = c.Get(ctx, "k")
	assert.False(t, ok, "entrada con edad >= TTL debe expirar")
	assert.Equal(t, 0, c.Len(), "la entrada expirada se purga")
}

func TestQueryCache_SinTTL(t *testing.T) {
	c := NewQueryCache(0)
	now := time.Now()
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", nil))
	now = now.Add(24 * time.Hour)
	got, ok, _ := c.Get(ctx, "k")
	assert.True(t, ok)
	assert.Empty(t, got, "una vista vacía también se memoiza")
}

func TestQueryCache_SetPurgaExpiradas(t *testing.T) {
	c := NewQueryCache(time.Minute)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		require.NoError(t, c.Set(ctx, fmt.Sprintf("q=%d", i), []string{"1"}))
	}
	require.Equal(t, 1000, c.Len())

	now = now.Add(2 * time.Minute)
	require.NoError(t, c.Set(ctx, "fresh", []string{"2"}))
	assert.Equal(t, 1, c.Len(), "las vistas expiradas se purgan al insertar")

	got, ok, _ := c.Get(ctx, "fresh")
	assert.True(t, ok)
	assert.Equal(t, []string{"2"}, got)
}

func TestQueryCache_TopeDescartaLaMasAntigua(t *testing.T) {
	c := NewQueryCache(0)
	c.maxEntries = 3
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c", "d"} {
		now = now.Add(time.Second)
		require.NoError(t, c.Set(ctx, k, nil))
	}
	assert.Equal(t, 3, c.Len())

	_, ok, _ := c.Get(ctx, "a")
	assert.False(t, ok, "la entrada más antigua se descarta")
	for _, k := range []string{"b", "c", "d"} {
		_, ok, _ := c.Get(ctx, k)
		assert.True(t, ok, k)
	}

	// Reescribir una clave existente no descarta nada.
	require.NoError(t, c.Set(ctx, "b", []string{"9"}))
	assert.Equal(t, 3, c.Len())
}
