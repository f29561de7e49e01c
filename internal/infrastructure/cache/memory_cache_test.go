//go:build unit
// +build unit

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	c := NewMemoryCache()

	err := c.Set(context.Background(), "recipes:recipe:1", `{"id":"1"}`, 0)
	require.NoError(t, err)

	value, err := c.Get(context.Background(), "recipes:recipe:1")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"1"}`, value)
}

func TestMemoryCache_Get_Miss(t *testing.T) {
	c := NewMemoryCache()

	value, err := c.Get(context.Background(), "recipes:recipe:absent")
	assert.ErrorIs(t, err, ErrMiss)
	assert.Empty(t, value)
}

func TestMemoryCache_Get_Expired(t *testing.T) {
	c := NewMemoryCache()

	require.NoError(t, c.Set(context.Background(), "k", "v", 10*time.Millisecond))
	time.Sleep(25 * time.Millisecond)

	_, err := c.Get(context.Background(), "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCache_Del(t *testing.T) {
	c := NewMemoryCache()

	require.NoError(t, c.Set(context.Background(), "a", "1", 0))
	require.NoError(t, c.Set(context.Background(), "b", "2", 0))

	removed, err := c.Del(context.Background(), "a", "b", "missing")
	require.NoError(t, err)
	assert.EqualValues(t, 2, removed)

	_, err = c.Get(context.Background(), "a")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestMemoryCache_Close_DropsEntries(t *testing.T) {
	c := NewMemoryCache()

	require.NoError(t, c.Set(context.Background(), "a", "1", 0))
	require.NoError(t, c.Close())

	_, err := c.Get(context.Background(), "a")
	assert.ErrorIs(t, err, ErrMiss)
}
