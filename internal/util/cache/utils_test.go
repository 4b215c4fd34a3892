package cache_utils

import (
	"testing"
	"time"

	"github.com/ssqlone/ByteStash/internal/cache"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SetWithExpiry_WithShortTTL_EntryLapses(t *testing.T) {
	cacheUtil := NewCacheUtil[string](cache.GetCache(), "test_expiry:")
	key := uuid.New().String()
	value := "short lived"

	cacheUtil.SetWithExpiry(key, &value, 1*time.Second)

	stored := cacheUtil.Get(key)
	require.NotNil(t, stored)
	assert.Equal(t, value, *stored)

	time.Sleep(1500 * time.Millisecond)

	assert.Nil(t, cacheUtil.Get(key))
}

func Test_SetWithExpiry_DefaultSetUsesConfiguredExpiry_EntrySurvives(t *testing.T) {
	cacheUtil := NewCacheUtil[string](cache.GetCache(), "test_expiry:")
	key := uuid.New().String()
	value := "long lived"

	cacheUtil.Set(key, &value)
	defer cacheUtil.Invalidate(key)

	time.Sleep(1500 * time.Millisecond)

	stored := cacheUtil.Get(key)
	require.NotNil(t, stored)
	assert.Equal(t, value, *stored)
}
