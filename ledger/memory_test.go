package ledger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreReserveAndRelease(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	free, err := store.IsFree(ctx, 1, "15_06_2025", "10:00 AM")
	require.NoError(t, err)
	assert.True(t, free)

	require.NoError(t, store.Reserve(ctx, 1, "15_06_2025", "10:00 AM"))

	free, err = store.IsFree(ctx, 1, "15_06_2025", "10:00 AM")
	require.NoError(t, err)
	assert.False(t, free)

	// Same doctor, different time and date stay free.
	free, _ = store.IsFree(ctx, 1, "15_06_2025", "11:00 AM")
	assert.True(t, free)
	free, _ = store.IsFree(ctx, 1, "16_06_2025", "10:00 AM")
	assert.True(t, free)

	// Another doctor does not contend for the same slot.
	require.NoError(t, store.Reserve(ctx, 2, "15_06_2025", "10:00 AM"))

	require.NoError(t, store.Release(ctx, 1, "15_06_2025", "10:00 AM"))
	free, _ = store.IsFree(ctx, 1, "15_06_2025", "10:00 AM")
	assert.True(t, free)
}

func TestMemoryStoreDoubleReserve(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Reserve(ctx, 7, "01_07_2025", "2:30 PM"))
	err := store.Reserve(ctx, 7, "01_07_2025", "2:30 PM")
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestMemoryStoreReleaseMissing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	err := store.Release(ctx, 1, "15_06_2025", "10:00 AM")
	assert.ErrorIs(t, err, ErrNotFound)

	// Releasing twice reports ErrNotFound the second time, nothing worse.
	require.NoError(t, store.Reserve(ctx, 1, "15_06_2025", "10:00 AM"))
	require.NoError(t, store.Release(ctx, 1, "15_06_2025", "10:00 AM"))
	err = store.Release(ctx, 1, "15_06_2025", "10:00 AM")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreConcurrentReserve(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	const attempts = 100
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.Reserve(ctx, 42, "15_06_2025", "10:00 AM")
		}()
	}
	wg.Wait()
	close(results)

	wins, losses := 0, 0
	for err := range results {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, ErrAlreadyBooked)
			losses++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, attempts-1, losses)
}

func TestMemoryStoreBookedSlots(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Reserve(ctx, 3, "15_06_2025", "10:00 AM"))
	require.NoError(t, store.Reserve(ctx, 3, "15_06_2025", "11:00 AM"))
	require.NoError(t, store.Reserve(ctx, 3, "16_06_2025", "4:00 PM"))
	require.NoError(t, store.Reserve(ctx, 9, "15_06_2025", "10:00 AM"))

	slots, err := store.BookedSlots(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"15_06_2025": {"10:00 AM", "11:00 AM"},
		"16_06_2025": {"4:00 PM"},
	}, slots)
}
