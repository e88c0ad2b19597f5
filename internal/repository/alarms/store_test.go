package alarms

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/clockrobustus/internal/apperr"
	"github.com/oshokin/clockrobustus/internal/domain/alarm"
)

// openStore opens a store in a fresh temporary directory.
func openStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "dbase.sqlite"))
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

// TestStore_EmptyTable lists nothing from a new database and tolerates repeated schema checks.
func TestStore_EmptyTable(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.EnsureSchema(ctx))
	require.NoError(t, s.EnsureSchema(ctx))

	got, err := s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

// TestStore_InsertAndUpdate saves a new alarm, then updates the same row.
func TestStore_InsertAndUpdate(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	// Create.
	require.NoError(t, s.Upsert(ctx, &alarm.Alarm{ActiveDays: alarm.AllDays, Hour: 12}))

	alarms, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, alarms, 1)
	require.NotNil(t, alarms[0].ID)

	// Update.
	current := alarms[0]
	current.Hour = 13
	current.Minute = 42
	current.Seconds = 22
	current.ActiveDays = alarm.Monday

	require.NoError(t, s.Upsert(ctx, &current))

	alarms, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, alarms, 1)
	require.Equal(t, current, alarms[0])
}

// TestStore_InsertKeepsOrder returns rows in insertion order with distinct ids.
func TestStore_InsertKeepsOrder(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	for hour := range uint8(3) {
		require.NoError(t, s.Upsert(ctx, &alarm.Alarm{ActiveDays: alarm.Friday, Hour: hour}))
	}

	alarms, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, alarms, 3)

	for i, a := range alarms {
		require.Equal(t, uint8(i), a.Hour)
	}

	require.NotEqual(t, *alarms[0].ID, *alarms[1].ID)
}

// TestStore_UpdateMissingIsNoop documents that an unknown id neither fails nor inserts.
func TestStore_UpdateMissingIsNoop(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, &alarm.Alarm{ID: alarm.NewID(404), Hour: 1}))

	alarms, err := s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, alarms)
}

// TestStore_Remove covers unsaved, known and unknown ids.
func TestStore_Remove(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	err := s.Remove(ctx, &alarm.Alarm{Hour: 12})
	require.ErrorIs(t, err, apperr.ErrUnsavedEntity)

	require.NoError(t, s.Upsert(ctx, &alarm.Alarm{ActiveDays: alarm.Sunday, Hour: 9}))

	alarms, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, alarms, 1)

	// Unknown id is a silent no-op.
	require.NoError(t, s.Remove(ctx, &alarm.Alarm{ID: alarm.NewID(*alarms[0].ID + 100)}))

	alarms, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, alarms, 1)

	require.NoError(t, s.Remove(ctx, &alarms[0]))

	alarms, err = s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, alarms)
}

// TestStore_ClearsHighBit never persists bit 7 of the active days.
func TestStore_ClearsHighBit(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	require.NoError(t, s.Upsert(ctx, &alarm.Alarm{ActiveDays: 0xFF}))

	alarms, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, alarms, 1)
	require.Equal(t, alarm.AllDays, alarms[0].ActiveDays)
}

// TestStore_ConcurrentWriters inserts from several goroutines without losing rows.
func TestStore_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	s := openStore(t)
	ctx := context.Background()

	const writers = 8

	var wg sync.WaitGroup

	for i := range writers {
		wg.Go(func() {
			assert.NoError(t, s.Upsert(ctx, &alarm.Alarm{ActiveDays: alarm.Monday, Minute: uint8(i)}))

			_, err := s.List(ctx)
			assert.NoError(t, err)
		})
	}

	wg.Wait()

	alarms, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, alarms, writers)
}

// TestStore_ClosedDatabase reports storage errors to the caller.
func TestStore_ClosedDatabase(t *testing.T) {
	t.Parallel()

	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "dbase.sqlite"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.List(context.Background())
	require.ErrorIs(t, err, apperr.ErrStorage)

	err = s.Upsert(context.Background(), &alarm.Alarm{})
	require.ErrorIs(t, err, apperr.ErrStorage)
}
