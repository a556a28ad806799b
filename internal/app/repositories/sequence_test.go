package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vwings/eduadmin/internal/app/models"
)

// fakeSequenceStore mimics the entity_sequences upsert: every QueryRow for a
// kind reserves the next counter value, exactly once, under a lock.
type fakeSequenceStore struct {
	mu       sync.Mutex
	counters map[string]int64
	scanErr  error
}

type fakeSequenceRow struct {
	value int64
	err   error
}

func (r fakeSequenceRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.value
	return nil
}

func (s *fakeSequenceStore) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if s.scanErr != nil {
		return fakeSequenceRow{err: s.scanErr}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.counters == nil {
		s.counters = map[string]int64{}
	}
	kind := args[0].(string)
	s.counters[kind]++
	return fakeSequenceRow{value: s.counters[kind]}
}

func (s *fakeSequenceStore) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("not used")
}

func (s *fakeSequenceStore) Exec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, errors.New("not used")
}

func TestNextIDIsSequentialPerKind(t *testing.T) {
	alloc := NewAllocator(&fakeSequenceStore{})

	first, err := alloc.NextID(context.Background(), models.StudentIDSpec)
	require.NoError(t, err)
	second, err := alloc.NextID(context.Background(), models.StudentIDSpec)
	require.NoError(t, err)

	assert.Equal(t, "STU0001", first)
	assert.Equal(t, "STU0002", second)

	// Another kind runs its own counter.
	msg, err := alloc.NextID(context.Background(), models.ChatMessageIDSpec)
	require.NoError(t, err)
	assert.Equal(t, "MSG000001", msg)
}

func TestNextIDNeverReusesValues(t *testing.T) {
	const workers = 32
	alloc := NewAllocator(&fakeSequenceStore{})

	ids := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := alloc.NextID(context.Background(), models.CourseIDSpec)
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "identifier %s issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestNextIDWidensPastPadWidth(t *testing.T) {
	store := &fakeSequenceStore{counters: map[string]int64{"student": 9999}}
	alloc := NewAllocator(store)

	id, err := alloc.NextID(context.Background(), models.StudentIDSpec)
	require.NoError(t, err)
	assert.Equal(t, "STU10000", id)
}

func TestWithQuerierBindsIndependentConnection(t *testing.T) {
	original := &fakeSequenceStore{}
	other := &fakeSequenceStore{counters: map[string]int64{"fee": 41}}
	alloc := NewAllocator(original)

	bound := alloc.WithQuerier(other)
	id, err := bound.NextID(context.Background(), models.FeeIDSpec)
	require.NoError(t, err)
	assert.Equal(t, "FEE0042", id)

	// The original allocator still points at its own connection.
	id, err = alloc.NextID(context.Background(), models.FeeIDSpec)
	require.NoError(t, err)
	assert.Equal(t, "FEE0001", id)
}

func TestNextIDWrapsAllocationError(t *testing.T) {
	boom := errors.New("connection reset")
	alloc := NewAllocator(&fakeSequenceStore{scanErr: boom})

	id, err := alloc.NextID(context.Background(), models.StudentIDSpec)
	assert.Empty(t, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "student")
}
